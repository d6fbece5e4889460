// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	resetEmail string
	resetCode  string
)

// resetPasswordCmd runs both halves of a password reset: requesting the
// emailed code, then setting the new password with it.
var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Reset your password",
	Long: `The reset-password command asks the server to email you a reset code, then
prompts for that code and your new password.

If you already have a code, pass it with --code to skip the email request.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			ctx := cmd.Context()
			var email string
			if resetCode == "" {
				req, err := a.service.RequestPasswordReset(ctx, a.rc, resetEmail)
				if err != nil {
					return a.finish(nil, err)
				}
				email = req.Email
				// In JSON mode only the final result is printed.
				if !a.settings.JSON {
					if err := a.presenter.Render(req); err != nil {
						return err
					}
				}
			}

			rep, err := a.service.CompletePasswordReset(ctx, a.rc, resetCode)
			if err != nil {
				return a.finish(nil, err)
			}
			rep.Email = email
			return a.finish(rep, nil)
		})
	},
}

func init() {
	resetPasswordCmd.Flags().StringVar(&resetEmail, "email", "", "Account email (prompted when omitted)")
	resetPasswordCmd.Flags().StringVar(&resetCode, "code", "", "Reset code you already received; skips the email request")
	authCmd.AddCommand(resetPasswordCmd)
}
