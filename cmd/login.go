// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"

	"vrooli/cli/internal/auth"
)

var (
	loginEmail    string
	loginPassword string
	loginNoSave   bool
)

// loginCmd signs in with email and password.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with your email and password",
	Long: `The login command signs in to the server of the active profile. Missing
values are prompted for; the password is read without echo.

The session is stored in the OS keychain under the active profile unless
--no-save is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			rep, err := a.service.Login(cmd.Context(), a.rc, auth.LoginInput{
				Email:    loginEmail,
				Password: loginPassword,
				Persist:  !loginNoSave,
			})
			return a.finish(rep, err)
		})
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
	loginCmd.Flags().BoolVar(&loginNoSave, "no-save", false, "Do not store the session")
	authCmd.AddCommand(loginCmd)
}
