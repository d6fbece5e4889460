// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

var verifyCode string

var verifyEmailCmd = &cobra.Command{
	Use:   "verify-email",
	Short: "Verify your email address with the emailed code",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			rep, err := a.service.VerifyEmail(cmd.Context(), a.rc, verifyCode)
			return a.finish(rep, err)
		})
	},
}

func init() {
	verifyEmailCmd.Flags().StringVar(&verifyCode, "code", "", "Verification code (prompted when omitted)")
	authCmd.AddCommand(verifyEmailCmd)
}
