// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd represents the logout command for clearing authentication state.
// It removes the stored session of the active profile and notifies the
// backend service (best-effort remote logout).
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored session",
	Long: `The logout command clears the session of the active profile from the OS
keychain. When a session is stored it also asks the server to end it; that
call is best effort, so logout succeeds even when the server is unreachable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			rep, err := a.service.Logout(cmd.Context(), a.rc)
			return a.finish(rep, err)
		})
	},
}

func init() {
	authCmd.AddCommand(logoutCmd)
}
