// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// authCmd groups the account and session commands.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in, sign out and manage your Vrooli account",
	Long: `The auth commands manage the session of the active profile.

Use 'vrooli auth login' to sign in, 'vrooli auth status' to check whether the
stored session is still valid and 'vrooli auth logout' to remove it.`,
}

func init() {
	rootCmd.AddCommand(authCmd)
}
