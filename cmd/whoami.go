// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// whoamiCmd represents the whoami command for displaying the current account.
// It always asks the server, so it also verifies the session.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays the account behind the current session: id,
handle, name, languages, credits, premium status and last update time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			rep, err := a.service.WhoAmI(cmd.Context(), a.rc)
			return a.finish(rep, err)
		})
	},
}

func init() {
	authCmd.AddCommand(whoamiCmd)
}
