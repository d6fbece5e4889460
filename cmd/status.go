// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// statusCmd checks the stored session against the server.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are signed in",
	Long: `The status command reports whether the active profile holds a valid session.
Without a stored session it answers immediately. Otherwise it asks the server;
a session the server rejects is removed locally.

Being signed out is not an error: the command exits with status 0 either way.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			rep, err := a.service.Status(cmd.Context(), a.rc)
			return a.finish(rep, err)
		})
	},
}

func init() {
	authCmd.AddCommand(statusCmd)
}
