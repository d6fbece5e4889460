// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vrooli/cli/internal/profile"
)

// profileCmd groups the commands that manage named configuration profiles.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage configuration profiles",
	Long: `A profile is a named configuration slot with its own server URL, output mode
and stored session. Exactly one profile is active at a time; --profile selects
another one for a single command.`,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			infos, err := a.store.List()
			if err != nil {
				return a.finish(nil, err)
			}
			return a.finish(&profile.ListReport{Success: true, Profiles: infos}, nil)
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			info, err := a.store.Show()
			if err != nil {
				return a.finish(nil, err)
			}
			return a.finish(&profile.ShowReport{Success: true, Profile: info}, nil)
		})
	},
}

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch the active profile, creating it if needed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			if err := a.store.Use(args[0]); err != nil {
				return a.finish(nil, err)
			}
			return a.finish(profile.NewChangeReport(a.store, fmt.Sprintf("Switched to profile %q", args[0])), nil)
		})
	},
}

var profileSetServerCmd = &cobra.Command{
	Use:   "set-server <url>",
	Short: "Set the server URL of the active profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWithApp(cmd, func(a *app) error {
			if err := a.store.SetServer(args[0]); err != nil {
				return a.finish(nil, err)
			}
			return a.finish(profile.NewChangeReport(a.store, "Server URL updated"), nil)
		})
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd, profileShowCmd, profileUseCmd, profileSetServerCmd)
	rootCmd.AddCommand(profileCmd)
}
