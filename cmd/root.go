// Copyright (c) 2025 Vrooli
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the vrooli CLI.
// It implements the auth and profile subcommands using the Cobra CLI framework.
// The package resolves configuration, wires the backend client, credential
// store, prompts and presenter for each invocation, and maps results to exit
// codes.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"vrooli/cli/internal/auth"
	"vrooli/cli/internal/backend"
	"vrooli/cli/internal/config"
	vrerrors "vrooli/cli/internal/errors"
	"vrooli/cli/internal/keychain"
	"vrooli/cli/internal/logging"
	"vrooli/cli/internal/output"
	"vrooli/cli/internal/profile"
	"vrooli/cli/internal/prompt"
	"vrooli/cli/internal/terminal"
)

var (
	showVersion bool
	globalFlags config.Flags
)

// rootCmd represents the base command when called without any subcommands.
// It serves as the entry point for the vrooli CLI application.
var rootCmd = &cobra.Command{
	Use:   "vrooli",
	Short: "Vrooli command-line interface",
	Long: `vrooli manages your Vrooli account from the terminal: sign in and out,
check your session, reset your password and verify your email address.

Settings are kept per profile in the config file; credentials are stored in the
OS keychain.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Fprintf(cmd.OutOrStdout(), "vrooli %s\n", Version)
			return nil
		}
		// If no flag is set, show help
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// Errors already rendered by a command are not printed again; either way the
// process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			renderFailure(os.Stdout, os.Stderr, wantsJSON(), err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&globalFlags.Profile, "profile", "", "Profile to use (default: the active profile)")
	pf.StringVar(&globalFlags.ServerURL, "server", "", "API server URL, overriding the profile setting")
	pf.BoolVar(&globalFlags.JSON, "json", false, "Print results as JSON")
	pf.BoolVar(&globalFlags.Debug, "debug", false, "Log requests and internal decisions to stderr")
}

// reportedError marks an error whose failure report was already printed.
type reportedError struct{ err error }

func (r reportedError) Error() string { return r.err.Error() }
func (r reportedError) Unwrap() error { return r.err }

// app is everything one command invocation needs.
type app struct {
	settings  config.Settings
	store     *profile.Store
	service   *auth.Service
	presenter *output.Presenter
	log       *slog.Logger
	rc        auth.Context
	stdout    io.Writer
	stderr    io.Writer
}

// newApp resolves configuration and wires the collaborators.
func newApp(cmd *cobra.Command) (*app, error) {
	path, err := config.Path()
	if err != nil {
		return nil, vrerrors.Wrap(vrerrors.Store, "failed to locate config directory", err)
	}
	file, err := config.Load(path)
	if err != nil {
		return nil, vrerrors.Wrap(vrerrors.Store, "failed to load config", err)
	}
	env, err := config.LoadEnv()
	if err != nil {
		return nil, vrerrors.Wrap(vrerrors.Input, "invalid environment", err)
	}
	settings := config.Resolve(file, env, globalFlags)

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := logging.New(stderr, settings.Debug)
	log.Debug("configuration resolved",
		slog.String("config", path),
		slog.String("profile", settings.Profile),
		slog.String("server", settings.ServerURL),
		slog.Bool("json", settings.JSON),
	)

	km, err := keychain.NewManager(keychain.Options{
		Backend:      env.KeyringBackend,
		FilePassword: env.KeyringPassword,
		Logger:       log,
	})
	if err != nil {
		return nil, vrerrors.Wrap(vrerrors.Store, "failed to open credential store", err)
	}
	store := profile.Open(path, file, settings, km)

	var api backend.API = backend.New(settings.ServerURL, backend.Options{
		Credentials: store,
		Logger:      log,
		UserAgent:   "vrooli-cli/" + Version,
	})
	if !settings.JSON && !settings.Debug && stderr == io.Writer(os.Stderr) && terminal.IsTerminal(int(os.Stderr.Fd())) {
		api = withSpinner(api, stderr)
	}

	// Questions go to stderr in JSON mode so stdout stays machine-readable.
	promptOut := stdout
	if settings.JSON {
		promptOut = stderr
	}
	in, inFD := cmd.InOrStdin(), -1
	if in == io.Reader(os.Stdin) {
		inFD = int(os.Stdin.Fd())
	}
	p := prompt.New(in, promptOut, inFD)

	return &app{
		settings:  settings,
		store:     store,
		service:   auth.NewService(api, store, p, log),
		presenter: output.NewPresenter(stdout, settings.JSON),
		log:       log,
		rc:        auth.NewContext(store, settings.PasswordMinLength),
		stdout:    stdout,
		stderr:    stderr,
	}, nil
}

// finish renders the outcome of a command. Failures are rendered as a
// failure report and returned marked as reported.
func (a *app) finish(rep output.Report, err error) error {
	if err != nil {
		a.log.Debug("command failed", logging.Err(err), slog.String("kind", string(vrerrors.KindOf(err))))
		renderFailure(a.stdout, a.stderr, a.settings.JSON, err)
		return reportedError{err}
	}
	return a.presenter.Render(rep)
}

// runWithApp builds the app and hands it to fn; setup failures are reported
// like any other failure.
func runWithApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := newApp(cmd)
	if err != nil {
		renderFailure(cmd.OutOrStdout(), cmd.ErrOrStderr(), wantsJSON(), err)
		return reportedError{err}
	}
	return fn(a)
}

// renderFailure prints err as a failure report: JSON on stdout, text on stderr.
func renderFailure(stdout, stderr io.Writer, asJSON bool, err error) {
	f := output.NewFailure(err)
	if asJSON {
		_ = output.NewPresenter(stdout, true).Render(f)
		return
	}
	_ = output.NewPresenter(stderr, false).Render(f)
}

// wantsJSON reports whether JSON output was requested before configuration
// could be fully resolved.
func wantsJSON() bool {
	if globalFlags.JSON {
		return true
	}
	env, err := config.LoadEnv()
	return err == nil && env.JSON
}
