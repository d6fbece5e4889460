// Package main is the entry point for the vrooli CLI application.
// It provides account and session management for Vrooli from the terminal.
package main

import (
	"vrooli/cli/cmd"
)

// main is the entry point for the vrooli CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
