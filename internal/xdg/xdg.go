// Package xdg provides helpers to resolve XDG Base Directory paths for vrooli.
// It implements the XDG Base Directory specification for determining appropriate
// locations for configuration files on Unix-like systems, and falls back to the
// traditional home-relative locations when the XDG variables are not set.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "vrooli"

// ConfigDir returns the XDG config directory for vrooli.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/vrooli when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// ConfigFile returns the path of the profiles file inside ConfigDir.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// KeyringDir returns the directory used by the encrypted file keyring backend.
func KeyringDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	kdir := filepath.Join(dir, "keyring")
	if err := os.MkdirAll(kdir, 0o700); err != nil {
		return "", err
	}
	return kdir, nil
}
