// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; secrets go to OS keychain.
//
// Settings are layered: the profiles file is read first, environment
// variables override it, and command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"vrooli/cli/internal/xdg"
)

const (
	// DefaultProfile is the profile used when nothing else selects one.
	DefaultProfile = "default"
	// DefaultServerURL is the REST base URL of the public Vrooli instance.
	DefaultServerURL = "https://vrooli.com/api/v2/rest"
	// DefaultPasswordMinLength mirrors the server-side password policy.
	DefaultPasswordMinLength = 8
)

// Output modes accepted in a profile.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// File is the on-disk profiles file.
type File struct {
	ActiveProfile     string             `yaml:"active_profile" env-default:"default"`
	PasswordMinLength int                `yaml:"password_min_length" env-default:"8"`
	Profiles          map[string]Profile `yaml:"profiles"`
}

// Profile is a named configuration slot. Credentials are not stored here.
type Profile struct {
	ServerURL string `yaml:"server_url"`
	Output    string `yaml:"output,omitempty"`
	Debug     bool   `yaml:"debug,omitempty"`
}

// Env holds the environment overrides.
type Env struct {
	Profile           string `env:"VROOLI_PROFILE"`
	ServerURL         string `env:"VROOLI_SERVER_URL"`
	JSON              bool   `env:"VROOLI_JSON"`
	Debug             bool   `env:"VROOLI_DEBUG"`
	PasswordMinLength int    `env:"VROOLI_PASSWORD_MIN_LENGTH"`
	KeyringBackend    string `env:"VROOLI_KEYRING_BACKEND"`
	KeyringPassword   string `env:"VROOLI_KEYRING_PASSWORD"`
}

// Flags holds command-line overrides; zero values mean "not given".
type Flags struct {
	Profile   string
	ServerURL string
	JSON      bool
	Debug     bool
}

// Settings is the fully resolved configuration for one invocation.
type Settings struct {
	Profile           string
	ServerURL         string
	JSON              bool
	Debug             bool
	PasswordMinLength int
}

// Path returns the path to the profiles file.
func Path() (string, error) {
	return xdg.ConfigFile()
}

// Load reads the profiles file at p; a missing file returns defaults.
func Load(p string) (File, error) {
	var f File
	if _, err := os.Stat(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&f); err != nil {
				return f, fmt.Errorf("apply config defaults: %w", err)
			}
			f.Profiles = map[string]Profile{
				DefaultProfile: {ServerURL: DefaultServerURL, Output: OutputText},
			}
			return f, nil
		}
		return f, err
	}
	if err := cleanenv.ReadConfig(p, &f); err != nil {
		return f, fmt.Errorf("read config %s: %w", p, err)
	}
	if f.Profiles == nil {
		f.Profiles = map[string]Profile{}
	}
	return f, nil
}

// Save writes the profiles file with 0600 permissions.
func Save(p string, f File) error {
	b, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// LoadEnv parses the VROOLI_* environment overrides.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// Resolve merges file, environment and flags. Flags win over env, env over file.
func Resolve(f File, e Env, fl Flags) Settings {
	s := Settings{
		Profile:           firstNonEmpty(fl.Profile, e.Profile, f.ActiveProfile, DefaultProfile),
		PasswordMinLength: DefaultPasswordMinLength,
	}
	p := f.Profiles[s.Profile]
	s.ServerURL = strings.TrimRight(firstNonEmpty(fl.ServerURL, e.ServerURL, p.ServerURL, DefaultServerURL), "/")
	s.JSON = fl.JSON || e.JSON || strings.EqualFold(p.Output, OutputJSON)
	s.Debug = fl.Debug || e.Debug || p.Debug

	if f.PasswordMinLength > 0 {
		s.PasswordMinLength = f.PasswordMinLength
	}
	if e.PasswordMinLength > 0 {
		s.PasswordMinLength = e.PasswordMinLength
	}
	return s
}

// ProfileNames returns the profile names in sorted order.
func (f File) ProfileNames() []string {
	names := make([]string, 0, len(f.Profiles))
	for name := range f.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
