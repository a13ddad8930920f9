package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Supported terminal hosts
const (
	HostITerm = "iterm"
	HostTmux  = "tmux"
	HostShell = "shell"
)

// HostEnv overrides the configured host when set
const HostEnv = "DIRNAV_HOST"

// Config represents the dirnav configuration
type Config struct {
	// Host selects the terminal that receives the lines.
	// "iterm" - iTerm2 via AppleScript (default)
	// "tmux" - tmux windows and panes
	// "shell" - print the lines for a shell wrapper to eval
	Host string `toml:"host"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`

	ITerm  ITermConfig  `toml:"iterm"`
	Tmux   TmuxConfig   `toml:"tmux"`
	Picker PickerConfig `toml:"picker"`
}

// ITermConfig holds iTerm2 settings
type ITermConfig struct {
	// App is the AppleScript application name
	App string `toml:"app"`
}

// TmuxConfig holds tmux-related settings
type TmuxConfig struct {
	// Session is the tmux session name to use.
	// Empty means use the current session (if in tmux).
	// If set, the session is created when missing.
	Session string `toml:"session"`
}

// PickerConfig holds the keys offered by the interactive picker
type PickerConfig struct {
	Keys []string `toml:"keys"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:     HostITerm,
		LogLevel: "info",
		ITerm: ITermConfig{
			App: "iTerm",
		},
	}
}

// Validate checks the values that have a fixed set of choices
func (c Config) Validate() error {
	switch c.Host {
	case HostITerm, HostTmux, HostShell:
		return nil
	default:
		return fmt.Errorf("unsupported host: %s (supported: iterm, tmux, shell)", c.Host)
	}
}

// Load reads the config from ~/.config/dirnav/config.toml and applies the
// DIRNAV_HOST override. If the file doesn't exist, returns default config.
func Load() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return cfg, err
	}
	if host := os.Getenv(HostEnv); host != "" {
		cfg.Host = host
	}
	return cfg, cfg.Validate()
}

// LoadFrom reads config from the specified path.
// If the file doesn't exist, returns default config.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// DefaultPath returns the default config file path
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "dirnav", "config.toml"), nil
}
