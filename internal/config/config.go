// Package config loads wardforge settings from defaults, an optional
// YAML file, and WARDFORGE_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds everything the local binary and the SSH server need.
type Config struct {
	// Addr is the listen address for the SSH server.
	Addr string `yaml:"addr" env:"WARDFORGE_ADDR"`
	// HostKeyPath points at the server's ed25519 host key. A missing
	// file is generated on first start.
	HostKeyPath string `yaml:"host_key_path" env:"WARDFORGE_HOST_KEY"`
	// ArchivePath is the sqlite database of forged wards. Empty means
	// the XDG data dir default.
	ArchivePath string `yaml:"archive_path" env:"WARDFORGE_ARCHIVE"`
	// TermFallback is used when a client offers no TERM or an unknown one.
	TermFallback string `yaml:"term_fallback" env:"WARDFORGE_TERM_FALLBACK"`
	// Debug switches the server logger to development output.
	Debug bool `yaml:"debug" env:"WARDFORGE_DEBUG"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:         ":2222",
		HostKeyPath:  "wardforge_host_key",
		TermFallback: "xterm-256color",
	}
}

// Load layers configuration: defaults, then the YAML file at path if it
// exists, then environment variables. An empty path skips the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DataDir returns the wardforge data directory, following the XDG Base
// Directory spec: $XDG_DATA_HOME/wardforge, defaulting to
// ~/.local/share/wardforge.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "wardforge"), nil
}
