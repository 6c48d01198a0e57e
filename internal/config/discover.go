package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "arrbridge", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. ARRBRIDGE_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/arrbridge/config.toml
//  4. /etc/arrbridge/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("ARRBRIDGE_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("ARRBRIDGE_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/arrbridge/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
