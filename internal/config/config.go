// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Services    ServicesConfig    `toml:"services"`
	OpenLibrary OpenLibraryConfig `toml:"openlibrary"`
	Defaults    DefaultsConfig    `toml:"defaults"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// ServicesConfig maps each proxied upstream to its connection settings.
// A nil entry means the service is not configured and its actions are
// rejected by the dispatcher.
type ServicesConfig struct {
	Readarr   *ServiceConfig `toml:"readarr"`
	Radarr    *ServiceConfig `toml:"radarr"`
	Sonarr    *ServiceConfig `toml:"sonarr"`
	Overseerr *ServiceConfig `toml:"overseerr"`
}

type ServiceConfig struct {
	URL    string `toml:"url"`
	APIKey string `toml:"api_key"`
}

type OpenLibraryConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
}

// DefaultsConfig provides fallback values applied when a client request
// omits them. Zero values mean "use the upstream's first entry".
type DefaultsConfig struct {
	RootFolder        string `toml:"root_folder"`
	QualityProfileID  int    `toml:"quality_profile_id"`
	MetadataProfileID int    `toml:"metadata_profile_id"`
}

// Load reads, substitutes, parses and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file, skipping
// validation. Missing environment variables are still fatal.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}
	return cfg, nil
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8844
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.OpenLibrary.URL == "" {
		c.OpenLibrary.URL = "https://openlibrary.org"
	}
}

// Address returns the listen address in host:port form.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// substituteEnvVars replaces ${VAR}, ${VAR:-default} and ${VAR:?message}
// references with environment values. It returns the substituted content and
// the list of unresolved variables (with messages for the :? form). An unset
// and an empty variable are treated the same.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) (string, []string) {
	var missing []string

	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		expr := match[2 : len(match)-1] // strip ${ and }

		name := expr
		var defaultValue, requiredMsg string
		hasDefault, hasRequired := false, false
		if idx := strings.Index(expr, ":-"); idx >= 0 {
			name, defaultValue = expr[:idx], expr[idx+2:]
			hasDefault = true
		} else if idx := strings.Index(expr, ":?"); idx >= 0 {
			name, requiredMsg = expr[:idx], expr[idx+2:]
			hasRequired = true
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		if hasDefault {
			return defaultValue
		}
		if hasRequired {
			missing = append(missing, fmt.Sprintf("%s: %s", name, requiredMsg))
			return match
		}
		missing = append(missing, name)
		return match
	})

	return result, missing
}
