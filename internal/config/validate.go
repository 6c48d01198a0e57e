package config

import (
	"fmt"
	"net/url"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	services := map[string]*ServiceConfig{
		"readarr":   c.Services.Readarr,
		"radarr":    c.Services.Radarr,
		"sonarr":    c.Services.Sonarr,
		"overseerr": c.Services.Overseerr,
	}

	configured := 0
	for name, svc := range services {
		if svc == nil {
			continue
		}
		configured++
		if svc.URL == "" {
			errs = append(errs, fmt.Sprintf("services.%s.url: required", name))
		} else if _, err := url.ParseRequestURI(svc.URL); err != nil {
			errs = append(errs, fmt.Sprintf("services.%s.url: invalid: %v", name, err))
		}
		if svc.APIKey == "" {
			errs = append(errs, fmt.Sprintf("services.%s.api_key: required", name))
		}
	}
	if configured == 0 {
		errs = append(errs, "services: at least one service (readarr, radarr, sonarr, overseerr) must be configured")
	}

	if c.OpenLibrary.Enabled && c.OpenLibrary.URL == "" {
		errs = append(errs, "openlibrary.url: required when openlibrary is enabled")
	}

	return errs
}
