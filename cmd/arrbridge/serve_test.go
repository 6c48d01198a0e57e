package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arrbridge/arrbridge/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("bogus"))
}

func TestBuildDeps_UnconfiguredServicesStayNil(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Services: config.ServicesConfig{
			Radarr: &config.ServiceConfig{URL: "http://radarr:7878", APIKey: "k"},
		},
		Defaults: config.DefaultsConfig{RootFolder: "/movies"},
	}

	deps := buildDeps(cfg, logger)

	assert.Nil(t, deps.Books)
	assert.Nil(t, deps.Readarr)
	assert.NotNil(t, deps.Movies)
	assert.Nil(t, deps.Series)
	assert.Nil(t, deps.Requests)
	assert.Equal(t, "/movies", deps.Defaults.RootFolder)
}

func TestBuildDeps_ReadarrWithSecondary(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{
		Services: config.ServicesConfig{
			Readarr: &config.ServiceConfig{URL: "http://readarr:8787", APIKey: "k"},
		},
		OpenLibrary: config.OpenLibraryConfig{Enabled: true, URL: "https://openlibrary.org"},
	}

	deps := buildDeps(cfg, logger)

	assert.NotNil(t, deps.Books)
	assert.NotNil(t, deps.Readarr)
}
