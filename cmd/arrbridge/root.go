package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "arrbridge",
	Short: "API proxy for Radarr, Sonarr, Readarr and Overseerr",
	Long: `arrbridge - API proxy for media-management services

A server-side proxy that centralizes Radarr, Sonarr, Readarr and
Overseerr credentials and performs the multi-step add workflows on
behalf of client applications.

Run 'arrbridge serve' to start the daemon.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: auto-discover)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("arrbridge {{.Version}}\n")
}
