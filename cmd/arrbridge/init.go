package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arrbridge/arrbridge/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, refusing to overwrite", path)
		}

		if err := config.WriteDefault(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}

		fmt.Printf("wrote %s\n", path)
		fmt.Println("Set the service API keys in the environment (or a .env file) and run 'arrbridge serve'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
