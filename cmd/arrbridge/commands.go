package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arrbridge/arrbridge/internal/overseerr"
	"github.com/arrbridge/arrbridge/internal/radarr"
	"github.com/arrbridge/arrbridge/internal/sonarr"
	"github.com/arrbridge/arrbridge/internal/workflow"
)

var (
	serverURL  string
	jsonOutput bool

	addQualityProfile  int
	addMetadataProfile int
	addRootFolder      string
	addSeasons         []int
)

func init() {
	for _, cmd := range []*cobra.Command{statusCmd, addBookCmd, addMovieCmd, addSeriesCmd, lookupCmd, requestCmd} {
		cmd.Flags().StringVar(&serverURL, "server", "http://localhost:8844", "Daemon URL")
		cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{addBookCmd, addMovieCmd, addSeriesCmd} {
		cmd.Flags().IntVar(&addQualityProfile, "quality-profile", 0, "Quality profile ID (default: upstream's first)")
		cmd.Flags().StringVar(&addRootFolder, "root-folder", "", "Root folder path (default: upstream's first)")
	}
	addBookCmd.Flags().IntVar(&addMetadataProfile, "metadata-profile", 0, "Metadata profile ID (default: upstream's first)")
	addSeriesCmd.Flags().IntSliceVar(&addSeasons, "seasons", nil, "Season numbers to monitor (default: all)")
	requestCmd.Flags().IntSliceVar(&addSeasons, "seasons", nil, "Season numbers for TV requests")
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check daemon health",
	RunE: func(cmd *cobra.Command, args []string) error {
		health, err := NewClient(serverURL).Health()
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(health)
			return nil
		}
		fmt.Printf("Server:  %s (%s)\n", serverURL, health.Status)
		return nil
	},
}

var addBookCmd = &cobra.Command{
	Use:   "add-book <term>",
	Short: "Add a book via the Readarr workflow",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := workflow.Request{
			Term:              strings.Join(args, " "),
			QualityProfileID:  addQualityProfile,
			MetadataProfileID: addMetadataProfile,
			RootFolderPath:    addRootFolder,
		}

		var result workflow.Result
		if err := NewClient(serverURL).Proxy("readarr", "add_book", req, &result); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(result)
			return nil
		}
		fmt.Println(result.Message)
		return nil
	},
}

var addMovieCmd = &cobra.Command{
	Use:   "add-movie <term>",
	Short: "Add a movie via Radarr",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := radarr.AddRequest{
			Term:             strings.Join(args, " "),
			QualityProfileID: addQualityProfile,
			RootFolderPath:   addRootFolder,
		}

		var result radarr.AddResult
		if err := NewClient(serverURL).Proxy("radarr", "add_movie", req, &result); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(result)
			return nil
		}
		fmt.Println(result.Message)
		return nil
	},
}

var addSeriesCmd = &cobra.Command{
	Use:   "add-series <term>",
	Short: "Add a series via Sonarr",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := sonarr.AddRequest{
			Term:             strings.Join(args, " "),
			QualityProfileID: addQualityProfile,
			RootFolderPath:   addRootFolder,
			Seasons:          addSeasons,
		}

		var result sonarr.AddResult
		if err := NewClient(serverURL).Proxy("sonarr", "add_series", req, &result); err != nil {
			return err
		}
		if jsonOutput {
			printJSON(result)
			return nil
		}
		fmt.Println(result.Message)
		return nil
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <service> <term>",
	Short: "Search an upstream catalog (readarr, radarr or sonarr)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		service := args[0]
		term := strings.Join(args[1:], " ")

		var result map[string]any
		err := NewClient(serverURL).Proxy(service, "lookup", map[string]string{"term": term}, &result)
		if err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}

var requestCmd = &cobra.Command{
	Use:   "request <movie|tv> <tmdb-id>",
	Short: "Submit an Overseerr media request",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mediaID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("tmdb-id must be a number, got %q", args[1])
		}

		req := overseerr.MediaRequest{
			MediaType: args[0],
			MediaID:   mediaID,
			Seasons:   addSeasons,
		}

		var result map[string]any
		if err := NewClient(serverURL).Proxy("overseerr", "request", req, &result); err != nil {
			return err
		}
		printJSON(result)
		return nil
	},
}
