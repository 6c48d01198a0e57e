package sonarr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arrbridge/arrbridge/pkg/textmatch"
)

var (
	// ErrNoMatch indicates the lookup returned nothing similar enough to
	// the requested title.
	ErrNoMatch = errors.New("no matching series found")

	// ErrNoQualityProfile indicates the instance has no quality profiles
	// to default to.
	ErrNoQualityProfile = errors.New("no quality profile available")

	// ErrNoRootFolder indicates the instance has no root folders and the
	// caller did not supply a path.
	ErrNoRootFolder = errors.New("no root folder available")
)

// AddRequest is the caller-supplied input for the one-shot add-series flow.
// Seasons, when given, limits monitoring to those season numbers; otherwise
// every season the lookup reports stays monitored.
type AddRequest struct {
	Term             string `json:"term"`
	QualityProfileID int    `json:"qualityProfileId,omitempty"`
	RootFolderPath   string `json:"rootFolderPath,omitempty"`
	Monitored        *bool  `json:"monitored,omitempty"` // default true
	Seasons          []int  `json:"seasons,omitempty"`
}

// AddResult reports the series that was added and how it was matched.
type AddResult struct {
	Success bool    `json:"success"`
	Series  *Series `json:"series,omitempty"`
	Score   float64 `json:"matchScore,omitempty"`
	Message string  `json:"message"`
}

// Flow runs the one-shot add-series path against one Sonarr instance.
type Flow struct {
	client *Client
	log    *slog.Logger
}

// NewFlow creates the add-series flow.
func NewFlow(client *Client, log *slog.Logger) *Flow {
	if log == nil {
		log = slog.Default()
	}
	return &Flow{client: client, log: log.With("component", "sonarr")}
}

// Lookup exposes the catalog search for passthrough use.
func (f *Flow) Lookup(ctx context.Context, term string) ([]Series, error) {
	return f.client.Lookup(ctx, term)
}

// AddSeries looks up the term, picks the closest title, fills profile and
// root-folder defaults and submits the add with an immediate search for
// missing episodes.
func (f *Flow) AddSeries(ctx context.Context, req AddRequest) (*AddResult, error) {
	results, err := f.client.Lookup(ctx, req.Term)
	if err != nil {
		return nil, fmt.Errorf("looking up %q: %w", req.Term, err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, req.Term)
	}

	titles := make([]string, len(results))
	for i := range results {
		titles[i] = results[i].Title
	}
	match := textmatch.BestMatch(req.Term, titles)
	if match.Index < 0 {
		return nil, fmt.Errorf("%w: %q (best score %.2f)", ErrNoMatch, req.Term, match.Score)
	}
	series := results[match.Index]
	f.log.Debug("series matched", "term", req.Term, "title", series.Title, "score", match.Score, "confidence", match.Confidence)

	series.QualityProfileID = req.QualityProfileID
	if series.QualityProfileID == 0 {
		profiles, err := f.client.QualityProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching quality profiles: %w", err)
		}
		if len(profiles) == 0 {
			return nil, ErrNoQualityProfile
		}
		series.QualityProfileID = profiles[0].ID
	}

	series.RootFolderPath = req.RootFolderPath
	if series.RootFolderPath == "" {
		folders, err := f.client.RootFolders(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching root folders: %w", err)
		}
		if len(folders) == 0 {
			return nil, ErrNoRootFolder
		}
		series.RootFolderPath = folders[0].Path
	}

	series.Monitored = true
	if req.Monitored != nil {
		series.Monitored = *req.Monitored
	}
	series.SeasonFolder = true
	if len(req.Seasons) > 0 {
		restrictSeasons(series.Seasons, req.Seasons)
	}
	series.AddOptions = &AddOptions{SearchForMissingEpisodes: true}

	added, err := f.client.Add(ctx, &series)
	if err != nil {
		return nil, fmt.Errorf("submitting add request: %w", err)
	}

	return &AddResult{
		Success: true,
		Series:  added,
		Score:   match.Score,
		Message: fmt.Sprintf("Added %q to the library", added.Title),
	}, nil
}

// restrictSeasons turns off monitoring for every season not in wanted.
func restrictSeasons(seasons []Season, wanted []int) {
	keep := make(map[int]bool, len(wanted))
	for _, n := range wanted {
		keep[n] = true
	}
	for i := range seasons {
		seasons[i].Monitored = keep[seasons[i].SeasonNumber]
	}
}
