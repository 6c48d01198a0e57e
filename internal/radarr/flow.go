package radarr

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
	ErrNoMatch = errors.New("no matching movie found")

	// ErrNoQualityProfile indicates the instance has no quality profiles
	// to default to.
	ErrNoQualityProfile = errors.New("no quality profile available")

	// ErrNoRootFolder indicates the instance has no root folders and the
	// caller did not supply a path.
	ErrNoRootFolder = errors.New("no root folder available")
)

// AddRequest is the caller-supplied input for the one-shot add-movie flow.
type AddRequest struct {
	Term             string `json:"term"`
	QualityProfileID int    `json:"qualityProfileId,omitempty"`
	RootFolderPath   string `json:"rootFolderPath,omitempty"`
	Monitored        *bool  `json:"monitored,omitempty"` // default true
}

// AddResult reports the movie that was added and how it was matched.
type AddResult struct {
	Success bool    `json:"success"`
	Movie   *Movie  `json:"movie,omitempty"`
	Score   float64 `json:"matchScore,omitempty"`
	Message string  `json:"message"`
}

// Flow runs the one-shot add-movie path against one Radarr instance.
type Flow struct {
	client *Client
	log    *slog.Logger
}

// NewFlow creates the add-movie flow.
func NewFlow(client *Client, log *slog.Logger) *Flow {
	if log == nil {
		log = slog.Default()
	}
	return &Flow{client: client, log: log.With("component", "radarr")}
}

// Lookup exposes the catalog search for passthrough use.
func (f *Flow) Lookup(ctx context.Context, term string) ([]Movie, error) {
	return f.client.Lookup(ctx, term)
}

// AddMovie looks up the term, picks the closest title, fills profile and
// root-folder defaults and submits the add with an immediate search.
func (f *Flow) AddMovie(ctx context.Context, req AddRequest) (*AddResult, error) {
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
	movie := results[match.Index]
	f.log.Debug("movie matched", "term", req.Term, "title", movie.Title, "score", match.Score, "confidence", match.Confidence)

	movie.QualityProfileID = req.QualityProfileID
	if movie.QualityProfileID == 0 {
		profiles, err := f.client.QualityProfiles(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching quality profiles: %w", err)
		}
		if len(profiles) == 0 {
			return nil, ErrNoQualityProfile
		}
		movie.QualityProfileID = profiles[0].ID
	}

	movie.RootFolderPath = req.RootFolderPath
	if movie.RootFolderPath == "" {
		folders, err := f.client.RootFolders(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching root folders: %w", err)
		}
		if len(folders) == 0 {
			return nil, ErrNoRootFolder
		}
		movie.RootFolderPath = folders[0].Path
	}

	movie.Monitored = true
	if req.Monitored != nil {
		movie.Monitored = *req.Monitored
	}
	movie.AddOptions = &AddOptions{SearchForMovie: true}

	added, err := f.client.Add(ctx, &movie)
	if err != nil {
		return nil, fmt.Errorf("submitting add request: %w", err)
	}

	return &AddResult{
		Success: true,
		Movie:   added,
		Score:   match.Score,
		Message: fmt.Sprintf("Added %q to the library", added.Title),
	}, nil
}
