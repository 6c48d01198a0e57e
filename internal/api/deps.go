package api

import (
	"context"

	"github.com/arrbridge/arrbridge/internal/overseerr"
	"github.com/arrbridge/arrbridge/internal/radarr"
	"github.com/arrbridge/arrbridge/internal/sonarr"
	"github.com/arrbridge/arrbridge/internal/workflow"
)

// BookService is the Readarr add-book workflow surface.
type BookService interface {
	AddBook(ctx context.Context, req workflow.Request) (*workflow.Result, error)
}

// MovieService is the Radarr one-shot surface.
type MovieService interface {
	AddMovie(ctx context.Context, req radarr.AddRequest) (*radarr.AddResult, error)
	Lookup(ctx context.Context, term string) ([]radarr.Movie, error)
}

// SeriesService is the Sonarr one-shot surface.
type SeriesService interface {
	AddSeries(ctx context.Context, req sonarr.AddRequest) (*sonarr.AddResult, error)
	Lookup(ctx context.Context, term string) ([]sonarr.Series, error)
}

// RequestService is the Overseerr request broker surface.
type RequestService interface {
	SubmitRequest(ctx context.Context, mr *overseerr.MediaRequest) (*overseerr.RequestResult, error)
}

// Defaults are configuration-supplied fallbacks applied when a client
// request omits them. Zero values defer to the upstream's first entry.
type Defaults struct {
	RootFolder        string
	QualityProfileID  int
	MetadataProfileID int
}

// Deps carries the per-service backends. A nil entry means the service is
// not configured and its actions are rejected with 503.
type Deps struct {
	Books    BookService
	Readarr  workflow.Upstream // lookup/profile/rootfolder passthrough
	Movies   MovieService
	Series   SeriesService
	Requests RequestService
	Defaults Defaults
}
