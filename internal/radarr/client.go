// Package radarr implements the Radarr v3 API client and the one-shot
// add-movie flow: lookup, best-title selection, defaults, add with an
// immediate search.
package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/arrbridge/arrbridge/internal/upstream"
)

const apiPrefix = "/api/v3"

// Movie is a Radarr catalog entry, both lookup result and add payload.
type Movie struct {
	ID               int     `json:"id,omitempty"`
	Title            string  `json:"title"`
	Year             int     `json:"year,omitempty"`
	TmdbID           int     `json:"tmdbId"`
	TitleSlug        string  `json:"titleSlug,omitempty"`
	Overview         string  `json:"overview,omitempty"`
	QualityProfileID int     `json:"qualityProfileId,omitempty"`
	RootFolderPath   string  `json:"rootFolderPath,omitempty"`
	Monitored        bool    `json:"monitored"`
	Images           []Image `json:"images,omitempty"`

	AddOptions *AddOptions `json:"addOptions,omitempty"`
}

// Image is a remote artwork reference.
type Image struct {
	CoverType string `json:"coverType,omitempty"`
	RemoteURL string `json:"remoteUrl,omitempty"`
}

// AddOptions controls post-add behavior.
type AddOptions struct {
	SearchForMovie bool `json:"searchForMovie"`
}

// QualityProfile is a Radarr quality profile.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a configured library path.
type RootFolder struct {
	ID   int    `json:"id"`
	Path string `json:"path"`
}

// Client is a Radarr v3 API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "radarr")
	}
}

// New creates a new Radarr client for the given instance.
func New(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: trimTrailingSlash(baseURL),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Lookup searches the movie catalog by term.
func (c *Client) Lookup(ctx context.Context, term string) ([]Movie, error) {
	var movies []Movie
	if err := c.get(ctx, "movie lookup", "/movie/lookup", url.Values{"term": {term}}, &movies); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Debug("movie lookup", "term", term, "results", len(movies))
	}
	return movies, nil
}

// Add submits a movie to the library.
func (c *Client) Add(ctx context.Context, movie *Movie) (*Movie, error) {
	body, err := json.Marshal(movie)
	if err != nil {
		return nil, fmt.Errorf("marshal add payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/movie", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create add request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute add request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read add response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, upstream.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &upstream.StatusError{Op: "add movie", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var added Movie
	if err := json.Unmarshal(respBody, &added); err != nil {
		return nil, fmt.Errorf("decode add response: %w", err)
	}
	if c.log != nil {
		c.log.Info("movie added", "title", added.Title, "id", added.ID)
	}
	return &added, nil
}

// QualityProfiles lists the instance's quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.get(ctx, "quality profiles", "/qualityprofile", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// RootFolders lists the instance's configured root folders.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "root folders", "/rootfolder", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	c.setAuth(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return upstream.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &upstream.StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func (c *Client) setAuth(req *http.Request) {
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
}
