// Package overseerr implements the Overseerr request-submission client.
package overseerr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/arrbridge/arrbridge/internal/upstream"
)

const apiPrefix = "/api/v1"

// MediaRequest asks Overseerr to request a movie or TV item. MediaID is the
// TMDB identifier; Seasons applies to TV requests only.
type MediaRequest struct {
	MediaType string `json:"mediaType"` // "movie" or "tv"
	MediaID   int    `json:"mediaId"`
	Seasons   []int  `json:"seasons,omitempty"`
}

// RequestResult is Overseerr's view of the created request.
type RequestResult struct {
	ID     int    `json:"id"`
	Status int    `json:"status"`
	Type   string `json:"type"`
	Media  struct {
		ID     int    `json:"id"`
		TmdbID int    `json:"tmdbId"`
		Status int    `json:"status"`
		Type   string `json:"mediaType"`
	} `json:"media"`
}

// Client is an Overseerr API client.
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
		c.log = log.With("component", "overseerr")
	}
}

// New creates a new Overseerr client for the given instance.
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

// SubmitRequest creates a media request.
func (c *Client) SubmitRequest(ctx context.Context, mr *MediaRequest) (*RequestResult, error) {
	if mr.MediaType != "movie" && mr.MediaType != "tv" {
		return nil, fmt.Errorf("media type must be movie or tv, got %q", mr.MediaType)
	}
	if mr.MediaID == 0 {
		return nil, fmt.Errorf("media id is required")
	}

	body, err := json.Marshal(mr)
	if err != nil {
		return nil, fmt.Errorf("marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/request", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, upstream.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &upstream.StatusError{Op: "submit request", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result RequestResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if c.log != nil {
		c.log.Info("media request submitted", "type", mr.MediaType, "mediaId", mr.MediaID, "requestId", result.ID)
	}
	return &result, nil
}
