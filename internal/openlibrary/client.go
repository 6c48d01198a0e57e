// Package openlibrary implements the secondary bibliographic provider used
// when the primary catalog cannot resolve an author or book. Results are
// adapted into the canonical readarr shapes at this boundary.
package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

const defaultBaseURL = "https://openlibrary.org"

// Client is an OpenLibrary search client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "openlibrary")
	}
}

// New creates a new OpenLibrary client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchAuthors searches OpenLibrary authors by name and adapts the results
// into the canonical author shape.
func (c *Client) SearchAuthors(ctx context.Context, term string) ([]readarr.Author, error) {
	var result authorSearchResponse
	if err := c.get(ctx, "author search", "/search/authors.json", url.Values{"q": {term}}, &result); err != nil {
		return nil, err
	}

	authors := make([]readarr.Author, 0, len(result.Docs))
	for _, doc := range result.Docs {
		if a := adaptAuthor(doc); a.AuthorName != "" {
			authors = append(authors, a)
		}
	}
	if c.log != nil {
		c.log.Debug("author search", "term", term, "results", len(authors))
	}
	return authors, nil
}

// SearchBooks searches OpenLibrary works by term and adapts the results into
// the canonical book shape.
func (c *Client) SearchBooks(ctx context.Context, term string) ([]readarr.Book, error) {
	var result bookSearchResponse
	if err := c.get(ctx, "book search", "/search.json", url.Values{"q": {term}}, &result); err != nil {
		return nil, err
	}

	books := make([]readarr.Book, 0, len(result.Docs))
	for _, doc := range result.Docs {
		if b := adaptBook(doc); b.Title != "" {
			books = append(books, b)
		}
	}
	if c.log != nil {
		c.log.Debug("book search", "term", term, "results", len(books))
	}
	return books, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	u := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create %s request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s request: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &readarr.StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}
