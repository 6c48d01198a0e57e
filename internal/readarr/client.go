// Package readarr implements the Readarr v1 API client used by the add-book
// workflow: author/book lookups, profile and root folder listings, and the
// add-book submission itself.
package readarr

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
)

const apiPrefix = "/api/v1"

// Client is a Readarr v1 API client.
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
		c.log = log.With("component", "readarr")
	}
}

// New creates a new Readarr client for the given instance.
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

// LookupAuthor searches the upstream author catalog by term.
func (c *Client) LookupAuthor(ctx context.Context, term string) ([]Author, error) {
	var authors []Author
	if err := c.get(ctx, "author lookup", "/author/lookup", url.Values{"term": {term}}, &authors); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Debug("author lookup", "term", term, "results", len(authors))
	}
	return authors, nil
}

// LookupBook searches the upstream book catalog by term.
func (c *Client) LookupBook(ctx context.Context, term string) ([]Book, error) {
	var books []Book
	if err := c.get(ctx, "book lookup", "/book/lookup", url.Values{"term": {term}}, &books); err != nil {
		return nil, err
	}
	if c.log != nil {
		c.log.Debug("book lookup", "term", term, "results", len(books))
	}
	return books, nil
}

// LookupEdition searches the book catalog by term and flattens the results
// into edition candidates. Books that carry no edition list but do carry
// their own foreign edition identifier become a single candidate.
func (c *Client) LookupEdition(ctx context.Context, term string) ([]Edition, error) {
	books, err := c.LookupBook(ctx, term)
	if err != nil {
		return nil, err
	}

	var editions []Edition
	for i := range books {
		b := &books[i]
		if len(b.Editions) > 0 {
			editions = append(editions, b.Editions...)
			continue
		}
		if id := b.ForeignEditionID.String(); id != "" {
			editions = append(editions, Edition{
				Title:            b.Title,
				TitleSlug:        b.TitleSlug,
				ForeignEditionID: id,
				Images:           b.Images,
			})
		}
	}
	return editions, nil
}

// AddBook submits an add-book payload. A non-2xx response is returned as a
// *StatusError carrying the upstream status and body.
func (c *Client) AddBook(ctx context.Context, payload *AddBookRequest) (*AddedBook, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal add payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+"/book", bytes.NewReader(body))
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
		return nil, ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Op: "add book", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var added AddedBook
	if err := json.Unmarshal(respBody, &added); err != nil {
		return nil, fmt.Errorf("decode add response: %w", err)
	}
	if c.log != nil {
		c.log.Info("book added", "title", added.Title, "id", added.ID)
	}
	return &added, nil
}

// QualityProfiles lists the upstream's quality profiles.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.get(ctx, "quality profiles", "/qualityprofile", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// MetadataProfiles lists the upstream's metadata profiles.
func (c *Client) MetadataProfiles(ctx context.Context) ([]MetadataProfile, error) {
	var profiles []MetadataProfile
	if err := c.get(ctx, "metadata profiles", "/metadataprofile", nil, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// RootFolders lists the upstream's configured root folders.
func (c *Client) RootFolders(ctx context.Context) ([]RootFolder, error) {
	var folders []RootFolder
	if err := c.get(ctx, "root folders", "/rootfolder", nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// get performs an authenticated GET and decodes a 2xx JSON response into out.
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
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(body)}
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
