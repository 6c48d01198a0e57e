// Package workflow sequences the multi-stage add-book workflow: search-term
// extraction, author and edition resolution, profile and root-folder
// defaults, payload assembly and submission. Stages are linear; any stage
// failure aborts the workflow, and retries exist only inside the resolvers'
// own fallback chains.
package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/arrbridge/arrbridge/internal/readarr"
	"github.com/arrbridge/arrbridge/internal/resolve"
)

// Request is the caller-supplied input for adding a book.
type Request struct {
	Term              string        `json:"term,omitempty"`
	Book              *readarr.Book `json:"book,omitempty"`
	QualityProfileID  int           `json:"qualityProfileId,omitempty"`
	MetadataProfileID int           `json:"metadataProfileId,omitempty"`
	RootFolderPath    string        `json:"rootFolderPath,omitempty"`
	Monitored         *bool         `json:"monitored,omitempty"`        // default true
	SearchForNewBook  *bool         `json:"searchForNewBook,omitempty"` // default true
}

// Result is the successful outcome of an add-book workflow.
type Result struct {
	Success bool               `json:"success"`
	Book    *readarr.AddedBook `json:"book,omitempty"`
	Message string             `json:"message"`
}

// Service orchestrates the add-book workflow against the configured
// providers.
type Service struct {
	upstream  Upstream
	secondary Bibliographic
	authors   *resolve.AuthorResolver
	editions  *resolve.EditionResolver
	log       *slog.Logger
}

// NewService creates the add-book workflow service. secondary may be nil
// when no bibliographic fallback is configured.
func NewService(upstream Upstream, secondary Bibliographic, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	var sec resolve.SecondaryProvider
	if secondary != nil {
		sec = secondary
	}
	return &Service{
		upstream:  upstream,
		secondary: secondary,
		authors:   resolve.NewAuthorResolver(upstream, sec, log.With("component", "resolve")),
		editions:  resolve.NewEditionResolver(upstream, log.With("component", "resolve")),
		log:       log.With("component", "workflow"),
	}
}

// AddBook runs the full workflow for one request.
func (s *Service) AddBook(ctx context.Context, req Request) (*Result, error) {
	term, err := extractSearchTerm(req)
	if err != nil {
		return nil, err
	}

	book := req.Book
	if book == nil {
		book = &readarr.Book{Title: term}
	}

	s.lookupAuthorCandidate(ctx, book, term)

	author, err := s.authors.Resolve(ctx, book, term)
	if err != nil {
		return nil, fmt.Errorf("resolving author for %q: %w", term, err)
	}
	s.log.Debug("author resolved", "term", term, "author", author.AuthorName, "foreignAuthorId", author.ForeignAuthorID)

	qualityID, metadataID, err := s.resolveProfiles(ctx, req)
	if err != nil {
		return nil, err
	}

	rootFolder, err := s.resolveRootFolder(ctx, req)
	if err != nil {
		return nil, err
	}

	editions, err := s.editions.Resolve(ctx, book, term)
	if err != nil {
		return nil, err
	}

	payload, err := buildAddBookPayload(
		book, author, editions,
		qualityID, metadataID, rootFolder,
		boolOrDefault(req.Monitored, true),
		boolOrDefault(req.SearchForNewBook, true),
	)
	if err != nil {
		return nil, err
	}

	added, err := s.upstream.AddBook(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("submitting add request: %w", err)
	}

	title := added.Title
	if title == "" {
		title = book.Title
	}
	s.log.Info("book added", "title", title, "foreignAuthorId", author.ForeignAuthorID)

	return &Result{
		Success: true,
		Book:    added,
		Message: fmt.Sprintf("Added %q to the library", title),
	}, nil
}

// extractSearchTerm derives the workflow's search term from the request.
// Fails before any network call when nothing usable is present.
func extractSearchTerm(req Request) (string, error) {
	for _, candidate := range []string{req.Term, bookTitle(req.Book), bookAuthorTitle(req.Book)} {
		if t := strings.TrimSpace(candidate); t != "" {
			return t, nil
		}
	}
	return "", ErrEmptySearchTerm
}

func bookTitle(b *readarr.Book) string {
	if b == nil {
		return ""
	}
	return b.Title
}

func bookAuthorTitle(b *readarr.Book) string {
	if b == nil {
		return ""
	}
	return b.AuthorTitle
}

// lookupAuthorCandidate tries to attach a complete author to the book with a
// single author lookup by the original search term, before the resolver's
// fallback chain runs. Failure is non-fatal; the resolver takes over.
func (s *Service) lookupAuthorCandidate(ctx context.Context, book *readarr.Book, term string) {
	if book.Author.Complete() {
		return
	}

	results, err := s.upstream.LookupAuthor(ctx, term)
	if err != nil {
		s.log.Warn("author candidate lookup failed", "term", term, "error", err)
		return
	}
	for i := range results {
		if results[i].Complete() {
			book.Author = &results[i]
			return
		}
	}
}

// resolveProfiles returns the quality and metadata profile IDs, fetching the
// upstream's lists for whichever the caller omitted. The two lists are
// independent reads, so they are fetched concurrently.
func (s *Service) resolveProfiles(ctx context.Context, req Request) (int, int, error) {
	qualityID, metadataID := req.QualityProfileID, req.MetadataProfileID
	if qualityID != 0 && metadataID != 0 {
		return qualityID, metadataID, nil
	}

	var (
		qualityProfiles  []readarr.QualityProfile
		metadataProfiles []readarr.MetadataProfile
	)

	g, gctx := errgroup.WithContext(ctx)
	if qualityID == 0 {
		g.Go(func() error {
			var err error
			qualityProfiles, err = s.upstream.QualityProfiles(gctx)
			return err
		})
	}
	if metadataID == 0 {
		g.Go(func() error {
			var err error
			metadataProfiles, err = s.upstream.MetadataProfiles(gctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, 0, fmt.Errorf("fetching profiles: %w", err)
	}

	if qualityID == 0 {
		if len(qualityProfiles) == 0 {
			return 0, 0, fmt.Errorf("%w: quality profile list is empty", ErrNoProfiles)
		}
		qualityID = qualityProfiles[0].ID
	}
	if metadataID == 0 {
		if len(metadataProfiles) == 0 {
			return 0, 0, fmt.Errorf("%w: metadata profile list is empty", ErrNoProfiles)
		}
		metadataID = metadataProfiles[0].ID
	}
	return qualityID, metadataID, nil
}

// resolveRootFolder returns the caller's root folder path or the first one
// configured on the upstream.
func (s *Service) resolveRootFolder(ctx context.Context, req Request) (string, error) {
	if req.RootFolderPath != "" {
		return req.RootFolderPath, nil
	}

	folders, err := s.upstream.RootFolders(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching root folders: %w", err)
	}
	if len(folders) == 0 {
		return "", ErrNoRootFolder
	}
	return folders[0].Path, nil
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
