package resolve

import (
	"context"
	"io"
	"log/slog"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakePrimary is a scriptable PrimaryProvider.
type fakePrimary struct {
	lookupAuthor  func(term string) ([]readarr.Author, error)
	lookupBook    func(term string) ([]readarr.Book, error)
	lookupEdition func(term string) ([]readarr.Edition, error)

	editionTerms []string // terms passed to LookupEdition, in order
}

func (f *fakePrimary) LookupAuthor(_ context.Context, term string) ([]readarr.Author, error) {
	if f.lookupAuthor == nil {
		return nil, nil
	}
	return f.lookupAuthor(term)
}

func (f *fakePrimary) LookupBook(_ context.Context, term string) ([]readarr.Book, error) {
	if f.lookupBook == nil {
		return nil, nil
	}
	return f.lookupBook(term)
}

func (f *fakePrimary) LookupEdition(_ context.Context, term string) ([]readarr.Edition, error) {
	f.editionTerms = append(f.editionTerms, term)
	if f.lookupEdition == nil {
		return nil, nil
	}
	return f.lookupEdition(term)
}

// fakeSecondary is a scriptable SecondaryProvider.
type fakeSecondary struct {
	searchAuthors func(term string) ([]readarr.Author, error)
}

func (f *fakeSecondary) SearchAuthors(_ context.Context, term string) ([]readarr.Author, error) {
	if f.searchAuthors == nil {
		return nil, nil
	}
	return f.searchAuthors(term)
}
