package workflow

import (
	"context"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

//go:generate mockgen -source=deps.go -destination=mocks/mocks.go -package=mocks

// Upstream is the library-manager API the workflow drives. Satisfied by
// *readarr.Client.
type Upstream interface {
	LookupAuthor(ctx context.Context, term string) ([]readarr.Author, error)
	LookupBook(ctx context.Context, term string) ([]readarr.Book, error)
	LookupEdition(ctx context.Context, term string) ([]readarr.Edition, error)
	AddBook(ctx context.Context, payload *readarr.AddBookRequest) (*readarr.AddedBook, error)
	QualityProfiles(ctx context.Context) ([]readarr.QualityProfile, error)
	MetadataProfiles(ctx context.Context) ([]readarr.MetadataProfile, error)
	RootFolders(ctx context.Context) ([]readarr.RootFolder, error)
}

// Bibliographic is the secondary metadata provider used by the author
// resolver. Satisfied by *openlibrary.Client.
type Bibliographic interface {
	SearchAuthors(ctx context.Context, term string) ([]readarr.Author, error)
	SearchBooks(ctx context.Context, term string) ([]readarr.Book, error)
}
