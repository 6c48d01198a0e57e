package resolve

import (
	"context"
	"log/slog"
	"strings"

	"github.com/arrbridge/arrbridge/internal/readarr"
	"github.com/arrbridge/arrbridge/pkg/textmatch"
)

// unknownAuthorName is the last-resort author name when nothing better can
// be derived from the book.
const unknownAuthorName = "Unknown Author"

// PrimaryProvider is the subset of the library-manager API the resolvers
// need for lookups.
type PrimaryProvider interface {
	LookupAuthor(ctx context.Context, term string) ([]readarr.Author, error)
	LookupBook(ctx context.Context, term string) ([]readarr.Book, error)
	LookupEdition(ctx context.Context, term string) ([]readarr.Edition, error)
}

// SecondaryProvider is the bibliographic metadata service used as a
// fallback when the primary catalog has no usable author.
type SecondaryProvider interface {
	SearchAuthors(ctx context.Context, term string) ([]readarr.Author, error)
}

// AuthorResolver produces an author record with a stable foreign identifier
// for a partially-described book, trying progressively weaker strategies.
type AuthorResolver struct {
	primary   PrimaryProvider
	secondary SecondaryProvider
	log       *slog.Logger
}

// NewAuthorResolver creates an author resolver.
func NewAuthorResolver(primary PrimaryProvider, secondary SecondaryProvider, log *slog.Logger) *AuthorResolver {
	return &AuthorResolver{primary: primary, secondary: secondary, log: log}
}

// Resolve returns an author with both a name and a foreign identifier,
// attaching it to the book. A book that already carries a complete author
// is returned unchanged. Exhaustion of every strategy returns
// ErrAuthorResolution.
func (r *AuthorResolver) Resolve(ctx context.Context, book *readarr.Book, term string) (*readarr.Author, error) {
	if book.Author.Complete() {
		return book.Author, nil
	}

	candidates := authorCandidates(book, term)

	author, ok := runChain(ctx, r.log, "author", []strategy[*readarr.Author]{
		{name: "primary-lookup", run: func(ctx context.Context) (*readarr.Author, bool, error) {
			return r.fromPrimaryLookup(ctx, candidates)
		}},
		{name: "secondary-lookup", run: func(ctx context.Context) (*readarr.Author, bool, error) {
			return r.fromSecondaryLookup(ctx, candidates)
		}},
		{name: "book-id-metadata", run: func(ctx context.Context) (*readarr.Author, bool, error) {
			return r.fromBookMetadata(ctx, book)
		}},
		{name: "pattern-synthetic", run: func(ctx context.Context) (*readarr.Author, bool, error) {
			return syntheticFromPattern(book)
		}},
		{name: "generic-fallback", run: func(ctx context.Context) (*readarr.Author, bool, error) {
			return genericFallback(book)
		}},
	})
	if !ok {
		return nil, ErrAuthorResolution
	}

	book.Author = author
	return author, nil
}

// fromPrimaryLookup queries the primary catalog per candidate, in candidate
// order. A single candidate's lookup failure is logged and the loop
// proceeds; the first candidate yielding a usable match wins.
func (r *AuthorResolver) fromPrimaryLookup(ctx context.Context, candidates []string) (*readarr.Author, bool, error) {
	for _, candidate := range candidates {
		results, err := r.primary.LookupAuthor(ctx, candidate)
		if err != nil {
			if r.log != nil {
				r.log.Warn("primary author lookup failed", "candidate", candidate, "error", err)
			}
			continue
		}
		if match := bestAuthorMatch(candidate, results); match != nil {
			return match, true, nil
		}
	}
	return nil, false, nil
}

func (r *AuthorResolver) fromSecondaryLookup(ctx context.Context, candidates []string) (*readarr.Author, bool, error) {
	if r.secondary == nil {
		return nil, false, nil
	}
	for _, candidate := range candidates {
		results, err := r.secondary.SearchAuthors(ctx, candidate)
		if err != nil {
			if r.log != nil {
				r.log.Warn("secondary author lookup failed", "candidate", candidate, "error", err)
			}
			continue
		}
		if len(results) > 0 && results[0].AuthorName != "" {
			return &results[0], true, nil
		}
	}
	return nil, false, nil
}

// fromBookMetadata looks up book metadata by the book's foreign identifier
// and takes its embedded author if present.
func (r *AuthorResolver) fromBookMetadata(ctx context.Context, book *readarr.Book) (*readarr.Author, bool, error) {
	id := book.ForeignBookID.String()
	if id == "" {
		return nil, false, nil
	}
	results, err := r.primary.LookupBook(ctx, id)
	if err != nil {
		return nil, false, err
	}
	for i := range results {
		if a := results[i].Author; a != nil && a.AuthorName != "" {
			return a, true, nil
		}
	}
	return nil, false, nil
}

// syntheticFromPattern fabricates an author from a name re-derived from
// title, authorTitle or series-title patterns.
func syntheticFromPattern(book *readarr.Book) (*readarr.Author, bool, error) {
	name := patternName(book)
	if len(name) < 2 {
		return nil, false, nil
	}
	return &readarr.Author{
		AuthorName:      name,
		ForeignAuthorID: textmatch.Slugify(name),
		Ratings:         &readarr.Ratings{},
		Images:          []readarr.Image{},
	}, true, nil
}

// genericFallback fabricates an author for any book that has at least a
// title or a foreign identifier to anchor it.
func genericFallback(book *readarr.Book) (*readarr.Author, bool, error) {
	if book.Title == "" && !hasAnyIdentifier(book) {
		return nil, false, nil
	}
	name := cleanupName(book.AuthorTitle, book.Title)
	if name == "" {
		name = unknownAuthorName
	}
	slug := textmatch.Slugify(name)
	if slug == "" {
		slug = "unknown"
	}
	return &readarr.Author{
		AuthorName:      name,
		ForeignAuthorID: slug,
		Ratings:         &readarr.Ratings{},
		Images:          []readarr.Image{},
	}, true, nil
}

func hasAnyIdentifier(book *readarr.Book) bool {
	return book.ForeignBookID != "" ||
		book.ForeignEditionID != "" ||
		book.ISBN13 != "" ||
		book.ISBN10 != "" ||
		book.ASIN != ""
}

// bestAuthorMatch picks the best result for a candidate name using
// case-insensitive, punctuation-stripped comparison: an exact match wins
// immediately, otherwise the first containment match, otherwise the first
// result. Returns nil when no result carries a usable name.
func bestAuthorMatch(candidate string, results []readarr.Author) *readarr.Author {
	cleanCandidate := textmatch.CleanName(candidate)

	var containment *readarr.Author
	var first *readarr.Author

	for i := range results {
		a := &results[i]
		if a.AuthorName == "" {
			continue
		}
		if first == nil {
			first = a
		}
		cleanResult := textmatch.CleanName(a.AuthorName)
		if cleanResult == cleanCandidate {
			return a
		}
		if containment == nil &&
			(strings.Contains(cleanResult, cleanCandidate) || strings.Contains(cleanCandidate, cleanResult)) {
			containment = a
		}
	}

	if containment != nil {
		return containment
	}
	return first
}
