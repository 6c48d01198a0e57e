package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/arrbridge/arrbridge/internal/readarr"
	"github.com/arrbridge/arrbridge/pkg/textmatch"
)

// EditionResolver ensures a book carries at least one edition with a
// non-empty foreign identifier, trying lookups over progressively weaker
// search terms and ending in synthetic-identifier synthesis.
type EditionResolver struct {
	primary PrimaryProvider
	log     *slog.Logger
	now     func() time.Time
}

// NewEditionResolver creates an edition resolver.
func NewEditionResolver(primary PrimaryProvider, log *slog.Logger) *EditionResolver {
	return &EditionResolver{primary: primary, log: log, now: time.Now}
}

// Resolve returns the edition candidates to submit, each in the minimal
// submission shape with a non-empty foreign identifier and monitored and
// manualAdd forced on. The book's edition list is updated in place. When no
// edition can be found or synthesized the resolver fails with
// *NoValidEditionError rather than allow an invalid payload.
//
// A caller-supplied explicit edition identifier on the book short-circuits
// the lookup passes entirely.
func (r *EditionResolver) Resolve(ctx context.Context, book *readarr.Book, term string) ([]readarr.Edition, error) {
	explicit := book.ForeignEditionID.String() != ""

	if !explicit {
		if len(book.Editions) == 0 {
			r.fillMissingEditions(ctx, book, term)
		}
		if len(book.Editions) > 0 && !anyEditionIdentifier(book.Editions) {
			r.repairEditionIdentifiers(ctx, book, term)
		}
	}

	candidates := transformEditions(book.Editions)

	if len(candidates) == 0 {
		fallback, ok := r.lastResortEdition(book)
		if !ok {
			return nil, newNoValidEditionError(book, term)
		}
		candidates = []readarr.Edition{fallback}
	}

	book.Editions = candidates
	return candidates, nil
}

// fillMissingEditions is the first resolution pass, used when the book has
// no editions at all: query the edition lookup per search term until one
// returns results, preferring an exact title match, and synthesize an
// edition when every lookup fails.
func (r *EditionResolver) fillMissingEditions(ctx context.Context, book *readarr.Book, term string) {
	for _, searchTerm := range editionSearchTerms(book, term) {
		results, err := r.primary.LookupEdition(ctx, searchTerm)
		if err != nil {
			if r.log != nil {
				r.log.Warn("edition lookup failed", "term", searchTerm, "error", err)
			}
			continue
		}
		if len(results) == 0 {
			continue
		}

		chosen := preferExactTitle(book.Title, results)
		chosen.Monitored = true
		book.Editions = []readarr.Edition{chosen}
		return
	}

	id := firstBookIdentifier(book)
	if id == "" {
		id = fmt.Sprintf("synthetic-%d", r.now().Unix())
	}
	if r.log != nil {
		r.log.Info("synthesizing edition, all lookups failed", "title", book.Title, "foreignEditionId", id)
	}
	book.Editions = []readarr.Edition{syntheticEdition(book, id)}
}

// repairEditionIdentifiers is the second pass, used when editions exist but
// none carries a recognizable identifier: repeat the lookup ladder,
// preferring the first result that does carry one, and fall back to a
// synthetic identifier when the ladder is exhausted.
func (r *EditionResolver) repairEditionIdentifiers(ctx context.Context, book *readarr.Book, term string) {
	for _, searchTerm := range editionSearchTerms(book, term) {
		results, err := r.primary.LookupEdition(ctx, searchTerm)
		if err != nil {
			if r.log != nil {
				r.log.Warn("edition lookup failed", "term", searchTerm, "error", err)
			}
			continue
		}
		for i := range results {
			if results[i].Identifier() != "" {
				chosen := results[i]
				chosen.Monitored = true
				book.Editions = []readarr.Edition{chosen}
				return
			}
		}
	}

	id := firstBookIdentifier(book)
	if id == "" {
		id = fmt.Sprintf("fallback-%d", r.now().Unix())
	}
	if r.log != nil {
		r.log.Info("no edition identifier found, using fallback", "title", book.Title, "foreignEditionId", id)
	}
	book.Editions = []readarr.Edition{syntheticEdition(book, id)}
}

// lastResortEdition builds one final candidate from raw book identifiers,
// or from a slugified title plus timestamp when the book has no identifiers
// at all. Returns false when even that is impossible.
func (r *EditionResolver) lastResortEdition(book *readarr.Book) (readarr.Edition, bool) {
	id := firstBookIdentifier(book)
	if id == "" && book.Title != "" {
		id = fmt.Sprintf("%s-%d", textmatch.Slugify(book.Title), r.now().Unix())
	}
	if id == "" {
		return readarr.Edition{}, false
	}
	return syntheticEdition(book, id), true
}

// transformEditions maps editions into the minimal submission shape,
// accepting identifiers from any known field variant and filtering out
// entries whose identifier is empty.
func transformEditions(editions []readarr.Edition) []readarr.Edition {
	var out []readarr.Edition
	for i := range editions {
		id := editions[i].Identifier()
		if id == "" {
			continue
		}
		out = append(out, readarr.Edition{
			Title:            editions[i].Title,
			TitleSlug:        editions[i].TitleSlug,
			Images:           editions[i].Images,
			ForeignEditionID: id,
			Monitored:        true,
			ManualAdd:        true,
		})
	}
	return out
}

// editionSearchTerms builds the ordered lookup ladder: strongest identifier
// first, weakest free-text last. Empty and duplicate terms are dropped.
func editionSearchTerms(book *readarr.Book, term string) []string {
	author := ""
	if book.Author != nil {
		author = book.Author.AuthorName
	}
	if author == "" {
		author = cleanupName(book.AuthorTitle, book.Title)
	}

	candidates := []string{
		book.ForeignEditionID.String(),
		book.ForeignBookID.String(),
		book.ISBN13,
		book.ISBN10,
		book.ASIN,
	}
	if book.Title != "" && author != "" {
		candidates = append(candidates, book.Title+" "+author, author+" "+book.Title)
	}
	candidates = append(candidates, book.Title, term)

	seen := make(map[string]bool, len(candidates))
	var terms []string
	for _, c := range candidates {
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		terms = append(terms, c)
	}
	return terms
}

// preferExactTitle returns the first result whose title equals the book's
// title case-insensitively, or the first result.
func preferExactTitle(title string, results []readarr.Edition) readarr.Edition {
	if title != "" {
		for i := range results {
			if strings.EqualFold(results[i].Title, title) {
				return results[i]
			}
		}
	}
	return results[0]
}

func anyEditionIdentifier(editions []readarr.Edition) bool {
	for i := range editions {
		if editions[i].Identifier() != "" {
			return true
		}
	}
	return false
}

// firstBookIdentifier returns the book's strongest raw identifier, if any.
func firstBookIdentifier(book *readarr.Book) string {
	for _, id := range []string{
		book.ForeignEditionID.String(),
		book.ForeignBookID.String(),
		book.ISBN13,
		book.ISBN10,
		book.ASIN,
	} {
		if id != "" {
			return id
		}
	}
	return ""
}

func syntheticEdition(book *readarr.Book, id string) readarr.Edition {
	slug := book.TitleSlug
	if slug == "" {
		slug = textmatch.Slugify(book.Title)
	}
	return readarr.Edition{
		Title:            book.Title,
		TitleSlug:        slug,
		Images:           book.Images,
		ForeignEditionID: id,
		Monitored:        true,
		ManualAdd:        true,
	}
}

func newNoValidEditionError(book *readarr.Book, term string) *NoValidEditionError {
	ids := make(map[string]string)
	for name, value := range map[string]string{
		"foreignEditionId": book.ForeignEditionID.String(),
		"foreignBookId":    book.ForeignBookID.String(),
		"isbn13":           book.ISBN13,
		"isbn10":           book.ISBN10,
		"asin":             book.ASIN,
	} {
		if value != "" {
			ids[name] = value
		}
	}

	author := ""
	if book.Author != nil {
		author = book.Author.AuthorName
	}

	return &NoValidEditionError{
		Term:        term,
		Title:       book.Title,
		AuthorName:  author,
		Identifiers: ids,
	}
}
