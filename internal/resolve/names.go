package resolve

import (
	"regexp"
	"strings"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

// minCandidateLen filters out fragments too short to be a plausible author
// name during candidate extraction.
const minCandidateLen = 3

var (
	// "Some Title by Author Name" -> "Author Name"
	byPattern = regexp.MustCompile(`(?i)\bby\s+(.+)$`)
	// standalone "by" left over after other stripping
	byWord = regexp.MustCompile(`(?i)\bby\b`)
	// trailing series markers like "#3" or "#1-3 omnibus"
	seriesMarker = regexp.MustCompile(`#\d.*$`)
	// parenthesized asides like "(Dune Chronicles #1)"
	parenthetical = regexp.MustCompile(`\([^)]*\)`)

	quoteStripper = strings.NewReplacer(`"`, "", "'", "", "“", "", "”", "", "‘", "", "’", "")
)

// cleanupName reduces a raw candidate string to a plausible author name:
// the book's own title, the word "by", series markers, parentheticals and
// quotes are stripped, whitespace is collapsed, and a comma-separated
// "Last, First" form is flipped to "First Last".
func cleanupName(candidate, bookTitle string) string {
	s := candidate
	if bookTitle != "" {
		s = stripCaseInsensitive(s, bookTitle)
	}
	s = parenthetical.ReplaceAllString(s, " ")
	s = seriesMarker.ReplaceAllString(s, " ")
	s = byWord.ReplaceAllString(s, " ")
	s = quoteStripper.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.Trim(s, " ,.-")
	return commaFlip(s)
}

// commaFlip turns "Herbert, Frank" into "Frank Herbert". Strings with more
// than one comma are left alone.
func commaFlip(s string) string {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return s
	}
	last := strings.TrimSpace(parts[0])
	first := strings.TrimSpace(parts[1])
	if last == "" || first == "" {
		return s
	}
	return first + " " + last
}

// stripCaseInsensitive removes the first case-insensitive occurrence of sub
// from s.
func stripCaseInsensitive(s, sub string) string {
	idx := strings.Index(strings.ToLower(s), strings.ToLower(sub))
	if idx < 0 {
		return s
	}
	return s[:idx] + s[idx+len(sub):]
}

// authorCandidates derives candidate author-name strings from the book's
// authorTitle, from a "by <name>" pattern in the book title, and from the
// same pattern in the original search term. Candidates are deduplicated and
// filtered to a minimum length.
func authorCandidates(book *readarr.Book, term string) []string {
	var raw []string

	if book.AuthorTitle != "" {
		raw = append(raw, cleanupName(book.AuthorTitle, book.Title))
	}
	if m := byPattern.FindStringSubmatch(book.Title); m != nil {
		raw = append(raw, cleanupName(m[1], ""))
	}
	if m := byPattern.FindStringSubmatch(term); m != nil {
		raw = append(raw, cleanupName(m[1], book.Title))
	}

	seen := make(map[string]bool, len(raw))
	var candidates []string
	for _, c := range raw {
		if len(c) < minCandidateLen {
			continue
		}
		key := strings.ToLower(c)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, c)
	}
	return candidates
}

// patternName re-derives an author name from title, authorTitle and series
// title patterns. Used by the synthetic-author fallback, which accepts
// shorter names than candidate extraction does.
func patternName(book *readarr.Book) string {
	for _, src := range []string{book.AuthorTitle, book.Title, book.SeriesTitle} {
		if src == "" {
			continue
		}
		if m := byPattern.FindStringSubmatch(src); m != nil {
			if name := cleanupName(m[1], book.Title); len(name) >= 2 {
				return name
			}
		}
	}
	if book.AuthorTitle != "" {
		if name := cleanupName(book.AuthorTitle, book.Title); len(name) >= 2 {
			return name
		}
	}
	return ""
}
