package openlibrary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

// Wire shapes for the OpenLibrary search endpoints. Field names differ from
// the canonical shapes (`name` vs `authorName`, `key` vs `foreignAuthorId`),
// so everything is renamed here and nowhere else.

type authorSearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []authorDoc `json:"docs"`
}

type authorDoc struct {
	Key       string `json:"key"` // e.g. "OL26320A"
	Name      string `json:"name"`
	Biography string `json:"biography,omitempty"`
	TopWork   string `json:"top_work,omitempty"`
	WorkCount int    `json:"work_count,omitempty"`
	// Some author records expose bio as an object {type, value}.
	Bio json.RawMessage `json:"bio,omitempty"`
}

type bookSearchResponse struct {
	NumFound int       `json:"numFound"`
	Docs     []bookDoc `json:"docs"`
}

type bookDoc struct {
	Key         string   `json:"key"` // e.g. "/works/OL893415W"
	Title       string   `json:"title"`
	AuthorName  []string `json:"author_name,omitempty"`
	AuthorKey   []string `json:"author_key,omitempty"`
	ISBN        []string `json:"isbn,omitempty"`
	Subject     []string `json:"subject,omitempty"`
	CoverID     int      `json:"cover_i,omitempty"`
	EditionKeys []string `json:"edition_key,omitempty"`
}

// adaptAuthor translates an OpenLibrary author document into the canonical
// author shape.
func adaptAuthor(doc authorDoc) readarr.Author {
	a := readarr.Author{
		AuthorName:      doc.Name,
		ForeignAuthorID: strings.TrimPrefix(doc.Key, "/authors/"),
		Overview:        doc.Biography,
	}
	if a.Overview == "" && len(doc.Bio) > 0 {
		a.Overview = decodeBio(doc.Bio)
	}
	return a
}

// adaptBook translates an OpenLibrary work document into the canonical book
// shape, including the embedded author when present.
func adaptBook(doc bookDoc) readarr.Book {
	b := readarr.Book{
		Title:         doc.Title,
		ForeignBookID: readarr.FlexID(strings.TrimPrefix(doc.Key, "/works/")),
		Genres:        doc.Subject,
	}

	if len(doc.AuthorName) > 0 {
		author := &readarr.Author{AuthorName: doc.AuthorName[0]}
		if len(doc.AuthorKey) > 0 {
			author.ForeignAuthorID = doc.AuthorKey[0]
		}
		b.Author = author
		b.AuthorTitle = doc.AuthorName[0]
	}

	for _, isbn := range doc.ISBN {
		switch len(isbn) {
		case 13:
			if b.ISBN13 == "" {
				b.ISBN13 = isbn
			}
		case 10:
			if b.ISBN10 == "" {
				b.ISBN10 = isbn
			}
		}
	}

	if len(doc.EditionKeys) > 0 {
		b.Editions = []readarr.Edition{{
			Title:            doc.Title,
			ForeignEditionID: doc.EditionKeys[0],
		}}
	}

	if doc.CoverID != 0 {
		b.Images = []readarr.Image{{
			CoverType: "cover",
			URL:       fmt.Sprintf("https://covers.openlibrary.org/b/id/%d-L.jpg", doc.CoverID),
		}}
	}

	return b
}

// decodeBio handles the two encodings OpenLibrary uses for biographies:
// a plain string or an object {"type": ..., "value": ...}.
func decodeBio(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value
	}
	return ""
}
