package readarr

import (
	"bytes"
	"strconv"
)

// Image is a cover or banner reference attached to authors, books and editions.
type Image struct {
	CoverType string `json:"coverType,omitempty"`
	URL       string `json:"url,omitempty"`
}

// Ratings holds aggregate rating data for an author or book.
type Ratings struct {
	Votes int     `json:"votes"`
	Value float64 `json:"value"`
}

// FlexID is an identifier that upstream services serialize inconsistently,
// sometimes as a JSON string and sometimes as a number.
type FlexID string

// UnmarshalJSON accepts both string and numeric identifier encodings.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	*f = FlexID(data)
	return nil
}

func (f FlexID) String() string { return string(f) }

// Author is the canonical author shape used throughout the add workflow.
// Secondary-provider results are adapted into this shape at the client
// boundary.
type Author struct {
	AuthorName      string   `json:"authorName"`
	ForeignAuthorID string   `json:"foreignAuthorId"`
	TitleSlug       string   `json:"titleSlug,omitempty"`
	Overview        string   `json:"overview,omitempty"`
	Genres          []string `json:"genres,omitempty"`
	Images          []Image  `json:"images,omitempty"`
	Ratings         *Ratings `json:"ratings,omitempty"`
}

// Complete reports whether the author carries everything the add endpoint
// needs: a name and a foreign identifier.
func (a *Author) Complete() bool {
	return a != nil && a.AuthorName != "" && a.ForeignAuthorID != ""
}

// Edition is one published edition of a book. Upstream lookup results carry
// the identifier under several different field names; all are decoded so the
// resolver can pick whichever is present.
type Edition struct {
	Title            string  `json:"title,omitempty"`
	TitleSlug        string  `json:"titleSlug,omitempty"`
	ForeignEditionID string  `json:"foreignEditionId,omitempty"`
	Monitored        bool    `json:"monitored"`
	ManualAdd        bool    `json:"manualAdd"`
	Images           []Image `json:"images,omitempty"`

	// Alternate identifier spellings seen across providers.
	GoodreadsEditionID FlexID `json:"goodreadsEditionId,omitempty"`
	GoodreadsID        FlexID `json:"goodreadsId,omitempty"`
	ForeignID          FlexID `json:"foreignId,omitempty"`
	ForeignIDSnake     FlexID `json:"foreign_id,omitempty"`
	EditionID          FlexID `json:"editionId,omitempty"`
	ID                 FlexID `json:"id,omitempty"`
}

// Identifier returns the edition's usable foreign identifier, accepting the
// known field variants in preference order. Returns "" when none is set.
func (e *Edition) Identifier() string {
	for _, id := range []string{
		e.ForeignEditionID,
		e.GoodreadsEditionID.String(),
		e.GoodreadsID.String(),
		e.ForeignID.String(),
		e.ForeignIDSnake.String(),
		e.EditionID.String(),
		e.ID.String(),
	} {
		if id != "" {
			return id
		}
	}
	return ""
}

// Book is a partially-populated book record. The add workflow owns one Book
// per invocation and fills in Author and Editions as resolution proceeds.
type Book struct {
	Title            string    `json:"title,omitempty"`
	TitleSlug        string    `json:"titleSlug,omitempty"`
	AuthorTitle      string    `json:"authorTitle,omitempty"`
	SeriesTitle      string    `json:"seriesTitle,omitempty"`
	Author           *Author   `json:"author,omitempty"`
	ForeignBookID    FlexID    `json:"foreignBookId,omitempty"`
	ForeignEditionID FlexID    `json:"foreignEditionId,omitempty"`
	ISBN13           string    `json:"isbn13,omitempty"`
	ISBN10           string    `json:"isbn10,omitempty"`
	ASIN             string    `json:"asin,omitempty"`
	Genres           []string  `json:"genres,omitempty"`
	Images           []Image   `json:"images,omitempty"`
	Editions         []Edition `json:"editions,omitempty"`
	Overview         string    `json:"overview,omitempty"`
}

// QualityProfile is one entry from the upstream's quality profile list.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MetadataProfile is one entry from the upstream's metadata profile list.
type MetadataProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RootFolder is one entry from the upstream's root folder list.
type RootFolder struct {
	ID        int    `json:"id"`
	Path      string `json:"path"`
	FreeSpace int64  `json:"freeSpace,omitempty"`
}

// AddOptions controls post-add behavior on the upstream.
type AddOptions struct {
	SearchForNewBook bool `json:"searchForNewBook"`
}

// AddAuthor is the author sub-object of an add-book payload.
type AddAuthor struct {
	Monitored         bool   `json:"monitored"`
	QualityProfileID  int    `json:"qualityProfileId"`
	MetadataProfileID int    `json:"metadataProfileId"`
	ForeignAuthorID   string `json:"foreignAuthorId"`
	RootFolderPath    string `json:"rootFolderPath"`
}

// AddBookRequest is the wire payload submitted to POST /api/v1/book.
type AddBookRequest struct {
	Title         string     `json:"title,omitempty"`
	ForeignBookID string     `json:"foreignBookId,omitempty"`
	Monitored     bool       `json:"monitored"`
	AddOptions    AddOptions `json:"addOptions"`
	Author        AddAuthor  `json:"author"`
	Editions      []Edition  `json:"editions"`
}

// AddedBook is the upstream's response to a successful add.
type AddedBook struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	TitleSlug     string    `json:"titleSlug,omitempty"`
	ForeignBookID FlexID    `json:"foreignBookId,omitempty"`
	Monitored     bool      `json:"monitored"`
	Author        *Author   `json:"author,omitempty"`
	Editions      []Edition `json:"editions,omitempty"`
}
