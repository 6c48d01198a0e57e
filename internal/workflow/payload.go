package workflow

import (
	"errors"

	"github.com/arrbridge/arrbridge/internal/readarr"
)

// buildAddBookPayload merges the resolved author, edition candidates and
// profile defaults into the minimal add-request payload the library manager
// accepts. Pure function: no network calls, no recovery — the caller is
// responsible for having resolved everything first, and missing
// preconditions are reported as errors rather than papered over.
func buildAddBookPayload(
	book *readarr.Book,
	author *readarr.Author,
	editions []readarr.Edition,
	qualityProfileID, metadataProfileID int,
	rootFolderPath string,
	monitored, searchForNewBook bool,
) (*readarr.AddBookRequest, error) {
	if !author.Complete() {
		return nil, errors.New("assemble payload: author is not fully resolved")
	}
	if len(editions) == 0 {
		return nil, errors.New("assemble payload: no edition candidates")
	}
	for i := range editions {
		if editions[i].ForeignEditionID == "" {
			return nil, errors.New("assemble payload: edition candidate with empty identifier")
		}
	}
	if qualityProfileID == 0 || metadataProfileID == 0 {
		return nil, errors.New("assemble payload: profile ids are not resolved")
	}
	if rootFolderPath == "" {
		return nil, errors.New("assemble payload: root folder path is not resolved")
	}

	return &readarr.AddBookRequest{
		Title:         book.Title,
		ForeignBookID: book.ForeignBookID.String(),
		Monitored:     monitored,
		AddOptions:    readarr.AddOptions{SearchForNewBook: searchForNewBook},
		Author: readarr.AddAuthor{
			Monitored:         false,
			QualityProfileID:  qualityProfileID,
			MetadataProfileID: metadataProfileID,
			ForeignAuthorID:   author.ForeignAuthorID,
			RootFolderPath:    rootFolderPath,
		},
		Editions: editions,
	}, nil
}
