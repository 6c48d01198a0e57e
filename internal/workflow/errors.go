package workflow

import "errors"

var (
	// ErrEmptySearchTerm indicates the request carried neither a search term
	// nor a book title to derive one from. Checked before any network call.
	ErrEmptySearchTerm = errors.New("request must include a search term or a book title")

	// ErrNoProfiles indicates the upstream's quality or metadata profile
	// list is empty, so no default profile can be chosen.
	ErrNoProfiles = errors.New("no profiles available on upstream")

	// ErrNoRootFolder indicates the upstream has no root folders configured
	// and the caller did not supply a path.
	ErrNoRootFolder = errors.New("no root folder available on upstream")
)
