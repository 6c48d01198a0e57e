package resolve

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrAuthorResolution indicates every author resolution strategy was
// exhausted without producing a usable record.
var ErrAuthorResolution = errors.New("author resolution failed: all strategies exhausted")

// NoValidEditionError indicates no edition with a usable foreign identifier
// could be found or synthesized. It carries a diagnostic snapshot of
// everything that was known about the book so operators can see what the
// resolver had to work with. Upstream credentials are never included.
type NoValidEditionError struct {
	Term        string            `json:"term,omitempty"`
	Title       string            `json:"title,omitempty"`
	AuthorName  string            `json:"authorName,omitempty"`
	Identifiers map[string]string `json:"identifiers,omitempty"`
}

func (e *NoValidEditionError) Error() string {
	diag, err := json.Marshal(e)
	if err != nil {
		return "no valid edition could be resolved"
	}
	return fmt.Sprintf("no valid edition could be resolved: %s", diag)
}
