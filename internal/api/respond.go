package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/arrbridge/arrbridge/internal/resolve"
	"github.com/arrbridge/arrbridge/internal/upstream"
	"github.com/arrbridge/arrbridge/internal/workflow"
)

// failure is the error envelope returned for any failed action.
type failure struct {
	Success     bool   `json:"success"`
	Error       string `json:"error"`
	Diagnostics any    `json:"diagnostics,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, diagnostics any) {
	writeJSON(w, status, failure{Success: false, Error: msg, Diagnostics: diagnostics})
}

// writeActionError maps a failed action to an HTTP status: caller mistakes
// are 400, upstream rejections are 502, and resolution dead-ends are 422.
// Edition-resolution failures carry their diagnostic snapshot.
func writeActionError(w http.ResponseWriter, err error) {
	var editionErr *resolve.NoValidEditionError
	if errors.As(err, &editionErr) {
		writeError(w, http.StatusUnprocessableEntity, "no valid edition could be resolved", map[string]any{
			"term":        editionErr.Term,
			"title":       editionErr.Title,
			"authorName":  editionErr.AuthorName,
			"identifiers": editionErr.Identifiers,
		})
		return
	}

	var statusErr *upstream.StatusError
	switch {
	case errors.Is(err, workflow.ErrEmptySearchTerm):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, upstream.ErrUnauthorized):
		writeError(w, http.StatusBadGateway, err.Error(), nil)
	case errors.As(err, &statusErr):
		writeError(w, http.StatusBadGateway, err.Error(), map[string]any{
			"upstreamStatus": statusErr.StatusCode,
		})
	default:
		writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	}
}
