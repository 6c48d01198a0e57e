// Package upstream holds the error types shared by every upstream API
// client: Readarr, Radarr, Sonarr, Overseerr and the secondary metadata
// provider.
package upstream

import (
	"errors"
	"fmt"
)

// ErrUnauthorized indicates the configured API key was rejected.
var ErrUnauthorized = errors.New("unauthorized: invalid api key")

// maxBodyInError limits how much upstream response body is embedded in an
// error message. The full body is still available via StatusError.Body.
const maxBodyInError = 200

// StatusError is a non-2xx upstream response, carrying the status code and
// body verbatim for operator diagnosis.
type StatusError struct {
	Op         string // which operation failed, e.g. "book lookup"
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > maxBodyInError {
		body = body[:maxBodyInError] + "..."
	}
	return fmt.Sprintf("%s: upstream returned HTTP %d: %s", e.Op, e.StatusCode, body)
}
