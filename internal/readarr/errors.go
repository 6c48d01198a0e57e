package readarr

import (
	"github.com/arrbridge/arrbridge/internal/upstream"
)

// ErrUnauthorized indicates the configured API key was rejected.
var ErrUnauthorized = upstream.ErrUnauthorized

// StatusError is a non-2xx upstream response. Shared across the arr
// clients so callers can handle any upstream rejection uniformly.
type StatusError = upstream.StatusError
