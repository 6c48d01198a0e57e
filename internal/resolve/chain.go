// Package resolve implements the cascading fallback resolution of author and
// edition metadata for the add-book workflow. Each resolver is an ordered
// chain of strategies; the first strategy to produce a usable result wins,
// individual strategy failures are logged and skipped, and only exhaustion of
// the whole chain is fatal.
package resolve

import (
	"context"
	"log/slog"
)

// strategy is one fallback resolution attempt. Run returns the resolved
// value and whether it is usable; an error means the attempt itself failed
// (e.g. an upstream lookup), which is non-fatal as long as a later strategy
// succeeds.
type strategy[T any] struct {
	name string
	run  func(ctx context.Context) (T, bool, error)
}

// runChain evaluates strategies in order and returns the first usable
// result. The second return reports whether any strategy won.
func runChain[T any](ctx context.Context, log *slog.Logger, kind string, strategies []strategy[T]) (T, bool) {
	var zero T
	for _, s := range strategies {
		result, ok, err := s.run(ctx)
		if err != nil {
			if log != nil {
				log.Warn("resolution strategy failed", "kind", kind, "strategy", s.name, "error", err)
			}
			continue
		}
		if !ok {
			if log != nil {
				log.Debug("resolution strategy produced no result", "kind", kind, "strategy", s.name)
			}
			continue
		}
		if log != nil {
			log.Debug("resolution strategy succeeded", "kind", kind, "strategy", s.name)
		}
		return result, true
	}
	return zero, false
}
