// Package filterform implements the draft/committed filter state used by
// admin list screens. Edits accumulate in a pending map and hit the
// network only on an explicit submit, so the displayed result set always
// reflects the last submission.
package filterform

import (
	"context"
	"net/url"
	"sync"

	"github.com/rs/zerolog"
)

// Fetcher retrieves the rows matching the given filter values.
type Fetcher[T any] func(ctx context.Context, filters url.Values) ([]T, error)

// Controller holds the pending (being edited) and applied (last
// submitted) filter sets for one list view. All methods are safe for
// concurrent use.
type Controller[T any] struct {
	mu      sync.Mutex
	pending url.Values
	applied url.Values
	results []T
	busy    bool

	fetch  Fetcher[T]
	logger zerolog.Logger
}

func NewController[T any](fetch Fetcher[T], logger zerolog.Logger) *Controller[T] {
	return &Controller[T]{
		pending: url.Values{},
		applied: url.Values{},
		results: []T{},
		fetch:   fetch,
		logger:  logger,
	}
}

// SetField updates the pending value for key. It never triggers a fetch.
func (c *Controller[T]) SetField(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if value == "" {
		c.pending.Del(key)
		return
	}
	c.pending.Set(key, value)
}

// Pending returns a copy of the filter values currently being edited.
func (c *Controller[T]) Pending() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.pending)
}

// Applied returns a copy of the filter values used for the last fetch.
func (c *Controller[T]) Applied() url.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneValues(c.applied)
}

// Results returns the rows from the last completed fetch.
func (c *Controller[T]) Results() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Loading reports whether a fetch is in flight.
func (c *Controller[T]) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Submit commits the pending filters and runs exactly one fetch with
// them. A submission while another fetch is in flight is dropped. On
// fetch failure the result set becomes empty and the error goes to the
// operator log.
func (c *Controller[T]) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.applied = cloneValues(c.pending)
	filters := cloneValues(c.applied)
	c.mu.Unlock()

	rows, err := c.fetch(ctx, filters)
	if err != nil {
		c.logger.Error().Err(err).Msg("filter fetch failed")
		rows = []T{}
	}
	if rows == nil {
		rows = []T{}
	}

	c.mu.Lock()
	c.results = rows
	c.busy = false
	c.mu.Unlock()
}

// Clear resets both filter sets to empty and refetches the unfiltered
// list, replacing the result set the same way Submit does.
func (c *Controller[T]) Clear(ctx context.Context) {
	c.mu.Lock()
	c.pending = url.Values{}
	c.mu.Unlock()
	c.Submit(ctx)
}

func cloneValues(v url.Values) url.Values {
	out := make(url.Values, len(v))
	for k, vals := range v {
		out[k] = append([]string(nil), vals...)
	}
	return out
}
