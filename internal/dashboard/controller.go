// Package dashboard implements the screen-side contract around the core:
// fetch a collection through the gateway, run the list query over it, and
// decorate rows with status names and available actions. It owns the busy
// flag and the stale-response guard on behalf of the calling screen.
package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/openhms/hospital-portal/internal/listquery"
)

// ErrBusy is returned when a refresh is requested while one is in flight.
// Screens disable the triggering control for the duration; a second request
// is a duplicate submission, not a queue entry.
var ErrBusy = errors.New("dashboard: refresh already in flight")

// Fetcher loads the full collection a screen renders.
type Fetcher[T any] func(ctx context.Context, token string) ([]T, error)

// ListController pairs a fetcher with list-query state. On a failed refresh
// the previously fetched records stay visible.
type ListController[T any] struct {
	fetch    Fetcher[T]
	fields   func(T) []string
	statusOf func(T) string

	mu         sync.Mutex
	state      *listquery.State
	records    []T
	busy       bool
	generation uint64
}

// NewListController creates a controller with the given page size. fields
// selects the searchable text of a record; statusOf resolves its status name
// for the status filter. Either may be nil to disable that filter.
func NewListController[T any](fetch Fetcher[T], pageSize int, fields func(T) []string, statusOf func(T) string) *ListController[T] {
	return &ListController[T]{
		fetch:    fetch,
		fields:   fields,
		statusOf: statusOf,
		state:    listquery.NewState(pageSize),
	}
}

// Refresh replaces the controller's records with a fresh fetch. While one
// fetch is outstanding further calls fail with ErrBusy. A response that
// comes back after Invalidate is discarded explicitly rather than applied
// to a screen that no longer wants it.
func (c *ListController[T]) Refresh(ctx context.Context, token string) error {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	gen := c.generation
	c.mu.Unlock()

	records, err := c.fetch(ctx, token)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
	if err != nil {
		// Last good data stays; the screen shows a banner over it.
		return err
	}
	if gen != c.generation {
		// Stale response: the screen navigated away or reset meanwhile.
		return nil
	}
	c.records = records
	return nil
}

// Invalidate marks any in-flight response as unwanted and clears the
// current records. Called when the screen unmounts or the identity changes.
func (c *ListController[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.records = nil
}

// Busy reports whether a refresh is outstanding.
func (c *ListController[T]) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// SetSearch updates the search term, resetting to page 1 on change.
func (c *ListController[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetTerm(term)
}

// SetStatusFilter updates the status filter, resetting to page 1 on change.
func (c *ListController[T]) SetStatusFilter(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetStatusFilter(name)
}

// SetPage moves to the requested page; out-of-range requests are ignored.
func (c *ListController[T]) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	current := listquery.Apply(c.records, c.state.Query(), c.fields, c.statusOf)
	c.state.SetPage(page, current.TotalPages)
}

// Page evaluates the current query over the fetched records.
func (c *ListController[T]) Page() listquery.Page[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return listquery.Apply(c.records, c.state.Query(), c.fields, c.statusOf)
}
