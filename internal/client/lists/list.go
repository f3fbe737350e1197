// Package lists holds the fetched entity lists shown by the console. A list
// is only ever replaced as a whole by re-fetching from the API; it is never
// patched with the result of a mutation.
package lists

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/stockdesk/internal/client/flow"
	"github.com/dmitrijs2005/stockdesk/internal/client/models"
	"github.com/dmitrijs2005/stockdesk/internal/logging"
)

// FetchFunc loads the full list from the API.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// List is the client copy of one entity list.
type List[T any] struct {
	kind  models.Kind
	fetch FetchFunc[T]
	log   logging.Logger

	mu     sync.RWMutex
	items  []T
	loaded bool
	stale  error
}

func New[T any](kind models.Kind, fetch FetchFunc[T], log logging.Logger) *List[T] {
	return &List[T]{kind: kind, fetch: fetch, log: log}
}

// Refresh re-fetches the list. On failure the previous contents are kept
// and the list is marked stale until the next successful refresh.
func (l *List[T]) Refresh(ctx context.Context) error {
	items, err := l.fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.stale = err
		l.log.Warn(ctx, "list refresh failed, keeping previous contents", "kind", l.kind, "error", err)
		return err
	}
	l.items = items
	l.loaded = true
	l.stale = nil
	l.log.Debug(ctx, "list refreshed", "kind", l.kind, "count", len(items))
	return nil
}

// Bind re-fetches the list every time sig is invalidated.
func (l *List[T]) Bind(sig *flow.RefreshSignal) (func(), error) {
	return sig.Subscribe(func(ctx context.Context) { _ = l.Refresh(ctx) })
}

// Items returns a copy of the current contents.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.items)
}

// Find returns the first item matching fn.
func (l *List[T]) Find(fn func(T) bool) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, it := range l.items {
		if fn(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Loaded reports whether at least one refresh succeeded.
func (l *List[T]) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Stale returns the error of the last refresh, or nil if it succeeded.
func (l *List[T]) Stale() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stale
}

// Clear drops the contents, e.g. on logout.
func (l *List[T]) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	l.loaded = false
	l.stale = nil
}
