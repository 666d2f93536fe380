package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/target/subscription-admin/internal/domain/model"
)

// Status is the controller's fetch state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusErrored Status = "errored"
)

// ErrSuperseded is returned by a fetch whose result was discarded because a newer query was issued.
var ErrSuperseded = errors.New("list fetch superseded by a newer query")

// NoFilter is the filter type of lists that cannot be narrowed.
type NoFilter struct{}

// Query identifies exactly one list fetch.
type Query[F comparable] struct {
	Page     int
	PageSize int
	Filter   F
}

// Fetcher loads one page of a resource.
type Fetcher[T any, F comparable] interface {
	Fetch(ctx context.Context, q Query[F]) (model.Page[T], error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc[T any, F comparable] func(ctx context.Context, q Query[F]) (model.Page[T], error)

// Fetch implements Fetcher.
func (f FetchFunc[T, F]) Fetch(ctx context.Context, q Query[F]) (model.Page[T], error) {
	return f(ctx, q)
}

// Options configures a Controller.
type Options[T any, F comparable] struct {
	// Resource names the list in logs (e.g. "users").
	Resource string
	Fetcher  Fetcher[T, F]
	// Page and Filter seed the initial query. Page below 1 starts at 1.
	Page     int
	PageSize int
	Filter   F
	// CountKeys returns the filter-count keys an item contributes to; they are decremented when it is removed.
	CountKeys func(T) []string
	Logger    *slog.Logger
}

// State is an immutable snapshot of the controller.
// Items, Meta and Counts always come from the same fetch of Query.
type State[T any, F comparable] struct {
	Status    Status
	Requested Query[F]
	Query     Query[F]
	Items     []T
	Meta      model.PaginationMeta
	Counts    map[string]int
	Err       error
}

// Controller owns the page, filter, items and pagination of one list resource.
type Controller[T any, F comparable] struct {
	resource  string
	fetcher   Fetcher[T, F]
	countKeys func(T) []string
	logger    *slog.Logger

	mu        sync.Mutex
	gen       uint64
	requested Query[F]
	loaded    Query[F]
	status    Status
	items     []T
	meta      model.PaginationMeta
	counts    map[string]int
	err       error
}

// New constructs an idle controller. Nothing is fetched until Load is called.
func New[T any, F comparable](opts Options[T, F]) *Controller[T, F] {
	page := opts.Page
	if page < 1 {
		page = 1
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = model.DefaultPageSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller[T, F]{
		resource:  opts.Resource,
		fetcher:   opts.Fetcher,
		countKeys: opts.CountKeys,
		logger:    logger,
		requested: Query[F]{Page: page, PageSize: pageSize, Filter: opts.Filter},
		status:    StatusIdle,
	}
}

// Load fetches the currently requested query.
func (c *Controller[T, F]) Load(ctx context.Context) error {
	return c.fetch(ctx, func(*Query[F]) {})
}

// Refresh refetches the current page, typically after a mutation.
func (c *Controller[T, F]) Refresh(ctx context.Context) error {
	return c.Load(ctx)
}

// SetPage moves to page n (clamped to 1) and fetches it.
func (c *Controller[T, F]) SetPage(ctx context.Context, n int) error {
	if n < 1 {
		n = 1
	}
	return c.fetch(ctx, func(q *Query[F]) { q.Page = n })
}

// SetFilter switches the filter, resets to page 1, and fetches.
func (c *Controller[T, F]) SetFilter(ctx context.Context, f F) error {
	return c.fetch(ctx, func(q *Query[F]) {
		q.Filter = f
		q.Page = 1
	})
}

// fetch applies mutate to the requested query and runs the fetch. A result only lands if no newer
// fetch started meanwhile; otherwise it is discarded and ErrSuperseded returned.
func (c *Controller[T, F]) fetch(ctx context.Context, mutate func(*Query[F])) error {
	c.mu.Lock()
	mutate(&c.requested)
	c.gen++
	gen := c.gen
	q := c.requested
	c.status = StatusLoading
	c.mu.Unlock()

	if c.fetcher == nil {
		return c.settle(ctx, gen, q, model.Page[T]{}, errors.New("list fetcher not configured"))
	}
	page, err := c.fetcher.Fetch(ctx, q)
	return c.settle(ctx, gen, q, page, err)
}

func (c *Controller[T, F]) settle(ctx context.Context, gen uint64, q Query[F], page model.Page[T], err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return ErrSuperseded
	}

	if err != nil {
		c.status = StatusErrored
		c.err = err
		c.logger.ErrorContext(ctx, "list fetch failed",
			"resource", c.resource,
			"page", q.Page,
			"filter", q.Filter,
			"error", err,
		)
		return fmt.Errorf("fetch %s page %d: %w", c.resource, q.Page, err)
	}

	meta := page.Meta
	if meta.CurrentPage == 0 {
		meta.CurrentPage = q.Page
	}
	c.items = page.Items
	c.meta = meta
	c.counts = page.Counts
	c.loaded = q
	c.status = StatusLoaded
	c.err = nil
	return nil
}

// State returns a consistent snapshot.
func (c *Controller[T, F]) State() State[T, F] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	var counts map[string]int
	if c.counts != nil {
		counts = make(map[string]int, len(c.counts))
		for k, v := range c.counts {
			counts[k] = v
		}
	}

	meta := c.meta
	if meta.PageNumbers != nil {
		meta.PageNumbers = append([]model.PageEntry(nil), meta.PageNumbers...)
	}

	return State[T, F]{
		Status:    c.status,
		Requested: c.requested,
		Query:     c.loaded,
		Items:     items,
		Meta:      meta,
		Counts:    counts,
		Err:       c.err,
	}
}

// Window returns the page-number window for the loaded page.
func (c *Controller[T, F]) Window(maxVisible int) []model.PageEntry {
	c.mu.Lock()
	meta := c.meta
	c.mu.Unlock()
	return ResolveWindow(meta, maxVisible)
}

// PatchItem applies patch to the first item matching match. It reports whether an item was patched.
func (c *Controller[T, F]) PatchItem(match func(T) bool, patch func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if match(c.items[i]) {
			patch(&c.items[i])
			return true
		}
	}
	return false
}

// RemoveItem drops the first item matching match and decrements the implied totals.
func (c *Controller[T, F]) RemoveItem(match func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.removeLocked(match)
}

func (c *Controller[T, F]) removeLocked(match func(T) bool) bool {
	idx := -1
	for i := range c.items {
		if match(c.items[i]) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	removed := c.items[idx]
	items := make([]T, 0, len(c.items)-1)
	items = append(items, c.items[:idx]...)
	c.items = append(items, c.items[idx+1:]...)

	if c.meta.TotalCount > 0 {
		c.meta.TotalCount--
	}
	if len(c.items) == 0 {
		c.meta.StartIndex, c.meta.EndIndex = 0, 0
	} else if c.meta.EndIndex > 0 {
		c.meta.EndIndex--
	}
	if c.countKeys != nil && c.counts != nil {
		for _, key := range c.countKeys(removed) {
			if c.counts[key] > 0 {
				c.counts[key]--
			}
		}
	}
	return true
}

// Create runs a create call and refetches the current page on success.
func (c *Controller[T, F]) Create(ctx context.Context, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Update runs an update call and patches the matching item in place on success.
func (c *Controller[T, F]) Update(ctx context.Context, match func(T) bool, call func(context.Context, *T) error) error {
	c.mu.Lock()
	var current T
	found := false
	for _, it := range c.items {
		if match(it) {
			current, found = it, true
			break
		}
	}
	c.mu.Unlock()

	updated := current
	if err := call(ctx, &updated); err != nil {
		return err
	}
	if found {
		c.PatchItem(match, func(t *T) { *t = updated })
	}
	return nil
}

// Delete runs a delete call and reconciles the page. When the deleted item was the only one on a page
// past the first, the controller steps back one page and refetches so it never rests on an empty page.
// Otherwise the item is removed locally; an emptied first page is refetched. A list that was never
// loaded is simply refetched.
func (c *Controller[T, F]) Delete(ctx context.Context, match func(T) bool, call func(context.Context) error) error {
	if err := call(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	if c.status != StatusLoaded {
		c.mu.Unlock()
		return c.Refresh(ctx)
	}
	page := c.loaded.Page
	if len(c.items) <= 1 && page > 1 {
		c.mu.Unlock()
		return c.SetPage(ctx, page-1)
	}
	c.removeLocked(match)
	empty := len(c.items) == 0
	c.mu.Unlock()

	if empty {
		return c.Refresh(ctx)
	}
	return nil
}
