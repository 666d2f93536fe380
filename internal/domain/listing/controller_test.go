package listing

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/target/subscription-admin/internal/domain/model"
)

type row struct {
	ID       string
	Disabled bool
	Free     bool
}

func byID(id string) func(row) bool {
	return func(r row) bool { return r.ID == id }
}

// fakeBackend serves fixed-size pages out of an in-memory slice and records every query.
type fakeBackend struct {
	mu      sync.Mutex
	rows    []row
	size    int
	queries []Query[string]
	fail    error
}

func newFakeBackend(n, size int) *fakeBackend {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("r%d", i+1), Free: i%2 == 0}
	}
	return &fakeBackend{rows: rows, size: size}
}

func (b *fakeBackend) Fetch(_ context.Context, q Query[string]) (model.Page[row], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, q)
	if b.fail != nil {
		return model.Page[row]{}, b.fail
	}
	start := (q.Page - 1) * b.size
	end := min(start+b.size, len(b.rows))
	var items []row
	if start < len(b.rows) {
		items = append(items, b.rows[start:end]...)
	}
	meta := model.OffsetMeta(q.Page, b.size, len(b.rows), len(items))
	free := 0
	for _, r := range b.rows {
		if r.Free {
			free++
		}
	}
	return model.Page[row]{
		Items:  items,
		Meta:   meta,
		Counts: map[string]int{"all": len(b.rows), "free": free, "subscribers": len(b.rows) - free},
	}, nil
}

func (b *fakeBackend) delete(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, r := range b.rows {
		if r.ID == id {
			b.rows = append(b.rows[:i], b.rows[i+1:]...)
			return
		}
	}
}

func (b *fakeBackend) lastQuery() Query[string] {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.queries[len(b.queries)-1]
}

func newController(b *fakeBackend, page int) *Controller[row, string] {
	return New(Options[row, string]{
		Resource: "rows",
		Fetcher:  b,
		Page:     page,
		PageSize: b.size,
		Filter:   "all",
		CountKeys: func(r row) []string {
			if r.Free {
				return []string{"all", "free"}
			}
			return []string{"all", "subscribers"}
		},
	})
}

func TestController_LoadReplacesItemsAndMetaTogether(t *testing.T) {
	b := newFakeBackend(25, 10)
	c := newController(b, 2)

	assert.Equal(t, StatusIdle, c.State().Status)
	require.NoError(t, c.Load(context.Background()))

	st := c.State()
	assert.Equal(t, StatusLoaded, st.Status)
	require.Len(t, st.Items, 10)
	assert.Equal(t, "r11", st.Items[0].ID)
	assert.Equal(t, 2, st.Meta.CurrentPage)
	assert.Equal(t, st.Query.Page, st.Meta.CurrentPage)
	assert.True(t, st.Meta.HasPrevious)
	assert.True(t, st.Meta.HasNext)
}

func TestController_SetFilterResetsToFirstPage(t *testing.T) {
	b := newFakeBackend(25, 10)
	c := newController(b, 3)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.SetFilter(context.Background(), "free"))
	assert.Equal(t, Query[string]{Page: 1, PageSize: 10, Filter: "free"}, b.lastQuery())
	assert.Equal(t, "free", c.State().Query.Filter)
}

func TestController_SetPageClampsToOne(t *testing.T) {
	b := newFakeBackend(5, 10)
	c := newController(b, 1)
	require.NoError(t, c.SetPage(context.Background(), -4))
	assert.Equal(t, 1, b.lastQuery().Page)
}

func TestController_ErrorKeepsStaleItems(t *testing.T) {
	b := newFakeBackend(25, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	b.fail = errors.New("boom")
	err := c.SetPage(context.Background(), 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, b.fail)

	st := c.State()
	assert.Equal(t, StatusErrored, st.Status)
	assert.Equal(t, b.fail, st.Err)
	require.Len(t, st.Items, 10)
	assert.Equal(t, "r1", st.Items[0].ID, "stale items stay visible")
	assert.Equal(t, 1, st.Query.Page, "loaded query still describes the visible items")
	assert.Equal(t, 2, st.Requested.Page)
}

// blockingFetcher lets a test decide the order in which in-flight fetches complete.
type blockingFetcher struct {
	started chan Query[string]
	release map[int]chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context, q Query[string]) (model.Page[row], error) {
	f.started <- q
	select {
	case <-f.release[q.Page]:
	case <-ctx.Done():
		return model.Page[row]{}, ctx.Err()
	}
	return model.Page[row]{
		Items: []row{{ID: fmt.Sprintf("page-%d", q.Page)}},
		Meta:  model.PaginationMeta{CurrentPage: q.Page, TotalPages: 5},
	}, nil
}

func TestController_LastQueryWinsOverSlowEarlierFetch(t *testing.T) {
	f := &blockingFetcher{
		started: make(chan Query[string], 2),
		release: map[int]chan struct{}{2: make(chan struct{}), 3: make(chan struct{})},
	}
	c := New(Options[row, string]{Resource: "rows", Fetcher: f})

	errs := make(chan error, 2)
	go func() { errs <- c.SetPage(context.Background(), 2) }()
	<-f.started
	go func() { errs <- c.SetPage(context.Background(), 3) }()
	<-f.started

	close(f.release[3])
	require.NoError(t, <-errs)
	close(f.release[2])
	assert.ErrorIs(t, <-errs, ErrSuperseded)

	st := c.State()
	assert.Equal(t, 3, st.Query.Page)
	assert.Equal(t, 3, st.Meta.CurrentPage)
	require.Len(t, st.Items, 1)
	assert.Equal(t, "page-3", st.Items[0].ID)
}

func TestController_PatchItemTogglesIdempotently(t *testing.T) {
	b := newFakeBackend(3, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	disable := func(r *row) { r.Disabled = true }
	assert.True(t, c.PatchItem(byID("r2"), disable))
	assert.True(t, c.PatchItem(byID("r2"), disable))
	assert.True(t, c.State().Items[1].Disabled)
	assert.False(t, c.PatchItem(byID("missing"), disable))
}

func TestController_UpdateReplacesMatchingItem(t *testing.T) {
	b := newFakeBackend(3, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	err := c.Update(context.Background(), byID("r3"), func(_ context.Context, r *row) error {
		assert.Equal(t, "r3", r.ID, "update sees the current item")
		r.Disabled = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, c.State().Items[2].Disabled)

	callErr := errors.New("rejected")
	err = c.Update(context.Background(), byID("r1"), func(_ context.Context, r *row) error {
		r.Disabled = true
		return callErr
	})
	assert.ErrorIs(t, err, callErr)
	assert.False(t, c.State().Items[0].Disabled, "failed update leaves state untouched")
}

func TestController_RemoveItemDecrementsCounts(t *testing.T) {
	b := newFakeBackend(4, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	require.True(t, c.RemoveItem(byID("r1")))
	st := c.State()
	assert.Len(t, st.Items, 3)
	assert.Equal(t, 3, st.Meta.TotalCount)
	assert.Equal(t, 3, st.Meta.EndIndex)
	assert.Equal(t, 3, st.Counts["all"])
	assert.Equal(t, 1, st.Counts["free"])
	assert.Equal(t, 2, st.Counts["subscribers"])
}

func TestController_DeleteLastItemStepsBackAPage(t *testing.T) {
	b := newFakeBackend(21, 10)
	c := newController(b, 3)
	require.NoError(t, c.Load(context.Background()))
	require.Len(t, c.State().Items, 1)

	err := c.Delete(context.Background(), byID("r21"), func(context.Context) error {
		b.delete("r21")
		return nil
	})
	require.NoError(t, err)

	st := c.State()
	assert.Equal(t, 2, b.lastQuery().Page, "page 2 is refetched")
	assert.Equal(t, 2, st.Query.Page)
	assert.Len(t, st.Items, 10)
	assert.Equal(t, 2, st.Meta.TotalPages)
}

func TestController_DeleteRemovesLocallyWhenPageStillHasItems(t *testing.T) {
	b := newFakeBackend(25, 10)
	c := newController(b, 2)
	require.NoError(t, c.Load(context.Background()))
	fetches := len(b.queries)

	err := c.Delete(context.Background(), byID("r12"), func(context.Context) error {
		b.delete("r12")
		return nil
	})
	require.NoError(t, err)

	st := c.State()
	assert.Len(t, b.queries, fetches, "no refetch needed")
	assert.Len(t, st.Items, 9)
	assert.Equal(t, 24, st.Meta.TotalCount)
	for _, it := range st.Items {
		assert.NotEqual(t, "r12", it.ID)
	}
}

func TestController_DeleteOnlyItemOnFirstPageRefetches(t *testing.T) {
	b := newFakeBackend(1, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Delete(context.Background(), byID("r1"), func(context.Context) error {
		b.delete("r1")
		return nil
	}))

	st := c.State()
	assert.Equal(t, 1, st.Query.Page)
	assert.Empty(t, st.Items)
	assert.Len(t, b.queries, 2)
}

func TestController_DeleteOnUnloadedListRefetchesRequestedPage(t *testing.T) {
	b := newFakeBackend(21, 10)
	c := newController(b, 3)

	require.NoError(t, c.Delete(context.Background(), byID("r21"), func(context.Context) error {
		b.delete("r21")
		return nil
	}))

	st := c.State()
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, 3, st.Query.Page, "no step back without a loaded page to judge")
	assert.Len(t, b.queries, 1)
}

func TestController_DeleteFailureLeavesStateUntouched(t *testing.T) {
	b := newFakeBackend(21, 10)
	c := newController(b, 3)
	require.NoError(t, c.Load(context.Background()))

	callErr := errors.New("conflict")
	err := c.Delete(context.Background(), byID("r21"), func(context.Context) error { return callErr })
	assert.ErrorIs(t, err, callErr)
	assert.Equal(t, 3, c.State().Query.Page)
	assert.Len(t, c.State().Items, 1)
}

func TestController_CreateRefetchesCurrentPage(t *testing.T) {
	b := newFakeBackend(3, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	require.NoError(t, c.Create(context.Background(), func(context.Context) error {
		b.rows = append(b.rows, row{ID: "new"})
		return nil
	}))
	st := c.State()
	assert.Len(t, st.Items, 4)
	assert.Equal(t, "new", st.Items[3].ID)
}

func TestController_StateIsACopy(t *testing.T) {
	b := newFakeBackend(3, 10)
	c := newController(b, 1)
	require.NoError(t, c.Load(context.Background()))

	st := c.State()
	st.Items[0].ID = "mutated"
	st.Counts["all"] = 99
	assert.Equal(t, "r1", c.State().Items[0].ID)
	assert.Equal(t, 3, c.State().Counts["all"])
}

func TestController_WindowFallsBackToDerived(t *testing.T) {
	b := newFakeBackend(100, 10)
	c := newController(b, 5)
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, "1 ... 4 5 6 ... 10", render(c.Window(MaxVisibleDesktop)))
	assert.Equal(t, "1 ... 5 ... 10", render(c.Window(MaxVisibleMobile)))
}

func TestController_NilFetcherErrors(t *testing.T) {
	c := New(Options[row, string]{Resource: "rows"})
	assert.Error(t, c.Load(context.Background()))
	assert.Equal(t, StatusErrored, c.State().Status)
}
