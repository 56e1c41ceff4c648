package storefront

import (
	"context"
	"testing"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewedIDs(r *RecentlyViewed) []int {
	var ids []int
	for _, e := range r.List(0) {
		ids = append(ids, e.ID)
	}
	return ids
}

func TestRecentlyViewed_BoundedAndMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	r := OpenRecentlyViewed(ctx, newRecordingStore(), Options{})

	for id := 1; id <= 10; id++ {
		r.Add(ctx, product(t, id))
	}
	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3}, viewedIDs(r))
}

func TestRecentlyViewed_RevisitMovesToFront(t *testing.T) {
	ctx := context.Background()
	r := OpenRecentlyViewed(ctx, newRecordingStore(), Options{})

	r.Add(ctx, product(t, 1))
	r.Add(ctx, product(t, 2))
	r.Add(ctx, product(t, 3))
	r.Add(ctx, product(t, 1))

	assert.Equal(t, []int{1, 3, 2}, viewedIDs(r))
	assert.Len(t, r.List(2), 2)
}

func TestRecentlyViewed_IgnoresMissingID(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	r := OpenRecentlyViewed(ctx, store, Options{})

	assert.False(t, r.Add(ctx, catalog.Product{Name: "ghost"}))
	assert.Empty(t, r.List(0))
	assert.Equal(t, 0, store.setCount(KeyRecentlyViewed))
}

func TestRecentlyViewed_ClearDeletesKey(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	r := OpenRecentlyViewed(ctx, store, Options{})
	r.Add(ctx, product(t, 4))

	r.Clear(ctx)
	assert.Empty(t, r.List(0))
	assert.Equal(t, 1, store.deletes[KeyRecentlyViewed])
	assert.Empty(t, store.Keys())
}

func TestRecentlyViewed_TruncatesOversizedSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	first := OpenRecentlyViewed(ctx, store, Options{})
	for id := 1; id <= 8; id++ {
		first.Add(ctx, product(t, id))
	}

	again := OpenRecentlyViewed(ctx, store, Options{})
	require.Len(t, again.List(0), RecentlyViewedCapacity)
	assert.Equal(t, viewedIDs(first), viewedIDs(again))
}
