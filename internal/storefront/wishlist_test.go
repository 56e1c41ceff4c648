package storefront

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlist_AddIsIdempotentAndToggleRemoves(t *testing.T) {
	ctx := context.Background()
	w := OpenWishlist(ctx, newRecordingStore(), Options{})
	p := product(t, 7)

	assert.True(t, w.Add(ctx, p))
	assert.False(t, w.Add(ctx, p))
	assert.Equal(t, 1, w.Count())
	assert.True(t, w.Contains(7))

	assert.False(t, w.Toggle(ctx, p))
	assert.Equal(t, 0, w.Count())
	assert.False(t, w.Contains(7))

	assert.True(t, w.Toggle(ctx, p))
	assert.True(t, w.Contains(7))
}

func TestWishlist_RemoveAndClear(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	w := OpenWishlist(ctx, store, Options{})

	w.Add(ctx, product(t, 1))
	w.Add(ctx, product(t, 2))
	w.Add(ctx, product(t, 3))

	assert.True(t, w.Remove(ctx, 2))
	assert.False(t, w.Remove(ctx, 2))

	var ids []int
	for _, e := range w.Items() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []int{1, 3}, ids, "insertion order is kept")

	w.Clear(ctx)
	assert.Equal(t, 0, w.Count())
	b, err := store.Memory.Get(ctx, KeyWishlist)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestWishlist_PersistsSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newRecordingStore()
	at := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	w := OpenWishlist(ctx, store, Options{Now: fixedClock(at)})
	w.Add(ctx, product(t, 11))

	again := OpenWishlist(ctx, store, Options{})
	items := again.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 11, items[0].ID)
	assert.Equal(t, product(t, 11).Name, items[0].Name)
	assert.True(t, at.Equal(items[0].AddedAt))
}
