package storefront

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/rs/zerolog"
)

const RecentlyViewedCapacity = 8

type RecentlyViewedEntry struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Slug     string           `json:"slug"`
	Price    int              `json:"price"`
	Images   []string         `json:"images"`
	Category catalog.Category `json:"category"`
	Pattern  catalog.Pattern  `json:"pattern"`
	ViewedAt time.Time        `json:"viewed_at"`
}

// RecentlyViewed is a most-recently-used list without duplicates.
type RecentlyViewed struct {
	mu      sync.Mutex
	store   kv.Store
	log     *zerolog.Logger
	now     func() time.Time
	entries []RecentlyViewedEntry
}

func OpenRecentlyViewed(ctx context.Context, store kv.Store, opts Options) *RecentlyViewed {
	opts = opts.withDefaults()
	r := &RecentlyViewed{store: store, log: opts.Logger, now: opts.Now}
	r.entries = loadList[RecentlyViewedEntry](ctx, store, KeyRecentlyViewed, r.log)
	if len(r.entries) > RecentlyViewedCapacity {
		r.entries = r.entries[:RecentlyViewedCapacity]
	}
	return r
}

// Add: pindah ke depan, id 0 diabaikan.
func (r *RecentlyViewed) Add(ctx context.Context, p catalog.Product) bool {
	if p.ID == 0 {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := RecentlyViewedEntry{
		ID:       p.ID,
		Name:     p.Name,
		Slug:     p.Slug,
		Price:    p.Price,
		Images:   slices.Clone(p.Images),
		Category: p.Category,
		Pattern:  p.Pattern,
		ViewedAt: r.now().UTC(),
	}
	rest := slices.DeleteFunc(r.entries, func(e RecentlyViewedEntry) bool { return e.ID == p.ID })
	r.entries = append([]RecentlyViewedEntry{entry}, rest...)
	if len(r.entries) > RecentlyViewedCapacity {
		r.entries = r.entries[:RecentlyViewedCapacity]
	}
	saveList(ctx, r.store, KeyRecentlyViewed, r.entries, r.log)
	return true
}

func (r *RecentlyViewed) List(limit int) []RecentlyViewedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > 0 && limit < len(r.entries) {
		return slices.Clone(r.entries[:limit])
	}
	return slices.Clone(r.entries)
}

// Clear juga menghapus key di store (bukan simpan []).
func (r *RecentlyViewed) Clear(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = []RecentlyViewedEntry{}
	if err := r.store.Delete(ctx, KeyRecentlyViewed); err != nil {
		r.log.Error().Err(err).Str("key", KeyRecentlyViewed).Msg("delete snapshot failed")
	}
}
