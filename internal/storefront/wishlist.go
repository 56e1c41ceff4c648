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

type WishlistEntry struct {
	catalog.Product
	AddedAt time.Time `json:"added_at"`
}

type Wishlist struct {
	mu      sync.Mutex
	store   kv.Store
	log     *zerolog.Logger
	now     func() time.Time
	entries []WishlistEntry
}

func OpenWishlist(ctx context.Context, store kv.Store, opts Options) *Wishlist {
	opts = opts.withDefaults()
	w := &Wishlist{store: store, log: opts.Logger, now: opts.Now}
	w.entries = loadList[WishlistEntry](ctx, store, KeyWishlist, w.log)
	return w
}

// Add: idempotent per product id, return true kalau wishlist berubah.
func (w *Wishlist) Add(ctx context.Context, p catalog.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.add(ctx, p)
}

func (w *Wishlist) Remove(ctx context.Context, productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remove(ctx, productID)
}

// Toggle returns whether the product is in the wishlist afterwards.
func (w *Wishlist) Toggle(ctx context.Context, p catalog.Product) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.index(p.ID) >= 0 {
		w.remove(ctx, p.ID)
		return false
	}
	w.add(ctx, p)
	return true
}

func (w *Wishlist) Clear(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries = []WishlistEntry{}
	saveList(ctx, w.store, KeyWishlist, w.entries, w.log)
}

func (w *Wishlist) Contains(productID int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.index(productID) >= 0
}

func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.entries)
}

func (w *Wishlist) Items() []WishlistEntry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.entries)
}

func (w *Wishlist) add(ctx context.Context, p catalog.Product) bool {
	if w.index(p.ID) >= 0 {
		return false
	}
	w.entries = append(w.entries, WishlistEntry{Product: p, AddedAt: w.now().UTC()})
	saveList(ctx, w.store, KeyWishlist, w.entries, w.log)
	return true
}

func (w *Wishlist) remove(ctx context.Context, productID int) bool {
	i := w.index(productID)
	if i < 0 {
		return false
	}
	w.entries = slices.Delete(w.entries, i, i+1)
	saveList(ctx, w.store, KeyWishlist, w.entries, w.log)
	return true
}

func (w *Wishlist) index(productID int) int {
	return slices.IndexFunc(w.entries, func(e WishlistEntry) bool { return e.ID == productID })
}
