package storefront

import (
	"context"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
)

// Session bundles the state containers of one shopper. All of them share the
// same kv.Store and each owns a distinct key in it.
type Session struct {
	ID             string
	Cart           *Cart
	Wishlist       *Wishlist
	Orders         *OrderHistory
	RecentlyViewed *RecentlyViewed
	Language       *LanguagePreference
}

// Open hydrates every container from store.
func Open(ctx context.Context, id string, store kv.Store, opts Options) *Session {
	return &Session{
		ID:             id,
		Cart:           OpenCart(ctx, store, opts),
		Wishlist:       OpenWishlist(ctx, store, opts),
		Orders:         OpenOrderHistory(ctx, store, opts),
		RecentlyViewed: OpenRecentlyViewed(ctx, store, opts),
		Language:       OpenLanguage(ctx, store, opts),
	}
}
