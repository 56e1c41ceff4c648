// Package storefront holds the per-session state containers: cart, wishlist,
// order history, recently viewed products and language preference. Each
// container owns exactly one key of a kv.Store, hydrates from it once on open
// and writes the full snapshot after every mutation.
package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/rs/zerolog"
)

// Persisted keys, one per container.
const (
	KeyCart           = "batikCart"
	KeyWishlist       = "jk-wishlist"
	KeyOrders         = "jk-orders"
	KeyRecentlyViewed = "janoerkoening_recently_viewed"
	KeyLanguage       = "janoerkoening_language"
)

type Options struct {
	Logger *zerolog.Logger
	Now    func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = &logger.Logger
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// loadList hydrates a JSON list. A missing key, an unreadable store or a
// malformed snapshot all yield an empty list; only the latter two are logged.
func loadList[T any](ctx context.Context, store kv.Store, key string, log *zerolog.Logger) []T {
	out := []T{}
	b, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return out
	}
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("load snapshot failed, starting empty")
		return out
	}
	if err := json.Unmarshal(b, &out); err != nil || out == nil {
		log.Warn().Err(err).Str("key", key).Msg("malformed snapshot, starting empty")
		return []T{}
	}
	return out
}

// saveList writes the snapshot. Failures are logged and swallowed: the
// in-memory state stays authoritative for the session.
func saveList[T any](ctx context.Context, store kv.Store, key string, items []T, log *zerolog.Logger) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("encode snapshot failed")
		return
	}
	if err := store.Set(ctx, key, b); err != nil {
		log.Error().Err(err).Str("key", key).Msg("save snapshot failed")
	}
}
