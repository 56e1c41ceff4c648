package httpx

import (
	"context"
	"net/http"
	"sync"

	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/redisx"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/google/uuid"
)

// HeaderSessionID carries the shopper's session id both ways.
const HeaderSessionID = "X-Session-Id"

type sessionCtxKey struct{}

// Sessions opens the storefront state of the calling session. Requests of the
// same session are serialised.
type Sessions struct {
	Store   kv.Store
	Options storefront.Options
	locks   keyedLocker
}

func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderSessionID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderSessionID, id)

		unlock := s.locks.Lock(id)
		defer unlock()

		ctx := r.Context()
		opts := s.Options
		if opts.Logger == nil {
			opts.Logger = logger.WithContext(ctx)
		}
		sess := storefront.Open(ctx, id, redisx.Session(s.Store, id), opts)
		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, sessionCtxKey{}, sess)))
	})
}

func sessionFrom(ctx context.Context) *storefront.Session {
	s, _ := ctx.Value(sessionCtxKey{}).(*storefront.Session)
	return s
}

// keyedLocker hands out one mutex per key and forgets it once unused.
type keyedLocker struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

func (k *keyedLocker) Lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*keyedLock)
	}
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}

func (k *keyedLocker) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
