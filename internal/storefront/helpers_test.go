package storefront

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/catalog"
	"github.com/ariefcatur/janoer-storefront/internal/kv"
	"github.com/stretchr/testify/require"
)

var errQuota = errors.New("quota exceeded")

// recordingStore counts writes and can be told to fail them.
type recordingStore struct {
	*kv.Memory
	mu       sync.Mutex
	sets     map[string]int
	deletes  map[string]int
	failSets bool
}

func newRecordingStore() *recordingStore {
	return &recordingStore{Memory: kv.NewMemory(), sets: map[string]int{}, deletes: map[string]int{}}
}

func (r *recordingStore) Set(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	r.sets[key]++
	fail := r.failSets
	r.mu.Unlock()
	if fail {
		return errQuota
	}
	return r.Memory.Set(ctx, key, value)
}

func (r *recordingStore) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	r.deletes[key]++
	r.mu.Unlock()
	return r.Memory.Delete(ctx, key)
}

func (r *recordingStore) setCount(key string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sets[key]
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func product(t *testing.T, id int) catalog.Product {
	t.Helper()
	p, err := catalog.Default().ByID(id)
	require.NoError(t, err)
	return p
}
