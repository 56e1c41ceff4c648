package archive

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	kafkax "github.com/ariefcatur/janoer-storefront/internal/kafka"
	"github.com/ariefcatur/janoer-storefront/internal/orders"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	redis.Cmdable
	keys map[string]bool
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if f.keys[k] {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) SetNX(_ context.Context, key string, _ interface{}, _ time.Duration) *redis.BoolCmd {
	if f.keys[key] {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = true
	return redis.NewBoolResult(true, nil)
}

type archivedKey struct{ session, order string }

type fakeStore struct {
	saved    []orders.OrderPlacedPayload
	statuses map[archivedKey]storefront.OrderStatus
	err      error
}

func (f *fakeStore) SaveOrder(_ context.Context, p orders.OrderPlacedPayload) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	k := archivedKey{p.SessionID, p.OrderID}
	if _, ok := f.statuses[k]; ok {
		return true, nil
	}
	f.saved = append(f.saved, p)
	f.statuses[k] = storefront.OrderStatus(p.Status)
	return false, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, sessionID, orderID string, to storefront.OrderStatus) error {
	if f.err != nil {
		return f.err
	}
	k := archivedKey{sessionID, orderID}
	from, ok := f.statuses[k]
	if !ok {
		return orders.ErrNotFound
	}
	if !storefront.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", storefront.ErrInvalidTransition, from, to)
	}
	f.statuses[k] = to
	return nil
}

func newService() (*Service, *fakeStore, *fakeRedis) {
	store := &fakeStore{statuses: map[archivedKey]storefront.OrderStatus{}}
	rdb := &fakeRedis{keys: map[string]bool{}}
	return &Service{Repo: store, Redis: rdb, ServiceName: "archiver"}, store, rdb
}

func message(t *testing.T, eventType, sessionID, orderID string, payload any) (kafkago.Message, orders.Envelope) {
	t.Helper()
	env, err := orders.NewEnvelope(eventType, "storefront-api", orderID, payload, time.Now())
	require.NoError(t, err)
	return kafkago.Message{Key: orders.PartitionKey(sessionID, orderID), Value: kafkax.MustMarshal(env)}, env
}

func placed(sessionID, orderID string) orders.OrderPlacedPayload {
	return orders.OrderPlacedPayload{
		OrderID: orderID, SessionID: sessionID, Status: "processing", PaymentMethod: "ovo",
		Items: []orders.Item{{ProductID: 3, Qty: 1, Price: 1950000}},
		Subtotal: 1950000, Tax: 214500, Total: 2164500,
	}
}

func TestHandle_OrderPlacedIsDeduplicated(t *testing.T) {
	ctx := context.Background()
	svc, store, rdb := newService()
	m, env := message(t, orders.EventOrderPlaced, "s1", "JK00000001", placed("s1", "JK00000001"))

	require.NoError(t, svc.Handle(ctx, m))
	require.NoError(t, svc.Handle(ctx, m))

	require.Len(t, store.saved, 1)
	assert.Equal(t, 2164500, store.saved[0].Total)
	assert.True(t, rdb.keys["dedup:archiver:"+env.EventID])
}

func TestHandle_StatusChanged(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()
	k := archivedKey{"s1", "JK00000002"}
	m, _ := message(t, orders.EventOrderPlaced, "s1", "JK00000002", placed("s1", "JK00000002"))
	require.NoError(t, svc.Handle(ctx, m))

	m, _ = message(t, orders.EventOrderStatusChanged, "s1", "JK00000002",
		orders.OrderStatusChangedPayload{OrderID: "JK00000002", SessionID: "s1", From: "processing", To: "shipped"})
	require.NoError(t, svc.Handle(ctx, m))
	assert.Equal(t, storefront.StatusShipped, store.statuses[k])

	// an illegal move is dropped and committed
	m, env := message(t, orders.EventOrderStatusChanged, "s1", "JK00000002",
		orders.OrderStatusChangedPayload{OrderID: "JK00000002", SessionID: "s1", From: "shipped", To: "processing"})
	require.NoError(t, svc.Handle(ctx, m))
	assert.Equal(t, storefront.StatusShipped, store.statuses[k])
	assert.True(t, svc.Redis.(*fakeRedis).keys["dedup:archiver:"+env.EventID])

	// so is a change for an order that was never archived
	m, env = message(t, orders.EventOrderStatusChanged, "s1", "JK404",
		orders.OrderStatusChangedPayload{OrderID: "JK404", SessionID: "s1", To: "shipped"})
	require.NoError(t, svc.Handle(ctx, m))
	assert.True(t, svc.Redis.(*fakeRedis).keys["dedup:archiver:"+env.EventID])
}

func TestHandle_SameOrderIDInTwoSessions(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()

	for _, sid := range []string{"s1", "s2"} {
		m, _ := message(t, orders.EventOrderPlaced, sid, "JK71717171", placed(sid, "JK71717171"))
		require.NoError(t, svc.Handle(ctx, m))
	}
	require.Len(t, store.saved, 2)

	m, _ := message(t, orders.EventOrderStatusChanged, "s2", "JK71717171",
		orders.OrderStatusChangedPayload{OrderID: "JK71717171", SessionID: "s2", From: "processing", To: "shipped"})
	require.NoError(t, svc.Handle(ctx, m))

	assert.Equal(t, storefront.StatusProcessing, store.statuses[archivedKey{"s1", "JK71717171"}])
	assert.Equal(t, storefront.StatusShipped, store.statuses[archivedKey{"s2", "JK71717171"}])
}

func TestHandle_FailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	svc, store, rdb := newService()
	store.err = errors.New("db down")
	m, env := message(t, orders.EventOrderPlaced, "s1", "JK00000003", placed("s1", "JK00000003"))

	assert.ErrorIs(t, svc.Handle(ctx, m), store.err)
	assert.False(t, rdb.keys["dedup:archiver:"+env.EventID])

	store.err = nil
	require.NoError(t, svc.Handle(ctx, m))
	assert.Len(t, store.saved, 1)

	store.err = errors.New("db down")
	m, env = message(t, orders.EventOrderStatusChanged, "s1", "JK00000003",
		orders.OrderStatusChangedPayload{OrderID: "JK00000003", SessionID: "s1", To: "shipped"})
	assert.ErrorIs(t, svc.Handle(ctx, m), store.err)
	assert.False(t, rdb.keys["dedup:archiver:"+env.EventID])
}

func TestHandle_IgnoresForeignMessages(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newService()

	assert.NoError(t, svc.Handle(ctx, kafkago.Message{Value: []byte("not json")}))
	m, _ := message(t, "SomethingElse", "s1", "JK1", map[string]string{})
	assert.NoError(t, svc.Handle(ctx, m))
	assert.Empty(t, store.saved)
}
