package orders

import (
	"context"
	"strconv"
	"time"

	kafkax "github.com/ariefcatur/janoer-storefront/internal/kafka"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/go-chi/chi/v5/middleware"
	kafkago "github.com/segmentio/kafka-go"
)

// Publisher is satisfied by *kafka.Producer.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte, headers ...kafkago.Header) error
}

// Emitter publishes order lifecycle events on TopicOrderEvents.
// A nil publisher disables it.
type Emitter struct {
	Publisher Publisher
	Service   string
	Now       func() time.Time
}

func (e *Emitter) OrderPlaced(ctx context.Context, sessionID string, o storefront.Order) error {
	return e.emit(ctx, EventOrderPlaced, sessionID, o.ID, PlacedPayload(sessionID, o))
}

func (e *Emitter) OrderStatusChanged(ctx context.Context, sessionID string, o storefront.Order, from storefront.OrderStatus) error {
	return e.emit(ctx, EventOrderStatusChanged, sessionID, o.ID, OrderStatusChangedPayload{
		OrderID:   o.ID,
		SessionID: sessionID,
		From:      string(from),
		To:        string(o.Status),
	})
}

func (e *Emitter) emit(ctx context.Context, eventType, sessionID, orderID string, payload any) error {
	if e == nil || e.Publisher == nil {
		return nil
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	ev, err := NewEnvelope(eventType, e.Service, orderID, payload, now())
	if err != nil {
		return err
	}
	ev.RequestID = middleware.GetReqID(ctx)

	return e.Publisher.Publish(ctx, PartitionKey(sessionID, orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: kafkax.HeaderEventType, Value: []byte(eventType)},
		kafkago.Header{Key: kafkax.HeaderEventVersion, Value: []byte(strconv.Itoa(EventVersion))},
	)
}
