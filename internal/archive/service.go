package archive

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	kafkax "github.com/ariefcatur/janoer-storefront/internal/kafka"
	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/ariefcatur/janoer-storefront/internal/orders"
	"github.com/ariefcatur/janoer-storefront/internal/redisx"
	"github.com/ariefcatur/janoer-storefront/internal/storefront"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Store is satisfied by *orders.Repo.
type Store interface {
	SaveOrder(ctx context.Context, p orders.OrderPlacedPayload) (existed bool, err error)
	UpdateStatus(ctx context.Context, sessionID, orderID string, to storefront.OrderStatus) error
}

type Service struct {
	Repo        Store
	Redis       redis.Cmdable
	ServiceName string
}

// Handle is installed as the consumer handler for the order event topic.
// A returned error means the event was not applied and must be retried.
func (s *Service) Handle(ctx context.Context, m kafkago.Message) error {
	// 1) decode envelope
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		logger.Logger.Warn().Err(err).Int64("offset", m.Offset).Msg("skip undecodable message")
		return nil
	}
	if env.EventType != orders.EventOrderPlaced && env.EventType != orders.EventOrderStatusChanged {
		return nil
	}
	log := logger.Logger.With().
		Str("event_id", env.EventID).
		Str("event_type", env.EventType).
		Str("order_id", env.CorrelationID).
		Logger()

	// 2) dedup via Redis on event_id
	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	if seen, err := redisx.Exists(ctx, s.Redis, dkey); err != nil {
		log.Warn().Err(err).Msg("dedup lookup failed, processing anyway")
	} else if seen {
		log.Debug().Msg("duplicate event")
		return nil
	}

	// 3) apply
	if err := s.apply(ctx, env); err != nil {
		// event satu order datang berurutan, jadi error ini tidak akan sembuh dengan retry
		if errors.Is(err, storefront.ErrInvalidTransition) || errors.Is(err, orders.ErrNotFound) {
			log.Warn().Err(err).Msg("drop status change")
			return s.markDone(ctx, dkey)
		}
		return err
	}
	return s.markDone(ctx, dkey)
}

func (s *Service) apply(ctx context.Context, env orders.Envelope) error {
	switch env.EventType {
	case orders.EventOrderPlaced:
		p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
		if err != nil {
			return err
		}
		existed, err := s.Repo.SaveOrder(ctx, p)
		if err != nil {
			return err
		}
		logger.Logger.Info().Str("session_id", p.SessionID).Str("order_id", p.OrderID).Bool("existed", existed).Int("total", p.Total).Msg("order archived")
		return nil

	case orders.EventOrderStatusChanged:
		p, err := kafkax.UnwrapPayload[orders.OrderStatusChangedPayload](env.Payload)
		if err != nil {
			return err
		}
		if err := s.Repo.UpdateStatus(ctx, p.SessionID, p.OrderID, storefront.OrderStatus(p.To)); err != nil {
			return err
		}
		logger.Logger.Info().Str("session_id", p.SessionID).Str("order_id", p.OrderID).Str("from", p.From).Str("to", p.To).Msg("order status archived")
		return nil
	}
	return nil
}

// markDone records the event id once the event has been applied.
func (s *Service) markDone(ctx context.Context, dkey string) error {
	if _, err := redisx.MarkOnce(ctx, s.Redis, dkey, redisx.TTLDedup); err != nil {
		logger.Logger.Warn().Err(err).Str("key", dkey).Msg("dedup mark failed")
	}
	return nil
}
