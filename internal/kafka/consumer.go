package kafka

import (
	"context"
	"sync"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Handler returns nil only when the message is fully processed and its
// offset may be committed.
type Handler func(ctx context.Context, m kafka.Message) error

// reader is the part of *kafka.Reader the consumer needs.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Consumer struct {
	r          reader
	workers    int
	log        *zerolog.Logger
	backoff    time.Duration
	maxBackoff time.Duration
}

func NewConsumer(brokers []string, group, topic string, workers int) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		GroupID:        group,
		Topic:          topic,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: 0, // manual commit
	})
	log := logger.Logger.With().Str("topic", topic).Str("group", group).Logger()
	return newConsumer(r, workers, &log)
}

func newConsumer(r reader, workers int, log *zerolog.Logger) *Consumer {
	if workers <= 0 {
		workers = 1
	}
	return &Consumer{r: r, workers: workers, log: log, backoff: 200 * time.Millisecond, maxBackoff: 10 * time.Second}
}

// Start fetches messages until ctx is cancelled. Each partition is pinned to
// one worker, so messages of a partition are handled and committed in offset
// order. A failing message is retried with backoff and blocks its partition
// until the handler succeeds.
func (c *Consumer) Start(ctx context.Context, h Handler) error {
	defer c.r.Close()

	lanes := make([]chan kafka.Message, c.workers)
	var wg sync.WaitGroup
	for i := range lanes {
		lanes[i] = make(chan kafka.Message, 64)
		wg.Add(1)
		go func(lane <-chan kafka.Message) {
			defer wg.Done()
			for m := range lane {
				if !c.process(ctx, h, m) {
					return
				}
			}
		}(lanes[i])
	}
	stop := func() {
		for _, lane := range lanes {
			close(lane)
		}
		wg.Wait()
	}

	for {
		m, err := c.r.FetchMessage(ctx)
		if err != nil {
			stop()
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		select {
		case lanes[m.Partition%c.workers] <- m:
		case <-ctx.Done():
			stop()
			return nil
		}
	}
}

// process runs h until it succeeds, then commits m. It reports false when ctx
// ended first; the message stays uncommitted and is fetched again later.
func (c *Consumer) process(ctx context.Context, h Handler, m kafka.Message) bool {
	wait := c.backoff
	for attempt := 1; ; attempt++ {
		err := h(ctx, m)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return false
		}
		c.log.Error().Err(err).
			Int("partition", m.Partition).
			Int64("offset", m.Offset).
			Int("attempt", attempt).
			Dur("retry_in", wait).
			Msg("handle message")

		t := time.NewTimer(wait)
		select {
		case <-t.C:
		case <-ctx.Done():
			t.Stop()
			return false
		}
		wait = min(wait*2, c.maxBackoff)
	}

	if err := c.r.CommitMessages(ctx, m); err != nil && ctx.Err() == nil {
		c.log.Error().Err(err).Int("partition", m.Partition).Int64("offset", m.Offset).Msg("commit offset")
	}
	return true
}
