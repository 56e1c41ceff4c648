package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ariefcatur/janoer-storefront/internal/logger"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

var ErrProducerClosed = errors.New("kafka: producer closed")

// writer is the part of *kafka.Writer the producer needs.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	w       writer
	topic   string
	log     *zerolog.Logger
	inbox   chan kafka.Message
	closing chan struct{}
	closeCh chan struct{}

	mu   sync.RWMutex
	once sync.Once
}

func NewProducer(brokers []string, topic string, buf int) *Producer {
	log := logger.Logger.With().Str("topic", topic).Logger()
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("messages", len(msgs)).Msg("kafka write failed")
			}
		},
	}
	return newProducer(w, topic, buf, &log)
}

func newProducer(w writer, topic string, buf int, log *zerolog.Logger) *Producer {
	if buf <= 0 {
		buf = 1
	}
	return &Producer{
		w:       w,
		topic:   topic,
		log:     log,
		inbox:   make(chan kafka.Message, buf),
		closing: make(chan struct{}),
		closeCh: make(chan struct{}),
	}
}

// Start runs the write loop. Cancelling ctx behaves like Close: the inbox is
// drained, the writer closed and WaitClosed released.
func (p *Producer) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.Close()
				for m := range p.inbox {
					p.write(m)
				}
				p.closeWriter()
				return
			case m, ok := <-p.inbox:
				if !ok {
					p.closeWriter()
					return
				}
				p.write(m)
			}
		}
	}()
}

// Publish queues one message. It blocks while the inbox is full and fails
// once the producer is closing.
func (p *Producer) Publish(ctx context.Context, key, value []byte, headers ...kafka.Header) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	select {
	case <-p.closing:
		return ErrProducerClosed
	default:
	}

	m := kafka.Message{Key: key, Value: value, Time: time.Now(), Headers: headers}
	select {
	case p.inbox <- m:
		return nil
	case <-p.closing:
		return ErrProducerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting messages; the loop flushes what is queued and exits.
// Safe to call more than once.
func (p *Producer) Close() {
	p.once.Do(func() {
		close(p.closing)
		p.mu.Lock()
		close(p.inbox)
		p.mu.Unlock()
	})
}

// WaitClosed blocks until the loop has flushed and closed the writer.
func (p *Producer) WaitClosed() { <-p.closeCh }

func (p *Producer) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		p.log.Error().Err(err).Str("key", string(m.Key)).Msg("publish failed")
	}
}

func (p *Producer) closeWriter() {
	if err := p.w.Close(); err != nil {
		p.log.Warn().Err(err).Msg("close writer")
	}
}
