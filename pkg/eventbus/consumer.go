package eventbus

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// HandlerFunc processes one message received on subject.
type HandlerFunc func(ctx context.Context, subject string, data []byte)

// Consumer receives messages from NATS subjects.
type Consumer struct {
	conn *nats.Conn
}

// NewConsumer connects to url with automatic reconnection.
func NewConsumer(url string, opts ...nats.Option) (*Consumer, error) {
	defaults := []nats.Option{
		nats.Name("github-activity-feed-consumer"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}
	nc, err := nats.Connect(url, append(defaults, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &Consumer{conn: nc}, nil
}

// Consume delivers every message matching subject to h until ctx is done,
// then drains the subscription. Wildcards (github.events.>) are allowed.
func (c *Consumer) Consume(ctx context.Context, subject string, h HandlerFunc) error {
	sub, err := c.conn.Subscribe(subject, func(m *nats.Msg) {
		h(ctx, m.Subject, m.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", subject, err)
	}
	if err := c.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("flushing subscription: %w", err)
	}

	<-ctx.Done()
	return sub.Drain()
}

func (c *Consumer) Close() error {
	if err := c.conn.Drain(); err != nil {
		c.conn.Close()
		return err
	}
	return nil
}
