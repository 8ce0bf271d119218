package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hanifwid/printmart/internal/adapter/config"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher delivers live notification payloads over Kafka. The channel key
// is used as the message key, so the hash balancer keeps every recipient's
// events on one partition, in order. Subscribers filter by key; storage
// stays the source of truth and consumers reconcile via the list endpoint
// on reconnect.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

type envelope struct {
	Event     string    `json:"event"`
	Channel   string    `json:"channel"`
	Payload   any       `json:"payload"`
	Timestamp time.Time `json:"ts"`
}

func NewPublisher(cfg *config.Kafka, log *zap.Logger) (*Publisher, error) {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &Publisher{
		writer: writer,
		logger: log,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, channel string, event string, payload any) error {
	data, err := json.Marshal(envelope{
		Event:     event,
		Channel:   channel,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	p.logger.Debug("publish realtime event",
		zap.String("channel", channel), zap.String("event", event))

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(channel),
		Value: data,
		Time:  time.Now().UTC(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
