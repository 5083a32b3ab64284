package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaPublisher relays stored notifications onto a Kafka topic so
// downstream channels (SMS, email, push) can consume them. Messages are
// keyed by application id to keep per-application ordering.
type KafkaPublisher struct {
	client *kgo.Client
	topic  string
}

// NewKafkaPublisher connects a producer to the given brokers.
func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaPublisher{client: client, topic: topic}, nil
}

type kafkaEnvelope struct {
	CustomerID    string `json:"customer_id"`
	ApplicationID string `json:"application_id"`
	Sender        string `json:"sender"`
	Message       string `json:"message"`
	CreatedAt     string `json:"created_at"`
}

func encodeEnvelope(n Notification) ([]byte, error) {
	return json.Marshal(kafkaEnvelope{
		CustomerID:    n.CustomerID.String(),
		ApplicationID: n.ApplicationID.String(),
		Sender:        string(n.Sender),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.UTC().Format(time.RFC3339),
	})
}

// Publish produces one notification synchronously.
func (p *KafkaPublisher) Publish(ctx context.Context, n Notification) error {
	payload, err := encodeEnvelope(n)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	rec := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(n.ApplicationID.String()),
		Value: payload,
	}
	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		return fmt.Errorf("produce notification: %w", err)
	}
	return nil
}

// Close flushes and releases the producer.
func (p *KafkaPublisher) Close() {
	p.client.Close()
}
