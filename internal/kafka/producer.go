package kafka

import (
	"context"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/kulikvl/weblog-analysis/internal/model"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes run summaries to a Kafka topic.
type Producer struct {
	writer messageWriter
}

func NewProducer(broker, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(broker),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish encodes the summary and writes it as a single message keyed by source.
func (p *Producer) Publish(ctx context.Context, source string, summary model.Summary, encode func(model.Summary) ([]byte, error)) error {
	value, err := encode(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(source),
		Value: value,
	}); err != nil {
		return fmt.Errorf("failed to write summary message: %w", err)
	}

	log.Printf("Published summary of %d records (%d bytes).\n", summary.TotalRecords, len(value))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
