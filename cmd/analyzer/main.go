package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/kulikvl/weblog-analysis/internal/aggregator"
	"github.com/kulikvl/weblog-analysis/internal/database"
	"github.com/kulikvl/weblog-analysis/internal/kafka"
	"github.com/kulikvl/weblog-analysis/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("analysis failed: %v\n", err)
	}
}

func run() error {
	// Cancel in-flight database and Kafka calls on SIGINT and SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := pipeline.ConfigFromEnv()

	p := &pipeline.Pipeline{
		Config:     cfg,
		Aggregator: aggregator.InMemory{},
		Out:        os.Stdout,
	}

	switch cfg.Aggregator {
	case pipeline.AggregatorMemory:
	case pipeline.AggregatorClickHouse:
		agg, err := database.NewAggregator(ctx, cfg.DBDriver, cfg.DB, cfg.DBInsertRetries)
		if err != nil {
			return fmt.Errorf("failed to create ClickHouse aggregator: %w", err)
		}
		defer func() {
			if err := agg.Close(); err != nil {
				log.Printf("failed to close ClickHouse aggregator: %v\n", err)
			} else {
				log.Println("ClickHouse aggregator closed successfully.")
			}
		}()
		p.Aggregator = agg
	default:
		return fmt.Errorf("unknown aggregator %q", cfg.Aggregator)
	}

	// Summary publishing is enabled by setting a broker
	if cfg.KafkaBroker != "" {
		producer := kafka.NewProducer(cfg.KafkaBroker, cfg.KafkaTopic)
		defer func() {
			if err := producer.Close(); err != nil {
				log.Printf("failed to close Kafka producer: %v", err)
			} else {
				log.Println("Kafka producer closed successfully.")
			}
		}()
		p.Publisher = producer
	}

	_, err := p.Run(ctx)
	return err
}
