package pipeline

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/kulikvl/weblog-analysis/internal/aggregator"
	"github.com/kulikvl/weblog-analysis/internal/capnproto"
	"github.com/kulikvl/weblog-analysis/internal/extractor"
	"github.com/kulikvl/weblog-analysis/internal/loader"
	"github.com/kulikvl/weblog-analysis/internal/model"
	"github.com/kulikvl/weblog-analysis/internal/printer"
	"github.com/kulikvl/weblog-analysis/internal/renderer"
	"github.com/kulikvl/weblog-analysis/internal/utils"
)

const (
	AggregatorMemory     = "memory"
	AggregatorClickHouse = "clickhouse"
)

type Config struct {
	LogPath         string
	PlotsDir        string
	Aggregator      string
	DB              string
	DBDriver        string
	DBInsertRetries int
	KafkaBroker     string
	KafkaTopic      string
	TableRows       int
	TopEndpoints    int
	AnonymizeIPs    bool
}

// ConfigFromEnv reads the configuration, falling back to the fixed paths
// relative to the working directory.
func ConfigFromEnv() Config {
	return Config{
		LogPath:         utils.GetEnv("LOG_PATH", "../data/access_log_sample.txt"),
		PlotsDir:        utils.GetEnv("PLOTS_DIR", "plots"),
		Aggregator:      utils.GetEnv("AGGREGATOR", AggregatorMemory),
		DB:              utils.GetEnv("DB", "localhost:9000"),
		DBDriver:        utils.GetEnv("DB_DRIVER", "clickhouse"),
		DBInsertRetries: utils.GetEnvAsInt("DB_INSERT_RETRIES", 3),
		KafkaBroker:     utils.GetEnv("KAFKA_BROKER", ""),
		KafkaTopic:      utils.GetEnv("KAFKA_TOPIC", "access_log_summary"),
		TableRows:       utils.GetEnvAsInt("TABLE_ROWS", 0),
		TopEndpoints:    utils.GetEnvAsInt("TOP_ENDPOINTS", 0),
		AnonymizeIPs:    utils.GetEnvAsBool("ANONYMIZE_IPS", false),
	}
}

// SummaryPublisher is satisfied by kafka.Producer.
type SummaryPublisher interface {
	Publish(ctx context.Context, source string, summary model.Summary, encode func(model.Summary) ([]byte, error)) error
}

type Pipeline struct {
	Config     Config
	Aggregator aggregator.Aggregator
	// Publisher is optional.
	Publisher SummaryPublisher
	Out       io.Writer
}

// Run loads, extracts, prints, aggregates and renders. It returns the paths of
// the written charts.
func (p *Pipeline) Run(ctx context.Context) ([]string, error) {
	lines, err := loader.ReadLines(p.Config.LogPath)
	if err != nil {
		return nil, err
	}

	records := extractor.ExtractAll(lines)

	if err := printer.PrintRecords(p.Out, records, printer.Options{
		MaxRows:      p.Config.TableRows,
		AnonymizeIPs: p.Config.AnonymizeIPs,
	}); err != nil {
		return nil, fmt.Errorf("failed to print records: %w", err)
	}

	summary, err := p.Aggregator.Aggregate(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate records: %w", err)
	}
	if summary.Empty() {
		log.Printf("No records in %s, writing empty charts.\n", p.Config.LogPath)
	}

	r := &renderer.Renderer{
		Dir:          p.Config.PlotsDir,
		Out:          p.Out,
		TopEndpoints: p.Config.TopEndpoints,
	}
	paths, err := r.Render(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to render charts: %w", err)
	}

	if p.Publisher != nil {
		if err := p.Publisher.Publish(ctx, p.Config.LogPath, summary, capnproto.Encode); err != nil {
			log.Printf("Failed to publish summary: %v\n", err)
		}
	}

	return paths, nil
}
