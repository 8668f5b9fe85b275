package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math"
	"time"

	_ "github.com/ClickHouse/clickhouse-go/v2"

	"github.com/kulikvl/weblog-analysis/internal/database/entity"
	"github.com/kulikvl/weblog-analysis/internal/mapper"
	"github.com/kulikvl/weblog-analysis/internal/model"
)

// Creates the scratch table for a single run. Memory engine: nothing
// outlives the process, the table is dropped once the counts are read.
func createTable(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s (
            ip          String,
            timestamp   String,
            request     String,
            status      LowCardinality(String),
            size        String,
            method      LowCardinality(String),
            endpoint    String,
            protocol    LowCardinality(String)
        ) ENGINE = Memory
    `, table))
	return err
}

func dropTable(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table))
	return err
}

// Inserts rows into the table using batch insertion.
func insertRows(ctx context.Context, db *sql.DB, table string, rows []entity.LogRow) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (ip, timestamp, request, status, size, method, endpoint, protocol) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", table))
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx,
			r.IP,
			r.Timestamp,
			r.Request,
			r.Status,
			r.Size,
			r.Method,
			r.Endpoint,
			r.Protocol,
		); err != nil {
			return fmt.Errorf("failed to execute statement (insert): %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction (batch insert): %w", err)
	}

	return nil
}

// Aggregator counts records with ClickHouse instead of in process.
type Aggregator struct {
	db         *sql.DB
	maxRetries int
	// backoff returns the wait before retry attempt+1.
	backoff func(attempt int) time.Duration
}

func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(math.Pow(2, float64(attempt))) * time.Second
}

func NewAggregator(ctx context.Context, driver, dbAddr string, maxRetries int) (*Aggregator, error) {
	dataSource := fmt.Sprintf("tcp://%s?debug=false", dbAddr)

	db, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Print("Successfully connected to the database.\n")

	return &Aggregator{
		db:         db,
		maxRetries: maxRetries,
		backoff:    exponentialBackoff,
	}, nil
}

func (a *Aggregator) Close() error {
	return a.db.Close()
}

func (a *Aggregator) Aggregate(ctx context.Context, records []model.LogRecord) (model.Summary, error) {
	table := fmt.Sprintf("access_log_%d", time.Now().UnixNano())

	if err := createTable(ctx, a.db, table); err != nil {
		return model.Summary{}, fmt.Errorf("failed to create access log table: %w", err)
	}
	defer func() {
		// The run context may already be cancelled here.
		if err := dropTable(context.Background(), a.db, table); err != nil {
			log.Printf("failed to drop table %s: %v\n", table, err)
		}
	}()

	if err := a.insertWithRetry(ctx, table, mapper.ToDbBatch(records)); err != nil {
		return model.Summary{}, err
	}

	var summary model.Summary
	var err error
	if summary.TotalRecords, err = a.countAll(ctx, table); err != nil {
		return model.Summary{}, err
	}
	if summary.Endpoints, err = a.countByEndpoint(ctx, table); err != nil {
		return model.Summary{}, err
	}
	if summary.Statuses, err = a.countByStatus(ctx, table); err != nil {
		return model.Summary{}, err
	}
	return summary, nil
}

// Retries the batch insert with exponential backoff, at most maxRetries times.
func (a *Aggregator) insertWithRetry(ctx context.Context, table string, rows []entity.LogRow) error {
	if len(rows) == 0 {
		return nil
	}

	log.Printf("Inserting %d log entries into %s...\n", len(rows), table)

	for i := 0; ; i++ {
		err := insertRows(ctx, a.db, table, rows)
		if err == nil {
			log.Printf("Logs (%d) were successfully inserted into the database!\n", len(rows))
			return nil
		}
		if i >= a.maxRetries {
			return fmt.Errorf("failed to insert logs after %d attempts: %w", i+1, err)
		}

		backoff := a.backoff
		if backoff == nil {
			backoff = exponentialBackoff
		}
		waitTime := backoff(i)
		log.Printf("Failed to insert logs: %v. Retrying after %v...\n", err, waitTime)

		select {
		case <-time.After(waitTime):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (a *Aggregator) countAll(ctx context.Context, table string) (int, error) {
	var total uint64
	if err := a.db.QueryRowContext(ctx, fmt.Sprintf("SELECT count() FROM %s", table)).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return int(total), nil
}

func (a *Aggregator) countByEndpoint(ctx context.Context, table string) ([]model.EndpointCount, error) {
	rows, err := a.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT endpoint, count() AS hits
		FROM %s
		GROUP BY endpoint
		ORDER BY hits DESC, endpoint ASC
	`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query endpoint counts: %w", err)
	}
	defer rows.Close()

	var counts []model.EndpointCount
	for rows.Next() {
		var endpoint string
		var hits uint64
		if err := rows.Scan(&endpoint, &hits); err != nil {
			return nil, fmt.Errorf("failed to scan endpoint count: %w", err)
		}
		counts = append(counts, model.EndpointCount{Endpoint: endpoint, Hits: int(hits)})
	}
	return counts, rows.Err()
}

func (a *Aggregator) countByStatus(ctx context.Context, table string) ([]model.StatusCount, error) {
	rows, err := a.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT status, count() AS cnt
		FROM %s
		GROUP BY status
		ORDER BY status ASC
	`, table))
	if err != nil {
		return nil, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	var counts []model.StatusCount
	for rows.Next() {
		var status string
		var cnt uint64
		if err := rows.Scan(&status, &cnt); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, model.StatusCount{Status: status, Count: int(cnt)})
	}
	return counts, rows.Err()
}
