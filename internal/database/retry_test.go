package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kulikvl/weblog-analysis/internal/database/entity"
)

var errInsertRefused = errors.New("insert refused")

// flakyConnector hands out connections whose transactions fail until
// failures runs out. onBegin runs before every attempt.
type flakyConnector struct {
	mu       sync.Mutex
	failures int
	begins   int
	inserted int
	onBegin  func()
}

func (c *flakyConnector) Connect(context.Context) (driver.Conn, error) {
	return &flakyConn{c: c}, nil
}

func (c *flakyConnector) Driver() driver.Driver { return flakyDriver{} }

func (c *flakyConnector) attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.begins
}

type flakyDriver struct{}

func (flakyDriver) Open(string) (driver.Conn, error) {
	return nil, errors.New("use the connector")
}

type flakyConn struct {
	c *flakyConnector
}

func (fc *flakyConn) Prepare(string) (driver.Stmt, error) { return &flakyStmt{c: fc.c}, nil }
func (fc *flakyConn) Close() error                        { return nil }

func (fc *flakyConn) Begin() (driver.Tx, error) {
	fc.c.mu.Lock()
	fc.c.begins++
	fail := fc.c.failures > 0
	if fail {
		fc.c.failures--
	}
	onBegin := fc.c.onBegin
	fc.c.mu.Unlock()

	if onBegin != nil {
		onBegin()
	}
	if fail {
		return nil, errInsertRefused
	}
	return flakyTx{}, nil
}

type flakyTx struct{}

func (flakyTx) Commit() error   { return nil }
func (flakyTx) Rollback() error { return nil }

type flakyStmt struct {
	c *flakyConnector
}

func (s *flakyStmt) Close() error  { return nil }
func (s *flakyStmt) NumInput() int { return -1 }

func (s *flakyStmt) Exec([]driver.Value) (driver.Result, error) {
	s.c.mu.Lock()
	s.c.inserted++
	s.c.mu.Unlock()
	return driver.RowsAffected(1), nil
}

func (s *flakyStmt) Query([]driver.Value) (driver.Rows, error) {
	return nil, errors.New("not supported")
}

func newFlakyAggregator(t *testing.T, c *flakyConnector, maxRetries int, wait time.Duration) *Aggregator {
	t.Helper()
	db := sql.OpenDB(c)
	t.Cleanup(func() { db.Close() })
	return &Aggregator{
		db:         db,
		maxRetries: maxRetries,
		backoff:    func(int) time.Duration { return wait },
	}
}

var retryRows = []entity.LogRow{
	{IP: "127.0.0.X", Status: "200", Endpoint: "/index.html"},
	{IP: "10.0.0.X", Status: "404", Endpoint: "/missing"},
}

func TestInsertWithRetryGivesUp(t *testing.T) {
	c := &flakyConnector{failures: 100}
	agg := newFlakyAggregator(t, c, 2, time.Millisecond)

	err := agg.insertWithRetry(context.Background(), "access_log_test", retryRows)
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if !errors.Is(err, errInsertRefused) {
		t.Errorf("error should wrap the driver error, got %v", err)
	}
	if !strings.Contains(err.Error(), "after 3 attempts") {
		t.Errorf("error = %q, want attempt count", err)
	}
	if got := c.attempts(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
}

func TestInsertWithRetryRecovers(t *testing.T) {
	c := &flakyConnector{failures: 2}
	agg := newFlakyAggregator(t, c, 3, time.Millisecond)

	if err := agg.insertWithRetry(context.Background(), "access_log_test", retryRows); err != nil {
		t.Fatalf("insertWithRetry failed: %v", err)
	}
	if got := c.attempts(); got != 3 {
		t.Errorf("attempts = %d, want 3", got)
	}
	if c.inserted != len(retryRows) {
		t.Errorf("inserted = %d, want %d", c.inserted, len(retryRows))
	}
}

func TestInsertWithRetryNoRetries(t *testing.T) {
	c := &flakyConnector{failures: 1}
	agg := newFlakyAggregator(t, c, 0, time.Millisecond)

	if err := agg.insertWithRetry(context.Background(), "access_log_test", retryRows); !errors.Is(err, errInsertRefused) {
		t.Fatalf("err = %v, want %v", err, errInsertRefused)
	}
	if got := c.attempts(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestInsertWithRetryCancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &flakyConnector{failures: 100, onBegin: cancel}
	agg := newFlakyAggregator(t, c, 5, time.Hour)

	done := make(chan error, 1)
	go func() { done <- agg.insertWithRetry(ctx, "access_log_test", retryRows) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("insertWithRetry did not return after cancellation")
	}
	if got := c.attempts(); got != 1 {
		t.Errorf("attempts = %d, want 1", got)
	}
}

func TestInsertWithRetryEmpty(t *testing.T) {
	c := &flakyConnector{failures: 100}
	agg := newFlakyAggregator(t, c, 2, time.Millisecond)

	if err := agg.insertWithRetry(context.Background(), "access_log_test", nil); err != nil {
		t.Fatalf("insertWithRetry failed: %v", err)
	}
	if got := c.attempts(); got != 0 {
		t.Errorf("attempts = %d, want 0", got)
	}
}

func TestExponentialBackoff(t *testing.T) {
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
	for i, w := range want {
		if got := exponentialBackoff(i); got != w {
			t.Errorf("exponentialBackoff(%d) = %v, want %v", i, got, w)
		}
	}
}
