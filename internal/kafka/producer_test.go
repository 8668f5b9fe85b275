package kafka

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/segmentio/kafka-go"

	"github.com/kulikvl/weblog-analysis/internal/capnproto"
	"github.com/kulikvl/weblog-analysis/internal/model"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w}

	summary := model.Summary{
		TotalRecords: 2,
		Endpoints:    []model.EndpointCount{{Endpoint: "/", Hits: 2}},
		Statuses:     []model.StatusCount{{Status: "200", Count: 2}},
	}

	if err := p.Publish(context.Background(), "access.log", summary, capnproto.Encode); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if len(w.messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(w.messages))
	}
	if string(w.messages[0].Key) != "access.log" {
		t.Errorf("Key = %q, want %q", w.messages[0].Key, "access.log")
	}

	got, err := capnproto.Decode(w.messages[0].Value)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got, summary) {
		t.Errorf("published summary = %+v, want %+v", got, summary)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Errorf("Close() = %v, closed = %v", err, w.closed)
	}
}

func TestPublishErrors(t *testing.T) {
	writeErr := errors.New("broker unavailable")
	p := &Producer{writer: &fakeWriter{err: writeErr}}

	err := p.Publish(context.Background(), "access.log", model.Summary{TotalRecords: 1}, capnproto.Encode)
	if !errors.Is(err, writeErr) {
		t.Errorf("Publish() error = %v, want wrapping %v", err, writeErr)
	}

	encodeErr := errors.New("encode failed")
	w := &fakeWriter{}
	p = &Producer{writer: w}
	err = p.Publish(context.Background(), "access.log", model.Summary{}, func(model.Summary) ([]byte, error) {
		return nil, encodeErr
	})
	if !errors.Is(err, encodeErr) {
		t.Errorf("Publish() error = %v, want wrapping %v", err, encodeErr)
	}
	if len(w.messages) != 0 {
		t.Errorf("no message should be written when encoding fails")
	}
}
