package diag

import (
	"sync"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-a11yfix/pkg/model"
)

func TestCollector(t *testing.T) {
	collector := NewCollector()
	collector.Emit(model.Info("one", nil))
	collector.Emit(model.Warn("two", map[string]any{"k": "v"}))

	records := collector.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Message != "one" || records[1].Message != "two" {
		t.Fatalf("records out of order: %+v", records)
	}

	collector.Reset()
	if got := len(collector.Records()); got != 0 {
		t.Fatalf("expected empty collector after reset, got %d", got)
	}
}

func TestCollector_ConcurrentEmit(t *testing.T) {
	collector := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				collector.Emit(model.Info("tick", nil))
			}
		}()
	}
	wg.Wait()

	if got := len(collector.Records()); got != 400 {
		t.Fatalf("expected 400 records, got %d", got)
	}
}

func TestSafeEmit_SwallowsPanics(t *testing.T) {
	panicking := SinkFunc(func(model.Diagnostic) {
		panic("sink unavailable")
	})

	// Must not propagate.
	SafeEmit(panicking, model.Info("x", nil))
	SafeEmit(nil, model.Info("x", nil))
}

func TestTee(t *testing.T) {
	first := NewCollector()
	second := NewCollector()
	panicking := SinkFunc(func(model.Diagnostic) {
		panic("down")
	})

	sink := Tee(first, panicking, nil, second)
	sink.Emit(model.Warn("fanout", nil))

	if len(first.Records()) != 1 || len(second.Records()) != 1 {
		t.Fatalf("expected both collectors to receive the record, got %d and %d",
			len(first.Records()), len(second.Records()))
	}
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sink := NewZapSink(zap.New(core))

	sink.Emit(model.Warn("suspicious link text", map[string]any{"field": "button"}))
	sink.Emit(model.Info("container attributes before role check", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("first entry level = %v, want warn", entries[0].Level)
	}
	if entries[0].Message != "suspicious link text" {
		t.Fatalf("first entry message = %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["field"] != "button" {
		t.Fatalf("expected structured field to be forwarded, got %v", fields)
	}
	if entries[1].Level != zapcore.InfoLevel {
		t.Fatalf("second entry level = %v, want info", entries[1].Level)
	}
}

func TestZapSink_NilLogger(t *testing.T) {
	sink := NewZapSink(nil)
	sink.Emit(model.Info("discarded", nil))
}
