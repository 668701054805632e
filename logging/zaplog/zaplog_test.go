package zaplog

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/efkanbakanay/devhelper/logging"
)

func TestLogger_ForwardsFields(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	var l logging.Logger = Logger{L: zap.New(core)}

	l.Warn("entry evicted", logging.Fields{"key": "user:42", "reason": "capacity"})

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("expected warn level, got %v", e.Level)
	}
	if e.Message != "entry evicted" {
		t.Errorf("unexpected message %q", e.Message)
	}
	fields := e.ContextMap()
	if fields["key"] != "user:42" {
		t.Errorf("expected key field, got %v", fields)
	}
	if fields["reason"] != "capacity" {
		t.Errorf("expected reason field, got %v", fields)
	}
}

func TestLogger_EmptyFields(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	var l logging.Logger = Logger{L: zap.New(core)}

	l.Debug("no fields", nil)
	l.Info("empty fields", logging.Fields{})

	if got := recorded.Len(); got != 2 {
		t.Fatalf("expected 2 entries, got %d", got)
	}
	for _, e := range recorded.All() {
		if len(e.Context) != 0 {
			t.Errorf("expected no zap fields for %q, got %v", e.Message, e.Context)
		}
	}
}
