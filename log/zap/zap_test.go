package zap

import (
	"testing"

	"github.com/tagwire/tagwire"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerForwardsToZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := Logger{L: zap.New(core)}

	l.Info("decoded", tagwire.Fields{"bytes": 12})

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Message != "decoded" {
		t.Fatalf("message = %q", entries[0].Message)
	}
	if v, ok := entries[0].ContextMap()["bytes"]; !ok || v != int64(12) {
		t.Fatalf("bytes field = %v", entries[0].ContextMap())
	}
}
