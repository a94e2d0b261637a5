// Package telemetry emits fire-and-forget usage events. Sending must
// never block or fail the calling pipeline.
package telemetry

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
)

// Sink receives events. Implementations swallow their own failures.
type Sink interface {
	SendEvent(name string, props map[string]string)
}

// HashSecret returns a sha256 hex digest so secrets can be correlated
// in events without ever being transmitted.
func HashSecret(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// LogSink writes events to a logger, tagged with a per-process session
// id for correlation.
type LogSink struct {
	log     logr.Logger
	session string
}

// NewLogSink returns a Sink that records events at verbosity 1.
func NewLogSink(log logr.Logger) *LogSink {
	return &LogSink{log: log, session: uuid.NewString()}
}

func (s *LogSink) SendEvent(name string, props map[string]string) {
	kv := []any{"session", s.session}
	for k, v := range props {
		kv = append(kv, k, v)
	}
	s.log.V(1).Info("event: "+name, kv...)
}

// Nop discards all events.
type Nop struct{}

func (Nop) SendEvent(string, map[string]string) {}
