// Package logging provides leveled logging and per-tick tracing.
// It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A TraceWriter for JSONL tick records (one object per simulation tick)
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LevelTrace is a custom slog level below Debug for per-tick decision logging.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "warn", "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warn", "warning":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// ValidLevel reports whether s names a supported level. The empty string is
// accepted and means info.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "warn", "warning", "info", "debug", "trace":
		return true
	}
	return false
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 4}))
}

// TraceWriter writes structured tick records as JSON lines.
// It is safe for concurrent use. A nil TraceWriter is safe to use;
// all methods are no-ops on nil receiver.
type TraceWriter struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer
	now    func() time.Time
}

// NewTraceWriter wraps w. The caller keeps ownership of w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w, now: time.Now}
}

// OpenTraceFile appends tick records to path, creating parent directories.
func OpenTraceFile(path string) (*TraceWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &TraceWriter{w: f, closer: f, now: time.Now}, nil
}

// Log writes an event as a single JSONL line.
// A "time" field is added automatically. The caller's map is not mutated.
// Safe to call on nil receiver.
func (tw *TraceWriter) Log(event map[string]any) {
	if tw == nil || tw.w == nil {
		return
	}

	entry := make(map[string]any, len(event)+1)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = tw.now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	tw.mu.Lock()
	defer tw.mu.Unlock()
	_, _ = tw.w.Write(data)
}

// Close closes the underlying file when the writer owns one. Safe to call on
// nil receiver.
func (tw *TraceWriter) Close() error {
	if tw == nil {
		return nil
	}

	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.w = nil
	if tw.closer == nil {
		return nil
	}
	err := tw.closer.Close()
	tw.closer = nil
	return err
}
