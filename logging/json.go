package logging

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a logging level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel parses a string log level. Unknown strings map to LevelInfo.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// jsonLogger writes one JSON object per entry, newline terminated.
type jsonLogger struct {
	level Level
	w     io.Writer
	mu    *sync.Mutex // shared with loggers derived via WithFields
	base  Fields
}

// New creates a JSON logger at the given level, writing to stderr.
func New(level string) Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a JSON logger at the given level with a custom writer.
func NewWithWriter(level string, w io.Writer) Logger {
	return &jsonLogger{
		level: ParseLevel(level),
		w:     w,
		mu:    &sync.Mutex{},
		base:  make(Fields),
	}
}

// WithFields returns a logger that attaches the given fields to every entry.
// The returned logger shares the writer with its parent.
func (l *jsonLogger) WithFields(fields Fields) Logger {
	base := make(Fields, len(l.base)+len(fields))
	for k, v := range l.base {
		base[k] = v
	}
	for k, v := range fields {
		base[k] = v
	}
	return &jsonLogger{
		level: l.level,
		w:     l.w,
		mu:    l.mu,
		base:  base,
	}
}

func (l *jsonLogger) Debug(msg string, fields Fields) { l.log(LevelDebug, msg, fields) }
func (l *jsonLogger) Info(msg string, fields Fields)  { l.log(LevelInfo, msg, fields) }
func (l *jsonLogger) Warn(msg string, fields Fields)  { l.log(LevelWarn, msg, fields) }
func (l *jsonLogger) Error(msg string, fields Fields) { l.log(LevelError, msg, fields) }

func (l *jsonLogger) log(level Level, msg string, fields Fields) {
	if level < l.level {
		return
	}

	entry := make(map[string]any, len(l.base)+len(fields)+3)
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level.String()
	entry["msg"] = msg

	for k, v := range l.base {
		entry[k] = v
	}
	for k, v := range fields {
		if isRedactedField(k) {
			entry[k] = "[REDACTED]"
		} else {
			entry[k] = v
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return // drop entries that cannot be serialized
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(data)
	_, _ = l.w.Write([]byte("\n"))
}

// RedactedFields lists field keys whose values are replaced with [REDACTED]
// by the JSON logger.
var RedactedFields = []string{
	"password",
	"secret",
	"token",
	"api_key",
	"apiKey",
	"credential",
}

func isRedactedField(key string) bool {
	for _, k := range RedactedFields {
		if key == k {
			return true
		}
	}
	return false
}

// FieldLogger extends Logger with WithFields for deriving scoped loggers.
//
// Contract:
// - Ownership: WithFields returns a logger bound to the fields; the returned
//   logger shares the underlying writer with its parent.
type FieldLogger interface {
	Logger
	WithFields(fields Fields) Logger
}

var _ FieldLogger = (*jsonLogger)(nil)
