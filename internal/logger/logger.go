// Package logger provides structured JSON logging for the F1 calendar
// tools. Gateway fetch failures are logged here and absorbed, so the rest
// of the program renders an empty state instead of crashing; diagnostics
// land on stderr as one JSON object per line.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents log severity.
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var levelRank = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// Fields represents structured log fields.
type Fields map[string]interface{}

// Logger writes structured log entries at or above a minimum level.
type Logger struct {
	mu       sync.Mutex
	minLevel Level
	output   io.Writer
}

type logEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Fields    Fields `json:"fields,omitempty"`
	Error     string `json:"error,omitempty"`
}

var defaultLogger = New(LevelInfo, os.Stderr)

// New creates a logger with the given minimum level and output. Messages
// below the minimum level are discarded.
func New(level Level, output io.Writer) *Logger {
	return &Logger{minLevel: level, output: output}
}

// SetDefault replaces the package-level logger used by the convenience
// functions.
func SetDefault(l *Logger) {
	defaultLogger = l
}

func (l *Logger) log(level Level, message string, fields Fields, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	entry := logEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Level:     string(level),
		Message:   message,
		Fields:    fields,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	data, marshalErr := json.Marshal(entry)
	l.mu.Lock()
	defer l.mu.Unlock()
	if marshalErr != nil {
		fmt.Fprintf(l.output, "[%s] %s: %s (marshal error: %v)\n",
			entry.Timestamp, entry.Level, entry.Message, marshalErr)
		return
	}
	fmt.Fprintln(l.output, string(data))
}

// Debug logs detailed diagnostic information.
func (l *Logger) Debug(message string, fields Fields) { l.log(LevelDebug, message, fields, nil) }

// Info logs general operational information.
func (l *Logger) Info(message string, fields Fields) { l.log(LevelInfo, message, fields, nil) }

// Warn logs recoverable conditions, e.g. a remote fetch degrading to an
// empty result.
func (l *Logger) Warn(message string, fields Fields) { l.log(LevelWarn, message, fields, nil) }

// Error logs failures together with the causing error.
func (l *Logger) Error(message string, fields Fields, err error) {
	l.log(LevelError, message, fields, err)
}

// Package-level convenience functions using the default logger.

func Debug(message string, fields Fields) { defaultLogger.Debug(message, fields) }
func Info(message string, fields Fields)  { defaultLogger.Info(message, fields) }
func Warn(message string, fields Fields)  { defaultLogger.Warn(message, fields) }
func Error(message string, fields Fields, err error) {
	defaultLogger.Error(message, fields, err)
}

// Timings tracks request durations per operation name. The gateway records
// one sample per remote fetch. Thread-safe.
type Timings struct {
	mu      sync.Mutex
	samples map[string][]time.Duration
}

// NewTimings creates an empty timings tracker.
func NewTimings() *Timings {
	return &Timings{samples: make(map[string][]time.Duration)}
}

// Record adds one duration sample for the named operation.
func (t *Timings) Record(name string, d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.samples[name] = append(t.samples[name], d)
}

// Snapshot returns per-operation count, total and average. The result is a
// copy, safe to use while recording continues.
func (t *Timings) Snapshot() map[string]map[string]interface{} {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]map[string]interface{}, len(t.samples))
	for name, durations := range t.samples {
		if len(durations) == 0 {
			continue
		}
		var total time.Duration
		for _, d := range durations {
			total += d
		}
		out[name] = map[string]interface{}{
			"count":   len(durations),
			"total":   total.String(),
			"average": (total / time.Duration(len(durations))).String(),
		}
	}
	return out
}
