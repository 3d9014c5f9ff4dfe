// Package logging provides the leveled, field-aware logger used across
// hotkey.
package logging

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Level represents the severity level of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

// String returns the upper-case name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// ParseLevel parses a level name. Unknown names map to LevelInfo.
func ParseLevel(s string) Level {
	if l, ok := levelNames[strings.ToLower(s)]; ok {
		return l
	}
	return LevelInfo
}

// ValidLevel reports whether s names a log level.
func ValidLevel(s string) bool {
	_, ok := levelNames[strings.ToLower(s)]
	return ok
}

// Logger writes leveled log lines with optional key=value fields.
// Loggers derived with WithField share the parent's lock and output.
type Logger struct {
	mu       *sync.Mutex
	level    Level
	output   io.Writer
	prefix   string
	fields   map[string]any
	disabled bool
}

// Config configures a logger.
type Config struct {
	// Level is the minimum level written.
	Level Level
	// Output defaults to os.Stderr.
	Output io.Writer
	// Prefix follows the level on every line.
	Prefix string
}

// New creates a logger.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}
	return &Logger{
		mu:     &sync.Mutex{},
		level:  cfg.Level,
		output: cfg.Output,
		prefix: cfg.Prefix,
	}
}

// WithField returns a child logger with key set.
func (l *Logger) WithField(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// WithFields returns a child logger with fields added to those of l.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	child := *l
	child.fields = make(map[string]any, len(l.fields)+len(fields))
	maps.Copy(child.fields, l.fields)
	maps.Copy(child.fields, fields)
	return &child
}

// WithComponent returns a child logger with the component field set.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithField("component", component)
}

func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.log(LevelInfo, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(LevelWarn, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args) }

func (l *Logger) log(level Level, msg string, args []any) {
	if l.disabled || level < l.level || l.output == nil {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02T15:04:05.000"))
	fmt.Fprintf(&b, " [%s] ", level)
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	b.WriteString(msg)

	if len(l.fields) > 0 {
		b.WriteString(" {")
		for i, k := range slices.Sorted(maps.Keys(l.fields)) {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, l.fields[k])
		}
		b.WriteByte('}')
	}
	b.WriteByte('\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.output, b.String())
}

// NullLogger discards everything.
var NullLogger = &Logger{mu: &sync.Mutex{}, disabled: true}

var defaultLogger atomic.Pointer[Logger]

// Default returns the process-wide logger. Until SetDefault is called it
// writes info and above to stderr.
func Default() *Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	defaultLogger.CompareAndSwap(nil, New(Config{Level: LevelInfo, Prefix: "hotkey"}))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger. A nil l restores the
// stderr logger.
func SetDefault(l *Logger) {
	defaultLogger.Store(l)
}
