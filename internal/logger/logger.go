// Package logger provides the process-wide structured logger. Records are
// written as JSON to a rotating file; warnings and errors are also kept in
// memory for the TUI debug panel.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a LogLevel. Unknown names yield LevelInfo.
func ParseLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogEntry is a captured record shown in the debug panel.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
}

// Format renders the entry as a single panel line.
func (e LogEntry) Format() string {
	line := fmt.Sprintf("%s %-5s %s", e.Time.Format("15:04:05"), e.Level.String(), e.Message)
	if e.Attrs != "" {
		line += " " + e.Attrs
	}
	return line
}

// entryBuffer keeps the most recent WARN/ERROR entries.
type entryBuffer struct {
	mu      sync.RWMutex
	entries []LogEntry
	next    int
	full    bool

	warns  int
	errors int
}

func newEntryBuffer(size int) *entryBuffer {
	if size <= 0 {
		size = 1
	}
	return &entryBuffer{entries: make([]LogEntry, size)}
}

func (b *entryBuffer) add(e LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.next] = e
	b.next = (b.next + 1) % len(b.entries)
	if b.next == 0 {
		b.full = true
	}

	if e.Level >= slog.LevelError {
		b.errors++
	} else if e.Level >= slog.LevelWarn {
		b.warns++
	}
}

func (b *entryBuffer) snapshot() []LogEntry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.full {
		out := make([]LogEntry, b.next)
		copy(out, b.entries[:b.next])
		return out
	}
	out := make([]LogEntry, 0, len(b.entries))
	out = append(out, b.entries[b.next:]...)
	return append(out, b.entries[:b.next]...)
}

func (b *entryBuffer) counts() (warn, err int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.warns, b.errors
}

func (b *entryBuffer) resetCounts() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.warns, b.errors = 0, 0
}

// captureHandler forwards to inner and copies WARN+ records into buf.
type captureHandler struct {
	inner slog.Handler
	buf   *entryBuffer
	attrs []slog.Attr
}

func (h *captureHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *captureHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelWarn {
		var parts []string
		for _, a := range h.attrs {
			parts = append(parts, a.String())
		}
		r.Attrs(func(a slog.Attr) bool {
			parts = append(parts, a.String())
			return true
		})
		h.buf.add(LogEntry{
			Time:    r.Time,
			Level:   r.Level,
			Message: r.Message,
			Attrs:   strings.Join(parts, " "),
		})
	}
	return h.inner.Handle(ctx, r)
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &captureHandler{inner: h.inner.WithAttrs(attrs), buf: h.buf, attrs: merged}
}

func (h *captureHandler) WithGroup(name string) slog.Handler {
	return &captureHandler{inner: h.inner.WithGroup(name), buf: h.buf, attrs: h.attrs}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path of the active log file
	LogPath string

	logWriter    *lumberjack.Logger
	buffer       *entryBuffer
	debugEnabled bool
)

// Options configures InitLogger.
type Options struct {
	Level LogLevel
	// Path of the log file; DefaultPath() when empty.
	Path string
	// BufferSize is the number of WARN/ERROR entries kept for the debug panel.
	BufferSize int
}

// DefaultPath returns ~/.config/enrollview/enrollview.log, falling back to
// the temp dir when the home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	return filepath.Join(home, ".config", "enrollview", "enrollview.log")
}

// InitLogger installs the global logger: JSON records rotated by lumberjack,
// with WARN/ERROR entries captured for the debug panel.
func InitLogger(opts Options) error {
	if opts.Path == "" {
		opts.Path = DefaultPath()
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = 100
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	Close()
	logWriter = &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	LogPath = opts.Path
	debugEnabled = opts.Level == LevelDebug
	buffer = newEntryBuffer(opts.BufferSize)

	jsonHandler := slog.NewJSONHandler(logWriter, &slog.HandlerOptions{Level: opts.Level.slogLevel()})
	Log = slog.New(&captureHandler{inner: jsonHandler, buf: buffer})
	slog.SetDefault(Log)
	return nil
}

// Close flushes and closes the log file.
func Close() {
	if logWriter != nil {
		_ = logWriter.Close()
		logWriter = nil
	}
}

func get() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

// Debug logs a debug message
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs an info message
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs an error message
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a logger carrying args on every record.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}

// GetCounts returns warning and error counts since the last ClearCounts.
func GetCounts() (warn, err int) {
	if buffer == nil {
		return 0, 0
	}
	return buffer.counts()
}

// ClearCounts resets the warning and error counters.
func ClearCounts() {
	if buffer != nil {
		buffer.resetCounts()
	}
}

// GetEntries returns captured entries, oldest first.
func GetEntries() []LogEntry {
	if buffer == nil {
		return nil
	}
	return buffer.snapshot()
}

// IsDebugEnabled reports whether debug logging is active.
func IsDebugEnabled() bool {
	return debugEnabled
}
