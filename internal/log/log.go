// Package log provides structured file logging for scribe.
// Entries carry a level, a category, the session id and key=value fields.
// Logging is disabled until Init or InitWriter is called.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

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
	default:
		return "UNKNOWN"
	}
}

// ParseLevel returns the level named s, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("log: unknown level %q", s)
	}
}

// Category groups related log messages.
type Category string

const (
	CatEditor Category = "editor" // Session lifecycle and fire-once commands
	CatInput  Category = "input"  // Key events, repeat and dispatch
	CatConfig Category = "config" // Configuration loading and reloads
	CatPlugin Category = "plugin" // Lua plugins
	CatFile   Category = "file"   // Document load and save
	CatApp    Category = "app"    // Terminal host and frame loop
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	file     *os.File
	writer   io.Writer
	enabled  bool
	minLevel Level
	session  string
	now      func() time.Time
}

var (
	loggerMu      sync.Mutex
	defaultLogger *Logger
)

// Init opens path for appending and makes it the log destination.
// Returns a cleanup function to close the log file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // user-chosen log path
	if err != nil {
		return nil, fmt.Errorf("log: open %s: %w", path, err)
	}

	l := newLogger(f)
	l.file = f
	setDefault(l)

	return func() {
		setDefault(nil)
		_ = f.Close()
	}, nil
}

// InitWriter logs to w. Returns a function that disables logging again.
func InitWriter(w io.Writer) func() {
	setDefault(newLogger(w))
	return func() { setDefault(nil) }
}

func newLogger(w io.Writer) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelInfo,
		session:  uuid.NewString(),
		now:      time.Now,
	}
}

func setDefault(l *Logger) {
	loggerMu.Lock()
	defaultLogger = l
	loggerMu.Unlock()
}

func current() *Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	return defaultLogger
}

// SessionID returns the id stamped on every entry, or "" when logging is
// not initialized.
func SessionID() string {
	if l := current(); l != nil {
		return l.session
	}
	return ""
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	log(LevelError, cat, msg, fields...)
}

func log(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// Format: 2026-01-02T15:04:05 [INFO] [file] saved session=... path=a.txt
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s session=%s",
		l.now().Format("2006-01-02T15:04:05"), level, cat, msg, l.session)

	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	// Odd field count: orphan key with no value.
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.writer, b.String())
}
