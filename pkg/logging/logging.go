package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
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

// SlogLevel maps the level onto log/slog.
func (l LogLevel) SlogLevel() slog.Level {
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

// ParseLevel accepts the names printed by String, case-insensitively.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "", "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

// String renders the entry the way the log overlay shows it.
func (e LogEntry) String() string {
	line := fmt.Sprintf("%s [%s] %s: %s", e.Timestamp.Format("15:04:05.000"), e.Level, e.Subsystem, e.Message)
	if e.Err != nil {
		line += ": " + e.Err.Error()
	}
	return line
}

const tuiChannelBufferSize = 1024

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	tuiMinLevel   LogLevel
	dropped       atomic.Int64
)

// InitForTUI switches logging to channel mode. Entries at or above
// filterLevel are delivered on the returned channel for the log overlay.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()
	tuiLogChannel = make(chan LogEntry, tuiChannelBufferSize)
	tuiMinLevel = filterLevel
	dropped.Store(0)
	return tuiLogChannel
}

// InitForCLI writes text-formatted records to output.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	tuiLogChannel = nil
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: filterLevel.SlogLevel()})
	defaultLogger = slog.New(handler)
	slog.SetDefault(defaultLogger)
}

// CloseTUIChannel closes the TUI log channel and returns to stderr logging.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}

// Dropped reports how many TUI entries were discarded because the overlay
// fell behind.
func Dropped() int64 {
	return dropped.Load()
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...interface{}) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	if tuiLogChannel != nil {
		if level < tuiMinLevel {
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// The overlay is drained from the same update loop that logs, so a
		// full buffer must never block.
		select {
		case tuiLogChannel <- entry:
		default:
			dropped.Add(1)
		}
		return
	}

	logger := defaultLogger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...interface{}) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...interface{}) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}
