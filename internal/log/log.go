// ABOUTME: Leveled diagnostics for CLI output, kept off stdout
// ABOUTME: Info is plain progress text; debug/error lines carry lowercase prefixes

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelError = slog.LevelError
)

var (
	level atomic.Int64

	// out receives all log lines. Stdout stays reserved for command
	// results (resolved names, paths, tables).
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output. Tests use this to capture lines; it is
// not safe to call concurrently with logging.
func SetOutput(w io.Writer) {
	out = w
}

// emit writes a line when the global level admits min.
func emit(min slog.Level, prefix, format string, args []any) {
	if slog.Level(level.Load()) > min {
		return
	}
	fmt.Fprintf(out, prefix+format+"\n", args...)
}

// Debug logs command argv and other noise shown only in verbose mode.
func Debug(format string, args ...any) {
	emit(LevelDebug, "debug: ", format, args)
}

// Info logs progress as plain text, the way npm's own output reads.
func Info(format string, args ...any) {
	emit(LevelInfo, "", format, args)
}

// Error logs a failure. The level never filters these out.
func Error(format string, args ...any) {
	emit(LevelError, "error: ", format, args)
}
