// Package logging writes session activity to a rotating log file,
// keeping the terminal free for the interactive protocol.
package logging

import (
	"fmt"
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger appends timestamped lines to a size-rotated file. A nil Logger
// is valid and discards everything.
type Logger struct {
	inner  *log.Logger
	closer *lumberjack.Logger
}

// New creates a logger writing to path, echoing each line to echo when
// non-nil. An empty path with no echo returns nil.
func New(path string, echo io.Writer) *Logger {
	if path == "" && echo == nil {
		return nil
	}

	var rotator *lumberjack.Logger
	var w io.Writer
	switch {
	case path == "":
		w = echo
	default:
		rotator = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.Writer(rotator)
		if echo != nil {
			w = io.MultiWriter(rotator, echo)
		}
	}

	return &Logger{
		inner:  log.New(w, "", log.LstdFlags),
		closer: rotator,
	}
}

// Logf writes a formatted line.
func (l *Logger) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	l.inner.Printf(format, args...)
}

// LogError writes an error with context.
func (l *Logger) LogError(context string, err error) {
	if l == nil {
		return
	}
	l.inner.Printf("ERROR %s: %v", context, err)
}

// Close flushes and closes the underlying file.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	if err := l.closer.Close(); err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}
