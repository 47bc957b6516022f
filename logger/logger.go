// Package logger provides a small leveled logger whose lines are tagged with
// a colored component prefix, e.g. "[MAZE-SERVICE] [INFO] maze generated".
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/gookit/color"
)

// ErrNilWriter is returned when the logger has nowhere to write.
var ErrNilWriter = errors.New("logger: nil writer")

// Level styles, shared by every logger.
var (
	InfoStyle    = color.Style{color.FgGreen}
	WarningStyle = color.Style{color.FgYellow}
	ErrorStyle   = color.Style{color.FgRed, color.OpBold}
)

// Logger writes timestamped lines prefixed with its component name.
type Logger struct {
	prefix string
	out    *log.Logger
}

// New creates a logger writing to w with the prefix rendered in style.
func New(prefix string, style color.Style, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: style.Sprint("[" + prefix + "]"),
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(InfoStyle, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(WarningStyle, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(ErrorStyle, "ERROR", msg)
}

func (l *Logger) write(style color.Style, level, msg string) {
	l.out.Printf("%s %s %s", l.prefix, style.Sprint("["+level+"]"), msg)
}
