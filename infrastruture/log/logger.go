// Package logger writes leveled, color-prefixed log lines for one component.
package logger

import (
	"errors"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-solver/config"
)

var ErrNilWriter = errors.New("logger: nil writer")

// Logger prefixes every line with its component name and a level tag,
// e.g. "[APP] [INFO] Connected to MongoDB".
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a Logger for the component named prefix. color is an ANSI
// escape from the config package and may be empty.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}
	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

func (l *Logger) Info(msg string) {
	l.write(config.LogInfoColor, "INFO", msg)
}

func (l *Logger) Warning(msg string) {
	l.write(config.LogWarningColor, "WARNING", msg)
}

func (l *Logger) Error(msg string) {
	l.write(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	reset := config.LogColorReset
	if l.color == "" {
		levelColor, reset = "", ""
	}
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, reset, levelColor, level, reset, msg)
}
