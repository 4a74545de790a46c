// Package logger provides named, colour-prefixed loggers built on log/slog.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/beka-birhanu/gridwalk/config"
)

var ErrEmptyPrefix = errors.New("logger prefix must not be empty")

// Logger writes lines of the form "[PREFIX] [LEVEL] message key=value".
type Logger struct {
	slog *slog.Logger
}

// New creates a logger whose lines start with the given prefix in the given colour.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	return NewWithLevel(prefix, color, w, slog.LevelInfo)
}

// NewWithLevel is New with an explicit minimum level.
func NewWithLevel(prefix, color string, w io.Writer, level slog.Level) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	h := &prefixHandler{
		prefix: prefix,
		color:  color,
		level:  level,
		mu:     &sync.Mutex{},
		w:      w,
	}
	return &Logger{slog: slog.New(h)}, nil
}

// ParseLevel converts a level name from configuration into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

func (l *Logger) Debug(msg string, args ...any)   { l.slog.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)    { l.slog.Info(msg, args...) }
func (l *Logger) Warning(msg string, args ...any) { l.slog.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any)   { l.slog.Error(msg, args...) }

// Slog exposes the underlying structured logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

type prefixHandler struct {
	prefix string
	color  string
	level  slog.Level
	attrs  []slog.Attr
	group  string

	mu *sync.Mutex
	w  io.Writer
}

func (h *prefixHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *prefixHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.color + "[" + h.prefix + "]" + config.ColorReset)
	b.WriteString(" " + levelTag(r.Level) + " ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *prefixHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *prefixHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		clone.group += "." + name
	} else {
		clone.group = name
	}
	return &clone
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return config.LogErrorColor + "[ERROR]" + config.LogColorReset
	case level >= slog.LevelWarn:
		return config.LogWarnColor + "[WARN]" + config.LogColorReset
	case level >= slog.LevelInfo:
		return config.LogInfoColor + "[INFO]" + config.LogColorReset
	default:
		return "[DEBUG]"
	}
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value.Resolve())
}
