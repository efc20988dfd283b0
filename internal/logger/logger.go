package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	gray   = "\033[90m"
)

// PrettyHandler writes colored single-line records for terminals.
type PrettyHandler struct {
	w     io.Writer
	level slog.Leveler
	mu    *sync.Mutex
	attrs []slog.Attr
	group string
}

func NewPrettyHandler(w io.Writer, level slog.Level) *PrettyHandler {
	return &PrettyHandler{w: w, level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timestamp := r.Time.Format("15:04:05")

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = red, "ERR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = yellow, "WRN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = green, "INF"
	default:
		levelColor, levelText = gray, "DBG"
	}

	fmt.Fprintf(h.w, "%s%s%s %s%-3s%s %s",
		gray, timestamp, reset,
		levelColor, levelText, reset,
		r.Message,
	)

	for _, a := range h.attrs {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, a.Key, reset, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(h.w, " %s%s%s=%v", cyan, h.qualify(a.Key), reset, a.Value)
		return true
	})

	fmt.Fprintln(h.w)
	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		a.Key = h.qualify(a.Key)
		clone.attrs = append(clone.attrs, a)
	}
	return &clone
}

func (h *PrettyHandler) qualify(key string) string {
	if h.group == "" {
		return key
	}
	return h.group + "." + key
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if clone.group != "" {
		name = clone.group + "." + name
	}
	clone.group = name
	return &clone
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler returns a JSON handler for format "json" and a PrettyHandler
// otherwise.
func NewHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return NewPrettyHandler(w, level)
}

// Init configures the process-wide logger from LOG_FORMAT and LOG_LEVEL.
// Logs go to stderr so stdout stays free for conversion output.
func Init() *slog.Logger {
	once.Do(func() {
		handler := NewHandler(os.Stderr, os.Getenv("LOG_FORMAT"), ParseLevel(os.Getenv("LOG_LEVEL")))
		logger = slog.New(handler)
		slog.SetDefault(logger)
	})
	return logger
}

// New is Init for binaries that keep their own *slog.Logger.
func New() *slog.Logger {
	return Init()
}

func Get() *slog.Logger {
	if logger == nil {
		return Init()
	}
	return logger
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}
