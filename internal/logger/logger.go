// Package logger builds the application's slog logger: JSON lines into a
// rotating file plus a console stream.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Config struct {
	Dir        string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Dev        bool
	Level      slog.Level
}

func DefaultConfig() Config {
	return Config{
		Dir:        "./logs",
		File:       "app.log",
		MaxSizeMB:  50,
		MaxBackups: 5,
		MaxAgeDays: 30,
		Dev:        true,
		Level:      slog.LevelInfo,
	}
}

// fanout passes each record to every handler enabled for its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range f {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// New returns the logger and the file writer behind it, which the caller
// closes on shutdown.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, cfg.File),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	}

	return slog.New(newHandler(cfg, file, os.Stderr)), file, nil
}

func newHandler(cfg Config, file, console io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var consoleHandler slog.Handler
	if cfg.Dev {
		consoleHandler = tint.NewHandler(console, &tint.Options{
			Level:      cfg.Level,
			TimeFormat: "15:04:05",
		})
	} else {
		consoleHandler = slog.NewTextHandler(console, opts)
	}

	return fanout{slog.NewJSONHandler(file, opts), consoleHandler}
}
