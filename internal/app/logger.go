package app

import (
	"io"
	"log/slog"

	"github.com/vk/kspgrab/internal/config"
)

// newLogger builds the logger described by cfg. The global logger is left
// alone so that several Apps can coexist in tests.
func newLogger(cfg *config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		// Validate rejects unknown levels before we get here.
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	switch cfg.Format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	default:
		return slog.New(slog.NewTextHandler(w, handlerOpts))
	}
}
