// Package logging настраивает slog поверх charmbracelet/log
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hazadus/go-tracklist/internal/config"
)

// SetupLogger создает логгер по настройкам конфигурации
func SetupLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	var formatter log.Formatter
	switch cfg.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		formatter = log.TextFormatter
	}

	level := log.InfoLevel
	switch cfg.Level {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tracklist",
		Formatter:       formatter,
		Level:           level,
	})

	return slog.New(handler)
}
