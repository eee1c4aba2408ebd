package logger

import (
	"io"
	log "log/slog"
	"os"
	"strings"

	"github.com/Baktyiar1/Netflix144p/internal/api/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

var LogWriter io.Writer = os.Stdout

func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: parseLevel(cfg.Level)}

	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout

	if cfg.File != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   true,
			LocalTime:  true,
		}
		hFile := log.NewJSONHandler(fileWriter, opts)

		finalHandler = &TeeHandler{
			handlers: []log.Handler{hStdout, &TraceFilterHandler{next: hFile}},
		}

		LogWriter = io.MultiWriter(os.Stdout, fileWriter)
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}
