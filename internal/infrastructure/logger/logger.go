package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"afdian_adapter/internal/infrastructure/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the application logger. When cfg.File is set, entries go both
// to stdout and to a rotating file.
func New(cfg config.LogConfig) *logrus.Logger {
	return configure(logrus.New(), cfg)
}

// Setup applies cfg to the standard logger, which package level logrus
// calls in the HTTP layer go through, and returns it.
func Setup(cfg config.LogConfig) *logrus.Logger {
	return configure(logrus.StandardLogger(), cfg)
}

func configure(log *logrus.Logger, cfg config.LogConfig) *logrus.Logger {
	log.SetLevel(parseLevel(cfg.Level))

	if strings.EqualFold(cfg.Format, "text") {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
	}
	log.SetOutput(out)
	return log
}

// Discard is a logger for tests and for callers that pass none.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
