package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Adiwanwade/aurora/internal/env"
)

// Options controls logger construction.
type Options struct {
	LogToFile bool
	LogFile   string
	Level     slog.Leveler
}

// Option mutates Options.
type Option func(*Options)

// WithLogToFile enables mirroring log output to a rotated file.
func WithLogToFile(enabled bool) Option {
	return func(o *Options) { o.LogToFile = enabled }
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *Options) { o.LogFile = path }
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(o *Options) { o.Level = level }
}

// New builds the application logger. Development gets a colorized console
// handler; production gets JSON. File output is rotated with lumberjack.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	options := &Options{
		LogFile: "logs/aurora.log",
		Level:   slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(options)
	}

	var w io.Writer = os.Stderr
	if options.LogToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   options.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	if environment.IsProduction() {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: options.Level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      options.Level,
			TimeFormat: time.Kitchen,
		})
	}

	return slog.New(handler)
}
