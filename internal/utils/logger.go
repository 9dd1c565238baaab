package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with application-specific configuration
type Logger struct {
	zerolog.Logger
}

// LoggerOptions contains configuration for logger setup
type LoggerOptions struct {
	Level   string
	Format  string
	Output  io.Writer
	Verbose bool
}

// NewLogger creates a configured logger instance
func NewLogger(opts LoggerOptions) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	level := parseLogLevel(opts.Level)
	if opts.Verbose {
		level = zerolog.DebugLevel
	}

	var logger zerolog.Logger

	if opts.Format == "json" {
		logger = zerolog.New(opts.Output).
			Level(level).
			With().
			Timestamp().
			Caller().
			Logger()
	} else {
		output := zerolog.ConsoleWriter{
			Out:        opts.Output,
			TimeFormat: time.RFC3339,
			NoColor:    false,
		}
		logger = zerolog.New(output).
			Level(level).
			With().
			Timestamp().
			Logger()
	}

	return &Logger{logger}
}

// NewDefaultLogger creates a logger with default settings
func NewDefaultLogger() *Logger {
	return NewLogger(LoggerOptions{
		Level:  "info",
		Format: "pretty",
		Output: os.Stderr,
	})
}

// NewNopLogger creates a logger that discards all output
func NewNopLogger() *Logger {
	return &Logger{zerolog.Nop()}
}

// parseLogLevel converts string level to zerolog.Level
func parseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithComponent returns a logger with component field set
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{l.Logger.With().Str("component", component).Logger()}
}

// WithArchive returns a logger with archive root path field set
func (l *Logger) WithArchive(path string) *Logger {
	return &Logger{l.Logger.With().Str("archive", path).Logger()}
}

// SetGlobalLevel sets the global zerolog level
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(parseLogLevel(level))
}
