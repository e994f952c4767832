package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level   string
	LogFile string
	NoColor bool
	// Console overrides stderr as the console destination
	Console io.Writer
}

// NewLogger creates a zerolog logger writing to the console and, when
// LogFile is set, to a rotating log file.
func NewLogger(cfg Config) *zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := parseLevel(cfg.Level)

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"

	// The download spinner shares stderr with the console writer
	consoleWriter := zerolog.ConsoleWriter{
		Out:        newProgressSafeWriter(console),
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}

	writers := []io.Writer{consoleWriter}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    5, // MB
				MaxBackups: 3,
				MaxAge:     30, // days
				Compress:   true,
			})
		}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Str("app", "wazuh-bootstrap").
		Logger()

	return &logger
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch level {
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
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewTestLogger creates a logger for testing that writes to a buffer
func NewTestLogger(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}

// NewNopLogger returns a logger that discards everything
func NewNopLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

// progressSafeWriter serializes writes and erases a partially drawn
// spinner line before a new log line starts.
type progressSafeWriter struct {
	mu          sync.Mutex
	out         io.Writer
	atLineStart bool
}

func newProgressSafeWriter(out io.Writer) *progressSafeWriter {
	return &progressSafeWriter{out: out, atLineStart: true}
}

func (w *progressSafeWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}

	if w.atLineStart {
		if _, err := io.WriteString(w.out, "\r\x1b[K"); err != nil {
			return 0, err
		}
	}

	n, err := w.out.Write(p)
	if n > 0 {
		w.atLineStart = p[n-1] == '\n'
	}
	return n, err
}
