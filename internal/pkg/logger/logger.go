package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/doeshing/safety-dash/internal/ports"
)

// ZeroLogger adapts zerolog to ports.Logger.
type ZeroLogger struct {
	log zerolog.Logger
}

// New creates a logger writing JSON lines to w at the given level.
func New(w io.Writer, level string) *ZeroLogger {
	if w == nil {
		w = io.Discard
	}
	return &ZeroLogger{
		log: zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger(),
	}
}

// NewStd creates a stderr logger that only emits when verbose is set.
func NewStd(verbose bool) *ZeroLogger {
	if !verbose {
		return Nop()
	}
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, "debug")
}

// Nop discards everything.
func Nop() *ZeroLogger {
	return &ZeroLogger{log: zerolog.Nop()}
}

// ParseLevel maps a config level name onto zerolog, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return parsed
}

func (l *ZeroLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *ZeroLogger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.Error().Err(err).Fields(fields).Msg(msg)
}

var _ ports.Logger = (*ZeroLogger)(nil)
