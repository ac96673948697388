package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls construction. The zero value logs at info level to
// stdout, which is what the server wants in every environment we run.
type Options struct {
	Level  string
	Output io.Writer
}

// Logger is a thin veneer over zerolog: console output, caller tagging,
// and error-first signatures for the paths that carry an error.
type Logger struct {
	zl zerolog.Logger
}

func New(opts Options) *Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	level, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Caller().
		Logger()

	return &Logger{zl: zl}
}

// With returns a child logger carrying an extra field on every line.
func (l *Logger) With(key string, value interface{}) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string, kv ...interface{}) {
	l.zl.Debug().Fields(kv).Msg(msg)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.zl.Info().Fields(kv).Msg(msg)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.zl.Warn().Fields(kv).Msg(msg)
}

func (l *Logger) Error(err error, msg string, kv ...interface{}) {
	l.zl.Error().Err(err).Fields(kv).Msg(msg)
}

func (l *Logger) Fatal(err error, msg string, kv ...interface{}) {
	l.zl.Fatal().Err(err).Fields(kv).Msg(msg)
}
