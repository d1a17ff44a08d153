package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

type Options struct {
	Output io.Writer
	Level  Level
	Format Format
}

var DefaultLogger = New(Options{Output: os.Stderr, Level: DefaultLevel, Format: FormatText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	var handler slog.Handler
	switch opts.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case FormatText:
		fallthrough
	default:
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}
