package codec

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/doubleint"
)

// Logger wraps slog.Logger with codec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
	decodeLevel slog.Level
}

// LoggerOption configures a Logger.
type LoggerOption func(*Logger)

// WithDecodeLevel sets the level used for rejected input (default: warn).
func WithDecodeLevel(level slog.Level) LoggerOption {
	return func(l *Logger) {
		l.decodeLevel = level
	}
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler, opts ...LoggerOption) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	l := &Logger{
		Logger:      slog.New(handler),
		decodeLevel: slog.LevelWarn,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level, opts ...LoggerOption) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}), opts...)
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger:      l.Logger.With("codec", name),
		decodeLevel: l.decodeLevel,
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(ctx context.Context, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"bytes", size,
		)
	}
}

// LogDecode logs a decode operation.
//
// Rejected input is tagged with kind "out_of_range" or "type_mismatch" so the
// two failure modes can be told apart downstream.
func (l *Logger) LogDecode(ctx context.Context, size int, err error) {
	if err != nil {
		l.Log(ctx, l.decodeLevel, "decode failed",
			"kind", errorKind(err),
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"bytes", size,
		)
	}
}

func errorKind(err error) string {
	switch {
	case doubleint.IsOutOfRange(err):
		return "out_of_range"
	case doubleint.IsTypeMismatch(err):
		return "type_mismatch"
	default:
		return "error"
	}
}

type loggingCodec struct {
	Codec
	logger *Logger
}

// WithLogger wraps c so that every Marshal and Unmarshal is logged through l.
// A nil logger returns c unchanged.
func WithLogger(c Codec, l *Logger) Codec {
	if l == nil {
		return c
	}
	return &loggingCodec{Codec: c, logger: l.WithCodec(c.Name())}
}

func (c *loggingCodec) Marshal(v any) ([]byte, error) {
	b, err := c.Codec.Marshal(v)
	c.logger.LogEncode(context.Background(), len(b), err)
	return b, err
}

func (c *loggingCodec) Unmarshal(data []byte, v any) error {
	err := c.Codec.Unmarshal(data, v)
	c.logger.LogDecode(context.Background(), len(data), err)
	return err
}
