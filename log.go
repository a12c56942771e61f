package plinth

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var loggerCtxKey = ctxKey{}

// LoggingContext returns a copy of ctx carrying the passed logger. Renders
// report their failures through the logger in their context; a context
// without one gets a logger that discards everything.
func LoggingContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

func logger(ctx context.Context) *slog.Logger {
	val := ctx.Value(loggerCtxKey)
	if val == nil {
		return slog.New(noopHandler{})
	}
	logger, ok := val.(*slog.Logger)
	if !ok {
		return slog.New(noopHandler{})
	}
	return logger
}

type noopHandler struct{}

func (noopHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return false
}

func (noopHandler) Handle(_ context.Context, _ slog.Record) error {
	return nil
}

func (n noopHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return n
}

func (n noopHandler) WithGroup(_ string) slog.Handler {
	return n
}
