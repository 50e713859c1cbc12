package middleware

import (
	"context"
	"log/slog"
)

// contextKey is the type for values this package stores in a context.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	requestIDCtxKey = contextKey("requestID")
)

// WithLogger returns a copy of ctx carrying the given logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey, logger)
}

// GetLoggerFromCtx retrieves the request-scoped logger from a standard context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// GetRequestIDFromCtx returns the request id assigned by StructuredLoggingMiddleware.
func GetRequestIDFromCtx(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDCtxKey).(string)
	return requestID, ok
}
