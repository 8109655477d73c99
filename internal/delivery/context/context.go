// Package context carries per-request values (request ID, caller, scoped logger)
// from the delivery layer down to usecases and infra.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey namespaces values stored by this package.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyCaller    ContextKey = "caller"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// Caller identifies the authenticated user behind a request.
type Caller struct {
	UserID string
	Role   string
}

// GetRequestID returns the ID stored by the request ID middleware, or a fresh one
// when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when no request ID was attached.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// WithCaller records the caller and tags the request logger with it, so every
// line logged below the auth middleware carries user_id and role.
func WithCaller(ctx context.Context, caller Caller, fallback *slog.Logger) context.Context {
	logger := GetLoggerOrDefault(ctx, fallback).With(
		slog.String("user_id", caller.UserID),
		slog.String("role", caller.Role),
	)
	ctx = context.WithValue(ctx, KeyCaller, caller)

	return WithLogger(ctx, logger)
}

// CallerFromContext reports false for anonymous requests.
func CallerFromContext(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(KeyCaller).(Caller)

	return caller, ok
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
