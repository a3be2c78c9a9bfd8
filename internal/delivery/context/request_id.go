// Package context carries request-scoped values between the HTTP layer and services.
package context

import (
	"context"
	"log/slog"

	logs "directory/internal/infra/log"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"

	HeaderXRequestID = echo.HeaderXRequestID
)

// GetRequestID returns the id the request-id middleware stored on c. Outside
// that middleware (for example in handler unit tests) it mints a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := c.Response().Header().Get(HeaderXRequestID); id != "" {
		return id
	}

	return uuid.NewString()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return logs.FromContext(ctx, fallback)
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logs.WithLogger(ctx, logger)
}
