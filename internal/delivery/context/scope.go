// Package context carries the request scope of a book club call (request id,
// caller, topic and the logger tagged with them) from delivery into use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type scopeKey int

const (
	requestIDKey scopeKey = iota
	loggerKey
	userIDKey
	topicIDKey
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

const echoRequestIDKey = "request_id"

// GetRequestID returns the request id stored on the echo context, or a fresh UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID stores the request id on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// GetRequestIDFromContext returns the request id, empty when none is set.
func GetRequestIDFromContext(ctx context.Context) string {
	return stringValue(ctx, requestIDKey)
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// WithUserID records the authenticated caller and tags the scoped logger with user_id.
func WithUserID(ctx context.Context, userID string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)

	return withLogAttr(ctx, "user_id", userID)
}

func GetUserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, userIDKey)
}

// WithTopicID records the topic addressed by the request and tags the scoped
// logger with topic_id.
func WithTopicID(ctx context.Context, topicID string) context.Context {
	ctx = context.WithValue(ctx, topicIDKey, topicID)

	return withLogAttr(ctx, "topic_id", topicID)
}

func GetTopicIDFromContext(ctx context.Context) string {
	return stringValue(ctx, topicIDKey)
}

// GetLogger returns the request-scoped logger, nil when none is set.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// withLogAttr is a no-op when no logger is scoped yet.
func withLogAttr(ctx context.Context, key, value string) context.Context {
	logger := GetLogger(ctx)
	if logger == nil || value == "" {
		return ctx
	}

	return WithLogger(ctx, logger.With(slog.String(key, value)))
}

func stringValue(ctx context.Context, key scopeKey) string {
	id, _ := ctx.Value(key).(string)

	return id
}
