package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, generated, GetRequestID(c), "unset id is regenerated on every call")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	assert.Empty(t, GetRequestIDFromContext(context.Background()))
	assert.Equal(t, "req-1", GetRequestIDFromContext(WithRequestID(context.Background(), "req-1")))
}

func TestScope_TagsLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := WithLogger(context.Background(), base)
	ctx = WithUserID(ctx, "u1")
	ctx = WithTopicID(ctx, "t1")

	assert.Equal(t, "u1", GetUserIDFromContext(ctx))
	assert.Equal(t, "t1", GetTopicIDFromContext(ctx))

	GetLogger(ctx).Info("hello")
	assert.Contains(t, buf.String(), `"user_id":"u1"`)
	assert.Contains(t, buf.String(), `"topic_id":"t1"`)
}

func TestScope_WithoutLogger(t *testing.T) {
	ctx := WithTopicID(WithUserID(context.Background(), "u1"), "t1")

	assert.Nil(t, GetLogger(ctx))
	assert.Equal(t, "u1", GetUserIDFromContext(ctx))
	assert.Equal(t, "t1", GetTopicIDFromContext(ctx))

	fallback := slog.New(slog.DiscardHandler)
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
}

func TestScope_EmptyTopicLeavesLoggerUntouched(t *testing.T) {
	base := slog.New(slog.DiscardHandler)
	ctx := WithTopicID(WithLogger(context.Background(), base), "")

	assert.Same(t, base, GetLogger(ctx))
	assert.Empty(t, GetTopicIDFromContext(ctx))
}
