package handler

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookclub/config"
	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/lifecycle"
	"bookclub/internal/domain/service"
	mockService "bookclub/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestRelay(t *testing.T, relay *config.RelayConfig) (*RelayHandler, *mockService.MockChangeNotifier) {
	notifier := mockService.NewMockChangeNotifier(t)

	return NewRelayHandler(RelayHandlerParams{
		Config:   &config.Config{Relay: relay},
		Notifier: notifier,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), notifier
}

func pushBody(t *testing.T, event service.TopicEvent, attributes map[string]string) []byte {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = "m1"
	msg.Message.Attributes = attributes

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return body
}

func push(h *RelayHandler, body []byte, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestRelayHandler_HandlePush_RelaysRemoteEvent(t *testing.T) {
	h, notifier := newTestRelay(t, &config.RelayConfig{})

	event := service.TopicEvent{Type: service.TopicUpdated, TopicID: "t1", Members: []string{"u1"}, Origin: "other-instance"}
	notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(e service.TopicEvent) bool {
		return e.TopicID == "t1" && e.Type == service.TopicUpdated
	})).Run(func(ctx context.Context, _ service.TopicEvent) {
		assert.Equal(t, "req-9", deliverycontext.GetRequestIDFromContext(ctx))
	}).Once()

	rec := push(h, pushBody(t, event, map[string]string{"request_id": "req-9"}), nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRelayHandler_HandlePush_SkipsOwnEvents(t *testing.T) {
	tests := []struct {
		name       string
		event      service.TopicEvent
		attributes map[string]string
	}{
		{name: "origin in payload", event: service.TopicEvent{TopicID: "t1", Origin: lifecycle.InstanceID}},
		{name: "origin in attributes", event: service.TopicEvent{TopicID: "t1"}, attributes: map[string]string{"origin": lifecycle.InstanceID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRelay(t, nil)

			rec := push(h, pushBody(t, tt.event, tt.attributes), nil)

			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestRelayHandler_HandlePush_RejectsMalformed(t *testing.T) {
	h, _ := newTestRelay(t, nil)

	var msg PubSubMessage
	msg.Message.Data = "%%%not-base64"
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, push(h, body, nil).Code)

	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte("not json"))
	body, err = json.Marshal(msg)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, push(h, body, nil).Code)
}

func TestRelayHandler_HandlePush_VerifiesToken(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		payload  *idtoken.Payload
		err      error
		wantCode int
	}{
		{name: "missing token", wantCode: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", err: errors.New("bad signature"), wantCode: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer ok", payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantCode: http.StatusUnauthorized},
		{
			name:     "unverified email",
			header:   "Bearer ok",
			payload:  &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode: http.StatusUnauthorized,
		},
		{name: "valid", header: "Bearer ok", payload: &idtoken.Payload{Issuer: "accounts.google.com"}, wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notifier := newTestRelay(t, &config.RelayConfig{VerifyPushAuth: true, Audience: "https://relay.example.com/push"})
			h.validate = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "https://relay.example.com/push", audience)

				return tt.payload, tt.err
			}
			if tt.wantCode == http.StatusNoContent {
				notifier.EXPECT().Notify(mock.Anything, mock.Anything).Once()
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := push(h, pushBody(t, service.TopicEvent{TopicID: "t1", Origin: "remote"}, nil), header)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
