package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookclub/config"
	"bookclub/internal/domain/constants"
	"bookclub/internal/domain/lifecycle"
	"bookclub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testEvent() *service.TopicEvent {
	return &service.TopicEvent{
		RequestID: "req-1",
		Type:      service.PostCreated,
		TopicID:   "topic-1",
		PostID:    "post-1",
		ActorID:   "user-1",
		Members:   []string{"user-1", "user-2"},
		At:        time.Unix(1700000000, 0).UTC(),
	}
}

func TestLocalHTTPPublisher_PublishTopicEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTopicEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "post.created", received.Message.Attributes["event_type"])
	assert.Equal(t, "topic-1", received.Message.Attributes["topic_id"])
	assert.Equal(t, "post-1", received.Message.Attributes["post_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.TopicEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *testEvent(), decoded)
}

func TestLocalHTTPPublisher_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishTopicEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		relay   *config.RelayConfig
		wantErr string
	}{
		{name: "not configured", pubsub: nil},
		{name: "not configured with relay", pubsub: nil, relay: &config.RelayConfig{Port: 8081}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9"}},
		{name: "local through relay", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, relay: &config.RelayConfig{Port: 8081}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: "local endpoint"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: "project ID"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: "topic ID"},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub, Relay: tt.relay}
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: cfg,
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
		})
	}
}

func TestLocalEndpoint(t *testing.T) {
	relay := &config.RelayConfig{Port: 8081}

	assert.Equal(t, "http://pubsub:8085/push",
		localEndpoint(&config.PubSubConfig{LocalEndpoint: "http://pubsub:8085/push"}, relay))
	assert.Equal(t, "http://localhost:8081/push", localEndpoint(&config.PubSubConfig{}, relay))
	assert.Empty(t, localEndpoint(&config.PubSubConfig{}, nil))
}

func TestLocalHTTPPublisher_LoopsBackThroughRelay(t *testing.T) {
	var origin string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg PubSubPushMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		origin = msg.Message.Attributes["origin"]
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	event := testEvent()
	event.Origin = lifecycle.InstanceID

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishTopicEvent(context.Background(), event))
	assert.Equal(t, lifecycle.InstanceID, origin)
}

func TestDisabledPublisher(t *testing.T) {
	publisher := &disabledPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishTopicEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
