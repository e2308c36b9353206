// Package handler contains the Pub/Sub push handlers served by the worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"bookclub/config"
	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/lifecycle"
	"bookclub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Pub/Sub push token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// RelayHandler hands topic events published by other replicas to the local change notifier,
// so live subscribers connected here see mutations made elsewhere.
type RelayHandler struct {
	verifyPushAuth bool
	audience       string
	validate       TokenValidator
	notifier       service.ChangeNotifier
	logger         *slog.Logger
}

// RelayHandlerParams holds dependencies for the RelayHandler
type RelayHandlerParams struct {
	fx.In

	Config   *config.Config
	Notifier service.ChangeNotifier
	Logger   *slog.Logger
}

// NewRelayHandler creates a new Pub/Sub push handler
func NewRelayHandler(params RelayHandlerParams) *RelayHandler {
	h := &RelayHandler{
		validate: idtoken.Validate,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
	if relay := params.Config.Relay; relay != nil {
		h.verifyPushAuth = relay.VerifyPushAuth
		h.audience = relay.Audience
	}

	return h
}

// HandlePush forwards a pushed topic event to local subscribers. Events this instance
// published are acknowledged and dropped.
func (h *RelayHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Relay] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Relay] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Relay] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.TopicEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Relay] Failed to parse topic event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	// Local subscribers were notified when the mutation happened.
	if origin(&pushMsg, &event) == lifecycle.InstanceID {
		reqLogger.Debug("[Relay] Skipping own event", slog.String("message_id", pushMsg.Message.MessageID))

		return c.NoContent(http.StatusNoContent)
	}

	reqLogger.Info("[Relay] Relaying topic event",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("event_type", string(event.Type)),
		slog.String("topic_id", event.TopicID),
	)
	h.notifier.Notify(ctx, event)

	return c.NoContent(http.StatusNoContent)
}

func origin(pushMsg *PubSubMessage, event *service.TopicEvent) string {
	if event.Origin != "" {
		return event.Origin
	}

	return pushMsg.Message.Attributes["origin"]
}

// extractRequestID prefers message attributes, then the event payload, then the push request.
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.TopicEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.NewString()
}

func (h *RelayHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
