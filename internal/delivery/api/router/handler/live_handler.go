package handler

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"bookclub/config"
	"bookclub/internal/delivery/api/middleware"
	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/entity"
	"bookclub/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	liveWriteWait    = 10 * time.Second
	livePongWait     = 60 * time.Second
	livePingInterval = (livePongWait * 9) / 10
	liveReadLimit    = 512

	liveMessageTopics = "topics"
)

// LiveHandlerParams holds dependencies for LiveHandler, injected by Fx.
type LiveHandlerParams struct {
	fx.In

	Visibility usecase.VisibilityUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// LiveHandler streams the caller's visible topic set over a websocket.
type LiveHandler struct {
	visibility usecase.VisibilityUsecase
	upgrader   websocket.Upgrader
	logger     *slog.Logger
}

type liveMessage struct {
	Type string           `json:"type"`
	Data []*topicResponse `json:"data"`
}

// NewLiveHandler is the constructor for LiveHandler.
func NewLiveHandler(params LiveHandlerParams) *LiveHandler {
	allowed := params.Config.HTTP.AllowedOrigins

	return &LiveHandler{
		visibility: params.Visibility,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(allowed, r.Header.Get("Origin"))
			},
		},
		logger: params.Logger,
	}
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" || len(allowed) == 0 {
		return true
	}

	return slices.Contains(allowed, "*") || slices.Contains(allowed, origin)
}

// Stream sends a snapshot on connect and again after every change that touches the caller.
func (h *LiveHandler) Stream(c echo.Context) error {
	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the HTTP error.
		logger.Debug("Websocket upgrade failed", slog.Any("error", err))

		return nil
	}
	defer conn.Close()

	updates := make(chan []*entity.Topic, 1)
	unsubscribe, err := h.visibility.WatchVisibleTopics(ctx, middleware.GetUserID(c), func(topics []*entity.Topic) {
		replaceLatest(updates, topics)
	})
	if err != nil {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "failed to load topics"),
			time.Now().Add(liveWriteWait))

		return errors.WithStack(err)
	}
	defer unsubscribe()

	go h.readPump(conn, cancel)

	ticker := time.NewTicker(livePingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case topics := <-updates:
			_ = conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
			if err := conn.WriteJSON(liveMessage{Type: liveMessageTopics, Data: toTopicResponses(topics)}); err != nil {
				logger.Debug("Websocket write failed", slog.Any("error", err))

				return nil
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait)); err != nil {
				return nil
			}
		}
	}
}

// readPump drains client frames so pongs and close frames are processed, and cancels once the peer goes away.
func (h *LiveHandler) readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()

	conn.SetReadLimit(liveReadLimit)
	_ = conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// replaceLatest keeps only the newest snapshot queued.
func replaceLatest(ch chan []*entity.Topic, topics []*entity.Topic) {
	for {
		select {
		case ch <- topics:
			return
		default:
		}

		select {
		case <-ch:
		default:
		}
	}
}
