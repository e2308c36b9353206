package handler

import (
	"log/slog"
	"net/http"

	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/response"
	"bookclub/internal/domain/entity"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TopicHandler serves topics, their members, reactions and share codes.
type TopicHandler struct {
	uc     usecase.TopicUsecase
	logger *slog.Logger
}

// NewTopicHandler is the constructor for TopicHandler.
func NewTopicHandler(uc usecase.TopicUsecase, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{uc: uc, logger: logger}
}

// ListTopics returns the caller's visible topics filtered by name, category and relation.
func (h *TopicHandler) ListTopics(c echo.Context) error {
	filter := usecase.TopicFilter{
		Name:     c.QueryParam("name"),
		Category: entity.Category(c.QueryParam("category")),
		Role:     entity.TopicRelation(c.QueryParam("role")),
	}

	topics, err := h.uc.ListTopics(c.Request().Context(), middleware.GetUserID(c), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponses(topics))
}

// CreateTopic creates a topic owned by the caller.
func (h *TopicHandler) CreateTopic(c echo.Context) error {
	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid topic input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	topic, err := h.uc.CreateTopic(c.Request().Context(), middleware.GetUserID(c), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toTopicResponse(topic))
}

// GetTopic returns one topic.
func (h *TopicHandler) GetTopic(c echo.Context) error {
	topic, err := h.uc.GetTopic(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponse(topic))
}

// UpdateTopic replaces the editable fields of a topic.
func (h *TopicHandler) UpdateTopic(c echo.Context) error {
	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid topic input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	topic, err := h.uc.UpdateTopic(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponse(topic))
}

// DeleteTopic removes a topic and its posts.
func (h *TopicHandler) DeleteTopic(c echo.Context) error {
	if err := h.uc.DeleteTopic(c.Request().Context(), middleware.GetUserID(c), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Permissions reports the READ, WRITE and FULL decisions for the caller.
func (h *TopicHandler) Permissions(c echo.Context) error {
	decisions, err := h.uc.Permissions(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decisions)
}

// ShareCode renders the topic link as a PNG QR code.
func (h *TopicHandler) ShareCode(c echo.Context) error {
	png, err := h.uc.ShareCode(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// AddMember grants a user the reader or writer role.
func (h *TopicHandler) AddMember(c echo.Context) error {
	var req addMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	topic, err := h.uc.AddMember(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), &usecase.AddMemberInput{
		UserID:  req.UserID,
		Role:    entity.MemberRole(req.Role),
		Confirm: req.Confirm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponse(topic))
}

// RemoveMember drops a user from the reader or writer list.
func (h *TopicHandler) RemoveMember(c echo.Context) error {
	topic, err := h.uc.RemoveMember(
		c.Request().Context(),
		middleware.GetUserID(c),
		c.Param("id"),
		c.Param("userId"),
		entity.MemberRole(c.Param("role")),
	)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponse(topic))
}

// ToggleReaction adds or removes the caller's reaction of the given kind.
func (h *TopicHandler) ToggleReaction(c echo.Context) error {
	topic, err := h.uc.ToggleReaction(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), entity.ReactionKind(c.Param("kind")))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toTopicResponse(topic))
}
