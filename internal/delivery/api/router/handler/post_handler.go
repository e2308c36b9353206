package handler

import (
	"log/slog"
	"net/http"

	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/response"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler serves the posts nested under a topic.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{uc: uc, logger: logger}
}

func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context(), middleware.GetUserID(c), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponses(posts))
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.CreatePost(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), &usecase.PostInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostResponse(post))
}

func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.uc.GetPost(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("postId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	var req postRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.uc.UpdatePost(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("postId"), &usecase.PostInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toPostResponse(post))
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.uc.DeletePost(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("postId")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Permissions reports the READ, WRITE and DELETE decisions for the caller on one post.
func (h *PostHandler) Permissions(c echo.Context) error {
	decisions, err := h.uc.Permissions(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), c.Param("postId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decisions)
}
