package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"bookclub/internal/delivery/api/middleware"
	"bookclub/internal/delivery/api/response"
	"bookclub/internal/domain/entity"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetMe returns the caller's profile, which the auth middleware has already synced.
func (h *UserHandler) GetMe(c echo.Context) error {
	if user := middleware.GetUser(c); user != nil {
		return response.Success(c, http.StatusOK, toUserResponse(user))
	}

	user, err := h.uc.GetProfile(c.Request().Context(), middleware.GetUserID(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateMe applies a partial profile update.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), middleware.GetUserID(c), &usecase.UpdateProfileInput{
		Name:       req.Name,
		FamilyName: req.FamilyName,
		Logo:       req.Logo,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// SearchUsers backs the member picker with an email or name prefix search.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "limit must be a number")
		}
		limit = parsed
	}

	users, err := h.uc.SearchUsers(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// AssignRole lets a super admin change another user's global role.
func (h *UserHandler) AssignRole(c echo.Context) error {
	var req roleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	user, err := h.uc.AssignRole(c.Request().Context(), middleware.GetUserID(c), c.Param("id"), entity.Role(req.Role))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
