package handler

import (
	"log/slog"
	"net/http"

	"bookclub/config"
	"bookclub/internal/delivery/api/response"
	"bookclub/internal/domain/constants"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	Auth   usecase.AuthUsecase `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves email and password sign-in for the local identity provider.
type AuthHandler struct {
	uc      usecase.AuthUsecase
	enabled bool
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		uc:      params.Auth,
		enabled: params.Auth != nil && params.Config.Identity.Provider == constants.IdentityProviderLocal,
		logger:  params.Logger,
	}
}

type authResponse struct {
	AccessToken string        `json:"accessToken"`
	TokenType   string        `json:"tokenType"`
	ExpiresIn   int64         `json:"expiresIn"`
	User        *userResponse `json:"user"`
}

func toAuthResponse(output *usecase.AuthOutput) *authResponse {
	return &authResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   output.ExpiresIn,
		User:        toUserResponse(output.User),
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	if !h.enabled {
		return errors.WithStack(domainerrors.ErrLocalAuthDisabled)
	}

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	if !h.enabled {
		return errors.WithStack(domainerrors.ErrLocalAuthDisabled)
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output))
}
