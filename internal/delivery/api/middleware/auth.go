package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	keyUserID = "userID"
	keyUser   = "user"

	// accessTokenQueryParam carries the token for websocket upgrades, which cannot set headers from a browser.
	accessTokenQueryParam = "access_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Identity service.IdentityProvider
	Users    usecase.UserUsecase
	Logger   *slog.Logger
}

// AuthMiddleware verifies bearer tokens and mirrors the caller into the user store.
type AuthMiddleware struct {
	identity service.IdentityProvider
	users    usecase.UserUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		identity: params.Identity,
		users:    params.Users,
		logger:   params.Logger,
	}
}

// Authenticate validates the access token and stores the synced user on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		ctx := c.Request().Context()
		identity, err := m.identity.VerifyToken(ctx, token)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Debug("Rejected access token", slog.Any("error", err))

			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		user, err := m.users.SyncCurrentUser(ctx, identity)
		if err != nil {
			return errors.Wrap(err, "failed to sync current user")
		}

		c.Set(keyUserID, user.ID)
		c.Set(keyUser, user)

		ctx = deliverycontext.WithLogger(ctx, deliverycontext.GetLoggerOrDefault(ctx, m.logger))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithUserID(ctx, user.ID)))

		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		token := c.QueryParam(accessTokenQueryParam)

		return token, token != ""
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	token = strings.TrimSpace(token)

	return token, found && token != ""
}

// GetUserID returns the authenticated user's id, empty when the route is public.
func GetUserID(c echo.Context) string {
	id, _ := c.Get(keyUserID).(string)

	return id
}

// GetUser returns the authenticated user's record, nil when the route is public.
func GetUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyUser).(*entity.User)

	return user
}
