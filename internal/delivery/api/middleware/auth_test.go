package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	mockService "bookclub/internal/mocks/service"
	mockUsecase "bookclub/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockService.MockIdentityProvider, *mockUsecase.MockUserUsecase) {
	identity := mockService.NewMockIdentityProvider(t)
	users := mockUsecase.NewMockUserUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		Identity: identity,
		Users:    users,
		Logger:   discardLogger(),
	}), identity, users
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	m, identity, users := newTestAuthMiddleware(t)

	ident := &entity.Identity{UserID: "u1", Email: "ada@example.com"}
	identity.EXPECT().VerifyToken(mock.Anything, "tok").Return(ident, nil).Once()
	users.EXPECT().SyncCurrentUser(mock.Anything, ident).
		Return(&entity.User{ID: "u1", Email: "ada@example.com", Role: entity.RoleUser}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := e.NewContext(req, httptest.NewRecorder())

	var seen string
	err := m.Authenticate(func(c echo.Context) error {
		seen = GetUserID(c)
		assert.Equal(t, "ada@example.com", GetUser(c).Email)
		assert.Equal(t, "u1", deliverycontext.GetUserIDFromContext(c.Request().Context()))
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, "u1", seen)
}

func TestAuthMiddleware_Authenticate_QueryToken(t *testing.T) {
	m, identity, users := newTestAuthMiddleware(t)

	ident := &entity.Identity{UserID: "u1"}
	identity.EXPECT().VerifyToken(mock.Anything, "ws-token").Return(ident, nil).Once()
	users.EXPECT().SyncCurrentUser(mock.Anything, ident).Return(&entity.User{ID: "u1"}, nil).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/topics/live?access_token=ws-token", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	require.NoError(t, err)
}

func TestAuthMiddleware_Authenticate_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		setup   func(identity *mockService.MockIdentityProvider)
		wantErr error
	}{
		{name: "missing header", wantErr: domainerrors.ErrUnauthenticated},
		{name: "not bearer", header: "Basic abc", wantErr: domainerrors.ErrUnauthenticated},
		{name: "empty bearer", header: "Bearer  ", wantErr: domainerrors.ErrUnauthenticated},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(identity *mockService.MockIdentityProvider) {
				identity.EXPECT().VerifyToken(mock.Anything, "bad").Return(nil, errors.New("expired")).Once()
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, identity, _ := newTestAuthMiddleware(t)
			if tt.setup != nil {
				tt.setup(identity)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c := e.NewContext(req, httptest.NewRecorder())

			called := false
			err := m.Authenticate(func(c echo.Context) error {
				called = true

				return nil
			})(c)

			assert.False(t, called)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestAuthMiddleware_Authenticate_SyncFailure(t *testing.T) {
	m, identity, users := newTestAuthMiddleware(t)

	ident := &entity.Identity{UserID: "u1"}
	identity.EXPECT().VerifyToken(mock.Anything, "tok").Return(ident, nil).Once()
	users.EXPECT().SyncCurrentUser(mock.Anything, ident).Return(nil, domainerrors.ErrTransactionFailed).Once()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	c := e.NewContext(req, httptest.NewRecorder())

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))
}

func TestGetUserID_Public(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())

	assert.Empty(t, GetUserID(c))
	assert.Nil(t, GetUser(c))
}
