package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookclub/internal/delivery/api/response"
	domainerrors "bookclub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "app error",
			err:        errors.WithStack(domainerrors.ErrTopicNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "TOPIC_NOT_FOUND",
		},
		{
			name:        "wrapped context becomes details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed, "topic name is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "topic name is required",
		},
		{
			name:        "explicit details",
			err:         domainerrors.ErrMembershipConfirmationRequired.WithDetails("u2 is a reader"),
			wantStatus:  http.StatusConflict,
			wantCode:    "MEMBERSHIP_CONFIRMATION_REQUIRED",
			wantDetails: "u2 is a reader",
		},
		{
			name:       "pending authorization",
			err:        errors.Wrap(domainerrors.ErrAuthorizationPending, "role lookup failed"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "AUTHORIZATION_PENDING",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(discardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/topics/x", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotEmpty(t, body.Meta.RequestID)
		})
	}
}
