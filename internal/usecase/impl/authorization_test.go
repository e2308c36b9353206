package impl

import (
	"testing"

	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	require.NoError(t, authorize(entity.Granted, entity.PermissionWrite))
	assert.True(t, errors.Is(authorize(entity.Denied, entity.PermissionWrite), domainerrors.ErrForbidden))
	assert.True(t, errors.Is(authorize(entity.Pending, entity.PermissionWrite), domainerrors.ErrAuthorizationPending))
}

func TestAuthorizeLookup(t *testing.T) {
	tests := []struct {
		name     string
		decision entity.Decision
		wantErr  error
	}{
		{name: "granted", decision: entity.Granted},
		{name: "denied reads as missing", decision: entity.Denied, wantErr: domainerrors.ErrTopicNotFound},
		{name: "pending stays pending", decision: entity.Pending, wantErr: domainerrors.ErrAuthorizationPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authorizeLookup(tt.decision, domainerrors.ErrTopicNotFound)
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}
