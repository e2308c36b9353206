package validator

import (
	"testing"

	domainerrors "bookclub/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string   `json:"email" validate:"required,email"`
	Category string   `json:"category" validate:"omitempty,category"`
	Role     string   `json:"role" validate:"omitempty,member_role"`
	Tags     []string `json:"-"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		input   sample
		wantErr string
	}{
		{name: "valid", input: sample{Email: "a@b.io", Category: "Horror", Role: "writer"}},
		{name: "missing email", input: sample{}, wantErr: "email is required"},
		{name: "bad email", input: sample{Email: "nope"}, wantErr: "email must be a valid email"},
		{name: "unknown category", input: sample{Email: "a@b.io", Category: "Cooking"}, wantErr: "category is invalid"},
		{name: "unknown role", input: sample{Email: "a@b.io", Role: "owner"}, wantErr: "role is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Contains(t, appErr.Details(), tt.wantErr)
		})
	}
}
