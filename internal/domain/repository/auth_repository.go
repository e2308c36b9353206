package repository

import (
	"context"

	"bookclub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrDuplicateAuth is returned when the provider user id is already registered.
	ErrDuplicateAuth = errors.New("authentication method already exists")
)

// AuthRepository stores local login credentials.
type AuthRepository interface {
	// CreateAuthentication persists a new credential.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves a credential by provider and provider-specific id.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)
}
