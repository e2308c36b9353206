// Package service defines interfaces for core, stateless domain logic and external collaborators.
package service

import (
	"context"

	"bookclub/internal/domain/entity"
)

// IdentityProvider verifies bearer tokens issued by the configured identity backend.
type IdentityProvider interface {
	// VerifyToken returns the identity the token was issued for.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)
}
