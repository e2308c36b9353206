// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// RoleResolver looks up the global role of a user.
type RoleResolver interface {
	// ResolveRole returns RoleUser for an empty id, a missing record or an unset role.
	// Only backend failures return an error.
	ResolveRole(ctx context.Context, userID string) (entity.Role, error)
}
