package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// UpdateProfileInput carries a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name       *string
	FamilyName *string
	Logo       *string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// SyncCurrentUser mirrors a verified identity into the users store on first sight.
	SyncCurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error)

	GetProfile(ctx context.Context, userID string) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)

	// AssignRole is restricted to super admins.
	AssignRole(ctx context.Context, actorID, targetID string, role entity.Role) (*entity.User, error)

	// SearchUsers matches email or name prefixes. An empty query matches nothing.
	SearchUsers(ctx context.Context, query string, limit int) ([]*entity.User, error)
}
