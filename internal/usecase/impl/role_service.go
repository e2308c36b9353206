// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
	"bookclub/internal/usecase"

	"github.com/pkg/errors"
)

// roleService implements the RoleResolver interface.
type roleService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(userRepo repository.UserRepository, logger *slog.Logger) usecase.RoleResolver {
	return &roleService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// ResolveRole reads the stored role of userID.
func (srv *roleService) ResolveRole(ctx context.Context, userID string) (entity.Role, error) {
	if userID == "" {
		return entity.RoleUser, nil
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.RoleUser, nil
		}

		return "", errors.Wrap(err, "failed to resolve role")
	}

	return entity.RoleOrDefault(string(user.Role)), nil
}
