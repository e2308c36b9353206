package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 20
	maxSearchLimit     = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	roles     usecase.RoleResolver
	events    eventEmitter
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Roles     usecase.RoleResolver
	Notifier  service.ChangeNotifier
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		roles:     params.Roles,
		events:    eventEmitter{notifier: params.Notifier, publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncCurrentUser creates the user record on first sight and returns existing records untouched.
func (srv *userService) SyncCurrentUser(ctx context.Context, identity *entity.Identity) (*entity.User, error) {
	if identity == nil || identity.UserID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		existing, err := userRepo.FindByID(ctx, identity.UserID)
		if err == nil {
			user = existing

			return nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user")
		}

		name := strings.TrimSpace(identity.Name)
		if name == "" {
			name = entity.DefaultNameFromEmail(identity.Email)
		}
		user = &entity.User{
			ID:    identity.UserID,
			Email: identity.Email,
			Name:  name,
			Role:  entity.RoleUser,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}
		srv.log(ctx).InfoContext(ctx, "Mirrored new user", slog.String("userID", user.ID))

		return nil
	})
	if err != nil {
		// A concurrent first request may have created the record already.
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return srv.GetProfile(ctx, identity.UserID)
		}

		return nil, errors.Wrap(err, "failed to sync current user")
	}

	return user, nil
}

// GetProfile retrieves a user by id.
func (srv *userService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields of input.
func (srv *userService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing profile input")
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			if name == "" {
				return errors.Wrap(domainerrors.ErrValidationFailed, "name cannot be blank")
			}
			found.Name = name
		}
		if input.FamilyName != nil {
			found.FamilyName = strings.TrimSpace(*input.FamilyName)
		}
		if input.Logo != nil {
			logo := strings.TrimSpace(*input.Logo)
			if logo == "" {
				found.Logo = nil
			} else {
				found.Logo = &logo
			}
		}

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// AssignRole changes the global role of targetID. Only super admins may call it.
func (srv *userService) AssignRole(ctx context.Context, actorID, targetID string, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid role %q", role)
	}

	actorRole, err := srv.roles.ResolveRole(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuthorizationPending, err.Error())
	}
	if actorID == "" || actorRole != entity.RoleSuperAdmin {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only super admins can assign roles")
	}

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		target, err := userRepo.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "target user not found")
			}

			return errors.Wrap(err, "failed to find target user")
		}

		target.Role = role
		if err := userRepo.Update(ctx, target); err != nil {
			return errors.Wrap(err, "failed to update role")
		}
		user = target

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to assign role")
	}

	srv.log(ctx).InfoContext(ctx, "Role assigned",
		slog.String("actorID", actorID),
		slog.String("targetID", targetID),
		slog.String("role", role.String()),
	)
	// A role change alters which topics the target can see.
	srv.events.emit(ctx, service.TopicEvent{
		Type:    service.UserRoleChanged,
		ActorID: actorID,
		Members: []string{targetID},
		At:      time.Now().UTC(),
	})

	return user, nil
}

// SearchUsers returns users whose email or name starts with query.
func (srv *userService) SearchUsers(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.User{}, nil
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)

	users, err := srv.userRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return users, nil
}
