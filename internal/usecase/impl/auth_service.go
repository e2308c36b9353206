package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// authService implements the AuthUsecase interface for the local identity provider.
type authService struct {
	txManager    repository.TransactionManager
	authRepo     repository.AuthRepository
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AuthRepo     repository.AuthRepository
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		authRepo:     params.AuthRepo,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a user together with its email credential and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "missing registration input")
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "password must be at least %d characters", minPasswordLength)
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = entity.DefaultNameFromEmail(email)
	}
	user := &entity.User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  entity.RoleUser,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to check existing credential")
		}

		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		credential := &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hash,
		}
		if err := authRepo.CreateAuthentication(ctx, credential); err != nil {
			if errors.Is(err, repository.ErrDuplicateAuth) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(err, "failed to create credential")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "registration failed")
	}

	srv.log(ctx).InfoContext(ctx, "User registered", slog.String("userID", user.ID))

	return srv.issue(user)
}

// Login verifies an email credential and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	if input == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}
	email := strings.ToLower(strings.TrimSpace(input.Email))

	credential, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find credential")
	}
	if !srv.hasher.Check(input.Password, credential.PasswordHash) {
		srv.log(ctx).WarnContext(ctx, "Login failed", slog.String("userID", credential.UserID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByID(ctx, credential.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issue(user)
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.AuthOutput{
		AccessToken: token,
		ExpiresIn:   int64(srv.tokenService.AccessTokenDuration().Seconds()),
		User:        user,
	}, nil
}
