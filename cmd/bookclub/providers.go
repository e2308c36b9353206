package main

import (
	"log/slog"

	"bookclub/config"
	"bookclub/internal/domain/constants"
	"bookclub/internal/domain/repository"
	"bookclub/internal/domain/service"
	"bookclub/internal/infra/auth"
	"bookclub/internal/infra/persistence/firestore"
	"bookclub/internal/infra/persistence/memory"
	"bookclub/internal/infra/persistence/postgres"
	"bookclub/internal/usecase"
	"bookclub/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// repositories exposes the backend selected by storage.driver.
type repositories struct {
	fx.Out

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	AuthRepo  repository.AuthRepository
	TopicRepo repository.TopicRepository
	PostRepo  repository.PostRepository
}

type repositoryParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
}

func newRepositories(params repositoryParams) (repositories, error) {
	switch params.Config.Storage.Driver {
	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: params.Lc, Config: params.Config, Logger: params.Logger})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			TxManager: postgres.NewTransactionManager(db),
			UserRepo:  postgres.NewUserRepository(db),
			AuthRepo:  postgres.NewAuthRepository(db),
			TopicRepo: postgres.NewTopicRepository(db),
			PostRepo:  postgres.NewPostRepository(db),
		}, nil
	case constants.StorageDriverFirestore:
		if params.App == nil {
			return repositories{}, errors.New("firestore storage requires firebase configuration")
		}
		client, err := firestore.New(firestore.Params{Lc: params.Lc, App: params.App, Logger: params.Logger})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			TxManager: firestore.NewTransactionManager(client),
			UserRepo:  firestore.NewUserRepository(client),
			AuthRepo:  firestore.NewAuthRepository(client),
			TopicRepo: firestore.NewTopicRepository(client),
			PostRepo:  firestore.NewPostRepository(client),
		}, nil
	default:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return repositories{
			TxManager: memory.NewTransactionManager(store),
			UserRepo:  memory.NewUserRepository(store),
			AuthRepo:  memory.NewAuthRepository(store),
			TopicRepo: memory.NewTopicRepository(store),
			PostRepo:  memory.NewPostRepository(store),
		}, nil
	}
}

// newFirebaseApp returns nil when Firebase is not configured.
func newFirebaseApp(cfg *config.Config) (*firebase.App, error) {
	if cfg.Firebase == nil || cfg.Firebase.ProjectID == "" {
		return nil, nil
	}

	return firestore.NewApp(cfg)
}

// newTokenService returns nil unless local identity is enabled.
func newTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Identity.Provider != constants.IdentityProviderLocal {
		return nil, nil
	}

	return auth.NewJWTService(cfg)
}

type identityParams struct {
	fx.In

	Config *config.Config
	App    *firebase.App        `optional:"true"`
	Tokens service.TokenService `optional:"true"`
}

func newIdentityProvider(params identityParams) (service.IdentityProvider, error) {
	switch params.Config.Identity.Provider {
	case constants.IdentityProviderFirebase:
		if params.App == nil {
			return nil, errors.New("firebase identity requires firebase configuration")
		}

		return auth.NewFirebaseIdentityProvider(params.App)
	case constants.IdentityProviderLocal:
		return auth.NewLocalIdentityProvider(params.Tokens), nil
	default:
		return nil, errors.Errorf("unknown identity provider: %s", params.Config.Identity.Provider)
	}
}

// newAuthUsecase returns nil unless local identity is enabled.
func newAuthUsecase(cfg *config.Config, params impl.AuthServiceParams) usecase.AuthUsecase {
	if cfg.Identity.Provider != constants.IdentityProviderLocal {
		return nil
	}

	return impl.NewAuthService(params)
}
