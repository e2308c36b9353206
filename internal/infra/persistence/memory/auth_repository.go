package memory

import (
	"context"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
)

type authRepository struct {
	store *Store
	inTx  bool
}

// NewAuthRepository is the constructor for the in-memory credential repository.
func NewAuthRepository(store *Store) repository.AuthRepository {
	return &authRepository{store: store}
}

func authKey(provider, providerUserID string) string {
	return provider + "|" + providerUserID
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		key := authKey(auth.Provider, auth.ProviderUserID)
		if _, exists := st.auths[key]; exists {
			return repository.ErrDuplicateAuth
		}
		for _, existing := range st.auths {
			if existing.UserID == auth.UserID {
				return repository.ErrDuplicateAuth
			}
		}
		if auth.CreatedAt.IsZero() {
			auth.CreatedAt = repo.store.now()
		}
		stored := *auth
		st.auths[key] = &stored

		return nil
	})
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	var found *entity.Authentication
	err := repo.store.read(func(st *state) error {
		auth, ok := st.auths[authKey(provider, providerUserID)]
		if !ok {
			return repository.ErrAuthNotFound
		}
		cloned := *auth
		found = &cloned

		return nil
	})

	return found, err
}
