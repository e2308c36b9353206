package firestore

import (
	"context"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type authRepository struct {
	client *firestore.Client
	acc    docAccessor
}

// NewAuthRepository is the constructor for the Firestore credential repository.
func NewAuthRepository(client *firestore.Client) repository.AuthRepository {
	return &authRepository{client: client, acc: clientAccessor{}}
}

func (repo *authRepository) ref(provider, providerUserID string) *firestore.DocumentRef {
	return repo.client.Collection(credentialsCollection).Doc(provider + ":" + providerUserID)
}

func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	if auth.CreatedAt.IsZero() {
		auth.CreatedAt = time.Now().UTC()
	}

	doc := &credentialDoc{
		UserID:         auth.UserID,
		Provider:       auth.Provider,
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
		CreatedAt:      auth.CreatedAt,
	}
	if err := repo.acc.create(ctx, repo.ref(auth.Provider, auth.ProviderUserID), doc); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateAuth
		}

		return errors.Wrap(err, "failed to create authentication")
	}

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error) {
	snap, err := repo.acc.get(ctx, repo.ref(provider, providerUserID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrAuthNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	var doc credentialDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode authentication")
	}

	return &entity.Authentication{
		UserID:         doc.UserID,
		Provider:       doc.Provider,
		ProviderUserID: doc.ProviderUserID,
		PasswordHash:   doc.PasswordHash,
		CreatedAt:      doc.CreatedAt,
	}, nil
}
