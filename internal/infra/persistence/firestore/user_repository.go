package firestore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// prefixEnd is the high code point used to turn a range query into a prefix match.
const prefixEnd = "\uf8ff"

type userRepository struct {
	client *firestore.Client
	acc    docAccessor
}

// NewUserRepository is the constructor for the Firestore user repository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client, acc: clientAccessor{}}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	snap, err := repo.acc.get(ctx, repo.client.Collection(usersCollection).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}

	return toUserDomain(snap.Ref.ID, &doc), nil
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	q := repo.client.Collection(usersCollection).
		Where("emailLower", "==", strings.ToLower(email)).
		Limit(1)

	users, err := repo.decodeAll(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}
	if len(users) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return users[0], nil
}

// Search runs one prefix query per searchable field and merges the results by id.
func (repo *userRepository) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	prefix := strings.ToLower(query)
	merged := map[string]*entity.User{}

	for _, field := range []string{"emailLower", "nameLower"} {
		q := repo.client.Collection(usersCollection).
			Where(field, ">=", prefix).
			Where(field, "<=", prefix+prefixEnd)
		if limit > 0 {
			q = q.Limit(limit)
		}

		users, err := repo.decodeAll(ctx, q)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search users")
		}
		for _, user := range users {
			merged[user.ID] = user
		}
	}

	users := make([]*entity.User, 0, len(merged))
	for _, user := range merged {
		users = append(users, user)
	}
	slices.SortFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(a.Email, b.Email)
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	return users, nil
}

func (repo *userRepository) decodeAll(ctx context.Context, q firestore.Query) ([]*entity.User, error) {
	snaps, err := repo.acc.getAll(ctx, q)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, len(snaps))
	for _, snap := range snaps {
		var doc userDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
		}
		users = append(users, toUserDomain(snap.Ref.ID, &doc))
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	stampCreate(&user.CreatedAt, &user.UpdatedAt)

	if err := repo.acc.create(ctx, repo.client.Collection(usersCollection).Doc(user.ID), fromUserDomain(user)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	doc := fromUserDomain(user)
	user.UpdatedAt = time.Now().UTC()

	err := repo.acc.update(ctx, repo.client.Collection(usersCollection).Doc(user.ID), []firestore.Update{
		{Path: "email", Value: doc.Email},
		{Path: "emailLower", Value: doc.EmailLower},
		{Path: "name", Value: doc.Name},
		{Path: "nameLower", Value: doc.NameLower},
		{Path: "familyName", Value: doc.FamilyName},
		{Path: "logo", Value: doc.Logo},
		{Path: "role", Value: doc.Role},
		{Path: "updatedAt", Value: user.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to update user")
	}

	return nil
}
