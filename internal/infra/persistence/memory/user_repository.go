package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
)

type userRepository struct {
	store *Store
	inTx  bool
}

// NewUserRepository is the constructor for the in-memory user repository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var found *entity.User
	err := repo.store.read(func(st *state) error {
		user, ok := st.users[id]
		if !ok {
			return repository.ErrUserNotFound
		}
		found = cloneUser(user)

		return nil
	})

	return found, err
}

func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var found *entity.User
	err := repo.store.read(func(st *state) error {
		for _, user := range st.users {
			if strings.EqualFold(user.Email, email) {
				found = cloneUser(user)

				return nil
			}
		}

		return repository.ErrUserNotFound
	})

	return found, err
}

func (repo *userRepository) Search(ctx context.Context, query string, limit int) ([]*entity.User, error) {
	prefix := strings.ToLower(query)
	users := []*entity.User{}

	err := repo.store.read(func(st *state) error {
		for _, user := range st.users {
			if strings.HasPrefix(strings.ToLower(user.Email), prefix) ||
				strings.HasPrefix(strings.ToLower(user.Name), prefix) {
				users = append(users, cloneUser(user))
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(users, func(a, b *entity.User) int {
		return cmp.Compare(a.Email, b.Email)
	})
	if limit > 0 && len(users) > limit {
		users = users[:limit]
	}

	return users, nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		if _, exists := st.users[user.ID]; exists {
			return repository.ErrUserAlreadyExists
		}
		now := repo.store.now()
		if user.CreatedAt.IsZero() {
			user.CreatedAt = now
		}
		if user.UpdatedAt.IsZero() {
			user.UpdatedAt = now
		}
		st.users[user.ID] = cloneUser(user)

		return nil
	})
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		existing, ok := st.users[user.ID]
		if !ok {
			return repository.ErrUserNotFound
		}
		updated := cloneUser(user)
		updated.CreatedAt = existing.CreatedAt
		updated.UpdatedAt = repo.store.now()
		st.users[user.ID] = updated

		return nil
	})
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	cloned := *user
	if user.Logo != nil {
		logo := *user.Logo
		cloned.Logo = &logo
	}

	return &cloned
}
