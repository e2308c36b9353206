package memory

import (
	"cmp"
	"context"
	"slices"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
)

type postRepository struct {
	store *Store
	inTx  bool
}

// NewPostRepository is the constructor for the in-memory post repository.
func NewPostRepository(store *Store) repository.PostRepository {
	return &postRepository{store: store}
}

func (repo *postRepository) FindByID(ctx context.Context, topicID, postID string) (*entity.Post, error) {
	var found *entity.Post
	err := repo.store.read(func(st *state) error {
		post, ok := st.posts[topicID][postID]
		if !ok {
			return repository.ErrPostNotFound
		}
		cloned := *post
		found = &cloned

		return nil
	})

	return found, err
}

func (repo *postRepository) FindByTopic(ctx context.Context, topicID string) ([]*entity.Post, error) {
	posts := []*entity.Post{}
	err := repo.store.read(func(st *state) error {
		for _, post := range st.posts[topicID] {
			cloned := *post
			posts = append(posts, &cloned)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(posts, func(a, b *entity.Post) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return posts, nil
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		if st.posts[post.TopicID] == nil {
			st.posts[post.TopicID] = map[string]*entity.Post{}
		}
		now := repo.store.now()
		if post.CreatedAt.IsZero() {
			post.CreatedAt = now
		}
		if post.UpdatedAt.IsZero() {
			post.UpdatedAt = now
		}
		stored := *post
		st.posts[post.TopicID][post.ID] = &stored

		return nil
	})
}

func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		existing, ok := st.posts[post.TopicID][post.ID]
		if !ok {
			return repository.ErrPostNotFound
		}
		updated := *existing
		updated.Name = post.Name
		updated.Description = post.Description
		updated.LastModifiedBy = post.LastModifiedBy
		updated.UpdatedAt = post.UpdatedAt
		if updated.UpdatedAt.IsZero() {
			updated.UpdatedAt = repo.store.now()
		}
		st.posts[post.TopicID][post.ID] = &updated

		return nil
	})
}

func (repo *postRepository) Delete(ctx context.Context, topicID, postID string) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		if _, ok := st.posts[topicID][postID]; !ok {
			return repository.ErrPostNotFound
		}
		delete(st.posts[topicID], postID)

		return nil
	})
}

func (repo *postRepository) DeleteByTopic(ctx context.Context, topicID string) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		delete(st.posts, topicID)

		return nil
	})
}
