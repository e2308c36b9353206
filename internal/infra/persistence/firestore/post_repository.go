package firestore

import (
	"context"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type postRepository struct {
	client *firestore.Client
	acc    docAccessor
}

// NewPostRepository is the constructor for the Firestore post repository.
func NewPostRepository(client *firestore.Client) repository.PostRepository {
	return &postRepository{client: client, acc: clientAccessor{}}
}

func (repo *postRepository) collection(topicID string) *firestore.CollectionRef {
	return repo.client.Collection(topicsCollection).Doc(topicID).Collection(postsCollection)
}

func (repo *postRepository) FindByID(ctx context.Context, topicID, postID string) (*entity.Post, error) {
	snap, err := repo.acc.get(ctx, repo.collection(topicID).Doc(postID))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	var doc postDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode post")
	}

	return toPostDomain(topicID, snap.Ref.ID, &doc), nil
}

func (repo *postRepository) FindByTopic(ctx context.Context, topicID string) ([]*entity.Post, error) {
	snaps, err := repo.acc.getAll(ctx, repo.collection(topicID).OrderBy("createdAt", firestore.Asc))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	posts := make([]*entity.Post, 0, len(snaps))
	for _, snap := range snaps {
		var doc postDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "failed to decode post %s", snap.Ref.ID)
		}
		posts = append(posts, toPostDomain(topicID, snap.Ref.ID, &doc))
	}

	return posts, nil
}

func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	stampCreate(&post.CreatedAt, &post.UpdatedAt)

	if err := repo.acc.create(ctx, repo.collection(post.TopicID).Doc(post.ID), fromPostDomain(post)); err != nil {
		return errors.Wrap(err, "failed to create post")
	}

	return nil
}

func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = time.Now().UTC()
	}

	err := repo.acc.update(ctx, repo.collection(post.TopicID).Doc(post.ID), []firestore.Update{
		{Path: "name", Value: post.Name},
		{Path: "description", Value: post.Description},
		{Path: "lastModifiedBy", Value: modifierDoc{UserID: post.LastModifiedBy.UserID, UserName: post.LastModifiedBy.UserName}},
		{Path: "updatedAt", Value: post.UpdatedAt},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to update post")
	}

	return nil
}

func (repo *postRepository) Delete(ctx context.Context, topicID, postID string) error {
	if err := repo.acc.delete(ctx, repo.collection(topicID).Doc(postID)); err != nil {
		if isNotFound(err) {
			return repository.ErrPostNotFound
		}

		return errors.Wrap(err, "failed to delete post")
	}

	return nil
}

// DeleteByTopic reads the whole subcollection before deleting, so inside a transaction
// it must run before any other write.
func (repo *postRepository) DeleteByTopic(ctx context.Context, topicID string) error {
	snaps, err := repo.acc.getAll(ctx, repo.collection(topicID).Query)
	if err != nil {
		return errors.Wrap(err, "failed to list posts for deletion")
	}

	for _, snap := range snaps {
		if err := repo.acc.delete(ctx, snap.Ref); err != nil && !isNotFound(err) {
			return errors.Wrapf(err, "failed to delete post %s", snap.Ref.ID)
		}
	}

	return nil
}
