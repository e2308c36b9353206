package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// PostInput carries the editable fields of a post.
type PostInput struct {
	Name        string
	Description string
}

// PostUsecase defines post operations scoped under a topic.
type PostUsecase interface {
	CreatePost(ctx context.Context, actorID, topicID string, input *PostInput) (*entity.Post, error)
	GetPost(ctx context.Context, actorID, topicID, postID string) (*entity.Post, error)

	// ListPosts returns an empty list when the topic does not exist.
	ListPosts(ctx context.Context, actorID, topicID string) ([]*entity.Post, error)

	UpdatePost(ctx context.Context, actorID, topicID, postID string, input *PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, actorID, topicID, postID string) error
	Permissions(ctx context.Context, actorID, topicID, postID string) (map[entity.Permission]entity.Decision, error)
}
