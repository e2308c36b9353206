package repository

import (
	"context"

	"bookclub/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPostNotFound is returned when a post is not found under the given topic.
var ErrPostNotFound = errors.New("post not found")

// PostRepository stores posts scoped under their topic.
type PostRepository interface {
	// FindByID retrieves a post of a topic.
	FindByID(ctx context.Context, topicID, postID string) (*entity.Post, error)

	// FindByTopic returns every post of a topic ordered by creation time.
	FindByTopic(ctx context.Context, topicID string) ([]*entity.Post, error)

	// Create persists a new post with the id already set.
	Create(ctx context.Context, post *entity.Post) error

	// Update overwrites name, description, lastModifiedBy and updatedAt.
	Update(ctx context.Context, post *entity.Post) error

	// Delete removes a post of a topic.
	Delete(ctx context.Context, topicID, postID string) error

	// DeleteByTopic removes every post of a topic.
	DeleteByTopic(ctx context.Context, topicID string) error
}
