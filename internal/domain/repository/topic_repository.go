package repository

import (
	"context"

	"bookclub/internal/domain/entity"

	"github.com/pkg/errors"
)

var (
	// ErrTopicNotFound is returned when a topic is not found.
	ErrTopicNotFound = errors.New("topic not found")
	// ErrDuplicateTopic is returned when a topic id is already taken.
	ErrDuplicateTopic = errors.New("topic already exists")
)

// TopicRepository covers topic reads, the three membership queries and writes.
type TopicRepository interface {
	// FindByID retrieves a topic by id.
	FindByID(ctx context.Context, id string) (*entity.Topic, error)

	// FindByIDForUpdate retrieves a topic and locks it for the rest of the transaction.
	// Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Topic, error)

	// FindAll returns every topic.
	FindAll(ctx context.Context) ([]*entity.Topic, error)

	// FindByOwner returns topics whose owner equals userID.
	FindByOwner(ctx context.Context, userID string) ([]*entity.Topic, error)

	// FindByWriter returns topics whose writers contain userID.
	FindByWriter(ctx context.Context, userID string) ([]*entity.Topic, error)

	// FindByReader returns topics whose readers contain userID.
	FindByReader(ctx context.Context, userID string) ([]*entity.Topic, error)

	// Create persists a new topic with the id already set.
	Create(ctx context.Context, topic *entity.Topic) error

	// Update overwrites the mutable fields of a topic, membership included.
	Update(ctx context.Context, topic *entity.Topic) error

	// UpdateReactions overwrites the reaction map of a topic.
	UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) error

	// Delete removes a topic by id.
	Delete(ctx context.Context, id string) error
}
