package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// TopicInput carries the editable fields of a topic.
// On update, nil Writers or Readers leave that list unchanged.
type TopicInput struct {
	Name        string
	Description string
	Category    entity.Category
	Cover       string
	Writers     []string
	Readers     []string
}

// TopicFilter narrows ListTopics. Zero values match everything.
type TopicFilter struct {
	Name     string
	Category entity.Category
	Role     entity.TopicRelation
}

// AddMemberInput names the member to add and whether a role switch was confirmed.
type AddMemberInput struct {
	UserID  string
	Role    entity.MemberRole
	Confirm bool
}

// TopicUsecase defines topic operations. Every method authorizes actorID first.
type TopicUsecase interface {
	CreateTopic(ctx context.Context, actorID string, input *TopicInput) (*entity.Topic, error)
	GetTopic(ctx context.Context, actorID, topicID string) (*entity.Topic, error)
	UpdateTopic(ctx context.Context, actorID, topicID string, input *TopicInput) (*entity.Topic, error)
	DeleteTopic(ctx context.Context, actorID, topicID string) error
	ListTopics(ctx context.Context, actorID string, filter TopicFilter) ([]*entity.Topic, error)

	// AddMember returns ErrMembershipConfirmationRequired when the user holds the
	// opposite role and the switch was not confirmed.
	AddMember(ctx context.Context, actorID, topicID string, input *AddMemberInput) (*entity.Topic, error)
	RemoveMember(ctx context.Context, actorID, topicID, userID string, role entity.MemberRole) (*entity.Topic, error)

	ToggleReaction(ctx context.Context, actorID, topicID string, kind entity.ReactionKind) (*entity.Topic, error)
	Permissions(ctx context.Context, actorID, topicID string) (map[entity.Permission]entity.Decision, error)
	ShareCode(ctx context.Context, actorID, topicID string) ([]byte, error)
}
