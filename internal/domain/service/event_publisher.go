package service

import (
	"context"
	"time"
)

// TopicEventType names what happened to a topic, or to a user's view of topics.
type TopicEventType string

const (
	TopicCreated         TopicEventType = "topic.created"
	TopicUpdated         TopicEventType = "topic.updated"
	TopicDeleted         TopicEventType = "topic.deleted"
	TopicMembersChanged  TopicEventType = "topic.members_changed"
	TopicReactionToggled TopicEventType = "topic.reaction_toggled"
	PostCreated          TopicEventType = "post.created"
	PostUpdated          TopicEventType = "post.updated"
	PostDeleted          TopicEventType = "post.deleted"
	UserRoleChanged      TopicEventType = "user.role_changed"
)

// TopicEvent is emitted after every successful topic or post mutation.
// Members lists everyone who could see the topic before or after the change.
// Origin is the instance that performed the mutation.
type TopicEvent struct {
	RequestID string         `json:"request_id,omitempty"`
	Type      TopicEventType `json:"type"`
	TopicID   string         `json:"topic_id"`
	PostID    string         `json:"post_id,omitempty"`
	ActorID   string         `json:"actor_id"`
	Members   []string       `json:"members,omitempty"`
	Origin    string         `json:"origin,omitempty"`
	At        time.Time      `json:"at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTopicEvent publishes a topic event for downstream consumers
	PublishTopicEvent(ctx context.Context, event *TopicEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
