package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// VisibilityUsecase computes the set of topics a user may see.
type VisibilityUsecase interface {
	// VisibleTopics returns every topic for a super admin, otherwise the union of owned,
	// writable and readable topics in that order without duplicates.
	VisibleTopics(ctx context.Context, userID string) ([]*entity.Topic, error)

	// WatchVisibleTopics calls fn with the current set and again after every topic change
	// that may affect it, until unsubscribe is called or ctx ends.
	WatchVisibleTopics(ctx context.Context, userID string, fn func([]*entity.Topic)) (unsubscribe func(), err error)
}
