package service

import "context"

// ChangeNotifier fans topic events out to in-process subscribers.
// Callbacks of one subscriber run in emission order.
type ChangeNotifier interface {
	// Notify delivers event to every current subscriber.
	Notify(ctx context.Context, event TopicEvent)

	// Subscribe registers callback and returns an idempotent unsubscribe function.
	Subscribe(callback func(TopicEvent)) (unsubscribe func())
}
