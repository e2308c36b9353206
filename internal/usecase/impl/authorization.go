package impl

import (
	"context"
	"log/slog"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/access"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/lifecycle"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/pkg/errors"
)

// authorizer turns user ids into evaluator actors and decisions into errors.
type authorizer struct {
	roles  usecase.RoleResolver
	logger *slog.Logger
}

// actorFor resolves the role of userID. A failed lookup yields a pending actor.
func (a authorizer) actorFor(ctx context.Context, userID string) access.Actor {
	if userID == "" {
		return access.Anonymous()
	}

	role, err := a.roles.ResolveRole(ctx, userID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).WarnContext(ctx, "Role lookup failed, authorization pending",
			slog.String("userID", userID),
			slog.Any("error", err),
		)

		return access.PendingActor(userID)
	}

	return access.NewActor(userID, role)
}

// authorize converts a decision into nil, ErrForbidden or ErrAuthorizationPending.
func authorize(decision entity.Decision, permission entity.Permission) error {
	switch decision {
	case entity.Granted:
		return nil
	case entity.Pending:
		return errors.Wrapf(domainerrors.ErrAuthorizationPending, "permission %s", permission)
	default:
		return errors.Wrapf(domainerrors.ErrForbidden, "permission %s", permission)
	}
}

// authorizeLookup is authorize for reads by id: a denied read reports the resource as missing,
// so actors cannot tell hidden topics from absent ones.
func authorizeLookup(decision entity.Decision, missing error) error {
	if decision == entity.Denied {
		return errors.WithStack(missing)
	}

	return authorize(decision, entity.PermissionRead)
}

// eventEmitter sends topic events to the in-process notifier and the external publisher.
type eventEmitter struct {
	notifier  service.ChangeNotifier
	publisher service.EventPublisher
	logger    *slog.Logger
}

// emit never fails the calling mutation; publisher errors are only logged.
func (e eventEmitter) emit(ctx context.Context, event service.TopicEvent) {
	if event.RequestID == "" {
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if event.Origin == "" {
		event.Origin = lifecycle.InstanceID
	}

	if e.notifier != nil {
		e.notifier.Notify(ctx, event)
	}
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishTopicEvent(ctx, &event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, e.logger).ErrorContext(ctx, "Failed to publish topic event",
			slog.String("type", string(event.Type)),
			slog.String("topicID", event.TopicID),
			slog.Any("error", err),
		)
	}
}

// members lists every id that can see topic.
func members(topics ...*entity.Topic) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(id string) {
		if id == "" {
			return
		}
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, topic := range topics {
		if topic == nil {
			continue
		}
		add(topic.Owner)
		for _, id := range topic.Writers {
			add(id)
		}
		for _, id := range topic.Readers {
			add(id)
		}
	}

	return out
}
