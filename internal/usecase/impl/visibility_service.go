package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/access"
	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// visibilityService implements the VisibilityUsecase interface.
type visibilityService struct {
	topicRepo repository.TopicRepository
	roles     usecase.RoleResolver
	notifier  service.ChangeNotifier
	logger    *slog.Logger
}

// VisibilityServiceParams holds dependencies for VisibilityService, injected by Fx.
type VisibilityServiceParams struct {
	fx.In

	TopicRepo repository.TopicRepository
	Roles     usecase.RoleResolver
	Notifier  service.ChangeNotifier
	Logger    *slog.Logger
}

// NewVisibilityService is the constructor for visibilityService.
func NewVisibilityService(params VisibilityServiceParams) usecase.VisibilityUsecase {
	return &visibilityService{
		topicRepo: params.TopicRepo,
		roles:     params.Roles,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

func (srv *visibilityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VisibleTopics runs the owner, writer and reader queries concurrently and merges them.
func (srv *visibilityService) VisibleTopics(ctx context.Context, userID string) ([]*entity.Topic, error) {
	if userID == "" {
		return []*entity.Topic{}, nil
	}

	role, err := srv.roles.ResolveRole(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve role")
	}
	if role == entity.RoleSuperAdmin {
		topics, err := srv.topicRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list all topics")
		}

		return topics, nil
	}

	var owned, writable, readable []*entity.Topic
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		owned, err = srv.topicRepo.FindByOwner(groupCtx, userID)

		return errors.Wrap(err, "owner query")
	})
	group.Go(func() error {
		var err error
		writable, err = srv.topicRepo.FindByWriter(groupCtx, userID)

		return errors.Wrap(err, "writer query")
	})
	group.Go(func() error {
		var err error
		readable, err = srv.topicRepo.FindByReader(groupCtx, userID)

		return errors.Wrap(err, "reader query")
	})
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "failed to aggregate visible topics")
	}

	return access.MergeVisible(owned, writable, readable), nil
}

// WatchVisibleTopics pushes a recomputed set after each relevant topic event. The subscription is
// registered before the first snapshot is read, so no event between the two is missed.
func (srv *visibilityService) WatchVisibleTopics(ctx context.Context, userID string, fn func([]*entity.Topic)) (func(), error) {
	// mu orders deliveries: a refresh waits for the first snapshot.
	var mu sync.Mutex
	mu.Lock()

	unsubscribe := srv.notifier.Subscribe(func(event service.TopicEvent) {
		if ctx.Err() != nil || !srv.affects(ctx, event, userID) {
			return
		}

		mu.Lock()
		defer mu.Unlock()

		topics, err := srv.VisibleTopics(ctx, userID)
		if err != nil {
			srv.log(ctx).WarnContext(ctx, "Failed to refresh visible topics",
				slog.String("userID", userID),
				slog.Any("error", err),
			)

			return
		}
		fn(topics)
	})

	topics, err := srv.VisibleTopics(ctx, userID)
	if err != nil {
		mu.Unlock()
		unsubscribe()

		return nil, err
	}
	fn(topics)
	mu.Unlock()

	stop := context.AfterFunc(ctx, unsubscribe)

	return func() {
		stop()
		unsubscribe()
	}, nil
}

// affects reports whether event can change what userID sees. The role is read per event so a
// promotion to super admin takes effect on a running subscription.
func (srv *visibilityService) affects(ctx context.Context, event service.TopicEvent, userID string) bool {
	if userID == "" || strings.HasPrefix(string(event.Type), "post.") {
		return false
	}
	if slices.Contains(event.Members, userID) {
		return true
	}

	role, err := srv.roles.ResolveRole(ctx, userID)

	return err == nil && role == entity.RoleSuperAdmin
}
