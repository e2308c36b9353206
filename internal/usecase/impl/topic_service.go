package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "bookclub/internal/delivery/context"
	"bookclub/internal/domain/access"
	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
	"bookclub/internal/domain/service"
	"bookclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// topicService implements the TopicUsecase interface.
type topicService struct {
	txManager  repository.TransactionManager
	topicRepo  repository.TopicRepository
	visibility usecase.VisibilityUsecase
	qrcode     service.QRCodeService
	auth       authorizer
	events     eventEmitter
	logger     *slog.Logger
}

// TopicServiceParams holds dependencies for TopicService, injected by Fx.
type TopicServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TopicRepo  repository.TopicRepository
	Roles      usecase.RoleResolver
	Visibility usecase.VisibilityUsecase
	QRCode     service.QRCodeService
	Notifier   service.ChangeNotifier
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewTopicService is the constructor for topicService.
func NewTopicService(params TopicServiceParams) usecase.TopicUsecase {
	return &topicService{
		txManager:  params.TxManager,
		topicRepo:  params.TopicRepo,
		visibility: params.Visibility,
		qrcode:     params.QRCode,
		auth:       authorizer{roles: params.Roles, logger: params.Logger},
		events:     eventEmitter{notifier: params.Notifier, publisher: params.Publisher, logger: params.Logger},
		logger:     params.Logger,
	}
}

func (srv *topicService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTopic stores a new topic owned by actorID.
func (srv *topicService) CreateTopic(ctx context.Context, actorID string, input *usecase.TopicInput) (*entity.Topic, error) {
	if actorID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if err := validateTopicInput(input); err != nil {
		return nil, err
	}

	writers, readers := access.NormalizeMembers(actorID, input.Writers, input.Readers)
	topic := &entity.Topic{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Cover:       strings.TrimSpace(input.Cover),
		Owner:       actorID,
		Writers:     writers,
		Readers:     readers,
		Reactions:   entity.NewReactions(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return errors.Wrap(repoFactory.TopicRepo().Create(ctx, topic), "failed to create topic")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create topic")
	}

	srv.log(ctx).InfoContext(ctx, "Topic created",
		slog.String("topicID", topic.ID),
		slog.String("owner", actorID),
	)
	srv.emit(ctx, service.TopicCreated, actorID, topic)

	return topic, nil
}

// GetTopic returns a topic the actor can read.
func (srv *topicService) GetTopic(ctx context.Context, actorID, topicID string) (*entity.Topic, error) {
	topic, err := findTopic(ctx, srv.topicRepo.FindByID, topicID)
	if err != nil {
		return nil, err
	}
	actor := srv.auth.actorFor(ctx, actorID)
	if err := authorizeLookup(access.CanAccessTopic(actor, topic, entity.PermissionRead), domainerrors.ErrTopicNotFound); err != nil {
		return nil, err
	}

	return topic, nil
}

// UpdateTopic overwrites the editable fields. Nil member lists are kept.
func (srv *topicService) UpdateTopic(ctx context.Context, actorID, topicID string, input *usecase.TopicInput) (*entity.Topic, error) {
	if err := validateTopicInput(input); err != nil {
		return nil, err
	}
	actor := srv.auth.actorFor(ctx, actorID)

	var before, after *entity.Topic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.TopicRepo()

		topic, err := findTopic(ctx, topicRepo.FindByIDForUpdate, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionWrite), entity.PermissionWrite); err != nil {
			return err
		}
		before = topic.Clone()

		topic.Name = strings.TrimSpace(input.Name)
		topic.Description = strings.TrimSpace(input.Description)
		topic.Category = input.Category
		topic.Cover = strings.TrimSpace(input.Cover)

		writers, readers := topic.Writers, topic.Readers
		if input.Writers != nil {
			writers = input.Writers
		}
		if input.Readers != nil {
			readers = input.Readers
		}
		topic.Writers, topic.Readers = access.NormalizeMembers(topic.Owner, writers, readers)

		if err := topicRepo.Update(ctx, topic); err != nil {
			return errors.Wrap(err, "failed to update topic")
		}
		after = topic

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update topic")
	}

	srv.emit(ctx, service.TopicUpdated, actorID, before, after)

	return after, nil
}

// DeleteTopic removes a topic and every post in it.
func (srv *topicService) DeleteTopic(ctx context.Context, actorID, topicID string) error {
	actor := srv.auth.actorFor(ctx, actorID)

	var deleted *entity.Topic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.TopicRepo()

		topic, err := findTopic(ctx, topicRepo.FindByIDForUpdate, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionFull), entity.PermissionFull); err != nil {
			return err
		}

		if err := repoFactory.PostRepo().DeleteByTopic(ctx, topicID); err != nil {
			return errors.Wrap(err, "failed to delete topic posts")
		}
		if err := topicRepo.Delete(ctx, topicID); err != nil {
			return errors.Wrap(err, "failed to delete topic")
		}
		deleted = topic

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete topic")
	}

	srv.log(ctx).InfoContext(ctx, "Topic deleted", slog.String("topicID", topicID))
	srv.emit(ctx, service.TopicDeleted, actorID, deleted)

	return nil
}

// ListTopics filters the actor's visible topics and sorts them by name.
func (srv *topicService) ListTopics(ctx context.Context, actorID string, filter usecase.TopicFilter) ([]*entity.Topic, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", filter.Category)
	}
	if filter.Role != "" && !filter.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown role %q", filter.Role)
	}

	visible, err := srv.visibility.VisibleTopics(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}

	name := strings.ToLower(strings.TrimSpace(filter.Name))
	topics := make([]*entity.Topic, 0, len(visible))
	for _, topic := range visible {
		if name != "" && !strings.Contains(strings.ToLower(topic.Name), name) {
			continue
		}
		if filter.Category != "" && topic.Category != filter.Category {
			continue
		}
		if filter.Role != "" {
			if relation, ok := topic.MemberRoleOf(actorID); !ok || relation != filter.Role {
				continue
			}
		}
		topics = append(topics, topic)
	}

	slices.SortStableFunc(topics, func(a, b *entity.Topic) int {
		return cmp.Or(
			cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			cmp.Compare(a.ID, b.ID),
		)
	})

	return topics, nil
}

// AddMember places a user in the writer or reader list.
func (srv *topicService) AddMember(ctx context.Context, actorID, topicID string, input *usecase.AddMemberInput) (*entity.Topic, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "member user id is required")
	}
	if !input.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid member role %q", input.Role)
	}
	actor := srv.auth.actorFor(ctx, actorID)

	var before, after *entity.Topic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.TopicRepo()

		topic, err := findTopic(ctx, topicRepo.FindByIDForUpdate, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionWrite), entity.PermissionWrite); err != nil {
			return err
		}
		if topic.IsOwner(input.UserID) {
			return errors.WithStack(domainerrors.ErrInvalidMember)
		}
		if _, err := repoFactory.UserRepo().FindByID(ctx, input.UserID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "member not found")
			}

			return errors.Wrap(err, "failed to find member")
		}

		result, err := access.AddMember(input.UserID, input.Role, topic.Readers, topic.Writers, input.Confirm)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}
		if result.NeedsConfirmation {
			return errors.WithStack(domainerrors.ErrMembershipConfirmationRequired.WithDetails(
				"user is already a " + string(input.Role.Opposite()),
			))
		}

		before = topic.Clone()
		topic.Readers, topic.Writers = result.Readers, result.Writers
		after = topic
		if !result.Changed {
			before = nil

			return nil
		}

		return errors.Wrap(topicRepo.Update(ctx, topic), "failed to save members")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add member")
	}

	if before != nil {
		srv.emit(ctx, service.TopicMembersChanged, actorID, before, after)
	}

	return after, nil
}

// RemoveMember drops a user from the writer or reader list. Absent users are a no-op.
func (srv *topicService) RemoveMember(ctx context.Context, actorID, topicID, userID string, role entity.MemberRole) (*entity.Topic, error) {
	if !role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid member role %q", role)
	}
	actor := srv.auth.actorFor(ctx, actorID)

	var before, after *entity.Topic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.TopicRepo()

		topic, err := findTopic(ctx, topicRepo.FindByIDForUpdate, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionWrite), entity.PermissionWrite); err != nil {
			return err
		}

		result, err := access.RemoveMember(userID, role, topic.Readers, topic.Writers)
		if err != nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
		}

		before = topic.Clone()
		topic.Readers, topic.Writers = result.Readers, result.Writers
		after = topic
		if !result.Changed {
			before = nil

			return nil
		}

		return errors.Wrap(topicRepo.Update(ctx, topic), "failed to save members")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove member")
	}

	if before != nil {
		srv.emit(ctx, service.TopicMembersChanged, actorID, before, after)
	}

	return after, nil
}

// ToggleReaction flips the actor's reaction under the topic's row lock.
func (srv *topicService) ToggleReaction(ctx context.Context, actorID, topicID string, kind entity.ReactionKind) (*entity.Topic, error) {
	if !kind.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown reaction %q", kind)
	}
	actor := srv.auth.actorFor(ctx, actorID)

	var updated *entity.Topic
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topicRepo := repoFactory.TopicRepo()

		topic, err := findTopic(ctx, topicRepo.FindByIDForUpdate, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionRead), entity.PermissionRead); err != nil {
			return err
		}

		next := access.ToggleReaction(topic.Reactions, kind, actorID)
		if err := topicRepo.UpdateReactions(ctx, topicID, next); err != nil {
			return errors.Wrap(err, "failed to save reactions")
		}
		topic.Reactions = next
		updated = topic

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle reaction")
	}

	srv.emit(ctx, service.TopicReactionToggled, actorID, updated)

	return updated, nil
}

// Permissions evaluates READ, WRITE and FULL for the actor.
func (srv *topicService) Permissions(ctx context.Context, actorID, topicID string) (map[entity.Permission]entity.Decision, error) {
	topic, err := findTopic(ctx, srv.topicRepo.FindByID, topicID)
	if err != nil {
		return nil, err
	}

	return access.TopicPermissions(srv.auth.actorFor(ctx, actorID), topic), nil
}

// ShareCode renders the topic's QR code.
func (srv *topicService) ShareCode(ctx context.Context, actorID, topicID string) ([]byte, error) {
	topic, err := srv.GetTopic(ctx, actorID, topicID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateTopicQR(topic.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share code")
	}

	return png, nil
}

func (srv *topicService) emit(ctx context.Context, eventType service.TopicEventType, actorID string, topics ...*entity.Topic) {
	topicID := ""
	for _, topic := range topics {
		if topic != nil {
			topicID = topic.ID

			break
		}
	}

	srv.events.emit(ctx, service.TopicEvent{
		Type:    eventType,
		TopicID: topicID,
		ActorID: actorID,
		Members: members(topics...),
		At:      time.Now().UTC(),
	})
}

// findTopic maps the repository miss to the domain error.
func findTopic(ctx context.Context, find func(context.Context, string) (*entity.Topic, error), topicID string) (*entity.Topic, error) {
	if topicID == "" {
		return nil, errors.Wrap(domainerrors.ErrTopicNotFound, "empty topic id")
	}

	topic, err := find(ctx, topicID)
	if err != nil {
		if errors.Is(err, repository.ErrTopicNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTopicNotFound, topicID)
		}

		return nil, errors.Wrap(err, "failed to find topic")
	}

	return topic, nil
}

func validateTopicInput(input *usecase.TopicInput) error {
	if input == nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "missing topic input")
	}
	if strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "topic name is required")
	}
	if !input.Category.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown category %q", input.Category)
	}

	return nil
}
