package impl

import (
	"context"
	"log/slog"
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

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	topicRepo repository.TopicRepository
	postRepo  repository.PostRepository
	userRepo  repository.UserRepository
	auth      authorizer
	events    eventEmitter
	logger    *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	TopicRepo repository.TopicRepository
	PostRepo  repository.PostRepository
	UserRepo  repository.UserRepository
	Roles     usecase.RoleResolver
	Notifier  service.ChangeNotifier
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		txManager: params.TxManager,
		topicRepo: params.TopicRepo,
		postRepo:  params.PostRepo,
		userRepo:  params.UserRepo,
		auth:      authorizer{roles: params.Roles, logger: params.Logger},
		events:    eventEmitter{notifier: params.Notifier, publisher: params.Publisher, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePost adds a post to a topic the actor can write to.
func (srv *postService) CreatePost(ctx context.Context, actorID, topicID string, input *usecase.PostInput) (*entity.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}
	actor := srv.auth.actorFor(ctx, actorID)
	authorName := srv.displayName(ctx, actorID)

	var post *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topic, err := findTopic(ctx, repoFactory.TopicRepo().FindByID, topicID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionWrite), entity.PermissionWrite); err != nil {
			return err
		}

		now := time.Now().UTC()
		post = &entity.Post{
			ID:          uuid.NewString(),
			TopicID:     topicID,
			Name:        strings.TrimSpace(input.Name),
			Description: strings.TrimSpace(input.Description),
			AuthorID:    actorID,
			AuthorName:  authorName,
			LastModifiedBy: entity.Modifier{
				UserID:   actorID,
				UserName: authorName,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}

		return errors.Wrap(repoFactory.PostRepo().Create(ctx, post), "failed to create post")
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).InfoContext(ctx, "Post created",
		slog.String("topicID", topicID),
		slog.String("postID", post.ID),
	)
	srv.emit(ctx, service.PostCreated, actorID, post)

	return post, nil
}

// GetPost returns a post of a topic the actor can read.
func (srv *postService) GetPost(ctx context.Context, actorID, topicID, postID string) (*entity.Post, error) {
	topic, err := findTopic(ctx, srv.topicRepo.FindByID, topicID)
	if err != nil {
		return nil, err
	}
	actor := srv.auth.actorFor(ctx, actorID)
	if err := authorizeLookup(access.CanAccessTopic(actor, topic, entity.PermissionRead), domainerrors.ErrTopicNotFound); err != nil {
		return nil, err
	}

	post, err := srv.findPost(ctx, srv.postRepo, topicID, postID)
	if err != nil {
		return nil, err
	}
	if err := authorize(access.CanAccessPost(actor, post, topic, entity.PermissionRead), entity.PermissionRead); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPosts returns the posts of a topic oldest first.
func (srv *postService) ListPosts(ctx context.Context, actorID, topicID string) ([]*entity.Post, error) {
	topic, err := findTopic(ctx, srv.topicRepo.FindByID, topicID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrTopicNotFound) {
			return []*entity.Post{}, nil
		}

		return nil, err
	}

	actor := srv.auth.actorFor(ctx, actorID)
	if err := authorize(access.CanAccessTopic(actor, topic, entity.PermissionRead), entity.PermissionRead); err != nil {
		return nil, err
	}

	posts, err := srv.postRepo.FindByTopic(ctx, topicID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// UpdatePost lets the author change name and description.
func (srv *postService) UpdatePost(ctx context.Context, actorID, topicID, postID string, input *usecase.PostInput) (*entity.Post, error) {
	if err := validatePostInput(input); err != nil {
		return nil, err
	}
	actor := srv.auth.actorFor(ctx, actorID)
	modifierName := srv.displayName(ctx, actorID)

	var updated *entity.Post
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topic, err := findTopic(ctx, repoFactory.TopicRepo().FindByID, topicID)
		if err != nil {
			return err
		}
		postRepo := repoFactory.PostRepo()
		post, err := srv.findPost(ctx, postRepo, topicID, postID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessPost(actor, post, topic, entity.PermissionWrite), entity.PermissionWrite); err != nil {
			return err
		}

		post.Name = strings.TrimSpace(input.Name)
		post.Description = strings.TrimSpace(input.Description)
		post.LastModifiedBy = entity.Modifier{UserID: actorID, UserName: modifierName}
		post.UpdatedAt = time.Now().UTC()

		if err := postRepo.Update(ctx, post); err != nil {
			return errors.Wrap(err, "failed to update post")
		}
		updated = post

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update post")
	}

	srv.emit(ctx, service.PostUpdated, actorID, updated)

	return updated, nil
}

// DeletePost removes a post. The author may delete even after the topic is gone.
func (srv *postService) DeletePost(ctx context.Context, actorID, topicID, postID string) error {
	actor := srv.auth.actorFor(ctx, actorID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		topic, err := findTopic(ctx, repoFactory.TopicRepo().FindByID, topicID)
		if err != nil && !errors.Is(err, domainerrors.ErrTopicNotFound) {
			return err
		}
		postRepo := repoFactory.PostRepo()
		post, err := srv.findPost(ctx, postRepo, topicID, postID)
		if err != nil {
			return err
		}
		if err := authorize(access.CanAccessPost(actor, post, topic, entity.PermissionDelete), entity.PermissionDelete); err != nil {
			return err
		}

		return errors.Wrap(postRepo.Delete(ctx, topicID, postID), "failed to delete post")
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete post")
	}

	srv.log(ctx).InfoContext(ctx, "Post deleted",
		slog.String("topicID", topicID),
		slog.String("postID", postID),
	)
	srv.emit(ctx, service.PostDeleted, actorID, &entity.Post{ID: postID, TopicID: topicID})

	return nil
}

// Permissions evaluates READ, WRITE and DELETE on a post.
func (srv *postService) Permissions(ctx context.Context, actorID, topicID, postID string) (map[entity.Permission]entity.Decision, error) {
	topic, err := findTopic(ctx, srv.topicRepo.FindByID, topicID)
	if err != nil && !errors.Is(err, domainerrors.ErrTopicNotFound) {
		return nil, err
	}
	post, err := srv.findPost(ctx, srv.postRepo, topicID, postID)
	if err != nil {
		return nil, err
	}

	return access.PostPermissions(srv.auth.actorFor(ctx, actorID), post, topic), nil
}

func (srv *postService) findPost(ctx context.Context, postRepo repository.PostRepository, topicID, postID string) (*entity.Post, error) {
	post, err := postRepo.FindByID(ctx, topicID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.Wrap(domainerrors.ErrPostNotFound, postID)
		}

		return nil, errors.Wrap(err, "failed to find post")
	}

	return post, nil
}

// displayName falls back to Anonymous when the user record cannot be read.
func (srv *postService) displayName(ctx context.Context, userID string) string {
	if userID == "" {
		return entity.AnonymousAuthorName
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).WarnContext(ctx, "Failed to load author name", slog.Any("error", err))
		}

		return entity.AnonymousAuthorName
	}

	return user.DisplayName()
}

func (srv *postService) emit(ctx context.Context, eventType service.TopicEventType, actorID string, post *entity.Post) {
	srv.events.emit(ctx, service.TopicEvent{
		Type:    eventType,
		TopicID: post.TopicID,
		PostID:  post.ID,
		ActorID: actorID,
		At:      time.Now().UTC(),
	})
}

func validatePostInput(input *usecase.PostInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed, "post name is required")
	}

	return nil
}
