package postgres

import (
	"context"

	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
	"bookclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// postRepository implements the repository.PostRepository interface.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{
		db: db,
	}
}

// FindByID retrieves a post of a topic.
func (repo *postRepository) FindByID(ctx context.Context, topicID, postID string) (*entity.Post, error) {
	var postM model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("topic_id = ? AND id = ?", topicID, postID).
		First(&postM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByTopic returns every post of a topic ordered by creation time.
func (repo *postRepository) FindByTopic(ctx context.Context, topicID string) ([]*entity.Post, error) {
	var postModels []*model.PostModel

	if err := repo.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by topic")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for _, postM := range postModels {
		posts = append(posts, toPostDomain(postM))
	}

	return posts, nil
}

// Create persists a new post.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTopicNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	return nil
}

// Update overwrites name, description, lastModifiedBy and updatedAt.
func (repo *postRepository) Update(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	result := repo.db.WithContext(ctx).
		Model(&model.PostModel{}).
		Where("topic_id = ? AND id = ?", post.TopicID, post.ID).
		Updates(map[string]any{
			"name":             postM.Name,
			"description":      postM.Description,
			"last_modified_by": postM.LastModifiedBy,
			"updated_at":       postM.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// Delete removes a post of a topic.
func (repo *postRepository) Delete(ctx context.Context, topicID, postID string) error {
	result := repo.db.WithContext(ctx).
		Where("topic_id = ? AND id = ?", topicID, postID).
		Delete(&model.PostModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// DeleteByTopic removes every post of a topic.
func (repo *postRepository) DeleteByTopic(ctx context.Context, topicID string) error {
	if err := repo.db.WithContext(ctx).
		Where("topic_id = ?", topicID).
		Delete(&model.PostModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete posts of topic")
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	modifier := data.LastModifiedBy.Data()

	return &entity.Post{
		ID:          data.ID,
		TopicID:     data.TopicID,
		Name:        data.Name,
		Description: data.Description,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		LastModifiedBy: entity.Modifier{
			UserID:   modifier.UserID,
			UserName: modifier.UserName,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:          data.ID,
		TopicID:     data.TopicID,
		Name:        data.Name,
		Description: data.Description,
		AuthorID:    data.AuthorID,
		AuthorName:  data.AuthorName,
		LastModifiedBy: datatypes.NewJSONType(model.ModifierJSON{
			UserID:   data.LastModifiedBy.UserID,
			UserName: data.LastModifiedBy.UserName,
		}),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
