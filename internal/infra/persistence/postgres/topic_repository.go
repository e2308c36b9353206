package postgres

import (
	"context"
	"time"

	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
	"bookclub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// topicRepository implements the repository.TopicRepository interface.
type topicRepository struct {
	db *gorm.DB
}

// NewTopicRepository is the constructor for topicRepository.
func NewTopicRepository(db *gorm.DB) repository.TopicRepository {
	return &topicRepository{
		db: db,
	}
}

// FindByID retrieves a topic by id.
func (repo *topicRepository) FindByID(ctx context.Context, id string) (*entity.Topic, error) {
	return repo.findOne(repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a topic with a row lock held until the transaction ends.
func (repo *topicRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Topic, error) {
	return repo.findOne(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (repo *topicRepository) findOne(db *gorm.DB, id string) (*entity.Topic, error) {
	var topicM model.TopicModel

	if err := db.Where("id = ?", id).First(&topicM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find topic by id")
	}

	return toTopicDomain(&topicM), nil
}

// FindAll returns every topic.
func (repo *topicRepository) FindAll(ctx context.Context) ([]*entity.Topic, error) {
	return repo.findMany(repo.db.WithContext(ctx), "failed to list topics")
}

// FindByOwner returns topics owned by userID.
func (repo *topicRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.findMany(repo.db.WithContext(ctx).Where("owner = ?", userID), "failed to find topics by owner")
}

// FindByWriter returns topics whose writers array contains userID.
func (repo *topicRepository) FindByWriter(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.findMany(
		repo.db.WithContext(ctx).Where(datatypes.JSONArrayQuery("writers").Contains(userID)),
		"failed to find topics by writer",
	)
}

// FindByReader returns topics whose readers array contains userID.
func (repo *topicRepository) FindByReader(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.findMany(
		repo.db.WithContext(ctx).Where(datatypes.JSONArrayQuery("readers").Contains(userID)),
		"failed to find topics by reader",
	)
}

func (repo *topicRepository) findMany(db *gorm.DB, failMsg string) ([]*entity.Topic, error) {
	var topicModels []*model.TopicModel

	if err := db.Order("created_at ASC").Find(&topicModels).Error; err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	topics := make([]*entity.Topic, 0, len(topicModels))
	for _, topicM := range topicModels {
		topics = append(topics, toTopicDomain(topicM))
	}

	return topics, nil
}

// Create persists a new topic.
func (repo *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	topicM := fromTopicDomain(topic)

	if err := repo.db.WithContext(ctx).Create(topicM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTopic
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required topic information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create topic")
	}

	topic.CreatedAt = topicM.CreatedAt
	topic.UpdatedAt = topicM.UpdatedAt

	return nil
}

// Update overwrites the mutable fields of a topic, membership included, and refreshes topic.UpdatedAt.
func (repo *topicRepository) Update(ctx context.Context, topic *entity.Topic) error {
	topicM := fromTopicDomain(topic)
	now := time.Now().UTC()

	result := repo.db.WithContext(ctx).
		Model(&model.TopicModel{}).
		Where("id = ?", topic.ID).
		Updates(map[string]any{
			"name":        topicM.Name,
			"description": topicM.Description,
			"category":    topicM.Category,
			"cover":       topicM.Cover,
			"writers":     topicM.Writers,
			"readers":     topicM.Readers,
			"updated_at":  now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update topic")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTopicNotFound
	}
	topic.UpdatedAt = now

	return nil
}

// UpdateReactions overwrites the reaction map of a topic.
func (repo *topicRepository) UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TopicModel{}).
		Where("id = ?", id).
		Update("reactions", datatypes.NewJSONType(fromReactionsDomain(reactions)))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update reactions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTopicNotFound
	}

	return nil
}

// Delete removes a topic by id.
func (repo *topicRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TopicModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete topic")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTopicNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toTopicDomain(data *model.TopicModel) *entity.Topic {
	if data == nil {
		return nil
	}

	return &entity.Topic{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    entity.Category(data.Category),
		Cover:       data.Cover,
		Owner:       data.Owner,
		Writers:     nonNil([]string(data.Writers)),
		Readers:     nonNil([]string(data.Readers)),
		Reactions:   toReactionsDomain(data.Reactions.Data()),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTopicDomain(data *entity.Topic) *model.TopicModel {
	if data == nil {
		return nil
	}

	return &model.TopicModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category.String(),
		Cover:       data.Cover,
		Owner:       data.Owner,
		Writers:     datatypes.NewJSONSlice(nonNil(data.Writers)),
		Readers:     datatypes.NewJSONSlice(nonNil(data.Readers)),
		Reactions:   datatypes.NewJSONType(fromReactionsDomain(data.Reactions)),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toReactionsDomain(raw map[string][]string) entity.Reactions {
	reactions := entity.NewReactions()
	for kind, users := range raw {
		reactions[entity.ReactionKind(kind)] = nonNil(users)
	}

	return reactions
}

func fromReactionsDomain(reactions entity.Reactions) map[string][]string {
	raw := make(map[string][]string, len(reactions))
	for kind, users := range reactions {
		raw[kind.String()] = nonNil(users)
	}

	return raw
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
