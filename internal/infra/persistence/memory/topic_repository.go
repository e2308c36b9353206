package memory

import (
	"cmp"
	"context"
	"slices"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
)

type topicRepository struct {
	store *Store
	inTx  bool
}

// NewTopicRepository is the constructor for the in-memory topic repository.
func NewTopicRepository(store *Store) repository.TopicRepository {
	return &topicRepository{store: store}
}

func (repo *topicRepository) FindByID(ctx context.Context, id string) (*entity.Topic, error) {
	var found *entity.Topic
	err := repo.store.read(func(st *state) error {
		topic, ok := st.topics[id]
		if !ok {
			return repository.ErrTopicNotFound
		}
		found = topic.Clone()

		return nil
	})

	return found, err
}

// FindByIDForUpdate needs no row lock: transactions already hold the writer lock.
func (repo *topicRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Topic, error) {
	return repo.FindByID(ctx, id)
}

func (repo *topicRepository) FindAll(ctx context.Context) ([]*entity.Topic, error) {
	return repo.filter(func(*entity.Topic) bool { return true })
}

func (repo *topicRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.filter(func(t *entity.Topic) bool { return t.Owner == userID })
}

func (repo *topicRepository) FindByWriter(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.filter(func(t *entity.Topic) bool { return slices.Contains(t.Writers, userID) })
}

func (repo *topicRepository) FindByReader(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.filter(func(t *entity.Topic) bool { return slices.Contains(t.Readers, userID) })
}

func (repo *topicRepository) filter(keep func(*entity.Topic) bool) ([]*entity.Topic, error) {
	topics := []*entity.Topic{}
	err := repo.store.read(func(st *state) error {
		for _, topic := range st.topics {
			if keep(topic) {
				topics = append(topics, topic.Clone())
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(topics, func(a, b *entity.Topic) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return topics, nil
}

func (repo *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		if _, exists := st.topics[topic.ID]; exists {
			return repository.ErrDuplicateTopic
		}
		now := repo.store.now()
		if topic.CreatedAt.IsZero() {
			topic.CreatedAt = now
		}
		if topic.UpdatedAt.IsZero() {
			topic.UpdatedAt = now
		}
		stored := topic.Clone()
		if stored.Reactions == nil {
			stored.Reactions = entity.NewReactions()
		}
		st.topics[topic.ID] = stored

		return nil
	})
}

func (repo *topicRepository) Update(ctx context.Context, topic *entity.Topic) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		existing, ok := st.topics[topic.ID]
		if !ok {
			return repository.ErrTopicNotFound
		}
		updated := existing.Clone()
		updated.Name = topic.Name
		updated.Description = topic.Description
		updated.Category = topic.Category
		updated.Cover = topic.Cover
		updated.Writers = slices.Clone(topic.Writers)
		updated.Readers = slices.Clone(topic.Readers)
		updated.UpdatedAt = repo.store.now()
		st.topics[topic.ID] = updated
		topic.UpdatedAt = updated.UpdatedAt

		return nil
	})
}

func (repo *topicRepository) UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		existing, ok := st.topics[id]
		if !ok {
			return repository.ErrTopicNotFound
		}
		updated := existing.Clone()
		updated.Reactions = reactions.Clone()
		updated.UpdatedAt = repo.store.now()
		st.topics[id] = updated

		return nil
	})
}

func (repo *topicRepository) Delete(ctx context.Context, id string) error {
	return repo.store.write(repo.inTx, func(st *state) error {
		if _, ok := st.topics[id]; !ok {
			return repository.ErrTopicNotFound
		}
		delete(st.topics, id)

		return nil
	})
}
