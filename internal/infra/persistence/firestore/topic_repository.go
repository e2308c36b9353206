package firestore

import (
	"cmp"
	"context"
	"slices"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type topicRepository struct {
	client *firestore.Client
	acc    docAccessor
}

// NewTopicRepository is the constructor for the Firestore topic repository.
func NewTopicRepository(client *firestore.Client) repository.TopicRepository {
	return &topicRepository{client: client, acc: clientAccessor{}}
}

func (repo *topicRepository) ref(id string) *firestore.DocumentRef {
	return repo.client.Collection(topicsCollection).Doc(id)
}

func (repo *topicRepository) FindByID(ctx context.Context, id string) (*entity.Topic, error) {
	snap, err := repo.acc.get(ctx, repo.ref(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find topic by id")
	}

	return decodeTopic(snap)
}

// FindByIDForUpdate reads through the transaction, which locks the document until commit.
func (repo *topicRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Topic, error) {
	return repo.FindByID(ctx, id)
}

func (repo *topicRepository) FindAll(ctx context.Context) ([]*entity.Topic, error) {
	return repo.query(ctx, repo.client.Collection(topicsCollection).Query, "failed to list topics")
}

func (repo *topicRepository) FindByOwner(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.query(ctx, repo.client.Collection(topicsCollection).Where("owner", "==", userID), "failed to find topics by owner")
}

func (repo *topicRepository) FindByWriter(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.query(ctx, repo.client.Collection(topicsCollection).Where("writers", "array-contains", userID), "failed to find topics by writer")
}

func (repo *topicRepository) FindByReader(ctx context.Context, userID string) ([]*entity.Topic, error) {
	return repo.query(ctx, repo.client.Collection(topicsCollection).Where("readers", "array-contains", userID), "failed to find topics by reader")
}

// query sorts client-side so the membership filters need no composite index.
func (repo *topicRepository) query(ctx context.Context, q firestore.Query, failMsg string) ([]*entity.Topic, error) {
	snaps, err := repo.acc.getAll(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, failMsg)
	}

	topics := make([]*entity.Topic, 0, len(snaps))
	for _, snap := range snaps {
		topic, err := decodeTopic(snap)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	slices.SortFunc(topics, func(a, b *entity.Topic) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})

	return topics, nil
}

func decodeTopic(snap *firestore.DocumentSnapshot) (*entity.Topic, error) {
	var doc topicDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode topic %s", snap.Ref.ID)
	}

	return toTopicDomain(snap.Ref.ID, &doc), nil
}

func (repo *topicRepository) Create(ctx context.Context, topic *entity.Topic) error {
	stampCreate(&topic.CreatedAt, &topic.UpdatedAt)

	if err := repo.acc.create(ctx, repo.ref(topic.ID), fromTopicDomain(topic)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrDuplicateTopic
		}

		return errors.Wrap(err, "failed to create topic")
	}

	return nil
}

func (repo *topicRepository) Update(ctx context.Context, topic *entity.Topic) error {
	topic.UpdatedAt = time.Now().UTC()

	return repo.update(ctx, topic.ID, []firestore.Update{
		{Path: "name", Value: topic.Name},
		{Path: "description", Value: topic.Description},
		{Path: "category", Value: topic.Category.String()},
		{Path: "cover", Value: topic.Cover},
		{Path: "writers", Value: nonNil(topic.Writers)},
		{Path: "readers", Value: nonNil(topic.Readers)},
		{Path: "updatedAt", Value: topic.UpdatedAt},
	})
}

func (repo *topicRepository) UpdateReactions(ctx context.Context, id string, reactions entity.Reactions) error {
	return repo.update(ctx, id, []firestore.Update{
		{Path: "reactions", Value: fromReactionsDomain(reactions)},
		{Path: "updatedAt", Value: time.Now().UTC()},
	})
}

func (repo *topicRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if err := repo.acc.update(ctx, repo.ref(id), updates); err != nil {
		if isNotFound(err) {
			return repository.ErrTopicNotFound
		}

		return errors.Wrap(err, "failed to update topic")
	}

	return nil
}

func (repo *topicRepository) Delete(ctx context.Context, id string) error {
	if err := repo.acc.delete(ctx, repo.ref(id)); err != nil {
		if isNotFound(err) {
			return repository.ErrTopicNotFound
		}

		return errors.Wrap(err, "failed to delete topic")
	}

	return nil
}
