package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	containerOnce sync.Once
	sharedDSN     string
	containerErr  error
)

// setupTestDB starts one PostgreSQL container per test run and migrates the schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping PostgreSQL integration test in short mode")
	}

	containerOnce.Do(func() {
		sharedDSN, containerErr = startPostgres()
	})
	if containerErr != nil {
		t.Skipf("PostgreSQL container unavailable: %v", containerErr)
	}

	db, err := gorm.Open(gormpostgres.Open(sharedDSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func startPostgres() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "bookclub",
				"POSTGRES_PASSWORD": "bookclub",
				"POSTGRES_DB":       "bookclub",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", errors.Wrap(err, "start container")
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", errors.Wrap(err, "get container host")
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", errors.Wrap(err, "get mapped port")
	}

	return fmt.Sprintf("postgres://bookclub:bookclub@%s:%s/bookclub?sslmode=disable", host, port.Port()), nil
}

func newTestTopic(owner string, writers, readers []string) *entity.Topic {
	return &entity.Topic{
		ID:        uuid.NewString(),
		Name:      "Dune",
		Category:  entity.CategoryScienceFiction,
		Owner:     owner,
		Writers:   writers,
		Readers:   readers,
		Reactions: entity.NewReactions(),
	}
}

func topicIDs(topics []*entity.Topic) []string {
	ids := make([]string, 0, len(topics))
	for _, topic := range topics {
		ids = append(ids, topic.ID)
	}

	return ids
}

func TestTopicRepository_MembershipQueries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	alice, bob, carol := uuid.NewString(), uuid.NewString(), uuid.NewString()
	owned := newTestTopic(alice, []string{bob}, []string{carol})
	shared := newTestTopic(bob, nil, []string{alice})
	require.NoError(t, repo.Create(ctx, owned))
	require.NoError(t, repo.Create(ctx, shared))

	byOwner, err := repo.FindByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{owned.ID}, topicIDs(byOwner))

	byWriter, err := repo.FindByWriter(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, []string{owned.ID}, topicIDs(byWriter))

	byReader, err := repo.FindByReader(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, []string{shared.ID}, topicIDs(byReader))

	found, err := repo.FindByID(ctx, owned.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{bob}, found.Writers)
	assert.Equal(t, []string{carol}, found.Readers)
	assert.Empty(t, shared.Writers)
	assert.Len(t, found.Reactions, len(entity.ReactionKinds))
}

func TestTopicRepository_UpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTopicRepository(db)
	ctx := context.Background()

	owner := uuid.NewString()
	topic := newTestTopic(owner, nil, nil)
	require.NoError(t, repo.Create(ctx, topic))

	createdAt := topic.UpdatedAt
	topic.Name = "Dune Messiah"
	topic.Writers = []string{"w1"}
	require.NoError(t, repo.Update(ctx, topic))
	assert.True(t, topic.UpdatedAt.After(createdAt))

	reactions := entity.NewReactions()
	reactions[entity.ReactionLove] = []string{owner}
	require.NoError(t, repo.UpdateReactions(ctx, topic.ID, reactions))

	found, err := repo.FindByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", found.Name)
	assert.Equal(t, []string{"w1"}, found.Writers)
	assert.True(t, found.Reactions.Has(entity.ReactionLove, owner))

	require.NoError(t, repo.Delete(ctx, topic.ID))
	_, err = repo.FindByID(ctx, topic.ID)
	assert.ErrorIs(t, err, repository.ErrTopicNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, topic.ID), repository.ErrTopicNotFound)
	assert.ErrorIs(t, repo.UpdateReactions(ctx, topic.ID, reactions), repository.ErrTopicNotFound)
}

func TestPostRepository_ScopedByTopic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	topicID, otherTopicID := uuid.NewString(), uuid.NewString()
	post := &entity.Post{
		ID:             uuid.NewString(),
		TopicID:        topicID,
		Name:           "Chapter one",
		AuthorID:       "author",
		AuthorName:     "Author",
		LastModifiedBy: entity.Modifier{UserID: "author", UserName: "Author"},
	}
	require.NoError(t, repo.Create(ctx, post))

	_, err := repo.FindByID(ctx, otherTopicID, post.ID)
	assert.ErrorIs(t, err, repository.ErrPostNotFound)

	post.Description = "edited"
	post.LastModifiedBy = entity.Modifier{UserID: "editor", UserName: "Editor"}
	require.NoError(t, repo.Update(ctx, post))

	found, err := repo.FindByID(ctx, topicID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Description)
	assert.Equal(t, "Editor", found.LastModifiedBy.UserName)

	require.NoError(t, repo.DeleteByTopic(ctx, topicID))
	posts, err := repo.FindByTopic(ctx, topicID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestUserRepository_SearchAndDuplicates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	suffix := uuid.NewString()[:8]
	user := &entity.User{
		ID:    uuid.NewString(),
		Email: "reader_" + suffix + "@example.com",
		Name:  "Reader " + suffix,
		Role:  entity.RoleUser,
	}
	require.NoError(t, repo.Create(ctx, user))

	dup := *user
	assert.ErrorIs(t, repo.Create(ctx, &dup), repository.ErrUserAlreadyExists)

	found, err := repo.Search(ctx, "READER_"+suffix, 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, user.ID, found[0].ID)

	none, err := repo.Search(ctx, "%", 10)
	require.NoError(t, err)
	for _, u := range none {
		assert.Contains(t, u.Email+u.Name, "%")
	}
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	topic := newTestTopic(uuid.NewString(), nil, nil)
	boom := errors.New("boom")

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.TopicRepo().Create(ctx, topic); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewTopicRepository(db).FindByID(ctx, topic.ID)
	assert.ErrorIs(t, err, repository.ErrTopicNotFound)
}

func TestTransactionManager_LockedReactionToggle(t *testing.T) {
	db := setupTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	topic := newTestTopic(uuid.NewString(), nil, nil)
	require.NoError(t, NewTopicRepository(db).Create(ctx, topic))

	const users = 8
	var wg sync.WaitGroup
	for i := range users {
		wg.Add(1)
		go func(uid string) {
			defer wg.Done()
			err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				current, err := factory.TopicRepo().FindByIDForUpdate(ctx, topic.ID)
				if err != nil {
					return err
				}
				next := current.Reactions.Clone()
				next[entity.ReactionThumbsUp] = append(next[entity.ReactionThumbsUp], uid)

				return factory.TopicRepo().UpdateReactions(ctx, topic.ID, next)
			})
			assert.NoError(t, err)
		}(fmt.Sprintf("user-%d", i))
	}
	wg.Wait()

	found, err := NewTopicRepository(db).FindByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Len(t, found.Reactions[entity.ReactionThumbsUp], users)
}
