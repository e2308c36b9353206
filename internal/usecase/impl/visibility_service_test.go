package impl

import (
	"context"
	"testing"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/service"
	mockRepo "bookclub/internal/mocks/repository"
	mockService "bookclub/internal/mocks/service"
	mockUsecase "bookclub/internal/mocks/usecase"
	"bookclub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type visibilityServiceFixtures struct {
	service   usecase.VisibilityUsecase
	topicRepo *mockRepo.MockTopicRepository
	roles     *mockUsecase.MockRoleResolver
	notifier  *mockService.MockChangeNotifier
}

func createTestVisibilityService(t *testing.T) visibilityServiceFixtures {
	topicRepo := mockRepo.NewMockTopicRepository(t)
	roles := mockUsecase.NewMockRoleResolver(t)
	notifier := mockService.NewMockChangeNotifier(t)

	return visibilityServiceFixtures{
		service: NewVisibilityService(VisibilityServiceParams{
			TopicRepo: topicRepo,
			Roles:     roles,
			Notifier:  notifier,
			Logger:    newDiscardLogger(),
		}),
		topicRepo: topicRepo,
		roles:     roles,
		notifier:  notifier,
	}
}

func ids(topics []*entity.Topic) []string {
	out := make([]string, 0, len(topics))
	for _, topic := range topics {
		out = append(out, topic.ID)
	}

	return out
}

func TestVisibilityService_VisibleTopics_Anonymous(t *testing.T) {
	fx := createTestVisibilityService(t)

	topics, err := fx.service.VisibleTopics(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, topics)
}

func TestVisibilityService_VisibleTopics_SuperAdminSeesAll(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	all := []*entity.Topic{{ID: "t1"}, {ID: "t2"}}
	fx.roles.EXPECT().ResolveRole(ctx, "root").Return(entity.RoleSuperAdmin, nil)
	fx.topicRepo.EXPECT().FindAll(ctx).Return(all, nil)

	topics, err := fx.service.VisibleTopics(ctx, "root")

	require.NoError(t, err)
	assert.Equal(t, all, topics)
}

func TestVisibilityService_VisibleTopics_MergesInOrder(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(ctx, "u1").Return(entity.RoleUser, nil)
	fx.topicRepo.EXPECT().FindByOwner(mock.Anything, "u1").Return([]*entity.Topic{{ID: "owned"}}, nil)
	fx.topicRepo.EXPECT().FindByWriter(mock.Anything, "u1").Return([]*entity.Topic{{ID: "written"}, {ID: "both"}}, nil)
	fx.topicRepo.EXPECT().FindByReader(mock.Anything, "u1").Return([]*entity.Topic{{ID: "both"}, {ID: "read"}}, nil)

	topics, err := fx.service.VisibleTopics(ctx, "u1")

	require.NoError(t, err)
	assert.Equal(t, []string{"owned", "written", "both", "read"}, ids(topics))
}

func TestVisibilityService_VisibleTopics_QueryError(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(ctx, "u1").Return(entity.RoleUser, nil)
	fx.topicRepo.EXPECT().FindByOwner(mock.Anything, "u1").Return(nil, nil).Maybe()
	fx.topicRepo.EXPECT().FindByWriter(mock.Anything, "u1").Return(nil, errors.New("boom")).Maybe()
	fx.topicRepo.EXPECT().FindByReader(mock.Anything, "u1").Return(nil, nil).Maybe()

	_, err := fx.service.VisibleTopics(ctx, "u1")

	assert.ErrorContains(t, err, "boom")
}

func TestVisibilityService_VisibleTopics_RoleError(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(ctx, "u1").Return(entity.Role(""), errors.New("unavailable"))

	_, err := fx.service.VisibleTopics(ctx, "u1")

	assert.Error(t, err)
}

func TestVisibilityService_WatchVisibleTopics(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(mock.Anything, "u1").Return(entity.RoleUser, nil)
	fx.topicRepo.EXPECT().FindByOwner(mock.Anything, "u1").Return([]*entity.Topic{{ID: "owned"}}, nil)
	fx.topicRepo.EXPECT().FindByWriter(mock.Anything, "u1").Return(nil, nil)
	fx.topicRepo.EXPECT().FindByReader(mock.Anything, "u1").Return(nil, nil)

	var callback func(service.TopicEvent)
	unsubscribed := 0
	fx.notifier.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(cb func(service.TopicEvent)) func() {
		callback = cb

		return func() { unsubscribed++ }
	})

	var deliveries [][]string
	unsubscribe, err := fx.service.WatchVisibleTopics(ctx, "u1", func(topics []*entity.Topic) {
		deliveries = append(deliveries, ids(topics))
	})
	require.NoError(t, err)
	require.NotNil(t, callback)
	assert.Equal(t, [][]string{{"owned"}}, deliveries)

	callback(service.TopicEvent{Type: service.TopicUpdated, TopicID: "other", Members: []string{"u2"}})
	assert.Len(t, deliveries, 1, "events for other users are ignored")

	callback(service.TopicEvent{Type: service.PostCreated, TopicID: "owned", Members: []string{"u1"}})
	assert.Len(t, deliveries, 1, "post events do not change visibility")

	callback(service.TopicEvent{Type: service.TopicMembersChanged, TopicID: "owned", Members: []string{"u1"}})
	assert.Len(t, deliveries, 2)

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 2, unsubscribed)
}

func TestVisibilityService_WatchVisibleTopics_CanceledContextUnsubscribes(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx, cancel := context.WithCancel(context.Background())

	fx.roles.EXPECT().ResolveRole(mock.Anything, "root").Return(entity.RoleSuperAdmin, nil)
	fx.topicRepo.EXPECT().FindAll(mock.Anything).Return(nil, nil)

	done := make(chan struct{})
	fx.notifier.EXPECT().Subscribe(mock.Anything).Return(func() { close(done) })

	_, err := fx.service.WatchVisibleTopics(ctx, "root", func([]*entity.Topic) {})
	require.NoError(t, err)

	cancel()
	<-done
}

func TestVisibilityService_WatchVisibleTopics_SubscribesBeforeSnapshot(t *testing.T) {
	fx := createTestVisibilityService(t)

	var order []string
	fx.notifier.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(func(service.TopicEvent)) func() {
		order = append(order, "subscribe")

		return func() {}
	})
	fx.roles.EXPECT().ResolveRole(mock.Anything, "root").Return(entity.RoleSuperAdmin, nil)
	fx.topicRepo.EXPECT().FindAll(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.Topic, error) {
		order = append(order, "snapshot")

		return nil, nil
	})

	_, err := fx.service.WatchVisibleTopics(context.Background(), "root", func([]*entity.Topic) {})

	require.NoError(t, err)
	assert.Equal(t, []string{"subscribe", "snapshot"}, order)
}

func TestVisibilityService_WatchVisibleTopics_SnapshotErrorUnsubscribes(t *testing.T) {
	fx := createTestVisibilityService(t)

	unsubscribed := 0
	fx.notifier.EXPECT().Subscribe(mock.Anything).Return(func() { unsubscribed++ })
	fx.roles.EXPECT().ResolveRole(mock.Anything, "u1").Return(entity.Role(""), errors.New("offline"))

	_, err := fx.service.WatchVisibleTopics(context.Background(), "u1", func([]*entity.Topic) {
		t.Fatal("no snapshot expected")
	})

	assert.Error(t, err)
	assert.Equal(t, 1, unsubscribed)
}

func TestVisibilityService_WatchVisibleTopics_PromotionWidensFeed(t *testing.T) {
	fx := createTestVisibilityService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(mock.Anything, "u1").Return(entity.RoleUser, nil).Once()
	fx.topicRepo.EXPECT().FindByOwner(mock.Anything, "u1").Return(nil, nil).Once()
	fx.topicRepo.EXPECT().FindByWriter(mock.Anything, "u1").Return(nil, nil).Once()
	fx.topicRepo.EXPECT().FindByReader(mock.Anything, "u1").Return(nil, nil).Once()

	var callback func(service.TopicEvent)
	fx.notifier.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(cb func(service.TopicEvent)) func() {
		callback = cb

		return func() {}
	})

	var deliveries [][]string
	_, err := fx.service.WatchVisibleTopics(ctx, "u1", func(topics []*entity.Topic) {
		deliveries = append(deliveries, ids(topics))
	})
	require.NoError(t, err)
	require.Equal(t, [][]string{{}}, deliveries)

	// u1 is promoted, then someone else creates a topic u1 is not a member of.
	fx.roles.EXPECT().ResolveRole(mock.Anything, "u1").Return(entity.RoleSuperAdmin, nil)
	fx.topicRepo.EXPECT().FindAll(mock.Anything).Return([]*entity.Topic{{ID: "t9"}}, nil)
	callback(service.TopicEvent{Type: service.TopicCreated, TopicID: "t9", Members: []string{"u2"}})

	assert.Equal(t, [][]string{{}, {"t9"}}, deliveries)
}
