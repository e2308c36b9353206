package impl

import (
	"context"
	"testing"

	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/repository"
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

// topicServiceFixtures holds all test dependencies for topic service tests.
type topicServiceFixtures struct {
	service    usecase.TopicUsecase
	txManager  *mockRepo.MockTransactionManager
	topicRepo  *mockRepo.MockTopicRepository
	roles      *mockUsecase.MockRoleResolver
	visibility *mockUsecase.MockVisibilityUsecase
	qrcode     *mockService.MockQRCodeService
	notifier   *mockService.MockChangeNotifier
	publisher  *mockService.MockEventPublisher
}

func createTestTopicService(t *testing.T) topicServiceFixtures {
	fx := topicServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		topicRepo:  mockRepo.NewMockTopicRepository(t),
		roles:      mockUsecase.NewMockRoleResolver(t),
		visibility: mockUsecase.NewMockVisibilityUsecase(t),
		qrcode:     mockService.NewMockQRCodeService(t),
		notifier:   mockService.NewMockChangeNotifier(t),
		publisher:  mockService.NewMockEventPublisher(t),
	}
	fx.service = NewTopicService(TopicServiceParams{
		TxManager:  fx.txManager,
		TopicRepo:  fx.topicRepo,
		Roles:      fx.roles,
		Visibility: fx.visibility,
		QRCode:     fx.qrcode,
		Notifier:   fx.notifier,
		Publisher:  fx.publisher,
		Logger:     newDiscardLogger(),
	})

	return fx
}

// expectEvent asserts that exactly one event of eventType is emitted on both channels.
func (fx topicServiceFixtures) expectEvent(eventType service.TopicEventType) {
	fx.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(e service.TopicEvent) bool {
		return e.Type == eventType
	})).Once()
	fx.publisher.EXPECT().PublishTopicEvent(mock.Anything, mock.MatchedBy(func(e *service.TopicEvent) bool {
		return e.Type == eventType
	})).Return(nil).Once()
}

func (fx topicServiceFixtures) asUser(userID string) {
	fx.roles.EXPECT().ResolveRole(mock.Anything, userID).Return(entity.RoleUser, nil)
}

func sampleTopic() *entity.Topic {
	return &entity.Topic{
		ID:        "t1",
		Name:      "Dune",
		Category:  entity.CategoryScienceFiction,
		Owner:     "owner",
		Writers:   []string{"writer"},
		Readers:   []string{"reader"},
		Reactions: entity.NewReactions(),
	}
}

func TestTopicService_CreateTopic(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()

	var created *entity.Topic
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Topic")).
			Run(func(_ context.Context, topic *entity.Topic) { created = topic }).
			Return(nil)
	})
	fx.expectEvent(service.TopicCreated)

	topic, err := fx.service.CreateTopic(ctx, "owner", &usecase.TopicInput{
		Name:     " Dune ",
		Category: entity.CategoryScienceFiction,
		Writers:  []string{"owner", "w1", "both"},
		Readers:  []string{"both", "r1", "r1"},
	})

	require.NoError(t, err)
	assert.Same(t, created, topic)
	assert.NotEmpty(t, topic.ID)
	assert.Equal(t, "Dune", topic.Name)
	assert.Equal(t, "owner", topic.Owner)
	assert.Equal(t, []string{"w1", "both"}, topic.Writers)
	assert.Equal(t, []string{"r1"}, topic.Readers)
	assert.Len(t, topic.Reactions, len(entity.ReactionKinds))
}

func TestTopicService_CreateTopic_Validation(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()

	_, err := fx.service.CreateTopic(ctx, "", &usecase.TopicInput{Name: "x", Category: entity.CategoryHorror})
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	_, err = fx.service.CreateTopic(ctx, "owner", &usecase.TopicInput{Name: "  ", Category: entity.CategoryHorror})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.CreateTopic(ctx, "owner", &usecase.TopicInput{Name: "x", Category: "Cooking"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTopicService_GetTopic(t *testing.T) {
	tests := []struct {
		name    string
		actor   string
		setup   func(fx topicServiceFixtures)
		wantErr error
	}{
		{
			name:  "reader can read",
			actor: "reader",
			setup: func(fx topicServiceFixtures) { fx.asUser("reader") },
		},
		{
			name:    "stranger sees not found",
			actor:   "stranger",
			setup:   func(fx topicServiceFixtures) { fx.asUser("stranger") },
			wantErr: domainerrors.ErrTopicNotFound,
		},
		{
			name:    "anonymous sees not found",
			actor:   "",
			wantErr: domainerrors.ErrTopicNotFound,
		},
		{
			name:  "unresolved role is pending",
			actor: "reader",
			setup: func(fx topicServiceFixtures) {
				fx.roles.EXPECT().ResolveRole(mock.Anything, "reader").Return(entity.Role(""), errors.New("offline"))
			},
			wantErr: domainerrors.ErrAuthorizationPending,
		},
		{
			name:  "super admin reads anything",
			actor: "root",
			setup: func(fx topicServiceFixtures) {
				fx.roles.EXPECT().ResolveRole(mock.Anything, "root").Return(entity.RoleSuperAdmin, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTopicService(t)
			fx.topicRepo.EXPECT().FindByID(mock.Anything, "t1").Return(sampleTopic(), nil)
			if tt.setup != nil {
				tt.setup(fx)
			}

			topic, err := fx.service.GetTopic(context.Background(), tt.actor, "t1")
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t1", topic.ID)
		})
	}
}

func TestTopicService_GetTopic_NotFound(t *testing.T) {
	fx := createTestTopicService(t)
	fx.topicRepo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, repository.ErrTopicNotFound)

	_, err := fx.service.GetTopic(context.Background(), "u1", "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrTopicNotFound))
}

func TestTopicService_UpdateTopic_WriterKeepsOwner(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("writer")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txTopics.EXPECT().Update(ctx, mock.MatchedBy(func(topic *entity.Topic) bool {
			return topic.Owner == "owner" && topic.Name == "Dune Messiah"
		})).Return(nil)
	})
	fx.expectEvent(service.TopicUpdated)

	topic, err := fx.service.UpdateTopic(ctx, "writer", "t1", &usecase.TopicInput{
		Name:     "Dune Messiah",
		Category: entity.CategoryScienceFiction,
		Readers:  []string{"reader", "new-reader"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"writer"}, topic.Writers, "nil writers are kept")
	assert.Equal(t, []string{"reader", "new-reader"}, topic.Readers)
}

func TestTopicService_UpdateTopic_ReaderForbidden(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("reader")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
	})

	_, err := fx.service.UpdateTopic(ctx, "reader", "t1", &usecase.TopicInput{Name: "x", Category: entity.CategoryHorror})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTopicService_DeleteTopic(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("owner")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		txPosts := mockRepo.NewMockPostRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		factory.EXPECT().PostRepo().Return(txPosts)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txPosts.EXPECT().DeleteByTopic(ctx, "t1").Return(nil)
		txTopics.EXPECT().Delete(ctx, "t1").Return(nil)
	})
	fx.expectEvent(service.TopicDeleted)

	require.NoError(t, fx.service.DeleteTopic(ctx, "owner", "t1"))
}

func TestTopicService_DeleteTopic_WriterForbidden(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("writer")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
	})

	err := fx.service.DeleteTopic(ctx, "writer", "t1")

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTopicService_ListTopics_FiltersAndSorts(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()

	visible := []*entity.Topic{
		{ID: "3", Name: "zen poems", Category: entity.CategoryPoetry, Owner: "u1"},
		{ID: "1", Name: "Alien", Category: entity.CategoryHorror, Owner: "other", Writers: []string{"u1"}},
		{ID: "2", Name: "alchemy", Category: entity.CategoryFantasy, Owner: "other", Readers: []string{"u1"}},
	}
	fx.visibility.EXPECT().VisibleTopics(ctx, "u1").Return(visible, nil)

	all, err := fx.service.ListTopics(ctx, "u1", usecase.TopicFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1", "3"}, ids(all))

	byName, err := fx.service.ListTopics(ctx, "u1", usecase.TopicFilter{Name: "AL"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(byName))

	byCategory, err := fx.service.ListTopics(ctx, "u1", usecase.TopicFilter{Category: entity.CategoryPoetry})
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, ids(byCategory))

	byRole, err := fx.service.ListTopics(ctx, "u1", usecase.TopicFilter{Role: entity.RelationReader})
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, ids(byRole))
}

func TestTopicService_ListTopics_InvalidFilter(t *testing.T) {
	fx := createTestTopicService(t)

	_, err := fx.service.ListTopics(context.Background(), "u1", usecase.TopicFilter{Role: "admin"})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTopicService_AddMember(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("owner")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		factory.EXPECT().UserRepo().Return(txUsers)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txUsers.EXPECT().FindByID(ctx, "newbie").Return(&entity.User{ID: "newbie"}, nil)
		txTopics.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Topic")).Return(nil)
	})
	fx.expectEvent(service.TopicMembersChanged)

	topic, err := fx.service.AddMember(ctx, "owner", "t1", &usecase.AddMemberInput{UserID: "newbie", Role: entity.MemberWriter})

	require.NoError(t, err)
	assert.Equal(t, []string{"writer", "newbie"}, topic.Writers)
}

func TestTopicService_AddMember_NeedsConfirmation(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("owner")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		factory.EXPECT().UserRepo().Return(txUsers)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txUsers.EXPECT().FindByID(ctx, "reader").Return(&entity.User{ID: "reader"}, nil)
	})

	_, err := fx.service.AddMember(ctx, "owner", "t1", &usecase.AddMemberInput{UserID: "reader", Role: entity.MemberWriter})

	assert.True(t, errors.Is(err, domainerrors.ErrMembershipConfirmationRequired))
}

func TestTopicService_AddMember_ConfirmedSwitch(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("writer")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		factory.EXPECT().UserRepo().Return(txUsers)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txUsers.EXPECT().FindByID(ctx, "reader").Return(&entity.User{ID: "reader"}, nil)
		txTopics.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Topic")).Return(nil)
	})
	fx.expectEvent(service.TopicMembersChanged)

	topic, err := fx.service.AddMember(ctx, "writer", "t1", &usecase.AddMemberInput{UserID: "reader", Role: entity.MemberWriter, Confirm: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"writer", "reader"}, topic.Writers)
	assert.Empty(t, topic.Readers)
}

func TestTopicService_AddMember_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("owner cannot be a member", func(t *testing.T) {
		fx := createTestTopicService(t)
		fx.asUser("owner")
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txTopics := mockRepo.NewMockTopicRepository(t)
			factory.EXPECT().TopicRepo().Return(txTopics)
			txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		})

		_, err := fx.service.AddMember(ctx, "owner", "t1", &usecase.AddMemberInput{UserID: "owner", Role: entity.MemberReader})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidMember))
	})

	t.Run("unknown candidate", func(t *testing.T) {
		fx := createTestTopicService(t)
		fx.asUser("owner")
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txTopics := mockRepo.NewMockTopicRepository(t)
			txUsers := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().TopicRepo().Return(txTopics)
			factory.EXPECT().UserRepo().Return(txUsers)
			txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
			txUsers.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)
		})

		_, err := fx.service.AddMember(ctx, "owner", "t1", &usecase.AddMemberInput{UserID: "ghost", Role: entity.MemberReader})

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("reader cannot add", func(t *testing.T) {
		fx := createTestTopicService(t)
		fx.asUser("reader")
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txTopics := mockRepo.NewMockTopicRepository(t)
			factory.EXPECT().TopicRepo().Return(txTopics)
			txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		})

		_, err := fx.service.AddMember(ctx, "reader", "t1", &usecase.AddMemberInput{UserID: "x", Role: entity.MemberReader})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("invalid role", func(t *testing.T) {
		fx := createTestTopicService(t)

		_, err := fx.service.AddMember(ctx, "owner", "t1", &usecase.AddMemberInput{UserID: "x", Role: "owner"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestTopicService_RemoveMember_AbsentIsNoop(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("owner")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
	})

	topic, err := fx.service.RemoveMember(ctx, "owner", "t1", "nobody", entity.MemberReader)

	require.NoError(t, err)
	assert.Equal(t, []string{"reader"}, topic.Readers)
}

func TestTopicService_RemoveMember(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("owner")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txTopics.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Topic")).Return(nil)
	})
	fx.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(e service.TopicEvent) bool {
		return e.Type == service.TopicMembersChanged && assert.ObjectsAreEqual([]string{"owner", "writer", "reader"}, e.Members)
	})).Once()
	fx.publisher.EXPECT().PublishTopicEvent(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	topic, err := fx.service.RemoveMember(ctx, "owner", "t1", "reader", entity.MemberReader)

	require.NoError(t, err, "publisher failures do not fail the mutation")
	assert.Empty(t, topic.Readers)
}

func TestTopicService_ToggleReaction(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.asUser("reader")

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txTopics := mockRepo.NewMockTopicRepository(t)
		factory.EXPECT().TopicRepo().Return(txTopics)
		txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		txTopics.EXPECT().UpdateReactions(ctx, "t1", mock.MatchedBy(func(r entity.Reactions) bool {
			return r.Has(entity.ReactionLove, "reader") && len(r) == len(entity.ReactionKinds)
		})).Return(nil)
	})
	fx.expectEvent(service.TopicReactionToggled)

	topic, err := fx.service.ToggleReaction(ctx, "reader", "t1", entity.ReactionLove)

	require.NoError(t, err)
	assert.Equal(t, 1, topic.Reactions.Counts()[entity.ReactionLove])
}

func TestTopicService_ToggleReaction_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown kind", func(t *testing.T) {
		fx := createTestTopicService(t)

		_, err := fx.service.ToggleReaction(ctx, "reader", "t1", "ANGRY")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("stranger", func(t *testing.T) {
		fx := createTestTopicService(t)
		fx.asUser("stranger")
		expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			txTopics := mockRepo.NewMockTopicRepository(t)
			factory.EXPECT().TopicRepo().Return(txTopics)
			txTopics.EXPECT().FindByIDForUpdate(ctx, "t1").Return(sampleTopic(), nil)
		})

		_, err := fx.service.ToggleReaction(ctx, "stranger", "t1", entity.ReactionSad)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestTopicService_Permissions(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.topicRepo.EXPECT().FindByID(ctx, "t1").Return(sampleTopic(), nil)
	fx.asUser("writer")

	decisions, err := fx.service.Permissions(ctx, "writer", "t1")

	require.NoError(t, err)
	assert.Equal(t, map[entity.Permission]entity.Decision{
		entity.PermissionRead:  entity.Granted,
		entity.PermissionWrite: entity.Granted,
		entity.PermissionFull:  entity.Denied,
	}, decisions)
}

func TestTopicService_ShareCode(t *testing.T) {
	fx := createTestTopicService(t)
	ctx := context.Background()
	fx.topicRepo.EXPECT().FindByID(ctx, "t1").Return(sampleTopic(), nil)
	fx.asUser("reader")
	fx.qrcode.EXPECT().GenerateTopicQR("t1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.ShareCode(ctx, "reader", "t1")

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}
