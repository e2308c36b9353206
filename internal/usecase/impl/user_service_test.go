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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	roles     *mockUsecase.MockRoleResolver
	notifier  *mockService.MockChangeNotifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	roles := mockUsecase.NewMockRoleResolver(t)
	notifier := mockService.NewMockChangeNotifier(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Roles:     roles,
			Notifier:  notifier,
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
		userRepo:  userRepo,
		roles:     roles,
		notifier:  notifier,
	}
}

func TestUserService_SyncCurrentUser_CreatesOnFirstSight(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	identity := &entity.Identity{UserID: "uid-1", Email: "ada@example.com"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)
		txUsers.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == "uid-1" && u.Name == "ada" && u.Role == entity.RoleUser
		})).Return(nil)
	})

	user, err := fx.service.SyncCurrentUser(ctx, identity)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "ada", user.Name)
}

func TestUserService_SyncCurrentUser_KeepsExistingRecord(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	existing := &entity.User{ID: "uid-1", Email: "ada@example.com", Name: "Ada", Role: entity.RoleSuperAdmin}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "uid-1").Return(existing, nil)
	})

	user, err := fx.service.SyncCurrentUser(ctx, &entity.Identity{UserID: "uid-1", Email: "other@example.com"})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, user.Role, "role is never downgraded")
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestUserService_SyncCurrentUser_LosesCreateRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	winner := &entity.User{ID: "uid-1", Email: "ada@example.com"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "uid-1").Return(nil, repository.ErrUserNotFound)
		txUsers.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)
	})
	fx.userRepo.EXPECT().FindByID(ctx, "uid-1").Return(winner, nil)

	user, err := fx.service.SyncCurrentUser(ctx, &entity.Identity{UserID: "uid-1", Email: "ada@example.com"})

	require.NoError(t, err)
	assert.Equal(t, winner, user)
}

func TestUserService_SyncCurrentUser_RequiresIdentity(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SyncCurrentUser(context.Background(), nil)

	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	name, family, logo := "  Grace ", "Hopper", "https://cdn.example.com/g.png"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", Name: "Old"}, nil)
		txUsers.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Name: &name, FamilyName: &family, Logo: &logo})

	require.NoError(t, err)
	assert.Equal(t, "Grace", user.Name)
	assert.Equal(t, "Hopper", user.FamilyName)
	require.NotNil(t, user.Logo)
	assert.Equal(t, logo, *user.Logo)
}

func TestUserService_UpdateProfile_BlankName(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	blank := "   "

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", Name: "Old"}, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{Name: &blank})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_AssignRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.roles.EXPECT().ResolveRole(ctx, "root").Return(entity.RoleSuperAdmin, nil)
	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUsers := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUsers)
		txUsers.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", Role: entity.RoleUser}, nil)
		txUsers.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleSuperAdmin
		})).Return(nil)
	})
	fx.notifier.EXPECT().Notify(ctx, mock.MatchedBy(func(e service.TopicEvent) bool {
		return e.Type == service.UserRoleChanged && e.ActorID == "root" && assert.ObjectsAreEqual([]string{"u1"}, e.Members)
	})).Once()

	user, err := fx.service.AssignRole(ctx, "root", "u1", entity.RoleSuperAdmin)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSuperAdmin, user.Role)
}

func TestUserService_AssignRole_Errors(t *testing.T) {
	tests := []struct {
		name    string
		role    entity.Role
		setup   func(fx userServiceFixtures)
		wantErr error
	}{
		{
			name:    "invalid role",
			role:    entity.Role("GOD"),
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "actor is not super admin",
			role: entity.RoleSuperAdmin,
			setup: func(fx userServiceFixtures) {
				fx.roles.EXPECT().ResolveRole(mock.Anything, "actor").Return(entity.RoleUser, nil)
			},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name: "role lookup failed",
			role: entity.RoleUser,
			setup: func(fx userServiceFixtures) {
				fx.roles.EXPECT().ResolveRole(mock.Anything, "actor").Return(entity.Role(""), errors.New("timeout"))
			},
			wantErr: domainerrors.ErrAuthorizationPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.AssignRole(context.Background(), "actor", "target", tt.role)

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestUserService_SearchUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	empty, err := fx.service.SearchUsers(ctx, "   ", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	found := []*entity.User{{ID: "u1", Email: "ada@example.com"}}
	fx.userRepo.EXPECT().Search(ctx, "ada", maxSearchLimit).Return(found, nil)

	users, err := fx.service.SearchUsers(ctx, " ada ", 1000)
	require.NoError(t, err)
	assert.Equal(t, found, users)
}
