package impl

import (
	"context"
	"testing"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/repository"
	mockRepo "bookclub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleService_ResolveRole(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		setup   func(repo *mockRepo.MockUserRepository)
		want    entity.Role
		wantErr bool
	}{
		{
			name:   "empty id is a plain user",
			userID: "",
			want:   entity.RoleUser,
		},
		{
			name:   "missing record is a plain user",
			userID: "u1",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(context.Background(), "u1").Return(nil, repository.ErrUserNotFound)
			},
			want: entity.RoleUser,
		},
		{
			name:   "unset role is a plain user",
			userID: "u1",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(context.Background(), "u1").Return(&entity.User{ID: "u1"}, nil)
			},
			want: entity.RoleUser,
		},
		{
			name:   "super admin",
			userID: "root",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(context.Background(), "root").Return(&entity.User{ID: "root", Role: entity.RoleSuperAdmin}, nil)
			},
			want: entity.RoleSuperAdmin,
		},
		{
			name:   "backend failure",
			userID: "u1",
			setup: func(repo *mockRepo.MockUserRepository) {
				repo.EXPECT().FindByID(context.Background(), "u1").Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mockRepo.NewMockUserRepository(t)
			if tt.setup != nil {
				tt.setup(userRepo)
			}
			service := NewRoleService(userRepo, newDiscardLogger())

			role, err := service.ResolveRole(context.Background(), tt.userID)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}
