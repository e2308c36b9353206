package access

import (
	"testing"

	"bookclub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func sampleTopic() *entity.Topic {
	return &entity.Topic{
		ID:      "t1",
		Owner:   "u1",
		Writers: []string{"u2"},
		Readers: []string{"u3"},
	}
}

func TestCanAccessTopic(t *testing.T) {
	topic := sampleTopic()

	tests := []struct {
		name       string
		actor      Actor
		permission entity.Permission
		want       entity.Decision
	}{
		{"owner reads", NewActor("u1", entity.RoleUser), entity.PermissionRead, entity.Granted},
		{"owner writes", NewActor("u1", entity.RoleUser), entity.PermissionWrite, entity.Granted},
		{"owner has full", NewActor("u1", entity.RoleUser), entity.PermissionFull, entity.Granted},
		{"owner deletes", NewActor("u1", entity.RoleUser), entity.PermissionDelete, entity.Granted},
		{"writer reads", NewActor("u2", entity.RoleUser), entity.PermissionRead, entity.Granted},
		{"writer writes", NewActor("u2", entity.RoleUser), entity.PermissionWrite, entity.Granted},
		{"writer cannot delete", NewActor("u2", entity.RoleUser), entity.PermissionFull, entity.Denied},
		{"reader reads", NewActor("u3", entity.RoleUser), entity.PermissionRead, entity.Granted},
		{"reader cannot write", NewActor("u3", entity.RoleUser), entity.PermissionWrite, entity.Denied},
		{"reader cannot delete", NewActor("u3", entity.RoleUser), entity.PermissionFull, entity.Denied},
		{"stranger cannot read", NewActor("u4", entity.RoleUser), entity.PermissionRead, entity.Denied},
		{"unknown permission", NewActor("u1", entity.RoleUser), entity.Permission("ADMIN"), entity.Denied},
		{"anonymous is denied", Anonymous(), entity.PermissionRead, entity.Denied},
		{"pending role", PendingActor("u1"), entity.PermissionRead, entity.Pending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessTopic(tt.actor, topic, tt.permission))
		})
	}
}

func TestCanAccessTopic_SuperAdminAlwaysGranted(t *testing.T) {
	admin := NewActor("root", entity.RoleSuperAdmin)
	permissions := []entity.Permission{
		entity.PermissionRead,
		entity.PermissionWrite,
		entity.PermissionFull,
		entity.PermissionDelete,
		entity.Permission("SOMETHING_ELSE"),
	}

	for _, p := range permissions {
		assert.Equal(t, entity.Granted, CanAccessTopic(admin, sampleTopic(), p), p)
		assert.Equal(t, entity.Granted, CanAccessTopic(admin, nil, p), p)
	}
}

func TestCanAccessTopic_OwnerListedAsWriter(t *testing.T) {
	topic := sampleTopic()
	topic.Writers = append(topic.Writers, "u1")

	actor := NewActor("u1", entity.RoleUser)
	assert.Equal(t, entity.Granted, CanAccessTopic(actor, topic, entity.PermissionFull))
	assert.Equal(t, entity.Granted, CanAccessTopic(actor, topic, entity.PermissionWrite))
}

func TestCanAccessTopic_MissingTopicIsDenied(t *testing.T) {
	assert.Equal(t, entity.Denied, CanAccessTopic(NewActor("u1", entity.RoleUser), nil, entity.PermissionRead))
}

func TestCanAccessPost(t *testing.T) {
	topic := sampleTopic()
	topic.Writers = append(topic.Writers, "u5")
	post := &entity.Post{ID: "p1", TopicID: topic.ID, AuthorID: "u5"}

	tests := []struct {
		name       string
		actor      Actor
		permission entity.Permission
		want       entity.Decision
	}{
		{"author edits", NewActor("u5", entity.RoleUser), entity.PermissionWrite, entity.Granted},
		{"author deletes", NewActor("u5", entity.RoleUser), entity.PermissionDelete, entity.Granted},
		{"other writer cannot edit", NewActor("u2", entity.RoleUser), entity.PermissionWrite, entity.Denied},
		{"other writer cannot delete", NewActor("u2", entity.RoleUser), entity.PermissionDelete, entity.Denied},
		{"owner cannot edit", NewActor("u1", entity.RoleUser), entity.PermissionWrite, entity.Denied},
		{"owner deletes", NewActor("u1", entity.RoleUser), entity.PermissionDelete, entity.Granted},
		{"owner full equals delete", NewActor("u1", entity.RoleUser), entity.PermissionFull, entity.Granted},
		{"reader reads", NewActor("u3", entity.RoleUser), entity.PermissionRead, entity.Granted},
		{"stranger cannot read", NewActor("u4", entity.RoleUser), entity.PermissionRead, entity.Denied},
		{"unknown permission", NewActor("u5", entity.RoleUser), entity.Permission("SHARE"), entity.Denied},
		{"anonymous", Anonymous(), entity.PermissionRead, entity.Denied},
		{"pending", PendingActor("u5"), entity.PermissionWrite, entity.Pending},
		{"super admin edits", NewActor("root", entity.RoleSuperAdmin), entity.PermissionWrite, entity.Granted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanAccessPost(tt.actor, post, topic, tt.permission))
		})
	}
}

func TestCanAccessPost_DeletedTopic(t *testing.T) {
	post := &entity.Post{ID: "p1", AuthorID: "u5"}

	assert.Equal(t, entity.Denied, CanAccessPost(NewActor("u5", entity.RoleUser), post, nil, entity.PermissionRead))
	assert.Equal(t, entity.Granted, CanAccessPost(NewActor("u5", entity.RoleUser), post, nil, entity.PermissionDelete))
	assert.Equal(t, entity.Denied, CanAccessPost(NewActor("u5", entity.RoleUser), nil, nil, entity.PermissionDelete))
}

func TestTopicPermissions(t *testing.T) {
	got := TopicPermissions(NewActor("u2", entity.RoleUser), sampleTopic())

	assert.Equal(t, map[entity.Permission]entity.Decision{
		entity.PermissionRead:  entity.Granted,
		entity.PermissionWrite: entity.Granted,
		entity.PermissionFull:  entity.Denied,
	}, got)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "granted", entity.Granted.String())
	assert.Equal(t, "denied", entity.Denied.String())
	assert.Equal(t, "pending", entity.Pending.String())
	assert.False(t, entity.Pending.Allowed())
	assert.True(t, entity.Granted.Allowed())
}
