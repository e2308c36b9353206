// Package access holds the pure authorization and membership rules for topics and posts.
// Nothing in here performs I/O; callers load snapshots and pass them in.
package access

import "bookclub/internal/domain/entity"

// Actor is the user a decision is made for.
// An empty ID is the anonymous actor. RoleKnown is false while the role lookup is unresolved.
type Actor struct {
	ID        string
	Role      entity.Role
	RoleKnown bool
}

// Anonymous returns the unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// NewActor returns an actor whose role has been resolved.
func NewActor(id string, role entity.Role) Actor {
	return Actor{ID: id, Role: role, RoleKnown: true}
}

// PendingActor returns an actor whose role could not be resolved.
func PendingActor(id string) Actor {
	return Actor{ID: id}
}

// IsAnonymous reports whether the actor is unauthenticated.
func (a Actor) IsAnonymous() bool {
	return a.ID == ""
}

// IsSuperAdmin reports whether the actor's resolved role is SUPER_ADMIN.
func (a Actor) IsSuperAdmin() bool {
	return a.RoleKnown && a.Role == entity.RoleSuperAdmin
}

// preflight applies the checks shared by every resource: anonymous actors are denied,
// unresolved roles are pending and super-admins are granted before membership is inspected.
func preflight(actor Actor) (entity.Decision, bool) {
	switch {
	case actor.IsAnonymous():
		return entity.Denied, true
	case !actor.RoleKnown:
		return entity.Pending, true
	case actor.Role == entity.RoleSuperAdmin:
		return entity.Granted, true
	default:
		return entity.Denied, false
	}
}

// CanAccessTopic decides whether actor holds permission on topic.
func CanAccessTopic(actor Actor, topic *entity.Topic, permission entity.Permission) entity.Decision {
	if decision, done := preflight(actor); done {
		return decision
	}
	if topic == nil {
		return entity.Denied
	}

	var ok bool
	switch permission {
	case entity.PermissionRead:
		ok = topic.IsOwner(actor.ID) || topic.IsWriter(actor.ID) || topic.IsReader(actor.ID)
	case entity.PermissionWrite:
		ok = topic.IsOwner(actor.ID) || topic.IsWriter(actor.ID)
	case entity.PermissionFull, entity.PermissionDelete:
		ok = topic.IsOwner(actor.ID)
	}

	return grantIf(ok)
}

// CanAccessPost decides whether actor holds permission on post inside topic.
// Reading follows the topic, editing is reserved to the author and deleting is open to
// the author or the topic owner.
func CanAccessPost(actor Actor, post *entity.Post, topic *entity.Topic, permission entity.Permission) entity.Decision {
	if decision, done := preflight(actor); done {
		return decision
	}
	if post == nil {
		return entity.Denied
	}

	switch permission {
	case entity.PermissionRead:
		return CanAccessTopic(actor, topic, entity.PermissionRead)
	case entity.PermissionWrite:
		return grantIf(post.IsAuthor(actor.ID))
	case entity.PermissionDelete, entity.PermissionFull:
		return grantIf(post.IsAuthor(actor.ID) || topic.IsOwner(actor.ID))
	default:
		return entity.Denied
	}
}

// TopicPermissions evaluates every topic permission at once.
func TopicPermissions(actor Actor, topic *entity.Topic) map[entity.Permission]entity.Decision {
	return map[entity.Permission]entity.Decision{
		entity.PermissionRead:  CanAccessTopic(actor, topic, entity.PermissionRead),
		entity.PermissionWrite: CanAccessTopic(actor, topic, entity.PermissionWrite),
		entity.PermissionFull:  CanAccessTopic(actor, topic, entity.PermissionFull),
	}
}

// PostPermissions evaluates every post permission at once.
func PostPermissions(actor Actor, post *entity.Post, topic *entity.Topic) map[entity.Permission]entity.Decision {
	return map[entity.Permission]entity.Decision{
		entity.PermissionRead:   CanAccessPost(actor, post, topic, entity.PermissionRead),
		entity.PermissionWrite:  CanAccessPost(actor, post, topic, entity.PermissionWrite),
		entity.PermissionDelete: CanAccessPost(actor, post, topic, entity.PermissionDelete),
	}
}

func grantIf(ok bool) entity.Decision {
	if ok {
		return entity.Granted
	}

	return entity.Denied
}
