// Package entity contains the core business objects of the project.
package entity

// Role is the global role stored on a user record.
type Role string

const (
	// RoleUser is the default role for every signed-in user.
	RoleUser Role = "USER"
	// RoleSuperAdmin bypasses every per-topic and per-post check.
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSuperAdmin:
		return true
	default:
		return false
	}
}

// RoleOrDefault maps an empty or unknown stored role to RoleUser.
func RoleOrDefault(raw string) Role {
	role := Role(raw)
	if !role.IsValid() {
		return RoleUser
	}

	return role
}
