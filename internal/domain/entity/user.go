// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// AnonymousAuthorName is stamped on posts whose author has neither a name nor an email.
const AnonymousAuthorName = "Anonymous"

// User is the profile record mirrored from the identity provider.
type User struct {
	ID         string    // Identity-provider issued id (Firebase uid or local uuid).
	Email      string    // Primary email, also used by the member search.
	Name       string    // Display name.
	FamilyName string    // Optional family name.
	Logo       *string   // Optional avatar URL.
	Role       Role      // Global role, RoleUser unless promoted.
	CreatedAt  time.Time // Timestamp of when the record was mirrored.
	UpdatedAt  time.Time // Timestamp of the last profile change.
}

// DisplayName returns the name shown next to content authored by the user.
func (u *User) DisplayName() string {
	if u == nil {
		return AnonymousAuthorName
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	if email := strings.TrimSpace(u.Email); email != "" {
		return email
	}

	return AnonymousAuthorName
}

// IsSuperAdmin reports whether the user holds the SUPER_ADMIN role.
func (u *User) IsSuperAdmin() bool {
	return u != nil && u.Role == RoleSuperAdmin
}

// DefaultNameFromEmail derives a display name from the local part of an email.
func DefaultNameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}

	return local
}
