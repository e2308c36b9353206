package entity

import "strings"

// Permission is the operation being authorized.
type Permission string

const (
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
	PermissionFull  Permission = "FULL"
	// PermissionDelete is the post-level name of PermissionFull.
	PermissionDelete Permission = "DELETE"
)

// ParsePermission accepts permissions in any letter case.
func ParsePermission(raw string) Permission {
	return Permission(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsValid checks if the Permission is a known value.
func (p Permission) IsValid() bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionFull, PermissionDelete:
		return true
	default:
		return false
	}
}

// Decision is the tri-state result of an authorization check.
type Decision int

const (
	// Denied is the zero value.
	Denied Decision = iota
	Granted
	// Pending means the actor's role could not be resolved yet.
	Pending
)

// Allowed is true only for Granted.
func (d Decision) Allowed() bool {
	return d == Granted
}

// String returns the lower-case name of the decision.
func (d Decision) String() string {
	switch d {
	case Granted:
		return "granted"
	case Pending:
		return "pending"
	default:
		return "denied"
	}
}

// MarshalText renders the decision as its name.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
