package entity

import "time"

// ProviderEmail is the provider name of email/password credentials.
const ProviderEmail = "email"

// Authentication is a local login credential.
// It only exists when the local identity provider is configured.
type Authentication struct {
	UserID         string    // The user this credential signs in as.
	Provider       string    // Always ProviderEmail for now.
	ProviderUserID string    // Lower-cased email for ProviderEmail.
	PasswordHash   string    // bcrypt hash.
	CreatedAt      time.Time // Timestamp of registration.
}

// Identity is what an identity provider vouches for after verifying a token.
type Identity struct {
	UserID string
	Email  string
	Name   string
}
