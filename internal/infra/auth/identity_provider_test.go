package auth

import (
	"context"
	"testing"
	"time"

	domainerrors "bookclub/internal/domain/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	token *firebaseauth.Token
	err   error
}

func (f fakeVerifier) VerifyIDToken(context.Context, string) (*firebaseauth.Token, error) {
	return f.token, f.err
}

func TestFirebaseIdentityProvider_VerifyToken(t *testing.T) {
	provider := &firebaseIdentityProvider{verifier: fakeVerifier{token: &firebaseauth.Token{
		UID:    "firebase-uid",
		Claims: map[string]any{"email": "ada@example.com", "name": "Ada", "admin": true},
	}}}

	identity, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid", identity.UserID)
	assert.Equal(t, "ada@example.com", identity.Email)
	assert.Equal(t, "Ada", identity.Name)
}

func TestFirebaseIdentityProvider_MissingClaims(t *testing.T) {
	provider := &firebaseIdentityProvider{verifier: fakeVerifier{token: &firebaseauth.Token{UID: "uid"}}}

	identity, err := provider.VerifyToken(context.Background(), "id-token")
	require.NoError(t, err)
	assert.Empty(t, identity.Email)
	assert.Empty(t, identity.Name)
}

func TestFirebaseIdentityProvider_InvalidToken(t *testing.T) {
	provider := &firebaseIdentityProvider{verifier: fakeVerifier{err: errors.New("ID token has expired")}}

	_, err := provider.VerifyToken(context.Background(), "id-token")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestLocalIdentityProvider_VerifyToken(t *testing.T) {
	tokens, err := NewJWTService(newTestConfig("local-secret", time.Hour))
	require.NoError(t, err)
	provider := NewLocalIdentityProvider(tokens)

	signed, err := tokens.GenerateAccessToken("local-user", "grace@example.com")
	require.NoError(t, err)

	identity, err := provider.VerifyToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, "local-user", identity.UserID)
	assert.Equal(t, "grace@example.com", identity.Email)

	_, err = provider.VerifyToken(context.Background(), "bogus")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
