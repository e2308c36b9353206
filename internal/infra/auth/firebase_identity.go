package auth

import (
	"context"

	"bookclub/internal/domain/entity"
	domainerrors "bookclub/internal/domain/errors"
	"bookclub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// idTokenVerifier is the part of *firebaseauth.Client the provider needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseIdentityProvider verifies Firebase ID tokens sent by the web client.
type firebaseIdentityProvider struct {
	verifier idTokenVerifier
}

// NewFirebaseIdentityProvider builds the provider from the shared Firebase app.
func NewFirebaseIdentityProvider(app *firebase.App) (service.IdentityProvider, error) {
	client, err := app.Auth(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase Auth client")
	}

	return &firebaseIdentityProvider{verifier: client}, nil
}

func (p *firebaseIdentityProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	verified, err := p.verifier.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage(err.Error())
	}

	return &entity.Identity{
		UserID: verified.UID,
		Email:  stringClaim(verified.Claims, "email"),
		Name:   stringClaim(verified.Claims, "name"),
	}, nil
}

func stringClaim(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}
