package auth

import (
	"context"

	"bookclub/internal/domain/entity"
	"bookclub/internal/domain/service"
)

// localIdentityProvider accepts the access tokens issued by the local sign-in flow.
type localIdentityProvider struct {
	tokens service.TokenService
}

// NewLocalIdentityProvider is the constructor for localIdentityProvider.
func NewLocalIdentityProvider(tokens service.TokenService) service.IdentityProvider {
	return &localIdentityProvider{tokens: tokens}
}

func (p *localIdentityProvider) VerifyToken(_ context.Context, token string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	return &entity.Identity{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
