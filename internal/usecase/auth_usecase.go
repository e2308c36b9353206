package usecase

import (
	"context"

	"bookclub/internal/domain/entity"
)

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// AuthOutput returns the issued access token after register or login.
type AuthOutput struct {
	AccessToken string
	ExpiresIn   int64
	User        *entity.User
}

// AuthUsecase is the email and password flow of the local identity provider.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
}
