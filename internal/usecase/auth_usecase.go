// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput defines the data required for a Google federated login.
type GoogleLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Login authenticates an email and password pair and issues an access
	// token. Unknown emails and wrong passwords are indistinguishable to the
	// caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GoogleLogin authenticates a Google ID token, provisioning a student
	// account on first sight, and issues an access token.
	GoogleLogin(ctx context.Context, input *GoogleLoginInput) (*LoginOutput, error)

	// Authenticate resolves an access token to the account it was issued
	// for. Used by the request guard on protected endpoints.
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
