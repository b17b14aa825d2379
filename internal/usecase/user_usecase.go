package usecase

import (
	"context"

	"sippec/internal/domain/entity"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Type      string
}

// UpdateUserInput defines the data required to update an existing user.
// An empty Password keeps the stored hash; a non-empty one is rehashed.
type UpdateUserInput struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
	Type      string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// Update replaces the profile fields of an existing account.
	Update(ctx context.Context, input *UpdateUserInput) (*entity.User, error)

	// List retrieves every user.
	List(ctx context.Context) ([]*entity.User, error)

	// GetByID retrieves a single user.
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// UpdateDeviceToken stores the FCM device token for push delivery.
	UpdateDeviceToken(ctx context.Context, userID int64, deviceToken string) error
}
