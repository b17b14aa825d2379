package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "sippec/internal/delivery/context"
	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	"sippec/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password. Registering an
// already used email fails; unlike login, registration may say so openly.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Registering user", slog.String("email", input.Email))

	userType := entity.UserType(input.Type)
	if input.Type == "" {
		userType = entity.UserTypeUser
	}
	if !userType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrEmailTaken, "registration failed")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check email availability")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "registration failed")
	}

	newUser := &entity.User{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Type:         userType,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Debug("User registered", slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Update replaces the profile fields of an existing account. The email may
// move only to an address no other account holds; a non-empty password is
// rehashed, an empty one keeps the stored digest.
func (srv *userService) Update(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user update failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	userType := entity.UserType(input.Type)
	if input.Type == "" {
		userType = user.Type
	}
	if !userType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown user type")
	}

	if input.Email != user.Email {
		if other, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil && other.ID != user.ID {
			return nil, errors.Wrap(domainerrors.ErrEmailTaken, "user update failed")
		} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to check email availability")
		}
	}

	if input.Password != "" {
		passwordHash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "user update failed")
		}
		user.PasswordHash = passwordHash
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.Email = input.Email
	user.Role = input.Role
	user.Type = userType

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.log(ctx).Debug("User updated", slog.Int64("userID", user.ID))

	return user, nil
}

// List retrieves every user.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetByID retrieves a single user.
func (srv *userService) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateDeviceToken stores the FCM device token for push delivery.
func (srv *userService) UpdateDeviceToken(ctx context.Context, userID int64, deviceToken string) error {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "device token update failed")
		}

		return errors.Wrap(err, "failed to find user")
	}

	user.DeviceToken = deviceToken
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update device token")
	}

	srv.log(ctx).Debug("Device token updated", slog.Int64("userID", userID))

	return nil
}
