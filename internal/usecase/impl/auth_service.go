// Package impl contains the implementation of the application's business logic.
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

// bearerTokenType is the token_type value reported alongside issued tokens.
const bearerTokenType = "bearer"

// googleSentinelPassword is the placeholder credential stored for accounts
// provisioned through Google login. It is hashed like any password, so it can
// never be used to log in directly: the plaintext would have to match the
// digest of this known sentinel, which password login rejects because the
// account holder does not know a matching plaintext either.
const googleSentinelPassword = "google_oauth"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	verifier     service.IdentityVerifier
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Verifier     service.IdentityVerifier
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		verifier:     params.Verifier,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates an email and password pair. An unknown email and a
// wrong password produce the same error so callers cannot probe which
// emails are registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting password login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed, unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison is CPU-bound; it runs outside any transaction.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed, password mismatch", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	return srv.issueTokenFor(ctx, user)
}

// GoogleLogin authenticates a Google ID token. Accounts are provisioned on
// first sight as students; an existing account with the asserted email is
// logged in as-is.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting Google login")

	claim, err := srv.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google login rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrIdentityRejected, "google login failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, claim.Email)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load user for google login")
		}

		user, err = srv.provisionGoogleUser(ctx, claim)
		if err != nil {
			srv.log(ctx).Error("Failed to provision Google account", slog.String("email", claim.Email), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrProvisioningFailed, "google login failed")
		}
	}

	return srv.issueTokenFor(ctx, user)
}

// provisionGoogleUser creates a student account for a verified identity
// inside a transaction, so a half-created account never remains after a
// failure.
func (srv *authService) provisionGoogleUser(ctx context.Context, claim *service.IdentityClaim) (*entity.User, error) {
	sentinelHash, err := srv.hasher.Hash(googleSentinelPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash sentinel password")
	}

	newUser := &entity.User{
		FirstName:    claim.GivenName,
		LastName:     claim.FamilyName,
		Email:        claim.Email,
		PasswordHash: sentinelHash,
		Role:         "student",
		Type:         entity.UserTypeStudent,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, newUser)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute provisioning transaction")
	}

	srv.log(ctx).Info("Provisioned student account via Google login",
		slog.String("email", newUser.Email),
		slog.Int64("userID", newUser.ID))

	return newUser, nil
}

// Authenticate resolves an access token to the account it was issued for.
// Every failure collapses into the same unauthenticated error.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	subject, err := srv.tokenService.VerifyToken(accessToken)
	if err != nil {
		srv.log(ctx).Debug("Token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "authentication failed")
	}

	user, err := srv.userRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Valid signature but the account is gone.
			srv.log(ctx).Warn("Token subject no longer exists", slog.String("subject", subject))

			return nil, errors.Wrap(domainerrors.ErrUnauthenticated, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	return user, nil
}

func (srv *authService) issueTokenFor(ctx context.Context, user *entity.User) (*usecase.LoginOutput, error) {
	accessToken, err := srv.tokenService.IssueToken(user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   bearerTokenType,
		User:        user,
	}, nil
}
