package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sippec/internal/domain/entity"
	domainerrors "sippec/internal/domain/errors"
	"sippec/internal/domain/repository"
	"sippec/internal/domain/service"
	mockRepo "sippec/internal/mocks/repository"
	mockSvc "sippec/internal/mocks/service"
	"sippec/internal/usecase"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	txUserRepo   *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	verifier     *mockSvc.MockIdentityVerifier
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	verifier := mockSvc.NewMockIdentityVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txManager.Factory = &mockRepo.MockRepositoryFactory{UserRepository: txUserRepo}

	svc := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Verifier:     verifier,
		Logger:       logger,
	})

	return authServiceFixtures{
		service:      svc,
		txManager:    txManager,
		userRepo:     userRepo,
		txUserRepo:   txUserRepo,
		hasher:       hasher,
		tokenService: tokenService,
		verifier:     verifier,
	}
}

func testUser() *entity.User {
	return &entity.User{
		ID:           7,
		FirstName:    "Ana",
		LastName:     "Pop",
		Email:        "ana.pop@usv.ro",
		PasswordHash: "$2a$12$hash",
		Role:         "student",
		Type:         entity.UserTypeStudent,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	f := createTestAuthService(t)
	user := testUser()

	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.hasher.On("Check", "secret1", user.PasswordHash).Return(true)
	f.tokenService.On("IssueToken", user.Email).Return("signed-token", nil)

	out, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, user, out.User)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	f := createTestAuthService(t)

	f.userRepo.On("FindByEmail", mock.Anything, "ghost@usv.ro").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: "ghost@usv.ro", Password: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	f := createTestAuthService(t)
	user := testUser()

	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.hasher.On("Check", "wrong", user.PasswordHash).Return(false)

	_, err := f.service.Login(context.Background(), &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	// Wrong password and unknown email must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_GoogleLogin_RejectedToken(t *testing.T) {
	f := createTestAuthService(t)

	f.verifier.On("Verify", mock.Anything, "bad-token").Return(nil, errors.New("signature mismatch"))

	_, err := f.service.GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "bad-token"})
	assert.ErrorIs(t, err, domainerrors.ErrIdentityRejected)
}

func TestAuthService_GoogleLogin_ExistingAccount(t *testing.T) {
	f := createTestAuthService(t)
	user := testUser()

	f.verifier.On("Verify", mock.Anything, "id-token").Return(&service.IdentityClaim{
		Email:      user.Email,
		GivenName:  "Ana",
		FamilyName: "Pop",
	}, nil)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	f.tokenService.On("IssueToken", user.Email).Return("signed-token", nil)

	out, err := f.service.GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, user, out.User)

	// No account may be created for an already registered email.
	f.txUserRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_GoogleLogin_ProvisionsStudentAccount(t *testing.T) {
	f := createTestAuthService(t)

	f.verifier.On("Verify", mock.Anything, "id-token").Return(&service.IdentityClaim{
		Email:      "new.student@usv.ro",
		GivenName:  "Ion",
		FamilyName: "Ionescu",
	}, nil)
	f.userRepo.On("FindByEmail", mock.Anything, "new.student@usv.ro").Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", "google_oauth").Return("$2a$12$sentinel", nil)
	f.txUserRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new.student@usv.ro" &&
			u.FirstName == "Ion" &&
			u.LastName == "Ionescu" &&
			u.Role == "student" &&
			u.Type == entity.UserTypeStudent &&
			u.PasswordHash == "$2a$12$sentinel"
	})).Return(nil)
	f.tokenService.On("IssueToken", "new.student@usv.ro").Return("signed-token", nil)

	out, err := f.service.GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, entity.UserTypeStudent, out.User.Type)
}

func TestAuthService_GoogleLogin_ProvisioningFailure(t *testing.T) {
	f := createTestAuthService(t)

	f.verifier.On("Verify", mock.Anything, "id-token").Return(&service.IdentityClaim{Email: "new.student@usv.ro"}, nil)
	f.userRepo.On("FindByEmail", mock.Anything, "new.student@usv.ro").Return(nil, repository.ErrUserNotFound)
	f.hasher.On("Hash", "google_oauth").Return("$2a$12$sentinel", nil)
	f.txUserRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := f.service.GoogleLogin(context.Background(), &usecase.GoogleLoginInput{IDToken: "id-token"})
	assert.ErrorIs(t, err, domainerrors.ErrProvisioningFailed)
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	f := createTestAuthService(t)
	user := testUser()

	f.tokenService.On("VerifyToken", "signed-token").Return(user.Email, nil)
	f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	got, err := f.service.Authenticate(context.Background(), "signed-token")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Authenticate_InvalidToken(t *testing.T) {
	f := createTestAuthService(t)

	f.tokenService.On("VerifyToken", "garbage").Return("", errors.New("invalid token"))

	_, err := f.service.Authenticate(context.Background(), "garbage")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthService_Authenticate_SubjectDeleted(t *testing.T) {
	f := createTestAuthService(t)

	f.tokenService.On("VerifyToken", "signed-token").Return("gone@usv.ro", nil)
	f.userRepo.On("FindByEmail", mock.Anything, "gone@usv.ro").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Authenticate(context.Background(), "signed-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
