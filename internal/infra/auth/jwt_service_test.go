package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sippec/config"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc := newJWTService(testSecret, 30*time.Minute)

	subjects := []string{"a@x.edu", "student.name@usv.ro", "", "weird subject with spaces"}
	for _, subject := range subjects {
		token, err := svc.IssueToken(subject)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		got, err := svc.VerifyToken(token)
		if subject == "" {
			// A subject-less token proves nothing about an account.
			assert.Error(t, err)

			continue
		}
		require.NoError(t, err)
		assert.Equal(t, subject, got)
	}
}

func TestJWTService_TokensDifferAcrossIssuance(t *testing.T) {
	svc := newJWTService(testSecret, 30*time.Minute)

	first, err := svc.IssueToken("a@x.edu")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond) // exp has second granularity

	second, err := svc.IssueToken("a@x.edu")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// Both remain independently valid.
	for _, token := range []string{first, second} {
		subject, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.edu", subject)
	}
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newJWTService(testSecret, 30*time.Minute)

	expired := signedToken(t, testSecret, "a@x.edu", time.Now().Add(-time.Second))
	_, err := svc.VerifyToken(expired)
	assert.Error(t, err)

	fresh := signedToken(t, testSecret, "a@x.edu", time.Now().Add(time.Minute))
	subject, err := svc.VerifyToken(fresh)
	require.NoError(t, err)
	assert.Equal(t, "a@x.edu", subject)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc := newJWTService(testSecret, 30*time.Minute)

	// Signed with a different secret.
	forged := signedToken(t, "some-other-secret", "a@x.edu", time.Now().Add(time.Minute))
	_, err := svc.VerifyToken(forged)
	assert.Error(t, err)

	// Not a JWT at all.
	_, err = svc.VerifyToken("not.a.token")
	assert.Error(t, err)

	// Unsigned token.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.edu",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.VerifyToken(raw)
	assert.Error(t, err)
}

func TestJWTService_ConfigConstructor(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err, "empty secret must be refused")

	cfg.SecretKey.Access = testSecret
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, svc.AccessTokenTTL())

	cfg.Auth = &config.AuthConfig{AccessTokenTTL: time.Hour}
	svc, err = NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenTTL())
}

func signedToken(t *testing.T, secret, subject string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return raw
}
