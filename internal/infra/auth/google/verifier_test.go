package google

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"sippec/config"
)

func newTestVerifier(validate validateFunc) *Verifier {
	return &Verifier{
		audience: "test-client-id",
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate: validate,
	}
}

func TestVerifier_Verify_Success(t *testing.T) {
	verifier := newTestVerifier(func(_ context.Context, _, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "test-client-id", audience)

		return &idtoken.Payload{
			Claims: map[string]any{
				"email":       "student@usv.ro",
				"given_name":  "Ana",
				"family_name": "Pop",
			},
		}, nil
	})

	claim, err := verifier.Verify(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "student@usv.ro", claim.Email)
	assert.Equal(t, "Ana", claim.GivenName)
	assert.Equal(t, "Pop", claim.FamilyName)
}

func TestVerifier_Verify_OptionalNamesDefaultEmpty(t *testing.T) {
	verifier := newTestVerifier(func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Claims: map[string]any{"email": "student@usv.ro"},
		}, nil
	})

	claim, err := verifier.Verify(context.Background(), "raw-token")
	require.NoError(t, err)
	assert.Equal(t, "student@usv.ro", claim.Email)
	assert.Empty(t, claim.GivenName)
	assert.Empty(t, claim.FamilyName)
}

func TestVerifier_Verify_RejectedToken(t *testing.T) {
	verifier := newTestVerifier(func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
		return nil, errors.New("audience provided does not match aud claim")
	})

	claim, err := verifier.Verify(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, claim)
}

func TestVerifier_Verify_MissingEmailIsRejected(t *testing.T) {
	verifier := newTestVerifier(func(_ context.Context, _, _ string) (*idtoken.Payload, error) {
		return &idtoken.Payload{
			Claims: map[string]any{"given_name": "Ana"},
		}, nil
	})

	claim, err := verifier.Verify(context.Background(), "raw-token")
	assert.Error(t, err)
	assert.Nil(t, claim)
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewVerifier(&config.Config{}, logger)
	assert.Error(t, err)

	cfg := &config.Config{GoogleOAuth: &config.GoogleOAuthConfig{ClientID: "test-client-id"}}
	verifier, err := NewVerifier(cfg, logger)
	require.NoError(t, err)
	assert.NotNil(t, verifier)
}
