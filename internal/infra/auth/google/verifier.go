// Package google verifies Google-issued ID tokens for federated login.
package google

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	"sippec/config"
	"sippec/internal/domain/service"
)

// validateFunc matches idtoken.Validate; injected so tests can run without
// reaching Google's certificate endpoint.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier implements service.IdentityVerifier against Google's ID token
// format. Signature verification against Google's published keys, audience
// matching, and expiry checks are delegated to the idtoken package; this
// type owns claim extraction and the audience configuration.
type Verifier struct {
	audience string
	logger   *slog.Logger
	validate validateFunc
}

// NewVerifier is the constructor for Verifier. The audience is the
// application's registered OAuth client ID.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &Verifier{
		audience: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}, nil
}

// Verify validates the raw ID token and returns the asserted identity claim.
// Any verification failure rejects the token wholesale; no field of a
// rejected token is trusted.
func (v *Verifier) Verify(ctx context.Context, rawToken string) (*service.IdentityClaim, error) {
	payload, err := v.validate(ctx, rawToken, v.audience)
	if err != nil {
		v.logger.Warn("Google ID token rejected", slog.String("reason", err.Error()))

		return nil, errors.Wrap(err, "token verification failed")
	}

	claim, err := claimFromPayload(payload)
	if err != nil {
		v.logger.Warn("Google ID token missing required claims", slog.String("reason", err.Error()))

		return nil, err
	}

	v.logger.Info("Google ID token verified",
		slog.String("email", claim.Email))

	return claim, nil
}

// claimFromPayload extracts the identity attributes this service trusts.
// Email is required; names default to empty when the token omits them.
func claimFromPayload(payload *idtoken.Payload) (*service.IdentityClaim, error) {
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("token verification failed: no email claim")
	}

	givenName, _ := payload.Claims["given_name"].(string)
	familyName, _ := payload.Claims["family_name"].(string)

	return &service.IdentityClaim{
		Email:      email,
		GivenName:  givenName,
		FamilyName: familyName,
	}, nil
}
