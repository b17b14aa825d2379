package service

import "context"

// IdentityClaim is the set of identity attributes asserted by the external
// authority after a federated token has been verified. It is transient and
// never persisted.
type IdentityClaim struct {
	Email      string // Verified email address; always present.
	GivenName  string // First name; empty when the token omits it.
	FamilyName string // Last name; empty when the token omits it.
}

// IdentityVerifier validates a third-party identity token against the
// authority's published keys and this application's audience identifier.
// This is a trust boundary: on any verification failure no field of the
// token may be trusted.
type IdentityVerifier interface {
	// Verify checks the raw token and returns the asserted identity claim,
	// or an error describing why the token was rejected.
	Verify(ctx context.Context, rawToken string) (*IdentityClaim, error)
}
