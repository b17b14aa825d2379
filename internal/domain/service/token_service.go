package service

import "time"

// TokenService defines the interface for issuing and verifying the signed,
// expiring bearer tokens handed out after login. Tokens are self-contained;
// there is no server-side revocation list.
type TokenService interface {
	// IssueToken creates a signed token for the given subject (the account's
	// email), expiring after the configured TTL.
	IssueToken(subject string) (string, error)

	// VerifyToken checks the token's signature and expiry and returns its
	// subject. A tampered, malformed, or expired token yields an error.
	VerifyToken(token string) (subject string, err error)

	// AccessTokenTTL returns the configured token lifetime.
	AccessTokenTTL() time.Duration
}
