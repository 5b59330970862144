package domain

import "time"

// TokenIssuer issues tokens (e.g. JWT) for a caller identity.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the caller identity. The ledger
// itself never sees tokens; the host hands it an already-authenticated
// identity string.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
