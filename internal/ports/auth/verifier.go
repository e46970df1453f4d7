package auth

import "context"

// AuthVerifier validates a token and returns its claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
