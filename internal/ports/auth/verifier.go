package auth

import "context"

// AuthVerifier valida el token del usuario de captura y devuelve sus claims.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
