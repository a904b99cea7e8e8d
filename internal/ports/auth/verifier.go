package auth

import "context"

// Verifier verifica un token y devuelve la cuenta autenticada o error.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
