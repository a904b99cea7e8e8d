package middleware

import (
	"context"
	"net/http"
	"strings"

	"kitty-registry/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// DebugAccountHeader solo se acepta cuando no hay verifier (modo dev).
const DebugAccountHeader = "X-Debug-Account-ID"

// Identity resuelve la cuenta que invoca cada request:
// - verifier != nil y Bearer token => Verify() y setea claims.
// - verifier == nil => modo dev, toma la cuenta de X-Debug-Account-ID.
// Sin claims el request sigue; cada handler decide si exige identidad.
func Identity(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if id := strings.TrimSpace(r.Header.Get(DebugAccountHeader)); id != "" {
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), auth.Claims{AccountID: id})))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// El handler responde 401.
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// AccountFrom devuelve la cuenta autenticada, si hay una.
func AccountFrom(ctx context.Context) (string, bool) {
	c, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	id := strings.TrimSpace(c.AccountID)
	return id, id != ""
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
