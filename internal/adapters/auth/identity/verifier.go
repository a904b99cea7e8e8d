package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"kitty-registry/internal/ports/auth"
)

var (
	ErrTokenEmpty     = errors.New("token is empty")
	ErrMissingAccount = errors.New("identity claims missing account id")
)

// Verifier implementa auth.Verifier usando el servicio de identidad.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrUpstream
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("identity verify failed: %w", err)
	}
	if claims.AccountID == "" {
		return auth.Claims{}, ErrMissingAccount
	}
	return claims, nil
}
