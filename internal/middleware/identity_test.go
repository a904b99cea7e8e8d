package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitty-registry/internal/ports/auth"
)

type stubVerifier struct {
	tokens map[string]string
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	id, ok := v.tokens[token]
	if !ok {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{AccountID: id}, nil
}

func serve(t *testing.T, verifier auth.Verifier, headers map[string]string) (string, bool) {
	t.Helper()

	var (
		got string
		ok  bool
	)
	h := Identity(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = AccountFrom(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return got, ok
}

func TestIdentity_DevHeader(t *testing.T) {
	got, ok := serve(t, nil, map[string]string{DebugAccountHeader: " alice "})
	if !ok || got != "alice" {
		t.Fatalf("expected alice, got %q ok=%v", got, ok)
	}
}

func TestIdentity_DevHeaderIgnoredWithVerifier(t *testing.T) {
	v := stubVerifier{tokens: map[string]string{"tok": "bob"}}

	if _, ok := serve(t, v, map[string]string{DebugAccountHeader: "alice"}); ok {
		t.Fatalf("debug header must be ignored when a verifier is configured")
	}

	got, ok := serve(t, v, map[string]string{"Authorization": "Bearer tok"})
	if !ok || got != "bob" {
		t.Fatalf("expected bob, got %q ok=%v", got, ok)
	}
}

func TestIdentity_InvalidTokenLeavesAnonymous(t *testing.T) {
	v := stubVerifier{tokens: map[string]string{}}

	if _, ok := serve(t, v, map[string]string{"Authorization": "Bearer nope"}); ok {
		t.Fatalf("expected anonymous request")
	}
}
