package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"kitty-registry/internal/platform/httpclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T, h http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := httpclient.New(httpclient.Config{BaseURL: srv.URL, APIKey: "svc-key"})
	require.NoError(t, err)
	return NewVerifier(NewClient(c))
}

func TestVerify_ReturnsClaims(t *testing.T) {
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, verifyPath, r.URL.Path)
		assert.Equal(t, "svc-key", r.Header.Get(httpclient.DefaultAPIKeyHeader))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req verifyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "tok", req.Token)

		_ = json.NewEncoder(w).Encode(verifyResponse{AccountID: " alice ", Email: "a@example.com"})
	})

	claims, err := v.Verify(context.Background(), " tok ")
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.AccountID)
	assert.Equal(t, "a@example.com", claims.Email)
}

func TestVerify_Unauthorized(t *testing.T) {
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerify_UpstreamFailure(t *testing.T) {
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestVerify_MissingAccount(t *testing.T) {
	v := newVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(verifyResponse{Email: "x@example.com"})
	})

	_, err := v.Verify(context.Background(), "tok")
	assert.ErrorIs(t, err, ErrMissingAccount)
}

func TestVerify_EmptyToken(t *testing.T) {
	v := NewVerifier(NewClient(nil))

	_, err := v.Verify(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}
