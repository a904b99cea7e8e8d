package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"kitty-registry/internal/platform/httpclient"
	"kitty-registry/internal/ports/auth"
)

var (
	ErrUnauthorized = errors.New("identity unauthorized")
	ErrUpstream     = errors.New("identity upstream error")
)

const verifyPath = "/v1/tokens/verify"

// Client habla con el servicio de identidad que emite los tokens de cuenta.
type Client struct {
	http *httpclient.Client
}

func NewClient(c *httpclient.Client) *Client {
	return &Client{http: c}
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http.IsConfigured()
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}

// VerifyToken llama POST /v1/tokens/verify. 401/403 significan token inválido.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, httpclient.ErrNotConfigured
	}

	var out verifyResponse
	err := c.http.DoJSON(ctx, http.MethodPost, verifyPath,
		map[string]string{"Authorization": "Bearer " + token},
		verifyRequest{Token: token}, &out)

	switch httpclient.StatusOf(err) {
	case 0:
		if err != nil {
			return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return auth.Claims{}, ErrUnauthorized
	default:
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return auth.Claims{
		AccountID: strings.TrimSpace(out.AccountID),
		Email:     strings.TrimSpace(out.Email),
	}, nil
}
