// Package remote implementa ledger.StakeLedger contra un servicio de balances por HTTP.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"kitty-registry/internal/platform/httpclient"
	"kitty-registry/internal/ports/ledger"
)

var ErrLedgerUpstream = errors.New("ledger upstream error")

type Ledger struct {
	client *httpclient.Client
}

func NewLedger(client *httpclient.Client) *Ledger {
	return &Ledger{client: client}
}

type amountRequest struct {
	Amount ledger.Balance `json:"amount"`
}

// Reserve llama POST /v1/accounts/{id}/reserve. 402 o 409 significan saldo insuficiente.
func (l *Ledger) Reserve(ctx context.Context, account string, amount ledger.Balance) error {
	err := l.call(ctx, account, "reserve", amount)
	switch httpclient.StatusOf(err) {
	case 0:
		if err != nil {
			return fmt.Errorf("%w: %v", ErrLedgerUpstream, err)
		}
		return nil
	case http.StatusPaymentRequired, http.StatusConflict:
		return ledger.ErrInsufficientBalance
	default:
		return fmt.Errorf("%w: %v", ErrLedgerUpstream, err)
	}
}

// Unreserve llama POST /v1/accounts/{id}/unreserve.
func (l *Ledger) Unreserve(ctx context.Context, account string, amount ledger.Balance) error {
	if err := l.call(ctx, account, "unreserve", amount); err != nil {
		return fmt.Errorf("%w: %v", ErrLedgerUpstream, err)
	}
	return nil
}

func (l *Ledger) call(ctx context.Context, account, op string, amount ledger.Balance) error {
	account = strings.TrimSpace(account)
	if account == "" {
		return errors.New("account required")
	}
	path := fmt.Sprintf("/v1/accounts/%s/%s", url.PathEscape(account), op)
	return l.client.DoJSON(ctx, http.MethodPost, path, nil, amountRequest{Amount: amount}, nil)
}
