package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"kitty-registry/internal/platform/httpclient"
	"kitty-registry/internal/ports/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedgerServer guarda saldos libres por cuenta.
type fakeLedgerServer struct {
	mu   sync.Mutex
	free map[string]ledger.Balance
}

func (f *fakeLedgerServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.URL.Path {
	case "/v1/accounts/alice/reserve":
		if f.free["alice"] < req.Amount {
			http.Error(w, "insufficient", http.StatusPaymentRequired)
			return
		}
		f.free["alice"] -= req.Amount
	case "/v1/accounts/alice/unreserve":
		f.free["alice"] += req.Amount
	default:
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newLedger(t *testing.T, h http.Handler) *Ledger {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := httpclient.New(httpclient.Config{BaseURL: srv.URL, APIKey: "k"})
	require.NoError(t, err)
	return NewLedger(c)
}

func TestReserveAndUnreserve(t *testing.T) {
	fake := &fakeLedgerServer{free: map[string]ledger.Balance{"alice": 1500}}
	l := newLedger(t, fake)

	require.NoError(t, l.Reserve(context.Background(), "alice", 1000))
	assert.Equal(t, ledger.Balance(500), fake.free["alice"])

	require.NoError(t, l.Unreserve(context.Background(), "alice", 1000))
	assert.Equal(t, ledger.Balance(1500), fake.free["alice"])
}

func TestReserveInsufficientMapsToPortError(t *testing.T) {
	fake := &fakeLedgerServer{free: map[string]ledger.Balance{"alice": 100}}
	l := newLedger(t, fake)

	err := l.Reserve(context.Background(), "alice", 1000)
	assert.ErrorIs(t, err, ledger.ErrInsufficientBalance)
}

func TestUpstreamFailure(t *testing.T) {
	fake := &fakeLedgerServer{free: map[string]ledger.Balance{}}
	l := newLedger(t, fake)

	err := l.Reserve(context.Background(), "bob", 1)
	assert.ErrorIs(t, err, ErrLedgerUpstream)
	assert.NotErrorIs(t, err, ledger.ErrInsufficientBalance)
}
