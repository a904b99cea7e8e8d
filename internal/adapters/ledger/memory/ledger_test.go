package memory

import (
	"context"
	"testing"

	"kitty-registry/internal/ports/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserveMovesFreeToReserved(t *testing.T) {
	l := NewLedger()
	l.Deposit("alice", 10000)

	require.NoError(t, l.Reserve(context.Background(), "alice", 1000))

	assert.Equal(t, ledger.Balance(9000), l.FreeBalance("alice"))
	assert.Equal(t, ledger.Balance(1000), l.ReservedBalance("alice"))
}

func TestReserveInsufficientHasNoEffect(t *testing.T) {
	l := NewLedger()
	l.Deposit("alice", 100)

	err := l.Reserve(context.Background(), "alice", 1000)
	require.ErrorIs(t, err, ledger.ErrInsufficientBalance)

	assert.Equal(t, ledger.Balance(100), l.FreeBalance("alice"))
	assert.Equal(t, ledger.Balance(0), l.ReservedBalance("alice"))
}

func TestUnreserveCapsAtReserved(t *testing.T) {
	l := NewLedger()
	l.Deposit("alice", 1500)
	require.NoError(t, l.Reserve(context.Background(), "alice", 1000))

	require.NoError(t, l.Unreserve(context.Background(), "alice", 5000))

	assert.Equal(t, ledger.Balance(1500), l.FreeBalance("alice"))
	assert.Equal(t, ledger.Balance(0), l.ReservedBalance("alice"))
}

func TestEmptyAccountRejected(t *testing.T) {
	l := NewLedger()
	require.ErrorIs(t, l.Reserve(context.Background(), " ", 1), ErrAccountRequired)
}

func TestOpeningBalanceCreditedOnce(t *testing.T) {
	l := NewLedger().WithOpeningBalance(5000)

	require.Equal(t, ledger.Balance(5000), l.FreeBalance("alice"))
	require.NoError(t, l.Reserve(context.Background(), "alice", 1000))
	require.NoError(t, l.Unreserve(context.Background(), "alice", 1000))
	assert.Equal(t, ledger.Balance(5000), l.FreeBalance("alice"))
	assert.Equal(t, ledger.Balance(0), l.ReservedBalance("alice"))
}
