package ledger

import (
	"context"
	"errors"
)

// ErrInsufficientBalance lo devuelve Reserve cuando el saldo libre no alcanza.
var ErrInsufficientBalance = errors.New("insufficient balance")

// Balance es una cantidad de moneda en unidades mínimas.
type Balance uint64

// StakeLedger reserva y libera moneda contra cuentas.
// Reserve no debe tener efecto si devuelve error.
type StakeLedger interface {
	Reserve(ctx context.Context, account string, amount Balance) error
	Unreserve(ctx context.Context, account string, amount Balance) error
}
