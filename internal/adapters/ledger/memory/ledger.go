package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"kitty-registry/internal/ports/ledger"
)

var ErrAccountRequired = errors.New("account required")

type account struct {
	free     ledger.Balance
	reserved ledger.Balance
}

// Ledger guarda saldos libre/reservado en memoria. Sirve para dev y tests.
type Ledger struct {
	mu       sync.Mutex
	accounts map[string]*account

	// opening se acredita a cada cuenta la primera vez que se la ve.
	opening ledger.Balance
}

func NewLedger() *Ledger {
	return &Ledger{accounts: make(map[string]*account)}
}

// WithOpeningBalance hace que cada cuenta nueva arranque con amount libre (modo dev).
func (l *Ledger) WithOpeningBalance(amount ledger.Balance) *Ledger {
	l.opening = amount
	return l
}

// Deposit acredita saldo libre.
func (l *Ledger) Deposit(accountID string, amount ledger.Balance) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.get(accountID)
	a.free += amount
}

func (l *Ledger) FreeBalance(accountID string) ledger.Balance {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a, ok := l.accounts[accountID]; ok {
		return a.free
	}
	return l.opening
}

func (l *Ledger) ReservedBalance(accountID string) ledger.Balance {
	l.mu.Lock()
	defer l.mu.Unlock()

	if a, ok := l.accounts[accountID]; ok {
		return a.reserved
	}
	return 0
}

func (l *Ledger) Reserve(ctx context.Context, accountID string, amount ledger.Balance) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrAccountRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.get(accountID)
	if a.free < amount {
		return ledger.ErrInsufficientBalance
	}
	a.free -= amount
	a.reserved += amount
	return nil
}

// Unreserve libera hasta amount; si hay menos reservado libera lo que haya.
func (l *Ledger) Unreserve(ctx context.Context, accountID string, amount ledger.Balance) error {
	if strings.TrimSpace(accountID) == "" {
		return ErrAccountRequired
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	a := l.get(accountID)
	if amount > a.reserved {
		amount = a.reserved
	}
	a.reserved -= amount
	a.free += amount
	return nil
}

func (l *Ledger) get(accountID string) *account {
	a, ok := l.accounts[accountID]
	if !ok {
		a = &account{free: l.opening}
		l.accounts[accountID] = a
	}
	return a
}
