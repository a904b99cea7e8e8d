package kitties

import (
	"context"

	"kitty-registry/internal/ports/ledger"
)

// State es la vista transaccional sobre AssetStore, OwnershipIndex y el contador de ids.
// Las lecturas ven las escrituras ya hechas dentro de la misma transacción.
type State interface {
	NextKittyID(ctx context.Context) (KittyID, error)
	SetNextKittyID(ctx context.Context, next KittyID) error

	// Kitty devuelve ErrNotFound si el id no existe.
	Kitty(ctx context.Context, id KittyID) (Kitty, error)
	PutKitty(ctx context.Context, k Kitty) error

	// OwnerOf devuelve ErrNotFound si el id no tiene dueño.
	OwnerOf(ctx context.Context, id KittyID) (string, error)
	// Owned devuelve los ids de la cuenta en orden de inserción.
	Owned(ctx context.Context, account string) ([]KittyID, error)
	// PutOwned reescribe la lista de la cuenta y apunta el índice inverso de cada id a ella.
	PutOwned(ctx context.Context, account string, ids []KittyID) error

	// StakeOf devuelve lo que el dueño actual tiene reservado por id.
	// ErrNotFound si nunca se registró.
	StakeOf(ctx context.Context, id KittyID) (ledger.Balance, error)
	PutStake(ctx context.Context, id KittyID, amount ledger.Balance) error
}

type Repository interface {
	// View ejecuta fn en modo lectura.
	View(ctx context.Context, fn func(State) error) error
	// Update confirma lo escrito por fn solo si fn devuelve nil.
	Update(ctx context.Context, fn func(State) error) error
}
