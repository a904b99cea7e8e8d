package memory

import (
	"context"
	"errors"
	"sync"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/ports/ledger"
)

var ErrReadOnly = errors.New("read-only transaction")

type kittiesData struct {
	nextID kitties.KittyID
	byID   map[kitties.KittyID]kitties.Kitty
	owner  map[kitties.KittyID]string
	owned  map[string][]kitties.KittyID
	stake  map[kitties.KittyID]ledger.Balance
}

func newKittiesData() kittiesData {
	return kittiesData{
		byID:  make(map[kitties.KittyID]kitties.Kitty),
		owner: make(map[kitties.KittyID]string),
		owned: make(map[string][]kitties.KittyID),
		stake: make(map[kitties.KittyID]ledger.Balance),
	}
}

// kittiesRepo serializa Update con un lock de escritura; las escrituras de la
// transacción se acumulan en un overlay y solo se aplican si fn no falla.
// fn corre con el lock tomado, incluidas las llamadas al ledger: con el ledger
// remoto cada View espera detrás de ese round-trip. Pensado para dev y tests.
type kittiesRepo struct {
	mu   sync.RWMutex
	data kittiesData
}

func NewKittiesRepo() kitties.Repository {
	return &kittiesRepo{
		data: newKittiesData(),
	}
}

func (r *kittiesRepo) View(ctx context.Context, fn func(kitties.State) error) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return fn(&kittiesTx{base: &r.data, readOnly: true})
}

func (r *kittiesRepo) Update(ctx context.Context, fn func(kitties.State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := &kittiesTx{
		base:  &r.data,
		kits:  make(map[kitties.KittyID]kitties.Kitty),
		owner: make(map[kitties.KittyID]string),
		owned: make(map[string][]kitties.KittyID),
		stake: make(map[kitties.KittyID]ledger.Balance),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

type kittiesTx struct {
	base     *kittiesData
	readOnly bool

	nextID *kitties.KittyID
	kits   map[kitties.KittyID]kitties.Kitty
	owner  map[kitties.KittyID]string
	owned  map[string][]kitties.KittyID
	stake  map[kitties.KittyID]ledger.Balance
}

func (t *kittiesTx) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	if t.nextID != nil {
		return *t.nextID, nil
	}
	return t.base.nextID, nil
}

func (t *kittiesTx) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.nextID = &next
	return nil
}

func (t *kittiesTx) Kitty(ctx context.Context, id kitties.KittyID) (kitties.Kitty, error) {
	if k, ok := t.kits[id]; ok {
		return copyKitty(k), nil
	}
	k, ok := t.base.byID[id]
	if !ok {
		return kitties.Kitty{}, kitties.ErrNotFound
	}
	return copyKitty(k), nil
}

func (t *kittiesTx) PutKitty(ctx context.Context, k kitties.Kitty) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.kits[k.ID] = copyKitty(k)
	return nil
}

func (t *kittiesTx) OwnerOf(ctx context.Context, id kitties.KittyID) (string, error) {
	if o, ok := t.owner[id]; ok {
		return o, nil
	}
	o, ok := t.base.owner[id]
	if !ok {
		return "", kitties.ErrNotFound
	}
	return o, nil
}

func (t *kittiesTx) Owned(ctx context.Context, account string) ([]kitties.KittyID, error) {
	ids, ok := t.owned[account]
	if !ok {
		ids = t.base.owned[account]
	}
	out := make([]kitties.KittyID, len(ids))
	copy(out, ids)
	return out, nil
}

func (t *kittiesTx) PutOwned(ctx context.Context, account string, ids []kitties.KittyID) error {
	if t.readOnly {
		return ErrReadOnly
	}
	cp := make([]kitties.KittyID, len(ids))
	copy(cp, ids)
	t.owned[account] = cp
	for _, id := range cp {
		t.owner[id] = account
	}
	return nil
}

func (t *kittiesTx) StakeOf(ctx context.Context, id kitties.KittyID) (ledger.Balance, error) {
	if v, ok := t.stake[id]; ok {
		return v, nil
	}
	v, ok := t.base.stake[id]
	if !ok {
		return 0, kitties.ErrNotFound
	}
	return v, nil
}

func (t *kittiesTx) PutStake(ctx context.Context, id kitties.KittyID, amount ledger.Balance) error {
	if t.readOnly {
		return ErrReadOnly
	}
	t.stake[id] = amount
	return nil
}

func (t *kittiesTx) apply() {
	if t.nextID != nil {
		t.base.nextID = *t.nextID
	}
	for id, k := range t.kits {
		t.base.byID[id] = k
	}
	for account, ids := range t.owned {
		if len(ids) == 0 {
			delete(t.base.owned, account)
			continue
		}
		t.base.owned[account] = ids
	}
	for id, account := range t.owner {
		t.base.owner[id] = account
	}
	for id, amount := range t.stake {
		t.base.stake[id] = amount
	}
}

func copyKitty(k kitties.Kitty) kitties.Kitty {
	if k.Parents != nil {
		p := *k.Parents
		k.Parents = &p
	}
	return k
}
