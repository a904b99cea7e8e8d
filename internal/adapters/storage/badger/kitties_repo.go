package badger

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/ports/ledger"

	"github.com/dgraph-io/badger/v4"
)

// Layout de keys:
//
//	kitty/next               -> uint32 big-endian
//	kitty/k/<id be32>        -> kittyRecord JSON
//	kitty/owner/<id be32>    -> account
//	kitty/owned/<account>    -> []uint32 JSON, orden de inserción
//	kitty/stake/<id be32>    -> uint64 big-endian, stake del dueño actual
var (
	keyNext        = []byte("kitty/next")
	prefixKitty    = []byte("kitty/k/")
	prefixOwner    = []byte("kitty/owner/")
	prefixOwned    = []byte("kitty/owned/")
	prefixStake    = []byte("kitty/stake/")
	errCorruptNext = errors.New("corrupt next kitty id")
)

type kittyRecord struct {
	Genes   string           `json:"genes"`
	Parents *kitties.Parents `json:"parents,omitempty"`
}

// KittiesRepo guarda el estado en badger. Update corre en una sola txn;
// si otra txn escribió las mismas keys el commit devuelve badger.ErrConflict.
type KittiesRepo struct {
	db *badger.DB
}

func NewKittiesRepo(db *badger.DB) *KittiesRepo {
	return &KittiesRepo{db: db}
}

func (r *KittiesRepo) View(ctx context.Context, fn func(kitties.State) error) error {
	return r.db.View(func(txn *badger.Txn) error {
		return fn(&kittiesState{txn: txn})
	})
}

func (r *KittiesRepo) Update(ctx context.Context, fn func(kitties.State) error) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return fn(&kittiesState{txn: txn})
	})
}

type kittiesState struct {
	txn *badger.Txn
}

func idKey(prefix []byte, id kitties.KittyID) []byte {
	k := make([]byte, len(prefix)+4)
	copy(k, prefix)
	binary.BigEndian.PutUint32(k[len(prefix):], uint32(id))
	return k
}

func ownedKey(account string) []byte {
	return append(append([]byte{}, prefixOwned...), account...)
}

// get devuelve (nil, nil) si la key no existe.
func (s *kittiesState) get(key []byte) ([]byte, error) {
	item, err := s.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item.ValueCopy(nil)
}

func (s *kittiesState) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	v, err := s.get(keyNext)
	if err != nil || v == nil {
		return 0, err
	}
	if len(v) != 4 {
		return 0, errCorruptNext
	}
	return kitties.KittyID(binary.BigEndian.Uint32(v)), nil
}

func (s *kittiesState) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	v := make([]byte, 4)
	binary.BigEndian.PutUint32(v, uint32(next))
	return s.txn.Set(keyNext, v)
}

func (s *kittiesState) Kitty(ctx context.Context, id kitties.KittyID) (kitties.Kitty, error) {
	v, err := s.get(idKey(prefixKitty, id))
	if err != nil {
		return kitties.Kitty{}, err
	}
	if v == nil {
		return kitties.Kitty{}, kitties.ErrNotFound
	}

	var rec kittyRecord
	if err := json.Unmarshal(v, &rec); err != nil {
		return kitties.Kitty{}, fmt.Errorf("decode kitty %d: %w", id, err)
	}
	genes, err := kitties.ParseGenes(rec.Genes)
	if err != nil {
		return kitties.Kitty{}, fmt.Errorf("decode kitty %d: %w", id, err)
	}
	return kitties.Kitty{ID: id, Genes: genes, Parents: rec.Parents}, nil
}

func (s *kittiesState) PutKitty(ctx context.Context, k kitties.Kitty) error {
	v, err := json.Marshal(kittyRecord{Genes: k.Genes.String(), Parents: k.Parents})
	if err != nil {
		return err
	}
	return s.txn.Set(idKey(prefixKitty, k.ID), v)
}

func (s *kittiesState) OwnerOf(ctx context.Context, id kitties.KittyID) (string, error) {
	v, err := s.get(idKey(prefixOwner, id))
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", kitties.ErrNotFound
	}
	return string(v), nil
}

func (s *kittiesState) Owned(ctx context.Context, account string) ([]kitties.KittyID, error) {
	v, err := s.get(ownedKey(account))
	if err != nil {
		return nil, err
	}
	out := make([]kitties.KittyID, 0)
	if v == nil {
		return out, nil
	}
	if err := json.Unmarshal(v, &out); err != nil {
		return nil, fmt.Errorf("decode owned %s: %w", account, err)
	}
	return out, nil
}

func (s *kittiesState) PutOwned(ctx context.Context, account string, ids []kitties.KittyID) error {
	if len(ids) == 0 {
		return s.txn.Delete(ownedKey(account))
	}
	v, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	if err := s.txn.Set(ownedKey(account), v); err != nil {
		return err
	}
	for _, id := range ids {
		if err := s.txn.Set(idKey(prefixOwner, id), []byte(account)); err != nil {
			return err
		}
	}
	return nil
}

func (s *kittiesState) StakeOf(ctx context.Context, id kitties.KittyID) (ledger.Balance, error) {
	v, err := s.get(idKey(prefixStake, id))
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, kitties.ErrNotFound
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("kitty %d: corrupt stake", id)
	}
	return ledger.Balance(binary.BigEndian.Uint64(v)), nil
}

func (s *kittiesState) PutStake(ctx context.Context, id kitties.KittyID, amount ledger.Balance) error {
	return s.txn.Set(idKey(prefixStake, id), binary.BigEndian.AppendUint64(nil, uint64(amount)))
}
