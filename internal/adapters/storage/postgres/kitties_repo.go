package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"kitty-registry/internal/domain/kitties"
	"kitty-registry/internal/ports/ledger"
)

// KittiesRepo guarda el estado de kitties en Postgres. Cada Update corre en
// una transacción serializable, así dos transiciones nunca ven el mismo next_id.
type KittiesRepo struct {
	db *sql.DB
}

func NewKittiesRepo(db *sql.DB) *KittiesRepo {
	return &KittiesRepo{db: db}
}

func (r *KittiesRepo) View(ctx context.Context, fn func(kitties.State) error) error {
	return r.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (r *KittiesRepo) Update(ctx context.Context, fn func(kitties.State) error) error {
	return r.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (r *KittiesRepo) run(ctx context.Context, opts *sql.TxOptions, fn func(kitties.State) error) error {
	return inTx(ctx, r.db, opts, func(tx *sql.Tx) error {
		return fn(&kittiesState{tx: tx})
	})
}

type kittiesState struct {
	tx *sql.Tx
}

func (s *kittiesState) NextKittyID(ctx context.Context) (kitties.KittyID, error) {
	var next int64
	err := s.tx.QueryRowContext(ctx, `SELECT next_id FROM kitty_counter WHERE id = 1`).Scan(&next)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return kitties.KittyID(next), nil
}

func (s *kittiesState) SetNextKittyID(ctx context.Context, next kitties.KittyID) error {
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO kitty_counter (id, next_id) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET next_id = EXCLUDED.next_id
	`, int64(next))
	return err
}

func (s *kittiesState) Kitty(ctx context.Context, id kitties.KittyID) (kitties.Kitty, error) {
	var (
		genes            []byte
		parent1, parent2 sql.NullInt64
	)
	err := s.tx.QueryRowContext(ctx, `
		SELECT genes, parent1, parent2
		FROM kitties
		WHERE id = $1
	`, int64(id)).Scan(&genes, &parent1, &parent2)
	if errors.Is(err, sql.ErrNoRows) {
		return kitties.Kitty{}, kitties.ErrNotFound
	}
	if err != nil {
		return kitties.Kitty{}, err
	}
	if len(genes) != kitties.GenesLen {
		return kitties.Kitty{}, fmt.Errorf("kitty %d: corrupt genes (%d bytes)", id, len(genes))
	}

	k := kitties.Kitty{ID: id}
	copy(k.Genes[:], genes)
	if parent1.Valid && parent2.Valid {
		k.Parents = &kitties.Parents{
			Parent1: kitties.KittyID(parent1.Int64),
			Parent2: kitties.KittyID(parent2.Int64),
		}
	}
	return k, nil
}

func (s *kittiesState) PutKitty(ctx context.Context, k kitties.Kitty) error {
	var parent1, parent2 sql.NullInt64
	if k.Parents != nil {
		parent1 = sql.NullInt64{Int64: int64(k.Parents.Parent1), Valid: true}
		parent2 = sql.NullInt64{Int64: int64(k.Parents.Parent2), Valid: true}
	}
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO kitties (id, genes, parent1, parent2)
		VALUES ($1, $2, $3, $4)
	`, int64(k.ID), k.Genes[:], parent1, parent2)
	return err
}

func (s *kittiesState) OwnerOf(ctx context.Context, id kitties.KittyID) (string, error) {
	var owner string
	err := s.tx.QueryRowContext(ctx, `SELECT owner_id FROM kitty_owners WHERE kitty_id = $1`, int64(id)).Scan(&owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", kitties.ErrNotFound
	}
	return owner, err
}

func (s *kittiesState) Owned(ctx context.Context, account string) ([]kitties.KittyID, error) {
	rows, err := s.tx.QueryContext(ctx, `
		SELECT kitty_id
		FROM kitty_owners
		WHERE owner_id = $1
		ORDER BY position
	`, account)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]kitties.KittyID, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, kitties.KittyID(id))
	}
	return out, rows.Err()
}

// PutOwned reescribe las filas de account. Un id que ya era de otra cuenta
// se reasigna con el upsert, así el índice inverso queda en la misma fila.
func (s *kittiesState) PutOwned(ctx context.Context, account string, ids []kitties.KittyID) error {
	if _, err := s.tx.ExecContext(ctx, `DELETE FROM kitty_owners WHERE owner_id = $1`, account); err != nil {
		return err
	}
	for pos, id := range ids {
		_, err := s.tx.ExecContext(ctx, `
			INSERT INTO kitty_owners (kitty_id, owner_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (kitty_id) DO UPDATE
			SET owner_id = EXCLUDED.owner_id, position = EXCLUDED.position
		`, int64(id), account, pos)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *kittiesState) StakeOf(ctx context.Context, id kitties.KittyID) (ledger.Balance, error) {
	var amount int64
	err := s.tx.QueryRowContext(ctx, `SELECT amount FROM kitty_stakes WHERE kitty_id = $1`, int64(id)).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, kitties.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return ledger.Balance(amount), nil
}

func (s *kittiesState) PutStake(ctx context.Context, id kitties.KittyID, amount ledger.Balance) error {
	_, err := s.tx.ExecContext(ctx, `
		INSERT INTO kitty_stakes (kitty_id, amount) VALUES ($1, $2)
		ON CONFLICT (kitty_id) DO UPDATE SET amount = EXCLUDED.amount
	`, int64(id), int64(amount))
	return err
}
