package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

const eventColumns = `id, kitty_id, type, account, from_account, to_account, parent1, parent2, recorded_at`

func (r *EventsRepo) Create(ctx context.Context, e events.KittyEvent) error {
	var parent1, parent2 sql.NullInt64
	if e.Parents != nil {
		parent1 = sql.NullInt64{Int64: int64(e.Parents.Parent1), Valid: true}
		parent2 = sql.NullInt64{Int64: int64(e.Parents.Parent2), Valid: true}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kitty_events (`+eventColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		int64(e.KittyID),
		string(e.Type),
		e.Account,
		e.From,
		e.To,
		parent1,
		parent2,
		e.RecordedAt,
	)
	return err
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.KittyEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.KittyEvent{}, events.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM kitty_events WHERE id = $1`, id)
	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return events.KittyEvent{}, events.ErrNotFound
		}
		return events.KittyEvent{}, err
	}
	return e, nil
}

func (r *EventsRepo) ListByKitty(ctx context.Context, kittyID kitties.KittyID, filter events.ListFilter) ([]events.KittyEvent, error) {
	// un breed también es parte del historial de los padres
	return r.list(ctx, `(kitty_id = $1 OR parent1 = $1 OR parent2 = $1)`, int64(kittyID), filter)
}

func (r *EventsRepo) ListByAccount(ctx context.Context, account string, filter events.ListFilter) ([]events.KittyEvent, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, nil
	}
	return r.list(ctx, `(account = $1 OR to_account = $1)`, account, filter)
}

func (r *EventsRepo) list(ctx context.Context, where string, key any, filter events.ListFilter) ([]events.KittyEvent, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + eventColumns + ` FROM kitty_events WHERE ` + where)

	args := []any{key}
	argN := 2

	if len(filter.Types) > 0 {
		placeholders := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
			args = append(args, string(t))
			argN++
		}
		sb.WriteString(" AND type IN (" + strings.Join(placeholders, ",") + ")")
	}

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND recorded_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND recorded_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY recorded_at DESC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
	args = append(args, filter.EffectiveLimit())

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.KittyEvent, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (events.KittyEvent, error) {
	var (
		e                events.KittyEvent
		kittyID          int64
		typ              string
		parent1, parent2 sql.NullInt64
	)
	if err := s.Scan(
		&e.ID,
		&kittyID,
		&typ,
		&e.Account,
		&e.From,
		&e.To,
		&parent1,
		&parent2,
		&e.RecordedAt,
	); err != nil {
		return events.KittyEvent{}, err
	}

	e.KittyID = kitties.KittyID(kittyID)
	e.Type = kitties.EventType(typ)
	if parent1.Valid && parent2.Valid {
		e.Parents = &kitties.Parents{
			Parent1: kitties.KittyID(parent1.Int64),
			Parent2: kitties.KittyID(parent2.Int64),
		}
	}
	return e, nil
}
