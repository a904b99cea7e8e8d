package events

import (
	"context"
	"errors"
	"time"

	"kitty-registry/internal/domain/kitties"
)

// ErrNotFound lo devuelven los repos cuando un evento no existe.
var ErrNotFound = errors.New("event not found")

type Repository interface {
	Create(ctx context.Context, e KittyEvent) error
	GetByID(ctx context.Context, id string) (KittyEvent, error)
	ListByKitty(ctx context.Context, kittyID kitties.KittyID, filter ListFilter) ([]KittyEvent, error)
	ListByAccount(ctx context.Context, account string, filter ListFilter) ([]KittyEvent, error)
}

type ListFilter struct {
	Types []kitties.EventType
	From  *time.Time
	To    *time.Time
	Limit int
}

// Matches aplica tipo y rango de fechas. Los repos lo usan para no duplicar reglas.
func (f ListFilter) Matches(e KittyEvent) bool {
	if len(f.Types) > 0 {
		ok := false
		for _, t := range f.Types {
			if e.Type == t {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if f.From != nil && e.RecordedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && e.RecordedAt.After(*f.To) {
		return false
	}
	return true
}

// EffectiveLimit devuelve el límite con default 50.
func (f ListFilter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return 50
	}
	return f.Limit
}
