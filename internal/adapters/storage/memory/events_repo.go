package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"
)

type eventRepo struct {
	mu   sync.RWMutex
	byID map[string]events.KittyEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.KittyEvent),
	}
}

func (r *eventRepo) Create(ctx context.Context, e events.KittyEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.byID[e.ID] = e
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.KittyEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.KittyEvent{}, events.ErrNotFound
	}
	return e, nil
}

func (r *eventRepo) ListByKitty(ctx context.Context, kittyID kitties.KittyID, filter events.ListFilter) ([]events.KittyEvent, error) {
	return r.list(filter, func(e events.KittyEvent) bool {
		if e.KittyID == kittyID {
			return true
		}
		// un breed también es parte del historial de los padres
		return e.Parents != nil && (e.Parents.Parent1 == kittyID || e.Parents.Parent2 == kittyID)
	}), nil
}

func (r *eventRepo) ListByAccount(ctx context.Context, account string, filter events.ListFilter) ([]events.KittyEvent, error) {
	return r.list(filter, func(e events.KittyEvent) bool {
		return e.Account == account || e.To == account
	}), nil
}

func (r *eventRepo) list(filter events.ListFilter, match func(events.KittyEvent) bool) []events.KittyEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.KittyEvent, 0)
	for _, e := range r.byID {
		if !match(e) || !filter.Matches(e) {
			continue
		}
		out = append(out, e)
	}

	// Orden por recorded_at desc (más reciente primero)
	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})

	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out
}
