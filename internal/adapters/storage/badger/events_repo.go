package badger

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"

	"github.com/dgraph-io/badger/v4"
)

var prefixEvent = []byte("event/")

// EventsRepo guarda un evento por key. Los listados recorren el prefijo y
// filtran en memoria; el historial de un registry es chico.
type EventsRepo struct {
	db *badger.DB
}

func NewEventsRepo(db *badger.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func eventKey(id string) []byte {
	return append(append([]byte{}, prefixEvent...), id...)
}

func (r *EventsRepo) Create(ctx context.Context, e events.KittyEvent) error {
	if e.ID == "" {
		return errors.New("event id required")
	}
	v, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(eventKey(e.ID)); err == nil {
			return errors.New("event already exists")
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(eventKey(e.ID), v)
	})
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.KittyEvent, error) {
	var e events.KittyEvent
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(eventKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return events.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &e)
		})
	})
	return e, err
}

func (r *EventsRepo) ListByKitty(ctx context.Context, kittyID kitties.KittyID, filter events.ListFilter) ([]events.KittyEvent, error) {
	return r.list(filter, func(e events.KittyEvent) bool {
		if e.KittyID == kittyID {
			return true
		}
		return e.Parents != nil && (e.Parents.Parent1 == kittyID || e.Parents.Parent2 == kittyID)
	})
}

func (r *EventsRepo) ListByAccount(ctx context.Context, account string, filter events.ListFilter) ([]events.KittyEvent, error) {
	return r.list(filter, func(e events.KittyEvent) bool {
		return e.Account == account || e.To == account
	})
}

func (r *EventsRepo) list(filter events.ListFilter, match func(events.KittyEvent) bool) ([]events.KittyEvent, error) {
	out := make([]events.KittyEvent, 0)
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefixEvent
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var e events.KittyEvent
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return err
			}
			if match(e) && filter.Matches(e) {
				out = append(out, e)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
