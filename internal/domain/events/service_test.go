package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "kitty-registry/internal/adapters/storage/memory"
	"kitty-registry/internal/domain/events"
	"kitty-registry/internal/domain/kitties"
)

func TestPublish_PersistsAndLists(t *testing.T) {
	ctx := context.Background()
	svc := events.NewService(mem.NewEventRepo())
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	must := func(e kitties.Event) {
		t.Helper()
		if err := svc.Publish(ctx, e); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	must(kitties.Event{Type: kitties.EventKittyCreated, KittyID: 0, Account: "alice", At: base})
	must(kitties.Event{Type: kitties.EventKittyCreated, KittyID: 1, Account: "alice", At: base.Add(time.Second)})
	must(kitties.Event{
		Type: kitties.EventKittyBred, KittyID: 2, Account: "alice",
		Parents: &kitties.Parents{Parent1: 0, Parent2: 1}, At: base.Add(2 * time.Second),
	})
	must(kitties.Event{
		Type: kitties.EventKittyTransferred, KittyID: 1, Account: "alice", From: "alice", To: "bob",
		At: base.Add(3 * time.Second),
	})

	items, err := svc.ListByKitty(ctx, 1, events.ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 events for kitty 1, got %d", len(items))
	}
	if items[0].Type != kitties.EventKittyTransferred || items[2].Type != kitties.EventKittyCreated {
		t.Fatalf("expected newest first, got %s ... %s", items[0].Type, items[2].Type)
	}
	if items[0].ID == "" {
		t.Fatalf("expected generated id")
	}

	got, err := svc.GetByID(ctx, items[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Parents == nil || got.Parents.Parent2 != 1 {
		t.Fatalf("expected breed parents, got %+v", got.Parents)
	}

	bobs, err := svc.ListByAccount(ctx, "bob", events.ListFilter{})
	if err != nil {
		t.Fatalf("list by account: %v", err)
	}
	if len(bobs) != 1 || bobs[0].To != "bob" {
		t.Fatalf("expected bob to see the incoming transfer, got %+v", bobs)
	}

	from := base.Add(time.Second)
	ranged, err := svc.ListByAccount(ctx, "alice", events.ListFilter{
		Types: []kitties.EventType{kitties.EventKittyCreated},
		From:  &from,
		Limit: 10,
	})
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(ranged) != 1 || ranged[0].KittyID != 1 {
		t.Fatalf("expected only the second creation, got %+v", ranged)
	}
}

func TestPublish_RejectsIncompleteEvents(t *testing.T) {
	svc := events.NewService(mem.NewEventRepo())

	err := svc.Publish(context.Background(), kitties.Event{Type: kitties.EventKittyCreated})
	if !errors.Is(err, events.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.ListByAccount(context.Background(), " ", events.ListFilter{}); !errors.Is(err, events.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetByID_MissingIsNotFound(t *testing.T) {
	svc := events.NewService(mem.NewEventRepo())

	if _, err := svc.GetByID(context.Background(), "nope"); !errors.Is(err, events.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
