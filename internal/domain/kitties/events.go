package kitties

import (
	"context"
	"time"
)

type EventType string

const (
	EventKittyCreated     EventType = "KITTY_CREATED"
	EventKittyTransferred EventType = "KITTY_TRANSFERRED"
	EventKittyBred        EventType = "KITTY_BRED"
)

// Event describe una mutación ya confirmada.
type Event struct {
	Type    EventType
	KittyID KittyID
	Account string // quien ejecutó la transición

	From string // solo transfer
	To   string // solo transfer

	Parents *Parents // solo breed
	At      time.Time
}

// EventSink recibe mutaciones confirmadas. Un error del sink no revierte nada.
type EventSink interface {
	Publish(ctx context.Context, e Event) error
}
