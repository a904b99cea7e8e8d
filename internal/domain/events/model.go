package events

import (
	"time"

	"kitty-registry/internal/domain/kitties"
)

// KittyEvent es el registro persistido de una mutación confirmada.
type KittyEvent struct {
	ID      string
	KittyID kitties.KittyID

	Type kitties.EventType

	Account string
	From    string
	To      string

	Parents *kitties.Parents

	RecordedAt time.Time
}
