package kitties

import (
	"errors"
	"math"
	"testing"
)

func TestAllocator_AdvancesByOne(t *testing.T) {
	a := Allocator{Limit: 8}

	next := KittyID(0)
	for want := KittyID(0); want < 8; want++ {
		id, advanced, err := a.Allocate(next)
		if err != nil {
			t.Fatalf("allocate %d: %v", want, err)
		}
		if id != want || advanced != want+1 {
			t.Fatalf("expected id=%d next=%d, got id=%d next=%d", want, want+1, id, advanced)
		}
		next = advanced
	}

	id, advanced, err := a.Allocate(next)
	if !errors.Is(err, ErrKittiesCountOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if id != 0 || advanced != next {
		t.Fatalf("overflow must not consume an id, got id=%d next=%d", id, advanced)
	}
}

func TestAllocator_FullRange(t *testing.T) {
	a := Allocator{Limit: math.MaxUint32}

	id, advanced, err := a.Allocate(math.MaxUint32 - 1)
	if err != nil || id != math.MaxUint32-1 || advanced != math.MaxUint32 {
		t.Fatalf("last id should be allocatable, got id=%d next=%d err=%v", id, advanced, err)
	}
	if _, _, err := a.Allocate(math.MaxUint32); !errors.Is(err, ErrKittiesCountOverflow) {
		t.Fatalf("expected overflow at max, got %v", err)
	}
}

func TestOwnedKitties_BoundedAndOrdered(t *testing.T) {
	o := newOwnedKitties([]KittyID{4, 7}, 3)

	if err := o.Push(9); err != nil {
		t.Fatalf("push: %v", err)
	}
	if err := o.Push(10); !errors.Is(err, ErrExceedMaxKittyOwned) {
		t.Fatalf("expected ExceedMaxKittyOwned, got %v", err)
	}
	if o.Len() != 3 {
		t.Fatalf("rejected push must not truncate or grow, len=%d", o.Len())
	}

	if !o.Remove(7) || o.Remove(7) {
		t.Fatalf("remove should succeed once")
	}
	got := o.IDs()
	if len(got) != 2 || got[0] != 4 || got[1] != 9 {
		t.Fatalf("expected [4 9], got %v", got)
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID(" 42 "); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d err=%v", id, err)
	}
	if _, err := ParseID("-1"); !errors.Is(err, ErrInvalidKittyID) {
		t.Fatalf("expected ErrInvalidKittyID, got %v", err)
	}
	if _, err := ParseID("4294967296"); !errors.Is(err, ErrInvalidKittyID) {
		t.Fatalf("expected ErrInvalidKittyID for out of range, got %v", err)
	}
}
