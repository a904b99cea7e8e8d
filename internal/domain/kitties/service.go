package kitties

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kitty-registry/internal/platform/logger"
	"kitty-registry/internal/platform/metrics"
	"kitty-registry/internal/ports/entropy"
	"kitty-registry/internal/ports/ledger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	ErrTokenNotEnough       = errors.New("token not enough")
	ErrKittiesCountOverflow = errors.New("kitties count overflow")
	ErrInvalidKittyID       = errors.New("invalid kitty id")
	ErrExceedMaxKittyOwned  = errors.New("exceed max kitty owned")
	ErrSameKittyID          = errors.New("same kitty id")
	ErrNotOwner             = errors.New("not owner")
	ErrSameSex              = errors.New("parents have the same sex")
)

// Service ejecuta Create, Transfer y Breed. Cada transición valida todo antes de mutar
// y confirma el estado en una sola transacción del Repository.
// El host es responsable de serializar transiciones concurrentes.
type Service struct {
	repo   Repository
	stakes ledger.StakeLedger
	seeds  entropy.Source
	cfg    Config
	alloc  Allocator

	sink EventSink
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, stakes ledger.StakeLedger, seeds entropy.Source, cfg Config) *Service {
	return &Service{
		repo:   repo,
		stakes: stakes,
		seeds:  seeds,
		cfg:    cfg,
		alloc:  Allocator{Limit: cfg.MaxKittyID},
		log:    logger.Discard(),
		now:    time.Now,
	}
}

func (s *Service) WithEventSink(sink EventSink) *Service {
	s.sink = sink
	return s
}

func (s *Service) WithLogger(l logger.Logger) *Service {
	if l != nil {
		s.log = l.With(map[string]any{"component": "kitties"})
	}
	return s
}

func (s *Service) Config() Config {
	return s.cfg
}

// Create acuña un kitty nuevo para account.
func (s *Service) Create(ctx context.Context, account string) (KittyID, error) {
	start := s.now()
	account = strings.TrimSpace(account)

	var (
		id       KittyID
		reserved bool
	)
	err := s.validAccount(account)
	if err == nil {
		err = s.repo.Update(ctx, func(st State) error {
			owned, err := s.owned(ctx, st, account)
			if err != nil {
				return err
			}
			if owned.Full() {
				return ErrExceedMaxKittyOwned
			}

			next, err := st.NextKittyID(ctx)
			if err != nil {
				return fmt.Errorf("read next kitty id: %w", err)
			}
			newID, advanced, err := s.alloc.Allocate(next)
			if err != nil {
				return err
			}

			seed, err := s.seed(ctx, account, newID)
			if err != nil {
				return err
			}

			if err := s.reserve(ctx, account); err != nil {
				return err
			}
			reserved = true

			k := Kitty{ID: newID, Genes: MintGenes(seed)}
			if err := s.mint(ctx, st, account, owned, k, advanced); err != nil {
				return err
			}
			id = newID
			return nil
		})
		if err != nil && reserved {
			s.release(ctx, account, s.cfg.CreatePrice)
		}
	}

	s.observe("create", account, id, start, err)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, Event{Type: EventKittyCreated, KittyID: id, Account: account, At: s.now()})
	return id, nil
}

// Transfer mueve id de from a to. from libera el stake que tenía registrado por id
// y to reserva el precio vigente, que queda como nuevo stake del kitty.
// from == to es válido: se reserva y libera sin mover ownership.
func (s *Service) Transfer(ctx context.Context, from string, id KittyID, to string) error {
	start := s.now()
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	var (
		reserved, released bool
		held               ledger.Balance
	)
	err := s.validAccount(from)
	if err == nil {
		err = s.validAccount(to)
	}
	if err == nil {
		err = s.repo.Update(ctx, func(st State) error {
			if _, err := s.kitty(ctx, st, id); err != nil {
				return err
			}
			owner, err := st.OwnerOf(ctx, id)
			if err != nil {
				return s.lookupErr(err)
			}
			if owner != from {
				return ErrNotOwner
			}

			dest, err := s.owned(ctx, st, to)
			if err != nil {
				return err
			}
			if dest.Full() {
				return ErrExceedMaxKittyOwned
			}

			held, err = s.stakeOf(ctx, st, id)
			if err != nil {
				return err
			}

			if err := s.reserve(ctx, to); err != nil {
				return err
			}
			reserved = true

			if err := s.stakes.Unreserve(ctx, from, held); err != nil {
				return fmt.Errorf("release stake: %w", err)
			}
			released = true

			if err := st.PutStake(ctx, id, s.cfg.CreatePrice); err != nil {
				return fmt.Errorf("write stake: %w", err)
			}
			if from == to {
				return nil
			}

			src, err := s.owned(ctx, st, from)
			if err != nil {
				return err
			}
			src.Remove(id)
			if err := dest.Push(id); err != nil {
				return err
			}

			if err := st.PutOwned(ctx, from, src.IDs()); err != nil {
				return fmt.Errorf("write ownership: %w", err)
			}
			if err := st.PutOwned(ctx, to, dest.IDs()); err != nil {
				return fmt.Errorf("write ownership: %w", err)
			}
			return nil
		})
		if err != nil {
			if released {
				s.restore(ctx, from, held)
			}
			if reserved {
				s.release(ctx, to, s.cfg.CreatePrice)
			}
		}
	}

	s.observe("transfer", from, id, start, err)
	if err != nil {
		return err
	}

	s.publish(ctx, Event{Type: EventKittyTransferred, KittyID: id, Account: from, From: from, To: to, At: s.now()})
	return nil
}

// Breed cría un kitty nuevo a partir de dos padres de account.
func (s *Service) Breed(ctx context.Context, account string, parent1, parent2 KittyID) (KittyID, error) {
	start := s.now()
	account = strings.TrimSpace(account)

	var (
		id       KittyID
		reserved bool
		err      error
	)
	switch {
	case parent1 == parent2:
		err = ErrSameKittyID
	default:
		err = s.validAccount(account)
	}
	if err == nil {
		err = s.repo.Update(ctx, func(st State) error {
			k1, err := s.kitty(ctx, st, parent1)
			if err != nil {
				return err
			}
			k2, err := s.kitty(ctx, st, parent2)
			if err != nil {
				return err
			}
			for _, pid := range []KittyID{parent1, parent2} {
				owner, err := st.OwnerOf(ctx, pid)
				if err != nil {
					return s.lookupErr(err)
				}
				if owner != account {
					return ErrNotOwner
				}
			}
			if s.cfg.RequireOppositeSex && k1.Sex() == k2.Sex() {
				return ErrSameSex
			}

			owned, err := s.owned(ctx, st, account)
			if err != nil {
				return err
			}
			if owned.Full() {
				return ErrExceedMaxKittyOwned
			}

			next, err := st.NextKittyID(ctx)
			if err != nil {
				return fmt.Errorf("read next kitty id: %w", err)
			}
			newID, advanced, err := s.alloc.Allocate(next)
			if err != nil {
				return err
			}

			seed, err := s.seed(ctx, account, newID)
			if err != nil {
				return err
			}

			if err := s.reserve(ctx, account); err != nil {
				return err
			}
			reserved = true

			child := Kitty{
				ID:      newID,
				Genes:   BreedGenes(k1.Genes, k2.Genes, seed),
				Parents: &Parents{Parent1: parent1, Parent2: parent2},
			}
			if err := s.mint(ctx, st, account, owned, child, advanced); err != nil {
				return err
			}
			id = newID
			return nil
		})
		if err != nil && reserved {
			s.release(ctx, account, s.cfg.CreatePrice)
		}
	}

	s.observe("breed", account, id, start, err)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, Event{
		Type:    EventKittyBred,
		KittyID: id,
		Account: account,
		Parents: &Parents{Parent1: parent1, Parent2: parent2},
		At:      s.now(),
	})
	return id, nil
}

// NextKittyID devuelve el estado actual del contador.
func (s *Service) NextKittyID(ctx context.Context) (KittyID, error) {
	var next KittyID
	err := s.repo.View(ctx, func(st State) error {
		var err error
		next, err = st.NextKittyID(ctx)
		return err
	})
	return next, err
}

func (s *Service) GetByID(ctx context.Context, id KittyID) (Kitty, error) {
	var k Kitty
	err := s.repo.View(ctx, func(st State) error {
		var err error
		k, err = st.Kitty(ctx, id)
		return err
	})
	return k, err
}

func (s *Service) OwnerOf(ctx context.Context, id KittyID) (string, error) {
	var owner string
	err := s.repo.View(ctx, func(st State) error {
		var err error
		owner, err = st.OwnerOf(ctx, id)
		return err
	})
	return owner, err
}

// Describe devuelve el kitty y su dueño leídos en la misma transacción.
// owner es "" si el kitty no tiene dueño registrado.
func (s *Service) Describe(ctx context.Context, id KittyID) (Kitty, string, error) {
	var (
		k     Kitty
		owner string
	)
	err := s.repo.View(ctx, func(st State) error {
		var err error
		if k, err = st.Kitty(ctx, id); err != nil {
			return err
		}
		owner, err = st.OwnerOf(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return Kitty{}, "", err
	}
	return k, owner, nil
}

// ListByOwner devuelve los ids de account en orden de inserción.
func (s *Service) ListByOwner(ctx context.Context, account string) ([]KittyID, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, ErrInvalidInput
	}
	var ids []KittyID
	err := s.repo.View(ctx, func(st State) error {
		var err error
		ids, err = st.Owned(ctx, account)
		return err
	})
	if ids == nil {
		ids = []KittyID{}
	}
	return ids, err
}

// mint es la fase de commit compartida por Create y Breed. Todas las validaciones ya pasaron.
func (s *Service) mint(ctx context.Context, st State, account string, owned OwnedKitties, k Kitty, advanced KittyID) error {
	if err := owned.Push(k.ID); err != nil {
		return err
	}
	if err := st.PutKitty(ctx, k); err != nil {
		return fmt.Errorf("write kitty: %w", err)
	}
	if err := st.PutStake(ctx, k.ID, s.cfg.CreatePrice); err != nil {
		return fmt.Errorf("write stake: %w", err)
	}
	if err := st.SetNextKittyID(ctx, advanced); err != nil {
		return fmt.Errorf("write next kitty id: %w", err)
	}
	if err := st.PutOwned(ctx, account, owned.IDs()); err != nil {
		return fmt.Errorf("write ownership: %w", err)
	}
	return nil
}

func (s *Service) validAccount(account string) error {
	if account == "" {
		return ErrInvalidInput
	}
	return nil
}

func (s *Service) kitty(ctx context.Context, st State, id KittyID) (Kitty, error) {
	k, err := st.Kitty(ctx, id)
	if err != nil {
		return Kitty{}, s.lookupErr(err)
	}
	return k, nil
}

func (s *Service) lookupErr(err error) error {
	if errors.Is(err, ErrNotFound) {
		return ErrInvalidKittyID
	}
	return fmt.Errorf("read kitty: %w", err)
}

func (s *Service) owned(ctx context.Context, st State, account string) (OwnedKitties, error) {
	ids, err := st.Owned(ctx, account)
	if err != nil {
		return OwnedKitties{}, fmt.Errorf("read ownership: %w", err)
	}
	return newOwnedKitties(ids, s.cfg.MaxOwned), nil
}

func (s *Service) seed(ctx context.Context, account string, id KittyID) ([]byte, error) {
	raw, err := s.seeds.NextSeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	return mixSeed(raw, account, id), nil
}

// stakeOf devuelve el stake registrado para id. Los kitties guardados antes de
// registrar stakes por kitty caen al precio actual.
func (s *Service) stakeOf(ctx context.Context, st State, id KittyID) (ledger.Balance, error) {
	held, err := st.StakeOf(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return s.cfg.CreatePrice, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read stake: %w", err)
	}
	return held, nil
}

func (s *Service) reserve(ctx context.Context, account string) error {
	err := s.stakes.Reserve(ctx, account, s.cfg.CreatePrice)
	if errors.Is(err, ledger.ErrInsufficientBalance) {
		return ErrTokenNotEnough
	}
	if err != nil {
		return fmt.Errorf("reserve stake: %w", err)
	}
	return nil
}

// release devuelve un stake reservado durante una transición que no se confirmó.
func (s *Service) release(ctx context.Context, account string, amount ledger.Balance) {
	if err := s.stakes.Unreserve(ctx, account, amount); err != nil {
		s.log.Error("stake compensation failed", map[string]any{"account": account, "error": err.Error()})
	}
}

// restore vuelve a reservar un stake liberado durante una transferencia que no se confirmó.
func (s *Service) restore(ctx context.Context, account string, amount ledger.Balance) {
	if err := s.stakes.Reserve(ctx, account, amount); err != nil {
		s.log.Error("stake compensation failed", map[string]any{"account": account, "error": err.Error()})
	}
}

func (s *Service) publish(ctx context.Context, e Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, e); err != nil {
		s.log.Warn("event publish failed", map[string]any{"type": string(e.Type), "kitty_id": e.KittyID, "error": err.Error()})
	}
}

func (s *Service) observe(op, account string, id KittyID, start time.Time, err error) {
	result := Outcome(err)
	metrics.ObserveTransition(op, result, s.now().Sub(start))

	fields := map[string]any{"op": op, "account": account}
	if err != nil {
		fields["error"] = err.Error()
		s.log.Debug("transition rejected", fields)
		return
	}
	fields["kitty_id"] = id
	s.log.Info("transition committed", fields)
}

// Outcome traduce un error de transición a una etiqueta estable.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTokenNotEnough):
		return "token_not_enough"
	case errors.Is(err, ErrKittiesCountOverflow):
		return "kitties_count_overflow"
	case errors.Is(err, ErrInvalidKittyID):
		return "invalid_kitty_id"
	case errors.Is(err, ErrExceedMaxKittyOwned):
		return "exceed_max_kitty_owned"
	case errors.Is(err, ErrSameKittyID):
		return "same_kitty_id"
	case errors.Is(err, ErrNotOwner):
		return "not_owner"
	case errors.Is(err, ErrSameSex):
		return "same_sex"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "error"
	}
}
