package events

import (
	"context"
	"errors"
	"strings"
	"time"

	"kitty-registry/internal/domain/kitties"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Publish implementa kitties.EventSink.
func (s *Service) Publish(ctx context.Context, e kitties.Event) error {
	if e.Type == "" || strings.TrimSpace(e.Account) == "" {
		return ErrInvalidInput
	}

	recorded := e.At
	if recorded.IsZero() {
		recorded = s.now()
	}

	var parents *kitties.Parents
	if e.Parents != nil {
		p := *e.Parents
		parents = &p
	}

	return s.repo.Create(ctx, KittyEvent{
		ID:         uuid.NewString(),
		KittyID:    e.KittyID,
		Type:       e.Type,
		Account:    strings.TrimSpace(e.Account),
		From:       e.From,
		To:         e.To,
		Parents:    parents,
		RecordedAt: recorded,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (KittyEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return KittyEvent{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByKitty(ctx context.Context, kittyID kitties.KittyID, filter ListFilter) ([]KittyEvent, error) {
	return s.repo.ListByKitty(ctx, kittyID, filter)
}

func (s *Service) ListByAccount(ctx context.Context, account string, filter ListFilter) ([]KittyEvent, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByAccount(ctx, account, filter)
}
