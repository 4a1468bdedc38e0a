package repository

import (
	"context"
	"time"

	"github.com/vindursweden/kalender/internal/domain"
)

// CompletionRepo persists which events have been marked done. Keys are
// the deterministic event IDs, so completions survive re-expansion.
type CompletionRepo interface {
	MarkDone(ctx context.Context, eventID string, date time.Time, completedAt time.Time) error
	Completions(ctx context.Context, date time.Time) (map[string]time.Time, error)
}

// OverrideRepo persists the sparse override layer for expanded events.
type OverrideRepo interface {
	Get(ctx context.Context, date time.Time) (domain.Overrides, error)
	Put(ctx context.Context, eventID string, date time.Time, patch domain.Override) error
	Clear(ctx context.Context, date time.Time) error
}

// ManualEventRepo persists ad-hoc events created outside the templates.
type ManualEventRepo interface {
	Create(ctx context.Context, event domain.Event) error
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListByDate(ctx context.Context, date time.Time) ([]domain.Event, error)
}
