package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// UserRepository stores registered users keyed by email. Implementations must
// be safe for concurrent use and return ErrEmailTaken on duplicates and
// ErrNotFound on misses.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// RunRepository keeps the history of campaign build requests.
type RunRepository interface {
	SaveRun(ctx context.Context, run domain.CampaignRun) error
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
	ListRuns(ctx context.Context, limit int) ([]domain.CampaignRun, error)
}
