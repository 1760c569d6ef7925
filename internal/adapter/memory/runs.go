package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.RunRepository = (*RunRepository)(nil)

// RunRepository implements port.RunRepository in process memory.
type RunRepository struct {
	mu   sync.RWMutex
	runs map[string]domain.CampaignRun
}

// NewRunRepository returns an empty repository.
func NewRunRepository() *RunRepository {
	return &RunRepository{runs: make(map[string]domain.CampaignRun)}
}

// SaveRun inserts run or replaces the run with the same id.
func (r *RunRepository) SaveRun(_ context.Context, run domain.CampaignRun) error {
	r.mu.Lock()
	r.runs[run.ID] = run.Clone()
	r.mu.Unlock()
	return nil
}

// GetRun returns a copy of the stored run or port.ErrNotFound.
func (r *RunRepository) GetRun(_ context.Context, id string) (*domain.CampaignRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	run = run.Clone()
	return &run, nil
}

// ListRuns returns at most limit runs, newest first. A limit of zero or less
// returns every run.
func (r *RunRepository) ListRuns(_ context.Context, limit int) ([]domain.CampaignRun, error) {
	r.mu.RLock()
	out := make([]domain.CampaignRun, 0, len(r.runs))
	for _, run := range r.runs {
		out = append(out, run.Clone())
	}
	r.mu.RUnlock()

	slices.SortFunc(out, func(a, b domain.CampaignRun) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

