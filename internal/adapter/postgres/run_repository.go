package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.RunRepository = (*RunRepository)(nil)

// RunRepository implements port.RunRepository. Step results are stored as a
// jsonb array next to the request fields.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository returns a repository backed by pool.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

const (
	runColumns       = `id, campaign_id, customer_id, campaign_name, url, budget, days, complete, error, responses, created_at`
	runSelectColumns = `id::text, campaign_id, customer_id, campaign_name, url, budget, days, complete, error, responses, created_at`
)

// SaveRun upserts run by id.
func (r *RunRepository) SaveRun(ctx context.Context, run domain.CampaignRun) error {
	responses, err := json.Marshal(run.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
        INSERT INTO campaign_runs (`+runColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (id) DO UPDATE SET
            campaign_name = EXCLUDED.campaign_name,
            complete      = EXCLUDED.complete,
            error         = EXCLUDED.error,
            responses     = EXCLUDED.responses`,
		run.ID, run.CampaignID, run.CustomerID, run.CampaignName, run.URL,
		run.Budget, run.Days, run.Complete, run.Error, responses, run.CreatedAt)
	return err
}

// GetRun returns the run with id. Ids that are not UUIDs are never found.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, port.ErrNotFound
	}
	rows, err := r.pool.Query(ctx, `SELECT `+runSelectColumns+` FROM campaign_runs WHERE id = $1`, uid)
	if err != nil {
		return nil, err
	}
	run, err := pgx.CollectExactlyOneRow(rows, scanRun)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRuns returns at most limit runs, newest first. A limit of zero or less
// returns every run.
func (r *RunRepository) ListRuns(ctx context.Context, limit int) ([]domain.CampaignRun, error) {
	query := `SELECT ` + runSelectColumns + ` FROM campaign_runs ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRun)
}

func scanRun(row pgx.CollectableRow) (domain.CampaignRun, error) {
	var (
		run       domain.CampaignRun
		responses []byte
	)
	err := row.Scan(&run.ID, &run.CampaignID, &run.CustomerID, &run.CampaignName, &run.URL,
		&run.Budget, &run.Days, &run.Complete, &run.Error, &responses, &run.CreatedAt)
	if err != nil {
		return run, err
	}
	if len(responses) > 0 {
		if err = json.Unmarshal(responses, &run.Responses); err != nil {
			return run, fmt.Errorf("decode responses: %w", err)
		}
	}
	return run, nil
}
