package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// CampaignUseCase implements port.CampaignUseCase. Every ExecuteQueries call
// owns a fresh session that is dropped when the call returns; only the
// resulting CampaignRun is stored.
type CampaignUseCase struct {
	agent      *Agent
	ads        port.AdsService
	recommend  port.Recommender
	runs       port.RunRepository
	customerID string
	logger     *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewCampaignUseCase reuses the agent's ads and recommender dependencies.
func NewCampaignUseCase(agent *Agent, runs port.RunRepository, customerID string, logger *slog.Logger) *CampaignUseCase {
	return &CampaignUseCase{
		agent:      agent,
		ads:        agent.deps.Ads,
		recommend:  agent.deps.Recommender,
		runs:       runs,
		customerID: customerID,
		logger:     logger,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// ExecuteQueries runs a new session from budgeting to the terminal state,
// feeding the budget sentence, the campaign sentence and then the target
// URL as inputs. The terminal state is invoked once more so the last entry
// always reports it. A clarifying question ends the run early.
func (u *CampaignUseCase) ExecuteQueries(ctx context.Context, req port.CampaignRequest) (*domain.CampaignRun, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	started := u.now()
	name := fmt.Sprintf("%s-%d", req.CampaignID, started.Unix())
	session := domain.NewSession(u.customerID, req.URL)
	session.CampaignName = name

	run := domain.CampaignRun{
		ID:           u.newID(),
		CampaignID:   req.CampaignID,
		CustomerID:   u.customerID,
		CampaignName: name,
		URL:          req.URL,
		Budget:       req.Budget,
		Days:         req.Days,
		CreatedAt:    started.UTC(),
		Responses:    make([]domain.StepResult, 0, len(domain.States)),
	}

	inputs := []string{
		fmt.Sprintf("i have %s dollar budget for campaign", req.Budget),
		fmt.Sprintf("for %s days and id will be %s", req.Days, name),
	}

	var (
		runErr  error
		elapsed = -1.0
	)
	for i := 0; i <= len(domain.States); i++ {
		input := req.URL
		if i < len(inputs) {
			input = inputs[i]
		}

		step := session.State
		runErr = u.agent.Run(ctx, session, input)
		if runErr != nil {
			break
		}

		elapsed = nextElapsed(elapsed, u.now().Sub(started))
		result := domain.StepResult{
			Step:     step,
			State:    session.State,
			Response: session.Response,
			Duration: elapsed,
		}
		if step == domain.StateAudienceTargeting {
			result.AudienceCriteria = session.AudienceCriteria
		}
		run.Responses = append(run.Responses, result)

		if step.IsTerminal() {
			run.Complete = true
			break
		}
		if session.State == step {
			break
		}
	}
	run.CampaignName = session.CampaignName
	if runErr != nil {
		run.Error = runErr.Error()
	}

	// The run is recorded even when the request was cancelled.
	if err := u.runs.SaveRun(context.WithoutCancel(ctx), run); err != nil {
		u.logger.Error("save campaign run", slog.String("run_id", run.ID), slog.Any("error", err))
		if runErr == nil {
			return nil, fmt.Errorf("save run: %w", err)
		}
	}
	if runErr != nil {
		return &run, runErr
	}
	return &run, nil
}

// nextElapsed converts d to seconds and keeps the sequence strictly
// increasing even when the clock did not move between two steps.
func nextElapsed(prev float64, d time.Duration) float64 {
	v := max(d.Seconds(), 0)
	if v <= prev {
		v = math.Nextafter(prev, math.Inf(1))
	}
	return v
}

func validateRequest(req port.CampaignRequest) error {
	if strings.TrimSpace(req.CampaignID) == "" {
		return fmt.Errorf("%w: campaignId is required", port.ErrInvalidRequest)
	}
	if strings.TrimSpace(req.Budget) == "" || strings.TrimSpace(req.Days) == "" {
		return fmt.Errorf("%w: budget and days are required", port.ErrInvalidRequest)
	}
	return validateURL(req.URL)
}

func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: url must be an absolute http(s) URL", port.ErrInvalidRequest)
	}
	return nil
}

// ApplyAudienceExclusions recommends audience criteria for pageURL and
// applies them to the campaign identified by customerID and campaignID.
func (u *CampaignUseCase) ApplyAudienceExclusions(ctx context.Context, customerID, campaignID, pageURL string) (*port.AudienceResult, error) {
	if !isNumericID(customerID) || !isNumericID(campaignID) {
		return nil, fmt.Errorf("%w: customer and campaign ids must be numeric", port.ErrInvalidRequest)
	}
	if err := validateURL(pageURL); err != nil {
		return nil, err
	}
	criteria, err := u.recommend.RecommendAudience(ctx, []string{pageURL})
	if err != nil {
		return nil, fmt.Errorf("recommend audience: %w", err)
	}
	customerID = strings.ReplaceAll(customerID, "-", "")
	campaign := fmt.Sprintf("customers/%s/campaigns/%s", customerID, campaignID)
	return u.agent.applyAudience(ctx, customerID, campaign, *criteria)
}

// Overview reports status and metrics for one campaign.
func (u *CampaignUseCase) Overview(ctx context.Context, customerID, campaignID string) (*domain.CampaignOverview, error) {
	if !isNumericID(customerID) {
		return nil, fmt.Errorf("%w: customer id must be numeric", port.ErrInvalidRequest)
	}
	return u.ads.CampaignOverview(ctx, customerID, campaignID)
}

// ListRuns returns stored runs, newest first.
func (u *CampaignUseCase) ListRuns(ctx context.Context, limit int) ([]domain.CampaignRun, error) {
	return u.runs.ListRuns(ctx, limit)
}

// GetRun returns one stored run or port.ErrNotFound.
func (u *CampaignUseCase) GetRun(ctx context.Context, id string) (*domain.CampaignRun, error) {
	run, err := u.runs.GetRun(ctx, id)
	if err != nil && !errors.Is(err, port.ErrNotFound) {
		return nil, fmt.Errorf("get run %s: %w", id, err)
	}
	return run, err
}

func isNumericID(s string) bool {
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
