package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// CampaignUseCase is the primary port for building campaigns.
type CampaignUseCase interface {
	// ExecuteQueries drives a fresh session through every step and returns
	// the recorded run. A run that stopped at a clarifying question is
	// returned with Complete set to false and a nil error.
	ExecuteQueries(ctx context.Context, req CampaignRequest) (*domain.CampaignRun, error)

	// ApplyAudienceExclusions recommends audience criteria for url and
	// applies them as negative criteria to an existing campaign.
	ApplyAudienceExclusions(ctx context.Context, customerID, campaignID, url string) (*AudienceResult, error)

	// Overview returns the settings and metrics of an existing campaign.
	Overview(ctx context.Context, customerID, campaignID string) (*domain.CampaignOverview, error)

	ListRuns(ctx context.Context, limit int) ([]domain.CampaignRun, error)
	GetRun(ctx context.Context, id string) (*domain.CampaignRun, error)
}

// CampaignRequest is the inbound campaign build request. Budget and Days are
// free text handed to the language model.
type CampaignRequest struct {
	Budget     string `json:"budget"`
	Days       string `json:"days"`
	CampaignID string `json:"campaignId"`
	URL        string `json:"url"`
}

// AudienceResult reports which exclusion groups were actually sent.
type AudienceResult struct {
	Criteria     domain.AudienceCriteria `json:"criteria"`
	Interests    bool                    `json:"interests"`
	Topics       bool                    `json:"topics"`
	Placements   bool                    `json:"placements"`
	Demographics bool                    `json:"demographics"`
}

// AuthUseCase registers and authenticates users. Tokens are the raw user id.
type AuthUseCase interface {
	Register(ctx context.Context, email, password, fullName string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, token string) (*domain.User, error)
}

type AuthResult struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
