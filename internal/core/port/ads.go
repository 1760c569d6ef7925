package port

import (
	"context"

	"adpilot/internal/core/domain"
)

// AdsService is the outbound port to the advertising platform. Each method
// builds one request, sends it synchronously and returns the resource name of
// what was created. Methods taking a list return false without calling the
// platform when nothing is left to apply. Errors are never retried.
type AdsService interface {
	CreateCampaignBudget(ctx context.Context, customerID string, amountMicros int64) (string, error)
	CreateCampaign(ctx context.Context, customerID string, spec domain.CampaignSpec) (string, error)
	SetNetworkSettings(ctx context.Context, customerID, campaign string, settings domain.NetworkSettings) error
	SetLocationTargeting(ctx context.Context, customerID, campaign string, locations []domain.LocationHint) (bool, error)
	SetLanguageTargeting(ctx context.Context, customerID, campaign string, languages []string) (bool, error)
	SetAdRotation(ctx context.Context, customerID, campaign string, optimize bool) error
	AddDeviceTargeting(ctx context.Context, customerID, campaign string, devices []domain.Device) (bool, error)
	SetAdSchedules(ctx context.Context, customerID, campaign string, schedules []domain.AdSchedule) (bool, error)
	SetContentExclusion(ctx context.Context, customerID, campaign string, label domain.ContentLabel) error
	SetCampaignURLOptions(ctx context.Context, customerID, campaign, trackingTemplate string, params []domain.CustomParameter) error
	CreateImageAsset(ctx context.Context, customerID string, data []byte, name string) (string, error)
	CreateAdGroup(ctx context.Context, customerID string, spec domain.AdGroupSpec) (string, error)
	CreateResponsiveDisplayAd(ctx context.Context, customerID string, ad domain.ResponsiveDisplayAd) (string, error)
	CampaignOverview(ctx context.Context, customerID, campaignID string) (*domain.CampaignOverview, error)
}

// ExclusionService applies negative audience criteria to a campaign. Name
// based exclusions first query the platform for the matching constants and
// silently skip names that do not resolve.
type ExclusionService interface {
	ExcludeUserInterests(ctx context.Context, customerID, campaign, taxonomy, searchTerm string, segments []string) (bool, error)
	ExcludeTopics(ctx context.Context, customerID, campaign, searchTerm string, topics []string) (bool, error)
	ExcludePlacements(ctx context.Context, customerID, campaign string, urls []string) (bool, error)
	ExcludeDemographics(ctx context.Context, customerID, campaign string, d domain.DemographicExclusions) (bool, error)
}
