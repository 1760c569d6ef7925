package googleads

import (
	"context"
	"fmt"
	"strings"

	"adpilot/internal/core/domain"
)

const dateLayout = "2006-01-02"

// CreateCampaignBudget creates a non shared budget with standard delivery.
func (c *Client) CreateCampaignBudget(ctx context.Context, customerID string, amountMicros int64) (string, error) {
	name, err := mutateOne(ctx, c, customerID, serviceCampaignBudgets, create(campaignBudget{
		Name:           "Budget " + c.now().Format("2006-01-02T15:04:05.000000Z07:00"),
		AmountMicros:   amountMicros,
		DeliveryMethod: "STANDARD",
	}))
	if err != nil {
		return "", fmt.Errorf("create campaign budget: %w", err)
	}
	return name, nil
}

// CreateCampaign creates a portfolio target CPA bidding strategy and then the
// campaign attached to it. A failure after the strategy was created leaves
// the strategy in place.
func (c *Client) CreateCampaign(ctx context.Context, customerID string, spec domain.CampaignSpec) (string, error) {
	strategy, err := mutateOne(ctx, c, customerID, serviceBiddingStrategies, create(biddingStrategy{
		Name:      fmt.Sprintf("Target CPA Bidding Strategy for %s_%d", spec.Name, c.now().Unix()),
		TargetCPA: targetCPA{TargetCPAMicros: spec.TargetCPAMicros},
	}))
	if err != nil {
		return "", fmt.Errorf("create bidding strategy: %w", err)
	}

	cmp := campaign{
		Name:                   spec.Name,
		AdvertisingChannelType: string(spec.ChannelType),
		Status:                 string(spec.Status),
		CampaignBudget:         spec.Budget,
		BiddingStrategy:        strategy,
	}
	if !spec.StartDate.IsZero() {
		cmp.StartDate = spec.StartDate.Format(dateLayout)
	}
	if !spec.EndDate.IsZero() {
		cmp.EndDate = spec.EndDate.Format(dateLayout)
	}
	name, err := mutateOne(ctx, c, customerID, serviceCampaigns, create(cmp))
	if err != nil {
		return "", fmt.Errorf("create campaign: %w", err)
	}
	return name, nil
}

// SetNetworkSettings overwrites the networks the campaign serves on.
func (c *Client) SetNetworkSettings(ctx context.Context, customerID, campaignName string, s domain.NetworkSettings) error {
	op := update(campaign{
		ResourceName: campaignName,
		NetworkSettings: &networkSettings{
			TargetGoogleSearch:         s.GoogleSearch,
			TargetContentNetwork:       s.ContentNetwork,
			TargetPartnerSearchNetwork: s.PartnerSearch,
		},
	}, strings.Join([]string{
		"networkSettings.targetGoogleSearch",
		"networkSettings.targetContentNetwork",
		"networkSettings.targetPartnerSearchNetwork",
	}, ","))
	if _, err := mutate(ctx, c, customerID, serviceCampaigns, []operation[campaign]{op}); err != nil {
		return fmt.Errorf("set network settings: %w", err)
	}
	return nil
}

// SetAdRotation switches ad serving between OPTIMIZE and ROTATE_INDEFINITELY.
func (c *Client) SetAdRotation(ctx context.Context, customerID, campaignName string, optimize bool) error {
	status := "ROTATE_INDEFINITELY"
	if optimize {
		status = "OPTIMIZE"
	}
	op := update(campaign{ResourceName: campaignName, AdServingOptimizationStatus: status}, "adServingOptimizationStatus")
	if _, err := mutate(ctx, c, customerID, serviceCampaigns, []operation[campaign]{op}); err != nil {
		return fmt.Errorf("set ad rotation: %w", err)
	}
	return nil
}

// SetCampaignURLOptions sets the tracking template and custom parameters.
func (c *Client) SetCampaignURLOptions(ctx context.Context, customerID, campaignName, trackingTemplate string, params []domain.CustomParameter) error {
	custom := make([]customParam, 0, len(params))
	for _, p := range params {
		custom = append(custom, customParam{Key: p.Key, Value: p.Value})
	}
	op := update(campaign{
		ResourceName:        campaignName,
		TrackingURLTemplate: trackingTemplate,
		URLCustomParameters: custom,
	}, "trackingUrlTemplate,urlCustomParameters")
	if _, err := mutate(ctx, c, customerID, serviceCampaigns, []operation[campaign]{op}); err != nil {
		return fmt.Errorf("set campaign url options: %w", err)
	}
	return nil
}
