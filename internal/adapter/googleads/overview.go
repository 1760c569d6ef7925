package googleads

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// int64Value decodes the string encoded 64 bit integers of the REST
// interface and tolerates plain numbers.
type int64Value int64

func (v *int64Value) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || string(data) == "null" {
		*v = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*v = int64Value(n)
	return nil
}

type overviewRow struct {
	Campaign struct {
		ResourceName           string     `json:"resourceName"`
		ID                     int64Value `json:"id"`
		Name                   string     `json:"name"`
		Status                 string     `json:"status"`
		AdvertisingChannelType string     `json:"advertisingChannelType"`
		StartDate              string     `json:"startDate"`
		EndDate                string     `json:"endDate"`
	} `json:"campaign"`
	CampaignBudget struct {
		AmountMicros int64Value `json:"amountMicros"`
	} `json:"campaignBudget"`
	Metrics struct {
		Impressions int64Value `json:"impressions"`
		Clicks      int64Value `json:"clicks"`
		CostMicros  int64Value `json:"costMicros"`
		CTR         float64    `json:"ctr"`
	} `json:"metrics"`
}

const overviewQuery = `SELECT campaign.resource_name, campaign.id, campaign.name, campaign.status,
  campaign.advertising_channel_type, campaign.start_date, campaign.end_date,
  campaign_budget.amount_micros, metrics.impressions, metrics.clicks,
  metrics.cost_micros, metrics.ctr
FROM campaign
WHERE campaign.id = %d`

// CampaignOverview reads the settings and lifetime metrics of one campaign.
func (c *Client) CampaignOverview(ctx context.Context, customerID, campaignID string) (*domain.CampaignOverview, error) {
	id, err := strconv.ParseInt(campaignID, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("campaign id %q: %w", campaignID, port.ErrInvalidRequest)
	}
	rows, err := search[overviewRow](ctx, c, customerID, fmt.Sprintf(overviewQuery, id))
	if err != nil {
		return nil, fmt.Errorf("query campaign overview: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("campaign %d: %w", id, port.ErrNotFound)
	}

	r := rows[0]
	return &domain.CampaignOverview{
		ResourceName: r.Campaign.ResourceName,
		ID:           strconv.FormatInt(int64(r.Campaign.ID), 10),
		Name:         r.Campaign.Name,
		Status:       r.Campaign.Status,
		ChannelType:  r.Campaign.AdvertisingChannelType,
		StartDate:    r.Campaign.StartDate,
		EndDate:      r.Campaign.EndDate,
		BudgetMicros: int64(r.CampaignBudget.AmountMicros),
		Impressions:  int64(r.Metrics.Impressions),
		Clicks:       int64(r.Metrics.Clicks),
		CostMicros:   int64(r.Metrics.CostMicros),
		CTR:          r.Metrics.CTR,
	}, nil
}
