package domain

import "time"

// ChannelType is the advertising channel of a campaign.
type ChannelType string

const ChannelDisplay ChannelType = "DISPLAY"

// CampaignStatus is the serving status of a campaign.
type CampaignStatus string

const (
	CampaignEnabled CampaignStatus = "ENABLED"
	CampaignPaused  CampaignStatus = "PAUSED"
)

// CampaignSpec describes a campaign to create. Budget is the resource name of
// an existing campaign budget. Amounts are in micros (1 unit = 1,000,000).
type CampaignSpec struct {
	Name            string
	ChannelType     ChannelType
	Status          CampaignStatus
	Budget          string
	StartDate       time.Time
	EndDate         time.Time
	TargetCPAMicros int64
}

// NetworkSettings selects the networks a campaign serves on.
type NetworkSettings struct {
	GoogleSearch   bool
	ContentNetwork bool
	PartnerSearch  bool
}

// DisplayOnly serves on the display network and nowhere else.
var DisplayOnly = NetworkSettings{ContentNetwork: true}

// CampaignOverview summarises a campaign and its lifetime metrics.
type CampaignOverview struct {
	ResourceName string  `json:"resourceName"`
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Status       string  `json:"status"`
	ChannelType  string  `json:"channelType"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	BudgetMicros int64   `json:"budgetMicros"`
	Impressions  int64   `json:"impressions"`
	Clicks       int64   `json:"clicks"`
	CostMicros   int64   `json:"costMicros"`
	CTR          float64 `json:"ctr"`
}
