package domain

import "time"

// Session is the mutable record carried through one campaign build. It is
// created per inbound request, mutated only by the orchestrator and dropped
// when the request ends. Nothing in it is persisted.
type Session struct {
	State      State
	CustomerID string
	Links      []string

	// Response is the last human readable status message. When the language
	// model answers with a question instead of a tool call, the question is
	// stored here and State is left unchanged.
	Response string

	BudgetAmountMicros int64
	BudgetResourceName string

	CampaignName         string
	StartDate            time.Time
	EndDate              time.Time
	CampaignResourceName string

	Locations        []LocationHint
	Languages        []string
	Devices          []Device
	Schedules        []AdSchedule
	AudienceCriteria *AudienceCriteria

	Elements            CampaignElements
	Summary             string
	TrackingTemplate    string
	CustomParameters    []CustomParameter
	AdGroupResourceName string
	SquareImageAsset    string
	LandscapeImageAsset string
	AdResourceName      string
}

// NewSession returns a session in the budgeting state targeting link.
func NewSession(customerID, link string) *Session {
	return &Session{
		State:      StateBudgeting,
		CustomerID: customerID,
		Links:      []string{link},
	}
}

// TargetURL returns the primary landing page of the session.
func (s *Session) TargetURL() string {
	if len(s.Links) == 0 {
		return ""
	}
	return s.Links[0]
}
