package domain

import (
	"slices"
	"time"
)

// StepResult is what one orchestrator invocation reports back to the caller.
// Step is the state that was executed and State the state reached afterwards.
// Duration is the elapsed time in seconds since the request started.
type StepResult struct {
	Step             State             `json:"step"`
	State            State             `json:"state"`
	Response         string            `json:"response"`
	Duration         float64           `json:"duration"`
	AudienceCriteria *AudienceCriteria `json:"audience_criteria,omitempty"`
}

// CampaignRun records one campaign build request and the steps it went
// through. Complete is false when the build stopped at a clarifying question
// or an error.
type CampaignRun struct {
	ID           string       `json:"id"`
	CampaignID   string       `json:"campaignId"`
	CustomerID   string       `json:"customerId"`
	CampaignName string       `json:"campaignName"`
	URL          string       `json:"url"`
	Budget       string       `json:"budget"`
	Days         string       `json:"days"`
	Complete     bool         `json:"complete"`
	Error        string       `json:"error,omitempty"`
	Responses    []StepResult `json:"responses"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Clone returns a copy of r that shares no slices or criteria with it.
func (r CampaignRun) Clone() CampaignRun {
	r.Responses = slices.Clone(r.Responses)
	for i, step := range r.Responses {
		if step.AudienceCriteria != nil {
			ac := step.AudienceCriteria.Clone()
			r.Responses[i].AudienceCriteria = &ac
		}
	}
	return r
}
