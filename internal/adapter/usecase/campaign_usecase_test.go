package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/adapter/memory"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

var testRequest = port.CampaignRequest{
	Budget:     "50",
	Days:       "7",
	CampaignID: "abc",
	URL:        testURL,
}

func newTestCampaignUseCase(t *testing.T, settings AgentSettings) (*CampaignUseCase, agentMocks, *memory.RunRepository) {
	a, m := newTestAgent(t, settings)
	runs := memory.NewRunRepository()
	uc := NewCampaignUseCase(a, runs, testCustomer, discardLogger())

	clock := &stepClock{t: time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC), step: 250 * time.Millisecond}
	a.now = clock.Now
	uc.now = clock.Now
	uc.newID = func() string { return "run-1" }
	return uc, m, runs
}

func expectUpToCreative(t *testing.T, m agentMocks) {
	t.Helper()
	m.assistant.EXPECT().ExtractBudget(mock.Anything, "i have 50 dollar budget for campaign").
		Return(&port.BudgetReply{AmountMicros: 50_000_000}, nil)
	m.ads.EXPECT().CreateCampaignBudget(mock.Anything, testCustomer, int64(50_000_000)).
		Return("customers/1234567890/campaignBudgets/5", nil)
	m.assistant.EXPECT().ExtractCampaignDetails(mock.Anything,
		mock.MatchedBy(func(s string) bool { return strings.HasPrefix(s, "for 7 days and id will be abc-") })).
		Return(&port.CampaignReply{Name: "abc-1741619046", DurationDays: 7}, nil)
	m.ads.EXPECT().CreateCampaign(mock.Anything, testCustomer, mock.Anything).Return(testCampaign, nil)
	m.ads.EXPECT().SetNetworkSettings(mock.Anything, testCustomer, testCampaign, domain.DisplayOnly).Return(nil)

	m.recommender.EXPECT().RecommendLocations(mock.Anything, []string{testURL}).
		Return(&domain.LocationRecommendation{
			Locations: []domain.LocationHint{{Name: "Pakistan", Locale: "ur"}},
			Language:  domain.StringList{"English"},
		}, nil)
	m.ads.EXPECT().SetLocationTargeting(mock.Anything, testCustomer, testCampaign, mock.Anything).Return(true, nil)
	m.ads.EXPECT().SetLanguageTargeting(mock.Anything, testCustomer, testCampaign, mock.Anything).Return(true, nil)
	m.ads.EXPECT().SetAdRotation(mock.Anything, testCustomer, testCampaign, true).Return(nil)

	m.recommender.EXPECT().RecommendSchedulesDevices(mock.Anything, []string{testURL}, mock.Anything).
		Return(&domain.ScheduleDeviceRecommendation{Device: domain.StringList{"Mobile"}}, nil)
	m.ads.EXPECT().AddDeviceTargeting(mock.Anything, testCustomer, testCampaign, mock.Anything).Return(true, nil)
	m.ads.EXPECT().SetAdSchedules(mock.Anything, testCustomer, testCampaign, mock.Anything).Return(false, nil)
	m.ads.EXPECT().SetContentExclusion(mock.Anything, testCustomer, testCampaign, domain.ContentLabelParkedDomain).Return(nil)
}

func expectFullRun(t *testing.T, m agentMocks) {
	t.Helper()
	expectUpToCreative(t, m)
	expectCreative(t, m, &domain.CampaignElements{
		BusinessName:  "Shoes",
		Headlines:     []string{"Buy shoes"},
		LongHeadlines: []string{"The best shoes in town"},
		Descriptions:  []string{"Comfortable"},
	})
	m.ads.EXPECT().CreateResponsiveDisplayAd(mock.Anything, testCustomer,
		mock.MatchedBy(func(ad domain.ResponsiveDisplayAd) bool { return ad.LongHeadline == "The best shoes in town" })).
		Return("customers/1234567890/adGroupAds/9~1", nil)
}

func steps(run *domain.CampaignRun) []domain.State {
	out := make([]domain.State, len(run.Responses))
	for i, r := range run.Responses {
		out[i] = r.Step
	}
	return out
}

func assertIncreasing(t *testing.T, run *domain.CampaignRun) {
	t.Helper()
	prev := -1.0
	for i, r := range run.Responses {
		assert.GreaterOrEqual(t, r.Duration, 0.0)
		assert.Greater(t, r.Duration, prev, "entry %d", i)
		prev = r.Duration
	}
}

func TestExecuteQueriesEndToEnd(t *testing.T) {
	uc, m, runs := newTestCampaignUseCase(t, testSettings(t))
	expectFullRun(t, m)

	run, err := uc.ExecuteQueries(context.Background(), testRequest)
	require.NoError(t, err)

	assert.Equal(t, []domain.State{
		domain.StateBudgeting,
		domain.StateCampaignSetup,
		domain.StateTargetingLocationLanguage,
		domain.StateSchedulingDevices,
		domain.StateCreativeSetup,
		domain.StateTerminal,
	}, steps(run))
	require.Len(t, run.Responses, 6)
	assertIncreasing(t, run)
	assert.True(t, run.Complete)
	assert.Empty(t, run.Error)
	assert.Equal(t, domain.StateTerminal, run.Responses[5].State)
	assert.Equal(t, run.Responses[4].Response, run.Responses[5].Response)
	assert.Equal(t, "abc-1741619046", run.CampaignName)

	stored, err := runs.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, *run, *stored)
}

func TestExecuteQueriesWithAudienceStep(t *testing.T) {
	settings := testSettings(t)
	settings.AudienceExclusions = true
	uc, m, _ := newTestCampaignUseCase(t, settings)
	expectFullRun(t, m)

	criteria := &domain.AudienceCriteria{PlacementExclusions: []string{"spam.example"}}
	m.recommender.EXPECT().RecommendAudience(mock.Anything, []string{testURL}).Return(criteria, nil)
	m.exclusions.EXPECT().ExcludeUserInterests(mock.Anything, testCustomer, testCampaign, "", "", []string(nil)).Return(false, nil)
	m.exclusions.EXPECT().ExcludeTopics(mock.Anything, testCustomer, testCampaign, "", []string(nil)).Return(false, nil)
	m.exclusions.EXPECT().ExcludePlacements(mock.Anything, testCustomer, testCampaign, []string{"spam.example"}).Return(true, nil)
	m.exclusions.EXPECT().ExcludeDemographics(mock.Anything, testCustomer, testCampaign, domain.DemographicExclusions{}).Return(false, nil)

	run, err := uc.ExecuteQueries(context.Background(), testRequest)
	require.NoError(t, err)
	require.Len(t, run.Responses, 7)
	assertIncreasing(t, run)

	audience := run.Responses[3]
	assert.Equal(t, domain.StateAudienceTargeting, audience.Step)
	assert.Same(t, criteria, audience.AudienceCriteria)
	for i, r := range run.Responses {
		if i != 3 {
			assert.Nil(t, r.AudienceCriteria)
		}
	}
}

func TestExecuteQueriesStopsAtQuestion(t *testing.T) {
	uc, m, runs := newTestCampaignUseCase(t, testSettings(t))
	m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).
		Return(&port.BudgetReply{Question: "Which currency is the budget in?"}, nil)

	run, err := uc.ExecuteQueries(context.Background(), testRequest)
	require.NoError(t, err)
	require.Len(t, run.Responses, 1)
	assert.False(t, run.Complete)
	assert.Equal(t, domain.StateBudgeting, run.Responses[0].State)
	assert.Equal(t, "Which currency is the budget in?", run.Responses[0].Response)

	_, err = runs.GetRun(context.Background(), "run-1")
	assert.NoError(t, err)
}

func TestExecuteQueriesPropagatesRemoteFailure(t *testing.T) {
	uc, m, runs := newTestCampaignUseCase(t, testSettings(t))
	boom := errors.New("permission denied")
	m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).
		Return(&port.BudgetReply{AmountMicros: 50_000_000}, nil)
	m.ads.EXPECT().CreateCampaignBudget(mock.Anything, testCustomer, int64(50_000_000)).
		Return("customers/1234567890/campaignBudgets/5", nil)
	m.assistant.EXPECT().ExtractCampaignDetails(mock.Anything, mock.Anything).
		Return(&port.CampaignReply{Name: "abc", DurationDays: 7}, nil)
	m.ads.EXPECT().CreateCampaign(mock.Anything, testCustomer, mock.Anything).Return("", boom)

	run, err := uc.ExecuteQueries(context.Background(), testRequest)
	require.ErrorIs(t, err, boom)
	require.NotNil(t, run)
	assert.Len(t, run.Responses, 1)
	assert.False(t, run.Complete)
	assert.Contains(t, run.Error, "permission denied")

	stored, err := runs.GetRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, run.Error, stored.Error)
}

func TestExecuteQueriesSaveFailure(t *testing.T) {
	a, m := newTestAgent(t, testSettings(t))
	runs := mocks.NewMockRunRepository(t)
	uc := NewCampaignUseCase(a, runs, testCustomer, discardLogger())

	m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).
		Return(&port.BudgetReply{Question: "?"}, nil)
	runs.EXPECT().SaveRun(mock.Anything, mock.AnythingOfType("domain.CampaignRun")).Return(errors.New("db down"))

	_, err := uc.ExecuteQueries(context.Background(), testRequest)
	assert.ErrorContains(t, err, "db down")
}

func TestExecuteQueriesValidation(t *testing.T) {
	tests := []struct {
		name string
		req  port.CampaignRequest
	}{
		{"missing campaign id", port.CampaignRequest{Budget: "50", Days: "7", URL: testURL}},
		{"missing budget", port.CampaignRequest{Days: "7", CampaignID: "abc", URL: testURL}},
		{"relative url", port.CampaignRequest{Budget: "50", Days: "7", CampaignID: "abc", URL: "/shop"}},
		{"ftp url", port.CampaignRequest{Budget: "50", Days: "7", CampaignID: "abc", URL: "ftp://example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, runs := newTestCampaignUseCase(t, testSettings(t))
			_, err := uc.ExecuteQueries(context.Background(), tt.req)
			assert.ErrorIs(t, err, port.ErrInvalidRequest)

			all, err := runs.ListRuns(context.Background(), 0)
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestApplyAudienceExclusions(t *testing.T) {
	uc, m, _ := newTestCampaignUseCase(t, testSettings(t))
	criteria := &domain.AudienceCriteria{
		TopicsSearchTerm: "gambling",
		Topics:           []string{"Gambling"},
	}
	campaign := "customers/1234567890/campaigns/42"
	m.recommender.EXPECT().RecommendAudience(mock.Anything, []string{testURL}).Return(criteria, nil)
	m.exclusions.EXPECT().ExcludeUserInterests(mock.Anything, testCustomer, campaign, "", "", []string(nil)).Return(false, nil)
	m.exclusions.EXPECT().ExcludeTopics(mock.Anything, testCustomer, campaign, "gambling", []string{"Gambling"}).Return(true, nil)
	m.exclusions.EXPECT().ExcludePlacements(mock.Anything, testCustomer, campaign, []string(nil)).Return(false, nil)
	m.exclusions.EXPECT().ExcludeDemographics(mock.Anything, testCustomer, campaign, domain.DemographicExclusions{}).Return(false, nil)

	res, err := uc.ApplyAudienceExclusions(context.Background(), "123-456-7890", "42", testURL)
	require.NoError(t, err)
	assert.True(t, res.Topics)
	assert.False(t, res.Interests)
	assert.Equal(t, *criteria, res.Criteria)

	_, err = uc.ApplyAudienceExclusions(context.Background(), "123", "abc", testURL)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
}

func TestOverviewRejectsBadCustomer(t *testing.T) {
	uc, m, _ := newTestCampaignUseCase(t, testSettings(t))
	_, err := uc.Overview(context.Background(), "acme", "1")
	assert.ErrorIs(t, err, port.ErrInvalidRequest)

	want := &domain.CampaignOverview{ID: "1", Name: "abc"}
	m.ads.EXPECT().CampaignOverview(mock.Anything, testCustomer, "1").Return(want, nil)
	got, err := uc.Overview(context.Background(), testCustomer, "1")
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestNextElapsed(t *testing.T) {
	first := nextElapsed(-1, 0)
	assert.Equal(t, 0.0, first)
	second := nextElapsed(first, 0)
	assert.Greater(t, second, first)
	assert.Equal(t, 1.5, nextElapsed(second, 1500*time.Millisecond))
}
