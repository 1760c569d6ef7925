package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

const (
	testCustomer = "1234567890"
	testCampaign = "customers/1234567890/campaigns/77"
	testURL      = "https://example.com"
)

type agentMocks struct {
	ads         *mocks.MockAdsService
	exclusions  *mocks.MockExclusionService
	assistant   *mocks.MockAssistant
	recommender *mocks.MockRecommender
	images      *mocks.MockImageGenerator
	resizer     *mocks.MockImageResizer
}

// stepClock advances by step on every reading.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSettings(t *testing.T) AgentSettings {
	return AgentSettings{
		WorkDir:          t.TempDir(),
		ContentExclusion: domain.ContentLabelParkedDomain,
		TargetCPAMicros:  50_000_000,
		AdGroupName:      "Test Ad Group",
		CallToAction:     "Learn More",
		LongHeadline:     "Transform with AI Tech",
	}
}

func newTestAgent(t *testing.T, settings AgentSettings) (*Agent, agentMocks) {
	m := agentMocks{
		ads:         mocks.NewMockAdsService(t),
		exclusions:  mocks.NewMockExclusionService(t),
		assistant:   mocks.NewMockAssistant(t),
		recommender: mocks.NewMockRecommender(t),
		images:      mocks.NewMockImageGenerator(t),
		resizer:     mocks.NewMockImageResizer(t),
	}
	a := NewAgent(AgentDeps{
		Ads:         m.ads,
		Exclusions:  m.exclusions,
		Assistant:   m.assistant,
		Recommender: m.recommender,
		Images:      m.images,
		Resizer:     m.resizer,
	}, settings, discardLogger())
	a.now = func() time.Time { return time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC) }
	return a, m
}

func sessionAt(state domain.State) *domain.Session {
	s := domain.NewSession(testCustomer, testURL)
	s.State = state
	s.BudgetResourceName = "customers/1234567890/campaignBudgets/5"
	s.CampaignResourceName = testCampaign
	return s
}

func TestAgentBudgetingAdvances(t *testing.T) {
	a, m := newTestAgent(t, testSettings(t))
	s := domain.NewSession(testCustomer, testURL)

	m.assistant.EXPECT().ExtractBudget(mock.Anything, "i have 50 dollar budget for campaign").
		Return(&port.BudgetReply{AmountMicros: 50_000_000}, nil)
	m.ads.EXPECT().CreateCampaignBudget(mock.Anything, testCustomer, int64(50_000_000)).
		Return("customers/1234567890/campaignBudgets/5", nil)

	require.NoError(t, a.Run(context.Background(), s, "i have 50 dollar budget for campaign"))
	assert.Equal(t, domain.StateCampaignSetup, s.State)
	assert.Equal(t, int64(50_000_000), s.BudgetAmountMicros)
	assert.Equal(t, "customers/1234567890/campaignBudgets/5", s.BudgetResourceName)
	assert.NotEmpty(t, s.Response)
}

func TestAgentClarifyingQuestionKeepsState(t *testing.T) {
	tests := []struct {
		name  string
		state domain.State
		setup func(m agentMocks)
	}{
		{
			name:  "budgeting",
			state: domain.StateBudgeting,
			setup: func(m agentMocks) {
				m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).
					Return(&port.BudgetReply{Question: "How much would you like to spend?"}, nil)
			},
		},
		{
			name:  "campaign setup",
			state: domain.StateCampaignSetup,
			setup: func(m agentMocks) {
				m.assistant.EXPECT().ExtractCampaignDetails(mock.Anything, mock.Anything).
					Return(&port.CampaignReply{Question: "How much would you like to spend?"}, nil)
			},
		},
		{
			name:  "budget question with amount",
			state: domain.StateBudgeting,
			setup: func(m agentMocks) {
				m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).
					Return(&port.BudgetReply{Question: "How much would you like to spend?", AmountMicros: 50_000_000}, nil)
			},
		},
		{
			name:  "campaign question with details",
			state: domain.StateCampaignSetup,
			setup: func(m agentMocks) {
				m.assistant.EXPECT().ExtractCampaignDetails(mock.Anything, mock.Anything).
					Return(&port.CampaignReply{Question: "How much would you like to spend?", Name: "abc-1", DurationDays: 7}, nil)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, m := newTestAgent(t, testSettings(t))
			tt.setup(m)
			s := sessionAt(tt.state)

			require.NoError(t, a.Run(context.Background(), s, "hello"))
			assert.Equal(t, tt.state, s.State)
			assert.Equal(t, "How much would you like to spend?", s.Response)
		})
	}
}

func TestAgentCampaignSetup(t *testing.T) {
	a, m := newTestAgent(t, testSettings(t))
	s := sessionAt(domain.StateCampaignSetup)

	m.assistant.EXPECT().ExtractCampaignDetails(mock.Anything, "for 7 days and id will be abc-1").
		Return(&port.CampaignReply{Name: "abc-1", DurationDays: 7}, nil)
	m.ads.EXPECT().CreateCampaign(mock.Anything, testCustomer, domain.CampaignSpec{
		Name:            "abc-1",
		ChannelType:     domain.ChannelDisplay,
		Status:          domain.CampaignEnabled,
		Budget:          s.BudgetResourceName,
		StartDate:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
		TargetCPAMicros: 50_000_000,
	}).Return(testCampaign, nil)
	m.ads.EXPECT().SetNetworkSettings(mock.Anything, testCustomer, testCampaign, domain.DisplayOnly).Return(nil)

	require.NoError(t, a.Run(context.Background(), s, "for 7 days and id will be abc-1"))
	assert.Equal(t, domain.StateTargetingLocationLanguage, s.State)
	assert.Equal(t, "abc-1", s.CampaignName)
	assert.Equal(t, testCampaign, s.CampaignResourceName)
	assert.True(t, s.EndDate.After(s.StartDate))
}

func TestAgentLocationLanguage(t *testing.T) {
	tests := []struct {
		name     string
		audience bool
		want     domain.State
	}{
		{name: "audience disabled", want: domain.StateSchedulingDevices},
		{name: "audience enabled", audience: true, want: domain.StateAudienceTargeting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := testSettings(t)
			settings.AudienceExclusions = tt.audience
			a, m := newTestAgent(t, settings)
			s := sessionAt(domain.StateTargetingLocationLanguage)

			locations := []domain.LocationHint{{Name: "Pakistan", Locale: "ur"}}
			m.recommender.EXPECT().RecommendLocations(mock.Anything, []string{testURL}).
				Return(&domain.LocationRecommendation{Locations: locations, Language: domain.StringList{"English"}}, nil)
			m.ads.EXPECT().SetLocationTargeting(mock.Anything, testCustomer, testCampaign, locations).Return(true, nil)
			m.ads.EXPECT().SetLanguageTargeting(mock.Anything, testCustomer, testCampaign, []string{"English"}).Return(true, nil)
			m.ads.EXPECT().SetAdRotation(mock.Anything, testCustomer, testCampaign, true).Return(nil)

			require.NoError(t, a.Run(context.Background(), s, testURL))
			assert.Equal(t, tt.want, s.State)
			assert.Equal(t, locations, s.Locations)
		})
	}
}

func TestAgentAudienceTargeting(t *testing.T) {
	settings := testSettings(t)
	settings.AudienceExclusions = true
	a, m := newTestAgent(t, settings)
	s := sessionAt(domain.StateAudienceTargeting)

	criteria := &domain.AudienceCriteria{
		TaxonomyType:        "AFFINITY",
		AudienceSearchTerm:  "gaming",
		Segments:            []string{"Gamers"},
		PlacementExclusions: []string{"example.org"},
		GenderExclusions:    []string{"Male", "Robot"},
	}
	m.recommender.EXPECT().RecommendAudience(mock.Anything, []string{testURL}).Return(criteria, nil)
	m.exclusions.EXPECT().ExcludeUserInterests(mock.Anything, testCustomer, testCampaign, "AFFINITY", "gaming", []string{"Gamers"}).
		Return(true, nil)
	m.exclusions.EXPECT().ExcludeTopics(mock.Anything, testCustomer, testCampaign, "", []string(nil)).Return(false, nil)
	m.exclusions.EXPECT().ExcludePlacements(mock.Anything, testCustomer, testCampaign, []string{"example.org"}).Return(true, nil)
	m.exclusions.EXPECT().ExcludeDemographics(mock.Anything, testCustomer, testCampaign,
		domain.DemographicExclusions{Genders: []domain.Gender{domain.GenderMale}}).Return(true, nil)

	require.NoError(t, a.Run(context.Background(), s, testURL))
	assert.Equal(t, domain.StateSchedulingDevices, s.State)
	assert.Same(t, criteria, s.AudienceCriteria)
}

func TestAgentSchedulingDropsUnknownNames(t *testing.T) {
	a, m := newTestAgent(t, testSettings(t))
	s := sessionAt(domain.StateSchedulingDevices)
	s.Locations = []domain.LocationHint{{Name: "Pakistan", Locale: "ur"}}

	m.recommender.EXPECT().RecommendSchedulesDevices(mock.Anything, []string{testURL}, s.Locations).
		Return(&domain.ScheduleDeviceRecommendation{
			Device: domain.StringList{"Mobile", "Smartwatch", "desktop"},
			AdSchedule: []domain.ScheduleHint{
				{DayOfWeek: "Monday", StartHour: 9, EndHour: 17},
				{DayOfWeek: "Funday", StartHour: 1, EndHour: 2},
			},
		}, nil)
	m.ads.EXPECT().AddDeviceTargeting(mock.Anything, testCustomer, testCampaign,
		[]domain.Device{domain.DeviceMobile, domain.DeviceDesktop}).Return(true, nil)
	m.ads.EXPECT().SetAdSchedules(mock.Anything, testCustomer, testCampaign, []domain.AdSchedule{{
		Day: domain.Monday, StartHour: 9, EndHour: 17,
		StartMinute: domain.MinuteZero, EndMinute: domain.MinuteZero,
	}}).Return(true, nil)
	m.ads.EXPECT().SetContentExclusion(mock.Anything, testCustomer, testCampaign, domain.ContentLabelParkedDomain).Return(nil)

	require.NoError(t, a.Run(context.Background(), s, testURL))
	assert.Equal(t, domain.StateCreativeSetup, s.State)
}

func expectCreative(t *testing.T, m agentMocks, elements *domain.CampaignElements) {
	t.Helper()
	m.recommender.EXPECT().RecommendCampaignElements(mock.Anything, []string{testURL}).Return(elements, nil)
	m.ads.EXPECT().SetCampaignURLOptions(mock.Anything, testCustomer, testCampaign,
		"https://example.com?source={network}&campaignid={campaignid}&adgroupid={adgroupid}&keyword={keyword}&lpurl={lpurl}",
		trackingParameters).Return(nil)
	m.ads.EXPECT().CreateAdGroup(mock.Anything, testCustomer, domain.AdGroupSpec{
		Name:     "Test Ad Group",
		Campaign: testCampaign,
		Status:   domain.AdGroupPaused,
		Type:     domain.AdGroupDisplayStandard,
	}).Return("customers/1234567890/adGroups/9", nil)
	m.recommender.EXPECT().Summarize(mock.Anything, []string{testURL}).Return("A shop for shoes", nil)
	m.images.EXPECT().GenerateImage(mock.Anything, logoPrompt+"A shop for shoes").Return([]byte("logo"), nil)
	m.resizer.EXPECT().Resize(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(src, dst string, size domain.ImageSize) error {
			if _, err := os.Stat(src); err != nil {
				return err
			}
			return os.WriteFile(dst, []byte(fmt.Sprintf("%dx%d", size.Width, size.Height)), 0o600)
		})
	m.ads.EXPECT().CreateImageAsset(mock.Anything, testCustomer, []byte("1200x1200"), squareAssetName).
		Return("customers/1234567890/assets/1", nil)
	m.ads.EXPECT().CreateImageAsset(mock.Anything, testCustomer, []byte("1200x628"), landscapeAssetName).
		Return("customers/1234567890/assets/2", nil)
}

func TestAgentCreativeSetup(t *testing.T) {
	settings := testSettings(t)
	a, m := newTestAgent(t, settings)
	s := sessionAt(domain.StateCreativeSetup)

	expectCreative(t, m, &domain.CampaignElements{
		BusinessName: "Shoes",
		Headlines:    []string{"h1", "h2", "h3", "h4", "h5", "h6"},
		Descriptions: []string{"d1", "d2", "d3", "d4", "d5", "d6", "d7"},
	})
	var ad domain.ResponsiveDisplayAd
	m.ads.EXPECT().CreateResponsiveDisplayAd(mock.Anything, testCustomer, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, got domain.ResponsiveDisplayAd) (string, error) {
			ad = got
			return "customers/1234567890/adGroupAds/9~1", nil
		})

	require.NoError(t, a.Run(context.Background(), s, testURL))
	assert.Equal(t, domain.StateTerminal, s.State)

	assert.Equal(t, []string{"h1", "h2", "h3", "h4", "h5"}, ad.Headlines)
	assert.Equal(t, []string{"d1", "d2", "d3", "d4", "d5"}, ad.Descriptions)
	assert.Equal(t, "Transform with AI Tech", ad.LongHeadline)
	assert.Equal(t, "Learn More", ad.CallToAction)
	assert.Equal(t, domain.AdGroupPaused, ad.Status)
	assert.Equal(t, []string{"customers/1234567890/assets/1"}, ad.SquareImages)
	assert.Equal(t, []string{"customers/1234567890/assets/2"}, ad.LandscapeImages)
	assert.Equal(t, []string{testURL}, ad.FinalURLs)

	entries, err := os.ReadDir(settings.WorkDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "session images are removed")
}

func TestAgentTerminalIsIdempotent(t *testing.T) {
	a, _ := newTestAgent(t, testSettings(t))
	s := sessionAt(domain.StateTerminal)
	s.Response = "done"
	want := sessionAt(domain.StateTerminal)
	want.Response = "done"

	for range 3 {
		require.NoError(t, a.Run(context.Background(), s, "anything"))
		assert.Equal(t, want, s)
	}
}

func TestAgentUnknownState(t *testing.T) {
	a, _ := newTestAgent(t, testSettings(t))
	s := sessionAt("publishing")

	err := a.Run(context.Background(), s, "")
	assert.ErrorIs(t, err, port.ErrUnknownState)
}

func TestAgentRemoteFailureLeavesState(t *testing.T) {
	a, m := newTestAgent(t, testSettings(t))
	s := domain.NewSession(testCustomer, testURL)
	boom := errors.New("quota exceeded")

	m.assistant.EXPECT().ExtractBudget(mock.Anything, mock.Anything).Return(&port.BudgetReply{AmountMicros: 1}, nil)
	m.ads.EXPECT().CreateCampaignBudget(mock.Anything, testCustomer, int64(1)).Return("", boom).Once()

	err := a.Run(context.Background(), s, "1 dollar")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, domain.StateBudgeting, s.State)
	assert.Empty(t, s.BudgetResourceName)
}
