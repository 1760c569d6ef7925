package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Event is the outcome of a step action and selects the next state from the
// transition table.
type Event int

const (
	// EventAdvance means the step finished its work.
	EventAdvance Event = iota
	// EventClarify means the language model asked a question instead of
	// producing arguments. The session stays where it is.
	EventClarify
)

func (e Event) String() string {
	if e == EventClarify {
		return "clarify"
	}
	return "advance"
}

const (
	logoPrompt = "Generate a clear, sharp logo with correct spelling and high visibility, based on: "

	squareAssetName    = "Square Marketing Image"
	landscapeAssetName = "Landscape Marketing Image"

	trackingTemplateFormat = "%s?source={network}&campaignid={campaignid}&adgroupid={adgroupid}&keyword={keyword}&lpurl={lpurl}"

	maxHeadlines    = 5
	maxDescriptions = 5
)

var trackingParameters = []domain.CustomParameter{
	{Key: "source", Value: "display_network"},
	{Key: "campaignid", Value: "{campaignid}"},
	{Key: "adgroupid", Value: "{adgroupid}"},
	{Key: "device", Value: "{device}"},
	{Key: "network", Value: "{network}"},
}

// AgentSettings are the fixed values every session applies.
type AgentSettings struct {
	WorkDir            string
	ContentExclusion   domain.ContentLabel
	TargetCPAMicros    int64
	AdGroupName        string
	CallToAction       string
	LongHeadline       string
	AudienceExclusions bool
}

// AgentDeps groups the outbound ports the agent drives.
type AgentDeps struct {
	Ads         port.AdsService
	Exclusions  port.ExclusionService
	Assistant   port.Assistant
	Recommender port.Recommender
	Images      port.ImageGenerator
	Resizer     port.ImageResizer
}

type action func(ctx context.Context, s *domain.Session, input string) (Event, error)

type transition struct {
	from  domain.State
	event Event
}

// Agent builds a campaign one step per Run call. Which step runs is decided
// by the session state; the state reached afterwards comes from an explicit
// (state, event) table.
type Agent struct {
	deps     AgentDeps
	settings AgentSettings
	logger   *slog.Logger
	now      func() time.Time

	actions     map[domain.State]action
	transitions map[transition]domain.State
}

// NewAgent registers one action per State and the transition table.
func NewAgent(deps AgentDeps, settings AgentSettings, logger *slog.Logger) *Agent {
	a := &Agent{
		deps:     deps,
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
	a.actions = map[domain.State]action{
		domain.StateBudgeting:                 a.budgeting,
		domain.StateCampaignSetup:             a.campaignSetup,
		domain.StateTargetingLocationLanguage: a.locationLanguage,
		domain.StateAudienceTargeting:         a.audienceTargeting,
		domain.StateSchedulingDevices:         a.schedulingDevices,
		domain.StateCreativeSetup:             a.creativeSetup,
		domain.StateTerminal:                  a.terminal,
	}

	afterLocation := domain.StateSchedulingDevices
	if settings.AudienceExclusions {
		afterLocation = domain.StateAudienceTargeting
	}
	a.transitions = map[transition]domain.State{
		{domain.StateBudgeting, EventAdvance}:                 domain.StateCampaignSetup,
		{domain.StateBudgeting, EventClarify}:                 domain.StateBudgeting,
		{domain.StateCampaignSetup, EventAdvance}:             domain.StateTargetingLocationLanguage,
		{domain.StateCampaignSetup, EventClarify}:             domain.StateCampaignSetup,
		{domain.StateTargetingLocationLanguage, EventAdvance}: afterLocation,
		{domain.StateAudienceTargeting, EventAdvance}:         domain.StateSchedulingDevices,
		{domain.StateSchedulingDevices, EventAdvance}:         domain.StateCreativeSetup,
		{domain.StateCreativeSetup, EventAdvance}:             domain.StateTerminal,
		{domain.StateTerminal, EventAdvance}:                  domain.StateTerminal,
	}
	return a
}

// Run executes the step selected by s.State and moves s to the next state.
// On error the state is left unchanged and nothing already sent to the
// platform is undone.
func (a *Agent) Run(ctx context.Context, s *domain.Session, input string) error {
	from := s.State
	if !from.Valid() {
		return fmt.Errorf("%w: %q", port.ErrUnknownState, from)
	}
	act, ok := a.actions[from]
	if !ok {
		return fmt.Errorf("%w: %q", port.ErrUnknownState, from)
	}
	ev, err := act(ctx, s, input)
	if err != nil {
		return fmt.Errorf("%s: %w", from, err)
	}
	next, ok := a.transitions[transition{from, ev}]
	if !ok {
		return fmt.Errorf("%w: no transition from %q on %s", port.ErrUnknownState, from, ev)
	}
	s.State = next
	if from != next {
		a.logger.Info("state transition",
			slog.String("from", from.String()),
			slog.String("to", next.String()),
			slog.String("customer_id", s.CustomerID))
	}
	return nil
}

func (a *Agent) budgeting(ctx context.Context, s *domain.Session, input string) (Event, error) {
	reply, err := a.deps.Assistant.ExtractBudget(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("extract budget: %w", err)
	}
	if reply.Question != "" {
		s.Response = reply.Question
		return EventClarify, nil
	}
	budget, err := a.deps.Ads.CreateCampaignBudget(ctx, s.CustomerID, reply.AmountMicros)
	if err != nil {
		return 0, fmt.Errorf("create budget: %w", err)
	}
	s.BudgetAmountMicros = reply.AmountMicros
	s.BudgetResourceName = budget
	s.Response = "Budget created; please provide campaign details."
	return EventAdvance, nil
}

func (a *Agent) campaignSetup(ctx context.Context, s *domain.Session, input string) (Event, error) {
	reply, err := a.deps.Assistant.ExtractCampaignDetails(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("extract campaign details: %w", err)
	}
	if reply.Question != "" {
		s.Response = reply.Question
		return EventClarify, nil
	}

	y, m, d := a.now().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, reply.DurationDays)

	campaign, err := a.deps.Ads.CreateCampaign(ctx, s.CustomerID, domain.CampaignSpec{
		Name:            reply.Name,
		ChannelType:     domain.ChannelDisplay,
		Status:          domain.CampaignEnabled,
		Budget:          s.BudgetResourceName,
		StartDate:       start,
		EndDate:         end,
		TargetCPAMicros: a.settings.TargetCPAMicros,
	})
	if err != nil {
		return 0, fmt.Errorf("create campaign: %w", err)
	}
	s.CampaignName = reply.Name
	s.StartDate = start
	s.EndDate = end
	s.CampaignResourceName = campaign

	if err = a.deps.Ads.SetNetworkSettings(ctx, s.CustomerID, campaign, domain.DisplayOnly); err != nil {
		return 0, fmt.Errorf("set network settings: %w", err)
	}
	s.Response = "Campaign created; proceeding to location and language."
	return EventAdvance, nil
}

func (a *Agent) locationLanguage(ctx context.Context, s *domain.Session, _ string) (Event, error) {
	rec, err := a.deps.Recommender.RecommendLocations(ctx, s.Links)
	if err != nil {
		return 0, fmt.Errorf("recommend locations: %w", err)
	}
	s.Locations = rec.Locations
	s.Languages = rec.Language

	if _, err = a.deps.Ads.SetLocationTargeting(ctx, s.CustomerID, s.CampaignResourceName, s.Locations); err != nil {
		return 0, fmt.Errorf("set location targeting: %w", err)
	}
	if _, err = a.deps.Ads.SetLanguageTargeting(ctx, s.CustomerID, s.CampaignResourceName, s.Languages); err != nil {
		return 0, fmt.Errorf("set language targeting: %w", err)
	}
	if err = a.deps.Ads.SetAdRotation(ctx, s.CustomerID, s.CampaignResourceName, true); err != nil {
		return 0, fmt.Errorf("set ad rotation: %w", err)
	}
	if a.settings.AudienceExclusions {
		s.Response = "Location and language set; applying audience targeting."
	} else {
		s.Response = "Location and language set; proceeding to scheduling and devices."
	}
	return EventAdvance, nil
}

func (a *Agent) audienceTargeting(ctx context.Context, s *domain.Session, _ string) (Event, error) {
	criteria, err := a.deps.Recommender.RecommendAudience(ctx, s.Links)
	if err != nil {
		return 0, fmt.Errorf("recommend audience: %w", err)
	}
	s.AudienceCriteria = criteria
	if _, err = a.applyAudience(ctx, s.CustomerID, s.CampaignResourceName, *criteria); err != nil {
		return 0, err
	}
	s.Response = "Audience targeting applied; moving to scheduling and devices."
	return EventAdvance, nil
}

// applyAudience sends every exclusion group of criteria. Groups without
// resolvable entries are skipped by the exclusion service.
func (a *Agent) applyAudience(ctx context.Context, customerID, campaign string, criteria domain.AudienceCriteria) (*port.AudienceResult, error) {
	res := &port.AudienceResult{Criteria: criteria}
	var err error

	res.Interests, err = a.deps.Exclusions.ExcludeUserInterests(ctx, customerID, campaign,
		criteria.TaxonomyType, string(criteria.AudienceSearchTerm), criteria.Segments)
	if err != nil {
		return nil, fmt.Errorf("exclude user interests: %w", err)
	}
	res.Topics, err = a.deps.Exclusions.ExcludeTopics(ctx, customerID, campaign,
		string(criteria.TopicsSearchTerm), criteria.Topics)
	if err != nil {
		return nil, fmt.Errorf("exclude topics: %w", err)
	}
	res.Placements, err = a.deps.Exclusions.ExcludePlacements(ctx, customerID, campaign, criteria.PlacementExclusions)
	if err != nil {
		return nil, fmt.Errorf("exclude placements: %w", err)
	}
	res.Demographics, err = a.deps.Exclusions.ExcludeDemographics(ctx, customerID, campaign, criteria.Demographics())
	if err != nil {
		return nil, fmt.Errorf("exclude demographics: %w", err)
	}
	return res, nil
}

func (a *Agent) schedulingDevices(ctx context.Context, s *domain.Session, _ string) (Event, error) {
	rec, err := a.deps.Recommender.RecommendSchedulesDevices(ctx, s.Links, s.Locations)
	if err != nil {
		return 0, fmt.Errorf("recommend schedules and devices: %w", err)
	}
	s.Devices = rec.Devices()
	s.Schedules = rec.Schedules()

	if _, err = a.deps.Ads.AddDeviceTargeting(ctx, s.CustomerID, s.CampaignResourceName, s.Devices); err != nil {
		return 0, fmt.Errorf("add device targeting: %w", err)
	}
	if _, err = a.deps.Ads.SetAdSchedules(ctx, s.CustomerID, s.CampaignResourceName, s.Schedules); err != nil {
		return 0, fmt.Errorf("set ad schedules: %w", err)
	}
	if err = a.deps.Ads.SetContentExclusion(ctx, s.CustomerID, s.CampaignResourceName, a.settings.ContentExclusion); err != nil {
		return 0, fmt.Errorf("set content exclusion: %w", err)
	}
	s.Response = "Scheduling, devices, and content exclusions applied; proceeding."
	return EventAdvance, nil
}

func (a *Agent) creativeSetup(ctx context.Context, s *domain.Session, _ string) (Event, error) {
	elements, err := a.deps.Recommender.RecommendCampaignElements(ctx, s.Links)
	if err != nil {
		return 0, fmt.Errorf("recommend campaign elements: %w", err)
	}
	s.Elements = *elements
	s.Elements.Headlines = truncate(elements.Headlines, maxHeadlines)
	s.Elements.Descriptions = truncate(elements.Descriptions, maxDescriptions)

	s.TrackingTemplate = fmt.Sprintf(trackingTemplateFormat, s.TargetURL())
	s.CustomParameters = append([]domain.CustomParameter(nil), trackingParameters...)
	err = a.deps.Ads.SetCampaignURLOptions(ctx, s.CustomerID, s.CampaignResourceName, s.TrackingTemplate, s.CustomParameters)
	if err != nil {
		return 0, fmt.Errorf("set url options: %w", err)
	}

	s.AdGroupResourceName, err = a.deps.Ads.CreateAdGroup(ctx, s.CustomerID, domain.AdGroupSpec{
		Name:     a.settings.AdGroupName,
		Campaign: s.CampaignResourceName,
		Status:   domain.AdGroupPaused,
		Type:     domain.AdGroupDisplayStandard,
	})
	if err != nil {
		return 0, fmt.Errorf("create ad group: %w", err)
	}

	if s.Summary, err = a.deps.Recommender.Summarize(ctx, s.Links); err != nil {
		return 0, fmt.Errorf("summarize: %w", err)
	}
	if err = a.uploadImages(ctx, s); err != nil {
		return 0, err
	}

	longHeadline := a.settings.LongHeadline
	if len(s.Elements.LongHeadlines) > 0 && s.Elements.LongHeadlines[0] != "" {
		longHeadline = s.Elements.LongHeadlines[0]
	}
	s.AdResourceName, err = a.deps.Ads.CreateResponsiveDisplayAd(ctx, s.CustomerID, domain.ResponsiveDisplayAd{
		AdGroup:         s.AdGroupResourceName,
		Status:          domain.AdGroupPaused,
		FinalURLs:       append([]string(nil), s.Links...),
		BusinessName:    s.Elements.BusinessName,
		Headlines:       s.Elements.Headlines,
		LongHeadline:    longHeadline,
		Descriptions:    s.Elements.Descriptions,
		CallToAction:    a.settings.CallToAction,
		SquareImages:    []string{s.SquareImageAsset},
		LandscapeImages: []string{s.LandscapeImageAsset},
	})
	if err != nil {
		return 0, fmt.Errorf("create responsive display ad: %w", err)
	}
	s.Response = "Ad setup complete; campaign is ready for review."
	return EventAdvance, nil
}

// uploadImages generates a logo from the page summary, writes the square and
// landscape variants into a directory private to this session and uploads
// both as image assets. The directory is removed afterwards.
func (a *Agent) uploadImages(ctx context.Context, s *domain.Session) error {
	logo, err := a.deps.Images.GenerateImage(ctx, logoPrompt+s.Summary)
	if err != nil {
		return fmt.Errorf("generate logo: %w", err)
	}

	dir, err := os.MkdirTemp(a.settings.WorkDir, "session-*")
	if err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			a.logger.Warn("remove work dir", slog.String("dir", dir), slog.Any("error", rmErr))
		}
	}()

	logoPath := filepath.Join(dir, "logo.jpeg")
	if err = os.WriteFile(logoPath, logo, 0o600); err != nil {
		return fmt.Errorf("write logo: %w", err)
	}

	variants := []struct {
		file  string
		name  string
		size  domain.ImageSize
		asset *string
	}{
		{"square_image.jpeg", squareAssetName, domain.SquareImageSize, &s.SquareImageAsset},
		{"landscape_image.jpeg", landscapeAssetName, domain.LandscapeImageSize, &s.LandscapeImageAsset},
	}
	for _, v := range variants {
		path := filepath.Join(dir, v.file)
		if err = a.deps.Resizer.Resize(logoPath, path, v.size); err != nil {
			return fmt.Errorf("resize %s: %w", v.file, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", v.file, err)
		}
		if *v.asset, err = a.deps.Ads.CreateImageAsset(ctx, s.CustomerID, data, v.name); err != nil {
			return fmt.Errorf("create image asset %q: %w", v.name, err)
		}
	}
	return nil
}

func (a *Agent) terminal(context.Context, *domain.Session, string) (Event, error) {
	return EventAdvance, nil
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		list = list[:n]
	}
	return append([]string(nil), list...)
}
