package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"adpilot/internal/core/domain"
)

// RecommendCampaignElements returns business name, headlines, long headlines
// and descriptions for the pages at links.
func (c *Client) RecommendCampaignElements(ctx context.Context, links []string) (*domain.CampaignElements, error) {
	var out domain.CampaignElements
	if err := c.recommend(ctx, "campaign elements", campaignElementsPrompt, links, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendSchedulesDevices returns ad slots and devices for the audience of
// links in the given locations.
func (c *Client) RecommendSchedulesDevices(ctx context.Context, links []string, locations []domain.LocationHint) (*domain.ScheduleDeviceRecommendation, error) {
	names := make([]string, 0, len(locations))
	for _, l := range locations {
		names = append(names, l.Name)
	}
	suffix := " and here are the Target Locations: " + strings.Join(names, ", ")

	var out domain.ScheduleDeviceRecommendation
	if err := c.recommend(ctx, "schedules and devices", scheduleDevicePrompt, links, suffix, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendLocations returns location hints and the content language.
func (c *Client) RecommendLocations(ctx context.Context, links []string) (*domain.LocationRecommendation, error) {
	var out domain.LocationRecommendation
	if err := c.recommend(ctx, "locations", locationLanguagePrompt, links, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RecommendAudience returns audience exclusion criteria.
func (c *Client) RecommendAudience(ctx context.Context, links []string) (*domain.AudienceCriteria, error) {
	var out domain.AudienceCriteria
	if err := c.recommend(ctx, "audience", audiencePrompt, links, "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Summarize returns a plain text summary of the pages at links.
func (c *Client) Summarize(ctx context.Context, links []string) (string, error) {
	text, err := c.fetcher.Fetch(ctx, links)
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	out, err := c.complete(ctx, request{
		model:  c.cfg.RecommendModel,
		system: summaryPrompt,
		user:   text,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(out.Content), nil
}

// recommend fetches links, sends prompt in JSON mode and decodes the answer
// into dst.
func (c *Client) recommend(ctx context.Context, what, prompt string, links []string, suffix string, dst any) error {
	text, err := c.fetcher.Fetch(ctx, links)
	if err != nil {
		return fmt.Errorf("recommend %s: %w", what, err)
	}
	out, err := c.complete(ctx, request{
		model:    c.cfg.RecommendModel,
		system:   prompt,
		user:     "here is the Website Content: " + text + suffix,
		jsonMode: true,
	})
	if err != nil {
		return fmt.Errorf("recommend %s: %w", what, err)
	}
	if err := json.Unmarshal([]byte(out.Content), dst); err != nil {
		return fmt.Errorf("recommend %s: decode answer: %w", what, err)
	}
	return nil
}
