package googleads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adpilot/internal/core/domain"
)

// sendCriteria mutates ops in one request. It reports false without calling
// the API when ops is empty.
func (c *Client) sendCriteria(ctx context.Context, customerID string, ops []operation[campaignCriterion]) (bool, error) {
	if len(ops) == 0 {
		return false, nil
	}
	if _, err := mutate(ctx, c, customerID, serviceCampaignCriteria, ops); err != nil {
		return false, err
	}
	return true, nil
}

// SetLocationTargeting resolves each location through the geo target
// suggestion service in its own locale and targets every suggestion.
// Locations without suggestions are skipped.
func (c *Client) SetLocationTargeting(ctx context.Context, customerID, campaignName string, locations []domain.LocationHint) (bool, error) {
	var ops []operation[campaignCriterion]
	seen := make(map[string]bool)
	for _, loc := range locations {
		if strings.TrimSpace(loc.Name) == "" {
			continue
		}
		targets, err := c.suggestGeoTargets(ctx, loc.Locale, []string{loc.Name})
		if err != nil {
			return false, fmt.Errorf("suggest geo targets for %q: %w", loc.Name, err)
		}
		if len(targets) == 0 {
			c.logger.Warn("geo target not found",
				slog.String("location", loc.Name),
				slog.String("locale", loc.Locale))
			continue
		}
		for _, t := range targets {
			if seen[t] {
				continue
			}
			seen[t] = true
			ops = append(ops, create(campaignCriterion{
				Campaign: campaignName,
				Location: &locationInfo{GeoTargetConstant: t},
			}))
		}
	}
	ok, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("set location targeting: %w", err)
	}
	return ok, nil
}

type languageRow struct {
	LanguageConstant struct {
		ResourceName string `json:"resourceName"`
		Name         string `json:"name"`
	} `json:"languageConstant"`
}

// SetLanguageTargeting looks up language constants by display name and
// targets every match.
func (c *Client) SetLanguageTargeting(ctx context.Context, customerID, campaignName string, languages []string) (bool, error) {
	quoted := make([]string, 0, len(languages))
	for _, l := range languages {
		if l = strings.TrimSpace(l); l != "" {
			quoted = append(quoted, quote(l))
		}
	}
	if len(quoted) == 0 {
		return false, nil
	}
	query := "SELECT language_constant.resource_name, language_constant.name FROM language_constant " +
		"WHERE language_constant.name IN (" + strings.Join(quoted, ", ") + ")"
	rows, err := search[languageRow](ctx, c, customerID, query)
	if err != nil {
		return false, fmt.Errorf("query language constants: %w", err)
	}

	ops := make([]operation[campaignCriterion], 0, len(rows))
	for _, r := range rows {
		ops = append(ops, create(campaignCriterion{
			Campaign: campaignName,
			Language: &languageInfo{LanguageConstant: r.LanguageConstant.ResourceName},
		}))
	}
	ok, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("set language targeting: %w", err)
	}
	return ok, nil
}

// AddDeviceTargeting adds one device criterion per device.
func (c *Client) AddDeviceTargeting(ctx context.Context, customerID, campaignName string, devices []domain.Device) (bool, error) {
	ops := make([]operation[campaignCriterion], 0, len(devices))
	for _, d := range devices {
		ops = append(ops, create(campaignCriterion{
			Campaign: campaignName,
			Device:   &typeInfo{Type: string(d)},
		}))
	}
	ok, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("add device targeting: %w", err)
	}
	return ok, nil
}

// SetAdSchedules adds one ad schedule criterion per schedule.
func (c *Client) SetAdSchedules(ctx context.Context, customerID, campaignName string, schedules []domain.AdSchedule) (bool, error) {
	ops := make([]operation[campaignCriterion], 0, len(schedules))
	for _, s := range schedules {
		startMinute, endMinute := s.StartMinute, s.EndMinute
		if startMinute == "" {
			startMinute = domain.MinuteZero
		}
		if endMinute == "" {
			endMinute = domain.MinuteZero
		}
		ops = append(ops, create(campaignCriterion{
			Campaign: campaignName,
			AdSchedule: &adScheduleInfo{
				DayOfWeek:   string(s.Day),
				StartHour:   s.StartHour,
				EndHour:     s.EndHour,
				StartMinute: string(startMinute),
				EndMinute:   string(endMinute),
			},
		}))
	}
	ok, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("set ad schedules: %w", err)
	}
	return ok, nil
}

// SetContentExclusion excludes one content label from the campaign.
func (c *Client) SetContentExclusion(ctx context.Context, customerID, campaignName string, label domain.ContentLabel) error {
	op := create(campaignCriterion{
		Campaign:     campaignName,
		Negative:     true,
		ContentLabel: &typeInfo{Type: string(label)},
	})
	if _, err := c.sendCriteria(ctx, customerID, []operation[campaignCriterion]{op}); err != nil {
		return fmt.Errorf("set content exclusion %s: %w", label, err)
	}
	return nil
}
