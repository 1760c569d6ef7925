package googleads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"adpilot/internal/core/domain"
)

type userInterestRow struct {
	UserInterest struct {
		ResourceName string `json:"resourceName"`
		Name         string `json:"name"`
	} `json:"userInterest"`
}

// ExcludeUserInterests excludes the named user interest segments of the
// given taxonomy (AFFINITY, IN_MARKET). An unknown taxonomy drops the
// taxonomy filter. The lookup query is always sent; segments that do not
// match a returned name are skipped.
func (c *Client) ExcludeUserInterests(ctx context.Context, customerID, campaignName, taxonomy, searchTerm string, segments []string) (bool, error) {
	var where []string
	if t, ok := domain.ParseTaxonomyType(taxonomy); ok {
		where = append(where, "user_interest.taxonomy_type = "+string(t))
	} else {
		c.logger.Warn("unknown user interest taxonomy, searching all", slog.String("taxonomy", taxonomy))
	}
	if term := strings.TrimSpace(searchTerm); term != "" {
		where = append(where, "user_interest.name LIKE "+quote("%"+term+"%"))
	}
	query := "SELECT user_interest.resource_name, user_interest.name FROM user_interest"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	rows, err := search[userInterestRow](ctx, c, customerID, query)
	if err != nil {
		return false, fmt.Errorf("query user interests: %w", err)
	}
	byName := make(map[string]string, len(rows))
	for _, r := range rows {
		byName[r.UserInterest.Name] = r.UserInterest.ResourceName
	}

	var ops []operation[campaignCriterion]
	for _, name := range segments {
		res, ok := byName[name]
		if !ok || res == "" {
			continue
		}
		ops = append(ops, create(campaignCriterion{
			Campaign:     campaignName,
			Negative:     true,
			UserInterest: &userInterestInfo{UserInterestCategory: res},
		}))
	}
	sent, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("exclude user interests: %w", err)
	}
	return sent, nil
}

type topicRow struct {
	TopicConstant struct {
		ResourceName string   `json:"resourceName"`
		Path         []string `json:"path"`
	} `json:"topicConstant"`
}

// ExcludeTopics excludes topics identified by their full path joined with
// "/", e.g. "/Arts & Entertainment/Humor".
func (c *Client) ExcludeTopics(ctx context.Context, customerID, campaignName, searchTerm string, topics []string) (bool, error) {
	query := "SELECT topic_constant.resource_name, topic_constant.path FROM topic_constant"
	if term := strings.TrimSpace(searchTerm); term != "" {
		query += " WHERE topic_constant.path CONTAINS ANY (" + quote(term) + ")"
	}
	rows, err := search[topicRow](ctx, c, customerID, query)
	if err != nil {
		return false, fmt.Errorf("query topics: %w", err)
	}
	byPath := make(map[string]string, len(rows))
	for _, r := range rows {
		byPath[strings.Join(r.TopicConstant.Path, "/")] = r.TopicConstant.ResourceName
	}

	var ops []operation[campaignCriterion]
	for _, path := range topics {
		res, ok := byPath[path]
		if !ok || res == "" {
			continue
		}
		ops = append(ops, create(campaignCriterion{
			Campaign: campaignName,
			Negative: true,
			Topic:    &topicInfo{TopicConstant: res},
		}))
	}
	sent, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("exclude topics: %w", err)
	}
	return sent, nil
}

// ExcludePlacements excludes each placement URL.
func (c *Client) ExcludePlacements(ctx context.Context, customerID, campaignName string, urls []string) (bool, error) {
	ops := make([]operation[campaignCriterion], 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u == "" {
			continue
		}
		ops = append(ops, create(campaignCriterion{
			Campaign:  campaignName,
			Negative:  true,
			Placement: &placementInfo{URL: u},
		}))
	}
	sent, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("exclude placements: %w", err)
	}
	return sent, nil
}

// ExcludeDemographics sends every demographic exclusion in one request.
func (c *Client) ExcludeDemographics(ctx context.Context, customerID, campaignName string, d domain.DemographicExclusions) (bool, error) {
	if d.Empty() {
		return false, nil
	}
	var ops []operation[campaignCriterion]
	negative := func(cc campaignCriterion) {
		cc.Campaign = campaignName
		cc.Negative = true
		ops = append(ops, create(cc))
	}
	for _, g := range d.Genders {
		negative(campaignCriterion{Gender: &typeInfo{Type: string(g)}})
	}
	for _, a := range d.AgeRanges {
		negative(campaignCriterion{AgeRange: &typeInfo{Type: string(a)}})
	}
	for _, p := range d.ParentalStatuses {
		negative(campaignCriterion{ParentalStatus: &typeInfo{Type: string(p)}})
	}
	for _, i := range d.IncomeRanges {
		negative(campaignCriterion{IncomeRange: &typeInfo{Type: string(i)}})
	}
	sent, err := c.sendCriteria(ctx, customerID, ops)
	if err != nil {
		return false, fmt.Errorf("exclude demographics: %w", err)
	}
	return sent, nil
}
