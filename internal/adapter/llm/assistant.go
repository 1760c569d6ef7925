package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	budgetToolName   = "create_campaign_budget"
	campaignToolName = "create_campaign"
)

var budgetTool = shared.FunctionDefinitionParam{
	Name:        budgetToolName,
	Description: openai.String("Create the budget of the campaign."),
	Parameters: shared.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			"amount_micros": map[string]any{
				"type":        "string",
				"description": "Budget amount in micros. 1 USD (or 1 unit of another currency) = 1,000,000 micros.",
			},
		},
		"required": []string{"amount_micros"},
	},
}

var campaignTool = shared.FunctionDefinitionParam{
	Name:        campaignToolName,
	Description: openai.String("Create a campaign with the given name and duration."),
	Parameters: shared.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			"campaign_name": map[string]any{
				"type":        "string",
				"description": "The name of the campaign.",
			},
			"time_duration": map[string]any{
				"type":        "integer",
				"description": "Duration of the campaign in days.",
			},
		},
		"required": []string{"campaign_name", "time_duration"},
	},
}

// ExtractBudget asks the model to call create_campaign_budget for text. Any
// free text in the answer is returned as the reply's Question, even when a
// tool call came with it.
func (c *Client) ExtractBudget(ctx context.Context, text string) (*port.BudgetReply, error) {
	tool := budgetTool
	out, err := c.complete(ctx, request{
		model:  c.cfg.AgentModel,
		system: budgetSystemPrompt,
		user:   text,
		tool:   &tool,
	})
	if err != nil {
		return nil, err
	}
	if out.Content != "" || out.ToolName != budgetToolName {
		return &port.BudgetReply{Question: questionOf(out)}, nil
	}

	var args struct {
		AmountMicros json.RawMessage `json:"amount_micros"`
	}
	if err := json.Unmarshal([]byte(out.Arguments), &args); err != nil {
		return nil, fmt.Errorf("decode %s arguments: %w", budgetToolName, err)
	}
	micros, err := parseMicros(args.AmountMicros)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", budgetToolName, err)
	}
	return &port.BudgetReply{AmountMicros: micros}, nil
}

// ExtractCampaignDetails asks the model to call create_campaign for text.
// Free text in the answer wins over the tool call, as in ExtractBudget.
func (c *Client) ExtractCampaignDetails(ctx context.Context, text string) (*port.CampaignReply, error) {
	tool := campaignTool
	out, err := c.complete(ctx, request{
		model:  c.cfg.AgentModel,
		system: campaignSystemPrompt,
		user:   text,
		tool:   &tool,
	})
	if err != nil {
		return nil, err
	}
	if out.Content != "" || out.ToolName != campaignToolName {
		return &port.CampaignReply{Question: questionOf(out)}, nil
	}

	var args struct {
		Name     string         `json:"campaign_name"`
		Duration domain.FlexInt `json:"time_duration"`
	}
	if err := json.Unmarshal([]byte(out.Arguments), &args); err != nil {
		return nil, fmt.Errorf("decode %s arguments: %w", campaignToolName, err)
	}
	name := strings.TrimSpace(args.Name)
	switch {
	case name == "":
		return &port.CampaignReply{Question: "What should the campaign be called?"}, nil
	case args.Duration <= 0:
		return &port.CampaignReply{Question: "For how many days should the campaign run?"}, nil
	}
	return &port.CampaignReply{Name: name, DurationDays: int(args.Duration)}, nil
}

// questionOf returns the free text of a reply, or a generic question when
// the model called an unexpected function without saying anything.
func questionOf(out *completion) string {
	if out.Content != "" {
		return out.Content
	}
	return "Could you provide more details?"
}

// parseMicros accepts "500000000", 500000000, "500,000,000" and "5e8".
func parseMicros(raw json.RawMessage) (int64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	s = strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	if s == "" || s == "null" {
		return 0, fmt.Errorf("missing amount_micros")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return validMicros(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount_micros %q", s)
	}
	if math.IsNaN(f) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return 0, fmt.Errorf("amount_micros %q out of range", s)
	}
	return validMicros(int64(f))
}

func validMicros(n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("amount_micros must be positive, got %d", n)
	}
	return n, nil
}
