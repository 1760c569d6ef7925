package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/config/configs"
	"adpilot/internal/core/domain"
	"adpilot/internal/core/port/mocks"
)

// fakeChat answers every chat completion request with the next queued
// message and records the decoded requests.
type fakeChat struct {
	mu       sync.Mutex
	replies  []map[string]any
	requests []map[string]any
}

func (f *fakeChat) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/chat/completions" {
		http.NotFound(w, r)
		return
	}
	raw, _ := io.ReadAll(r.Body)
	var req map[string]any
	_ = json.Unmarshal(raw, &req)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	if len(f.replies) == 0 {
		f.mu.Unlock()
		http.Error(w, `{"error":{"message":"no reply queued"}}`, http.StatusInternalServerError)
		return
	}
	msg := f.replies[0]
	f.replies = f.replies[1:]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   req["model"],
		"choices": []any{map[string]any{
			"index":         0,
			"finish_reason": "stop",
			"message":       msg,
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
	})
}

func (f *fakeChat) queueText(content string) {
	f.replies = append(f.replies, map[string]any{"role": "assistant", "content": content})
}

func (f *fakeChat) queueToolCall(name, args string) {
	f.replies = append(f.replies, map[string]any{
		"role":    "assistant",
		"content": nil,
		"tool_calls": []any{map[string]any{
			"id":       "call_1",
			"type":     "function",
			"function": map[string]any{"name": name, "arguments": args},
		}},
	})
}

// queueTextWithToolCall answers with free text and a function call in the
// same message.
func (f *fakeChat) queueTextWithToolCall(content, name, args string) {
	f.queueToolCall(name, args)
	f.replies[len(f.replies)-1]["content"] = content
}

func (f *fakeChat) lastRequest(t *testing.T) map[string]any {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests)
	return f.requests[len(f.requests)-1]
}

func newTestClient(t *testing.T, fetcher *mocks.MockContentFetcher) (*fakeChat, *Client) {
	t.Helper()
	f := &fakeChat{}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)

	c := New(configs.LLM{
		APIKey:         "test-key",
		BaseURL:        srv.URL + "/",
		AgentModel:     "agent-model",
		RecommendModel: "recommend-model",
		MaxTokens:      4096,
	}, fetcher, srv.Client(), nil)
	return f, c
}

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		name string
		args string
		want int64
	}{
		{name: "string micros", args: `{"amount_micros":"500000000"}`, want: 500_000_000},
		{name: "numeric micros", args: `{"amount_micros":250000000}`, want: 250_000_000},
		{name: "grouped digits", args: `{"amount_micros":"1,000,000"}`, want: 1_000_000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, c := newTestClient(t, nil)
			f.queueToolCall(budgetToolName, tc.args)

			reply, err := c.ExtractBudget(context.Background(), "i have 500 dollar budget for campaign")
			require.NoError(t, err)
			assert.Empty(t, reply.Question)
			assert.Equal(t, tc.want, reply.AmountMicros)

			req := f.lastRequest(t)
			assert.Equal(t, "agent-model", req["model"])
			assert.Equal(t, "auto", req["tool_choice"])
			assert.EqualValues(t, 4096, req["max_tokens"])
			tools := req["tools"].([]any)
			require.Len(t, tools, 1)
			fn := tools[0].(map[string]any)["function"].(map[string]any)
			assert.Equal(t, budgetToolName, fn["name"])
		})
	}
}

func TestExtractBudgetQuestion(t *testing.T) {
	f, c := newTestClient(t, nil)
	f.queueText("How much would you like to spend?")

	reply, err := c.ExtractBudget(context.Background(), "make me a campaign")
	require.NoError(t, err)
	assert.Equal(t, "How much would you like to spend?", reply.Question)
	assert.Zero(t, reply.AmountMicros)
}

func TestExtractBudgetTextWithToolCallAsks(t *testing.T) {
	f, c := newTestClient(t, nil)
	f.queueTextWithToolCall("Did you mean 50 USD per day?", budgetToolName, `{"amount_micros":"50000000"}`)

	reply, err := c.ExtractBudget(context.Background(), "i have 50 dollar budget for campaign")
	require.NoError(t, err)
	assert.Equal(t, "Did you mean 50 USD per day?", reply.Question)
	assert.Zero(t, reply.AmountMicros)
}

func TestExtractBudgetRejectsBadAmount(t *testing.T) {
	for _, args := range []string{
		`{"amount_micros":"lots"}`,
		`{"amount_micros":"1e30"}`,
		`{"amount_micros":"-5"}`,
	} {
		t.Run(args, func(t *testing.T) {
			f, c := newTestClient(t, nil)
			f.queueToolCall(budgetToolName, args)

			_, err := c.ExtractBudget(context.Background(), "lots of money")
			require.Error(t, err)
		})
	}
}

func TestExtractCampaignDetails(t *testing.T) {
	t.Run("tool call", func(t *testing.T) {
		f, c := newTestClient(t, nil)
		f.queueToolCall(campaignToolName, `{"campaign_name":"shop-1700000000","time_duration":"7"}`)

		reply, err := c.ExtractCampaignDetails(context.Background(), "for 7 days and id will be shop-1700000000")
		require.NoError(t, err)
		assert.Equal(t, "shop-1700000000", reply.Name)
		assert.Equal(t, 7, reply.DurationDays)
		assert.Empty(t, reply.Question)
	})

	t.Run("missing duration asks", func(t *testing.T) {
		f, c := newTestClient(t, nil)
		f.queueToolCall(campaignToolName, `{"campaign_name":"shop","time_duration":0}`)

		reply, err := c.ExtractCampaignDetails(context.Background(), "call it shop")
		require.NoError(t, err)
		assert.NotEmpty(t, reply.Question)
		assert.Empty(t, reply.Name)
	})

	t.Run("free text with tool call asks", func(t *testing.T) {
		f, c := newTestClient(t, nil)
		f.queueTextWithToolCall("Should the campaign run for 7 days?", campaignToolName,
			`{"campaign_name":"shop","time_duration":7}`)

		reply, err := c.ExtractCampaignDetails(context.Background(), "for 7 days and id will be shop")
		require.NoError(t, err)
		assert.Equal(t, "Should the campaign run for 7 days?", reply.Question)
		assert.Empty(t, reply.Name)
		assert.Zero(t, reply.DurationDays)
	})

	t.Run("free text asks", func(t *testing.T) {
		f, c := newTestClient(t, nil)
		f.queueText("What is the campaign name?")

		reply, err := c.ExtractCampaignDetails(context.Background(), "for 7 days")
		require.NoError(t, err)
		assert.Equal(t, "What is the campaign name?", reply.Question)
	})
}

func TestRecommendLocations(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, []string{"https://shop.example"}).Return("Karachi bakery", nil)

	f, c := newTestClient(t, fetcher)
	f.queueText(`{"locations":[["Pakistan","ur"],["Karachi","ur"]],"language":"Urdu"}`)

	got, err := c.RecommendLocations(context.Background(), []string{"https://shop.example"})
	require.NoError(t, err)
	assert.Equal(t, []domain.LocationHint{{Name: "Pakistan", Locale: "ur"}, {Name: "Karachi", Locale: "ur"}}, got.Locations)
	assert.Equal(t, domain.StringList{"Urdu"}, got.Language)

	req := f.lastRequest(t)
	assert.Equal(t, "recommend-model", req["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, req["response_format"])
	msgs := req["messages"].([]any)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[1].(map[string]any)["content"], "Karachi bakery")
}

func TestRecommendSchedulesDevices(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("office software", nil)

	f, c := newTestClient(t, fetcher)
	f.queueText(`{"ad_schedule":[{"day_of_week":"monday","start_hour":9,"end_hour":"17"},{"day_of_week":"someday","start_hour":1,"end_hour":2}],"device":["Desktop","Smartwatch"]}`)

	got, err := c.RecommendSchedulesDevices(context.Background(), []string{"https://x.example"},
		[]domain.LocationHint{{Name: "Germany", Locale: "de"}})
	require.NoError(t, err)
	assert.Equal(t, []domain.Device{domain.DeviceDesktop}, got.Devices())
	assert.Equal(t, []domain.AdSchedule{{
		Day: domain.Monday, StartHour: 9, EndHour: 17,
		StartMinute: domain.MinuteZero, EndMinute: domain.MinuteZero,
	}}, got.Schedules())

	msgs := f.lastRequest(t)["messages"].([]any)
	assert.Contains(t, msgs[1].(map[string]any)["content"], "Germany")
}

func TestRecommendCampaignElementsAndAudience(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("content", nil).Times(2)

	f, c := newTestClient(t, fetcher)
	f.queueText(`{"business_name":"Shop","headlines":["A","B"],"long_headlines":["Long A"],"descriptions":["D"]}`)
	f.queueText(`{"taxonomy_type":"IN_MARKET","audience_search_term":null,"segments":[],"topics_search_term":["Arts"],"topics":[],"placement_exclusions":[],"gender_exclusions":["Male"],"age_range_exclusions":["65+"],"parental_status_exclusions":[],"income_range_exclusions":["90%+"]}`)

	el, err := c.RecommendCampaignElements(context.Background(), []string{"https://x.example"})
	require.NoError(t, err)
	assert.Equal(t, &domain.CampaignElements{
		BusinessName:  "Shop",
		Headlines:     []string{"A", "B"},
		LongHeadlines: []string{"Long A"},
		Descriptions:  []string{"D"},
	}, el)

	aud, err := c.RecommendAudience(context.Background(), []string{"https://x.example"})
	require.NoError(t, err)
	assert.Equal(t, "IN_MARKET", aud.TaxonomyType)
	assert.Empty(t, string(aud.AudienceSearchTerm))
	assert.Equal(t, "Arts", string(aud.TopicsSearchTerm))
	assert.Equal(t, domain.DemographicExclusions{
		Genders:      []domain.Gender{domain.GenderMale},
		AgeRanges:    []domain.AgeRange{domain.AgeRange65Up},
		IncomeRanges: []domain.IncomeRange{domain.IncomeRange90Up},
	}, aud.Demographics())
}

func TestRecommendInvalidJSON(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("content", nil)

	f, c := newTestClient(t, fetcher)
	f.queueText(`not json`)

	_, err := c.RecommendLocations(context.Background(), []string{"https://x.example"})
	require.Error(t, err)
}

func TestRecommendFetchFailure(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	boom := errors.New("boom")
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("", boom)

	f, c := newTestClient(t, fetcher)
	_, err := c.RecommendAudience(context.Background(), []string{"https://x.example"})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, f.requests)
}

func TestSummarize(t *testing.T) {
	fetcher := mocks.NewMockContentFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, mock.Anything).Return("long page", nil)

	f, c := newTestClient(t, fetcher)
	f.queueText("  A bakery in Karachi selling fresh bread.  ")

	got, err := c.Summarize(context.Background(), []string{"https://x.example"})
	require.NoError(t, err)
	assert.Equal(t, "A bakery in Karachi selling fresh bread.", got)

	_, hasFormat := f.lastRequest(t)["response_format"]
	assert.False(t, hasFormat)
}

func TestRemoteErrorPropagates(t *testing.T) {
	_, c := newTestClient(t, nil)

	_, err := c.ExtractBudget(context.Background(), "500 dollars")
	require.Error(t, err)
}
