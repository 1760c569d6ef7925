package httpadapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
	"adpilot/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignUseCase, *mocks.MockAuthUseCase) {
	campaigns := mocks.NewMockCampaignUseCase(t)
	auth := mocks.NewMockAuthUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(campaigns, auth, []string{"*"}, logger), campaigns, auth
}

func do(h *Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestExecuteQueries(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	req := port.CampaignRequest{Budget: "50", Days: "7", CampaignID: "abc", URL: "https://example.com"}
	campaigns.EXPECT().ExecuteQueries(mock.Anything, req).Return(&domain.CampaignRun{
		ID:       "run-1",
		Complete: true,
		Responses: []domain.StepResult{
			{Step: domain.StateBudgeting, State: domain.StateCampaignSetup, Response: "Budget created", Duration: 0.5},
			{Step: domain.StateTerminal, State: domain.StateTerminal, Response: "done", Duration: 1.5},
		},
	}, nil)

	rec := do(h, http.MethodPost, "/api/executeQueries",
		`{"budget":"50","days":"7","campaignId":"abc","url":"https://example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RunID     string `json:"runId"`
		Complete  bool   `json:"complete"`
		Responses []struct {
			State    string  `json:"state"`
			Response string  `json:"response"`
			Duration float64 `json:"duration"`
		} `json:"responses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "run-1", body.RunID)
	assert.True(t, body.Complete)
	require.Len(t, body.Responses, 2)
	assert.Equal(t, "campaign_setup", body.Responses[0].State)
	assert.Equal(t, 1.5, body.Responses[1].Duration)
	assert.NotContains(t, rec.Body.String(), "audience_criteria")
}

func TestExecuteQueriesErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{name: "bad json", body: `{"budget":`, status: http.StatusBadRequest},
		{name: "invalid request", body: `{}`, err: fmt.Errorf("%w: campaignId is required", port.ErrInvalidRequest), status: http.StatusBadRequest},
		{name: "remote failure", body: `{}`, err: errors.New("quota"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, campaigns, _ := newTestHandler(t)
			if tt.err != nil {
				campaigns.EXPECT().ExecuteQueries(mock.Anything, mock.Anything).Return(&domain.CampaignRun{ID: "r"}, tt.err)
			}
			rec := do(h, http.MethodPost, "/api/executeQueries", tt.body, nil)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"detail"`)
		})
	}
}

func TestRunsEndpoints(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)

	campaigns.EXPECT().ListRuns(mock.Anything, 50).Return([]domain.CampaignRun{{ID: "r1"}}, nil)
	rec := do(h, http.MethodGet, "/api/campaigns", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"r1"`)

	campaigns.EXPECT().ListRuns(mock.Anything, 200).Return(nil, nil)
	rec = do(h, http.MethodGet, "/api/campaigns?limit=1000", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/campaigns?limit=zero", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	campaigns.EXPECT().GetRun(mock.Anything, "r1").Return(&domain.CampaignRun{ID: "r1", URL: "https://example.com"}, nil)
	rec = do(h, http.MethodGet, "/api/campaigns/r1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://example.com")

	campaigns.EXPECT().GetRun(mock.Anything, "missing").Return(nil, port.ErrNotFound)
	rec = do(h, http.MethodGet, "/api/campaigns/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAudienceExclusionsEndpoint(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)
	campaigns.EXPECT().ApplyAudienceExclusions(mock.Anything, "123", "42", "https://example.com").
		Return(&port.AudienceResult{Placements: true}, nil)

	rec := do(h, http.MethodPost, "/api/campaigns/123/42/audience-exclusions", `{"url":"https://example.com"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"placements":true`)
}

func TestCampaignOverviewEndpoint(t *testing.T) {
	h, campaigns, _ := newTestHandler(t)

	campaigns.EXPECT().Overview(mock.Anything, "123", "1").Return(&domain.CampaignOverview{ID: "1", Clicks: 3}, nil)
	rec := do(h, http.MethodGet, "/campaign_overview/123/1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"clicks":3`)

	campaigns.EXPECT().Overview(mock.Anything, "123", "2").Return(nil, port.ErrNotFound)
	rec = do(h, http.MethodGet, "/campaign_overview/123/2", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	campaigns.EXPECT().Overview(mock.Anything, "123", "3").Return(nil, errors.New("boom"))
	rec = do(h, http.MethodGet, "/campaign_overview/123/3", "", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthEndpoints(t *testing.T) {
	h, _, auth := newTestHandler(t)
	user := domain.User{ID: "u1", Email: "a@example.com", FullName: "A", PasswordHash: []byte("secret-hash")}

	auth.EXPECT().Register(mock.Anything, "a@example.com", "pw", "A").Return(&port.AuthResult{User: user, Token: "u1"}, nil).Once()
	rec := do(h, http.MethodPost, "/auth/register", `{"email":"a@example.com","password":"pw","fullName":"A"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"u1"`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")

	auth.EXPECT().Register(mock.Anything, "a@example.com", "pw", "A").Return(nil, port.ErrEmailTaken).Once()
	rec = do(h, http.MethodPost, "/auth/register", `{"email":"a@example.com","password":"pw","fullName":"A"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already in use")

	auth.EXPECT().Login(mock.Anything, "a@example.com", "bad").Return(nil, port.ErrInvalidCredentials)
	rec = do(h, http.MethodPost, "/auth/login", `{"email":"a@example.com","password":"bad"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodGet, "/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth.EXPECT().Me(mock.Anything, "nope").Return(nil, port.ErrUnauthorized)
	rec = do(h, http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth.EXPECT().Me(mock.Anything, "u1").Return(&user, nil)
	rec = do(h, http.MethodGet, "/auth/me", "", map[string]string{"Authorization": "Bearer u1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullName":"A"`)
}

func TestCORSPreflight(t *testing.T) {
	h, _, _ := newTestHandler(t)
	rec := do(h, http.MethodOptions, "/api/executeQueries", "", map[string]string{
		"Origin":                        "http://localhost:8080",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Less(t, rec.Code, 300)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
