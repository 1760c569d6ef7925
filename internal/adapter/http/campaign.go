package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

type executeResponse struct {
	RunID     string              `json:"runId"`
	Complete  bool                `json:"complete"`
	Responses []domain.StepResult `json:"responses"`
}

// handleExecuteQueries builds a campaign from {budget, days, campaignId, url}
// and returns the per step results. Validation errors produce HTTP 400,
// any failure while building produces HTTP 500.
func (h *Handler) handleExecuteQueries(w http.ResponseWriter, r *http.Request) {
	var req port.CampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	run, err := h.campaigns.ExecuteQueries(r.Context(), req)
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		attrs := []any{slog.Any("error", err), slog.String("campaign_id", req.CampaignID)}
		if run != nil {
			attrs = append(attrs, slog.String("run_id", run.ID), slog.Int("steps", len(run.Responses)))
		}
		h.logger.Error("execute queries error", attrs...)
		h.writeError(w, http.StatusInternalServerError, "campaign build failed")
		return
	}
	h.writeJSON(w, http.StatusOK, executeResponse{
		RunID:     run.ID,
		Complete:  run.Complete,
		Responses: run.Responses,
	})
}

func (h *Handler) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = min(n, maxListLimit)
	}
	runs, err := h.campaigns.ListRuns(r.Context(), limit)
	if err != nil {
		h.logger.Error("list runs error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"campaigns": runs})
}

func (h *Handler) handleGetRun(w http.ResponseWriter, r *http.Request) {
	run, err := h.campaigns.GetRun(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "campaign run not found")
	case err != nil:
		h.logger.Error("get run error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, run)
	}
}

type audienceRequest struct {
	URL string `json:"url"`
}

func (h *Handler) handleAudienceExclusions(w http.ResponseWriter, r *http.Request) {
	var req audienceRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.campaigns.ApplyAudienceExclusions(r.Context(),
		chi.URLParam(r, "customerId"), chi.URLParam(r, "campaignId"), req.URL)
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		h.logger.Error("audience exclusions error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "audience exclusions failed")
	default:
		h.writeJSON(w, http.StatusOK, res)
	}
}

func (h *Handler) handleCampaignOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.campaigns.Overview(r.Context(), chi.URLParam(r, "customerId"), chi.URLParam(r, "campaignId"))
	switch {
	case errors.Is(err, port.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, port.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "campaign not found")
	case err != nil:
		h.logger.Error("campaign overview error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal error")
	default:
		h.writeJSON(w, http.StatusOK, overview)
	}
}
