package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchboard/internal/usecase"
)

func (h *Handler) ListScrapeSports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListScrapeSports")
	defer span.End()

	sports, err := h.scrapeOrchestrator.ListSports(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list sports failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, sports)
}

func (h *Handler) GetPreviousRunConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreviousRunConfig")
	defer span.End()

	cfg, err := h.scrapeOrchestrator.PreviousConfig(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "read previous run config failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cfg)
}

func (h *Handler) SubmitRunConfig(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitRunConfig")
	defer span.End()

	var req submitRunConfigRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	dates := make([]usecase.DateSelection, 0, len(req.Dates))
	for _, item := range req.Dates {
		dates = append(dates, usecase.DateSelection{
			Type:  item.Type,
			Date:  item.Date,
			Start: item.Start,
			End:   item.End,
		})
	}

	status, err := h.scrapeOrchestrator.SubmitRunConfig(ctx, usecase.SubmitRunConfigInput{
		Sports: req.Sports,
		Dates:  dates,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit run config failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusAccepted, status)
}

func (h *Handler) GetRunStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRunStatus")
	defer span.End()

	status, err := h.scrapeOrchestrator.GetRunStatus(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "read run status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, status)
}

func (h *Handler) GetStagedMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStagedMatches")
	defer span.End()

	items, err := h.scrapeOrchestrator.GetStagedMatches(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "read staged matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetScrapePool(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScrapePool")
	defer span.End()

	pool, err := h.scrapeOrchestrator.GetPool(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "read scrape pool failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, pool)
}

func (h *Handler) AcceptMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AcceptMatches")
	defer span.End()

	var req acceptMatchesRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchAcceptance.AcceptMatches(ctx, usecase.AcceptMatchesInput{
		LeagueIDs:        req.SelectedLeagueIDs,
		MatchIDs:         req.SelectedMatchIDs,
		TimestampChoice:  req.SelectedMatchStampTypes,
		CountryInclusion: req.SelectedMatchCountries,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "accept matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
