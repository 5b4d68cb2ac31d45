package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchboard/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	items, err := h.scheduleService.ListSchedule(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) AddManualMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddManualMatch")
	defer span.End()

	var req manualMatchRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.scheduleService.AddManualMatch(ctx, usecase.ManualMatchInput{
		League:        req.League,
		LeagueImage:   req.LeagueImage,
		LeagueCountry: req.LeagueCountry,
		Sport:         req.Sport,
		Team1:         req.Team1,
		Team1Image:    req.Team1Image,
		Team2:         req.Team2,
		Team2Image:    req.Team2Image,
		Venue:         req.Venue,
		Date:          req.Date,
		Time:          req.Time,
		OffsetMinutes: req.OffsetMinutes,
		Duration:      req.Duration,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add manual match failed", "league", req.League, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.scheduleService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": []string{matchID}})
}

func (h *Handler) DeleteMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatches")
	defer span.End()

	var req deleteMatchesRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.scheduleService.DeleteMatches(ctx, req.IDs); err != nil {
		h.logger.WarnContext(ctx, "delete matches failed", "count", len(req.IDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"deleted": req.IDs})
}
