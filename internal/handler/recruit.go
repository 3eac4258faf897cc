package handler

import (
	"net/http"

	"github.com/akwawa/guildmaster/internal/metrics"
)

// HireRecruitRequest is the request body for hiring from the recruitment pool.
// Index addresses the current pool, which reshuffles once per day.
type HireRecruitRequest struct {
	PlayerID string `json:"playerId" validate:"required,max=64"`
	Index    *int   `json:"index" validate:"required,gte=0"`
}

// HandleGetRecruits returns the current recruitment pool
func (h *GameHandler) HandleGetRecruits(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	current, err := h.saves.Load(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get recruits", err)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: current.AvailableRecruits})
}

// HandleHireRecruit converts a pool candidate into a roster character
func (h *GameHandler) HandleHireRecruit(w http.ResponseWriter, r *http.Request) {
	var req HireRecruitRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Hire recruit"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Hire recruit", err)
		return
	}

	idx := *req.Index
	var rarity string
	if idx >= 0 && idx < len(current.AvailableRecruits) {
		rarity = string(current.AvailableRecruits[idx].Rarity)
	}

	next, err := h.svc.HireRecruit(current, idx)
	if err != nil {
		respondServiceError(w, r, "Hire recruit", err)
		return
	}
	metrics.RecruitsHired.WithLabelValues(rarity).Inc()

	if !h.persist(w, r, req.PlayerID, next, "Hire recruit") {
		return
	}
	respondJSON(w, http.StatusCreated, GameStateResponse{Message: MsgRecruitHiredSuccess, Save: next})
}
