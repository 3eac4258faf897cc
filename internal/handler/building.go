package handler

import (
	"net/http"

	"github.com/akwawa/guildmaster/internal/metrics"
)

// StartUpgradeRequest is the request body for starting a building upgrade
type StartUpgradeRequest struct {
	PlayerID   string `json:"playerId" validate:"required,max=64"`
	BuildingID int    `json:"buildingId" validate:"required"`
}

// HandleStartUpgrade deducts the upgrade cost and starts the upgrade timer
func (h *GameHandler) HandleStartUpgrade(w http.ResponseWriter, r *http.Request) {
	var req StartUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start upgrade"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Start upgrade", err)
		return
	}

	next, err := h.svc.StartUpgrade(current, req.BuildingID)
	if err != nil {
		respondServiceError(w, r, "Start upgrade", err)
		return
	}

	for _, b := range next.Guild.Buildings {
		if b.ID == req.BuildingID {
			metrics.UpgradesStarted.WithLabelValues(string(b.Type)).Inc()
			break
		}
	}

	if !h.persist(w, r, req.PlayerID, next, "Start upgrade") {
		return
	}
	respondJSON(w, http.StatusOK, GameStateResponse{Message: MsgUpgradeStartedSuccess, Save: next})
}
