package handler

import (
	"net/http"

	"github.com/akwawa/guildmaster/internal/unlock"
)

// UnlocksResponse lists the unlocked UI sections and the next unlock hint
type UnlocksResponse struct {
	Sections []unlock.Section `json:"sections"`
	NextHint string           `json:"nextHint,omitempty"`
}

// HandleGetLeaders returns the selectable leader archetypes
func (h *GameHandler) HandleGetLeaders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DataResponse{Data: h.svc.Catalog().Leaders})
}

// HandleGetUnlocks returns the navigation sections available for the save
func (h *GameHandler) HandleGetUnlocks(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	current, err := h.saves.Load(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get unlocks", err)
		return
	}

	respondJSON(w, http.StatusOK, UnlocksResponse{
		Sections: unlock.UnlockedSections(current),
		NextHint: unlock.NextHint(current),
	})
}
