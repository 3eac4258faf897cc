package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// CreateTeamRequest is the request body for forming a team
type CreateTeamRequest struct {
	PlayerID  string `json:"playerId" validate:"required,max=64"`
	Name      string `json:"name" validate:"required,max=64"`
	Specialty string `json:"specialty" validate:"max=32"`
	MemberIDs []int  `json:"memberIds" validate:"required,min=2,max=8"`
}

// HandleCreateTeam forms a new team from available roster characters
func (h *GameHandler) HandleCreateTeam(w http.ResponseWriter, r *http.Request) {
	var req CreateTeamRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create team"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Create team", err)
		return
	}

	next, err := h.svc.CreateTeam(current, req.Name, req.Specialty, req.MemberIDs)
	if err != nil {
		respondServiceError(w, r, "Create team", err)
		return
	}

	if !h.persist(w, r, req.PlayerID, next, "Create team") {
		return
	}
	respondJSON(w, http.StatusCreated, GameStateResponse{Message: MsgTeamCreatedSuccess, Save: next})
}

// HandleDisbandTeam removes a team; its members return to the free roster
func (h *GameHandler) HandleDisbandTeam(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	teamID, err := strconv.Atoi(chi.URLParam(r, "teamID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidTeamID)
		return
	}

	current, err := h.saves.Load(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Disband team", err)
		return
	}

	next, err := h.svc.DisbandTeam(current, teamID)
	if err != nil {
		respondServiceError(w, r, "Disband team", err)
		return
	}

	if !h.persist(w, r, playerID, next, "Disband team") {
		return
	}
	respondJSON(w, http.StatusOK, GameStateResponse{Message: MsgTeamDisbandedSuccess, Save: next})
}
