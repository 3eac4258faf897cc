package handler

import (
	"net/http"

	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/game"
	"github.com/akwawa/guildmaster/internal/logger"
	"github.com/akwawa/guildmaster/internal/metrics"
	"github.com/akwawa/guildmaster/internal/save"
)

// GameHandler handles the game lifecycle HTTP endpoints
type GameHandler struct {
	svc   *game.Service
	saves *save.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(svc *game.Service, saves *save.Service) *GameHandler {
	return &GameHandler{svc: svc, saves: saves}
}

// NewGameRequest is the request body for starting a new game
type NewGameRequest struct {
	PlayerID  string `json:"playerId" validate:"required,max=64"`
	GuildName string `json:"guildName" validate:"required,max=64"`
	LeaderID  string `json:"leaderId" validate:"required"`
}

// PlayerRequest is the request body for operations that only need the player
type PlayerRequest struct {
	PlayerID string `json:"playerId" validate:"required,max=64"`
}

// GameStateResponse wraps the full save for state endpoints
type GameStateResponse struct {
	Message string          `json:"message,omitempty"`
	Save    domain.GameSave `json:"save"`
}

// HandleNewGame creates a fresh save for the chosen leader and persists it.
// An existing save for the player is overwritten.
func (h *GameHandler) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	if err := DecodeAndValidateRequest(r, w, &req, "New game"); err != nil {
		return
	}

	newSave, err := h.svc.NewGame(req.PlayerID, req.GuildName, req.LeaderID)
	if err != nil {
		respondServiceError(w, r, "New game", err)
		return
	}

	if !h.persist(w, r, req.PlayerID, newSave, "New game") {
		return
	}
	respondJSON(w, http.StatusCreated, GameStateResponse{Message: MsgGameCreatedSuccess, Save: newSave})
}

// HandleGetState returns the player's current save
func (h *GameHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	current, err := h.saves.Load(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get state", err)
		return
	}

	respondJSON(w, http.StatusOK, GameStateResponse{Save: current})
}

// HandleAdvanceCycle advances the simulation by one period and persists the result
func (h *GameHandler) HandleAdvanceCycle(w http.ResponseWriter, r *http.Request) {
	var req PlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Advance cycle"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Advance cycle", err)
		return
	}

	next := h.svc.AdvanceCycle(current)
	recordCycleMetrics(current, next)

	if !h.persist(w, r, req.PlayerID, next, "Advance cycle") {
		return
	}
	respondJSON(w, http.StatusOK, GameStateResponse{Message: MsgCycleAdvancedSuccess, Save: next})
}

// HandleDeleteSave removes the player's save
func (h *GameHandler) HandleDeleteSave(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	if err := h.saves.Delete(r.Context(), playerID); err != nil {
		respondServiceError(w, r, "Delete save", err)
		return
	}

	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSaveDeletedSuccess})
}

// persist writes the save and reports failure to the client. Returns false
// when a response has already been written.
func (h *GameHandler) persist(w http.ResponseWriter, r *http.Request, playerID string, s domain.GameSave, opName string) bool {
	if err := h.saves.Store(r.Context(), playerID, s); err != nil {
		metrics.SaveWriteFailures.Inc()
		logger.FromContext(r.Context()).Error(opName+": persisting save failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgSaveGameFailed)
		return false
	}
	metrics.SavesWritten.Inc()
	return true
}

// recordCycleMetrics diffs two saves around an advanceCycle call and updates
// the game counters.
func recordCycleMetrics(before, after domain.GameSave) {
	metrics.CyclesAdvanced.Inc()

	for _, cq := range after.CompletedQuests[len(before.CompletedQuests):] {
		outcome := metrics.OutcomeFailure
		if cq.Success {
			outcome = metrics.OutcomeSuccess
		}
		metrics.QuestsResolved.WithLabelValues(outcome).Inc()
	}

	known := make(map[string]bool, len(before.AvailableQuests))
	for _, q := range before.AvailableQuests {
		known[q.ID] = true
	}
	for _, q := range after.AvailableQuests {
		if !known[q.ID] {
			metrics.QuestsGenerated.WithLabelValues(string(q.Rarity)).Inc()
		}
	}
}
