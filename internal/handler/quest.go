package handler

import (
	"net/http"

	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/metrics"
	"github.com/akwawa/guildmaster/internal/progression"
)

// AssignQuestRequest is the request body for dispatching a team on a quest
type AssignQuestRequest struct {
	PlayerID string `json:"playerId" validate:"required,max=64"`
	QuestID  string `json:"questId" validate:"required"`
	TeamID   int    `json:"teamId" validate:"required"`
}

// CollectRewardRequest is the request body for collecting a resolved quest
type CollectRewardRequest struct {
	PlayerID string `json:"playerId" validate:"required,max=64"`
	QuestID  string `json:"questId" validate:"required"`
}

// VisibleQuestView is a quest enriched with the per-team success estimate
type VisibleQuestView struct {
	domain.Quest
	EstimatedChances map[int]float64 `json:"estimatedChances,omitempty"`
}

// HandleAssignQuest dispatches an available team on a visible quest
func (h *GameHandler) HandleAssignQuest(w http.ResponseWriter, r *http.Request) {
	var req AssignQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Assign quest"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Assign quest", err)
		return
	}

	next, err := h.svc.AssignQuest(current, req.QuestID, req.TeamID)
	if err != nil {
		respondServiceError(w, r, "Assign quest", err)
		return
	}

	if !h.persist(w, r, req.PlayerID, next, "Assign quest") {
		return
	}
	respondJSON(w, http.StatusOK, GameStateResponse{Message: MsgQuestAssignedSuccess, Save: next})
}

// HandleCollectReward settles a resolved quest. Collecting an absent or
// already-collected quest succeeds without changing anything.
func (h *GameHandler) HandleCollectReward(w http.ResponseWriter, r *http.Request) {
	var req CollectRewardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Collect reward"); err != nil {
		return
	}

	current, err := h.saves.Load(r.Context(), req.PlayerID)
	if err != nil {
		respondServiceError(w, r, "Collect reward", err)
		return
	}

	next := h.svc.CollectQuestReward(current, req.QuestID)
	if gained := next.Guild.Gold - current.Guild.Gold; gained > 0 {
		metrics.RewardsCollected.Inc()
		metrics.GoldCollected.Add(float64(gained))
	}

	if !h.persist(w, r, req.PlayerID, next, "Collect reward") {
		return
	}
	respondJSON(w, http.StatusOK, GameStateResponse{Message: MsgRewardCollectedSuccess, Save: next})
}

// HandleGetVisibleQuests returns the rank-filtered quest pool. When the save
// has teams, each quest carries the pre-assignment success estimate per team.
func (h *GameHandler) HandleGetVisibleQuests(w http.ResponseWriter, r *http.Request) {
	playerID, ok := GetQueryParam(r, w, "playerId")
	if !ok {
		return
	}

	current, err := h.saves.Load(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, "Get quests", err)
		return
	}

	visible := h.svc.VisibleQuests(current)
	views := make([]VisibleQuestView, len(visible))
	for i, q := range visible {
		view := VisibleQuestView{Quest: q}
		if len(current.Teams) > 0 {
			view.EstimatedChances = make(map[int]float64, len(current.Teams))
			for _, t := range current.Teams {
				view.EstimatedChances[t.ID] = progression.EstimateSuccessChance(t, q)
			}
		}
		views[i] = view
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: views})
}
