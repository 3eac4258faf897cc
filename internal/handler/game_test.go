package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwawa/guildmaster/internal/catalog"
	"github.com/akwawa/guildmaster/internal/game"
	"github.com/akwawa/guildmaster/internal/save"
	"github.com/akwawa/guildmaster/internal/storage"
)

// newTestHandler wires a GameHandler over real services and an in-memory store.
func newTestHandler(t *testing.T) *GameHandler {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	gameSvc := game.NewService(cat, 42)
	saveSvc, err := save.NewService(storage.NewMemoryStore(), gameSvc.Generator())
	require.NoError(t, err)

	InitValidator()
	return NewGameHandler(gameSvc, saveSvc)
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handlerFn(rec, req)
	return rec
}

func decodeState(t *testing.T, rec *httptest.ResponseRecorder) GameStateResponse {
	t.Helper()
	var resp GameStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func startGame(t *testing.T, h *GameHandler, playerID string) GameStateResponse {
	t.Helper()
	rec := postJSON(t, h.HandleNewGame, "/api/v1/game/new", NewGameRequest{
		PlayerID:  playerID,
		GuildName: "Aube d'Argent",
		LeaderID:  "captain_ironforge",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeState(t, rec)
}

func TestHandleNewGame(t *testing.T) {
	h := newTestHandler(t)

	t.Run("creates and persists a save", func(t *testing.T) {
		resp := startGame(t, h, "p1")

		assert.Equal(t, MsgGameCreatedSuccess, resp.Message)
		assert.Equal(t, "p1", resp.Save.PlayerID)
		assert.Equal(t, 1, resp.Save.Cycle.Day)
		assert.NotEmpty(t, resp.Save.AvailableQuests)
		assert.NotEmpty(t, resp.Save.AvailableRecruits)
	})

	t.Run("unknown leader", func(t *testing.T) {
		rec := postJSON(t, h.HandleNewGame, "/api/v1/game/new", NewGameRequest{
			PlayerID:  "p2",
			GuildName: "G",
			LeaderID:  "nobody",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgLeaderNotFoundError, resp.Error)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rec := postJSON(t, h.HandleNewGame, "/api/v1/game/new", NewGameRequest{PlayerID: "p3"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Fields, "guildname")
		assert.Contains(t, resp.Fields, "leaderid")
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/game/new", bytes.NewReader([]byte("{oops")))
		rec := httptest.NewRecorder()
		h.HandleNewGame(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleGetState(t *testing.T) {
	h := newTestHandler(t)
	startGame(t, h, "p1")

	t.Run("returns the save", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?playerId=p1", nil)
		rec := httptest.NewRecorder()
		h.HandleGetState(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeState(t, rec)
		assert.Equal(t, "p1", resp.Save.PlayerID)
	})

	t.Run("missing playerId", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state", nil)
		rec := httptest.NewRecorder()
		h.HandleGetState(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no save", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?playerId=ghost", nil)
		rec := httptest.NewRecorder()
		h.HandleGetState(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgNoSaveError, resp.Error)
	})
}

func TestHandleAdvanceCycle(t *testing.T) {
	h := newTestHandler(t)
	startGame(t, h, "p1")

	rec := postJSON(t, h.HandleAdvanceCycle, "/api/v1/game/advance", PlayerRequest{PlayerID: "p1"})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeState(t, rec)
	assert.Equal(t, MsgCycleAdvancedSuccess, resp.Message)
	assert.Equal(t, 1, resp.Save.Cycle.TotalCycles)

	// The advanced state was persisted
	req := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?playerId=p1", nil)
	getRec := httptest.NewRecorder()
	h.HandleGetState(getRec, req)
	assert.Equal(t, 1, decodeState(t, getRec).Save.Cycle.TotalCycles)
}

func TestHandleDeleteSave(t *testing.T) {
	h := newTestHandler(t)
	startGame(t, h, "p1")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/game/save?playerId=p1", nil)
	rec := httptest.NewRecorder()
	h.HandleDeleteSave(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stateReq := httptest.NewRequest(http.MethodGet, "/api/v1/game/state?playerId=p1", nil)
	stateRec := httptest.NewRecorder()
	h.HandleGetState(stateRec, stateReq)
	assert.Equal(t, http.StatusNotFound, stateRec.Code)
}

func TestHandleAssignQuestAndVisibleQuests(t *testing.T) {
	h := newTestHandler(t)
	created := startGame(t, h, "p1")
	require.NotEmpty(t, created.Save.AvailableQuests)

	t.Run("assign without a team fails", func(t *testing.T) {
		rec := postJSON(t, h.HandleAssignQuest, "/api/v1/quests/assign", AssignQuestRequest{
			PlayerID: "p1",
			QuestID:  created.Save.AvailableQuests[0].ID,
			TeamID:   1,
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ErrMsgTeamNotFoundError, resp.Error)
	})

	t.Run("visible quests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/quests/visible?playerId=p1", nil)
		rec := httptest.NewRecorder()
		h.HandleGetVisibleQuests(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []VisibleQuestView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Data)
		for _, v := range resp.Data {
			assert.Empty(t, v.EstimatedChances, "no teams, no estimates")
		}
	})
}

func TestHandleCollectReward_NoOp(t *testing.T) {
	h := newTestHandler(t)
	created := startGame(t, h, "p1")

	rec := postJSON(t, h.HandleCollectReward, "/api/v1/quests/collect", CollectRewardRequest{
		PlayerID: "p1",
		QuestID:  "ghost",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeState(t, rec)
	assert.Equal(t, created.Save.Guild.Gold, resp.Save.Guild.Gold)
}
