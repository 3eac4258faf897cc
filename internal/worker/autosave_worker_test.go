package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/save"
	"github.com/akwawa/guildmaster/internal/storage"
)

type noopRefresher struct{}

func (noopRefresher) UpdateQuestPool(s domain.GameSave) domain.GameSave { return s }

func newAutosaveFixture(t *testing.T, interval time.Duration) (*AutosaveWorker, *save.Service, *Pool) {
	t.Helper()
	saves, err := save.NewService(storage.NewMemoryStore(), noopRefresher{})
	require.NoError(t, err)

	pool := NewPool(1, 16)
	pool.Start()
	t.Cleanup(pool.Stop)

	return NewAutosaveWorker(saves, pool, interval), saves, pool
}

func TestAutosaveWorker_FlushRestampsSaves(t *testing.T) {
	w, saves, _ := newAutosaveFixture(t, time.Hour)
	ctx := context.Background()

	s := domain.GameSave{
		PlayerID: "p1",
		Guild:    domain.Guild{Name: "G", Gold: 100},
		Cycle:    domain.GameCycle{Day: 1, Period: domain.PeriodDay},
	}
	require.NoError(t, saves.Store(ctx, "p1", s))

	before, err := saves.Load(ctx, "p1")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	w.flush(ctx)

	// Wait for the pool to pick the job up
	require.Eventually(t, func() bool {
		after, err := saves.Load(ctx, "p1")
		return err == nil && after.LastSave.After(before.LastSave)
	}, time.Second, 5*time.Millisecond, "autosave never restamped the save")

	after, err := saves.Load(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, before.Cycle, after.Cycle, "autosave must not advance the simulation")
	assert.Equal(t, before.Guild, after.Guild)
}

func TestAutosaveWorker_FlushWithNoPlayers(t *testing.T) {
	w, _, _ := newAutosaveFixture(t, time.Hour)

	// Nothing cached; flush must be a quiet no-op
	w.flush(context.Background())
}

func TestAutosaveWorker_StartStop(t *testing.T) {
	w, saves, _ := newAutosaveFixture(t, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, saves.Store(ctx, "p1", domain.GameSave{PlayerID: "p1"}))
	before, err := saves.Load(ctx, "p1")
	require.NoError(t, err)

	w.Start(ctx)

	require.Eventually(t, func() bool {
		after, err := saves.Load(ctx, "p1")
		return err == nil && after.LastSave.After(before.LastSave)
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.NoError(t, w.Stop(stopCtx))
}

func TestAutosaveWorker_StopTimesOutOnStuckLoop(t *testing.T) {
	saves, err := save.NewService(storage.NewMemoryStore(), noopRefresher{})
	require.NoError(t, err)
	w := NewAutosaveWorker(saves, NewPool(1, 1), time.Hour)

	// Simulate a loop that never exits
	w.wg.Add(1)
	defer w.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, w.Stop(ctx), context.DeadlineExceeded)
}
