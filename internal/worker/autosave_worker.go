package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/akwawa/guildmaster/internal/logger"
	"github.com/akwawa/guildmaster/internal/save"
)

// AutosaveWorker periodically re-persists every active save. It never advances
// the simulation; it only refreshes the stored blob and its LastSave stamp so
// a crash loses at most one interval of bookkeeping.
type AutosaveWorker struct {
	saves    *save.Service
	pool     *Pool
	interval time.Duration
	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewAutosaveWorker creates an autosave worker flushing through the given pool
func NewAutosaveWorker(saves *save.Service, pool *Pool, interval time.Duration) *AutosaveWorker {
	return &AutosaveWorker{
		saves:    saves,
		pool:     pool,
		interval: interval,
		shutdown: make(chan struct{}),
	}
}

// Start launches the periodic autosave loop
func (w *AutosaveWorker) Start(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAutosaveStarting, "interval", w.interval)

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				w.flush(ctx)
			case <-w.shutdown:
				return
			}
		}
	}()
}

// flush enqueues one save job per active player
func (w *AutosaveWorker) flush(ctx context.Context) {
	players := w.saves.ActivePlayers()
	if len(players) == 0 {
		return
	}

	log := logger.FromContext(ctx)
	log.Debug(LogMsgAutosaveCycle, "players", len(players))

	for _, playerID := range players {
		w.pool.Enqueue(&autosaveJob{saves: w.saves, playerID: playerID})
	}
}

// Stop shuts the loop down and waits for it, bounded by ctx
func (w *AutosaveWorker) Stop(ctx context.Context) error {
	close(w.shutdown)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	log := logger.FromContext(ctx)
	select {
	case <-done:
		log.Info(LogMsgAutosaveShutdown)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// autosaveJob re-serializes one player's save
type autosaveJob struct {
	saves    *save.Service
	playerID string
}

func (j *autosaveJob) Process(ctx context.Context) error {
	current, err := j.saves.Load(ctx, j.playerID)
	if err != nil {
		return fmt.Errorf("autosave load %s: %w", j.playerID, err)
	}
	if err := j.saves.Store(ctx, j.playerID, current); err != nil {
		return fmt.Errorf("autosave store %s: %w", j.playerID, err)
	}
	return nil
}
