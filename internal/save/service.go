package save

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/akwawa/guildmaster/internal/domain"
	"github.com/akwawa/guildmaster/internal/logger"
	"github.com/akwawa/guildmaster/internal/storage"
)

// Saves cached per process; one entry per player
const cacheSize = 128

// PoolRefresher re-runs the quest-pool maintenance after a legacy save
// migration. Satisfied by the quest generator.
type PoolRefresher interface {
	UpdateQuestPool(domain.GameSave) domain.GameSave
}

// Service loads and stores saves through a read-through LRU cache in front of
// the storage backend.
type Service struct {
	store storage.Store
	pool  PoolRefresher
	cache *lru.Cache[string, domain.GameSave]
	now   func() time.Time
}

// NewService builds a save service over the given backend.
func NewService(store storage.Store, pool PoolRefresher) (*Service, error) {
	cache, err := lru.New[string, domain.GameSave](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create save cache: %w", err)
	}
	return &Service{store: store, pool: pool, cache: cache, now: time.Now}, nil
}

// Load returns the player's save, from cache when possible. A corrupt blob is
// logged and reported as domain.ErrNoSave so the caller can offer a new game.
func (s *Service) Load(ctx context.Context, playerID string) (domain.GameSave, error) {
	if cached, ok := s.cache.Get(playerID); ok {
		return cached.Clone(), nil
	}

	data, err := s.store.Get(ctx, playerID)
	if err != nil {
		return domain.GameSave{}, err
	}

	loaded, needsRefresh, err := Decode(data)
	if err != nil {
		logger.FromContext(ctx).Warn("discarding unreadable save",
			"player_id", playerID, "error", err)
		return domain.GameSave{}, fmt.Errorf("%w: player %s", domain.ErrNoSave, playerID)
	}
	if needsRefresh {
		loaded = s.pool.UpdateQuestPool(loaded)
	}

	s.cache.Add(playerID, loaded.Clone())
	return loaded, nil
}

// Store persists the save and refreshes the cache. LastSave is stamped here.
func (s *Service) Store(ctx context.Context, playerID string, save domain.GameSave) error {
	save.LastSave = s.now()

	data, err := Encode(save)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, playerID, data); err != nil {
		return fmt.Errorf("persist save: %w", err)
	}
	s.cache.Add(playerID, save.Clone())
	return nil
}

// Delete removes the player's save from the backend and the cache.
func (s *Service) Delete(ctx context.Context, playerID string) error {
	s.cache.Remove(playerID)
	if err := s.store.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

// ActivePlayers lists the players with a cached save in this process.
func (s *Service) ActivePlayers() []string {
	return s.cache.Keys()
}

// Exists reports whether the player has a loadable save.
func (s *Service) Exists(ctx context.Context, playerID string) bool {
	_, err := s.Load(ctx, playerID)
	return err == nil
}
