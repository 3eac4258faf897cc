package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/akwawa/guildmaster/internal/domain"
)

// MemoryStore is a map-backed Store used in tests and as a fallback when no
// database is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, playerID string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[playerID]
	if !ok {
		return nil, fmt.Errorf("%w: player %s", domain.ErrNoSave, playerID)
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *MemoryStore) Set(_ context.Context, playerID string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob := make([]byte, len(payload))
	copy(blob, payload)
	m.blobs[playerID] = blob
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, playerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, playerID)
	return nil
}

func (m *MemoryStore) Ping(_ context.Context) error { return nil }

func (m *MemoryStore) Close() error { return nil }
