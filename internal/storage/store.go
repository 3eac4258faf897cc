// Package storage is the save persistence layer: a small key-value contract
// over the player's serialized save blob, with in-memory, SQLite and Postgres
// backends.
package storage

import "context"

// Store persists one opaque save blob per player. Get returns
// domain.ErrNoSave when no blob exists for the key.
type Store interface {
	Get(ctx context.Context, playerID string) ([]byte, error)
	Set(ctx context.Context, playerID string, payload []byte) error
	Delete(ctx context.Context, playerID string) error
	Ping(ctx context.Context) error
	Close() error
}
