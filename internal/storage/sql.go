package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/akwawa/guildmaster/internal/domain"
)

// Dialect selects the SQL backend
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

const schema = `
	CREATE TABLE IF NOT EXISTS game_saves (
		player_id  TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)
`

// SQLStore persists save blobs in a single table, one row per player. The same
// statements run on SQLite and Postgres; only the placeholder style differs.
type SQLStore struct {
	dialect Dialect
	db      *sql.DB
}

// OpenSQLite opens (and if needed creates) a file-backed SQLite store.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create sqlite directory: %w", err)
	}
	return open(ctx, DialectSQLite, "sqlite", path)
}

// OpenPostgres opens a Postgres-backed store via the pgx stdlib driver.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	return open(ctx, DialectPostgres, "pgx", dsn)
}

func open(ctx context.Context, dialect Dialect, driver, dsn string) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", dialect, err)
	}
	if dialect == DialectSQLite {
		// modernc sqlite serializes writers; a single conn avoids lock errors
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s database: %w", dialect, err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create game_saves table: %w", err)
	}
	return &SQLStore{dialect: dialect, db: db}, nil
}

func (s *SQLStore) bind(pos int) string {
	if s.dialect == DialectPostgres {
		return fmt.Sprintf("$%d", pos)
	}
	return "?"
}

func (s *SQLStore) Get(ctx context.Context, playerID string) ([]byte, error) {
	q := fmt.Sprintf("SELECT payload FROM game_saves WHERE player_id = %s", s.bind(1))
	var payload string
	err := s.db.QueryRowContext(ctx, q, playerID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: player %s", domain.ErrNoSave, playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("load save: %w", err)
	}
	return []byte(payload), nil
}

func (s *SQLStore) Set(ctx context.Context, playerID string, payload []byte) error {
	q := fmt.Sprintf(`
		INSERT INTO game_saves (player_id, payload, updated_at)
		VALUES (%s, %s, %s)
		ON CONFLICT (player_id) DO UPDATE
		SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.bind(1), s.bind(2), s.bind(3))
	if _, err := s.db.ExecContext(ctx, q, playerID, string(payload), time.Now().UTC()); err != nil {
		return fmt.Errorf("store save: %w", err)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, playerID string) error {
	q := fmt.Sprintf("DELETE FROM game_saves WHERE player_id = %s", s.bind(1))
	if _, err := s.db.ExecContext(ctx, q, playerID); err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
