// internal/store/sqlite.go
//
// SQLite-backed Store for game sessions.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying embedded migrations (idempotent, recorded in _migrations).
//   - Saving and loading in-progress game state so a restart doesn't drop rounds.
//
// Only the live round is kept per game ID; finished rounds are overwritten on
// Reset and nothing is aggregated.

package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/fourword/internal/game"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite is a Store backed by a SQLite database file.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the database at dsn and migrates it.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error { return s.db.Close() }

// openDB ensures the parent directory exists, then opens with busy timeout
// and WAL journaling.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies migrations/*.sql in lexical order, each in its own
// transaction, skipping files already recorded in _migrations.
func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRowContext(ctx, `SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrationsFS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save upserts the current round for g.ID.
func (s *SQLite) Save(ctx context.Context, g *game.Game) error {
	guesses, err := json.Marshal(g.Guesses)
	if err != nil {
		return fmt.Errorf("encode guesses: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO games (id, target, attempts_remaining, status, guesses, started_at, updated_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            target=excluded.target,
            attempts_remaining=excluded.attempts_remaining,
            status=excluded.status,
            guesses=excluded.guesses,
            started_at=excluded.started_at,
            updated_at=excluded.updated_at`,
		g.ID, g.Target, g.AttemptsRemaining, string(g.Status), string(guesses),
		g.StartedAt.UTC().Format(time.RFC3339Nano), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

// Get loads the round stored under id.
func (s *SQLite) Get(ctx context.Context, id string) (*game.Game, error) {
	var (
		g       game.Game
		status  string
		guesses string
		started string
	)
	err := s.db.QueryRowContext(ctx, `
        SELECT id, target, attempts_remaining, status, guesses, started_at
        FROM games WHERE id=?`, id,
	).Scan(&g.ID, &g.Target, &g.AttemptsRemaining, &status, &guesses, &started)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	g.Status = game.Status(status)
	if err := json.Unmarshal([]byte(guesses), &g.Guesses); err != nil {
		return nil, fmt.Errorf("decode guesses for %s: %w", id, err)
	}
	if g.Guesses == nil {
		g.Guesses = []string{}
	}
	g.StartedAt, _ = time.Parse(time.RFC3339Nano, started)
	return &g, nil
}

// Delete removes the row for id, if any.
func (s *SQLite) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete game %s: %w", id, err)
	}
	return nil
}
