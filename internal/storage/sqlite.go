// Package storage provides SQLite-based persistence for game replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// ErrReplayNotFound is returned when no replay matches an ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// ErrAmbiguousID is returned when an ID prefix matches more than one replay.
var ErrAmbiguousID = errors.New("storage: replay id is ambiguous")

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for replay persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// ReplaySummary is one row of the replay listing.
type ReplaySummary struct {
	ID        string
	GameID    string
	Seed      int64
	Ticks     uint64
	Inputs    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);

		CREATE TABLE IF NOT EXISTS replay_events (
			replay_id TEXT NOT NULL,
			seq INTEGER NOT NULL,
			tick INTEGER NOT NULL,
			action TEXT NOT NULL,
			PRIMARY KEY (replay_id, seq)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay stores a recording and returns its ID.
// A new UUID is assigned when the recording has none.
func (s *Store) SaveReplay(rec replay.Recording) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	if _, err := tx.Exec(
		"INSERT INTO replays (id, game_id, seed, ticks, created_at) VALUES (?, ?, ?, ?, ?)",
		id, rec.GameID, rec.Seed, int64(rec.Ticks), createdAt.UTC().Format(timeLayout),
	); err != nil {
		return "", fmt.Errorf("storage: cannot save replay: %w", err)
	}

	for i, ev := range rec.Events {
		if _, err := tx.Exec(
			"INSERT INTO replay_events (replay_id, seq, tick, action) VALUES (?, ?, ?, ?)",
			id, i, int64(ev.Tick), ev.Action.String(),
		); err != nil {
			return "", fmt.Errorf("storage: cannot save replay event %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit replay: %w", err)
	}
	return id, nil
}

// Replays lists the most recent replays, newest first.
func (s *Store) Replays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.game_id, r.seed, r.ticks, r.created_at,
		        (SELECT COUNT(*) FROM replay_events e WHERE e.replay_id = r.id)
		 FROM replays r
		 ORDER BY r.created_at DESC, r.rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var out []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &ticks, &createdAt, &r.Inputs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// LoadReplay loads a recording by full ID or unique ID prefix.
// The prefix is compared literally.
func (s *Store) LoadReplay(idOrPrefix string) (replay.Recording, error) {
	if idOrPrefix == "" {
		return replay.Recording{}, ErrReplayNotFound
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, seed, ticks, created_at FROM replays
		 WHERE substr(id, 1, length(?)) = ?
		 ORDER BY id = ? DESC
		 LIMIT 2`,
		idOrPrefix, idOrPrefix, idOrPrefix,
	)
	if err != nil {
		return replay.Recording{}, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	var matches []replay.Recording
	for rows.Next() {
		var rec replay.Recording
		var ticks int64
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.GameID, &rec.Seed, &ticks, &createdAt); err != nil {
			rows.Close()
			return replay.Recording{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Ticks = uint64(ticks)
		rec.CreatedAt = parseTime(createdAt)
		matches = append(matches, rec)
	}
	iterErr := rows.Err()
	rows.Close()
	if iterErr != nil {
		return replay.Recording{}, fmt.Errorf("storage: row iteration error: %w", iterErr)
	}

	// An exact match sorts first; otherwise the prefix must be unique.
	switch {
	case len(matches) == 0:
		return replay.Recording{}, fmt.Errorf("%w: %s", ErrReplayNotFound, idOrPrefix)
	case len(matches) > 1 && matches[0].ID != idOrPrefix:
		return replay.Recording{}, fmt.Errorf("%w: %s", ErrAmbiguousID, idOrPrefix)
	}
	rec := matches[0]

	events, err := s.loadEvents(rec.ID)
	if err != nil {
		return replay.Recording{}, err
	}
	rec.Events = events
	return rec, nil
}

func (s *Store) loadEvents(replayID string) ([]replay.InputEvent, error) {
	rows, err := s.db.Query(
		"SELECT tick, action FROM replay_events WHERE replay_id = ? ORDER BY seq",
		replayID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay events: %w", err)
	}
	defer rows.Close()

	var events []replay.InputEvent
	for rows.Next() {
		var tick int64
		var action string
		if err := rows.Scan(&tick, &action); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		events = append(events, replay.InputEvent{Tick: uint64(tick), Action: core.ParseAction(action)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return events, nil
}

// DeleteReplay removes a replay and its events.
func (s *Store) DeleteReplay(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	res, err := tx.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrReplayNotFound, id)
	}

	if _, err := tx.Exec("DELETE FROM replay_events WHERE replay_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
