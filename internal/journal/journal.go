// Package journal records detected matches in a local sqlite database.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/marcin-skalski/lol-cooldowns/internal/match"
)

type Entry struct {
	MatchID   int64
	Platform  string
	Queue     string
	Map       string
	Mode      string
	Players   int
	FirstSeen time.Time
	EndedAt   time.Time // zero while the match is in progress
}

type Journal struct {
	db *sql.DB
}

// Open creates the database at path and its schema if needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create journal dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}
	// one writer, and :memory: databases are per connection
	db.SetMaxOpenConns(1)

	j := &Journal{db: db}
	if err := j.init(); err != nil {
		db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) init() error {
	_, err := j.db.Exec(`
		CREATE TABLE IF NOT EXISTS matches (
			match_id   INTEGER NOT NULL,
			platform   TEXT NOT NULL,
			queue      TEXT NOT NULL,
			map        TEXT NOT NULL,
			mode       TEXT NOT NULL,
			players    INTEGER NOT NULL,
			first_seen INTEGER NOT NULL,
			ended_at   INTEGER,
			PRIMARY KEY (platform, match_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("create matches table: %w", err)
	}
	return nil
}

// Started records a newly detected match. Seeing the same match again keeps the
// original first_seen.
func (j *Journal) Started(ctx context.Context, m *match.Snapshot, at time.Time) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO matches (match_id, platform, queue, map, mode, players, first_seen)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (platform, match_id) DO NOTHING
	`, m.ID, string(m.Platform), m.Queue.String(), m.Map.String(), m.Mode.String(),
		len(m.Participants), at.UnixMilli())
	if err != nil {
		return fmt.Errorf("record match %d: %w", m.ID, err)
	}
	return nil
}

func (j *Journal) Ended(ctx context.Context, m *match.Snapshot, at time.Time) error {
	_, err := j.db.ExecContext(ctx, `
		UPDATE matches SET ended_at = ?
		WHERE platform = ? AND match_id = ? AND ended_at IS NULL
	`, at.UnixMilli(), string(m.Platform), m.ID)
	if err != nil {
		return fmt.Errorf("end match %d: %w", m.ID, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT match_id, platform, queue, map, mode, players, first_seen, ended_at
		FROM matches
		ORDER BY first_seen DESC, match_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			firstSeen int64
			endedAt   sql.NullInt64
		)
		if err := rows.Scan(&e.MatchID, &e.Platform, &e.Queue, &e.Map, &e.Mode, &e.Players, &firstSeen, &endedAt); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		e.FirstSeen = time.UnixMilli(firstSeen)
		if endedAt.Valid {
			e.EndedAt = time.UnixMilli(endedAt.Int64)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}
