// Package sqlite stores quotes and affection in a local SQLite file, the
// default backend for a single bot process.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

const serviceName = "sqlite"

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	text         TEXT    NOT NULL,
	author       TEXT    NOT NULL DEFAULT '',
	recorded_at  INTEGER NOT NULL,
	community_id INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS quotes_community_idx ON quotes (community_id);

CREATE TABLE IF NOT EXISTS affection (
	subject_id   INTEGER NOT NULL,
	community_id INTEGER NOT NULL,
	score        INTEGER NOT NULL DEFAULT 0,
	updated_at   INTEGER NOT NULL,
	PRIMARY KEY (subject_id, community_id)
);

CREATE INDEX IF NOT EXISTS affection_leaderboard_idx ON affection (community_id, score DESC, subject_id);
`

// Store is a SQLite backed ports.Store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = MemoryPath
	}

	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "open", err)
	}

	// One connection serializes every statement, which keeps an in-memory
	// database alive and makes read-modify-write upserts trivially atomic.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, domain.WrapUnavailable(serviceName, p, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, domain.WrapUnavailable(serviceName, "migrate", err)
	}

	return &Store{db: db}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return serviceName }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return domain.WrapUnavailable(serviceName, "ping", s.db.PingContext(ctx))
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutQuote appends a quote.
func (s *Store) PutQuote(ctx context.Context, q *domain.Quote) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quotes (text, author, recorded_at, community_id) VALUES (?, ?, ?, ?)`,
		q.Text, q.Author, q.RecordedAt.UnixNano(), q.CommunityID,
	)

	return domain.WrapUnavailable(serviceName, "insert quote", err)
}

// RandomQuote returns a uniformly chosen quote of the community.
func (s *Store) RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error) {
	var (
		q          domain.Quote
		recordedAt int64
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT text, author, recorded_at, community_id FROM quotes
		 WHERE community_id = ? ORDER BY RANDOM() LIMIT 1`,
		communityID,
	).Scan(&q.Text, &q.Author, &recordedAt, &q.CommunityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("quote", communityID)
	}

	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "select quote", err)
	}

	q.RecordedAt = time.Unix(0, recordedAt)

	return &q, nil
}

// GetScore returns the subject's score, 0 when absent.
func (s *Store) GetScore(ctx context.Context, subjectID, communityID int64) (int64, error) {
	var score int64

	err := s.db.QueryRowContext(ctx,
		`SELECT score FROM affection WHERE subject_id = ? AND community_id = ?`,
		subjectID, communityID,
	).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}

	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "select score", err)
	}

	return score, nil
}

// ApplyDelta adds delta in a single upsert statement.
func (s *Store) ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error) {
	var score int64

	err := s.db.QueryRowContext(ctx,
		`INSERT INTO affection (subject_id, community_id, score, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (subject_id, community_id) DO UPDATE
		 SET score = affection.score + excluded.score, updated_at = excluded.updated_at
		 RETURNING score`,
		subjectID, communityID, delta, at.UnixNano(),
	).Scan(&score)
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "apply delta", err)
	}

	return score, nil
}

// MaxScore returns the community's highest score, 0 when empty.
func (s *Store) MaxScore(ctx context.Context, communityID int64) (int64, error) {
	var score int64

	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(score), 0) FROM affection WHERE community_id = ?`,
		communityID,
	).Scan(&score)
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "select max score", err)
	}

	return score, nil
}

// TopScores returns up to n entries, best first, ties by subject id.
func (s *Store) TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error) {
	if n <= 0 {
		return []domain.ScoreEntry{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT subject_id, score FROM affection WHERE community_id = ?
		 ORDER BY score DESC, subject_id ASC LIMIT ?`,
		communityID, n,
	)
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "select top scores", err)
	}
	defer rows.Close()

	entries := make([]domain.ScoreEntry, 0, n)

	for rows.Next() {
		var e domain.ScoreEntry
		if err := rows.Scan(&e.SubjectID, &e.Score); err != nil {
			return nil, domain.WrapUnavailable(serviceName, "scan top scores", err)
		}

		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.WrapUnavailable(serviceName, "iterate top scores", err)
	}

	return entries, nil
}

// ResetScore sets the subject's score to 0, creating the record if needed.
func (s *Store) ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO affection (subject_id, community_id, score, updated_at) VALUES (?, ?, 0, ?)
		 ON CONFLICT (subject_id, community_id) DO UPDATE
		 SET score = 0, updated_at = excluded.updated_at`,
		subjectID, communityID, at.UnixNano(),
	)

	return domain.WrapUnavailable(serviceName, "reset score", err)
}
