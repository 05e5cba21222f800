// Package postgres stores quotes and affection in PostgreSQL through GORM.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

const serviceName = "postgres"

// QuoteModel is the quotes table.
type QuoteModel struct {
	ID          int64     `gorm:"primaryKey"`
	Text        string    `gorm:"not null"`
	Author      string    `gorm:"not null"`
	RecordedAt  time.Time `gorm:"not null"`
	CommunityID int64     `gorm:"not null;index"`
}

// TableName implements gorm's Tabler.
func (QuoteModel) TableName() string { return "quotes" }

// AffectionModel is the affection table, unique per (subject, community).
type AffectionModel struct {
	SubjectID   int64     `gorm:"primaryKey;autoIncrement:false"`
	CommunityID int64     `gorm:"primaryKey;autoIncrement:false;index:affection_leaderboard_idx,priority:1"`
	Score       int64     `gorm:"not null;index:affection_leaderboard_idx,priority:2,sort:desc"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName implements gorm's Tabler.
func (AffectionModel) TableName() string { return "affection" }

// Store is a PostgreSQL backed ports.Store.
type Store struct {
	db *gorm.DB
}

// Open connects to dsn and migrates the schema. GORM's own logging goes to
// logger at warn level.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	gormLog := gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "open", err)
	}

	if err := db.WithContext(ctx).AutoMigrate(&QuoteModel{}, &AffectionModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return serviceName }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return domain.WrapUnavailable(serviceName, "ping", err)
	}

	return domain.WrapUnavailable(serviceName, "ping", sqlDB.PingContext(ctx))
}

// Close closes the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

// PutQuote appends a quote.
func (s *Store) PutQuote(ctx context.Context, q *domain.Quote) error {
	m := QuoteModel{
		Text:        q.Text,
		Author:      q.Author,
		RecordedAt:  q.RecordedAt,
		CommunityID: q.CommunityID,
	}

	return domain.WrapUnavailable(serviceName, "insert quote", s.db.WithContext(ctx).Create(&m).Error)
}

// RandomQuote returns a uniformly chosen quote of the community.
func (s *Store) RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error) {
	var m QuoteModel

	err := s.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("RANDOM()").
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.NewNotFoundError("quote", communityID)
	}

	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "select quote", err)
	}

	return &domain.Quote{
		Text:        m.Text,
		Author:      m.Author,
		RecordedAt:  m.RecordedAt,
		CommunityID: m.CommunityID,
	}, nil
}

// GetScore returns the subject's score, 0 when absent.
func (s *Store) GetScore(ctx context.Context, subjectID, communityID int64) (int64, error) {
	var m AffectionModel

	err := s.db.WithContext(ctx).
		Select("score").
		Where("subject_id = ? AND community_id = ?", subjectID, communityID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}

	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "select score", err)
	}

	return m.Score, nil
}

// ApplyDelta adds delta with INSERT ... ON CONFLICT DO UPDATE, so concurrent
// callers on the same key are serialized by the row lock.
func (s *Store) ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error) {
	m := AffectionModel{
		SubjectID:   subjectID,
		CommunityID: communityID,
		Score:       delta,
		UpdatedAt:   at,
	}

	err := s.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "subject_id"}, {Name: "community_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"score":      gorm.Expr("affection.score + excluded.score"),
					"updated_at": gorm.Expr("excluded.updated_at"),
				}),
			},
			clause.Returning{Columns: []clause.Column{{Name: "score"}}},
		).
		Create(&m).Error
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "apply delta", err)
	}

	return m.Score, nil
}

// MaxScore returns the community's highest score, 0 when empty.
func (s *Store) MaxScore(ctx context.Context, communityID int64) (int64, error) {
	var maxScore int64

	err := s.db.WithContext(ctx).
		Model(&AffectionModel{}).
		Select("COALESCE(MAX(score), 0)").
		Where("community_id = ?", communityID).
		Scan(&maxScore).Error
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "select max score", err)
	}

	return maxScore, nil
}

// TopScores returns up to n entries, best first, ties by subject id.
func (s *Store) TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error) {
	entries := make([]domain.ScoreEntry, 0, max(n, 0))
	if n <= 0 {
		return entries, nil
	}

	err := s.db.WithContext(ctx).
		Model(&AffectionModel{}).
		Select("subject_id", "score").
		Where("community_id = ?", communityID).
		Order("score DESC").
		Order("subject_id ASC").
		Limit(n).
		Scan(&entries).Error
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "select top scores", err)
	}

	return entries, nil
}

// ResetScore sets the subject's score to 0, creating the record if needed.
func (s *Store) ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error {
	m := AffectionModel{SubjectID: subjectID, CommunityID: communityID, UpdatedAt: at}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subject_id"}, {Name: "community_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"score":      0,
				"updated_at": at,
			}),
		}).
		Create(&m).Error

	return domain.WrapUnavailable(serviceName, "reset score", err)
}
