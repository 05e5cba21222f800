// Package redis stores quotes and affection in Redis.
//
// Layout per community c, under a configurable prefix p:
//
//	p:affection:c          sorted set, member = subject id, score = affection
//	p:affection:c:updated  hash, subject id -> last update (unix nanos)
//	p:quotes:c             list of JSON encoded quotes, append only
//
// Scores live in sorted-set doubles, exact for integers below 2^53.
// ApplyDelta fails with ErrScoreOutOfRange rather than round past that.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

const serviceName = "redis"

// DefaultKeyPrefix namespaces every key the store writes.
const DefaultKeyPrefix = "corgibot"

// maxExactScore bounds the scores a sorted-set double holds without rounding.
const maxExactScore = 1 << 53

// ErrScoreOutOfRange is returned once a score leaves the range Redis can
// hold exactly. The increment has already been applied.
var ErrScoreOutOfRange = errors.New("score beyond exact sorted-set range")

// Options configures the connection.
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Store is a Redis backed ports.Store.
type Store struct {
	client *redis.Client
	prefix string
	rng    domain.Rand
}

type quoteRecord struct {
	Text       string `json:"text"`
	Author     string `json:"author,omitempty"`
	RecordedAt int64  `json:"recorded_at"`
}

// Open connects and pings the server. rng picks random quotes; nil uses a
// fresh source.
func Open(ctx context.Context, opts Options, rng domain.Rand) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, domain.WrapUnavailable(serviceName, "ping", err)
	}

	return New(client, opts.KeyPrefix, rng), nil
}

// New wraps an existing client.
func New(client *redis.Client, prefix string, rng domain.Rand) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	if rng == nil {
		rng = domain.NewRand()
	}

	return &Store{client: client, prefix: prefix, rng: rng}
}

func (s *Store) scoresKey(communityID int64) string {
	return s.prefix + ":affection:" + strconv.FormatInt(communityID, 10)
}

func (s *Store) updatedKey(communityID int64) string {
	return s.scoresKey(communityID) + ":updated"
}

func (s *Store) quotesKey(communityID int64) string {
	return s.prefix + ":quotes:" + strconv.FormatInt(communityID, 10)
}

func member(subjectID int64) string {
	return strconv.FormatInt(subjectID, 10)
}

func toScore(f float64) int64 {
	return int64(math.Round(f))
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return serviceName }

// Check implements ports.HealthChecker.
func (s *Store) Check(ctx context.Context) error {
	return domain.WrapUnavailable(serviceName, "ping", s.client.Ping(ctx).Err())
}

// Close closes the client.
func (s *Store) Close() error {
	return s.client.Close()
}

// PutQuote appends a quote to the community's list.
func (s *Store) PutQuote(ctx context.Context, q *domain.Quote) error {
	payload, err := json.Marshal(quoteRecord{
		Text:       q.Text,
		Author:     q.Author,
		RecordedAt: q.RecordedAt.UnixNano(),
	})
	if err != nil {
		return err
	}

	return domain.WrapUnavailable(serviceName, "rpush quote",
		s.client.RPush(ctx, s.quotesKey(q.CommunityID), payload).Err())
}

// RandomQuote picks a uniform index into the community's list. The list only
// grows, so an index below the observed length stays valid.
func (s *Store) RandomQuote(ctx context.Context, communityID int64) (*domain.Quote, error) {
	key := s.quotesKey(communityID)

	n, err := s.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "llen quotes", err)
	}

	if n == 0 {
		return nil, domain.NewNotFoundError("quote", communityID)
	}

	raw, err := s.client.LIndex(ctx, key, s.rng.Int64N(n)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.NewNotFoundError("quote", communityID)
	}

	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "lindex quote", err)
	}

	var rec quoteRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, err
	}

	return &domain.Quote{
		Text:        rec.Text,
		Author:      rec.Author,
		RecordedAt:  time.Unix(0, rec.RecordedAt),
		CommunityID: communityID,
	}, nil
}

// GetScore returns the subject's score, 0 when absent.
func (s *Store) GetScore(ctx context.Context, subjectID, communityID int64) (int64, error) {
	score, err := s.client.ZScore(ctx, s.scoresKey(communityID), member(subjectID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "zscore", err)
	}

	return toScore(score), nil
}

// ApplyDelta increments the subject's score with ZINCRBY, which the server
// applies atomically, and stamps the update time in the same transaction.
func (s *Store) ApplyDelta(ctx context.Context, subjectID, communityID, delta int64, at time.Time) (int64, error) {
	var incr *redis.FloatCmd

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.ZIncrBy(ctx, s.scoresKey(communityID), float64(delta), member(subjectID))
		pipe.HSet(ctx, s.updatedKey(communityID), member(subjectID), at.UnixNano())

		return nil
	})
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "zincrby", err)
	}

	if math.Abs(incr.Val()) >= maxExactScore {
		return 0, fmt.Errorf("subject %d in community %d: %w", subjectID, communityID, ErrScoreOutOfRange)
	}

	return toScore(incr.Val()), nil
}

// MaxScore returns the community's highest score, 0 when empty.
func (s *Store) MaxScore(ctx context.Context, communityID int64) (int64, error) {
	top, err := s.client.ZRevRangeWithScores(ctx, s.scoresKey(communityID), 0, 0).Result()
	if err != nil {
		return 0, domain.WrapUnavailable(serviceName, "zrevrange", err)
	}

	if len(top) == 0 {
		return 0, nil
	}

	return toScore(top[0].Score), nil
}

// TopScores returns up to n entries, best first, ties by subject id.
// Redis orders equal scores by member string, so every member tied at the
// cutoff is fetched and the order is settled here.
func (s *Store) TopScores(ctx context.Context, communityID int64, n int) ([]domain.ScoreEntry, error) {
	if n <= 0 {
		return []domain.ScoreEntry{}, nil
	}

	key := s.scoresKey(communityID)

	cutoff := "-inf"

	nth, err := s.client.ZRevRangeWithScores(ctx, key, int64(n-1), int64(n-1)).Result()
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "zrevrange", err)
	}

	if len(nth) == 1 {
		cutoff = strconv.FormatFloat(nth[0].Score, 'f', -1, 64)
	}

	members, err := s.client.ZRevRangeByScoreWithScores(ctx, key, &redis.ZRangeBy{
		Min: cutoff,
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, domain.WrapUnavailable(serviceName, "zrevrangebyscore", err)
	}

	entries := make([]domain.ScoreEntry, 0, len(members))

	for _, z := range members {
		id, err := strconv.ParseInt(z.Member.(string), 10, 64)
		if err != nil {
			continue
		}

		entries = append(entries, domain.ScoreEntry{SubjectID: id, Score: toScore(z.Score)})
	}

	slices.SortFunc(entries, func(a, b domain.ScoreEntry) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}

			return 1
		}

		switch {
		case a.SubjectID < b.SubjectID:
			return -1
		case a.SubjectID > b.SubjectID:
			return 1
		default:
			return 0
		}
	})

	if len(entries) > n {
		entries = entries[:n]
	}

	return entries, nil
}

// ResetScore sets the subject's score to 0.
func (s *Store) ResetScore(ctx context.Context, subjectID, communityID int64, at time.Time) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, s.scoresKey(communityID), redis.Z{Score: 0, Member: member(subjectID)})
		pipe.HSet(ctx, s.updatedKey(communityID), member(subjectID), at.UnixNano())

		return nil
	})

	return domain.WrapUnavailable(serviceName, "reset score", err)
}
