// Package app contains the use cases the chat host calls: reacting to
// mentions and actions, reporting affection, and recalling quotes.
// Services coordinate the domain rules with the stores behind the ports
// and never deal with HTTP.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
	"github.com/jsamuelsen/corgi-bot/internal/platform/logging"
	"github.com/jsamuelsen/corgi-bot/internal/ports"
	"github.com/jsamuelsen/corgi-bot/internal/responses"
)

// Leaderboard size defaults.
const (
	DefaultLeaderboardSize = 10
	MaxLeaderboardSize     = 100
)

// MentionResult is the corgi's reaction to being mentioned.
type MentionResult struct {
	Trigger domain.TriggerKind
	Text    string
	Delta   int64

	// Score is the subject's score after Delta was applied. It is only
	// meaningful when Applied is true.
	Score   int64
	Applied bool
}

// ActionResult is the corgi's reaction to a pet, treat, ball or belly rub.
type ActionResult struct {
	Kind  domain.ActionKind
	Tone  domain.Tone
	Text  string
	Delta int64
	Score int64
}

// ScoreReport describes how much the corgi loves a subject.
type ScoreReport struct {
	SubjectID int64
	Score     int64
	Max       int64
	LovedMost bool
	Text      string
}

// LeaderboardResult is a community's most loved subjects.
type LeaderboardResult struct {
	Size    int
	Entries []domain.ScoreEntry
	Text    string
}

// ApologyResult is the outcome of asking for forgiveness.
type ApologyResult struct {
	Outcome domain.ApologyOutcome
	Text    string
}

// AmbientResult reports whether the corgi piped up unprompted.
type AmbientResult struct {
	Fired bool
	Text  string
}

// RollResult is a dice roll.
type RollResult struct {
	Dice  domain.Dice
	Rolls []int
	Total int
	Text  string
}

// PersonalityService turns what users say and do into replies and score changes.
type PersonalityService struct {
	store    ports.AffectionStore
	selector *responses.Selector
	rng      domain.Rand
	recorder ports.Recorder
	now      func() time.Time
	ambient  domain.AmbientParams
	lbSize   int
	lbMax    int
	logger   *slog.Logger
}

// PersonalityServiceConfig contains the dependencies of the personality service.
// Only Store is required.
type PersonalityServiceConfig struct {
	Store    ports.AffectionStore
	Rand     domain.Rand
	Recorder ports.Recorder
	Clock    func() time.Time
	Ambient  *domain.AmbientParams

	LeaderboardDefault int
	LeaderboardMax     int

	Logger *slog.Logger
}

// NewPersonalityService creates the service. It panics without a store.
func NewPersonalityService(cfg PersonalityServiceConfig) *PersonalityService {
	if cfg.Store == nil {
		panic("app: personality service requires an affection store")
	}

	svc := &PersonalityService{
		store:    cfg.Store,
		rng:      cfg.Rand,
		recorder: cfg.Recorder,
		now:      cfg.Clock,
		ambient:  domain.DefaultAmbientParams,
		lbSize:   DefaultLeaderboardSize,
		lbMax:    MaxLeaderboardSize,
		logger:   cfg.Logger,
	}

	if svc.rng == nil {
		svc.rng = domain.NewRand()
	}

	if svc.recorder == nil {
		svc.recorder = ports.NopRecorder{}
	}

	if svc.now == nil {
		svc.now = time.Now
	}

	if cfg.Ambient != nil {
		svc.ambient = *cfg.Ambient
	}

	if cfg.LeaderboardDefault > 0 {
		svc.lbSize = cfg.LeaderboardDefault
	}

	if cfg.LeaderboardMax > 0 {
		svc.lbMax = cfg.LeaderboardMax
	}

	if svc.logger == nil {
		svc.logger = slog.Default()
	}

	svc.logger = svc.logger.With(slog.String("component", "app.PersonalityService"))
	svc.selector = responses.NewSelector(svc.rng)

	return svc
}

func (s *PersonalityService) log(ctx context.Context) *slog.Logger {
	return logging.FromContextOr(ctx, s.logger)
}

// HandleMention reacts to a message mentioning the corgi. mentionCount is
// the number of participants mentioned, the corgi included.
func (s *PersonalityService) HandleMention(
	ctx context.Context,
	communityID, subjectID int64,
	text string,
	mentionCount int,
) (*MentionResult, error) {
	trigger, delta := domain.ClassifyMention(text, mentionCount)
	s.recorder.Trigger(trigger)

	res := &MentionResult{
		Trigger: trigger,
		Text:    s.selector.ForTrigger(trigger),
		Delta:   delta,
	}

	if delta == 0 {
		return res, nil
	}

	score, err := traced(ctx, "store.ApplyDelta", communityID, func(ctx context.Context) (int64, error) {
		return s.store.ApplyDelta(ctx, subjectID, communityID, delta, s.now())
	})
	if err != nil {
		return nil, fmt.Errorf("applying %s delta: %w", trigger, err)
	}

	res.Score = score
	res.Applied = true

	s.log(ctx).DebugContext(ctx, "mention scored",
		slog.String("trigger", trigger.String()),
		slog.Int64("subject_id", subjectID),
		slog.Int64("delta", delta),
		slog.Int64("score", score),
	)

	return res, nil
}

// RecordAction applies a pet, treat, ball toss or belly rub. magnitude is the
// number of pets or treats; zero means one. sentAt is when the user sent the
// command and only matters for ball tosses.
func (s *PersonalityService) RecordAction(
	ctx context.Context,
	communityID, subjectID int64,
	kind domain.ActionKind,
	magnitude int64,
	sentAt time.Time,
) (*ActionResult, error) {
	res := &ActionResult{Kind: kind, Tone: domain.TonePositive}

	switch kind {
	case domain.ActionPet, domain.ActionTreat:
		if magnitude == 0 {
			magnitude = 1
		}

		if magnitude < 1 || magnitude > domain.MaxMagnitude {
			return nil, domain.NewValidationErrorWithValue("magnitude",
				fmt.Sprintf("must be between 1 and %d", domain.MaxMagnitude), magnitude)
		}

		curve, _ := domain.CurveFor(kind)
		res.Delta, res.Tone = curve.Apply(magnitude)
		res.Text = responses.ForCurve(kind, res.Tone)
	case domain.ActionBall:
		res.Delta = domain.BallTossDelta
	case domain.ActionBellyRub:
		res.Delta = domain.BellyRubDelta
		res.Text = responses.BellyRub
	default:
		return nil, domain.NewValidationErrorWithValue("kind", "unknown action", string(kind))
	}

	now := s.now()

	score, err := traced(ctx, "store.ApplyDelta", communityID, func(ctx context.Context) (int64, error) {
		return s.store.ApplyDelta(ctx, subjectID, communityID, res.Delta, now)
	})
	if err != nil {
		return nil, fmt.Errorf("applying %s delta: %w", kind, err)
	}

	res.Score = score

	if kind == domain.ActionBall {
		var elapsed time.Duration
		if !sentAt.IsZero() && now.After(sentAt) {
			elapsed = now.Sub(sentAt)
		}

		res.Text = responses.BallReturned(elapsed)
	}

	s.recorder.Action(kind, res.Tone)

	s.log(ctx).InfoContext(ctx, "action recorded",
		slog.String("kind", string(kind)),
		slog.String("tone", res.Tone.String()),
		slog.Int64("subject_id", subjectID),
		slog.Int64("delta", res.Delta),
	)

	return res, nil
}

// Score reports the subject's score alongside the community maximum.
// mention is how the subject is addressed; empty uses the subject's id.
func (s *PersonalityService) Score(
	ctx context.Context,
	communityID, subjectID int64,
	mention string,
) (*ScoreReport, error) {
	score, maxScore, err := both(ctx,
		func(ctx context.Context) (int64, error) { return s.store.GetScore(ctx, subjectID, communityID) },
		func(ctx context.Context) (int64, error) { return s.store.MaxScore(ctx, communityID) },
	)
	if err != nil {
		return nil, fmt.Errorf("loading scores: %w", err)
	}

	if mention == "" {
		mention = responses.Mention(subjectID)
	}

	lovedMost := score > 0 && score == maxScore

	return &ScoreReport{
		SubjectID: subjectID,
		Score:     score,
		Max:       maxScore,
		LovedMost: lovedMost,
		Text:      responses.AffectionReport(mention, score, lovedMost),
	}, nil
}

// Leaderboard lists the community's most loved subjects. n of zero uses the
// configured default; larger requests are capped.
func (s *PersonalityService) Leaderboard(ctx context.Context, communityID int64, n int) (*LeaderboardResult, error) {
	switch {
	case n < 0:
		return nil, domain.NewValidationErrorWithValue("n", "must not be negative", n)
	case n == 0:
		n = s.lbSize
	case n > s.lbMax:
		n = s.lbMax
	}

	entries, err := traced(ctx, "store.TopScores", communityID, func(ctx context.Context) ([]domain.ScoreEntry, error) {
		return s.store.TopScores(ctx, communityID, n)
	})
	if err != nil {
		return nil, fmt.Errorf("loading top scores: %w", err)
	}

	return &LeaderboardResult{
		Size:    n,
		Entries: entries,
		Text:    responses.Leaderboard(n, entries),
	}, nil
}

// Apologize asks the corgi to forgive the subject. Forgiveness resets the
// subject's score to zero.
//
// The score is read and reset in separate store calls. A delta applied to
// the same subject between the two is discarded by the reset, since the
// reset is unconditional.
func (s *PersonalityService) Apologize(ctx context.Context, communityID, subjectID int64) (*ApologyResult, error) {
	current, err := s.store.GetScore(ctx, subjectID, communityID)
	if err != nil {
		return nil, fmt.Errorf("loading score: %w", err)
	}

	outcome := domain.ApologyAlreadyFine

	if current < 0 {
		maxScore, err := s.store.MaxScore(ctx, communityID)
		if err != nil {
			return nil, fmt.Errorf("loading max score: %w", err)
		}

		outcome = domain.Apologize(current, maxScore, s.rng.Float64())
	}

	if outcome == domain.ApologyForgiven {
		_, err := traced(ctx, "store.ResetScore", communityID, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.store.ResetScore(ctx, subjectID, communityID, s.now())
		})
		if err != nil {
			return nil, fmt.Errorf("resetting score: %w", err)
		}
	}

	s.recorder.Apology(outcome)

	s.log(ctx).InfoContext(ctx, "apology judged",
		slog.Int64("subject_id", subjectID),
		slog.Int64("score", current),
		slog.String("outcome", outcome.String()),
	)

	return &ApologyResult{Outcome: outcome, Text: responses.ForApology(outcome)}, nil
}

// Ambient decides whether the corgi says something odd in reply to an
// ordinary message. Scores are only read once the flat gate passes.
func (s *PersonalityService) Ambient(ctx context.Context, communityID, subjectID int64) (*AmbientResult, error) {
	if !s.ambient.Gate(s.rng) {
		return &AmbientResult{}, nil
	}

	score, maxScore, err := both(ctx,
		func(ctx context.Context) (int64, error) { return s.store.GetScore(ctx, subjectID, communityID) },
		func(ctx context.Context) (int64, error) { return s.store.MaxScore(ctx, communityID) },
	)
	if err != nil {
		return nil, fmt.Errorf("loading scores: %w", err)
	}

	if !s.ambient.ScoreGate(score, maxScore, s.rng) {
		return &AmbientResult{}, nil
	}

	s.recorder.AmbientFired()

	return &AmbientResult{Fired: true, Text: s.selector.Weird()}, nil
}

// Hello greets whoever is mentioned.
func (s *PersonalityService) Hello(mention string) string {
	return responses.Hello(mention)
}

// Speak barks.
func (s *PersonalityService) Speak() string {
	return s.selector.Speak()
}

// Roll parses and rolls dice written as NdS.
func (s *PersonalityService) Roll(spec string) (*RollResult, error) {
	dice, err := domain.ParseDice(spec)
	if err != nil {
		return nil, err
	}

	rolls, total := dice.Roll(s.rng)

	return &RollResult{
		Dice:  dice,
		Rolls: rolls,
		Total: total,
		Text:  responses.Rolled(rolls, total),
	}, nil
}
