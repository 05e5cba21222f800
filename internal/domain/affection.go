package domain

import (
	"math"
	"time"
)

// Fixed-amount actions.
const (
	BallTossDelta int64 = 1
	BellyRubDelta int64 = 7
)

// MaxMagnitude bounds how many pets or treats one action may carry, keeping
// curve arithmetic far from overflow.
const MaxMagnitude int64 = 1_000_000

const (
	// unforgivableEpsilon is the width of the near-certainty tail that marks
	// an apology as unforgivable.
	unforgivableEpsilon = 1e-12

	// negligibleChance replaces a forgiveness chance above 1, i.e. a subject
	// more hated than the most loved member is loved.
	negligibleChance = 1e-16
)

// AffectionRecord is one subject's score within a community.
type AffectionRecord struct {
	SubjectID   int64
	CommunityID int64
	Score       int64
	UpdatedAt   time.Time
}

// ScoreEntry is a leaderboard row.
type ScoreEntry struct {
	SubjectID int64 `json:"subject_id"`
	Score     int64 `json:"score"`
}

// Curve is the diminishing-returns rule shared by pets and treats.
// Up to Limit units pay PerUnit each, up to 10*Limit the reward is capped,
// and beyond that the subject is penalized in proportion to the abuse.
type Curve struct {
	Limit   int64
	PerUnit int64
}

var (
	PetCurve   = Curve{Limit: 7, PerUnit: 3}
	TreatCurve = Curve{Limit: 10, PerUnit: 5}
)

// Apply returns the score delta and tone for n units.
func (c Curve) Apply(n int64) (int64, Tone) {
	switch {
	case n <= c.Limit:
		return c.PerUnit * n, TonePositive
	case n <= 10*c.Limit:
		return c.PerUnit * c.Limit, ToneNeutral
	default:
		return c.PerUnit*c.Limit - floorDiv(c.PerUnit*n, c.Limit), ToneNegative
	}
}

// CurveFor returns the curve backing a scaled action.
func CurveFor(kind ActionKind) (Curve, bool) {
	switch kind {
	case ActionPet:
		return PetCurve, true
	case ActionTreat:
		return TreatCurve, true
	default:
		return Curve{}, false
	}
}

// Apologize decides whether a subject with the current score is forgiven.
// sample must be drawn uniformly from [0,1). The caller resets the score
// when the outcome is ApologyForgiven.
func Apologize(current, maxScore int64, sample float64) ApologyOutcome {
	if current >= 0 {
		return ApologyAlreadyFine
	}

	chance := negligibleChance
	if maxScore > 0 {
		chance = math.Sqrt(math.Abs(float64(current))) / float64(maxScore)
		if chance > 1 {
			chance = negligibleChance
		}
	}

	switch {
	case sample < chance:
		return ApologyForgiven
	case sample-chance > 1-unforgivableEpsilon:
		return ApologyUnforgivable
	default:
		return ApologyStillMad
	}
}

// AmbientParams tunes the unprompted reaction roll.
type AmbientParams struct {
	// Probability is the flat gate checked before the score comparison.
	Probability float64

	// Divisor scales the community maximum into the low end of the draw.
	Divisor int64

	// Offset is added to twice the maximum for the high end of the draw.
	Offset int64
}

// DefaultAmbientParams matches the most recently active bot behavior.
var DefaultAmbientParams = AmbientParams{Probability: 0.15, Divisor: 10, Offset: 7}

// AmbientRoll reports whether to emit an unprompted flavor reply.
// Both the flat gate and the score gate must pass.
func AmbientRoll(userScore, maxScore int64, params AmbientParams, rng Rand) bool {
	return params.Gate(rng) && params.ScoreGate(userScore, maxScore, rng)
}

// Gate is the flat-probability check. Callers can run it before loading
// scores.
func (p AmbientParams) Gate(rng Rand) bool {
	return rng.Float64() < p.Probability
}

// ScoreGate draws an integer uniformly from [max/Divisor, 2*max+Offset] and
// passes when the draw is below the user's score, favoring well loved users.
// An empty range never passes.
func (p AmbientParams) ScoreGate(userScore, maxScore int64, rng Rand) bool {
	divisor := p.Divisor
	if divisor <= 0 {
		divisor = 1
	}

	lo := floorDiv(maxScore, divisor)
	hi := 2*maxScore + p.Offset
	if hi < lo {
		return false
	}

	draw := lo + rng.Int64N(hi-lo+1)

	return draw < userScore
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}
