// Package responses picks what the corgi says. Selection is a uniform draw
// from a fixed set and never touches affection scores; callers apply the
// delta that goes with a reply themselves.
package responses

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// Selector draws replies.
type Selector struct {
	rng domain.Rand
}

// NewSelector creates a selector drawing from rng. A nil rng uses a fresh
// randomly seeded source.
func NewSelector(rng domain.Rand) *Selector {
	if rng == nil {
		rng = domain.NewRand()
	}

	return &Selector{rng: rng}
}

// Pick returns one line of the set, uniformly. An empty set yields "".
func (s *Selector) Pick(set Set) string {
	if len(set) == 0 {
		return ""
	}

	return set[s.rng.IntN(len(set))]
}

// ForTrigger returns a reply to a classified mention.
func (s *Selector) ForTrigger(kind domain.TriggerKind) string {
	return s.Pick(SetFor(kind))
}

// SetFor returns the reply set backing a trigger.
func SetFor(kind domain.TriggerKind) Set {
	switch kind {
	case domain.TriggerGoodBoyQuestion:
		return GoodBoyQuestion
	case domain.TriggerGoodBoyStatement:
		return GoodBoyStatement
	case domain.TriggerBadDog:
		return BadDog
	case domain.TriggerTreatRequest:
		return Treat
	case domain.TriggerMultiMention:
		return Comparison
	default:
		return Default
	}
}

// ForCurve returns the tone line for a pet or treat.
func ForCurve(kind domain.ActionKind, tone domain.Tone) string {
	if kind == domain.ActionTreat {
		switch tone {
		case domain.TonePositive:
			return TreatPositive
		case domain.ToneNegative:
			return TreatNegative
		default:
			return TreatNeutral
		}
	}

	switch tone {
	case domain.TonePositive:
		return PetPositive
	case domain.ToneNegative:
		return PetNegative
	default:
		return PetNeutral
	}
}

// ForApology returns the line for an apology outcome.
func ForApology(outcome domain.ApologyOutcome) string {
	switch outcome {
	case domain.ApologyForgiven:
		return ApologyForgiven
	case domain.ApologyStillMad:
		return ApologyStillMad
	case domain.ApologyUnforgivable:
		return ApologyUnforgivable
	default:
		return ApologyAlreadyFine
	}
}

// Weird returns an unprompted flavor line.
func (s *Selector) Weird() string {
	return s.Pick(Weird)
}

// Speak returns a bark, or rarely something heartfelt.
func (s *Selector) Speak() string {
	return s.Pick(Speak)
}

// Mention renders a subject the way chat clients highlight users.
func Mention(subjectID int64) string {
	return "<@" + strconv.FormatInt(subjectID, 10) + ">"
}

// Hello greets the mentioned user.
func Hello(mention string) string {
	return fmt.Sprintf("Hello there %s!!! Will you give me pets?????", mention)
}

// BallReturned reports how long fetching took.
func BallReturned(elapsed time.Duration) string {
	ms := float64(elapsed.Microseconds()) / 1e3

	return "I BROUGHT THE BALL BACK IN " + strconv.FormatFloat(ms, 'f', -1, 64) + "MS! DO I GET A TREAT?"
}

// AffectionReport tells a user their score, whispering a secret to the
// community's favorite.
func AffectionReport(mention string, score int64, lovedMost bool) string {
	msg := fmt.Sprintf("%s I LOVE YOU %d TIMES MORE THAN PETS!!!!!!", mention, score)
	if lovedMost {
		msg += lovedMostSecret
	}

	return msg
}

// Leaderboard renders the top entries under the header for n.
func Leaderboard(n int, entries []domain.ScoreEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Top %d most loved people... BY ME!!!\n", n)

	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}

		fmt.Fprintf(&b, "%s : %d", Mention(e.SubjectID), e.Score)
	}

	return b.String()
}

// QuoteStored confirms a stored quote.
func QuoteStored(q *domain.Quote, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}

	author := q.Author
	if author == "" {
		author = "Someone"
	}

	return fmt.Sprintf("Stored quote!\nTime: %s, Author: %s, Quote: %s",
		q.RecordedAt.In(loc).Format(domain.QuoteDisplayLayout), author, q.Text)
}

// Rolled reports a dice roll.
func Rolled(rolls []int, total int) string {
	parts := make([]string, len(rolls))
	for i, r := range rolls {
		parts[i] = strconv.Itoa(r)
	}

	return fmt.Sprintf("You rolled a %d! (Individual rolls: %s)", total, strings.Join(parts, ", "))
}
