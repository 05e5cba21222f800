package responses

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/corgi-bot/internal/domain"
)

// indexRand always returns the same index, clamped to the set.
type indexRand struct{ idx int }

func (r indexRand) Float64() float64     { return 0 }
func (r indexRand) Int64N(n int64) int64 { return int64(r.IntN(int(n))) }
func (r indexRand) IntN(n int) int {
	if r.idx >= n {
		return n - 1
	}

	return r.idx
}

func TestSelector_ForTrigger(t *testing.T) {
	tests := []struct {
		kind domain.TriggerKind
		set  Set
	}{
		{domain.TriggerGoodBoyQuestion, GoodBoyQuestion},
		{domain.TriggerGoodBoyStatement, GoodBoyStatement},
		{domain.TriggerBadDog, BadDog},
		{domain.TriggerTreatRequest, Treat},
		{domain.TriggerMultiMention, Comparison},
		{domain.TriggerUnrecognized, Default},
	}

	sel := NewSelector(domain.NewSeededRand(1, 2))

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			for range 50 {
				assert.Contains(t, tt.set, sel.ForTrigger(tt.kind))
			}
		})
	}
}

func TestSelector_PickIsIndexed(t *testing.T) {
	sel := NewSelector(indexRand{idx: 2})

	assert.Equal(t, BadDog[2], sel.Pick(BadDog))
	assert.Equal(t, "", sel.Pick(nil))
}

func TestSelector_PickCoversSet(t *testing.T) {
	sel := NewSelector(domain.NewSeededRand(7, 11))
	seen := make(map[string]bool)

	for range 1000 {
		seen[sel.Pick(Treat)] = true
	}

	assert.Len(t, seen, len(Treat))
}

func TestSpeak(t *testing.T) {
	require.Len(t, Speak, 17)

	barks := 0
	for _, line := range Speak[:16] {
		assert.Contains(t, []string{"Arf!", "BARK!", "RUFF!", "WOOF!"}, line)
		barks++
	}

	assert.Equal(t, 16, barks)
	assert.Contains(t, Speak[16], "cherished")

	sel := NewSelector(indexRand{idx: 16})
	assert.Equal(t, Speak[16], sel.Speak())
}

func TestVerbatimSets(t *testing.T) {
	assert.Len(t, GoodBoyQuestion, 6)
	assert.Len(t, GoodBoyStatement, 4)
	assert.Len(t, BadDog, 3)
	assert.Len(t, Default, 7)
	assert.Len(t, Comparison, 6)
	assert.Len(t, Treat, 4)
	assert.Len(t, Weird, 5)
	assert.Equal(t, "*tilts head*", GoodBoyQuestion[4])
	assert.Equal(t, "I demand pets.", Weird[2])
}

func TestForCurve(t *testing.T) {
	assert.Equal(t, PetPositive, ForCurve(domain.ActionPet, domain.TonePositive))
	assert.Equal(t, PetNeutral, ForCurve(domain.ActionPet, domain.ToneNeutral))
	assert.Equal(t, PetNegative, ForCurve(domain.ActionPet, domain.ToneNegative))
	assert.Equal(t, TreatPositive, ForCurve(domain.ActionTreat, domain.TonePositive))
	assert.Equal(t, TreatNeutral, ForCurve(domain.ActionTreat, domain.ToneNeutral))
	assert.Equal(t, TreatNegative, ForCurve(domain.ActionTreat, domain.ToneNegative))
}

func TestForApology(t *testing.T) {
	assert.Equal(t, ApologyAlreadyFine, ForApology(domain.ApologyAlreadyFine))
	assert.Equal(t, ApologyForgiven, ForApology(domain.ApologyForgiven))
	assert.Equal(t, ApologyStillMad, ForApology(domain.ApologyStillMad))
	assert.Equal(t, ApologyUnforgivable, ForApology(domain.ApologyUnforgivable))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "<@42>", Mention(42))
	assert.Equal(t, "Hello there <@42>!!! Will you give me pets?????", Hello("<@42>"))
	assert.Equal(t, "I BROUGHT THE BALL BACK IN 12.5MS! DO I GET A TREAT?",
		BallReturned(12500*time.Microsecond))
	assert.Equal(t, "You rolled a 10! (Individual rolls: 1, 6, 3)", Rolled([]int{1, 6, 3}, 10))
}

func TestAffectionReport(t *testing.T) {
	assert.Equal(t, "<@1> I LOVE YOU 5 TIMES MORE THAN PETS!!!!!!",
		AffectionReport("<@1>", 5, false))
	assert.Equal(t, "<@1> I LOVE YOU 9 TIMES MORE THAN PETS!!!!!!\n||Don't tell anyone but I love you the most!||",
		AffectionReport("<@1>", 9, true))
}

func TestLeaderboard(t *testing.T) {
	got := Leaderboard(3, []domain.ScoreEntry{
		{SubjectID: 2, Score: 9},
		{SubjectID: 4, Score: 9},
		{SubjectID: 1, Score: 5},
	})

	assert.Equal(t, "Top 3 most loved people... BY ME!!!\n<@2> : 9\n<@4> : 9\n<@1> : 5", got)
	assert.Equal(t, "Top 10 most loved people... BY ME!!!\n", Leaderboard(10, nil))
}

func TestQuoteStored(t *testing.T) {
	q := &domain.Quote{
		Text:       "hello",
		RecordedAt: time.Date(2024, time.March, 9, 8, 7, 6, 0, time.UTC),
	}

	assert.Equal(t, "Stored quote!\nTime: March 09, 2024 08:07:06, Author: Someone, Quote: hello",
		QuoteStored(q, time.UTC))
}
