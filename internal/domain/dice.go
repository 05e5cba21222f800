package domain

import (
	"strconv"
	"strings"
)

// Dice bounds.
const (
	MaxDiceCount = 100
	MinDiceSides = 2
	MaxDiceSides = 1000
)

// Dice is a parsed "NdS" roll request.
type Dice struct {
	Count int
	Sides int
}

// ParseDice parses "NdS", e.g. "3d6".
func ParseDice(s string) (Dice, error) {
	raw := strings.TrimSpace(s)

	count, sides, ok := strings.Cut(strings.ToLower(raw), "d")
	if !ok {
		return Dice{}, NewValidationErrorWithValue("dice", "expected NdS, e.g. 3d6", s)
	}

	n, err := strconv.Atoi(count)
	if err != nil || n < 1 || n > MaxDiceCount {
		return Dice{}, NewValidationErrorWithValue("dice",
			"dice count must be between 1 and "+strconv.Itoa(MaxDiceCount), s)
	}

	faces, err := strconv.Atoi(sides)
	if err != nil || faces < MinDiceSides || faces > MaxDiceSides {
		return Dice{}, NewValidationErrorWithValue("dice",
			"sides must be between "+strconv.Itoa(MinDiceSides)+" and "+strconv.Itoa(MaxDiceSides), s)
	}

	return Dice{Count: n, Sides: faces}, nil
}

// Roll rolls every die and returns the individual results and their sum.
func (d Dice) Roll(rng Rand) ([]int, int) {
	rolls := make([]int, d.Count)
	total := 0

	for i := range rolls {
		rolls[i] = rng.IntN(d.Sides) + 1
		total += rolls[i]
	}

	return rolls, total
}

func (d Dice) String() string {
	return strconv.Itoa(d.Count) + "d" + strconv.Itoa(d.Sides)
}
