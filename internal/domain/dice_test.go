package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Dice
		wantErr bool
	}{
		{"three d six", "3d6", Dice{Count: 3, Sides: 6}, false},
		{"upper case and spaces", " 1D20 ", Dice{Count: 1, Sides: 20}, false},
		{"max bounds", "100d1000", Dice{Count: 100, Sides: 1000}, false},
		{"missing separator", "36", Dice{}, true},
		{"missing count", "d6", Dice{}, true},
		{"zero dice", "0d6", Dice{}, true},
		{"one sided", "2d1", Dice{}, true},
		{"too many dice", "101d6", Dice{}, true},
		{"not numbers", "xdy", Dice{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDice_Roll(t *testing.T) {
	rng := &fixedRand{ints: []int64{0, 5, 2}}

	rolls, total := Dice{Count: 3, Sides: 6}.Roll(rng)

	assert.Equal(t, []int{1, 6, 3}, rolls)
	assert.Equal(t, 10, total)
}

func TestDice_RollStaysInRange(t *testing.T) {
	rng := NewRand()
	d := Dice{Count: 50, Sides: 4}

	rolls, total := d.Roll(rng)

	sum := 0
	for _, r := range rolls {
		assert.GreaterOrEqual(t, r, 1)
		assert.LessOrEqual(t, r, 4)
		sum += r
	}

	assert.Equal(t, sum, total)
	assert.Equal(t, "50d4", d.String())
}
