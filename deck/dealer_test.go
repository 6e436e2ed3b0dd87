package deck

import (
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/florafly/24-Point-Master/expression"
)

func TestDealSolvableHands(t *testing.T) {
	dealer := NewDealer(Easy, SeededSource(1))

	for i := 0; i < 1000; i++ {
		hand, err := dealer.Deal(4)
		if err != nil {
			t.Fatal(err)
		}
		if len(hand) != 4 {
			t.Fatalf("deal %d: got %d cards", i, len(hand))
		}
		ids := map[string]bool{}
		for _, c := range hand {
			if c.Value < 1 || c.Value > 10 {
				t.Fatalf("deal %d: value %d out of easy range", i, c.Value)
			}
			if ids[c.ID] {
				t.Fatalf("deal %d: duplicate card %s", i, c.ID)
			}
			ids[c.ID] = true
		}
		// With the real oracle and a 100-attempt budget the fallback
		// path is effectively unreachable.
		if !expression.Solve(HandValues(hand)).Solvable {
			t.Fatalf("deal %d: unsolvable hand %v", i, hand)
		}
	}
}

func TestDealExhaustionFallback(t *testing.T) {
	is := is.New(t)

	dealer := NewDealer(Easy, SeededSource(1))
	dealer.SetMaxAttempts(3)
	dealer.SetOracle(func([]float64) bool { return false })

	hand, err := dealer.Deal(4)
	is.NoErr(err)

	// The fallback is the top of a fresh unshuffled deck: rank-major
	// order puts the four aces first.
	fresh := New(Easy, nil)
	expected, err := fresh.Draw(4)
	is.NoErr(err)
	is.Equal(hand, expected)
	is.Equal(HandValues(hand), []float64{1, 1, 1, 1})
}

func TestDealInvalidCount(t *testing.T) {
	is := is.New(t)

	dealer := NewDealer(Easy, SeededSource(1))
	_, err := dealer.Deal(-1)
	is.True(err != nil)

	_, err = dealer.Deal(41)
	is.True(err != nil)
}

func TestHandValues(t *testing.T) {
	hand := []Card{
		{ID: "4-of-spades", Value: 4, Suit: Spades},
		{ID: "1-of-hearts", Value: 1, Suit: Hearts},
		{ID: "8-of-diamonds", Value: 8, Suit: Diamonds},
		{ID: "7-of-clubs", Value: 7, Suit: Clubs},
	}
	assert.Equal(t, []float64{4, 1, 8, 7}, HandValues(hand))
}
