package deck

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/florafly/24-Point-Master/expression"
)

// DefaultMaxAttempts bounds the redraw loop before the dealer gives up
// on finding a solvable hand.
const DefaultMaxAttempts = 100

// Oracle reports whether a hand's values can make 24. It exists as an
// injection point so tests can force the retry-exhaustion path.
type Oracle func(values []float64) bool

// Dealer deals hands that the expression engine can solve, redrawing
// from a fresh shuffled deck until one passes or the attempt budget
// runs out.
type Dealer struct {
	difficulty  Difficulty
	rng         RandSource
	maxAttempts int
	solvable    Oracle
}

// NewDealer creates a dealer for the given difficulty. A nil rng gets
// a fresh entropy-seeded source shared across this dealer's deals.
func NewDealer(difficulty Difficulty, rng RandSource) *Dealer {
	return &Dealer{
		difficulty:  difficulty,
		rng:         rng,
		maxAttempts: DefaultMaxAttempts,
		solvable: func(values []float64) bool {
			return expression.Solve(values).Solvable
		},
	}
}

func (d *Dealer) SetMaxAttempts(n int) {
	d.maxAttempts = n
}

func (d *Dealer) SetOracle(o Oracle) {
	d.solvable = o
}

// Deal draws a solvable hand of count cards. After the attempt budget
// is exhausted it falls back to the top of a fresh unshuffled deck;
// that hand is NOT guaranteed solvable, and callers must treat an
// unsolvable dealt hand as a legitimate outcome (redraw UX, not a bug).
func (d *Dealer) Deal(count int) ([]Card, error) {
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		deck := New(d.difficulty, d.rng)
		deck.Shuffle()
		hand, err := deck.Draw(count)
		if err != nil {
			return nil, fmt.Errorf("deal: %w", err)
		}
		if d.solvable(HandValues(hand)) {
			log.Debug().Int("attempt", attempt).Msg("dealt solvable hand")
			return hand, nil
		}
	}
	log.Warn().Int("attempts", d.maxAttempts).
		Msg("no solvable hand found; dealing unshuffled fallback")
	hand, err := New(d.difficulty, d.rng).Draw(count)
	if err != nil {
		return nil, fmt.Errorf("deal: %w", err)
	}
	return hand, nil
}

// HandValues extracts the numeric values the expression engine takes.
func HandValues(cards []Card) []float64 {
	return lo.Map(cards, func(c Card, _ int) float64 {
		return float64(c.Value)
	})
}
