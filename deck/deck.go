package deck

import (
	"encoding/binary"
	"fmt"

	"lukechampine.com/frand"
)

// RandSource is the randomness a Deck needs for shuffling. It is
// injected so tests can run with a seeded source; *frand.RNG
// satisfies it.
type RandSource interface {
	Intn(n int) int
}

// SeededSource returns a deterministic RandSource for the given seed.
func SeededSource(seed int64) RandSource {
	var b [32]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	return frand.NewCustom(b[:], 1024, 12)
}

// Deck is the ordered set of cards not yet drawn. A fresh deck is in
// rank-major order (all aces, all twos, ...) until shuffled.
type Deck struct {
	cards []Card
	rng   RandSource
}

// New builds the full deck for the difficulty's rank range, one card
// per rank per suit. A nil rng gets a fresh entropy-seeded source.
func New(d Difficulty, rng RandSource) *Deck {
	if rng == nil {
		rng = frand.New()
	}
	cards := make([]Card, 0, d.MaxValue()*len(suits))
	for v := 1; v <= d.MaxValue(); v++ {
		for _, s := range suits {
			cards = append(cards, Card{
				ID:    fmt.Sprintf("%d-of-%s", v, s.Name()),
				Value: v,
				Suit:  s,
			})
		}
	}
	return &Deck{cards: cards, rng: rng}
}

// Shuffle permutes the deck uniformly (Fisher-Yates, swapping each
// index from the top down with a partner in [0, i]).
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw removes and returns the top n cards.
func (d *Deck) Draw(n int) ([]Card, error) {
	if n < 0 || n > len(d.cards) {
		return nil, fmt.Errorf("tried to draw %v cards, deck has %v", n, len(d.cards))
	}
	drawn := d.cards[:n]
	d.cards = d.cards[n:]
	return drawn, nil
}

func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}
