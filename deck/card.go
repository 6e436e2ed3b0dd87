// Package deck deals hands for the 24 game. It builds a parameterized
// deck, shuffles it with an injected random source, and redraws until
// the hand passes the expression engine's solvability check.
package deck

import "fmt"

type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

var suitGlyphs = [4]string{"♠", "♥", "♦", "♣"}

var suitNames = [4]string{"spades", "hearts", "diamonds", "clubs"}

func (s Suit) String() string {
	return suitGlyphs[s]
}

func (s Suit) Name() string {
	return suitNames[s]
}

type Color int

const (
	Black Color = iota
	Red
)

func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Card is one playing card. ID is unique within a deck; the UI owns a
// dealt card for the lifetime of one hand and discards it on redraw.
type Card struct {
	ID    string
	Value int // 1..13
	Suit  Suit
}

func (c Card) Color() Color {
	return c.Suit.Color()
}

var faceRanks = map[int]string{1: "A", 11: "J", 12: "Q", 13: "K"}

// Rank returns the display name for the card's value (A, 2..10, J, Q, K).
func (c Card) Rank() string {
	if r, ok := faceRanks[c.Value]; ok {
		return r
	}
	return fmt.Sprintf("%d", c.Value)
}

func (c Card) String() string {
	return c.Rank() + c.Suit.String()
}

// Difficulty selects the deck's maximum face value.
type Difficulty int

const (
	Easy Difficulty = iota // ranks 1..10, 40 cards
	Hard                   // ranks 1..13, 52 cards
)

func (d Difficulty) MaxValue() int {
	if d == Hard {
		return 13
	}
	return 10
}

func (d Difficulty) String() string {
	if d == Hard {
		return "hard"
	}
	return "easy"
}

// DifficultyFromName maps a config string to a Difficulty. Anything
// other than "hard" is treated as Easy.
func DifficultyFromName(name string) Difficulty {
	if name == "hard" {
		return Hard
	}
	return Easy
}
