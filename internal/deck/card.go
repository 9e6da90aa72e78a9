package deck

import (
	"errors"
	"fmt"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Diamonds
	Clubs
	Hearts
)

// Suits lists every suit in deck order
var Suits = [4]Suit{Spades, Diamonds, Clubs, Hearts}

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Hearts
}

// Letter returns the single-letter notation used by ParseCard (s, d, c, h)
func (s Suit) Letter() string {
	switch s {
	case Spades:
		return "s"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Hearts:
		return "h"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14).
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const (
	MinRank = Two
	MaxRank = Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Nine {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Valid reports whether r is inside [MinRank, MaxRank]
func (r Rank) Valid() bool {
	return r >= MinRank && r <= MaxRank
}

// ErrInvalidRank is matched by every *InvalidRankError via errors.Is
var ErrInvalidRank = errors.New("invalid rank")

// InvalidRankError is returned when a card is built with a rank outside [Min, Max]
type InvalidRankError struct {
	Rank Rank
	Min  Rank
	Max  Rank
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank %d: must be between %d and %d", int(e.Rank), int(e.Min), int(e.Max))
}

func (e *InvalidRankError) Is(target error) bool {
	return target == ErrInvalidRank
}

// ErrInvalidSuit is matched by every *InvalidSuitError via errors.Is
var ErrInvalidSuit = errors.New("invalid suit")

// InvalidSuitError is returned when a card is built with an unknown suit
type InvalidSuitError struct {
	Suit Suit
}

func (e *InvalidSuitError) Error() string {
	return fmt.Sprintf("invalid suit %d: must be between %d and %d", int(e.Suit), int(Spades), int(Hearts))
}

func (e *InvalidSuitError) Is(target error) bool {
	return target == ErrInvalidSuit
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card, rejecting unknown suits and ranks outside [2, 14]
func NewCard(suit Suit, rank Rank) (Card, error) {
	if !suit.Valid() {
		return Card{}, &InvalidSuitError{Suit: suit}
	}
	if !rank.Valid() {
		return Card{}, &InvalidRankError{Rank: rank, Min: MinRank, Max: MaxRank}
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// MustCard is like NewCard but panics on an invalid card (for tests and literals)
func MustCard(suit Suit, rank Rank) Card {
	c, err := NewCard(suit, rank)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the parseable form of a card (e.g., "As")
func (c Card) Notation() string {
	return c.Rank.String() + c.Suit.Letter()
}
