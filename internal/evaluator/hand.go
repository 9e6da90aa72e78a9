package evaluator

import (
	"fmt"

	"github.com/lox/handodds/internal/deck"
)

// Kind is the category of a five card hand, ordered from weakest to strongest
type Kind int

const (
	HighCard Kind = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Kinds lists every kind from strongest to weakest
var Kinds = [...]Kind{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, Pair, HighCard,
}

// String returns the string representation of a hand kind
func (k Kind) String() string {
	switch k {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// HandCategory is a hand kind plus the ranks needed to order hands of the same kind.
//
// High carries the single rank for one-rank kinds (the pair, the trips, the top
// card of a straight or flush), the trips rank of a full house and the upper pair
// of two pair. Low carries the pair of a full house and the lower pair of two
// pair. Unused fields are zero, so equal categories compare equal with == and can
// be used as map keys.
type HandCategory struct {
	Kind Kind
	High deck.Rank
	Low  deck.Rank
}

// Compare returns -1 if a is weaker than b, 0 if they are equal and 1 if a is stronger
func (a HandCategory) Compare(b HandCategory) int {
	switch {
	case a.Kind != b.Kind:
		return sign(int(a.Kind) - int(b.Kind))
	case a.High != b.High:
		return sign(int(a.High) - int(b.High))
	default:
		return sign(int(a.Low) - int(b.Low))
	}
}

// Less reports whether a is weaker than b
func (a HandCategory) Less(b HandCategory) bool {
	return a.Compare(b) < 0
}

// String renders the category with its tie-break ranks, e.g. "FullHouse(8,3)"
func (a HandCategory) String() string {
	switch a.Kind {
	case RoyalFlush:
		return "RoyalFlush"
	case TwoPair, FullHouse:
		return fmt.Sprintf("%s(%d,%d)", a.Kind.ident(), int(a.High), int(a.Low))
	default:
		return fmt.Sprintf("%s(%d)", a.Kind.ident(), int(a.High))
	}
}

// Describe renders the category for people, e.g. "Full House, 8 over 3"
func (a HandCategory) Describe() string {
	switch a.Kind {
	case RoyalFlush:
		return a.Kind.String()
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", a.Kind, a.High, a.Low)
	case FullHouse:
		return fmt.Sprintf("%s, %s over %s", a.Kind, a.High, a.Low)
	case Straight, Flush, StraightFlush, HighCard:
		return fmt.Sprintf("%s, %s high", a.Kind, a.High)
	case ThreeOfAKind, FourOfAKind:
		return fmt.Sprintf("%s, %s", a.Kind, a.High)
	default:
		return fmt.Sprintf("%s of %s", a.Kind, a.High)
	}
}

func (k Kind) ident() string {
	switch k {
	case HighCard:
		return "HighCard"
	case Pair:
		return "Pair"
	case TwoPair:
		return "TwoPair"
	case ThreeOfAKind:
		return "ThreeOfAKind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "FullHouse"
	case FourOfAKind:
		return "FourOfAKind"
	case StraightFlush:
		return "StraightFlush"
	case RoyalFlush:
		return "RoyalFlush"
	default:
		return "Unknown"
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
