package game

import (
	"fmt"
	"strings"

	"github.com/lox/handodds/internal/deck"
)

// Perspective decides whether the hole cards count as known
type Perspective int

const (
	// Self is the holder's view: hole cards are known.
	Self Perspective = iota
	// Opponent sees only the board; the hole cards are still unknown.
	Opponent
)

// Perspectives lists every perspective
var Perspectives = [...]Perspective{Self, Opponent}

func (p Perspective) String() string {
	switch p {
	case Self:
		return "self"
	case Opponent:
		return "opponent"
	default:
		return "unknown"
	}
}

// ParsePerspective accepts "self"/"hero" and "opponent"/"villain"
func ParsePerspective(s string) (Perspective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "self", "hero":
		return Self, nil
	case "opponent", "villain":
		return Opponent, nil
	default:
		return 0, fmt.Errorf("unknown perspective %q (want self or opponent)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p Perspective) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *Perspective) UnmarshalText(b []byte) error {
	v, err := ParsePerspective(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// UsedCards returns the cards known from perspective p: the board dealt so far
// plus, for Self, the hole cards.
func UsedCards(s State, p Perspective) deck.CardSet {
	used := deck.NewCardSet(s.Board()...)
	if p == Self {
		used.Add(s.hole[0])
		used.Add(s.hole[1])
	}
	return used
}

// UnusedCards returns every card of the deck not known from perspective p
func UnusedCards(s State, p Perspective) deck.CardSet {
	return UsedCards(s, p).Complement()
}
