package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/handodds/internal/deck"
)

var (
	ErrDuplicateCard   = errors.New("duplicate card")
	ErrStreetDealt     = errors.New("street already dealt")
	ErrRiverBeforeTurn = errors.New("river dealt before turn")
)

// DuplicateCardError reports a physical card that appears twice in a State
type DuplicateCardError struct {
	Card deck.Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card: %s", e.Card)
}

func (e *DuplicateCardError) Is(target error) bool {
	return target == ErrDuplicateCard
}

// Street is the latest community street that has been dealt
type Street int

const (
	Flop Street = iota
	Turn
	River
)

func (s Street) String() string {
	return [...]string{"flop", "turn", "river"}[s]
}

// State holds the cards known during one hand. The zero value is not valid;
// build states with NewState.
type State struct {
	hole    [2]deck.Card
	flop    [3]deck.Card
	turn    deck.Card
	river   deck.Card
	hasTurn bool
	hasRiv  bool
}

// NewState validates and builds a State. A nil turn or river means the street
// has not been dealt; a river without a turn is rejected.
func NewState(hole [2]deck.Card, flop [3]deck.Card, turn, river *deck.Card) (State, error) {
	s := State{hole: hole, flop: flop}
	if turn != nil {
		s.turn, s.hasTurn = *turn, true
	}
	if river != nil {
		if turn == nil {
			return State{}, ErrRiverBeforeTurn
		}
		s.river, s.hasRiv = *river, true
	}

	if err := s.validate(); err != nil {
		return State{}, err
	}
	return s, nil
}

// ParseState builds a State from card notation. Empty turn or river strings
// mean the street has not been dealt.
func ParseState(hole, flop, turn, river string) (State, error) {
	h, err := parseExactly(hole, 2, "hole")
	if err != nil {
		return State{}, err
	}
	f, err := parseExactly(flop, 3, "flop")
	if err != nil {
		return State{}, err
	}
	t, err := parseOptional(turn, "turn")
	if err != nil {
		return State{}, err
	}
	r, err := parseOptional(river, "river")
	if err != nil {
		return State{}, err
	}
	return NewState([2]deck.Card(h), [3]deck.Card(f), t, r)
}

func parseExactly(s string, n int, what string) ([]deck.Card, error) {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	if len(cards) != n {
		return nil, fmt.Errorf("%s: must contain exactly %d cards, got %d", what, n, len(cards))
	}
	return cards, nil
}

func parseOptional(s, what string) (*deck.Card, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	cards, err := parseExactly(s, 1, what)
	if err != nil {
		return nil, err
	}
	return &cards[0], nil
}

// DealTurn returns a copy of the state with the turn card set
func (s State) DealTurn(c deck.Card) (State, error) {
	if s.hasTurn {
		return s, fmt.Errorf("turn: %w", ErrStreetDealt)
	}
	next := s
	next.turn, next.hasTurn = c, true
	if err := next.validate(); err != nil {
		return s, err
	}
	return next, nil
}

// DealRiver returns a copy of the state with the river card set
func (s State) DealRiver(c deck.Card) (State, error) {
	if !s.hasTurn {
		return s, ErrRiverBeforeTurn
	}
	if s.hasRiv {
		return s, fmt.Errorf("river: %w", ErrStreetDealt)
	}
	next := s
	next.river, next.hasRiv = c, true
	if err := next.validate(); err != nil {
		return s, err
	}
	return next, nil
}

func (s State) validate() error {
	var seen deck.CardSet
	for _, c := range s.allCards() {
		if _, err := deck.NewCard(c.Suit, c.Rank); err != nil {
			return err
		}
		// every card is a valid deck member here, so its bit is in range
		if seen.Contains(c) {
			return &DuplicateCardError{Card: c}
		}
		seen.Add(c)
	}
	return nil
}

func (s State) allCards() []deck.Card {
	cards := append(s.hole[:0:0], s.hole[:]...)
	return append(cards, s.Board()...)
}

func (s State) Hole() [2]deck.Card { return s.hole }
func (s State) Flop() [3]deck.Card { return s.flop }

// Turn returns the turn card and whether it has been dealt
func (s State) Turn() (deck.Card, bool) { return s.turn, s.hasTurn }

// River returns the river card and whether it has been dealt
func (s State) River() (deck.Card, bool) { return s.river, s.hasRiv }

// Street returns the latest street dealt
func (s State) Street() Street {
	switch {
	case s.hasRiv:
		return River
	case s.hasTurn:
		return Turn
	default:
		return Flop
	}
}

// Board returns the community cards dealt so far in street order
func (s State) Board() []deck.Card {
	board := make([]deck.Card, 0, 5)
	board = append(board, s.flop[:]...)
	if s.hasTurn {
		board = append(board, s.turn)
	}
	if s.hasRiv {
		board = append(board, s.river)
	}
	return board
}

// String renders the state as "AsKs | QsJs2h 9d"
func (s State) String() string {
	var b strings.Builder
	for _, c := range s.hole {
		b.WriteString(c.Notation())
	}
	b.WriteString(" |")
	for i, c := range s.Board() {
		if i == 0 || i >= 3 {
			b.WriteByte(' ')
		}
		b.WriteString(c.Notation())
	}
	return b.String()
}
