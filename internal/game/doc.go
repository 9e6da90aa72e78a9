// Package game models the known cards of a single Texas Hold'em hand.
//
// The main type is State, which holds the two hole cards, the flop and the
// optional turn and river. States are values: dealing a street returns a new
// State and leaves the receiver untouched, so a street can move from absent to
// present but never back.
//
// # Basic Usage
//
//	st, err := game.NewState(
//	    [2]deck.Card(deck.MustParseCards("AsKs")),
//	    [3]deck.Card(deck.MustParseCards("QsJs2h")),
//	    nil, nil,
//	)
//	st, err = st.DealTurn(deck.MustCard(deck.Diamonds, deck.Nine))
//
// # Perspective
//
// UsedCards and UnusedCards split the deck into known and unknown cards as seen
// by a viewer. Self sees its own hole cards; Opponent sees only the board and
// treats the hole cards as still in the deck.
package game
