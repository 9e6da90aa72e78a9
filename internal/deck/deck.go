package deck

import "math/bits"

// Size is the number of cards in a standard deck
const Size = 52

// All returns the 52 cards of a standard deck in suit-major order.
// The deck is rebuilt on every call; callers own the returned array.
func All() [Size]Card {
	var cards [Size]Card
	i := 0
	for _, suit := range Suits {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards[i] = Card{Suit: suit, Rank: rank}
			i++
		}
	}
	return cards
}

// CardSet represents a set of cards using a bitset for fast operations.
// Each card maps to a bit: index = suit*13 + (rank-2), matching All().
type CardSet uint64

const fullMask CardSet = 1<<Size - 1

// FullDeck is the set containing every card
const FullDeck = fullMask

func cardIndex(card Card) int {
	return int(card.Suit)*13 + int(card.Rank-MinRank)
}

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, card := range cards {
		cs.Add(card)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << cardIndex(card)
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return cs&(1<<cardIndex(card)) != 0
}

// Len returns the number of cards in the set
func (cs CardSet) Len() int {
	return bits.OnesCount64(uint64(cs))
}

func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

func (cs CardSet) Intersect(other CardSet) CardSet {
	return cs & other
}

// Complement returns every card of the deck not in cs
func (cs CardSet) Complement() CardSet {
	return ^cs & fullMask
}

// Cards returns the members of the set in deck order
func (cs CardSet) Cards() []Card {
	out := make([]Card, 0, cs.Len())
	all := All()
	for rest := uint64(cs & fullMask); rest != 0; rest &= rest - 1 {
		out = append(out, all[bits.TrailingZeros64(rest)])
	}
	return out
}
