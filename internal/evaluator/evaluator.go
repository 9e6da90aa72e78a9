// Package evaluator classifies five card poker hands into ordered categories.
package evaluator

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/lox/handodds/internal/deck"
)

// HandSize is the number of cards in an evaluated hand
const HandSize = 5

// ErrTooFewCards is returned by Best when fewer than five cards are supplied
var ErrTooFewCards = errors.New("at least 5 cards are required")

// Classify returns the category of exactly five cards. The array is taken by
// value, so sorting never reorders the caller's cards.
func Classify(cards [HandSize]deck.Card) HandCategory {
	sort.Sort(cardsByRank(cards[:]))

	var ranks [HandSize]deck.Rank
	var suits [HandSize]deck.Suit
	for i, c := range cards {
		ranks[i] = c.Rank
		suits[i] = c.Suit
	}

	top := ranks[4]
	straight, straightHigh := isStraight(ranks)
	flush := isFlush(suits)

	if straight && flush && straightHigh == deck.Ace {
		return HandCategory{Kind: RoyalFlush}
	}
	if straight && flush {
		return HandCategory{Kind: StraightFlush, High: straightHigh}
	}
	if r, ok := nOfAKind(ranks, 4); ok {
		return HandCategory{Kind: FourOfAKind, High: r}
	}
	if trips, pair, ok := fullHouse(ranks); ok {
		return HandCategory{Kind: FullHouse, High: trips, Low: pair}
	}
	if flush {
		return HandCategory{Kind: Flush, High: top}
	}
	if straight {
		return HandCategory{Kind: Straight, High: straightHigh}
	}
	if r, ok := nOfAKind(ranks, 3); ok {
		return HandCategory{Kind: ThreeOfAKind, High: r}
	}
	if high, low, ok := twoPair(ranks); ok {
		return HandCategory{Kind: TwoPair, High: high, Low: low}
	}
	if r, ok := nOfAKind(ranks, 2); ok {
		return HandCategory{Kind: Pair, High: r}
	}
	return HandCategory{Kind: HighCard, High: top}
}

// Best returns the strongest category over every five card subset of cards
func Best(cards []deck.Card) (HandCategory, error) {
	if len(cards) < HandSize {
		return HandCategory{}, ErrTooFewCards
	}
	if len(cards) == HandSize {
		return Classify([HandSize]deck.Card(cards)), nil
	}

	var best HandCategory
	var hand [HandSize]deck.Card
	idx := make([]int, HandSize)
	gen := combin.NewCombinationGenerator(len(cards), HandSize)
	for first := true; gen.Next(); first = false {
		gen.Combination(idx)
		for i, j := range idx {
			hand[i] = cards[j]
		}
		if cat := Classify(hand); first || best.Less(cat) {
			best = cat
		}
	}
	return best, nil
}

// isStraight expects ascending ranks. The wheel (A-2-3-4-5) plays the ace low
// and reports five as its high card.
func isStraight(r [HandSize]deck.Rank) (bool, deck.Rank) {
	if r[0] == deck.Two && r[1] == deck.Three && r[2] == deck.Four && r[3] == deck.Five && r[4] == deck.Ace {
		return true, deck.Five
	}
	for i := 1; i < HandSize; i++ {
		if r[i] != r[i-1]+1 {
			return false, 0
		}
	}
	return true, r[4]
}

func isFlush(s [HandSize]deck.Suit) bool {
	for i := 1; i < HandSize; i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// nOfAKind slides an n-card window over the sorted ranks and returns the rank
// of the first window whose cards all match
func nOfAKind(r [HandSize]deck.Rank, n int) (deck.Rank, bool) {
	for start := 0; start+n <= HandSize; start++ {
		if allEqual(r[start : start+n]) {
			return r[start], true
		}
	}
	return 0, false
}

func fullHouse(r [HandSize]deck.Rank) (trips, pair deck.Rank, ok bool) {
	switch {
	case allEqual(r[0:2]) && allEqual(r[2:5]):
		return r[2], r[0], true
	case allEqual(r[0:3]) && allEqual(r[3:5]):
		return r[0], r[3], true
	}
	return 0, 0, false
}

// twoPair checks the three adjacency patterns a sorted two pair hand can take
func twoPair(r [HandSize]deck.Rank) (high, low deck.Rank, ok bool) {
	switch {
	case r[0] == r[1] && r[2] == r[3]:
		return r[2], r[0], true
	case r[0] == r[1] && r[3] == r[4]:
		return r[3], r[0], true
	case r[1] == r[2] && r[3] == r[4]:
		return r[3], r[1], true
	}
	return 0, 0, false
}

func allEqual(r []deck.Rank) bool {
	for _, x := range r[1:] {
		if x != r[0] {
			return false
		}
	}
	return true
}

// cardsByRank is a helper type for sorting cards by rank
type cardsByRank []deck.Card

func (c cardsByRank) Len() int           { return len(c) }
func (c cardsByRank) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }
func (c cardsByRank) Less(i, j int) bool { return c[i].Rank < c[j].Rank }
