package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/lox/handodds/internal/deck"
)

func hand(t *testing.T, s string) [HandSize]deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(s)
	require.NoError(t, err)
	require.Len(t, cards, HandSize)
	return [HandSize]deck.Card(cards)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandCategory
	}{
		{"royal flush", "TcJcQcKcAc", HandCategory{Kind: RoyalFlush}},
		{"straight flush", "3d4d5d6d7d", HandCategory{Kind: StraightFlush, High: deck.Seven}},
		{"steel wheel", "Ah2h3h4h5h", HandCategory{Kind: StraightFlush, High: deck.Five}},
		{"four of a kind", "4s4c4h4dKh", HandCategory{Kind: FourOfAKind, High: deck.Four}},
		{"four of a kind low kicker", "2sAsAhAdAc", HandCategory{Kind: FourOfAKind, High: deck.Ace}},
		{"full house trips high", "8h8d8s3c3h", HandCategory{Kind: FullHouse, High: deck.Eight, Low: deck.Three}},
		{"full house trips low", "3h3d3sKcKh", HandCategory{Kind: FullHouse, High: deck.Three, Low: deck.King}},
		{"flush", "4c9cKcAc8c", HandCategory{Kind: Flush, High: deck.Ace}},
		{"wheel", "2dAh3s4d5d", HandCategory{Kind: Straight, High: deck.Five}},
		{"broadway", "TsJhQdKcAs", HandCategory{Kind: Straight, High: deck.Ace}},
		{"three of a kind", "AsAcAh2s9d", HandCategory{Kind: ThreeOfAKind, High: deck.Ace}},
		{"three of a kind middle", "2s7c7h7dKd", HandCategory{Kind: ThreeOfAKind, High: deck.Seven}},
		{"two pair", "JdJs7h7c4d", HandCategory{Kind: TwoPair, High: deck.Jack, Low: deck.Seven}},
		{"two pair kicker in middle", "3s3dTcKhKs", HandCategory{Kind: TwoPair, High: deck.King, Low: deck.Three}},
		{"two pair kicker low", "2s9d9cQhQs", HandCategory{Kind: TwoPair, High: deck.Queen, Low: deck.Nine}},
		{"pair", "KhKc4h2s9s", HandCategory{Kind: Pair, High: deck.King}},
		{"high card", "8c7c3h2d4s", HandCategory{Kind: HighCard, High: deck.Eight}},
		{"ace high almost wheel", "2c3d4h5sAs", HandCategory{Kind: Straight, High: deck.Five}},
		{"not a straight around the corner", "QsKdAh2c3c", HandCategory{Kind: HighCard, High: deck.Ace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(hand(t, tt.cards)))
		})
	}
}

func TestClassifyWheelIsNeverRoyal(t *testing.T) {
	for _, suit := range deck.Suits {
		cards := [HandSize]deck.Card{}
		for i, r := range []deck.Rank{deck.Ace, deck.Two, deck.Three, deck.Four, deck.Five} {
			cards[i] = deck.MustCard(suit, r)
		}
		got := Classify(cards)
		assert.Equal(t, HandCategory{Kind: StraightFlush, High: deck.Five}, got)
	}
}

func TestClassifyDoesNotReorderInput(t *testing.T) {
	cards := hand(t, "AsKd2c9h5s")
	before := cards
	Classify(cards)
	assert.Equal(t, before, cards)
}

func TestClassifyIsOrderIndependent(t *testing.T) {
	hands := []string{"TcJcQcKcAc", "8h8d8s3c3h", "2dAh3s4d5d", "JdJs7h7c4d", "8c7c3h2d4s"}
	perms := combin.Permutations(HandSize, HandSize)

	for _, h := range hands {
		base := hand(t, h)
		want := Classify(base)
		for _, p := range perms {
			var shuffled [HandSize]deck.Card
			for i, j := range p {
				shuffled[i] = base[j]
			}
			require.Equal(t, want, Classify(shuffled), "permutation %v of %s", p, h)
		}
	}
}

// The number of distinct five card hands in each category is well known; a
// full sweep proves every hand resolves to exactly one category.
func TestClassifyAllHands(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full deck sweep in short mode")
	}

	expected := map[Kind]int{
		RoyalFlush:    4,
		StraightFlush: 36,
		FourOfAKind:   624,
		FullHouse:     3744,
		Flush:         5108,
		Straight:      10200,
		ThreeOfAKind:  54912,
		TwoPair:       123552,
		Pair:          1098240,
		HighCard:      1302540,
	}

	all := deck.All()
	counts := make(map[Kind]int)
	idx := make([]int, HandSize)
	var cards [HandSize]deck.Card
	gen := combin.NewCombinationGenerator(deck.Size, HandSize)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			cards[i] = all[j]
		}
		counts[Classify(cards).Kind]++
	}

	assert.Equal(t, expected, counts)
}

func TestBest(t *testing.T) {
	tests := []struct {
		name     string
		cards    string
		expected HandCategory
	}{
		{"five cards", "KhKc4h2s9s", HandCategory{Kind: Pair, High: deck.King}},
		{"royal among seven", "AsKsQsJsTs9h8h", HandCategory{Kind: RoyalFlush}},
		{"full house beats flush", "AsAhAdKsKh2s3s", HandCategory{Kind: FullHouse, High: deck.Ace, Low: deck.King}},
		{"best of two trips", "7s7h7d4c4s4h2d", HandCategory{Kind: FullHouse, High: deck.Seven, Low: deck.Four}},
		{"six card straight", "9h8d7c6s5hKd", HandCategory{Kind: Straight, High: deck.Nine}},
		{"higher two pair", "QsQdJhJc3s3c", HandCategory{Kind: TwoPair, High: deck.Queen, Low: deck.Jack}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Best(deck.MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Best(deck.MustParseCards("AsKs"))
	assert.ErrorIs(t, err, ErrTooFewCards)
}

func TestHandCategoryOrdering(t *testing.T) {
	ordered := []HandCategory{
		{Kind: HighCard, High: deck.Seven},
		{Kind: HighCard, High: deck.Ace},
		{Kind: Pair, High: deck.Two},
		{Kind: TwoPair, High: deck.Jack, Low: deck.Three},
		{Kind: TwoPair, High: deck.Jack, Low: deck.Ten},
		{Kind: ThreeOfAKind, High: deck.Four},
		{Kind: Straight, High: deck.Five},
		{Kind: Straight, High: deck.Six},
		{Kind: Flush, High: deck.Nine},
		{Kind: FullHouse, High: deck.Three, Low: deck.Ace},
		{Kind: FullHouse, High: deck.Four, Low: deck.Two},
		{Kind: FourOfAKind, High: deck.King},
		{Kind: StraightFlush, High: deck.King},
		{Kind: RoyalFlush},
	}

	for i := 1; i < len(ordered); i++ {
		assert.True(t, ordered[i-1].Less(ordered[i]), "%s < %s", ordered[i-1], ordered[i])
		assert.Equal(t, 1, ordered[i].Compare(ordered[i-1]))
	}
	assert.Equal(t, 0, ordered[3].Compare(HandCategory{Kind: TwoPair, High: deck.Jack, Low: deck.Three}))
}

func TestHandCategoryString(t *testing.T) {
	assert.Equal(t, "RoyalFlush", HandCategory{Kind: RoyalFlush}.String())
	assert.Equal(t, "StraightFlush(7)", HandCategory{Kind: StraightFlush, High: deck.Seven}.String())
	assert.Equal(t, "FullHouse(8,3)", HandCategory{Kind: FullHouse, High: deck.Eight, Low: deck.Three}.String())
	assert.Equal(t, "TwoPair(11,7)", HandCategory{Kind: TwoPair, High: deck.Jack, Low: deck.Seven}.String())
	assert.Equal(t, "Full House, 8 over 3", HandCategory{Kind: FullHouse, High: deck.Eight, Low: deck.Three}.Describe())
	assert.Equal(t, "Pair of K", HandCategory{Kind: Pair, High: deck.King}.Describe())
	assert.Equal(t, "Three of a Kind, 5", HandCategory{Kind: ThreeOfAKind, High: deck.Five}.Describe())
}
