package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handodds/internal/deck"
)

func TestParsePerspective(t *testing.T) {
	for input, want := range map[string]Perspective{
		"self": Self, "Hero": Self, " opponent ": Opponent, "VILLAIN": Opponent,
	} {
		got, err := ParsePerspective(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParsePerspective("table")
	assert.Error(t, err)

	var p Perspective
	require.NoError(t, p.UnmarshalText([]byte("opponent")))
	assert.Equal(t, Opponent, p)
	text, err := Self.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "self", string(text))
}

func TestUsedUnusedPartition(t *testing.T) {
	states := []State{
		mustState(t, "AsKs", "QsJs2h", "", ""),
		mustState(t, "7c2d", "7h7s2c", "Ad", ""),
		mustState(t, "Th9h", "8h7h2c", "Kd", "3s"),
	}

	for _, st := range states {
		for _, p := range Perspectives {
			t.Run(st.String()+"/"+p.String(), func(t *testing.T) {
				used := UsedCards(st, p)
				unused := UnusedCards(st, p)

				assert.Equal(t, deck.CardSet(0), used.Intersect(unused))
				assert.Equal(t, deck.FullDeck, used.Union(unused))
				assert.Equal(t, deck.Size, used.Len()+unused.Len())

				for _, c := range st.Board() {
					assert.True(t, used.Contains(c), "board card %s is known", c)
				}
				for _, c := range st.Hole() {
					assert.Equal(t, p == Self, used.Contains(c), "hole card %s", c)
				}
			})
		}
	}
}

func TestUsedCardsCountsByStreet(t *testing.T) {
	flop := mustState(t, "AsKs", "QsJs2h", "", "")
	turn := mustState(t, "AsKs", "QsJs2h", "9d", "")
	river := mustState(t, "AsKs", "QsJs2h", "9d", "3c")

	assert.Equal(t, 5, UsedCards(flop, Self).Len())
	assert.Equal(t, 3, UsedCards(flop, Opponent).Len())
	assert.Equal(t, 6, UsedCards(turn, Self).Len())
	assert.Equal(t, 4, UsedCards(turn, Opponent).Len())
	assert.Equal(t, 7, UsedCards(river, Self).Len())
	assert.Equal(t, 5, UsedCards(river, Opponent).Len())
}

func TestUsedCardsIsDeterministic(t *testing.T) {
	st := mustState(t, "AsKs", "QsJs2h", "9d", "")
	first := UnusedCards(st, Opponent)
	_ = UnusedCards(st, Self)
	assert.Equal(t, first, UnusedCards(st, Opponent))
}
