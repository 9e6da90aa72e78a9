package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/game"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "25.00%", Percent(1, 4, 2))
	assert.Equal(t, "33.333%", Percent(1, 3, 3))
	assert.Equal(t, "100%", Percent(48, 48, 0))
	assert.Equal(t, "0.00%", Percent(0, 0, 2))
	assert.Equal(t, "4.1%", Percent(48, 1176, 1))
}

func TestFormatCards(t *testing.T) {
	assert.Equal(t, "A♠ K♦ 2♣", FormatCards(deck.MustParseCards("AsKd2c")))
	assert.Equal(t, "", FormatCards(nil))
}

func TestClassification(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false, 2)
	r.Classification(deck.MustParseCards("8h8d8s3c3h"),
		evaluator.HandCategory{Kind: evaluator.FullHouse, High: deck.Eight, Low: deck.Three})

	out := buf.String()
	assert.Contains(t, out, "8♥ 8♦ 8♠ 3♣ 3♥")
	assert.Contains(t, out, "Full House, 8 over 3")
	assert.Contains(t, out, "FullHouse(8,3)")
}

func TestReport(t *testing.T) {
	st, err := game.ParseState("AsKh", "2c7d9h", "Ks", "")
	require.NoError(t, err)

	report, err := frequency.New().Run(t.Context(), st, game.Opponent)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewRenderer(&buf, false, 2).Report(st, report)
	out := buf.String()

	assert.Contains(t, out, "A♠ K♥")
	assert.Contains(t, out, "2♣ 7♦ 9♥ K♠")
	assert.Contains(t, out, "perspective opponent")
	assert.Contains(t, out, "High Card, K high")
	assert.Contains(t, out, "66.67%")
	assert.Contains(t, out, "48 combinations (48 choose 1)")

	// strongest category first
	assert.Less(t, strings.Index(out, "Pair of K"), strings.Index(out, "Pair of 2"))
	assert.NotContains(t, out, "\x1b[", "no escape codes without color")
}

func TestComparison(t *testing.T) {
	st, err := game.ParseState("AsKs", "QsJs2h", "9d", "")
	require.NoError(t, err)

	engine := frequency.New()
	var reports []frequency.Report
	for _, p := range game.Perspectives {
		report, err := engine.Run(t.Context(), st, p)
		require.NoError(t, err)
		reports = append(reports, report)
	}

	var buf bytes.Buffer
	NewRenderer(&buf, false, 1).Comparison(st, reports)
	out := buf.String()

	assert.Contains(t, out, "self")
	assert.Contains(t, out, "opponent")
	assert.Contains(t, out, "Royal Flush")
	assert.Contains(t, out, "1 combinations (46 choose 0)")
	assert.Contains(t, out, "48 combinations (48 choose 1)")
}
