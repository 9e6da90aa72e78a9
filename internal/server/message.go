package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/game"
)

// Request asks for the frequency table of one state. Cards use the same
// notation as the CLI ("AsKs"); turn and river may be empty.
type Request struct {
	Hole        string `json:"hole"`
	Flop        string `json:"flop"`
	Turn        string `json:"turn,omitempty"`
	River       string `json:"river,omitempty"`
	Perspective string `json:"perspective,omitempty"`
	Target      string `json:"target,omitempty"`
}

// Response carries a frequency table, or Error when the request failed
type Response struct {
	ID          string  `json:"id"`
	State       string  `json:"state,omitempty"`
	Perspective string  `json:"perspective,omitempty"`
	Target      string  `json:"target,omitempty"`
	Missing     int     `json:"missing"`
	Unused      int     `json:"unused"`
	Total       int     `json:"total"`
	ElapsedMS   float64 `json:"elapsed_ms"`
	Entries     []Entry `json:"entries,omitempty"`
	Error       string  `json:"error,omitempty"`
}

// Entry is one category row of a Response
type Entry struct {
	Category    string          `json:"category"`
	Kind        string          `json:"kind"`
	Count       int             `json:"count"`
	Probability decimal.Decimal `json:"probability"`
}

const probabilityPlaces = 6

// NewResponse renders a finished report in wire form
func NewResponse(st game.State, report frequency.Report) Response {
	return Response{
		ID:          uuid.NewString(),
		State:       st.String(),
		Perspective: report.Perspective.String(),
		Target:      report.Target.String(),
		Missing:     report.Missing,
		Unused:      report.Unused,
		Total:       report.Table.Total(),
		ElapsedMS:   float64(report.Elapsed) / float64(time.Millisecond),
		Entries:     newEntries(report),
	}
}

func newEntries(report frequency.Report) []Entry {
	total := decimal.NewFromInt(int64(report.Table.Total()))
	rows := report.Table.Entries()
	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, Entry{
			Category:    row.Category.String(),
			Kind:        row.Category.Kind.String(),
			Count:       row.Count,
			Probability: probability(row.Count, total),
		})
	}
	return entries
}

func probability(count int, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).Div(total).Round(probabilityPlaces)
}
