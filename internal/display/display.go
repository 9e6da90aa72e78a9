// Package display renders classification and frequency results for the terminal.
package display

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/game"
)

var hundred = decimal.NewFromInt(100)

// Renderer writes styled tables to an output stream
type Renderer struct {
	out       io.Writer
	precision int32

	headerStyle   lipgloss.Style
	handStyle     lipgloss.Style
	categoryStyle lipgloss.Style
	countStyle    lipgloss.Style
	percentStyle  lipgloss.Style
	mutedStyle    lipgloss.Style
}

// NewRenderer creates a renderer for out. When color is false every style
// renders as plain text.
func NewRenderer(out io.Writer, color bool, precision int) *Renderer {
	r := lipgloss.NewRenderer(out)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		out:       out,
		precision: int32(precision),

		headerStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		handStyle: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14")),
		categoryStyle: r.NewStyle().
			Foreground(lipgloss.Color("12")),
		countStyle: r.NewStyle().
			Foreground(lipgloss.Color("10")),
		percentStyle: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		mutedStyle: r.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// Percent formats count/total as a percentage with a fixed number of decimals
func Percent(count, total int, precision int32) string {
	if total == 0 {
		return decimal.Zero.StringFixed(precision) + "%"
	}
	pct := decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total)))
	return pct.StringFixed(precision) + "%"
}

// Classification prints a hand and its category
func (r *Renderer) Classification(cards []deck.Card, category evaluator.HandCategory) {
	fmt.Fprintf(r.out, "%s  %s\n",
		r.handStyle.Render(FormatCards(cards)),
		r.categoryStyle.Render(category.Describe()))
	fmt.Fprintf(r.out, "%s\n", r.mutedStyle.Render(category.String()))
}

// Report prints the full distribution of one enumeration, strongest first,
// followed by a per-kind summary
func (r *Renderer) Report(st game.State, report frequency.Report) {
	r.header(st)
	fmt.Fprintf(r.out, "%s %s, %s %s\n\n",
		r.mutedStyle.Render("perspective"), report.Perspective,
		r.mutedStyle.Render("target"), report.Target)

	total := report.Table.Total()
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		r.headerStyle.Render("category"),
		r.headerStyle.Render("count"),
		r.headerStyle.Render("chance"))
	for _, e := range report.Table.Entries() {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			r.categoryStyle.Render(e.Category.Describe()),
			r.countStyle.Render(fmt.Sprintf("%d", e.Count)),
			r.percentStyle.Render(Percent(e.Count, total, r.precision)))
	}
	_ = w.Flush()

	fmt.Fprintln(r.out)
	r.kinds([]frequency.Report{report})
	r.footer(report.Expected, report.Unused, report.Missing, report.Elapsed)
}

// Comparison prints the per-kind distribution of several enumerations of the
// same state side by side
func (r *Renderer) Comparison(st game.State, reports []frequency.Report) {
	r.header(st)
	fmt.Fprintln(r.out)
	r.kinds(reports)
	for _, report := range reports {
		r.footer(report.Expected, report.Unused, report.Missing, report.Elapsed)
	}
}

func (r *Renderer) header(st game.State) {
	hole := st.Hole()
	fmt.Fprintf(r.out, "%s %s\n", r.headerStyle.Render("hole "), r.handStyle.Render(FormatCards(hole[:])))
	fmt.Fprintf(r.out, "%s %s\n", r.headerStyle.Render("board"), r.handStyle.Render(FormatCards(st.Board())))
}

func (r *Renderer) kinds(reports []frequency.Report) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", r.headerStyle.Render("hand"))
	for _, report := range reports {
		fmt.Fprintf(w, "\t%s", r.headerStyle.Render(report.Perspective.String()))
	}
	fmt.Fprintf(w, "\n")

	byKind := make([]map[evaluator.Kind]int, len(reports))
	for i, report := range reports {
		byKind[i] = report.Table.ByKind()
	}

	for _, kind := range evaluator.Kinds {
		fmt.Fprintf(w, "%s", r.categoryStyle.Render(kind.String()))
		for i, report := range reports {
			count := byKind[i][kind]
			if count == 0 {
				fmt.Fprintf(w, "\t%s", r.mutedStyle.Render("."))
				continue
			}
			fmt.Fprintf(w, "\t%s", r.percentStyle.Render(Percent(count, report.Table.Total(), r.precision)))
		}
		fmt.Fprintf(w, "\n")
	}
	_ = w.Flush()
}

func (r *Renderer) footer(combinations, unused, missing int, elapsed time.Duration) {
	fmt.Fprintf(r.out, "\n%s\n", r.mutedStyle.Render(
		fmt.Sprintf("%d combinations (%d choose %d) in %v",
			combinations, unused, missing, elapsed.Truncate(time.Microsecond))))
}

// FormatCards joins cards with spaces, e.g. "A♠ K♠"
func FormatCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, card.String())
	}
	return strings.Join(parts, " ")
}
