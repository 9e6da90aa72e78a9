package frequency

import (
	"sort"

	"github.com/lox/handodds/internal/evaluator"
)

// Table counts how often each hand category occurs. Equal categories,
// including their tie-break ranks, share one counter.
type Table map[evaluator.HandCategory]int

// Entry is a single row of a Table
type Entry struct {
	Category evaluator.HandCategory
	Count    int
}

// Add records one occurrence of c
func (t Table) Add(c evaluator.HandCategory) {
	t[c]++
}

// Merge adds every count of other into t
func (t Table) Merge(other Table) {
	for c, n := range other {
		t[c] += n
	}
}

// Total returns the number of occurrences recorded
func (t Table) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Probability returns the share of occurrences that are exactly c
func (t Table) Probability(c evaluator.HandCategory) float64 {
	total := t.Total()
	if total == 0 {
		return 0.0
	}
	return float64(t[c]) / float64(total)
}

// Entries returns the rows of the table from the strongest category down
func (t Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t))
	for c, n := range t {
		entries = append(entries, Entry{Category: c, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[j].Category.Less(entries[i].Category)
	})
	return entries
}

// ByKind sums the counts per hand kind, ignoring tie-break ranks
func (t Table) ByKind() map[evaluator.Kind]int {
	kinds := make(map[evaluator.Kind]int)
	for c, n := range t {
		kinds[c.Kind] += n
	}
	return kinds
}
