// Package frequency enumerates every completion of the unknown cards of a hand
// and counts the best hand category each completion makes.
//
// The enumeration is exhaustive: results are exact occurrence counts, and the
// total always equals Binomial(unused, missing). Combinations come from
// gonum's lexicographic generator, so memory stays flat however large the
// unused set is.
package frequency

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/evaluator"
	"github.com/lox/handodds/internal/game"
)

// Target selects how far unknown cards are filled in
type Target int

const (
	// TargetHand completes the known cards to a five card hand.
	TargetHand Target = iota
	// TargetBoard completes the community board to five cards and takes the
	// best five of everything known.
	TargetBoard
)

func (t Target) String() string {
	switch t {
	case TargetHand:
		return "hand"
	case TargetBoard:
		return "board"
	default:
		return "unknown"
	}
}

// ParseTarget accepts "hand" or "board"
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hand", "":
		return TargetHand, nil
	case "board":
		return TargetBoard, nil
	default:
		return 0, fmt.Errorf("unknown target %q (want hand or board)", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Report is the result of one enumeration
type Report struct {
	Table       Table
	Perspective game.Perspective
	Target      Target
	Missing     int // cards chosen per completion
	Unused      int // size of the pool they are chosen from
	Expected    int // Binomial(Unused, Missing)
	Elapsed     time.Duration
}

// Probability returns the share of completions that make exactly c
func (r Report) Probability(c evaluator.HandCategory) float64 {
	if r.Expected == 0 {
		return 0.0
	}
	return float64(r.Table[c]) / float64(r.Expected)
}

// Engine runs frequency enumerations. It holds no per-query state, so one
// Engine may serve concurrent callers.
type Engine struct {
	workers int
	target  Target
	logger  *log.Logger
	clock   quartz.Clock
}

// Option configures an Engine
type Option func(*Engine)

// WithWorkers splits the enumeration across n goroutines. Values below 1 run
// sequentially.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			n = 1
		}
		e.workers = n
	}
}

func WithTarget(t Target) Option {
	return func(e *Engine) { e.target = t }
}

func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger.WithPrefix("engine") }
}

func WithClock(clock quartz.Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

// New creates an Engine. Without options it is sequential, targets a five
// card hand and logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{
		workers: 1,
		target:  TargetHand,
		logger:  log.New(io.Discard),
		clock:   quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// BestHandFrequencies counts the best hand category of every five card
// completion of st as seen from p, using a sequential engine.
func BestHandFrequencies(st game.State, p game.Perspective) Table {
	return New().Frequencies(st, p)
}

// Frequencies is Run without cancellation
func (e *Engine) Frequencies(st game.State, p game.Perspective) Table {
	// Run only fails when its context is cancelled.
	report, _ := e.Run(context.Background(), st, p)
	return report.Table
}

// Missing returns how many unknown cards each completion of st draws from p's
// point of view
func (e *Engine) Missing(st game.State, p game.Perspective) int {
	if e.target == TargetBoard {
		return 5 - len(st.Board())
	}
	return max(0, evaluator.HandSize-game.UsedCards(st, p).Len())
}

// Run enumerates every way to draw the missing cards from the unused set,
// evaluates the best hand of the known cards plus each draw and counts the
// categories. Cancelling ctx stops the enumeration between partitions.
func (e *Engine) Run(ctx context.Context, st game.State, p game.Perspective) (Report, error) {
	start := e.clock.Now("engine", "run")

	known := game.UsedCards(st, p).Cards()
	pool := game.UnusedCards(st, p).Cards()
	k := e.Missing(st, p)

	report := Report{
		Perspective: p,
		Target:      e.target,
		Missing:     k,
		Unused:      len(pool),
		Expected:    combin.Binomial(len(pool), k),
	}

	e.logger.Debug("Enumerating completions",
		"state", st,
		"perspective", p,
		"target", e.target,
		"known", len(known),
		"missing", k,
		"unused", len(pool),
		"combinations", report.Expected,
		"workers", e.workers)

	var (
		table Table
		err   error
	)
	switch {
	case k == 0:
		table = Table{}
		err = e.evaluate(known, table)
	case e.workers == 1:
		table, err = e.enumerateSequential(ctx, known, pool, k)
	default:
		table, err = e.enumerateParallel(ctx, known, pool, k)
	}
	if err != nil {
		return Report{}, err
	}

	report.Table = table
	report.Elapsed = e.clock.Since(start, "engine", "run")

	e.logger.Debug("Enumeration complete",
		"total", table.Total(),
		"categories", len(table),
		"elapsed", report.Elapsed)

	return report, nil
}

func (e *Engine) enumerateSequential(ctx context.Context, known, pool []deck.Card, k int) (Table, error) {
	table := Table{}
	for first := 0; first <= len(pool)-k; first++ {
		if err := e.countPartition(ctx, known, pool, k, first, table); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// enumerateParallel hands partitions to workers over a channel. Every worker
// fills a private table and the tables are summed once all workers finish.
func (e *Engine) enumerateParallel(ctx context.Context, known, pool []deck.Card, k int) (Table, error) {
	g, gctx := errgroup.WithContext(ctx)
	partitions := make(chan int)
	tables := make([]Table, e.workers)

	g.Go(func() error {
		defer close(partitions)
		for first := 0; first <= len(pool)-k; first++ {
			select {
			case partitions <- first:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := range e.workers {
		tables[w] = Table{}
		g.Go(func() error {
			for first := range partitions {
				if err := e.countPartition(gctx, known, pool, k, first, tables[w]); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := Table{}
	for _, t := range tables {
		merged.Merge(t)
	}
	return merged, nil
}

// countPartition evaluates every k-combination of pool whose lowest index is
// first. Partitions for different values of first are disjoint and together
// cover every combination exactly once.
func (e *Engine) countPartition(ctx context.Context, known, pool []deck.Card, k, first int, table Table) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rest := pool[first+1:]
	hand := make([]deck.Card, len(known)+k)
	copy(hand, known)
	hand[len(known)] = pool[first]
	drawn := hand[len(known)+1:]

	idx := make([]int, k-1)
	gen := combin.NewCombinationGenerator(len(rest), k-1)
	for gen.Next() {
		gen.Combination(idx)
		for i, j := range idx {
			drawn[i] = rest[j]
		}
		if err := e.evaluate(hand, table); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) evaluate(cards []deck.Card, table Table) error {
	best, err := evaluator.Best(cards)
	if err != nil {
		return fmt.Errorf("evaluate %d cards: %w", len(cards), err)
	}
	table.Add(best)
	return nil
}
