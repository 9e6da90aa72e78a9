package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/handodds/internal/config"
	"github.com/lox/handodds/internal/display"
	"github.com/lox/handodds/internal/fileutil"
	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/game"
	"github.com/lox/handodds/internal/server"
)

// FreqCmd enumerates every completion of a state and prints the category table
type FreqCmd struct {
	Hole        string `required:"" help:"Hole cards, e.g. 'AsKs'"`
	Flop        string `required:"" help:"Flop cards, e.g. 'QsJs2h'"`
	Turn        string `help:"Turn card"`
	River       string `help:"River card (requires --turn)"`
	Perspective string `short:"p" enum:"self,opponent,both" default:"self" help:"Whose cards count as used (self, opponent, both)"`
	Target      string `short:"t" help:"Completion target: hand or board (overrides config)"`
	Workers     int    `short:"w" help:"Parallel workers (overrides config)"`
	JSON        string `name:"json" type:"path" help:"Also write the tables as JSON to this file"`
}

func (c *FreqCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Log)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	return c.run(ctx, cfg, logger, os.Stdout)
}

func (c *FreqCmd) run(ctx context.Context, cfg *config.Config, logger *log.Logger, out io.Writer) error {
	st, err := game.ParseState(c.Hole, c.Flop, c.Turn, c.River)
	if err != nil {
		return err
	}

	targetName := cfg.Engine.Target
	if c.Target != "" {
		targetName = c.Target
	}
	target, err := frequency.ParseTarget(targetName)
	if err != nil {
		return err
	}
	workers := cfg.Engine.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}

	perspectives := game.Perspectives[:]
	if c.Perspective != "both" {
		p, err := game.ParsePerspective(c.Perspective)
		if err != nil {
			return err
		}
		perspectives = []game.Perspective{p}
	}

	engine := frequency.New(
		frequency.WithWorkers(workers),
		frequency.WithTarget(target),
		frequency.WithLogger(logger),
	)

	reports := make([]frequency.Report, 0, len(perspectives))
	for _, p := range perspectives {
		report, err := engine.Run(ctx, st, p)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}

	if c.JSON != "" {
		responses := make([]server.Response, 0, len(reports))
		for _, report := range reports {
			responses = append(responses, server.NewResponse(st, report))
		}
		if err := fileutil.WriteJSON(c.JSON, responses); err != nil {
			return err
		}
		logger.Info("Wrote frequency tables", "path", c.JSON, "reports", len(responses))
	}

	r := display.NewRenderer(out, cfg.Output.ColorEnabled(), cfg.Output.Places())
	if len(reports) == 1 {
		r.Report(st, reports[0])
	} else {
		r.Comparison(st, reports)
	}
	return nil
}
