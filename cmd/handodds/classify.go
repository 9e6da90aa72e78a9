package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lox/handodds/internal/config"
	"github.com/lox/handodds/internal/deck"
	"github.com/lox/handodds/internal/display"
	"github.com/lox/handodds/internal/evaluator"
)

// ClassifyCmd prints the category of a hand
type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards to classify, e.g. 'AsKsQsJsTs' or 'As Ks Qs Js Ts'"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	return c.run(cfg, os.Stdout)
}

func (c *ClassifyCmd) run(cfg *config.Config, out io.Writer) error {
	cards, err := deck.ParseCards(strings.Join(c.Cards, ""))
	if err != nil {
		return err
	}
	if len(cards) < evaluator.HandSize || len(cards) > 7 {
		return fmt.Errorf("need between %d and 7 cards, got %d", evaluator.HandSize, len(cards))
	}
	if seen := deck.NewCardSet(cards...); seen.Len() != len(cards) {
		return fmt.Errorf("hand contains a duplicate card")
	}

	category, err := evaluator.Best(cards)
	if err != nil {
		return err
	}

	display.NewRenderer(out, cfg.Output.ColorEnabled(), cfg.Output.Places()).
		Classification(cards, category)
	return nil
}
