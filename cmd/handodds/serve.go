package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/server"
)

// ServeCmd runs the HTTP/WebSocket service
type ServeCmd struct {
	Addr    string        `short:"a" help:"Server address to bind to (overrides config)"`
	Workers int           `short:"w" help:"Parallel workers per request (overrides config)"`
	Timeout time.Duration `help:"Per-request timeout (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, err := g.load()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg.Log)

	target, err := frequency.ParseTarget(cfg.Engine.Target)
	if err != nil {
		return err
	}
	timeout, err := cfg.Server.TimeoutDuration()
	if err != nil {
		return err
	}
	opts := server.Options{
		Addr:    cfg.Server.GetServerAddress(),
		Workers: cfg.Engine.Workers,
		Target:  target,
		Timeout: timeout,
	}
	if c.Addr != "" {
		opts.Addr = c.Addr
	}
	if c.Workers > 0 {
		opts.Workers = c.Workers
	}
	if c.Timeout > 0 {
		opts.Timeout = c.Timeout
	}

	s := server.NewServer(opts, logger)

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
