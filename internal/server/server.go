package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lox/handodds/internal/frequency"
	"github.com/lox/handodds/internal/game"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrTimeout        = errors.New("request timed out")
)

// Options configures a Server
type Options struct {
	Addr    string
	Workers int
	Target  frequency.Target
	Timeout time.Duration
	Clock   quartz.Clock
}

// Server exposes the frequency engine over HTTP and WebSocket
type Server struct {
	addr     string
	workers  int
	target   frequency.Target
	timeout  time.Duration
	clock    quartz.Clock
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server
}

// NewServer creates a new server
func NewServer(opts Options, logger *log.Logger) *Server {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	s := &Server{
		addr:    opts.Addr,
		workers: opts.Workers,
		target:  opts.Target,
		timeout: opts.Timeout,
		clock:   opts.Clock,
		logger:  logger.WithPrefix("server"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.http = &http.Server{Addr: opts.Addr, Handler: s.Handler()}
	return s
}

// Handler returns the HTTP routes served by s
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Post("/frequencies", s.handleFrequencies)
	r.Get("/ws", s.handleWebSocket)
	return r
}

// Start listens until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("Starting server", "addr", s.addr, "workers", s.workers, "timeout", s.timeout)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Compute runs one request against a fresh engine. The enumeration is
// abandoned once the server timeout elapses or ctx is cancelled.
func (s *Server) Compute(ctx context.Context, req Request) (Response, error) {
	id := uuid.NewString()

	st, err := game.ParseState(req.Hole, req.Flop, req.Turn, req.River)
	if err != nil {
		return Response{ID: id}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	perspective := game.Self
	if req.Perspective != "" {
		if perspective, err = game.ParsePerspective(req.Perspective); err != nil {
			return Response{ID: id}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}
	target := s.target
	if req.Target != "" {
		if target, err = frequency.ParseTarget(req.Target); err != nil {
			return Response{ID: id}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
	}

	ctx, stop := s.withTimeout(ctx)
	defer stop()

	resp, err := s.run(ctx, st, perspective, target)
	resp.ID = id
	if err != nil {
		return resp, err
	}

	s.logger.Debug("Computed frequencies",
		"id", resp.ID,
		"state", resp.State,
		"perspective", resp.Perspective,
		"total", resp.Total)
	return resp, nil
}

// withTimeout derives a context that is cancelled with cause ErrTimeout once
// the server timeout elapses on the server clock
func (s *Server) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(ctx)
	timer := s.clock.AfterFunc(s.timeout, func() { cancel(ErrTimeout) }, "server", "timeout")
	return ctx, func() {
		timer.Stop()
		cancel(context.Canceled)
	}
}

func (s *Server) run(ctx context.Context, st game.State, p game.Perspective, target frequency.Target) (Response, error) {
	engine := frequency.New(
		frequency.WithWorkers(s.workers),
		frequency.WithTarget(target),
		frequency.WithLogger(s.logger),
		frequency.WithClock(s.clock),
	)
	report, err := engine.Run(ctx, st, p)
	switch {
	case err == nil:
		return NewResponse(st, report), nil
	case errors.Is(context.Cause(ctx), ErrTimeout):
		return Response{}, fmt.Errorf("%w after %s", ErrTimeout, s.timeout)
	case errors.Is(err, context.Canceled):
		// the caller went away or the server is shutting down
		return Response{}, fmt.Errorf("request cancelled: %w", err)
	default:
		return Response{}, err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

func (s *Server) handleFrequencies(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, Response{ID: uuid.NewString(), Error: "malformed JSON: " + err.Error()})
		return
	}

	resp, err := s.Compute(r.Context(), req)
	if err != nil {
		s.logger.Warn("Request failed",
			"request_id", middleware.GetReqID(r.Context()),
			"id", resp.ID,
			"error", err)
		resp.Error = err.Error()
		s.writeJSON(w, statusFor(err), resp)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Error("Failed to write response", "error", err, "id", resp.ID)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
