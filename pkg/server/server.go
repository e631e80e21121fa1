package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/fineswap/vertag/pkg/defaults"
	"github.com/fineswap/vertag/pkg/logging"
)

// Server is the HTTP server hosting the vertag daemon surface: the
// registered handlers plus the built-in health, readiness, and metrics
// endpoints. Background workers registered with WithWorker share the
// server's lifetime.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	workers     []worker

	mu    sync.RWMutex
	ready bool
}

// worker is a background task running for the lifetime of the server.
type worker struct {
	name string
	run  func(context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithName sets the server name reported by the root route.
func WithName(name string) Option {
	return func(s *Server) {
		s.config.Name = name
	}
}

// WithVersion sets the server version reported by the root route.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.config.Version = version
	}
}

// WithHandler registers additional route handlers.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(s *Server) {
		if s.config.Handlers == nil {
			s.config.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, handler := range handlers {
			s.config.Handlers[path] = handler
		}
	}
}

// WithConfig replaces the entire server configuration. Apply it before
// options that modify individual fields.
func WithConfig(cfg *Config) Option {
	return func(s *Server) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithWorker registers a background task that runs alongside the HTTP
// server. Run cancels all workers when the server stops, and a worker
// error stops the server.
func WithWorker(name string, run func(context.Context) error) Option {
	return func(s *Server) {
		s.workers = append(s.workers, worker{name: name, run: run})
	}
}

// New creates a server from the given options. Without options the server
// uses NewConfig defaults and serves only the built-in routes.
func New(opts ...Option) *Server {
	s := &Server{
		config: NewConfig(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.config.Handlers == nil {
		s.config.Handlers = make(map[string]http.HandlerFunc)
	}

	// Keep a caller-provided root handler; install the route index
	// otherwise.
	if _, exists := s.config.Handlers["/"]; !exists {
		s.config.Handlers["/"] = s.handleRoot
	}

	s.rateLimiter = rate.NewLimiter(s.config.RateLimit, s.config.RateLimitBurst)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.Address, s.config.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       s.config.ReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		ErrorLog:          logging.NewLogLogger(slog.LevelError, false),
	}

	return s
}

// setReady marks the server ready (or not) for the readiness probe.
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// isReady reports the current readiness state.
func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start runs the HTTP server until ctx is canceled or the listener fails.
// It notifies the service manager when the server begins accepting requests
// and keeps the systemd watchdog fed while running. A clean shutdown
// returns nil.
func (s *Server) Start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("server listening",
		"name", s.config.Name,
		"address", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	notifyReady()
	go watchdog(ctx)

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown drains in-flight requests and stops the server, bounded by the
// configured shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)
	notifyStopping()

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server", "name", s.config.Name)
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server and its workers, blocking until SIGINT/SIGTERM or
// the first error. All workers stop when the server does.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Start(gctx)
	})

	for _, w := range s.workers {
		w := w
		g.Go(func() error {
			slog.Debug("worker starting", "worker", w.name)
			err := w.run(gctx)
			slog.Debug("worker stopped", "worker", w.name, "error", err)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// notifyReady tells the service manager the server is accepting requests.
// Outside systemd this is a no-op.
func notifyReady() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
		slog.Warn("failed to notify service manager", "error", err)
	}
}

// notifyStopping tells the service manager a shutdown has begun.
func notifyStopping() {
	if _, err := daemon.SdNotify(false, daemon.SdNotifyStopping); err != nil {
		slog.Warn("failed to notify service manager", "error", err)
	}
}

// watchdog feeds the systemd watchdog at half its timeout until ctx is
// canceled. Returns immediately when no watchdog is configured for the
// process.
func watchdog(ctx context.Context) {
	interval, err := daemon.SdWatchdogEnabled(false)
	if err != nil || interval == 0 {
		return
	}

	ticker := time.NewTicker(interval / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := daemon.SdNotify(false, daemon.SdNotifyWatchdog); err != nil {
				slog.Warn("failed to feed watchdog", "error", err)
			}
		}
	}
}
