package server

import (
	"context"
	"log/slog"
	"net/http"

	"scout-data-service/internal/app/scout"
	"scout-data-service/internal/config"
	"scout-data-service/internal/forwarder"
	httpserver "scout-data-service/internal/http"
	"scout-data-service/internal/http/handlers"
	"scout-data-service/internal/http/middleware"
	"scout-data-service/internal/logging"
	"scout-data-service/internal/metrics"
	"scout-data-service/internal/roster"
	"scout-data-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.RosterStore
	scoutService  *scout.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server, loading the roster dataset synchronously so the
// store is fully populated before the service accepts traffic.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	players, err := roster.Load(cfg.Dataset.Path, roster.Format(cfg.Dataset.Format))
	if err != nil {
		return nil, err
	}
	logging.Info(logger, "roster loaded",
		logging.FieldCount, len(players),
		logging.FieldPath, cfg.Dataset.Path,
	)
	return newServerWithStore(cfg, logger, store.NewRosterStore(players), nil), nil
}

func newServerWithStore(cfg config.Config, logger *slog.Logger, rosterStore *store.RosterStore, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	scoutSvc := scout.NewService(rosterStore, logger, recorder, cfg.SearchLimit)
	fwd := forwarder.New(forwarder.Config{
		Endpoint:    cfg.Forwarder.Endpoint,
		MaxAttempts: cfg.Forwarder.MaxAttempts,
		Timeout:     cfg.Forwarder.Timeout,
	}, logger, recorder)
	httpSrv := buildHTTPServer(cfg, rosterStore, scoutSvc, fwd, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         rosterStore,
		scoutService:  scoutSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, rosterStore *store.RosterStore, scoutSvc *scout.Service, fwd handlers.DemoForwarder, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	readyFn := func() bool { return rosterStore.Len() > 0 }
	handler := handlers.NewHandler(scoutSvc, fwd, logger, readyFn)
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.CORSMiddleware(cfg.CORSOrigins, router)
	wrapped = middleware.LoggingMiddleware(logger, recorder, wrapped)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
