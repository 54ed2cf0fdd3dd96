// Package httpapi exposes validation, autofix, and generation over
// HTTP so CI pipelines and editor integrations can call uiforge
// without shelling out to the CLI.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	cacheAdapter "github.com/uiforge/uiforge/internal/adapters/outbound/cache"
	"github.com/uiforge/uiforge/internal/adapters/outbound/config"
	"github.com/uiforge/uiforge/internal/adapters/outbound/detector"
	"github.com/uiforge/uiforge/internal/adapters/outbound/gitinfo"
	"github.com/uiforge/uiforge/internal/adapters/outbound/history"
	"github.com/uiforge/uiforge/internal/adapters/outbound/writer"
	"github.com/uiforge/uiforge/internal/application"
	"github.com/uiforge/uiforge/internal/domain/autofix"
	"github.com/uiforge/uiforge/internal/logging"
	"github.com/uiforge/uiforge/internal/metrics"
)

const (
	// apiRequestsPerMinute bounds the whole /api/v1 surface per client.
	apiRequestsPerMinute = 300
	// generateRequestsPerMinute bounds the model-backed endpoint, which
	// is orders of magnitude more expensive than the rest.
	generateRequestsPerMinute = 10

	shutdownTimeout = 10 * time.Second
)

// Server serves the uiforge API for a single project root.
type Server struct {
	root   string
	engine *gin.Engine
}

// NewServer wires the services over root and builds the router. The
// project context is resolved once up front so a malformed
// .uiforge.yaml fails at startup instead of on the first request.
func NewServer(root string) (*Server, error) {
	contexts := application.NewContextService(
		detector.New(),
		config.New(),
		cacheAdapter.New(),
		gitinfo.New(),
	)
	if _, _, err := contexts.Resolve(root); err != nil {
		return nil, fmt.Errorf("resolving project context: %w", err)
	}

	validateSvc := application.NewValidateService(contexts, history.New())
	fixSvc := application.NewFixService(validateSvc, autofix.New(), writer.New(), history.New())

	h := &handlers{
		root:     root,
		contexts: contexts,
		validate: validateSvc,
		fix:      fixSvc,
	}

	if os.Getenv("ENVIRONMENT") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(RequestID())
	engine.Use(ZapLogger())
	engine.Use(Recovery())
	engine.Use(metrics.PrometheusMiddleware())

	engine.GET("/healthz", h.healthz)
	engine.GET("/metrics", metrics.PrometheusHandler())

	api := engine.Group("/api/v1")
	api.Use(RateLimit(newIPRateLimiter(rate.Limit(float64(apiRequestsPerMinute)/60.0), 30)))
	{
		api.POST("/validate", h.handleValidate)
		api.POST("/fix", h.handleFix)
		api.POST("/generate",
			RateLimit(newIPRateLimiter(rate.Limit(float64(generateRequestsPerMinute)/60.0), 2)),
			h.handleGenerate)
		api.GET("/context", h.handleContext)
		api.GET("/history", h.handleHistory)
	}

	return &Server{root: root, engine: engine}, nil
}

// Handler returns the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until SIGINT or SIGTERM, then drains in-flight
// requests before returning.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute, // generation holds the response open
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.S().Infow("http server listening", "addr", addr, "root", s.root)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case sig := <-quit:
		logging.S().Infow("shutting down http server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
