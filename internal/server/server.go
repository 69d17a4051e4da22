package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/saintserge/jodconverter/internal/observability"
	"github.com/saintserge/jodconverter/internal/officeurl"
)

const (
	serviceName    = "officeurld"
	serviceVersion = "0.1.0"
)

// Config is the runtime setup of the inspect server.
type Config struct {
	Node        string
	ListenAddr  string
	CorsOrigins []string
	// AuthToken guards /v1 routes with a bearer token when set.
	AuthToken string
	// Default is served from /v1/descriptors/default when set.
	Default officeurl.Descriptor
}

func DefaultConfig() Config {
	return Config{
		Node:       serviceName,
		ListenAddr: "127.0.0.1:9200",
	}
}

// Server exposes descriptor build and parse operations over HTTP.
type Server struct {
	cfg      Config
	logger   zerolog.Logger
	router   *gin.Engine
	appeared time.Time
}

func New(cfg Config, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		router:   gin.New(),
		appeared: time.Now(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(observability.RequestID())
	s.router.Use(observability.RequestLogger(logger))
	s.router.Use(observability.RequestMetricsMiddleware(cfg.Node))
	if len(cfg.CorsOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins:  cfg.CorsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", observability.HeaderRequestID},
			ExposeHeaders: []string{observability.HeaderRequestID},
			MaxAge:        12 * time.Hour,
		}))
	}
	s.registerRoutes()
	return s
}

func (s *Server) NodeID() string { return s.cfg.Node }

func (s *Server) HTTPRouter() *gin.Engine { return s.router }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Str("node", s.cfg.Node).Msg("officeurld listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	}
}

func (s *Server) metricsHandler() gin.HandlerFunc {
	observability.RegisterMetrics()
	return gin.WrapH(promhttp.Handler())
}
