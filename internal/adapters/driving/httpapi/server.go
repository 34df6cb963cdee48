// Package httpapi exposes the core services over HTTP using gin.
// It is a driving adapter: it translates JSON requests into port calls
// and domain errors into status codes, and holds no business logic.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/preppal-labs/preppal/internal/core/ports/driving"
	"github.com/preppal-labs/preppal/internal/logger"
)

// Default configuration values.
const (
	DefaultListenAddr      = ":8000"
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds HTTP server configuration.
type Config struct {
	// ListenAddr is the address to bind to (default: :8080).
	ListenAddr string

	// ShutdownTimeout bounds graceful shutdown (default: 10s).
	ShutdownTimeout time.Duration
}

// Deps holds the driving ports the server exposes.
type Deps struct {
	Library driving.LibraryService
	Answer  driving.AnswerService
	Quiz    driving.QuizService
	Planner driving.PlannerService

	// EmbeddingModel and LLMModel are reported by the health endpoint.
	// Empty means the provider is not configured.
	EmbeddingModel string
	LLMModel       string
}

// Server is the HTTP API server.
type Server struct {
	config Config
	deps   Deps
	router *gin.Engine
	server *http.Server
}

// New creates a new HTTP API server.
func New(cfg Config, deps Deps) *Server {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	if !logger.IsVerbose() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		config: cfg,
		deps:   deps,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), requestLogger())
	s.registerRoutes()

	s.server = &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: s.router,
	}
	return s
}

// Router returns the underlying handler, primarily for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// registerRoutes wires all endpoints.
func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	s.router.POST("/upload", s.handleUpload)
	s.router.GET("/documents", s.handleListDocuments)
	s.router.DELETE("/documents/:id", s.handleDeleteDocument)

	s.router.POST("/chat", s.handleChat)
	s.router.GET("/chat/history", s.handleChatHistory)
	s.router.POST("/quiz", s.handleQuiz)
	s.router.POST("/plan", s.handlePlan)
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP API listening on %s", s.config.ListenAddr)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

// requestLogger logs each request at debug level.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("%s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
