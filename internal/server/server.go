package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akwawa/guildmaster/internal/game"
	"github.com/akwawa/guildmaster/internal/handler"
	"github.com/akwawa/guildmaster/internal/logger"
	"github.com/akwawa/guildmaster/internal/metrics"
	"github.com/akwawa/guildmaster/internal/save"
	"github.com/akwawa/guildmaster/internal/storage"
)

type Server struct {
	httpServer *http.Server
	store      storage.Store
}

// NewServer creates a new Server instance.
// When apiKey is empty the API runs unauthenticated, which is the expected
// setup for a local single-player install.
func NewServer(port int, apiKey string, trustedProxies []string, store storage.Store, gameService *game.Service, saveService *save.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	if apiKey != "" {
		r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	}
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion)

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	gameHandler := handler.NewGameHandler(gameService, saveService)

	// API v1 routes
	r.Route("/api/v1/game", func(r chi.Router) {
		r.Post("/new", gameHandler.HandleNewGame)
		r.Get("/state", gameHandler.HandleGetState)
		r.Post("/advance", gameHandler.HandleAdvanceCycle)
		r.Delete("/save", gameHandler.HandleDeleteSave)

		r.Route("/quests", func(r chi.Router) {
			r.Get("/visible", gameHandler.HandleGetVisibleQuests)
			r.Post("/assign", gameHandler.HandleAssignQuest)
			r.Post("/collect", gameHandler.HandleCollectReward)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", gameHandler.HandleCreateTeam)
			r.Delete("/{teamID}", gameHandler.HandleDisbandTeam)
		})

		r.Post("/buildings/upgrade", gameHandler.HandleStartUpgrade)

		r.Route("/recruits", func(r chi.Router) {
			r.Get("/", gameHandler.HandleGetRecruits)
			r.Post("/hire", gameHandler.HandleHireRecruit)
		})

		r.Get("/leaders", gameHandler.HandleGetLeaders)
		r.Get("/unlocks", gameHandler.HandleGetUnlocks)
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store: store,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
