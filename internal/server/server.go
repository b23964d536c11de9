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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/meganrobin/Item-Management-API/internal/catalog"
	"github.com/meganrobin/Item-Management-API/internal/database"
	"github.com/meganrobin/Item-Management-API/internal/handler"
	"github.com/meganrobin/Item-Management-API/internal/inventory"
	"github.com/meganrobin/Item-Management-API/internal/logger"
	"github.com/meganrobin/Item-Management-API/internal/metrics"
	"github.com/meganrobin/Item-Management-API/internal/player"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	playerService    player.Service
	inventoryService inventory.Service
	catalogService   catalog.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, playerService player.Service, inventoryService inventory.Service, catalogService catalog.Service) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Post("/", handler.HandleCreatePlayer(playerService))
			r.Get("/{playerID}", handler.HandleGetPlayer(playerService))

			r.Route("/{playerID}/inventory", func(r chi.Router) {
				r.Get("/", handler.HandleGetInventory(inventoryService))
				r.Post("/", handler.HandleAddItem(inventoryService))
				r.Delete("/{itemID}", handler.HandleRemoveItem(inventoryService))
				r.Post("/{itemID}/enchant", handler.HandleEnchantItem(inventoryService))
				r.Delete("/{itemID}/enchantments", handler.HandleRemoveEnchantments(inventoryService))
			})
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(catalogService))
			r.Post("/", handler.HandleCreateItem(catalogService))
			r.Get("/{itemID}", handler.HandleGetItem(catalogService))
			r.Delete("/{itemID}", handler.HandleDeleteItem(catalogService))
		})

		r.Route("/enchantments", func(r chi.Router) {
			r.Get("/", handler.HandleListEnchantments(catalogService))
			r.Post("/", handler.HandleCreateEnchantment(catalogService))
			r.Put("/{enchantmentID}/effect-description", handler.HandleUpdateEffectDescription(catalogService))
			r.Delete("/{enchantmentID}", handler.HandleDeleteEnchantment(catalogService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		playerService:    playerService,
		inventoryService: inventoryService,
		catalogService:   catalogService,
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
		statusCode:     http.StatusOK,
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

		// Health and metrics endpoints are scraped constantly, skip them
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

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
