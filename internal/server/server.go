package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/chorechart/internal/app"
	"github.com/dukerupert/chorechart/internal/config"
	"github.com/dukerupert/chorechart/internal/handler"
	"github.com/dukerupert/chorechart/internal/middleware"
	ws "github.com/dukerupert/chorechart/internal/websocket"
)

type Server struct {
	hub         *ws.Hub
	handler     *handler.Handler
	rateLimiter *middleware.RateLimiter
	origins     []string
	clientIP    func(*http.Request) string
	logger      *slog.Logger
}

func New(a *app.App, cfg config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	return &Server{
		hub:         hub,
		handler:     handler.New(a, hub, logger.With("component", "handler")),
		rateLimiter: middleware.NewRateLimiter(cfg.WriteLimit, time.Minute),
		origins:     cfg.AllowedOrigins,
		clientIP:    middleware.ClientIP(cfg.TrustProxy),
		logger:      logger,
	}
}

// Hub returns the websocket hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

// RunCleanup expires rate limiter windows until ctx is done.
func (s *Server) RunCleanup(ctx context.Context) {
	s.rateLimiter.RunCleanup(ctx, 5*time.Minute)
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.origins, s.logger.With("component", "websocket")))
	s.handler.Register(mux)

	var h http.Handler = mux
	h = middleware.LimitWrites(s.rateLimiter, s.clientIP)(h)
	h = middleware.RequestLogger(s.logger.With("component", "http"))(h)
	return middleware.RequestID(h)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}` + "\n"))
}
