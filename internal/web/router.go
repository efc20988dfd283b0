package web

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/web/handlers"
	"github.com/jusunglee/yaleconv/internal/web/middleware"
)

const maxBodyBytes = 1 << 20

type Config struct {
	AllowedOrigins []string
	// RateLimit is the number of writes allowed per IP per RateWindow.
	RateLimit  int
	RateWindow time.Duration
}

type Router struct {
	history *history.Store
	log     *slog.Logger
	cfg     Config
}

// NewRouter wires the API. store may be nil, in which case the history
// routes are not registered.
func NewRouter(store *history.Store, log *slog.Logger, cfg Config) *Router {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 120
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	return &Router{history: store, log: log, cfg: cfg}
}

// Handler builds the mux. The rate limiter's sweeper runs until ctx is done.
func (r *Router) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()

	convertHandler := handlers.NewConvertHandler(r.history, r.log)
	rateLimiter := middleware.NewRateLimiter(ctx, r.cfg.RateLimit, r.cfg.RateWindow)

	read := func(h http.HandlerFunc, cache string) http.Handler {
		mws := []middleware.Middleware{
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
		}
		if cache != "" {
			mws = append(mws, middleware.CacheControl(cache))
		}
		return middleware.Chain(h, mws...)
	}
	write := func(h http.HandlerFunc) http.Handler {
		return middleware.Chain(h,
			middleware.PrometheusMetrics(),
			middleware.RequestLogger(r.log),
			middleware.RateLimit(rateLimiter),
			middleware.MaxBody(maxBodyBytes),
		)
	}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.Handle("POST /api/v1/convert", write(convertHandler.Convert))
	mux.Handle("POST /api/v1/interlinear", write(convertHandler.Interlinear))
	mux.Handle("GET /api/v1/reference", read(handlers.Reference, "public, max-age=86400"))
	mux.Handle("GET /api/v1/labels", read(handlers.Labels, "public, max-age=3600"))

	if r.history != nil {
		historyHandler := handlers.NewHistoryHandler(r.history, r.log)
		mux.Handle("GET /api/v1/history", read(historyHandler.List, "no-store"))
		mux.Handle("GET /api/v1/history/{id}", read(historyHandler.Get, "no-store"))
		mux.Handle("POST /api/v1/history/{id}/pin", write(historyHandler.Pin))
		mux.Handle("DELETE /api/v1/history/{id}", write(historyHandler.Delete))
		mux.Handle("DELETE /api/v1/history", write(historyHandler.Clear))
	}

	return middleware.CORS(r.cfg.AllowedOrigins)(mux)
}
