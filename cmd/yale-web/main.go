package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jusunglee/yaleconv/internal/db/backend"
	"github.com/jusunglee/yaleconv/internal/db/postgres"
	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/logger"
	"github.com/jusunglee/yaleconv/internal/metrics"
	"github.com/jusunglee/yaleconv/internal/web"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	_ = godotenv.Load()

	fs_ := ff.NewFlagSet("yale-web")

	var (
		port           = fs_.Int64Long("port", 3000, "HTTP server port")
		databaseURL    = fs_.StringLong("database-url", "yale.db", "PostgreSQL URL or SQLite file path; empty disables history")
		dbMaxConns     = fs_.IntLong("db-max-conns", postgres.DefaultMaxConns, "PostgreSQL connection pool size")
		maxHistory     = fs_.IntLong("max-history", history.DefaultMaxUnpinned, "unpinned history entries to keep")
		rateLimit      = fs_.IntLong("rate-limit", 120, "write requests allowed per IP per minute")
		allowedOrigins = fs_.StringLong("allowed-origins", "", "Comma-separated list of allowed CORS origins")
	)

	if err := ff.Parse(fs_, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs_))
		return fmt.Errorf("parsing flags: %w", err)
	}

	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	var store *history.Store
	if *databaseURL != "" {
		repo, err := backend.Open(gctx, *databaseURL, backend.WithMaxConns(int32(*dbMaxConns)))
		if err != nil {
			return err
		}
		defer repo.Close()
		log.InfoContext(ctx, "history enabled", "backend", backend.Name(*databaseURL), "max_conns", *dbMaxConns)

		if pg, ok := repo.(*postgres.Repository); ok {
			g.Go(func() error {
				exportPoolStats(gctx, pg)
				return nil
			})
		}
		store = history.NewStore(repo, *maxHistory)
	}

	router := web.NewRouter(store, log, web.Config{
		AllowedOrigins: splitOrigins(*allowedOrigins),
		RateLimit:      *rateLimit,
		RateWindow:     time.Minute,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router.Handler(gctx))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g.Go(func() error {
		log.InfoContext(ctx, "starting web server", "port", *port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.InfoContext(ctx, "shutting down gracefully", "cause", context.Cause(gctx))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// exportPoolStats mirrors pgxpool stats into gauges until ctx is done.
func exportPoolStats(ctx context.Context, repo *postgres.Repository) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s := repo.PoolStats()
			metrics.DBPoolTotalConns.Set(float64(s.TotalConns()))
			metrics.DBPoolIdleConns.Set(float64(s.IdleConns()))
			metrics.DBPoolAcquiredConns.Set(float64(s.AcquiredConns()))
			metrics.DBPoolMaxConns.Set(float64(s.MaxConns()))
		case <-ctx.Done():
			return
		}
	}
}

func splitOrigins(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(o string, _ int) (string, bool) {
		o = strings.TrimSpace(o)
		return o, o != ""
	})
}
