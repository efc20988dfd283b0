// Package backend opens the history repository named by a URL.
package backend

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/yaleconv/internal/db"
	"github.com/jusunglee/yaleconv/internal/db/postgres"
	"github.com/jusunglee/yaleconv/internal/db/sqlite"
)

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Name reports which backend Open would pick for url.
func Name(url string) string {
	if isPostgres(url) {
		return "postgres"
	}
	return "sqlite"
}

// Option adjusts how Open connects. Options only affect PostgreSQL.
type Option func(*postgres.PoolOptions)

// WithMaxConns caps the PostgreSQL pool. Values below 1 keep the default.
func WithMaxConns(n int32) Option {
	return func(o *postgres.PoolOptions) { o.MaxConns = n }
}

// Open picks the backend from the URL scheme. Anything that is not a
// PostgreSQL URL is treated as a SQLite file path.
func Open(ctx context.Context, url string, opts ...Option) (db.Repository, error) {
	if isPostgres(url) {
		var pool postgres.PoolOptions
		for _, opt := range opts {
			opt(&pool)
		}
		repo, err := postgres.New(ctx, url, pool)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		return repo, nil
	}
	repo, err := sqlite.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	return repo, nil
}
