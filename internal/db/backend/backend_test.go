package backend

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jusunglee/yaleconv/internal/db"
	"github.com/jusunglee/yaleconv/internal/db/postgres"
	"github.com/jusunglee/yaleconv/internal/db/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestName(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/yale":   "postgres",
		"postgresql://u:p@localhost:5432/yale": "postgres",
		"yale.db":                              "sqlite",
		"/var/lib/yale/history.db":             "sqlite",
		":memory:":                             "sqlite",
	}
	for url, want := range tests {
		assert.Equal(t, want, Name(url), url)
	}
}

func TestOpenSQLite(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "history.db")
	repo, err := Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	_, ok := repo.(*sqlite.Repository)
	assert.True(t, ok)

	entry, err := repo.InsertHistory(ctx, db.InsertHistoryParams{Text: "한글", LabialRule: true})
	require.NoError(t, err)
	assert.Positive(t, entry.ID)
}

func TestOpenPostgresUnreachable(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Open(ctx, "postgres://nobody@127.0.0.1:1/none?connect_timeout=1", WithMaxConns(2))
	assert.Error(t, err)
}

func TestWithMaxConns(t *testing.T) {
	var pool postgres.PoolOptions
	WithMaxConns(12)(&pool)
	assert.Equal(t, int32(12), pool.MaxConns)
}

func TestOpenSQLiteIgnoresPoolOptions(t *testing.T) {
	repo, err := Open(context.Background(), ":memory:", WithMaxConns(50))
	require.NoError(t, err)
	defer repo.Close()
	_, ok := repo.(*sqlite.Repository)
	assert.True(t, ok)
}
