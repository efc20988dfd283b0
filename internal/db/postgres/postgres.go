package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/yaleconv/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to databaseURL and makes sure the schema exists.
func New(ctx context.Context, databaseURL string, opts PoolOptions) (*Repository, error) {
	pool, err := newPool(ctx, databaseURL, opts)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes pool counters for the metrics gauges.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// Roll back on panic so the connection goes back to the pool, then re-panic.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repository{pool: r.pool, q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const historyColumns = `id, text, separator, labial_rule, pinned, created_at`

func (r *Repository) InsertHistory(ctx context.Context, arg db.InsertHistoryParams) (db.HistoryEntry, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO history (text, separator, labial_rule)
		VALUES ($1, $2, $3)
		RETURNING `+historyColumns,
		arg.Text, arg.Separator, arg.LabialRule)
	return scanHistory(row)
}

func (r *Repository) GetHistory(ctx context.Context, id int64) (db.HistoryEntry, error) {
	row := r.q.QueryRow(ctx, `
		SELECT `+historyColumns+`
		FROM history
		WHERE id = $1
	`, id)
	return scanHistory(row)
}

func (r *Repository) ListHistory(ctx context.Context) ([]db.HistoryEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT `+historyColumns+`
		FROM history
		ORDER BY pinned DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.HistoryEntry, error) {
		return scanHistory(row)
	})
}

func (r *Repository) SetHistoryPinned(ctx context.Context, arg db.SetHistoryPinnedParams) error {
	tag, err := r.q.Exec(ctx, `UPDATE history SET pinned = $1 WHERE id = $2`, arg.Pinned, arg.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteHistory(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, `DELETE FROM history WHERE id = $1`, id)
}

func (r *Repository) DeleteHistoryMatching(ctx context.Context, arg db.DeleteHistoryMatchingParams) (int64, error) {
	return r.exec(ctx, `
		DELETE FROM history
		WHERE text = $1 AND separator = $2 AND labial_rule = $3
	`, arg.Text, arg.Separator, arg.LabialRule)
}

func (r *Repository) ClearHistory(ctx context.Context) (int64, error) {
	return r.exec(ctx, `DELETE FROM history`)
}

func (r *Repository) PruneUnpinnedHistory(ctx context.Context, keep int32) (int64, error) {
	return r.exec(ctx, `
		DELETE FROM history
		WHERE NOT pinned AND id NOT IN (
			SELECT id FROM history WHERE NOT pinned ORDER BY id DESC LIMIT $1
		)
	`, keep)
}

func (r *Repository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanHistory(row pgx.Row) (db.HistoryEntry, error) {
	var e db.HistoryEntry
	err := row.Scan(&e.ID, &e.Text, &e.Separator, &e.LabialRule, &e.Pinned, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.HistoryEntry{}, db.ErrNoRows
	}
	if err != nil {
		return db.HistoryEntry{}, err
	}
	return e, nil
}
