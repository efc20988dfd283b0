package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jusunglee/yaleconv/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  querier
}

// New opens (or creates) the SQLite database at dbPath and applies the schema.
// ":memory:" gives a throwaway database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// One connection: SQLite has a single writer, and every new connection
	// to :memory: would be a separate empty database.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	slog.Debug("opened SQLite database", "path", dbPath)

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

const historyColumns = `id, text, separator, labial_rule, pinned, created_at`

func (r *Repository) InsertHistory(ctx context.Context, arg db.InsertHistoryParams) (db.HistoryEntry, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO history (text, separator, labial_rule)
		VALUES (?, ?, ?)
	`, arg.Text, arg.Separator, boolInt(arg.LabialRule))
	if err != nil {
		return db.HistoryEntry{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.HistoryEntry{}, err
	}
	return r.GetHistory(ctx, id)
}

func (r *Repository) GetHistory(ctx context.Context, id int64) (db.HistoryEntry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT `+historyColumns+`
		FROM history
		WHERE id = ?
	`, id)
	return scanHistoryRow(row)
}

func (r *Repository) ListHistory(ctx context.Context) ([]db.HistoryEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+historyColumns+`
		FROM history
		ORDER BY pinned DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []db.HistoryEntry
	for rows.Next() {
		e, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) SetHistoryPinned(ctx context.Context, arg db.SetHistoryPinnedParams) error {
	result, err := r.q.ExecContext(ctx, `
		UPDATE history SET pinned = ? WHERE id = ?
	`, boolInt(arg.Pinned), arg.ID)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return db.ErrNoRows
	}
	return nil
}

func (r *Repository) DeleteHistory(ctx context.Context, id int64) (int64, error) {
	return r.exec(ctx, `DELETE FROM history WHERE id = ?`, id)
}

func (r *Repository) DeleteHistoryMatching(ctx context.Context, arg db.DeleteHistoryMatchingParams) (int64, error) {
	return r.exec(ctx, `
		DELETE FROM history
		WHERE text = ? AND separator = ? AND labial_rule = ?
	`, arg.Text, arg.Separator, boolInt(arg.LabialRule))
}

func (r *Repository) ClearHistory(ctx context.Context) (int64, error) {
	return r.exec(ctx, `DELETE FROM history`)
}

func (r *Repository) PruneUnpinnedHistory(ctx context.Context, keep int32) (int64, error) {
	return r.exec(ctx, `
		DELETE FROM history
		WHERE pinned = 0 AND id NOT IN (
			SELECT id FROM history WHERE pinned = 0 ORDER BY id DESC LIMIT ?
		)
	`, keep)
}

// Helper functions

func (r *Repository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHistory(s scanner) (db.HistoryEntry, error) {
	var e db.HistoryEntry
	var labial, pinned int
	var createdAtStr string
	if err := s.Scan(&e.ID, &e.Text, &e.Separator, &labial, &pinned, &createdAtStr); err != nil {
		return db.HistoryEntry{}, err
	}
	e.LabialRule = labial != 0
	e.Pinned = pinned != 0
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return e, nil
}

func scanHistoryRow(row *sql.Row) (db.HistoryEntry, error) {
	e, err := scanHistory(row)
	if err == sql.ErrNoRows {
		return db.HistoryEntry{}, db.ErrNoRows
	}
	return e, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
