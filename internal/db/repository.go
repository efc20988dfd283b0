package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a query matches nothing
var ErrNoRows = errors.New("no rows in result set")

// IsNoRows reports whether err means nothing was found, whichever driver
// produced it.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}

// HistoryEntry is one remembered conversion
type HistoryEntry struct {
	ID         int64
	Text       string
	Separator  string
	LabialRule bool
	Pinned     bool
	CreatedAt  time.Time
}

type InsertHistoryParams struct {
	Text       string
	Separator  string
	LabialRule bool
}

type DeleteHistoryMatchingParams struct {
	Text       string
	Separator  string
	LabialRule bool
}

type SetHistoryPinnedParams struct {
	ID     int64
	Pinned bool
}

// Repository defines the interface for database operations
type Repository interface {
	InsertHistory(ctx context.Context, arg InsertHistoryParams) (HistoryEntry, error)
	GetHistory(ctx context.Context, id int64) (HistoryEntry, error)
	// ListHistory returns pinned entries first, then newest first.
	ListHistory(ctx context.Context) ([]HistoryEntry, error)
	SetHistoryPinned(ctx context.Context, arg SetHistoryPinnedParams) error
	DeleteHistory(ctx context.Context, id int64) (int64, error)
	DeleteHistoryMatching(ctx context.Context, arg DeleteHistoryMatchingParams) (int64, error)
	ClearHistory(ctx context.Context) (int64, error)
	// PruneUnpinnedHistory keeps the newest keep unpinned entries.
	PruneUnpinnedHistory(ctx context.Context, keep int32) (int64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Close() error
}
