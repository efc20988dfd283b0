// Package history remembers recent conversions, keyed by text and options.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jusunglee/yaleconv/internal/db"
	"github.com/jusunglee/yaleconv/internal/yale"
	"github.com/samber/lo"
)

// DefaultMaxUnpinned is how many unpinned entries are kept.
const DefaultMaxUnpinned = 10

const previewRunes = 80

var (
	ErrEmptyText = errors.New("history: empty text")
	ErrNotFound  = fmt.Errorf("history: entry not found: %w", db.ErrNoRows)
)

type Entry struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Options   yale.Options `json:"opts"`
	Pinned    bool         `json:"pinned"`
	CreatedAt time.Time    `json:"ts"`
}

// Preview is the first line of the text cut at 80 runes, with an ellipsis
// when the whole text is longer than that.
func (e Entry) Preview() string {
	first, _, _ := strings.Cut(e.Text, "\n")
	runes := []rune(strings.TrimRight(first, "\r"))
	if len(runes) > previewRunes {
		runes = runes[:previewRunes]
	}
	if utf8.RuneCountInString(e.Text) > previewRunes {
		return string(runes) + "…"
	}
	return string(runes)
}

type Store struct {
	repo        db.Repository
	maxUnpinned int32
}

func NewStore(repo db.Repository, maxUnpinned int) *Store {
	if maxUnpinned <= 0 {
		maxUnpinned = DefaultMaxUnpinned
	}
	return &Store{repo: repo, maxUnpinned: int32(maxUnpinned)}
}

// Add records a conversion. An earlier entry with the same text and options
// is replaced, and the oldest unpinned entries beyond the limit are dropped.
func (s *Store) Add(ctx context.Context, text string, opts yale.Options) (Entry, error) {
	text = yale.TrimBlank(text)
	if text == "" {
		return Entry{}, ErrEmptyText
	}
	opts.Separator = yale.NormalizeSeparator(opts.Separator)

	var added db.HistoryEntry
	err := s.repo.WithTx(ctx, func(tx db.Repository) error {
		if _, err := tx.DeleteHistoryMatching(ctx, db.DeleteHistoryMatchingParams{
			Text:       text,
			Separator:  opts.Separator,
			LabialRule: opts.LabialRule,
		}); err != nil {
			return fmt.Errorf("removing duplicate: %w", err)
		}

		var err error
		added, err = tx.InsertHistory(ctx, db.InsertHistoryParams{
			Text:       text,
			Separator:  opts.Separator,
			LabialRule: opts.LabialRule,
		})
		if err != nil {
			return fmt.Errorf("inserting entry: %w", err)
		}

		if _, err := tx.PruneUnpinnedHistory(ctx, s.maxUnpinned); err != nil {
			return fmt.Errorf("pruning: %w", err)
		}
		return nil
	})
	if err != nil {
		return Entry{}, err
	}
	return fromRow(added), nil
}

// List returns pinned entries first, then the rest newest first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.repo.ListHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	pinned, rest := lo.FilterReject(rows, func(r db.HistoryEntry, _ int) bool { return r.Pinned })
	return lo.Map(append(pinned, rest...), func(r db.HistoryEntry, _ int) Entry { return fromRow(r) }), nil
}

func (s *Store) Get(ctx context.Context, id int64) (Entry, error) {
	row, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		return Entry{}, notFound(err)
	}
	return fromRow(row), nil
}

// TogglePin flips the pinned flag and returns the updated entry.
func (s *Store) TogglePin(ctx context.Context, id int64) (Entry, error) {
	var updated db.HistoryEntry
	err := s.repo.WithTx(ctx, func(tx db.Repository) error {
		row, err := tx.GetHistory(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.SetHistoryPinned(ctx, db.SetHistoryPinnedParams{ID: id, Pinned: !row.Pinned}); err != nil {
			return err
		}
		row.Pinned = !row.Pinned
		updated = row
		return nil
	})
	if err != nil {
		return Entry{}, notFound(err)
	}
	return fromRow(updated), nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	n, err := s.repo.DeleteHistory(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting entry %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear removes every entry, pinned ones included.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.repo.ClearHistory(ctx); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

func notFound(err error) error {
	if db.IsNoRows(err) {
		return ErrNotFound
	}
	return err
}

func fromRow(r db.HistoryEntry) Entry {
	return Entry{
		ID:   r.ID,
		Text: r.Text,
		Options: yale.Options{
			LabialRule: r.LabialRule,
			Separator:  r.Separator,
		},
		Pinned:    r.Pinned,
		CreatedAt: r.CreatedAt,
	}
}
