package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/i18n"
	"github.com/jusunglee/yaleconv/internal/metrics"
	"github.com/jusunglee/yaleconv/internal/yale"
)

type HistoryHandler struct {
	store *history.Store
	log   *slog.Logger
}

func NewHistoryHandler(store *history.Store, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{store: store, log: log}
}

type historyResponse struct {
	ID             int64        `json:"id"`
	Text           string       `json:"text"`
	Preview        string       `json:"preview"`
	Options        yale.Options `json:"opts"`
	SeparatorLabel string       `json:"sep_label"`
	Pinned         bool         `json:"pinned"`
	CreatedAt      string       `json:"created_at"`
	Output         string       `json:"output"`
}

func toHistoryResponse(e history.Entry) historyResponse {
	return historyResponse{
		ID:             e.ID,
		Text:           e.Text,
		Preview:        e.Preview(),
		Options:        e.Options,
		SeparatorLabel: i18n.SeparatorLabel(e.Options.Separator),
		Pinned:         e.Pinned,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		Output:         yale.Convert(e.Text, e.Options),
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing history", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	data := make([]historyResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, toHistoryResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// Get returns one entry, for restoring its text and options.
func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "getting history entry", err)
		return
	}
	writeJSON(w, http.StatusOK, toHistoryResponse(e))
}

func (h *HistoryHandler) Pin(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	e, err := h.store.TogglePin(r.Context(), id)
	if err != nil {
		metrics.HistoryWritesTotal.WithLabelValues("pin", "error").Inc()
		h.fail(w, r, "toggling pin", err)
		return
	}
	metrics.HistoryWritesTotal.WithLabelValues("pin", "ok").Inc()
	writeJSON(w, http.StatusOK, toHistoryResponse(e))
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		metrics.HistoryWritesTotal.WithLabelValues("delete", "error").Inc()
		h.fail(w, r, "deleting history entry", err)
		return
	}
	metrics.HistoryWritesTotal.WithLabelValues("delete", "ok").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		metrics.HistoryWritesTotal.WithLabelValues("clear", "error").Inc()
		h.fail(w, r, "clearing history", err)
		return
	}
	metrics.HistoryWritesTotal.WithLabelValues("clear", "ok").Inc()
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) fail(w http.ResponseWriter, r *http.Request, what string, err error) {
	if errors.Is(err, history.ErrNotFound) {
		writeError(w, http.StatusNotFound, "history entry not found")
		return
	}
	h.log.ErrorContext(r.Context(), what, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
