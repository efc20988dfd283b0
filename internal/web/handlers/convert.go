package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/metrics"
	"github.com/jusunglee/yaleconv/internal/yale"
)

type ConvertHandler struct {
	history *history.Store
	log     *slog.Logger
}

// NewConvertHandler returns a handler that records saved conversions in store.
// store may be nil, in which case save requests are ignored.
func NewConvertHandler(store *history.Store, log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{history: store, log: log}
}

type convertRequest struct {
	Text      string `json:"text"`
	Separator string `json:"separator"`
	Labial    *bool  `json:"labial"`
	Save      bool   `json:"save"`
}

func (req convertRequest) options() yale.Options {
	opts := yale.DefaultOptions()
	if req.Labial != nil {
		opts.LabialRule = *req.Labial
	}
	opts.Separator = yale.NormalizeSeparator(req.Separator)
	return opts
}

type convertResponse struct {
	Output string `json:"output"`
	// Tabbed is Output with spaces turned into tabs, for pasting into sheets.
	Tabbed  string `json:"tabbed"`
	Saved   bool   `json:"saved"`
	SavedID int64  `json:"saved_id,omitempty"`
}

type interlinearLine struct {
	Words     []string `json:"words"`
	Romanized []string `json:"romanized"`
	Top       string   `json:"top"`
	Bottom    string   `json:"bottom"`
	TSV       string   `json:"tsv"`
}

type interlinearResponse struct {
	Lines []interlinearLine `json:"lines"`
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	opts := req.options()
	observe("text", req.Text, opts)

	out := yale.Convert(req.Text, opts)
	resp := convertResponse{Output: out, Tabbed: yale.Tabify(out)}

	if req.Save && h.history != nil {
		entry, err := h.history.Add(r.Context(), req.Text, opts)
		switch {
		case err == nil:
			resp.Saved, resp.SavedID = true, entry.ID
			metrics.HistoryWritesTotal.WithLabelValues("add", "ok").Inc()
		case errors.Is(err, history.ErrEmptyText):
		default:
			metrics.HistoryWritesTotal.WithLabelValues("add", "error").Inc()
			h.log.ErrorContext(r.Context(), "saving history", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ConvertHandler) Interlinear(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	opts := req.options()
	observe("interlinear", req.Text, opts)

	lines := yale.Interlinear(req.Text, opts)
	resp := interlinearResponse{Lines: make([]interlinearLine, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, interlinearLine{
			Words:     l.Words,
			Romanized: l.Romanized,
			Top:       l.Top(),
			Bottom:    l.Bottom(),
			TSV:       l.TSV(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func observe(mode, text string, opts yale.Options) {
	metrics.ConversionsTotal.WithLabelValues(mode, strconv.FormatBool(opts.LabialRule)).Inc()
	metrics.ConversionInputRunes.Observe(float64(utf8.RuneCountInString(text)))
}
