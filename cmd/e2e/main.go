package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"
	"unicode"

	"github.com/joho/godotenv"
	"github.com/jusunglee/yaleconv/internal/db/backend"
	"github.com/jusunglee/yaleconv/internal/history"
	"github.com/jusunglee/yaleconv/internal/logger"
	"github.com/jusunglee/yaleconv/internal/web"
)

func main() {
	if err := run(); err != nil {
		slog.Error("E2E FAILED", "error", err)
		os.Exit(1)
	}
	slog.Info("E2E PASSED")
}

// cases are checked against the live API with default options.
var cases = []struct {
	text string
	want string
}{
	{"한글", "hankul"},
	{"안녕하세요", "annyenghaseyyo"},
	{"무", "mu"},
	{"값", "kaps"},
	{"밤우", "pamu"},
	{"있습니다", "isssupnita"},
}

func run() error {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	// Phase 1: Target E2E_BASE_URL, or serve the API in-process over a temp DB
	baseURL := os.Getenv("E2E_BASE_URL")
	if baseURL == "" {
		log.Info("Phase 1: Starting in-process server...")
		dbPath := fmt.Sprintf("/tmp/yale-e2e-%d.db", time.Now().UnixNano())
		defer os.Remove(dbPath)

		repo, err := backend.Open(ctx, dbPath)
		if err != nil {
			return fmt.Errorf("creating temp SQLite: %w", err)
		}
		defer repo.Close()

		srvCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		router := web.NewRouter(history.NewStore(repo, history.DefaultMaxUnpinned), log, web.Config{})
		srv := httptest.NewServer(router.Handler(srvCtx))
		defer srv.Close()
		baseURL = srv.URL
	}
	c := &client{base: baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	log.Info("target", "base_url", baseURL)

	if err := c.do(http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("health check: %w", err)
	}

	// Phase 2: Conversions
	log.Info("Phase 2: Checking conversions...", "cases", len(cases))
	for _, tc := range cases {
		var out struct {
			Output string `json:"output"`
		}
		if err := c.do(http.MethodPost, "/api/v1/convert", map[string]any{"text": tc.text}, &out); err != nil {
			return fmt.Errorf("converting %q: %w", tc.text, err)
		}
		if out.Output != tc.want {
			return fmt.Errorf("converting %q: got %q, want %q", tc.text, out.Output, tc.want)
		}
		if containsHangul(out.Output) {
			return fmt.Errorf("converting %q: output still has Hangul: %q", tc.text, out.Output)
		}
	}

	// Phase 3: History
	log.Info("Phase 3: Saving and pinning...")
	var saved struct {
		Saved   bool  `json:"saved"`
		SavedID int64 `json:"saved_id"`
	}
	body := map[string]any{"text": "한글", "separator": ".", "save": true}
	if err := c.do(http.MethodPost, "/api/v1/convert", body, &saved); err != nil {
		return fmt.Errorf("saving: %w", err)
	}
	if !saved.Saved {
		return fmt.Errorf("save was not recorded; is history enabled on the server?")
	}

	var pinned struct {
		Pinned bool   `json:"pinned"`
		Output string `json:"output"`
	}
	if err := c.do(http.MethodPost, fmt.Sprintf("/api/v1/history/%d/pin", saved.SavedID), nil, &pinned); err != nil {
		return fmt.Errorf("pinning: %w", err)
	}
	if !pinned.Pinned || pinned.Output != "h.a.n.k.u.l" {
		return fmt.Errorf("pinned entry has unexpected state: pinned=%v output=%q", pinned.Pinned, pinned.Output)
	}

	var list struct {
		Data []struct {
			ID     int64 `json:"id"`
			Pinned bool  `json:"pinned"`
		} `json:"data"`
	}
	if err := c.do(http.MethodGet, "/api/v1/history", nil, &list); err != nil {
		return fmt.Errorf("listing: %w", err)
	}
	if len(list.Data) == 0 || list.Data[0].ID != saved.SavedID {
		return fmt.Errorf("pinned entry %d is not listed first", saved.SavedID)
	}
	log.Info("history verified", "entry_id", saved.SavedID, "entries", len(list.Data))

	// Phase 4: Cleanup
	log.Info("Phase 4: Cleaning up...")
	if err := c.do(http.MethodDelete, fmt.Sprintf("/api/v1/history/%d", saved.SavedID), nil, nil); err != nil {
		log.Warn("cleanup: failed to delete entry", "error", err)
	}
	if err := c.do(http.MethodGet, fmt.Sprintf("/api/v1/history/%d", saved.SavedID), nil, nil); err == nil {
		return fmt.Errorf("entry %d still exists after delete", saved.SavedID)
	}

	log.Info("all verifications passed", "conversions", len(cases), "entry_id", saved.SavedID)
	return nil
}

type client struct {
	base string
	http *http.Client
}

// do sends body as JSON and decodes a 2xx response into out when out is
// non-nil.
func (c *client) do(method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling body: %w", err)
		}
		r = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, c.base+path, r)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func containsHangul(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Hangul, r) {
			return true
		}
	}
	return false
}
