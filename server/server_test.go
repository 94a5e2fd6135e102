package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/onnwee/matchbot/alias"
	"github.com/onnwee/matchbot/bot"
	"github.com/onnwee/matchbot/config"
	"github.com/onnwee/matchbot/schedule"
)

type nopNotifier struct{}

func (nopNotifier) Private(user, text string) {}

func (nopNotifier) Public(channel, text string) {}

func newTestMux(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		TwitchBotUsername: "matchbot",
		DataFile:          filepath.Join(t.TempDir(), "matchbotdata.ini"),
		EventQueueSize:    4,
	}
	b := bot.New(cfg, schedule.NewStore(), alias.NewTable(), nopNotifier{})
	return NewMux(b, "#clan")
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestMux(t)
	for path, body := range map[string]string{"/healthz": "ok", "/readyz": "ready"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK || rec.Body.String() != body {
			t.Errorf("%s -> %d %q, want 200 %q", path, rec.Code, rec.Body.String(), body)
		}
	}
}

func TestStatusEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("/status -> %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp struct {
		Channel       string `json:"channel"`
		Uptime        string `json:"uptime"`
		ActiveMatches int64  `json:"active_matches"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Channel != "#clan" {
		t.Errorf("channel = %q", resp.Channel)
	}
	if resp.Uptime == "" {
		t.Error("uptime missing")
	}
}

func TestCorrelationIDHeader(t *testing.T) {
	mux := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Error("no correlation id generated")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Correlation-ID", "fixed-id")
	mux.ServeHTTP(rec, req)
	if got := rec.Header().Get("X-Correlation-ID"); got != "fixed-id" {
		t.Errorf("correlation id = %q, want fixed-id", got)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux := newTestMux(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("/metrics -> %d", rec.Code)
	}
}
