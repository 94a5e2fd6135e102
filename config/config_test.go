package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TWITCH_CHANNEL", "")
	t.Setenv("TWITCH_BOT_USERNAME", "")
	t.Setenv("TWITCH_OAUTH_TOKEN", "")
	t.Setenv("DATA_FILE", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JOIN_ANNOUNCE_DELAY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "matchbotdata.ini" {
		t.Errorf("DataFile = %q", cfg.DataFile)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.JoinAnnounceDelay != 500*time.Millisecond {
		t.Errorf("JoinAnnounceDelay = %v", cfg.JoinAnnounceDelay)
	}
	if cfg.EventQueueSize != 64 {
		t.Errorf("EventQueueSize = %d", cfg.EventQueueSize)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATA_FILE", "/tmp/other.ini")
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("JOIN_ANNOUNCE_DELAY", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "/tmp/other.ini" || cfg.HTTPAddr != ":9999" || cfg.JoinAnnounceDelay != 2*time.Second {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadRejectsBadDelay(t *testing.T) {
	for _, v := range []string{"soon", "-1s"} {
		t.Setenv("JOIN_ANNOUNCE_DELAY", v)
		if _, err := Load(); err == nil {
			t.Errorf("Load accepted JOIN_ANNOUNCE_DELAY=%q", v)
		}
	}
}

func TestValidateChatReady(t *testing.T) {
	cfg := &Config{TwitchChannel: "clan", TwitchBotUsername: "matchbot", TwitchOAuthToken: "oauth:x"}
	if err := cfg.ValidateChatReady(); err != nil {
		t.Errorf("complete config rejected: %v", err)
	}

	cfg.TwitchOAuthToken = ""
	if err := cfg.ValidateChatReady(); err == nil {
		t.Error("missing token accepted")
	}
}
