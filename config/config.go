// Package config loads environment variables and provides a typed Config used across the bot.
// It applies sensible defaults so the binary can run locally with minimal setup.
// For required chat credentials, use ValidateChatReady.
package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	// Twitch
	TwitchChannel     string
	TwitchBotUsername string
	TwitchOAuthToken  string

	// Persistence
	DataFile string

	// HTTP ops plane
	HTTPAddr string

	// Join announcer settle delay before greeting a joining user.
	JoinAnnounceDelay time.Duration

	// Event queue depth between the transport callbacks and the single
	// processing goroutine.
	EventQueueSize int
}

// Load reads environment variables and applies defaults. Chat credentials may
// be absent at this point; ValidateChatReady() enforces them before connecting.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.TwitchChannel = os.Getenv("TWITCH_CHANNEL")
	cfg.TwitchBotUsername = os.Getenv("TWITCH_BOT_USERNAME")
	cfg.TwitchOAuthToken = os.Getenv("TWITCH_OAUTH_TOKEN")

	cfg.DataFile = os.Getenv("DATA_FILE")
	if cfg.DataFile == "" {
		cfg.DataFile = "matchbotdata.ini"
	}

	cfg.HTTPAddr = os.Getenv("HTTP_ADDR")
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}

	cfg.JoinAnnounceDelay = 500 * time.Millisecond
	if v := os.Getenv("JOIN_ANNOUNCE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("invalid JOIN_ANNOUNCE_DELAY (duration): %q", v)
		}
		cfg.JoinAnnounceDelay = d
	}

	cfg.EventQueueSize = 64

	return cfg, nil
}

// ValidateChatReady checks the fields required to join chat.
func (c *Config) ValidateChatReady() error {
	if c.TwitchChannel == "" || c.TwitchBotUsername == "" || c.TwitchOAuthToken == "" {
		return fmt.Errorf("missing twitch env: require TWITCH_CHANNEL, TWITCH_BOT_USERNAME, TWITCH_OAUTH_TOKEN")
	}
	return nil
}
