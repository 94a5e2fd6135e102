// Package twitch adapts the gempir IRC client to the bot's event and
// delivery contracts. Inbound channel messages, whispers and joins become
// bot events; the bot's Private/Public responses go back out as channel
// lines (Twitch whispers are unreliable for bots, so private delivery is an
// @-addressed channel message).
package twitch

import (
	"context"
	"fmt"
	"log/slog"

	irc "github.com/gempir/go-twitch-irc/v4"

	"github.com/onnwee/matchbot/bot"
	"github.com/onnwee/matchbot/config"
)

// Client is the chat transport. It implements bot.Notifier.
type Client struct {
	irc     *irc.Client
	channel string
}

// New builds a connected-but-not-yet-running client for the configured
// channel. Call Bind before Run.
func New(cfg *config.Config) *Client {
	return &Client{
		irc:     irc.NewClient(cfg.TwitchBotUsername, cfg.TwitchOAuthToken),
		channel: cfg.TwitchChannel,
	}
}

// Bind registers the IRC callbacks that feed the bot's event queue.
func (c *Client) Bind(b *bot.Bot) {
	c.irc.OnPrivateMessage(func(msg irc.PrivateMessage) {
		b.OnMessage(bot.MessageEvent{
			Sender:  msg.User.Name,
			Channel: msg.Channel,
			Text:    msg.Message,
		})
	})
	c.irc.OnWhisperMessage(func(msg irc.WhisperMessage) {
		// Whispered commands have no channel origin; public responses
		// downgrade to private.
		b.OnMessage(bot.MessageEvent{
			Sender: msg.User.Name,
			Text:   msg.Message,
		})
	})
	c.irc.OnUserJoinMessage(func(msg irc.UserJoinMessage) {
		b.OnJoin(bot.JoinEvent{User: msg.User, Channel: msg.Channel})
	})
	c.irc.OnConnect(func() {
		slog.Info("connected to chat", slog.String("channel", c.channel), slog.String("component", "twitch"))
	})
}

// Run joins the channel and blocks on the IRC connection until it ends or
// ctx is cancelled. A nil return means a clean, requested disconnect.
func (c *Client) Run(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			if err := c.irc.Disconnect(); err != nil {
				slog.Debug("disconnect", slog.Any("err", err), slog.String("component", "twitch"))
			}
		case <-done:
		}
	}()
	defer close(done)

	c.irc.Join(c.channel)
	if err := c.irc.Connect(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("chat connection ended: %w", err)
	}
	return nil
}

// Private implements bot.Notifier.
func (c *Client) Private(user, text string) {
	c.irc.Say(c.channel, "@"+user+" "+text)
}

// Public implements bot.Notifier.
func (c *Client) Public(channel, text string) {
	c.irc.Say(channel, text)
}
