// Package bot contains the matchbot core: the command router, the match
// scheduling handlers, and the join announcer, processed on a single event
// loop goroutine.
//
// The chat transport is a collaborator: it feeds MessageEvent/JoinEvent
// values in through OnMessage/OnJoin and receives responses back through the
// Notifier it implements. One event is fully processed - including the
// synchronous write-through save of the data file - before the next is drawn,
// so the store needs no locking.
package bot

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/onnwee/matchbot/alias"
	"github.com/onnwee/matchbot/config"
	"github.com/onnwee/matchbot/datafile"
	"github.com/onnwee/matchbot/schedule"
	"github.com/onnwee/matchbot/telemetry"
)

// MessageEvent is one inbound chat line. Channel is empty when the message
// arrived privately (whisper) instead of in a channel; responses marked
// public are downgraded to private in that case.
type MessageEvent struct {
	Sender  string
	Channel string
	Text    string
}

// JoinEvent is a user joining the bot's channel.
type JoinEvent struct {
	User    string
	Channel string
}

// Notifier delivers the bot's responses. Private reaches a single user,
// Public goes to a channel.
type Notifier interface {
	Private(user, text string)
	Public(channel, text string)
}

// Snapshot is the state summary served on /status.
type Snapshot struct {
	ActiveMatches int64 `json:"active_matches"`
	TotalMatches  int64 `json:"total_matches"`
	Aliases       int64 `json:"aliases"`
	Commands      int64 `json:"commands_processed"`
}

// Bot wires the scheduling store, alias table and persistence path to the
// command grammar. All state mutation happens on the Run goroutine.
type Bot struct {
	store     *schedule.Store
	aliases   *alias.Table
	notify    Notifier
	dataPath  string
	joinDelay time.Duration
	self      string

	events chan any
	now    func() time.Time

	activeMatches atomic.Int64
	totalMatches  atomic.Int64
	aliasCount    atomic.Int64
	commands      atomic.Int64
}

// New builds a bot around an already-restored store and alias table.
func New(cfg *config.Config, store *schedule.Store, aliases *alias.Table, notify Notifier) *Bot {
	b := &Bot{
		store:     store,
		aliases:   aliases,
		notify:    notify,
		dataPath:  cfg.DataFile,
		joinDelay: cfg.JoinAnnounceDelay,
		self:      cfg.TwitchBotUsername,
		events:    make(chan any, cfg.EventQueueSize),
		now:       time.Now,
	}
	b.refreshStats()
	return b
}

// OnMessage enqueues an inbound chat line. Transport callbacks must never
// block, so a full queue drops the event (and counts the drop).
func (b *Bot) OnMessage(ev MessageEvent) {
	b.enqueue(ev)
}

// OnJoin enqueues a user-joined notification.
func (b *Bot) OnJoin(ev JoinEvent) {
	b.enqueue(ev)
}

func (b *Bot) enqueue(ev any) {
	select {
	case b.events <- ev:
	default:
		telemetry.ObserveDroppedEvent()
		slog.Warn("event queue full, dropping event", slog.String("component", "bot"))
	}
}

// Run drains the event queue until ctx is cancelled. It owns the store: no
// other goroutine touches it.
func (b *Bot) Run(ctx context.Context) {
	slog.Info("event loop started", slog.String("component", "bot"))
	for {
		select {
		case <-ctx.Done():
			slog.Info("event loop stopped", slog.String("component", "bot"))
			return
		case ev := <-b.events:
			switch e := ev.(type) {
			case MessageEvent:
				b.dispatch(ctx, e)
			case JoinEvent:
				b.announceJoin(ctx, e)
			}
			b.refreshStats()
		}
	}
}

// Snapshot returns the current counters for the status endpoint. Safe to
// call from any goroutine.
func (b *Bot) Snapshot() Snapshot {
	return Snapshot{
		ActiveMatches: b.activeMatches.Load(),
		TotalMatches:  b.totalMatches.Load(),
		Aliases:       b.aliasCount.Load(),
		Commands:      b.commands.Load(),
	}
}

// save is the write-through step after every successful mutation.
func (b *Bot) save() {
	start := time.Now()
	err := datafile.Save(b.dataPath, b.aliases, b.store.Matches())
	telemetry.ObserveSave(time.Since(start), err == nil)
	if err != nil {
		slog.Error("data file save failed", slog.Any("err", err), slog.String("component", "bot"))
	}
}

func (b *Bot) refreshStats() {
	active := b.store.ActiveCount()
	b.activeMatches.Store(int64(active))
	b.totalMatches.Store(int64(b.store.Len()))
	b.aliasCount.Store(int64(b.aliases.Len()))
	telemetry.SetActiveMatches(active)
	telemetry.SetAliases(b.aliases.Len())
}

// reply sends a private response line to the command's sender.
func (b *Bot) reply(ev MessageEvent, text string) {
	b.notify.Private(ev.Sender, text)
}

// replyError sends a user-input error line and counts it.
func (b *Bot) replyError(ev MessageEvent, text string) {
	telemetry.ObserveCommandError()
	b.notify.Private(ev.Sender, text)
}
