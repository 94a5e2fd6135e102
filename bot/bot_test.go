package bot

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/onnwee/matchbot/alias"
	"github.com/onnwee/matchbot/config"
	"github.com/onnwee/matchbot/schedule"
)

type sent struct {
	kind   string // "private" or "public"
	target string
	text   string
}

// fakeNotifier records every line the bot sends. Locked because the Run-loop
// test reads from the test goroutine.
type fakeNotifier struct {
	mu    sync.Mutex
	lines []sent
}

func (f *fakeNotifier) Private(user, text string) { f.record("private", user, text) }

func (f *fakeNotifier) Public(channel, text string) { f.record("public", channel, text) }

func (f *fakeNotifier) record(kind, target, text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = append(f.lines, sent{kind, target, text})
}

func (f *fakeNotifier) all() []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sent(nil), f.lines...)
}

func (f *fakeNotifier) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lines = nil
}

// testNow is the fixed "current time" for every bot test: Wed 20 Dec 2023.
var testNow = time.Date(2023, time.December, 20, 12, 0, 0, 0, time.Local)

func newTestBot(t *testing.T) (*Bot, *fakeNotifier) {
	t.Helper()
	fn := &fakeNotifier{}
	cfg := &config.Config{
		TwitchBotUsername: "matchbot",
		DataFile:          filepath.Join(t.TempDir(), "matchbotdata.ini"),
		EventQueueSize:    16,
	}
	b := New(cfg, schedule.NewStore(), alias.NewTable(), fn)
	b.now = func() time.Time { return testNow }
	return b, fn
}

// send pushes one chat line through dispatch as if it came from chat.
func send(b *Bot, sender, channel, text string) bool {
	return b.dispatch(context.Background(), MessageEvent{Sender: sender, Channel: channel, Text: text})
}

// wantLines compares everything the notifier recorded against want.
func wantLines(t *testing.T, fn *fakeNotifier, want ...sent) {
	t.Helper()
	got := fn.all()
	if len(got) != len(want) {
		t.Fatalf("sent %d lines, want %d:\ngot  %+v\nwant %+v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDispatchIgnoresUnknownText(t *testing.T) {
	b, fn := newTestBot(t)
	for _, text := range []string{
		"hello world",
		"!frobnicate 1",
		"list",          // no sigil
		"!listmatches",  // prefix requires space or end after the keyword
		"!yesterday 12", // signup verbs are whole words
		"",
	} {
		if send(b, "ann", "#clan", text) {
			t.Errorf("dispatch(%q) claimed the text", text)
		}
	}
	wantLines(t, fn)
}

func TestDispatchDegradesToUsage(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"!add", helpAdd},
		{"!add tomorrow TDM OpponentsFC", helpAdd},
		{"!add 24/12/23 18:30", helpAdd},
		{"!yes", helpSignup},
		{"!yes one", helpSignup},
		{"!update", helpUpdate},
		{"!result 1 dm4 red three one", helpResult},
		{"!updateresult 1", helpUpdateResult},
		{"!delresult 1", helpDelResult},
		{"!del", helpDel},
		{"!del one", helpDel},
		{"!undel", helpUndel},
		{"!rename 1 onlyone", helpRename},
		{"!alias justone", helpAlias},
		{"!delalias", helpDelAlias},
	}
	for _, tt := range tests {
		b, fn := newTestBot(t)
		if !send(b, "ann", "#clan", tt.text) {
			t.Errorf("dispatch(%q) did not claim the text", tt.text)
			continue
		}
		wantLines(t, fn, sent{"private", "ann", tt.want})
	}
}

func TestHelp(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"!help", helpGeneral},
		{"!help add stray", helpGeneral},
		{"!help add", helpAdd},
		{"!help !add", helpAdd},
		{"!help yes", helpSignup},
		{"!help unsign", helpSignup},
		{"!help list", helpList},
		{"!help info", helpInfo},
		{"!help update", helpUpdate},
		{"!help result", helpResult},
		{"!help updateresult", helpUpdateResult},
		{"!help delresult", helpDelResult},
		{"!help del", helpDel},
		{"!help undel", helpUndel},
		{"!help rename", helpRename},
		{"!help alias", helpAlias},
		{"!help delalias", helpDelAlias},
		{"!help dance", helpUnknown},
	}
	b, fn := newTestBot(t)
	for _, tt := range tests {
		fn.reset()
		send(b, "ann", "#clan", tt.text)
		wantLines(t, fn, sent{"private", "ann", tt.want})
	}
}

func TestEnqueueDropsWhenQueueFull(t *testing.T) {
	fn := &fakeNotifier{}
	cfg := &config.Config{
		TwitchBotUsername: "matchbot",
		DataFile:          filepath.Join(t.TempDir(), "matchbotdata.ini"),
		EventQueueSize:    1,
	}
	b := New(cfg, schedule.NewStore(), alias.NewTable(), fn)

	// Nothing drains the queue; the second and third events must be dropped
	// without blocking.
	b.OnMessage(MessageEvent{Sender: "ann", Text: "!help"})
	b.OnMessage(MessageEvent{Sender: "bob", Text: "!help"})
	b.OnJoin(JoinEvent{User: "cid"})

	if got := len(b.events); got != 1 {
		t.Errorf("queued events = %d, want 1", got)
	}
}

func TestRunProcessesQueuedEvents(t *testing.T) {
	b, fn := newTestBot(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b.OnMessage(MessageEvent{Sender: "ann", Text: "!help"})
	go b.Run(ctx)

	deadline := time.After(2 * time.Second)
	for b.Snapshot().Commands < 1 {
		select {
		case <-deadline:
			t.Fatal("event loop did not process the queued command")
		case <-time.After(5 * time.Millisecond):
		}
	}
	wantLines(t, fn, sent{"private", "ann", helpGeneral})
}

func TestSnapshotCounters(t *testing.T) {
	b, _ := newTestBot(t)
	send(b, "ann", "#clan", "!add 24/12/23 18:30 TDM OpponentsFC")
	send(b, "ann", "#clan", "!add 26/12/23 20:00 CTF OtherFC")
	send(b, "ann", "#clan", "!del 2")
	send(b, "ann", "#clan", "!alias ann smurf")
	b.refreshStats()

	snap := b.Snapshot()
	if snap.ActiveMatches != 1 || snap.TotalMatches != 2 || snap.Aliases != 1 {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.Commands != 4 {
		t.Errorf("commands = %d, want 4", snap.Commands)
	}
}
