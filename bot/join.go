package bot

import (
	"context"
	"strings"
	"time"
)

// announceJoin greets a user joining the channel with their signup status for
// every active match, privately. The short delay lets the transport finish
// its own join-time bookkeeping before we start sending. The bot's own join
// is ignored.
func (b *Bot) announceJoin(ctx context.Context, ev JoinEvent) {
	if strings.EqualFold(ev.User, b.self) {
		return
	}
	if b.joinDelay > 0 {
		select {
		case <-ctx.Done():
			return
		case <-time.After(b.joinDelay):
		}
	}

	name := b.aliases.Resolve(ev.User)
	listed := 0
	for _, m := range b.store.Matches() {
		if m.Deleted {
			continue
		}
		b.notify.Private(ev.User, b.listLine(m, false)+" :: Signed as "+signedLabel(m.SignupOf(name))+".")
		listed++
	}
	if listed == 0 {
		b.notify.Private(ev.User, msgNoMatches)
	}
}
