package bot

import (
	"context"
	"regexp"

	"go.opentelemetry.io/otel/attribute"

	"github.com/onnwee/matchbot/telemetry"
)

// command is one entry in the ordered grammar table. The prefix pattern
// decides which command the text belongs to; the strict pattern then either
// yields the captured arguments for run, or the command degrades to its
// usage line. Text matching no prefix at all is ignored silently so the bot
// doesn't add noise to shared channels.
type command struct {
	name   string
	prefix *regexp.Regexp
	strict *regexp.Regexp
	run    func(b *Bot, ev MessageEvent, args []string)
	usage  func(b *Bot, ev MessageEvent)
}

// The table order matters: it is the historic matching priority. None of the
// prefixes actually overlap (!del cannot match "!delresult ..." because the
// prefix requires a space or end after the keyword), but the order is kept as
// the documented contract.
var commands = []command{
	{
		name:   "help",
		prefix: regexp.MustCompile(`^!help( .*)?$`),
		strict: regexp.MustCompile(`^!help !?([^ ]+)$`),
		run:    cmdHelp,
		// A bare !help, or !help with extra arguments, lists everything.
		usage: func(b *Bot, ev MessageEvent) { b.reply(ev, helpGeneral) },
	},
	{
		name:   "add",
		prefix: regexp.MustCompile(`^!add( .*)?$`),
		strict: regexp.MustCompile(`^!add (\d\d?/\d\d?/\d\d \d\d?:\d\d) ([^ ]+) ([^ ]+)( (.*))?`),
		run:    cmdAdd,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpAdd) },
	},
	{
		name:   "signup",
		prefix: regexp.MustCompile(`^!(yes|maybe|no|unsign)( .*)?$`),
		strict: regexp.MustCompile(`^!(yes|maybe|no|unsign) (\d+)( ([^ ]+))?$`),
		run:    cmdSignup,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpSignup) },
	},
	{
		name:   "list",
		prefix: regexp.MustCompile(`^([!@])list( .*)?$`),
		strict: regexp.MustCompile(`^([!@])list( ([^ ]+))?( ([^ ]+))?`),
		run:    cmdList,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpList) },
	},
	{
		name:   "info",
		prefix: regexp.MustCompile(`^([!@])info( .*)?$`),
		strict: regexp.MustCompile(`^([!@])info (\d+)( ([^ ]+))?`),
		run:    cmdInfo,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpInfo) },
	},
	{
		name:   "update",
		prefix: regexp.MustCompile(`^!update( .*)?$`),
		strict: regexp.MustCompile(`^!update (\d+) ([^ ]+)( (([^ ]+).*))?$`),
		run:    cmdUpdate,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpUpdate) },
	},
	{
		name:   "result",
		prefix: regexp.MustCompile(`^!result( .*)?$`),
		strict: regexp.MustCompile(`^!result (\d+) ([^ ]+) ([^ ]+) (\d+) (\d+)( (.*))?$`),
		run:    cmdResult,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpResult) },
	},
	{
		name:   "updateresult",
		prefix: regexp.MustCompile(`^!updateresult( .*)?$`),
		strict: regexp.MustCompile(`^!updateresult (\d+) (\d+) ([^ ]+)( (([^ ]+).*))?$`),
		run:    cmdUpdateResult,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpUpdateResult) },
	},
	{
		name:   "delresult",
		prefix: regexp.MustCompile(`^!delresult( .*)?$`),
		strict: regexp.MustCompile(`^!delresult (\d+) (\d+)$`),
		run:    cmdDelResult,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpDelResult) },
	},
	{
		name:   "del",
		prefix: regexp.MustCompile(`^!del( .*)?$`),
		strict: regexp.MustCompile(`^!del (\d+)$`),
		run:    cmdDel,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpDel) },
	},
	{
		name:   "undel",
		prefix: regexp.MustCompile(`^!undel( .*)?$`),
		strict: regexp.MustCompile(`^!undel (\d+)$`),
		run:    cmdUndel,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpUndel) },
	},
	{
		name:   "rename",
		prefix: regexp.MustCompile(`^!rename( .*)?$`),
		strict: regexp.MustCompile(`^!rename (\d+) ([^ ]+) ([^ ]+)$`),
		run:    cmdRename,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpRename) },
	},
	{
		name:   "alias",
		prefix: regexp.MustCompile(`^!alias( .*)?$`),
		strict: regexp.MustCompile(`^!alias ([^ ]+) ([^ ]+)$`),
		run:    cmdAlias,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpAlias) },
	},
	{
		name:   "delalias",
		prefix: regexp.MustCompile(`^!delalias( .*)?$`),
		strict: regexp.MustCompile(`^!delalias ([^ ]+)$`),
		run:    cmdDelAlias,
		usage:  func(b *Bot, ev MessageEvent) { b.reply(ev, helpDelAlias) },
	},
}

// dispatch routes one chat line through the grammar table. It reports
// whether any command claimed the text.
func (b *Bot) dispatch(ctx context.Context, ev MessageEvent) bool {
	for i := range commands {
		c := &commands[i]
		if !c.prefix.MatchString(ev.Text) {
			continue
		}
		_, span := telemetry.StartSpan(ctx, "bot", "command "+c.name,
			attribute.String("command", c.name))
		telemetry.ObserveCommand(c.name)
		if args := c.strict.FindStringSubmatch(ev.Text); args != nil {
			c.run(b, ev, args)
		} else {
			c.usage(b, ev)
		}
		span.End()
		b.commands.Add(1)
		return true
	}
	return false
}
