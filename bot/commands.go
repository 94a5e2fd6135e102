package bot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/onnwee/matchbot/schedule"
)

var numericPattern = regexp.MustCompile(`^\d+$`)

// matchByID resolves a digits-only id token to a match, reporting the
// standard error line when it doesn't exist.
func (b *Bot) matchByID(ev MessageEvent, token string) *schedule.Match {
	id, err := strconv.Atoi(token)
	if err != nil {
		b.replyError(ev, errNoMatch)
		return nil
	}
	m := b.store.ByID(id)
	if m == nil {
		b.replyError(ev, errNoMatch)
	}
	return m
}

// replyDateError picks between the two historic date error lines.
func (b *Bot) replyDateError(ev MessageEvent, err error) {
	if errors.Is(err, schedule.ErrDateValue) {
		b.replyError(ev, errDateValue)
		return
	}
	b.replyError(ev, errDateParse)
}

func cmdHelp(b *Bot, ev MessageEvent, args []string) {
	switch args[1] {
	case "add":
		b.reply(ev, helpAdd)
	case "yes", "maybe", "no", "unsign":
		b.reply(ev, helpSignup)
	case "list":
		b.reply(ev, helpList)
	case "info":
		b.reply(ev, helpInfo)
	case "update":
		b.reply(ev, helpUpdate)
	case "result":
		b.reply(ev, helpResult)
	case "updateresult":
		b.reply(ev, helpUpdateResult)
	case "delresult":
		b.reply(ev, helpDelResult)
	case "del":
		b.reply(ev, helpDel)
	case "undel":
		b.reply(ev, helpUndel)
	case "rename":
		b.reply(ev, helpRename)
	case "alias":
		b.reply(ev, helpAlias)
	case "delalias":
		b.reply(ev, helpDelAlias)
	default:
		b.reply(ev, helpUnknown)
	}
}

// args: 1=date+time, 2=gametype, 3=team, 5=comment
func cmdAdd(b *Bot, ev MessageEvent, args []string) {
	date, err := schedule.ParseDate(args[1])
	if err != nil {
		b.replyDateError(ev, err)
		return
	}
	m := b.store.Add(date, args[3], args[2], args[5])
	b.reply(ev, fmt.Sprintf("[Success] New match id %d added!", m.ID))
	if ev.Channel != "" {
		b.notify.Public(ev.Channel, fmt.Sprintf("[Match] New match id %d added!", m.ID))
	}
	b.save()
}

// args: 1=yes|maybe|no|unsign, 2=match id, 4=optional name
func cmdSignup(b *Bot, ev MessageEvent, args []string) {
	name := ev.Sender
	if args[4] != "" {
		name = args[4]
	}
	name = b.aliases.Resolve(name)
	// Acting for a different name (explicit or via alias) changes the
	// response wording.
	other := name != ev.Sender

	m := b.matchByID(ev, args[2])
	if m == nil {
		b.reply(ev, helpSignup)
		return
	}

	switch args[1] {
	case "yes":
		if !b.store.SetYes(m, name) {
			b.replyError(ev, "[Error] You are already set as available for that match.")
			return
		}
		if other {
			b.reply(ev, fmt.Sprintf("[Success] Signed up as available, as %s.", name))
		} else {
			b.reply(ev, "[Success] Signed up as available.")
		}
	case "maybe":
		if !b.store.SetMaybe(m, name) {
			b.replyError(ev, "[Error] You are already set as maybe for that match.")
			return
		}
		if other {
			b.reply(ev, fmt.Sprintf("[Success] Signed up as maybe, as %s.", name))
		} else {
			b.reply(ev, "[Success] Signed up as maybe.")
		}
	case "no":
		if !b.store.SetNo(m, name) {
			b.replyError(ev, "[Error] You are already set as unavailable for that match.")
			return
		}
		if other {
			b.reply(ev, fmt.Sprintf("[Success] Signed up as unavailable, as %s.", name))
		} else {
			b.reply(ev, "[Success] Signed up as unavailable.")
		}
	case "unsign":
		if !b.store.Unsign(m, name) {
			b.replyError(ev, errNotSignedUp)
			return
		}
		if other {
			b.reply(ev, fmt.Sprintf("[Success] Unsigned from the match as %s.", name))
		} else {
			b.reply(ev, "[Success] Unsigned from the match.")
		}
	}
	b.save()
}

// args: 1=!|@, 3=first optional token, 5=second optional token
func cmdList(b *Bot, ev MessageEvent, args []string) {
	public := args[1] == "@" && ev.Channel != ""
	p1, p2 := args[3], args[5]

	unsigned := p1 == "unsigned" || p2 == "unsigned"
	name := ev.Sender
	if p1 != "" && p1 != "unsigned" {
		name = p1
	}
	if p2 != "" && p2 != "unsigned" {
		name = p2
	}
	name = b.aliases.Resolve(name)

	listed := 0
	for _, m := range b.store.Matches() {
		if m.Deleted {
			continue
		}
		signed := m.SignupOf(name)
		if unsigned && signed != schedule.SignedNone {
			continue
		}
		if public {
			b.notify.Public(ev.Channel, b.listLine(m, true))
		} else {
			b.notify.Private(ev.Sender, b.listLine(m, true)+" :: Signed as "+signedLabel(signed)+".")
		}
		listed++
	}
	if listed == 0 {
		if public {
			b.notify.Public(ev.Channel, msgNoMatches)
		} else {
			b.notify.Private(ev.Sender, msgNoMatches)
		}
	}
}

// args: 1=!|@, 2=match id, 4=optional name
func cmdInfo(b *Bot, ev MessageEvent, args []string) {
	public := args[1] == "@" && ev.Channel != ""
	name := ev.Sender
	if args[4] != "" {
		name = args[4]
	}
	name = b.aliases.Resolve(name)

	m := b.matchByID(ev, args[2])
	if m == nil {
		return
	}

	if public {
		b.notify.Public(ev.Channel, b.infoHeader(m))
		b.notify.Public(ev.Channel, signupsLine(m))
	} else {
		b.notify.Private(ev.Sender, b.infoHeader(m)+" :: Signed as "+signedLabel(m.SignupOf(name)))
		b.notify.Private(ev.Sender, signupsLine(m))
	}
	if results := resultsLine(m); results != "" {
		if public {
			b.notify.Public(ev.Channel, results)
		} else {
			b.notify.Private(ev.Sender, results)
		}
	}
}

// args: 1=match id, 2=field, 4=value (rest of line), 5=value (first token)
func cmdUpdate(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	if args[2] != "comment" && args[4] == "" {
		b.reply(ev, helpUpdate)
		return
	}

	switch args[2] {
	case "date":
		date, err := schedule.ParseDate(args[4])
		if err != nil {
			b.replyDateError(ev, err)
			return
		}
		b.store.SetDate(m, date)
	case "team":
		b.store.SetTeam(m, args[5])
	case "gametype":
		b.store.SetGameType(m, args[5])
	case "comment":
		b.store.SetComment(m, args[4])
	default:
		b.replyError(ev, errUnknownMatchProperty)
		return
	}
	b.reply(ev, "[Success] Updated.")
	b.save()
}

// args: 1=match id, 2=map, 3=team, 4=our score, 5=their score, 7=comment
func cmdResult(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	our, err := strconv.Atoi(args[4])
	if err != nil {
		b.replyError(ev, errOurScoreNumeric)
		return
	}
	their, err := strconv.Atoi(args[5])
	if err != nil {
		b.replyError(ev, errTheirScoreNumeric)
		return
	}
	b.store.AddResult(m, schedule.Result{
		Map:        args[2],
		Team:       args[3],
		OurScore:   our,
		TheirScore: their,
		Comment:    args[7],
	})
	b.reply(ev, "[Success] Result added.")
	b.save()
}

// args: 1=match id, 2=result ordinal, 3=field, 5=value (rest), 6=value (token)
func cmdUpdateResult(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	idx, err := b.store.ResultIndex(m, args[2])
	if err != nil {
		if errors.Is(err, schedule.ErrResultRange) {
			b.replyError(ev, errNoResult)
		} else {
			b.replyError(ev, errInvalidResultID)
		}
		return
	}
	if args[3] != "comment" && args[5] == "" {
		b.reply(ev, helpUpdateResult)
		return
	}

	r := b.store.ResultAt(m, idx)
	switch args[3] {
	case "map":
		r.Map = args[6]
	case "team":
		r.Team = args[6]
	case "ourscore":
		n, err := parseScore(args[6])
		if err != nil {
			b.replyError(ev, errOurScoreNumeric)
			return
		}
		r.OurScore = n
	case "theirscore":
		n, err := parseScore(args[6])
		if err != nil {
			b.replyError(ev, errTheirScoreNumeric)
			return
		}
		r.TheirScore = n
	case "comment":
		r.Comment = args[5]
	default:
		b.replyError(ev, errUnknownResultProperty)
		return
	}
	b.reply(ev, "[Success] Updated.")
	b.save()
}

func parseScore(token string) (int, error) {
	if !numericPattern.MatchString(token) {
		return 0, fmt.Errorf("score %q not numeric", token)
	}
	return strconv.Atoi(token)
}

// args: 1=match id, 2=result ordinal
func cmdDelResult(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	idx, err := b.store.ResultIndex(m, args[2])
	if err != nil {
		if errors.Is(err, schedule.ErrResultRange) {
			b.replyError(ev, errNoResult)
		} else {
			b.replyError(ev, errInvalidResultID)
		}
		return
	}
	b.store.DeleteResult(m, idx)
	b.reply(ev, "[Success] Result deleted.")
	b.save()
}

func cmdDel(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	b.store.SetDeleted(m, true)
	b.reply(ev, "[Success] Match marked as deleted.")
	b.save()
}

func cmdUndel(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	b.store.SetDeleted(m, false)
	b.reply(ev, "[Success] Match restored.")
	b.save()
}

// args: 1=match id, 2=from, 3=to
func cmdRename(b *Bot, ev MessageEvent, args []string) {
	m := b.matchByID(ev, args[1])
	if m == nil {
		return
	}
	if !b.store.Rename(m, args[2], args[3]) {
		b.replyError(ev, errRenameNotFound)
		return
	}
	b.reply(ev, "[Success] Sign-up changed.")
	b.save()
}

// args: 1=master, 2=slave
func cmdAlias(b *Bot, ev MessageEvent, args []string) {
	if b.aliases.Set(args[1], args[2]) {
		b.reply(ev, "[Success] Updated alias.")
	} else {
		b.reply(ev, "[Success] Alias added.")
	}
	// Re-resolve every stored signup name against the new table so past
	// signups under the slave name collapse onto the master.
	b.store.Reresolve(b.aliases.Resolve)
	b.save()
}

// args: 1=slave
func cmdDelAlias(b *Bot, ev MessageEvent, args []string) {
	if !b.aliases.Delete(args[1]) {
		b.replyError(ev, errNoAlias)
		return
	}
	b.reply(ev, "[Success] Updated removed.")
	b.save()
}
