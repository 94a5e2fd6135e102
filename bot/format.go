package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/onnwee/matchbot/schedule"
)

// mIRC formatting control codes, carried verbatim from the historic bot so
// clients keep rendering the availability counts and status words in color
// (green = available, orange = maybe, red = unavailable).
const (
	ctrlBold  = "\x02"
	colGreen  = "\x033"
	colOrange = "\x037"
	colRed    = "\x034"
	colReset  = "\x03"
)

// signupCounts renders the yes/maybe/no tallies as e.g. "2/1/0" with each
// number in its list's color.
func signupCounts(m *schedule.Match) string {
	return colGreen + ctrlBold + ctrlBold + strconv.Itoa(len(m.Yes)) + colReset + "/" +
		colOrange + ctrlBold + ctrlBold + strconv.Itoa(len(m.Maybe)) + colReset + "/" +
		colRed + ctrlBold + ctrlBold + strconv.Itoa(len(m.No)) + colReset
}

func signedLabel(s schedule.Signup) string {
	switch s {
	case schedule.SignedYes:
		return colGreen + "available" + colReset
	case schedule.SignedMaybe:
		return colOrange + "maybe" + colReset
	case schedule.SignedNo:
		return colRed + "unavailable" + colReset
	}
	return "unsigned"
}

// listLine is the one-line match summary used by !list and the join
// announcer. withPlayed controls the "N map(s) played" clause, which only
// !list shows.
func (b *Bot) listLine(m *schedule.Match, withPlayed bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Info] %d: %s AMS :: %s vs %s", m.ID, schedule.DateLabel(m.Date, b.now()), m.GameType, m.Team)
	if m.Comment != "" {
		sb.WriteString(" :: " + m.Comment)
	}
	if withPlayed && len(m.Results) > 0 {
		fmt.Fprintf(&sb, " :: %d map(s) played", len(m.Results))
	}
	sb.WriteString(" :: " + signupCounts(m))
	return sb.String()
}

// infoHeader is the !info header line: like listLine but without the tallies.
func (b *Bot) infoHeader(m *schedule.Match) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Info] %d: %s AMS :: %s vs %s", m.ID, schedule.DateLabel(m.Date, b.now()), m.GameType, m.Team)
	if m.Comment != "" {
		sb.WriteString(" :: " + m.Comment)
	}
	return sb.String()
}

// signupsLine lists who is signed up in each list, colored per list.
func signupsLine(m *schedule.Match) string {
	return fmt.Sprintf("[Info] %d: Signed up: %sYes (%d)%s: %s %sMaybe (%d)%s: %s %sNo (%d)%s: %s",
		m.ID,
		colGreen, len(m.Yes), colReset, strings.Join(m.Yes, ", "),
		colOrange, len(m.Maybe), colReset, strings.Join(m.Maybe, ", "),
		colRed, len(m.No), colReset, strings.Join(m.No, ", "))
}

// resultsLine renders all recorded results, 1-based, or "" when none exist.
func resultsLine(m *schedule.Match) string {
	if len(m.Results) == 0 {
		return ""
	}
	parts := make([]string, 0, len(m.Results))
	for i, r := range m.Results {
		s := fmt.Sprintf("%d: %s (%s) %d-%d", i+1, r.Map, r.Team, r.OurScore, r.TheirScore)
		if r.Comment != "" {
			s += " [" + r.Comment + "]"
		}
		parts = append(parts, s)
	}
	return fmt.Sprintf("[Info] %d: Results: %s", m.ID, strings.Join(parts, " :: "))
}
