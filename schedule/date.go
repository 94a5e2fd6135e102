package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the wire format for match dates, both in chat commands and in
// the persisted data file. Times are "AMS local" with no zone offset.
const DateLayout = "02/01/06 15:04"

var (
	// ErrDateSyntax means the input doesn't look like dd/mm/yy hh:mm at all.
	ErrDateSyntax = errors.New("date must be formatted dd/mm/yy hh:mm")
	// ErrDateValue means the input parsed but names an impossible moment,
	// e.g. 31/02/23 10:00 or an hour of 27.
	ErrDateValue = errors.New("no such date")
)

var dateParts = regexp.MustCompile(`^(\d+)/(\d+)/(\d+) (\d+):(\d+)$`)

// ParseDate parses a dd/mm/yy hh:mm string into a local time. Years are
// interpreted as 20xx. Unlike time.Parse with a layout, field values that
// would roll over into a different moment (day 31 in February, hour 25) are
// rejected rather than normalized.
func ParseDate(s string) (time.Time, error) {
	m := dateParts.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateSyntax, s)
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	t := time.Date(2000+year, time.Month(month), day, hour, minute, 0, 0, time.Local)
	if t.Year() != 2000+year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateValue, s)
	}
	return t, nil
}

// DateLabel renders a match date for listings: "Today 18:30" or
// "Tomorrow 18:30" when the date falls on the current or next calendar day,
// otherwise a full "Mon 02/01/06 15:04" stamp. The comparison is by calendar
// day, not elapsed time, so a 23:59 match is still "Today" at 23:58.
func DateLabel(date, now time.Time) string {
	if sameDay(date, now) {
		return date.Format("Today 15:04")
	}
	if sameDay(date, now.AddDate(0, 0, 1)) {
		return date.Format("Tomorrow 15:04")
	}
	return date.Format("Mon " + DateLayout)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
