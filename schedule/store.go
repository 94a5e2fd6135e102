package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Lookup failures surfaced to command handlers. ErrResultSyntax and
// ErrResultRange are distinct because they produce different response lines.
var (
	ErrResultSyntax = errors.New("invalid result id")
	ErrResultRange  = errors.New("result id doesn't exist")
)

var digitsPattern = regexp.MustCompile(`^\d+$`)

// Store holds every match (active and soft-deleted) plus the id allocation
// counter. Ids are never reused: the counter only moves forward, and on
// restore it is recomputed as one past the highest id ever persisted.
//
// A Store is confined to the bot's event loop; it does no locking.
type Store struct {
	matches []*Match
	nextID  int
}

// NewStore returns an empty store whose first allocated id is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Restore builds a store from previously persisted state and applies the
// date-sort invariant. nextID values below a sane floor are clamped.
func Restore(matches []*Match, nextID int) *Store {
	s := &Store{matches: matches, nextID: nextID}
	for _, m := range s.matches {
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
	}
	if s.nextID < 1 {
		s.nextID = 1
	}
	s.SortByDate()
	return s
}

// Add allocates the next id, appends a new match, and re-sorts.
func (s *Store) Add(date time.Time, team, gameType, comment string) *Match {
	m := &Match{
		ID:       s.nextID,
		Date:     date,
		Team:     team,
		GameType: gameType,
		Comment:  comment,
	}
	s.nextID++
	s.matches = append(s.matches, m)
	s.SortByDate()
	return m
}

// ByID returns the match with the given id, or nil.
func (s *Store) ByID(id int) *Match {
	for _, m := range s.matches {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Matches returns the backing slice in date order. Callers must treat it as
// read-only; all mutation goes through Store methods.
func (s *Store) Matches() []*Match {
	return s.matches
}

// Len reports the total number of matches, deleted included.
func (s *Store) Len() int {
	return len(s.matches)
}

// ActiveCount reports the number of non-deleted matches.
func (s *Store) ActiveCount() int {
	n := 0
	for _, m := range s.matches {
		if !m.Deleted {
			n++
		}
	}
	return n
}

// NextID exposes the allocation counter (for status reporting).
func (s *Store) NextID() int {
	return s.nextID
}

// SortByDate restores the ascending-by-date ordering. The sort is stable so
// same-day matches keep their relative order.
func (s *Store) SortByDate() {
	sort.SliceStable(s.matches, func(i, j int) bool {
		return s.matches[i].Date.Before(s.matches[j].Date)
	})
}

// SetDate updates a match date and re-sorts.
func (s *Store) SetDate(m *Match, date time.Time) {
	m.Date = date
	s.SortByDate()
}

func (s *Store) SetTeam(m *Match, team string)         { m.Team = team }
func (s *Store) SetGameType(m *Match, gameType string) { m.GameType = gameType }
func (s *Store) SetComment(m *Match, comment string)   { m.Comment = comment }
func (s *Store) SetDeleted(m *Match, deleted bool)     { m.Deleted = deleted }

// SetYes moves name into the yes list, removing it from maybe/no. It returns
// false without mutating when the name is already in the yes list.
func (s *Store) SetYes(m *Match, name string) bool {
	if contains(m.Yes, name) {
		return false
	}
	m.Yes = append(m.Yes, name)
	m.Maybe = remove(m.Maybe, name)
	m.No = remove(m.No, name)
	return true
}

// SetMaybe moves name into the maybe list, removing it from yes/no.
func (s *Store) SetMaybe(m *Match, name string) bool {
	if contains(m.Maybe, name) {
		return false
	}
	m.Maybe = append(m.Maybe, name)
	m.Yes = remove(m.Yes, name)
	m.No = remove(m.No, name)
	return true
}

// SetNo moves name into the no list, removing it from yes/maybe.
func (s *Store) SetNo(m *Match, name string) bool {
	if contains(m.No, name) {
		return false
	}
	m.No = append(m.No, name)
	m.Yes = remove(m.Yes, name)
	m.Maybe = remove(m.Maybe, name)
	return true
}

// Unsign removes name from whichever list holds it. It returns false when
// the name is not signed up at all.
func (s *Store) Unsign(m *Match, name string) bool {
	if m.SignupOf(name) == SignedNone {
		return false
	}
	m.Yes = remove(m.Yes, name)
	m.Maybe = remove(m.Maybe, name)
	m.No = remove(m.No, name)
	return true
}

// Rename replaces from with to in place, checking yes, then maybe, then no,
// first occurrence wins. It returns false when from is not signed up.
func (s *Store) Rename(m *Match, from, to string) bool {
	for _, list := range [][]string{m.Yes, m.Maybe, m.No} {
		for i, n := range list {
			if n == from {
				list[i] = to
				return true
			}
		}
	}
	return false
}

// AddResult appends a played-map result to the match.
func (s *Store) AddResult(m *Match, r Result) {
	m.Results = append(m.Results, r)
}

// ResultIndex translates a user-supplied 1-based ordinal token into a
// 0-based index into the match's result list.
func (s *Store) ResultIndex(m *Match, token string) (int, error) {
	if !digitsPattern.MatchString(token) {
		return 0, ErrResultSyntax
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrResultSyntax, err)
	}
	idx := n - 1
	if idx < 0 || idx >= len(m.Results) {
		return 0, ErrResultRange
	}
	return idx, nil
}

// ResultAt returns a pointer to the result at idx for field updates.
func (s *Store) ResultAt(m *Match, idx int) *Result {
	return &m.Results[idx]
}

// DeleteResult removes the result at idx, preserving order of the rest.
func (s *Store) DeleteResult(m *Match, idx int) {
	m.Results = append(m.Results[:idx], m.Results[idx+1:]...)
}

// Reresolve maps every name in every signup list through resolve. Invoked
// after the alias table changes so previously recorded signups pick up the
// new mapping.
func (s *Store) Reresolve(resolve func(string) string) {
	for _, m := range s.matches {
		for _, list := range [][]string{m.Yes, m.Maybe, m.No} {
			for i, n := range list {
				list[i] = resolve(n)
			}
		}
	}
}
