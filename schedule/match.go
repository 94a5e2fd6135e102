// Package schedule owns the in-memory roster of matches: the entity model,
// id allocation, date-ordered access, and the signup transitions. All
// mutation goes through Store methods so the list invariants (unique ids,
// mutually exclusive signup lists, date ordering) hold in one place.
package schedule

import "time"

// Match is one scheduled event. The Yes/Maybe/No lists hold display names in
// signup order; a name appears in at most one of the three at any time.
// Deleted is a soft flag: a deleted match with results is kept around as an
// audit trail but excluded from active listings.
type Match struct {
	ID       int
	Date     time.Time
	Team     string
	GameType string
	Comment  string
	Yes      []string
	Maybe    []string
	No       []string
	Results  []Result
	Deleted  bool
}

// Result is the outcome of one played map within a match.
type Result struct {
	Map        string
	Team       string
	OurScore   int
	TheirScore int
	Comment    string
}

// Signup is a name's membership state across a match's three lists.
type Signup int

const (
	SignedNone Signup = iota
	SignedYes
	SignedMaybe
	SignedNo
)

// SignupOf reports which list, if any, contains name.
func (m *Match) SignupOf(name string) Signup {
	switch {
	case contains(m.Yes, name):
		return SignedYes
	case contains(m.Maybe, name):
		return SignedMaybe
	case contains(m.No, name):
		return SignedNo
	}
	return SignedNone
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func remove(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
