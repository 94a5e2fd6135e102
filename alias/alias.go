// Package alias implements the single-level name substitution table: an
// alternate identity (slave) maps to a canonical one (master). Resolution is
// deliberately not transitive; a master is never itself re-resolved.
package alias

import "sort"

// Table maps slave names to master names.
type Table struct {
	m map[string]string
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{m: make(map[string]string)}
}

// Resolve returns the master for name when an alias exists, or name itself.
func (t *Table) Resolve(name string) string {
	if master, ok := t.m[name]; ok {
		return master
	}
	return name
}

// Set records slave→master, returning true when an existing alias for slave
// was replaced.
func (t *Table) Set(master, slave string) bool {
	_, existed := t.m[slave]
	t.m[slave] = master
	return existed
}

// Delete removes the alias for slave, reporting whether it existed.
func (t *Table) Delete(slave string) bool {
	if _, ok := t.m[slave]; !ok {
		return false
	}
	delete(t.m, slave)
	return true
}

// Master looks up the mapping for slave.
func (t *Table) Master(slave string) (string, bool) {
	master, ok := t.m[slave]
	return master, ok
}

// Len reports the number of aliases.
func (t *Table) Len() int {
	return len(t.m)
}

// Slaves returns all slave names in sorted order, so that persisted output
// is deterministic.
func (t *Table) Slaves() []string {
	out := make([]string, 0, len(t.m))
	for slave := range t.m {
		out = append(out, slave)
	}
	sort.Strings(out)
	return out
}
