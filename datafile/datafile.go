// Package datafile persists the match roster and alias table to an INI
// document and restores them at startup. The format is a compatibility
// contract with existing data files: section "Aliases" holds slave=master
// pairs, every other section is named by a decimal match id and holds the
// match fields, with results on Result0..ResultN-1 lines.
//
// Saving always copies the current file to a backup first, so a failed write
// leaves the previous good state recoverable. Loading is fail-fast: any
// structurally invalid section is an error and the caller is expected to
// abort startup rather than run on corrupt data.
package datafile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/onnwee/matchbot/alias"
	"github.com/onnwee/matchbot/schedule"
)

const aliasSection = "Aliases"

var (
	sectionIDPattern = regexp.MustCompile(`^\d+$`)
	resultPattern    = regexp.MustCompile(`^(\w+) (\w+) (\d+) (\d+)( (.*))?$`)
)

func init() {
	// Historic data files use bare Key=value lines; keep writing them that
	// way instead of go-ini's default "Key = value".
	ini.PrettyFormat = false
}

// State is everything Load recovers from a data file.
type State struct {
	Matches []*schedule.Match
	Aliases *alias.Table
	NextID  int
}

// BackupPath derives the backup file name from the data file path:
// matchbotdata.ini becomes matchbotdata-old.ini.
func BackupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-old" + ext
}

// Save writes aliases and matches to path, copying the existing file to its
// backup first. Soft-deleted matches with no results are dropped; deleted
// matches that have results are written with Deleted=Yes as an audit trail.
func Save(path string, aliases *alias.Table, matches []*schedule.Match) error {
	if err := backup(path); err != nil {
		return fmt.Errorf("backup before save: %w", err)
	}

	doc := ini.Empty()
	sec, err := doc.NewSection(aliasSection)
	if err != nil {
		return err
	}
	for _, slave := range aliases.Slaves() {
		master, _ := aliases.Master(slave)
		if _, err := sec.NewKey(slave, master); err != nil {
			return err
		}
	}

	for _, m := range matches {
		if m.Deleted && len(m.Results) == 0 {
			continue
		}
		sec, err := doc.NewSection(strconv.Itoa(m.ID))
		if err != nil {
			return err
		}
		set := func(key, value string) {
			if err == nil {
				_, err = sec.NewKey(key, value)
			}
		}
		set("Date", m.Date.Format(schedule.DateLayout))
		set("Team", m.Team)
		set("GameType", m.GameType)
		set("Comment", m.Comment)
		set("Yes", strings.Join(m.Yes, " "))
		set("Maybe", strings.Join(m.Maybe, " "))
		set("No", strings.Join(m.No, " "))
		if m.Deleted {
			set("Deleted", "Yes")
		} else {
			set("Deleted", "No")
		}
		set("ResultCount", strconv.Itoa(len(m.Results)))
		for i, r := range m.Results {
			line := fmt.Sprintf("%s %s %d %d", r.Map, r.Team, r.OurScore, r.TheirScore)
			if r.Comment != "" {
				line += " " + r.Comment
			}
			set("Result"+strconv.Itoa(i), line)
		}
		if err != nil {
			return err
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// backup copies path to BackupPath(path), overwriting any prior backup. A
// missing source file (fresh install) is not an error.
func backup(path string) error {
	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(BackupPath(path))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// Load reads the data file at path. A missing file yields a fresh empty
// state. Any malformed section name, date, result count, or result line is
// an error; no partially loaded state is returned.
//
// Loaded signup names are resolved against the freshly loaded alias table.
// Sections marked Deleted=Yes are skipped, but their ids still advance the
// allocation counter so ids are never reused.
func Load(path string) (*State, error) {
	st := &State{Aliases: alias.NewTable(), NextID: 1}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return st, nil
	}

	doc, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if sec, err := doc.GetSection(aliasSection); err == nil {
		for _, key := range sec.Keys() {
			st.Aliases.Set(key.Value(), key.Name())
		}
	}

	for _, sec := range doc.Sections() {
		name := sec.Name()
		if name == ini.DefaultSection || name == aliasSection {
			continue
		}
		if !sectionIDPattern.MatchString(name) {
			return nil, fmt.Errorf("%s: invalid section name %q", path, name)
		}
		id, err := strconv.Atoi(name)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid section name %q: %w", path, name, err)
		}
		if id >= st.NextID {
			st.NextID = id + 1
		}
		if sec.Key("Deleted").String() == "Yes" {
			continue
		}

		m, err := loadMatch(sec, id, st.Aliases)
		if err != nil {
			return nil, fmt.Errorf("%s: section %s: %w", path, name, err)
		}
		st.Matches = append(st.Matches, m)
	}
	return st, nil
}

func loadMatch(sec *ini.Section, id int, aliases *alias.Table) (*schedule.Match, error) {
	date, err := schedule.ParseDate(sec.Key("Date").String())
	if err != nil {
		return nil, fmt.Errorf("invalid Date %q: %w", sec.Key("Date").String(), err)
	}

	m := &schedule.Match{
		ID:       id,
		Date:     date,
		Team:     sec.Key("Team").String(),
		GameType: sec.Key("GameType").String(),
		Comment:  sec.Key("Comment").String(),
		Yes:      resolveAll(strings.Fields(sec.Key("Yes").String()), aliases),
		Maybe:    resolveAll(strings.Fields(sec.Key("Maybe").String()), aliases),
		No:       resolveAll(strings.Fields(sec.Key("No").String()), aliases),
	}

	countRaw := sec.Key("ResultCount").String()
	if !sectionIDPattern.MatchString(countRaw) {
		return nil, fmt.Errorf("invalid ResultCount %q", countRaw)
	}
	count, err := strconv.Atoi(countRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid ResultCount %q: %w", countRaw, err)
	}

	for i := 0; i < count; i++ {
		raw := sec.Key("Result" + strconv.Itoa(i)).String()
		fields := resultPattern.FindStringSubmatch(raw)
		if fields == nil {
			return nil, fmt.Errorf("invalid Result%d line %q", i, raw)
		}
		our, err := strconv.Atoi(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid Result%d score %q: %w", i, fields[3], err)
		}
		their, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, fmt.Errorf("invalid Result%d score %q: %w", i, fields[4], err)
		}
		m.Results = append(m.Results, schedule.Result{
			Map:        fields[1],
			Team:       fields[2],
			OurScore:   our,
			TheirScore: their,
			Comment:    fields[6],
		})
	}
	return m, nil
}

func resolveAll(names []string, aliases *alias.Table) []string {
	for i, n := range names {
		names[i] = aliases.Resolve(n)
	}
	return names
}
