// 14 Oct 2026

// Package entry puts the records of a PDB file together into one
// Entry. Parse reads a whole file, routing each line to the section
// parser that claims its keyword, then runs the checks that need more
// than one section. Serialize writes the entry back out, by default in
// the order the format wants, with a MASTER record that agrees with
// what is written.
// An Entry is not safe for use by several goroutines at once.
package entry

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/andrew-torda/oldpdb/pkg/bookkeep"
	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

// Entry is an ordered list of records and some indices built from
// them on demand.
type Entry struct {
	items []section.Item
	cache *index // nil after any change
}

// ErrorList collects record errors. A record in the list was left out
// of the entry, or out of the output, and everything else carried on.
type ErrorList []error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

// Unwrap lets errors.As find a *record.RecordError in the list.
func (l ErrorList) Unwrap() []error { return l }

// Err returns nil for an empty list, so a caller can check err != nil.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}

// splitLines takes care of CRLF, a missing final newline and lines
// too long for the format.
func splitLines(text []byte) (lines []string, warn []record.Warning) {
	text = bytes.TrimSuffix(text, []byte("\n"))
	if len(text) == 0 {
		return nil, nil
	}
	for i, b := range bytes.Split(text, []byte("\n")) {
		s := strings.TrimRight(string(b), "\r")
		if len(s) > column.LineLen {
			if strings.TrimSpace(s[column.LineLen:]) != "" {
				warn = append(warn, record.Warnf(i+1, record.WarnLineLength,
					"%d characters, cut to %d", len(s), column.LineLen))
			}
			s = s[:column.LineLen]
		}
		lines = append(lines, s)
	}
	return lines, warn
}

// Parse reads the text of a whole PDB file.
// The Entry is always usable. Lines that could not be read, or that
// break an ordering rule, are left out and listed in the error, which
// is then an ErrorList of *record.RecordError. Warnings are problems
// which did not stop anything, in order of line number.
func Parse(text []byte) (*Entry, []record.Warning, error) {
	lines, warn := splitLines(text)
	var errs ErrorList
	var items []section.Item
	var texts []string
	prevCat, prevRank := record.Title, 0
	for i, line := range lines {
		n := i + 1
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := record.Parse(line)
		if err != nil {
			if re, ok := err.(*record.RecordError); ok {
				re.Line = n
			}
			errs = append(errs, err)
			continue
		}
		if u, ok := r.(*record.Unknown); ok {
			u.Cat, u.Rank = prevCat, prevRank
		}
		prevCat, prevRank = r.Category(), record.Rank(r)
		items = append(items, section.Item{Line: n, Rec: r})
		texts = append(texts, strings.TrimRight(line, " "))
	}
	kept, w, e := ingest(items, texts, true)
	warn = append(warn, w...)
	errs = append(errs, e...)
	sortWarnings(warn)
	return &Entry{items: kept}, warn, errs.Err()
}

// ingest runs items through a fresh set of section parsers. Records a
// parser refuses are dropped and become errors. With insert set, the
// records the parsers make up at the end (a missing ENDMDL) go in
// after the last record of the same parser.
// texts are the original lines for error messages and may be nil.
func ingest(items []section.Item, texts []string, insert bool) ([]section.Item, []record.Warning, ErrorList) {
	parsers := section.New()
	last := make(map[section.Parser]int) // index in kept of last accepted record
	var kept []section.Item
	var errs ErrorList
	for i, it := range items {
		p := section.ClaimedBy(parsers, it.Rec.Keyword())
		if p != nil {
			if err := p.Add(it.Line, it.Rec); err != nil {
				var txt string
				if texts != nil {
					txt = texts[i]
				} else {
					txt = textOf(it.Rec)
				}
				errs = append(errs, &record.RecordError{
					Line: it.Line, Keyword: it.Rec.Keyword(), Text: txt, Err: err})
				continue
			}
			last[p] = len(kept)
		}
		kept = append(kept, it)
	}

	type addition struct {
		after int
		recs  []record.Record
	}
	var warn []record.Warning
	var adds []addition
	for _, p := range parsers {
		extra, w := p.Finish()
		warn = append(warn, w...)
		if len(extra) == 0 {
			continue
		}
		after, ok := last[p]
		if !ok {
			after = len(kept) - 1
		}
		adds = append(adds, addition{after, extra})
	}
	if insert {
		sort.Slice(adds, func(i, j int) bool { return adds[i].after > adds[j].after })
		for _, a := range adds {
			var in []section.Item
			for _, r := range a.recs {
				in = append(in, section.Item{Rec: r})
			}
			kept = splice(kept, a.after+1, in...)
		}
	}

	warn = append(warn, section.CheckHeterogen(kept)...)
	warn = append(warn, section.CheckSecondary(kept)...)
	warn = append(warn, section.CheckConnect(kept)...)
	warn = append(warn, bookkeep.Validate(kept)...)
	return kept, warn, errs
}

// splice inserts items at position i.
func splice(s []section.Item, i int, in ...section.Item) []section.Item {
	ret := make([]section.Item, 0, len(s)+len(in))
	ret = append(ret, s[:i]...)
	ret = append(ret, in...)
	return append(ret, s[i:]...)
}

// textOf is a record as a line without trailing blanks. It is only
// for messages.
func textOf(r record.Record) string {
	s, _ := r.Format()
	return strings.TrimRight(s, " ")
}

// sortWarnings puts warnings in line order. Warnings about the whole
// entry, with no line, go last.
func sortWarnings(w []record.Warning) {
	key := func(i int) int {
		if w[i].Line == 0 {
			return int(^uint(0) >> 1)
		}
		return w[i].Line
	}
	sort.SliceStable(w, func(i, j int) bool { return key(i) < key(j) })
}

// Validate runs every check again on the records as they are now.
// Nothing is changed. Records that would be refused on reading are
// reported in the ErrorList.
func (e *Entry) Validate() ([]record.Warning, error) {
	_, warn, errs := ingest(e.items, nil, false)
	sortWarnings(warn)
	return warn, errs.Err()
}
