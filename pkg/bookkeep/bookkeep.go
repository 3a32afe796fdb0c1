// Package bookkeep counts records the way the MASTER record does,
// checks a MASTER against the count, and checks that an entry ends
// with END.
// Nothing here is fatal. Problems come back as warnings.
package bookkeep

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

// Tally is what the MASTER record of an entry should say, plus the
// number of lines of each keyword.
// Coord and Ter count the first model only, as is done for NMR
// ensembles. Everything else counts the whole entry.
type Tally struct {
	Counts map[string]int // lines per keyword, all models

	Remark, Het, Helix, Sheet, Turn, Site int
	Xform, Coord, Ter, Conect, Seq        int
	Models                                int // MODEL records
}

// Count works out the tally of a list of records.
func Count(recs []record.Record) Tally {
	t := Tally{Counts: make(map[string]int)}
	firstModel := true
	for _, r := range recs {
		kw := r.Keyword()
		t.Counts[kw]++
		switch r.(type) {
		case *record.Remark:
			t.Remark++
		case *record.Het:
			t.Het++
		case *record.Helix:
			t.Helix++
		case *record.Sheet:
			t.Sheet++
		case *record.Turn:
			t.Turn++
		case *record.Site:
			t.Site++
		case *record.Xform:
			t.Xform++
		case *record.Conect:
			t.Conect++
		case *record.Seqres:
			t.Seq++
		case *record.Model:
			t.Models++
		case *record.Endmdl:
			firstModel = false
		case *record.Atom:
			if firstModel {
				t.Coord++
			}
		case *record.Ter:
			if firstModel {
				t.Ter++
			}
		}
	}
	return t
}

// Master returns a MASTER record that agrees with the tally.
func (t Tally) Master() *record.Master {
	m := new(record.Master)
	vals := t.values()
	for i, f := range m.Fields() {
		*f.Val = column.IntOf(vals[i])
	}
	return m
}

// values are in the order of record.Master.Fields
func (t Tally) values() []int {
	return []int{t.Remark, t.Het, t.Helix, t.Sheet, t.Turn, t.Site,
		t.Xform, t.Coord, t.Ter, t.Conect, t.Seq}
}

// Compare gives one warning for each count in m that disagrees with
// the tally. A blank count disagrees with everything.
func Compare(t Tally, m *record.Master) []record.Warning {
	var warn []record.Warning
	vals := t.values()
	for i, f := range m.Fields() {
		if !f.Val.Valid {
			warn = append(warn, record.Warnf(0, record.WarnMaster,
				"%s is blank, counted %d", f.Name, vals[i]))
		} else if f.Val.Val != vals[i] {
			warn = append(warn, record.Warnf(0, record.WarnMaster,
				"%s is %d, counted %d", f.Name, f.Val.Val, vals[i]))
		}
	}
	return warn
}

// CheckEnd wants an END record as the last record.
func CheckEnd(items []section.Item) []record.Warning {
	end := -1
	for i, it := range items {
		if _, ok := it.Rec.(*record.End); ok {
			end = i
			break
		}
	}
	if end < 0 {
		return []record.Warning{record.Warnf(0, record.WarnMissingEnd, "no END record")}
	}
	var warn []record.Warning
	for _, it := range items[end+1:] {
		warn = append(warn, record.Warnf(it.Line, record.WarnAfterEnd,
			"%s after END", it.Rec.Keyword()))
	}
	return warn
}

// Validate runs all the bookkeeping checks. Entries without a MASTER
// are fine, since the record is optional.
func Validate(items []section.Item) []record.Warning {
	recs := make([]record.Record, len(items))
	for i, it := range items {
		recs[i] = it.Rec
	}
	t := Count(recs)
	var warn []record.Warning
	for _, it := range items {
		switch r := it.Rec.(type) {
		case *record.Master:
			for _, w := range Compare(t, r) {
				w.Line = it.Line
				warn = append(warn, w)
			}
		case *record.Nummdl:
			if r.Count.Valid && r.Count.Val != t.Models {
				warn = append(warn, record.Warnf(it.Line, record.WarnCount,
					"NUMMDL says %d models, found %d", r.Count.Val, t.Models))
			}
		}
	}
	return append(warn, CheckEnd(items)...)
}
