// Package section groups records by the part of the file they belong
// to and applies the rules that only need one part: continuation
// numbers, MODEL/ENDMDL nesting, CRYST1 before transforms.
// Rules that need records from several parts (HET against HETATM,
// HELIX against the sequence, CONECT against atoms) are the Check
// functions. They look at a finished list of records and change
// nothing.
// There are also views which join multi-line records into what a
// reader wants: a title, a sequence, a transform matrix.
package section

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// Item is a record and the line it was read from. Line is 0 for
// records made by a program rather than read.
type Item struct {
	Line int
	Rec  record.Record
}

// Parser accepts the records of one category in file order.
type Parser interface {
	// Claims says if this parser handles the keyword.
	Claims(kw string) bool
	// Add takes the next record. An error means the record is refused
	// and should not go in the entry.
	Add(line int, r record.Record) error
	// Finish is called after the last line. It returns records that
	// have to be added after the last one this parser accepted, and
	// any warnings.
	Finish() ([]record.Record, []record.Warning)
}

// New returns a fresh set of parsers in the order of the format
// grammar. The first one that claims a keyword gets it.
func New() []Parser {
	return []Parser{
		newAnnotation(),
		newPrimary(),
		newHeterogen(),
		newSecondary(),
		newCrystal(),
		newCoordinates(),
		newConnect(),
		newBookkeeping(),
	}
}

// ClaimedBy returns the first parser that claims kw, or nil.
func ClaimedBy(parsers []Parser, kw string) Parser {
	for _, p := range parsers {
		if p.Claims(kw) {
			return p
		}
	}
	return nil
}

// keywords is a set of keywords, used by parsers for Claims
type keywords map[string]bool

func kwSet(kws ...string) keywords {
	k := make(keywords, len(kws))
	for _, s := range kws {
		k[s] = true
	}
	return k
}

func (k keywords) Claims(kw string) bool { return k[kw] }

// once is for records like HEADER that may appear only once
type once map[string]int

// see returns an error if kw has been seen before
func (o once) see(line int, kw string) error {
	if prev, dup := o[kw]; dup {
		return record.Orderf("second %s record, first at line %d", kw, prev)
	}
	o[kw] = line
	return nil
}

// contTracker follows continuation numbers of one group of lines.
// A blank continuation number means 1.
type contTracker struct {
	last   map[string]int
	single bool // only one logical record per key is allowed
}

func newContTracker(single bool) *contTracker {
	return &contTracker{last: make(map[string]int), single: single}
}

// next checks cont against the line before with the same key.
func (c *contTracker) next(line int, key string, cont int) (w record.Warning, bad bool) {
	prev, seen := c.last[key]
	c.last[key] = cont
	switch {
	case cont <= 1 && !seen:
		return w, false
	case cont <= 1 && c.single:
		return record.Warnf(line, record.WarnContinuation, "%s starts again", key), true
	case cont <= 1:
		return w, false
	case cont != prev+1:
		return record.Warnf(line, record.WarnContinuation,
			"%s continuation %d follows %d", key, cont, prev), true
	}
	return w, false
}

// contVal turns a continuation field into a number, blank being 1
func contVal(c column.Int) int {
	if !c.Valid {
		return 1
	}
	return c.Val
}
