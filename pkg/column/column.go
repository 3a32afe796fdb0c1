// 14 Oct 2026

// Package column reads and writes single values in the fixed columns
// of an 80 character PDB line.
// The format document numbers columns from 1 and gives inclusive
// ranges. Internally we use zero-based, half-open spans, so
// Cols(7, 11) is the atom serial number field, line[6:11].
// Numbers that are blank are not zero. Int and Real carry a Valid
// flag so a caller can tell "  0" from "   ".
package column

import (
	"fmt"
	"strings"
)

// LineLen is the width of every line we read or write.
const LineLen = 80

// blankLine is used to pad short lines
var blankLine = strings.Repeat(" ", LineLen)

// Kind says how the text in a span is interpreted.
type Kind byte

const (
	KindInt      Kind = iota // right-justified integer
	KindSerial               // integer which wraps around instead of overflowing
	KindReal                 // fixed number of decimals
	KindStr                  // left-justified text
	KindRStr                 // right-justified text
	KindChar                 // one column
	KindAtomName             // four column atom name with its alignment rule
	KindLiteral              // fixed token like the "0" in MASTER
)

var kindNames = [...]string{
	KindInt:      "integer",
	KindSerial:   "serial",
	KindReal:     "real",
	KindStr:      "string",
	KindRStr:     "right-justified string",
	KindChar:     "character",
	KindAtomName: "atom name",
	KindLiteral:  "literal",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + fmt.Sprint(int(k)) + ")"
}

// Span is a half-open, zero-based range of columns.
type Span struct {
	Start, End int
}

// Cols takes the 1-based, inclusive numbering from the format
// document and returns the span. Schemas are static, so a bad
// span is a programming error and we panic.
func Cols(first, last int) Span {
	if first < 1 || last < first || last > LineLen {
		panic(fmt.Sprintf("column: bad span %d-%d", first, last))
	}
	return Span{Start: first - 1, End: last}
}

// Col is a span of a single column, numbered from 1.
func Col(n int) Span { return Cols(n, n) }

// Width is the number of columns covered.
func (s Span) Width() int { return s.End - s.Start }

// String gives the span back in the numbering of the format document.
func (s Span) String() string {
	if s.Width() == 1 {
		return fmt.Sprintf("column %d", s.End)
	}
	return fmt.Sprintf("columns %d-%d", s.Start+1, s.End)
}

// Pad makes sure a line is exactly LineLen long. Short lines are
// treated as if they had trailing blanks. Anything past column 80 is
// cut off. Callers who care about lost text must look before padding.
func Pad(line string) string {
	if n := len(line); n < LineLen {
		return line + blankLine[:LineLen-n]
	}
	return line[:LineLen]
}

// Int is an integer field that might have been blank.
type Int struct {
	Val   int
	Valid bool
}

// IntOf returns a present integer.
func IntOf(v int) Int { return Int{Val: v, Valid: true} }

func (i Int) String() string {
	if !i.Valid {
		return "<absent>"
	}
	return fmt.Sprint(i.Val)
}

// Real is a floating point field that might have been blank.
type Real struct {
	Val   float64
	Valid bool
}

// RealOf returns a present real.
func RealOf(v float64) Real { return Real{Val: v, Valid: true} }

func (r Real) String() string {
	if !r.Valid {
		return "<absent>"
	}
	return fmt.Sprint(r.Val)
}

// WrapSerial is the legacy convention for atom serial numbers that
// do not fit in their columns. Files with more than 99999 atoms restart
// the count from zero instead of widening the field. Negative numbers are
// left alone and will overflow honestly.
func WrapSerial(v, width int) int {
	if v < 0 {
		return v
	}
	mod := 1
	for i := 0; i < width; i++ {
		mod *= 10
	}
	return v % mod
}
