package record

import (
	"fmt"
)

// RecordError means one line was refused. It does not stop the rest
// of the file being read.
type RecordError struct {
	Line    int    // line number in the file, from 1. 0 if not known
	Keyword string // columns 1-6 of the line
	Text    string // the offending line
	Err     error  // what went wrong, often several field errors joined
}

func (e *RecordError) Error() string {
	s := ""
	if e.Line > 0 {
		s = fmt.Sprintf("line %d: ", e.Line)
	}
	s += e.Keyword + ": " + e.Err.Error()
	if e.Text != "" {
		s += "\n" + e.Text
	}
	return s
}

func (e *RecordError) Unwrap() error { return e.Err }

// OrderError is a record that is well formed, but turns up where the
// grammar does not allow it. Nested MODELs, ANISOU after the wrong
// atom, two CRYST1s.
type OrderError struct {
	Msg string
}

func (e *OrderError) Error() string { return "record order: " + e.Msg }

// Orderf is a convenience for making an *OrderError.
func Orderf(format string, a ...any) error {
	return &OrderError{Msg: fmt.Sprintf(format, a...)}
}

// WarnKind says what sort of consistency problem was seen.
type WarnKind byte

const (
	WarnMaster       WarnKind = iota // MASTER disagrees with the records
	WarnMissingEnd                   // no END record
	WarnUnresolved                   // a reference points at nothing
	WarnTerChain                     // atoms after TER in the same chain
	WarnContinuation                 // continuation numbers out of sequence
	WarnLineLength                   // text past column 80 was cut off
	WarnAfterEnd                     // records after END
	WarnIncomplete                   // a transform without all three rows
	WarnInserted                     // we had to add a record, like ENDMDL
	WarnCount                        // a count in a record disagrees with the records
)

var warnNames = [...]string{
	WarnMaster:       "master",
	WarnMissingEnd:   "missing end",
	WarnUnresolved:   "unresolved",
	WarnTerChain:     "ter chain",
	WarnContinuation: "continuation",
	WarnLineLength:   "line length",
	WarnAfterEnd:     "after end",
	WarnIncomplete:   "incomplete",
	WarnInserted:     "inserted",
	WarnCount:        "count",
}

func (k WarnKind) String() string {
	if int(k) < len(warnNames) {
		return warnNames[k]
	}
	return fmt.Sprintf("warnkind(%d)", int(k))
}

// Warning is a consistency problem that does not stop us using the
// entry.
type Warning struct {
	Line int // 0 when the problem is not attached to one line
	Kind WarnKind
	Msg  string
}

// Warnf makes a Warning.
func Warnf(line int, kind WarnKind, format string, a ...any) Warning {
	return Warning{Line: line, Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

func (w Warning) String() string {
	if w.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s", w.Line, w.Kind, w.Msg)
	}
	return w.Kind.String() + ": " + w.Msg
}
