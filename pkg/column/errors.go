package column

import (
	"strconv"
)

// OverflowError says a value does not fit in its columns when writing.
type OverflowError struct {
	Span  Span
	Kind  Kind
	Value string // the text we would have liked to write
}

func (e *OverflowError) Error() string {
	return e.Kind.String() + " " + strconv.Quote(e.Value) + " does not fit in " +
		e.Span.String()
}

// MalformedError says the text in a numeric span could not be read.
type MalformedError struct {
	Span Span
	Kind Kind
	Text string
}

func (e *MalformedError) Error() string {
	return "cannot read " + e.Kind.String() + " from " + strconv.Quote(e.Text) +
		" in " + e.Span.String()
}
