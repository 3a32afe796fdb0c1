package column

import (
	"errors"
	"strconv"
	"strings"
)

// Encoder builds one 80 column line. Like the Decoder, it keeps going
// after a field fails and returns all the problems from Line().
type Encoder struct {
	buf  [LineLen]byte
	errs []error
}

// NewEncoder starts a line with the keyword in columns 1-6.
func NewEncoder(keyword string) *Encoder {
	e := new(Encoder)
	for i := range e.buf {
		e.buf[i] = ' '
	}
	e.Str(Cols(1, 6), keyword)
	return e
}

// Line returns the finished 80 columns and any field errors.
func (e *Encoder) Line() (string, error) {
	return string(e.buf[:]), errors.Join(e.errs...)
}

// Overflow records that v would not fit in s. Schemas use it for
// repeated fields with too many values.
func (e *Encoder) Overflow(s Span, k Kind, v string) {
	e.errs = append(e.errs, &OverflowError{Span: s, Kind: k, Value: v})
}

// put copies text into the span. Left says which side to justify.
// Text that is too wide is an error, never silently truncated.
func (e *Encoder) put(s Span, k Kind, t string, left bool) {
	w := s.Width()
	if len(t) > w {
		e.Overflow(s, k, t)
		return
	}
	off := s.Start
	if !left {
		off += w - len(t)
	}
	copy(e.buf[off:], t)
}

// Int writes a right-justified integer. Absent values stay blank.
func (e *Encoder) Int(s Span, v Int) {
	if v.Valid {
		e.put(s, KindInt, strconv.Itoa(v.Val), false)
	}
}

// Serial writes an atom serial number, wrapping if it is too big.
func (e *Encoder) Serial(s Span, v Int) {
	if v.Valid {
		e.put(s, KindSerial, strconv.Itoa(WrapSerial(v.Val, s.Width())), false)
	}
}

// Real writes a right-justified number with prec decimals.
func (e *Encoder) Real(s Span, prec int, v Real) {
	if v.Valid {
		e.put(s, KindReal, strconv.FormatFloat(v.Val, 'f', prec, 64), false)
	}
}

// Str writes left-justified text.
func (e *Encoder) Str(s Span, v string) { e.put(s, KindStr, v, true) }

// RStr writes right-justified text.
func (e *Encoder) RStr(s Span, v string) { e.put(s, KindRStr, v, false) }

// Char writes one column. A zero byte is written as a blank.
func (e *Encoder) Char(s Span, c byte) {
	if c == 0 {
		c = ' '
	}
	e.buf[s.Start] = c
}

// Literal writes a fixed token.
func (e *Encoder) Literal(s Span, v string) { e.put(s, KindLiteral, v, false) }

// AtomName writes a name into a four column atom name field.
// raw is the field as it was read, or "" for a name made in code. If
// raw still holds name it goes back unchanged, since the alignment
// tells calcium "CA  " from an alpha carbon " CA " and that cannot be
// rebuilt without an element.
// Otherwise four character names fill the field. If the name starts
// with the element symbol and the symbol has two letters (FE, CA for
// calcium) the name starts in the first column. Otherwise the name
// starts in the second column.
func (e *Encoder) AtomName(s Span, name, element, raw string) {
	if len(raw) == s.Width() && strings.TrimSpace(raw) == name {
		e.put(s, KindAtomName, raw, true)
		return
	}
	e.put(s, KindAtomName, AlignAtomName(name, element, s.Width()), true)
}

// AlignAtomName applies the alignment rule used by AtomName.
func AlignAtomName(name, element string, width int) string {
	if len(name) >= width || name == "" {
		return name
	}
	if len(element) == 2 && len(name) >= 2 && name[:2] == element {
		return name
	}
	return " " + name
}
