package column

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Decoder reads fields from one line. A broken field does not stop
// us reading the rest of the line. Errors are saved and handed back
// together by Err().
type Decoder struct {
	line string
	errs []error
}

// NewDecoder pads or cuts the line to 80 columns.
func NewDecoder(line string) *Decoder {
	return &Decoder{line: Pad(line)}
}

// Text returns the raw columns of a span.
func (d *Decoder) Text(s Span) string { return d.line[s.Start:s.End] }

// Err joins all the field errors seen so far, or nil.
func (d *Decoder) Err() error { return errors.Join(d.errs...) }

func (d *Decoder) fail(s Span, k Kind, text string) {
	d.errs = append(d.errs, &MalformedError{Span: s, Kind: k, Text: text})
}

// Int reads a right-justified integer. Blank is absent, not zero.
func (d *Decoder) Int(s Span) Int {
	t := strings.TrimSpace(d.Text(s))
	if t == "" {
		return Int{}
	}
	v, err := strconv.Atoi(t)
	if err != nil {
		d.fail(s, KindInt, t)
		return Int{}
	}
	return IntOf(v)
}

// Serial reads an atom serial number. Reading is the same as Int.
// Only writing differs.
func (d *Decoder) Serial(s Span) Int { return d.Int(s) }

// Real reads a floating point number. We expect a decimal point, but
// do not insist on one since some programs write "1" for occupancy.
func (d *Decoder) Real(s Span) Real {
	t := strings.TrimSpace(d.Text(s))
	if t == "" {
		return Real{}
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		d.fail(s, KindReal, t)
		return Real{}
	}
	return RealOf(v)
}

// Str reads left-justified text. Trailing blanks go, leading and
// interior blanks stay, since in REMARK and JRNL lines they carry
// layout.
func (d *Decoder) Str(s Span) string {
	return strings.TrimRight(d.Text(s), " ")
}

// RStr reads right-justified text such as residue names.
func (d *Decoder) RStr(s Span) string {
	return strings.TrimSpace(d.Text(s))
}

// AtomName reads a four column atom name. The name comes without
// blanks and raw is the field as it stands, to be handed back to
// Encoder.AtomName.
func (d *Decoder) AtomName(s Span) (name, raw string) {
	raw = d.Text(s)
	return strings.TrimSpace(raw), raw
}

// Char reads a single column. Blank comes back as ' '.
func (d *Decoder) Char(s Span) byte { return d.line[s.Start] }

// Literal checks that a span holds a fixed token, or is blank.
func (d *Decoder) Literal(s Span, want string) {
	t := strings.TrimSpace(d.Text(s))
	if t != "" && t != want {
		d.fail(s, KindLiteral, t)
	}
}
