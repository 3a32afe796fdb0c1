// Package record has one type per PDB record keyword. Each type knows
// its own column layout and can read itself from, or write itself to,
// exactly one physical line.
// Records which continue over several lines (TITLE, REMARK, SEQRES ...)
// carry their continuation number, but joining the lines is left to
// the section package.
package record

import (
	"strings"

	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Category is the part of the file a record belongs to. The values
// are in the order the format grammar wants them.
type Category byte

const (
	Title       Category = iota // HEADER, TITLE, ... REMARK
	Primary                     // DBREF, SEQADV, SEQRES, MODRES
	Heterogen                   // HET, HETNAM, HETSYN, FORMUL
	Secondary                   // HELIX, SHEET, TURN, SSBOND, LINK, CISPEP, SITE
	Crystal                     // CRYST1, ORIGXn, SCALEn, MTRIXn
	Coordinate                  // MODEL, ATOM, HETATM, ANISOU, TER, ENDMDL
	Connect                     // CONECT
	Bookkeeping                 // MASTER, END
)

var catNames = [...]string{
	Title:       "title",
	Primary:     "primary structure",
	Heterogen:   "heterogen",
	Secondary:   "secondary structure",
	Crystal:     "crystallographic",
	Coordinate:  "coordinate",
	Connect:     "connectivity",
	Bookkeeping: "bookkeeping",
}

func (c Category) String() string {
	if int(c) < len(catNames) {
		return catNames[c]
	}
	return "unknown"
}

// Record is one physical line. The set of types is closed, so callers
// can switch on the concrete type.
type Record interface {
	Keyword() string
	Category() Category
	Format() (string, error) // exactly 80 columns, no newline
	isRecord()
}

// kwSpan is where every keyword lives
var kwSpan = column.Cols(1, 6)

// decodeFn reads the fields of one keyword from a line
type decodeFn func(d *column.Decoder, kw string) Record

var registry = map[string]decodeFn{}

// register is called from init() in each of the files with record types
func register(fn decodeFn, keywords ...string) {
	for _, kw := range keywords {
		if _, dup := registry[kw]; dup {
			panic("record: keyword registered twice " + kw)
		}
		registry[kw] = fn
	}
}

// KeywordOf returns columns 1-6 without trailing blanks. A keyword
// has to be left-justified, so a line starting with a blank gives "".
func KeywordOf(line string) string {
	if line == "" || line[0] == ' ' {
		return ""
	}
	return strings.TrimRight(column.Pad(line)[kwSpan.Start:kwSpan.End], " ")
}

// Known says if we have a schema for a keyword.
func Known(kw string) bool {
	_, ok := registry[kw]
	return ok
}

// Parse reads one line. A keyword we do not know about is not an
// error. It comes back as an *Unknown holding the text.
// If any field cannot be read, the whole record is refused and the
// error is a *RecordError with all the field problems joined.
// The caller fills in the line number.
func Parse(line string) (Record, error) {
	line = strings.TrimRight(line, " \r\n")
	kw := KeywordOf(line)
	fn, ok := registry[kw]
	if !ok {
		return &Unknown{Text: line}, nil
	}
	d := column.NewDecoder(line)
	r := fn(d, kw)
	if err := d.Err(); err != nil {
		return nil, &RecordError{Keyword: kw, Text: line, Err: err}
	}
	return r, nil
}

// Unknown is a line whose keyword we do not recognise. We keep it so
// writing the entry back out does not lose anything.
type Unknown struct {
	Text string   // right-trimmed original line
	Cat  Category // borrowed from the record before it
	Rank int      // likewise, so sorting leaves it where it was
}

func (u *Unknown) Keyword() string         { return KeywordOf(u.Text) }
func (u *Unknown) Category() Category      { return u.Cat }
func (u *Unknown) Format() (string, error) { return column.Pad(u.Text), nil }
func (*Unknown) isRecord()                 {}

// resSpans are the columns of a Residue in one record type
type resSpans struct {
	name, chain, seq, icode column.Span
}

func cols4(n1, n2, c, s1, s2, i int) resSpans {
	return resSpans{column.Cols(n1, n2), column.Col(c), column.Cols(s1, s2), column.Col(i)}
}

// Residue names one residue: name, chain, sequence number and
// insertion code.
type Residue struct {
	Name  string
	Chain byte
	Seq   column.Int
	ICode byte
}

// Blank is true for an unused residue slot.
func (r Residue) Blank() bool {
	return r.Name == "" && !r.Seq.Valid && (r.Chain == 0 || r.Chain == ' ')
}

func (s resSpans) get(d *column.Decoder) Residue {
	return Residue{
		Name:  d.RStr(s.name),
		Chain: d.Char(s.chain),
		Seq:   d.Int(s.seq),
		ICode: d.Char(s.icode),
	}
}

func (s resSpans) put(e *column.Encoder, r Residue) {
	e.RStr(s.name, r.Name)
	e.Char(s.chain, r.Chain)
	e.Int(s.seq, r.Seq)
	e.Char(s.icode, r.ICode)
}

// slots is a run of equally spaced fields, like the residue names
// in SEQRES.
type slots struct {
	first, width, step, n int
	left                  bool // left-justified text
}

func (s slots) span(i int) column.Span {
	c := s.first + i*s.step
	return column.Cols(c, c+s.width-1)
}

// getStr reads all slots, dropping blank ones at the end.
func (s slots) getStr(d *column.Decoder) []string {
	var ret []string
	for i := 0; i < s.n; i++ {
		ret = append(ret, d.RStr(s.span(i))) // same for both justifications
	}
	for len(ret) > 0 && ret[len(ret)-1] == "" {
		ret = ret[:len(ret)-1]
	}
	return ret
}

func (s slots) putStr(e *column.Encoder, v []string) {
	if len(v) > s.n {
		all := column.Cols(s.first, s.first+(s.n-1)*s.step+s.width-1)
		e.Overflow(all, column.KindRStr, strings.Join(v, " "))
		return
	}
	for i, x := range v {
		if s.left {
			e.Str(s.span(i), x)
		} else {
			e.RStr(s.span(i), x)
		}
	}
}
