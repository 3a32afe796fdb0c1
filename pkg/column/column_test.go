package column_test

import (
	"errors"
	"strings"
	"testing"

	. "github.com/andrew-torda/oldpdb/pkg/column"
)

// at puts text starting at a 1-based column in an otherwise blank line
func at(col int, s string) string {
	return strings.Repeat(" ", col-1) + s
}

func TestCols(t *testing.T) {
	s := Cols(7, 11)
	if s.Start != 6 || s.End != 11 || s.Width() != 5 {
		t.Error("Cols(7, 11) gave", s)
	}
	if Col(22).Width() != 1 {
		t.Error("Col width")
	}
	defer func() {
		if recover() == nil {
			t.Error("span past column 80 should panic")
		}
	}()
	Cols(79, 81)
}

func TestAbsentNotZero(t *testing.T) {
	span := Cols(7, 11)
	blank := NewDecoder("ATOM").Int(span)
	zero := NewDecoder(at(7, "    0")).Int(span)
	if blank.Valid {
		t.Error("blank columns decoded as present")
	}
	if !zero.Valid || zero.Val != 0 {
		t.Error("zero decoded wrongly", zero)
	}
	if blank == zero {
		t.Error("absent and zero compare equal")
	}
	r := NewDecoder("").Real(Cols(55, 60))
	if r.Valid {
		t.Error("blank real decoded as present")
	}
}

var ints = []struct {
	text  string
	want  Int
	isErr bool
}{
	{"   12", IntOf(12), false},
	{"  -12", IntOf(-12), false},
	{"12   ", IntOf(12), false},
	{"     ", Int{}, false},
	{"  1x2", Int{}, true},
	{"1.5  ", Int{}, true},
}

func TestDecodeInt(t *testing.T) {
	for _, c := range ints {
		d := NewDecoder(at(7, c.text))
		got := d.Int(Cols(7, 11))
		if got != c.want {
			t.Errorf("%q: got %v want %v", c.text, got, c.want)
		}
		err := d.Err()
		if (err != nil) != c.isErr {
			t.Errorf("%q: error %v", c.text, err)
		}
		var me *MalformedError
		if c.isErr && !errors.As(err, &me) {
			t.Errorf("%q: want MalformedError, got %T", c.text, err)
		}
	}
}

// A broken field must not stop the rest of the line being read.
func TestDecodeKeepsGoing(t *testing.T) {
	line := "ATOM      1  N   ALA A   1      abcdef  39.292  -5.000  1.00 20.00           N"
	d := NewDecoder(line)
	x := d.Real(Cols(31, 38))
	y := d.Real(Cols(39, 46))
	if x.Valid {
		t.Error("x should be broken")
	}
	if !y.Valid || y.Val != 39.292 {
		t.Error("y not read after broken x", y)
	}
	if d.Err() == nil {
		t.Error("missing error")
	}
	if d.RStr(Cols(77, 78)) != "N" {
		t.Error("element not read")
	}
}

func TestDecodeNaN(t *testing.T) {
	d := NewDecoder(at(31, "     NaN"))
	if d.Real(Cols(31, 38)).Valid || d.Err() == nil {
		t.Error("NaN should be malformed")
	}
}

func TestStrings(t *testing.T) {
	d := NewDecoder("REMARK   2  RESOLUTION.  2.00 ANGSTROMS.   ")
	if s := d.Str(Cols(12, 79)); s != " RESOLUTION.  2.00 ANGSTROMS." {
		t.Errorf("Str kept wrong blanks: %q", s)
	}
	d = NewDecoder(at(18, "  A"))
	if s := d.RStr(Cols(18, 20)); s != "A" {
		t.Errorf("RStr: %q", s)
	}
	if c := d.Char(Col(22)); c != ' ' {
		t.Errorf("blank char: %q", c)
	}
}

func TestRealRoundTrip(t *testing.T) {
	vals := []string{"  11.104", "  -0.001", "-999.999", "   0.000", "   6.000"}
	span := Cols(31, 38)
	for _, v := range vals {
		r := NewDecoder(at(31, v)).Real(span)
		e := NewEncoder("ATOM")
		e.Real(span, 3, r)
		line, err := e.Line()
		if err != nil {
			t.Fatal(err)
		}
		if got := line[30:38]; got != v {
			t.Errorf("round trip of %q gave %q", v, got)
		}
	}
}

func TestOverflow(t *testing.T) {
	e := NewEncoder("ATOM")
	e.Real(Cols(31, 38), 3, RealOf(10000.0))
	e.Int(Cols(23, 26), IntOf(12345))
	e.Str(Cols(18, 20), "ABCD")
	line, err := e.Line()
	if len(line) != LineLen {
		t.Error("line length", len(line))
	}
	if err == nil {
		t.Fatal("expected overflow")
	}
	var oe *OverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("want OverflowError, got %T", err)
	}
	if n := strings.Count(err.Error(), "does not fit"); n != 3 {
		t.Error("want 3 overflows, got", n, err)
	}
	if strings.TrimSpace(line[30:38]) != "" {
		t.Error("overflowing value must not be written")
	}
}

var serials = []struct{ in, want int }{
	{1, 1},
	{99999, 99999},
	{100000, 0},
	{100001, 1},
	{234567, 34567},
}

func TestWrapSerial(t *testing.T) {
	for _, s := range serials {
		if got := WrapSerial(s.in, 5); got != s.want {
			t.Errorf("WrapSerial(%d) = %d want %d", s.in, got, s.want)
		}
		e := NewEncoder("ATOM")
		e.Serial(Cols(7, 11), IntOf(s.in))
		if _, err := e.Line(); err != nil {
			t.Error("serial must wrap, not overflow:", err)
		}
	}
}

var atomNames = []struct{ name, elem, want string }{
	{"CA", "C", " CA "},
	{"CA", "CA", "CA  "},
	{"N", "N", " N  "},
	{"OXT", "O", " OXT"},
	{"HG21", "H", "HG21"},
	{"FE", "FE", "FE  "},
	{"CB", "", " CB "},
}

func TestAtomName(t *testing.T) {
	span := Cols(13, 16)
	for _, a := range atomNames {
		e := NewEncoder("ATOM")
		e.AtomName(span, a.name, a.elem, "")
		line, _ := e.Line()
		if got := line[12:16]; got != a.want {
			t.Errorf("%s/%s: got %q want %q", a.name, a.elem, got, a.want)
		}
		if back, raw := NewDecoder(line).AtomName(span); back != a.name || raw != a.want {
			t.Errorf("decoded %q %q", back, raw)
		}
	}
}

// Without an element the alignment of a name that was read cannot be
// worked out again, so it is kept.
func TestAtomNameKept(t *testing.T) {
	span := Cols(13, 16)
	for _, c := range []struct{ name, raw, want string }{
		{"CA", "CA  ", "CA  "},
		{"ZN", "ZN  ", "ZN  "},
		{"CA", " CA ", " CA "},
		{"CB", "CA  ", " CB "}, // renamed, raw is stale
		{"CA", "CA", " CA "},   // not a whole field
	} {
		e := NewEncoder("HETATM")
		e.AtomName(span, c.name, "", c.raw)
		line, _ := e.Line()
		if got := line[12:16]; got != c.want {
			t.Errorf("%q from %q: got %q want %q", c.name, c.raw, got, c.want)
		}
	}
}

func TestPad(t *testing.T) {
	if len(Pad("END")) != LineLen || len(Pad(strings.Repeat("x", 90))) != LineLen {
		t.Error("Pad does not give 80 columns")
	}
}
