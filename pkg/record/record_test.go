package record_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/pdbtest"
	. "github.com/andrew-torda/oldpdb/pkg/record"
)

// Every line of the fixtures should come back exactly after reading
// and writing.
func TestRoundTripLines(t *testing.T) {
	for _, fx := range []string{pdbtest.Minimal, pdbtest.TwoModels, pdbtest.Full, pdbtest.Metals} {
		for _, line := range pdbtest.Lines(fx) {
			r, err := Parse(line)
			if err != nil {
				t.Fatal(err)
			}
			if _, ok := r.(*Unknown); ok {
				t.Errorf("no schema for %q", line)
				continue
			}
			got, err := r.Format()
			if err != nil {
				t.Errorf("formatting %q: %v", line, err)
			}
			if want := column.Pad(line); got != want {
				t.Errorf("round trip\n got %q\nwant %q", got, want)
			}
		}
	}
}

func TestAtomFields(t *testing.T) {
	line := "HETATM   11  O1  SO4 A 101      21.000  10.000   5.000  1.00 30.00           O"
	r, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := r.(*Atom)
	if !ok {
		t.Fatalf("got %T", r)
	}
	if !a.Het || a.Keyword() != "HETATM" {
		t.Error("Het flag lost")
	}
	if a.Serial != column.IntOf(11) || a.Name != "O1" || a.Res.Name != "SO4" {
		t.Error("identity fields", a.Serial, a.Name, a.Res.Name)
	}
	if a.Res.Chain != 'A' || a.Res.Seq != column.IntOf(101) || a.Res.ICode != ' ' {
		t.Error("residue", a.Res)
	}
	if a.X.Val != 21.0 || a.Occupancy.Val != 1.0 || a.TempFactor.Val != 30.0 {
		t.Error("reals", a.X, a.Occupancy, a.TempFactor)
	}
	if a.Element != "O" || a.Charge != "" {
		t.Error("element", a.Element, a.Charge)
	}
	if a.Category() != Coordinate {
		t.Error("category", a.Category())
	}
}

// Names read from a file keep their columns. Names set in code follow
// the element.
func TestAtomNameColumns(t *testing.T) {
	for _, line := range []string{
		"HETATM    5 CA    CA A 302      10.000   5.000  -3.500  1.00 20.00",
		"LINK         SG  CYS A   2                ZN    ZN A 301     1555   1555  2.30",
	} {
		r, err := Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		if got, _ := r.Format(); got != column.Pad(line) {
			t.Errorf("\n got %q\nwant %q", got, column.Pad(line))
		}
	}

	for _, c := range []struct{ elem, want string }{
		{"CA", "CA  "}, {"C", " CA "}, {"", " CA "},
	} {
		a := &Atom{Het: true, Serial: column.IntOf(1), Name: "CA", Element: c.elem}
		got, err := a.Format()
		if err != nil {
			t.Fatal(err)
		}
		if got[12:16] != c.want {
			t.Errorf("element %q: got %q want %q", c.elem, got[12:16], c.want)
		}
	}

	r, _ := Parse("HETATM    5 CA    CA A 302      10.000   5.000  -3.500  1.00 20.00")
	a := r.(*Atom)
	a.Name = "MG"
	if got, _ := a.Format(); got[12:16] != " MG " {
		t.Errorf("renamed atom written as %q", got[12:16])
	}
}

var unknowns = []string{
	" ATOM      1  N   ALA A   1",
	"FOOBAR some private extension",
	"",
	"ATOMS",
}

func TestUnknown(t *testing.T) {
	for _, line := range unknowns {
		r, err := Parse(line)
		if err != nil {
			t.Fatal(err)
		}
		u, ok := r.(*Unknown)
		if !ok {
			t.Errorf("%q gave %T", line, r)
			continue
		}
		if s, _ := u.Format(); strings.TrimRight(s, " ") != line {
			t.Errorf("lost text of %q", line)
		}
	}
}

func TestMalformed(t *testing.T) {
	line := "ATOM      1  N   ALA A   1      11.104   6.1x4  -6.504  1.00 10.00           N"
	r, err := Parse(line)
	if r != nil {
		t.Error("broken record should be refused")
	}
	var re *RecordError
	if !errors.As(err, &re) {
		t.Fatalf("want RecordError, got %v", err)
	}
	if re.Keyword != "ATOM" || re.Text != line {
		t.Error("error context", re.Keyword, re.Text)
	}
	var me *column.MalformedError
	if !errors.As(err, &me) {
		t.Error("cause should be a MalformedError", err)
	}
}

func TestMasterLiteral(t *testing.T) {
	bad := "MASTER        4    7    1    1    2    0    1    6   14    1    2    1"
	if _, err := Parse(bad); err == nil {
		t.Error("column 16-20 of MASTER must be 0")
	}
	good := strings.Replace(bad, "4    7", "4    0", 1)
	r, err := Parse(good)
	if err != nil {
		t.Fatal(err)
	}
	m := r.(*Master)
	if m.Coord != column.IntOf(14) || m.Seq != column.IntOf(1) || m.Turn != column.IntOf(0) {
		t.Error("master fields", m.Coord, m.Seq, m.Turn)
	}
	if len(m.Fields()) != 11 {
		t.Error("master has 11 counts")
	}
}

func TestXform(t *testing.T) {
	line := "MTRIX2   1  0.500000  0.866025  0.000000        1.50000    1"
	r, err := Parse(line)
	if err != nil {
		t.Fatal(err)
	}
	x := r.(*Xform)
	if x.Kind != Mtrix || x.N != 2 || x.Serial != column.IntOf(1) || !x.Given {
		t.Error("mtrix", x.Kind, x.N, x.Serial, x.Given)
	}
	if x.M[1].Val != 0.866025 || x.T.Val != 1.5 {
		t.Error("values", x.M, x.T)
	}
	if s, _ := x.Format(); s != column.Pad(line) {
		t.Errorf("format %q", s)
	}
}

func TestHeaderDate(t *testing.T) {
	r, _ := Parse(pdbtest.Lines(pdbtest.Full)[0])
	h := r.(*Header)
	d, err := h.Date()
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 1992 || d.Month() != 1 || d.Day() != 15 {
		t.Error("date", d)
	}
	if FormatDate(d) != "15-JAN-92" {
		t.Error("FormatDate", FormatDate(d))
	}
}

func TestFormatOverflow(t *testing.T) {
	a := &Atom{Serial: column.IntOf(1), Name: "CA", X: column.RealOf(10000.0), Element: "C"}
	s, err := a.Format()
	if err == nil {
		t.Fatal("x = 10000 does not fit in 8.3")
	}
	var oe *column.OverflowError
	if !errors.As(err, &oe) || oe.Span != column.Cols(31, 38) {
		t.Error("wrong error", err)
	}
	if len(s) != column.LineLen {
		t.Error("line length", len(s))
	}
	q := &Seqres{Serial: column.IntOf(1), Chain: 'A', Residues: make([]string, 14)}
	if _, err := q.Format(); err == nil {
		t.Error("14 residues do not fit on a SEQRES line")
	}
	c := &Conect{Serial: column.IntOf(1), Bonded: make([]column.Int, 5)}
	if _, err := c.Format(); err == nil {
		t.Error("5 bonded atoms do not fit on a CONECT line")
	}
}

// Serial numbers wrap, so a file with 100000 atoms can be written.
func TestSerialWrap(t *testing.T) {
	a := &Atom{Serial: column.IntOf(100001), Name: "CA", Element: "C"}
	s, err := a.Format()
	if err != nil {
		t.Fatal(err)
	}
	if s[6:11] != "    1" {
		t.Errorf("wrapped serial %q", s[6:11])
	}
}

func TestRank(t *testing.T) {
	parse := func(s string) Record {
		r, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		return r
	}
	lines := pdbtest.Lines(pdbtest.Full)
	last := -1
	for _, l := range lines {
		rk := Rank(parse(l))
		if rk < last {
			t.Errorf("%q out of order", l)
		}
		last = rk
	}
	if Rank(&Dbref1{}) != Rank(&Dbref2{}) {
		t.Error("DBREF1 and DBREF2 must share a rank")
	}
	if Rank(&Model{}) != Rank(&Atom{}) || Rank(&Atom{}) != Rank(&Endmdl{}) {
		t.Error("coordinate records must share a rank")
	}
	if Rank(&Unknown{Rank: 3}) != 3 {
		t.Error("unknown keeps its rank")
	}
}

func TestSiteResidues(t *testing.T) {
	r, err := Parse("SITE     1 AC1  5 HIS A  94  HIS A  96  HIS A 119  ZN  A 262")
	if err != nil {
		t.Fatal(err)
	}
	s := r.(*Site)
	if len(s.Residues) != 4 || s.Residues[3].Name != "ZN" || s.Residues[2].Seq.Val != 119 {
		t.Error("site residues", s.Residues)
	}
	r, _ = Parse("SITE     2 AC1  5 HOH A 301")
	if n := len(r.(*Site).Residues); n != 1 {
		t.Error("blank slots should be dropped, got", n)
	}
}

func TestWarningString(t *testing.T) {
	w := Warnf(12, WarnMaster, "numHelix is %d, counted %d", 2, 1)
	if w.String() != "line 12: master: numHelix is 2, counted 1" {
		t.Error(w.String())
	}
	e := &RecordError{Line: 3, Keyword: "MODEL", Err: Orderf("nested MODEL")}
	var oe *OrderError
	if !errors.As(e, &oe) {
		t.Error("RecordError should unwrap")
	}
	if !strings.HasPrefix(e.Error(), "line 3: MODEL: record order") {
		t.Error(e.Error())
	}
}
