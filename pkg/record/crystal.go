package record

import (
	"strconv"

	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Unit cell and coordinate transformations.

func init() {
	register(decodeCryst1, "CRYST1")
	register(decodeXform,
		"ORIGX1", "ORIGX2", "ORIGX3",
		"SCALE1", "SCALE2", "SCALE3",
		"MTRIX1", "MTRIX2", "MTRIX3")
}

// Cryst1 is the unit cell, space group and Z value.
type Cryst1 struct {
	A, B, C            column.Real // Angstrom
	Alpha, Beta, Gamma column.Real // degrees
	SpaceGroup         string
	Z                  column.Int
}

var (
	crA     = column.Cols(7, 15)
	crB     = column.Cols(16, 24)
	crC     = column.Cols(25, 33)
	crAlpha = column.Cols(34, 40)
	crBeta  = column.Cols(41, 47)
	crGamma = column.Cols(48, 54)
	crSG    = column.Cols(56, 66)
	crZ     = column.Cols(67, 70)
)

func decodeCryst1(d *column.Decoder, _ string) Record {
	return &Cryst1{
		A: d.Real(crA), B: d.Real(crB), C: d.Real(crC),
		Alpha: d.Real(crAlpha), Beta: d.Real(crBeta), Gamma: d.Real(crGamma),
		SpaceGroup: d.Str(crSG),
		Z:          d.Int(crZ),
	}
}

func (*Cryst1) Keyword() string    { return "CRYST1" }
func (*Cryst1) Category() Category { return Crystal }
func (*Cryst1) isRecord()          {}
func (r *Cryst1) Format() (string, error) {
	e := column.NewEncoder("CRYST1")
	e.Real(crA, 3, r.A)
	e.Real(crB, 3, r.B)
	e.Real(crC, 3, r.C)
	e.Real(crAlpha, 2, r.Alpha)
	e.Real(crBeta, 2, r.Beta)
	e.Real(crGamma, 2, r.Gamma)
	e.Str(crSG, r.SpaceGroup)
	e.Int(crZ, r.Z)
	return e.Line()
}

// XformKind says which of the three transforms a row belongs to.
type XformKind byte

const (
	Origx XformKind = iota // orthogonal to submitted coordinates
	Scale                  // orthogonal to fractional
	Mtrix                  // non-crystallographic symmetry
)

var xformPrefix = [...]string{Origx: "ORIGX", Scale: "SCALE", Mtrix: "MTRIX"}

func (k XformKind) String() string { return xformPrefix[k] }

// Xform is one row of a 3x4 transform. The ORIGXn, SCALEn and MTRIXn
// records all look like this. N is the row, 1 to 3. Serial and Given
// are only used by MTRIXn.
type Xform struct {
	Kind   XformKind
	N      int
	Serial column.Int
	M      [3]column.Real
	T      column.Real
	Given  bool // MTRIX column 60 is 1: these coordinates are in the entry
}

var (
	xfSerial = column.Cols(8, 10)
	xfM      = [3]column.Span{column.Cols(11, 20), column.Cols(21, 30), column.Cols(31, 40)}
	xfT      = column.Cols(46, 55)
	xfGiven  = column.Col(60)
)

func decodeXform(d *column.Decoder, kw string) Record {
	r := new(Xform)
	switch kw[:5] {
	case "ORIGX":
		r.Kind = Origx
	case "SCALE":
		r.Kind = Scale
	case "MTRIX":
		r.Kind = Mtrix
		r.Serial = d.Int(xfSerial)
		r.Given = d.Char(xfGiven) == '1'
	}
	r.N = int(kw[5] - '0')
	for i, s := range xfM {
		r.M[i] = d.Real(s)
	}
	r.T = d.Real(xfT)
	return r
}

func (r *Xform) Keyword() string  { return r.Kind.String() + strconv.Itoa(r.N) }
func (*Xform) Category() Category { return Crystal }
func (*Xform) isRecord()          {}
func (r *Xform) Format() (string, error) {
	e := column.NewEncoder(r.Keyword())
	if r.N < 1 || r.N > 3 {
		e.Overflow(column.Cols(6, 6), column.KindInt, strconv.Itoa(r.N))
	}
	if r.Kind == Mtrix {
		e.Int(xfSerial, r.Serial)
		if r.Given {
			e.Char(xfGiven, '1')
		}
	}
	for i, s := range xfM {
		e.Real(s, 6, r.M[i])
	}
	e.Real(xfT, 5, r.T)
	return e.Line()
}
