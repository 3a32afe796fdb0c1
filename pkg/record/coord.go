package record

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Coordinate section and connectivity.

func init() {
	register(decodeModel, "MODEL")
	register(decodeAtom, "ATOM", "HETATM")
	register(decodeAnisou, "ANISOU")
	register(decodeTer, "TER")
	register(func(*column.Decoder, string) Record { return &Endmdl{} }, "ENDMDL")
	register(decodeConect, "CONECT")
}

// Model starts a model.
type Model struct {
	Serial column.Int
}

var mdlSerial = column.Cols(11, 14)

func decodeModel(d *column.Decoder, _ string) Record { return &Model{Serial: d.Int(mdlSerial)} }

func (*Model) Keyword() string    { return "MODEL" }
func (*Model) Category() Category { return Coordinate }
func (*Model) isRecord()          {}
func (r *Model) Format() (string, error) {
	e := column.NewEncoder("MODEL")
	e.Int(mdlSerial, r.Serial)
	return e.Line()
}

// Endmdl ends a model.
type Endmdl struct{}

func (*Endmdl) Keyword() string    { return "ENDMDL" }
func (*Endmdl) Category() Category { return Coordinate }
func (*Endmdl) isRecord()          {}
func (*Endmdl) Format() (string, error) {
	return column.NewEncoder("ENDMDL").Line()
}

// Atom is an ATOM record, or a HETATM if Het is set.
type Atom struct {
	Het        bool
	Serial     column.Int
	Name       string
	AltLoc     byte
	Res        Residue
	X, Y, Z    column.Real
	Occupancy  column.Real
	TempFactor column.Real
	SegID      string // from version 2 of the format
	Element    string
	Charge     string // like "2+"

	rawName string // columns 13-16 as read
}

// Columns shared by ATOM, HETATM and ANISOU
var (
	atSerial  = column.Cols(7, 11)
	atName    = column.Cols(13, 16)
	atAltLoc  = column.Col(17)
	atRes     = cols4(18, 20, 22, 23, 26, 27)
	atSegID   = column.Cols(73, 76)
	atElement = column.Cols(77, 78)
	atCharge  = column.Cols(79, 80)
)

var (
	atX    = column.Cols(31, 38)
	atY    = column.Cols(39, 46)
	atZ    = column.Cols(47, 54)
	atOcc  = column.Cols(55, 60)
	atTemp = column.Cols(61, 66)
)

func decodeAtom(d *column.Decoder, kw string) Record {
	name, raw := d.AtomName(atName)
	return &Atom{
		Het:        kw == "HETATM",
		Serial:     d.Serial(atSerial),
		Name:       name,
		rawName:    raw,
		AltLoc:     d.Char(atAltLoc),
		Res:        atRes.get(d),
		X:          d.Real(atX),
		Y:          d.Real(atY),
		Z:          d.Real(atZ),
		Occupancy:  d.Real(atOcc),
		TempFactor: d.Real(atTemp),
		SegID:      d.Str(atSegID),
		Element:    d.RStr(atElement),
		Charge:     d.Str(atCharge),
	}
}

func (r *Atom) Keyword() string {
	if r.Het {
		return "HETATM"
	}
	return "ATOM"
}
func (*Atom) Category() Category { return Coordinate }
func (*Atom) isRecord()          {}
func (r *Atom) Format() (string, error) {
	e := column.NewEncoder(r.Keyword())
	e.Serial(atSerial, r.Serial)
	e.AtomName(atName, r.Name, r.Element, r.rawName)
	e.Char(atAltLoc, r.AltLoc)
	atRes.put(e, r.Res)
	e.Real(atX, 3, r.X)
	e.Real(atY, 3, r.Y)
	e.Real(atZ, 3, r.Z)
	e.Real(atOcc, 2, r.Occupancy)
	e.Real(atTemp, 2, r.TempFactor)
	e.Str(atSegID, r.SegID)
	e.RStr(atElement, r.Element)
	e.Str(atCharge, r.Charge)
	return e.Line()
}

// NameIsElement says if the atom is named by its element, as metal
// ions are. With an element column, the first two letters of name and
// element must agree. Without one, a read name of one or two letters
// starting in column 13 counts, so "CA  " is calcium and " CA " is not.
func (r *Atom) NameIsElement() bool {
	if r.Element != "" {
		return prefix2(r.Name) == prefix2(r.Element)
	}
	return r.Name != "" && len(r.Name) <= 2 && len(r.rawName) == 4 && r.rawName[0] != ' '
}

func prefix2(s string) string {
	if len(s) > 2 {
		return s[:2]
	}
	return s
}

// Anisou holds the anisotropic temperature factors of the atom
// just before it. U is scaled by 10^4 and ordered
// U11, U22, U33, U12, U13, U23.
type Anisou struct {
	Serial  column.Int
	Name    string
	AltLoc  byte
	Res     Residue
	U       [6]column.Int
	SegID   string
	Element string
	Charge  string

	rawName string
}

var anU = [6]column.Span{
	column.Cols(29, 35), column.Cols(36, 42), column.Cols(43, 49),
	column.Cols(50, 56), column.Cols(57, 63), column.Cols(64, 70),
}

func decodeAnisou(d *column.Decoder, _ string) Record {
	name, raw := d.AtomName(atName)
	r := &Anisou{
		Serial:  d.Serial(atSerial),
		Name:    name,
		AltLoc:  d.Char(atAltLoc),
		Res:     atRes.get(d),
		rawName: raw,
	}
	for i, s := range anU {
		r.U[i] = d.Int(s)
	}
	r.SegID = d.Str(atSegID)
	r.Element = d.RStr(atElement)
	r.Charge = d.Str(atCharge)
	return r
}

func (*Anisou) Keyword() string    { return "ANISOU" }
func (*Anisou) Category() Category { return Coordinate }
func (*Anisou) isRecord()          {}
func (r *Anisou) Format() (string, error) {
	e := column.NewEncoder("ANISOU")
	e.Serial(atSerial, r.Serial)
	e.AtomName(atName, r.Name, r.Element, r.rawName)
	e.Char(atAltLoc, r.AltLoc)
	atRes.put(e, r.Res)
	for i, s := range anU {
		e.Int(s, r.U[i])
	}
	e.Str(atSegID, r.SegID)
	e.RStr(atElement, r.Element)
	e.Str(atCharge, r.Charge)
	return e.Line()
}

// Ter ends a chain. Old files often have a bare "TER".
type Ter struct {
	Serial column.Int
	Res    Residue
}

func decodeTer(d *column.Decoder, _ string) Record {
	return &Ter{Serial: d.Serial(atSerial), Res: atRes.get(d)}
}

func (*Ter) Keyword() string    { return "TER" }
func (*Ter) Category() Category { return Coordinate }
func (*Ter) isRecord()          {}
func (r *Ter) Format() (string, error) {
	e := column.NewEncoder("TER")
	e.Serial(atSerial, r.Serial)
	atRes.put(e, r.Res)
	return e.Line()
}

// Conect lists atoms bonded to Serial. Big atoms need several lines.
type Conect struct {
	Serial column.Int
	Bonded []column.Int // at most ConectPerLine
}

// ConectPerLine is the number of bonded atoms on one CONECT line.
const ConectPerLine = 4

var (
	conSerial = column.Cols(7, 11)
	conBonded = slots{first: 12, width: 5, step: 5, n: ConectPerLine}
)

func decodeConect(d *column.Decoder, _ string) Record {
	r := &Conect{Serial: d.Serial(conSerial)}
	for i := 0; i < conBonded.n; i++ {
		r.Bonded = append(r.Bonded, d.Serial(conBonded.span(i)))
	}
	for n := len(r.Bonded); n > 0 && !r.Bonded[n-1].Valid; n-- {
		r.Bonded = r.Bonded[:n-1]
	}
	return r
}

func (*Conect) Keyword() string    { return "CONECT" }
func (*Conect) Category() Category { return Connect }
func (*Conect) isRecord()          {}
func (r *Conect) Format() (string, error) {
	e := column.NewEncoder("CONECT")
	e.Serial(conSerial, r.Serial)
	if len(r.Bonded) > conBonded.n {
		e.Overflow(column.Cols(12, 31), column.KindSerial, "more than 4 bonded atoms")
	} else {
		for i, b := range r.Bonded {
			e.Serial(conBonded.span(i), b)
		}
	}
	return e.Line()
}
