package record

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
)

func init() {
	register(decodeMaster, "MASTER")
	register(func(*column.Decoder, string) Record { return &End{} }, "END")
}

// Master holds the record counts written near the end of a file.
type Master struct {
	Remark column.Int // REMARK lines
	Het    column.Int // HET lines
	Helix  column.Int
	Sheet  column.Int // SHEET lines, not sheets
	Turn   column.Int
	Site   column.Int
	Xform  column.Int // ORIGX, SCALE and MTRIX lines
	Coord  column.Int // ATOM and HETATM
	Ter    column.Int
	Conect column.Int
	Seq    column.Int // SEQRES lines
}

var (
	msRemark = column.Cols(11, 15)
	msZero   = column.Cols(16, 20)
	msHet    = column.Cols(21, 25)
	msHelix  = column.Cols(26, 30)
	msSheet  = column.Cols(31, 35)
	msTurn   = column.Cols(36, 40)
	msSite   = column.Cols(41, 45)
	msXform  = column.Cols(46, 50)
	msCoord  = column.Cols(51, 55)
	msTer    = column.Cols(56, 60)
	msConect = column.Cols(61, 65)
	msSeq    = column.Cols(66, 70)
)

// MasterField is one count in a MASTER record.
type MasterField struct {
	Name string
	Val  *column.Int
}

// Fields lists the counts in the order they are written. It hands
// back pointers so callers can fill them in.
func (r *Master) Fields() []MasterField {
	return []MasterField{
		{"numRemark", &r.Remark},
		{"numHet", &r.Het},
		{"numHelix", &r.Helix},
		{"numSheet", &r.Sheet},
		{"numTurn", &r.Turn},
		{"numSite", &r.Site},
		{"numXform", &r.Xform},
		{"numCoord", &r.Coord},
		{"numTer", &r.Ter},
		{"numConect", &r.Conect},
		{"numSeq", &r.Seq},
	}
}

var msSpans = []column.Span{
	msRemark, msHet, msHelix, msSheet, msTurn, msSite,
	msXform, msCoord, msTer, msConect, msSeq,
}

func decodeMaster(d *column.Decoder, _ string) Record {
	r := new(Master)
	d.Literal(msZero, "0")
	for i, f := range r.Fields() {
		*f.Val = d.Int(msSpans[i])
	}
	return r
}

func (*Master) Keyword() string    { return "MASTER" }
func (*Master) Category() Category { return Bookkeeping }
func (*Master) isRecord()          {}
func (r *Master) Format() (string, error) {
	e := column.NewEncoder("MASTER")
	e.Literal(msZero, "0")
	for i, f := range r.Fields() {
		e.Int(msSpans[i], *f.Val)
	}
	return e.Line()
}

// End is the last line of an entry.
type End struct{}

func (*End) Keyword() string    { return "END" }
func (*End) Category() Category { return Bookkeeping }
func (*End) isRecord()          {}
func (*End) Format() (string, error) {
	return column.NewEncoder("END").Line()
}
