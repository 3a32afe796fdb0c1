package record

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Heterogen section: non-standard residues.

func init() {
	register(decodeHet, "HET")
	register(decodeHetnam, "HETNAM", "HETSYN")
	register(decodeFormul, "FORMUL")
}

// Het says one non-standard residue occurs in one chain at one place.
type Het struct {
	HetID    string
	Chain    byte
	SeqNum   column.Int
	ICode    byte
	NumAtoms column.Int // number of HETATM records for this group
	Text     string
}

var (
	hetID    = column.Cols(8, 10)
	hetChain = column.Col(13)
	hetSeq   = column.Cols(14, 17)
	hetICode = column.Col(18)
	hetNum   = column.Cols(21, 25)
	hetText  = column.Cols(31, 70)
)

func decodeHet(d *column.Decoder, _ string) Record {
	return &Het{
		HetID:    d.RStr(hetID),
		Chain:    d.Char(hetChain),
		SeqNum:   d.Int(hetSeq),
		ICode:    d.Char(hetICode),
		NumAtoms: d.Int(hetNum),
		Text:     d.Str(hetText),
	}
}

func (*Het) Keyword() string    { return "HET" }
func (*Het) Category() Category { return Heterogen }
func (*Het) isRecord()          {}
func (r *Het) Format() (string, error) {
	e := column.NewEncoder("HET")
	e.RStr(hetID, r.HetID)
	e.Char(hetChain, r.Chain)
	e.Int(hetSeq, r.SeqNum)
	e.Char(hetICode, r.ICode)
	e.Int(hetNum, r.NumAtoms)
	e.Str(hetText, r.Text)
	return e.Line()
}

// Hetnam is one line of the chemical name of a group (HETNAM) or of
// its synonyms (HETSYN, Syn set). The layouts are the same.
type Hetnam struct {
	Syn   bool
	Cont  column.Int
	HetID string
	Text  string
}

var (
	hnCont = column.Cols(9, 10)
	hnID   = column.Cols(12, 14)
	hnText = column.Cols(16, 70)
)

func decodeHetnam(d *column.Decoder, kw string) Record {
	return &Hetnam{
		Syn:   kw == "HETSYN",
		Cont:  d.Int(hnCont),
		HetID: d.RStr(hnID),
		Text:  d.Str(hnText),
	}
}

func (r *Hetnam) Keyword() string {
	if r.Syn {
		return "HETSYN"
	}
	return "HETNAM"
}
func (*Hetnam) Category() Category { return Heterogen }
func (*Hetnam) isRecord()          {}
func (r *Hetnam) Format() (string, error) {
	e := column.NewEncoder(r.Keyword())
	e.Int(hnCont, r.Cont)
	e.RStr(hnID, r.HetID)
	e.Str(hnText, r.Text)
	return e.Line()
}

// Formul is one line of the chemical formula of a group. Water is
// marked by an asterisk in column 19.
type Formul struct {
	CompNum column.Int
	HetID   string
	Cont    column.Int
	Water   bool
	Text    string
}

var (
	fmNum   = column.Cols(9, 10)
	fmID    = column.Cols(13, 15)
	fmCont  = column.Cols(17, 18)
	fmWater = column.Col(19)
	fmText  = column.Cols(20, 70)
)

func decodeFormul(d *column.Decoder, _ string) Record {
	return &Formul{
		CompNum: d.Int(fmNum),
		HetID:   d.RStr(fmID),
		Cont:    d.Int(fmCont),
		Water:   d.Char(fmWater) == '*',
		Text:    d.Str(fmText),
	}
}

func (*Formul) Keyword() string    { return "FORMUL" }
func (*Formul) Category() Category { return Heterogen }
func (*Formul) isRecord()          {}
func (r *Formul) Format() (string, error) {
	e := column.NewEncoder("FORMUL")
	e.Int(fmNum, r.CompNum)
	e.RStr(fmID, r.HetID)
	e.Int(fmCont, r.Cont)
	if r.Water {
		e.Char(fmWater, '*')
	}
	e.Str(fmText, r.Text)
	return e.Line()
}
