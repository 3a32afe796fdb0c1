package record

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Secondary structure, connectivity annotation and sites.

func init() {
	register(decodeHelix, "HELIX")
	register(decodeSheet, "SHEET")
	register(decodeTurn, "TURN")
	register(decodeSsbond, "SSBOND")
	register(decodeLink, "LINK")
	register(decodeCispep, "CISPEP")
	register(decodeSite, "SITE")
}

// AtomRef points at one atom by name within a residue. There is no
// element column, so the name of one read from a file is written back
// with its alignment as it was.
type AtomRef struct {
	Name   string
	AltLoc byte
	Res    Residue

	rawName string
}

type atomSpans struct {
	name   column.Span
	alt    column.Span
	hasAlt bool
	res    resSpans
}

func (s atomSpans) get(d *column.Decoder) AtomRef {
	name, raw := d.AtomName(s.name)
	a := AtomRef{Name: name, Res: s.res.get(d), rawName: raw}
	if s.hasAlt {
		a.AltLoc = d.Char(s.alt)
	}
	return a
}

func (s atomSpans) put(e *column.Encoder, a AtomRef) {
	e.AtomName(s.name, a.Name, "", a.rawName)
	if s.hasAlt {
		e.Char(s.alt, a.AltLoc)
	}
	s.res.put(e, a.Res)
}

// Helix is one helix. Init and End are the first and last residues.
type Helix struct {
	Serial  column.Int
	ID      string
	Init    Residue
	End     Residue
	Class   column.Int // 1 right-handed alpha ... 10 polyproline
	Comment string
	Length  column.Int
}

var (
	hlxSerial  = column.Cols(8, 10)
	hlxID      = column.Cols(12, 14)
	hlxInit    = cols4(16, 18, 20, 22, 25, 26)
	hlxEnd     = cols4(28, 30, 32, 34, 37, 38)
	hlxClass   = column.Cols(39, 40)
	hlxComment = column.Cols(41, 70)
	hlxLength  = column.Cols(72, 76)
)

func decodeHelix(d *column.Decoder, _ string) Record {
	return &Helix{
		Serial:  d.Int(hlxSerial),
		ID:      d.RStr(hlxID),
		Init:    hlxInit.get(d),
		End:     hlxEnd.get(d),
		Class:   d.Int(hlxClass),
		Comment: d.Str(hlxComment),
		Length:  d.Int(hlxLength),
	}
}

func (*Helix) Keyword() string    { return "HELIX" }
func (*Helix) Category() Category { return Secondary }
func (*Helix) isRecord()          {}
func (r *Helix) Format() (string, error) {
	e := column.NewEncoder("HELIX")
	e.Int(hlxSerial, r.Serial)
	e.RStr(hlxID, r.ID)
	hlxInit.put(e, r.Init)
	hlxEnd.put(e, r.End)
	e.Int(hlxClass, r.Class)
	e.Str(hlxComment, r.Comment)
	e.Int(hlxLength, r.Length)
	return e.Line()
}

// Sheet is one strand of a sheet. For every strand after the first,
// Cur and Prev give the hydrogen bond to the previous strand.
type Sheet struct {
	Strand     column.Int
	ID         string
	NumStrands column.Int
	Init       Residue
	End        Residue
	Sense      column.Int // 0 first strand, 1 parallel, -1 anti-parallel
	Cur        AtomRef
	Prev       AtomRef
}

var (
	shStrand = column.Cols(8, 10)
	shID     = column.Cols(12, 14)
	shNum    = column.Cols(15, 16)
	shInit   = cols4(18, 20, 22, 23, 26, 27)
	shEnd    = cols4(29, 31, 33, 34, 37, 38)
	shSense  = column.Cols(39, 40)
	shCur    = atomSpans{name: column.Cols(42, 45), res: cols4(46, 48, 50, 51, 54, 55)}
	shPrev   = atomSpans{name: column.Cols(57, 60), res: cols4(61, 63, 65, 66, 69, 70)}
)

func decodeSheet(d *column.Decoder, _ string) Record {
	return &Sheet{
		Strand:     d.Int(shStrand),
		ID:         d.RStr(shID),
		NumStrands: d.Int(shNum),
		Init:       shInit.get(d),
		End:        shEnd.get(d),
		Sense:      d.Int(shSense),
		Cur:        shCur.get(d),
		Prev:       shPrev.get(d),
	}
}

func (*Sheet) Keyword() string    { return "SHEET" }
func (*Sheet) Category() Category { return Secondary }
func (*Sheet) isRecord()          {}
func (r *Sheet) Format() (string, error) {
	e := column.NewEncoder("SHEET")
	e.Int(shStrand, r.Strand)
	e.RStr(shID, r.ID)
	e.Int(shNum, r.NumStrands)
	shInit.put(e, r.Init)
	shEnd.put(e, r.End)
	e.Int(shSense, r.Sense)
	shCur.put(e, r.Cur)
	shPrev.put(e, r.Prev)
	return e.Line()
}

// Turn is from version 2 of the format. New entries do not have them
// but old files do.
type Turn struct {
	Seq     column.Int
	ID      string
	Init    Residue
	End     Residue
	Comment string
}

var (
	trnSeq     = column.Cols(8, 10)
	trnID      = column.Cols(12, 14)
	trnInit    = cols4(16, 18, 20, 21, 24, 25)
	trnEnd     = cols4(27, 29, 31, 32, 35, 36)
	trnComment = column.Cols(41, 70)
)

func decodeTurn(d *column.Decoder, _ string) Record {
	return &Turn{
		Seq:     d.Int(trnSeq),
		ID:      d.RStr(trnID),
		Init:    trnInit.get(d),
		End:     trnEnd.get(d),
		Comment: d.Str(trnComment),
	}
}

func (*Turn) Keyword() string    { return "TURN" }
func (*Turn) Category() Category { return Secondary }
func (*Turn) isRecord()          {}
func (r *Turn) Format() (string, error) {
	e := column.NewEncoder("TURN")
	e.Int(trnSeq, r.Seq)
	e.RStr(trnID, r.ID)
	trnInit.put(e, r.Init)
	trnEnd.put(e, r.End)
	e.Str(trnComment, r.Comment)
	return e.Line()
}

// Ssbond is a disulfide bond.
type Ssbond struct {
	Serial column.Int
	Res1   Residue
	Res2   Residue
	Sym1   string
	Sym2   string
	Length column.Real
}

var (
	ssSerial = column.Cols(8, 10)
	ssRes1   = cols4(12, 14, 16, 18, 21, 22)
	ssRes2   = cols4(26, 28, 30, 32, 35, 36)
	ssSym1   = column.Cols(60, 65)
	ssSym2   = column.Cols(67, 72)
	ssLength = column.Cols(74, 78)
)

func decodeSsbond(d *column.Decoder, _ string) Record {
	return &Ssbond{
		Serial: d.Int(ssSerial),
		Res1:   ssRes1.get(d),
		Res2:   ssRes2.get(d),
		Sym1:   d.RStr(ssSym1),
		Sym2:   d.RStr(ssSym2),
		Length: d.Real(ssLength),
	}
}

func (*Ssbond) Keyword() string    { return "SSBOND" }
func (*Ssbond) Category() Category { return Secondary }
func (*Ssbond) isRecord()          {}
func (r *Ssbond) Format() (string, error) {
	e := column.NewEncoder("SSBOND")
	e.Int(ssSerial, r.Serial)
	ssRes1.put(e, r.Res1)
	ssRes2.put(e, r.Res2)
	e.RStr(ssSym1, r.Sym1)
	e.RStr(ssSym2, r.Sym2)
	e.Real(ssLength, 2, r.Length)
	return e.Line()
}

// Link is a bond between residues that is not implied by the
// sequence.
type Link struct {
	Atom1  AtomRef
	Atom2  AtomRef
	Sym1   string
	Sym2   string
	Length column.Real
}

var (
	lnkAtom1 = atomSpans{name: column.Cols(13, 16), alt: column.Col(17), hasAlt: true,
		res: cols4(18, 20, 22, 23, 26, 27)}
	lnkAtom2 = atomSpans{name: column.Cols(43, 46), alt: column.Col(47), hasAlt: true,
		res: cols4(48, 50, 52, 53, 56, 57)}
	lnkSym1   = column.Cols(60, 65)
	lnkSym2   = column.Cols(67, 72)
	lnkLength = column.Cols(74, 78)
)

func decodeLink(d *column.Decoder, _ string) Record {
	return &Link{
		Atom1:  lnkAtom1.get(d),
		Atom2:  lnkAtom2.get(d),
		Sym1:   d.RStr(lnkSym1),
		Sym2:   d.RStr(lnkSym2),
		Length: d.Real(lnkLength),
	}
}

func (*Link) Keyword() string    { return "LINK" }
func (*Link) Category() Category { return Secondary }
func (*Link) isRecord()          {}
func (r *Link) Format() (string, error) {
	e := column.NewEncoder("LINK")
	lnkAtom1.put(e, r.Atom1)
	lnkAtom2.put(e, r.Atom2)
	e.RStr(lnkSym1, r.Sym1)
	e.RStr(lnkSym2, r.Sym2)
	e.Real(lnkLength, 2, r.Length)
	return e.Line()
}

// Cispep is a cis peptide bond.
type Cispep struct {
	Serial  column.Int
	Res1    Residue
	Res2    Residue
	ModNum  column.Int
	Measure column.Real // omega angle in degrees
}

var (
	cisSerial  = column.Cols(8, 10)
	cisRes1    = cols4(12, 14, 16, 18, 21, 22)
	cisRes2    = cols4(26, 28, 30, 32, 35, 36)
	cisModNum  = column.Cols(44, 46)
	cisMeasure = column.Cols(54, 59)
)

func decodeCispep(d *column.Decoder, _ string) Record {
	return &Cispep{
		Serial:  d.Int(cisSerial),
		Res1:    cisRes1.get(d),
		Res2:    cisRes2.get(d),
		ModNum:  d.Int(cisModNum),
		Measure: d.Real(cisMeasure),
	}
}

func (*Cispep) Keyword() string    { return "CISPEP" }
func (*Cispep) Category() Category { return Secondary }
func (*Cispep) isRecord()          {}
func (r *Cispep) Format() (string, error) {
	e := column.NewEncoder("CISPEP")
	e.Int(cisSerial, r.Serial)
	cisRes1.put(e, r.Res1)
	cisRes2.put(e, r.Res2)
	e.Int(cisModNum, r.ModNum)
	e.Real(cisMeasure, 2, r.Measure)
	return e.Line()
}

// Site is one line of residues that make up a site. Up to four
// residues fit on a line.
type Site struct {
	Seq      column.Int
	ID       string
	NumRes   column.Int
	Residues []Residue
}

// SitePerLine is the number of residues on one SITE line.
const SitePerLine = 4

var (
	siteSeq    = column.Cols(8, 10)
	siteID     = column.Cols(12, 14)
	siteNumRes = column.Cols(16, 17)
	siteRes    = [SitePerLine]resSpans{
		cols4(19, 21, 23, 24, 27, 28),
		cols4(30, 32, 34, 35, 38, 39),
		cols4(41, 43, 45, 46, 49, 50),
		cols4(52, 54, 56, 57, 60, 61),
	}
)

func decodeSite(d *column.Decoder, _ string) Record {
	r := &Site{Seq: d.Int(siteSeq), ID: d.RStr(siteID), NumRes: d.Int(siteNumRes)}
	for _, s := range siteRes {
		r.Residues = append(r.Residues, s.get(d))
	}
	for n := len(r.Residues); n > 0 && r.Residues[n-1].Blank(); n-- {
		r.Residues = r.Residues[:n-1]
	}
	return r
}

func (*Site) Keyword() string    { return "SITE" }
func (*Site) Category() Category { return Secondary }
func (*Site) isRecord()          {}
func (r *Site) Format() (string, error) {
	e := column.NewEncoder("SITE")
	e.Int(siteSeq, r.Seq)
	e.RStr(siteID, r.ID)
	e.Int(siteNumRes, r.NumRes)
	if len(r.Residues) > SitePerLine {
		e.Overflow(column.Cols(19, 61), column.KindRStr, "more than 4 residues")
	} else {
		for i, res := range r.Residues {
			siteRes[i].put(e, res)
		}
	}
	return e.Line()
}
