package record

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Records of the title section.

func init() {
	register(decodeHeader, "HEADER")
	register(decodeText, "TITLE", "COMPND", "SOURCE", "KEYWDS", "EXPDTA", "AUTHOR", "MDLTYP")
	register(decodeObslte, "OBSLTE")
	register(decodeSprsde, "SPRSDE")
	register(decodeSplit, "SPLIT")
	register(decodeCaveat, "CAVEAT")
	register(decodeNummdl, "NUMMDL")
	register(decodeRevdat, "REVDAT")
	register(decodeJrnl, "JRNL")
	register(decodeRemark, "REMARK")
}

// Header is the first line of an entry.
type Header struct {
	Classification string
	DepDate        string // DD-MON-YY, as written
	IDCode         string
}

var (
	hdrClass = column.Cols(11, 50)
	hdrDate  = column.Cols(51, 59)
	hdrID    = column.Cols(63, 66)
)

func decodeHeader(d *column.Decoder, _ string) Record {
	return &Header{
		Classification: d.Str(hdrClass),
		DepDate:        d.Str(hdrDate),
		IDCode:         d.Str(hdrID),
	}
}

func (*Header) Keyword() string    { return "HEADER" }
func (*Header) Category() Category { return Title }
func (*Header) isRecord()          {}
func (h *Header) Format() (string, error) {
	e := column.NewEncoder("HEADER")
	e.Str(hdrClass, h.Classification)
	e.Str(hdrDate, h.DepDate)
	e.Str(hdrID, h.IDCode)
	return e.Line()
}

// pdbDate is the layout of dates like 15-JAN-92
const pdbDate = "02-Jan-06"

// ParseDate reads a date as written in HEADER, REVDAT, OBSLTE and
// SPRSDE.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(pdbDate, strings.TrimSpace(s))
}

// FormatDate is the inverse of ParseDate.
func FormatDate(t time.Time) string {
	return strings.ToUpper(t.Format(pdbDate))
}

// Date is the deposition date.
func (h *Header) Date() (time.Time, error) { return ParseDate(h.DepDate) }

// Text is one line of the records which are only free text with a
// continuation number: TITLE, COMPND, SOURCE, KEYWDS, EXPDTA, AUTHOR
// and MDLTYP. The column layout differs a little between them.
type Text struct {
	Kw   string
	Cont column.Int // blank on the first line, then 2, 3 ...
	Body string
}

type textLayout struct{ cont, body column.Span }

var textLayouts = map[string]textLayout{
	"TITLE":  {column.Cols(9, 10), column.Cols(11, 80)},
	"COMPND": {column.Cols(8, 10), column.Cols(11, 80)},
	"SOURCE": {column.Cols(8, 10), column.Cols(11, 79)},
	"KEYWDS": {column.Cols(9, 10), column.Cols(11, 79)},
	"EXPDTA": {column.Cols(9, 10), column.Cols(11, 79)},
	"AUTHOR": {column.Cols(9, 10), column.Cols(11, 79)},
	"MDLTYP": {column.Cols(9, 10), column.Cols(11, 80)},
}

func decodeText(d *column.Decoder, kw string) Record {
	l := textLayouts[kw]
	return &Text{Kw: kw, Cont: d.Int(l.cont), Body: d.Str(l.body)}
}

func (t *Text) Keyword() string  { return t.Kw }
func (*Text) Category() Category { return Title }
func (*Text) isRecord()          {}
func (t *Text) Format() (string, error) {
	l, ok := textLayouts[t.Kw]
	if !ok {
		return "", fmt.Errorf("record: %q is not a text record", t.Kw)
	}
	e := column.NewEncoder(t.Kw)
	e.Int(l.cont, t.Cont)
	e.Str(l.body, t.Body)
	return e.Line()
}

// idList is the common part of OBSLTE and SPRSDE
type idList struct {
	Cont   column.Int
	Date   string
	IDCode string
	IDs    []string // entries replaced, or replacing this one
}

var (
	idlCont  = column.Cols(9, 10)
	idlDate  = column.Cols(12, 20)
	idlID    = column.Cols(22, 25)
	idlSlots = slots{first: 32, width: 4, step: 5, n: 9, left: true}
)

func (l *idList) get(d *column.Decoder) {
	l.Cont = d.Int(idlCont)
	l.Date = d.Str(idlDate)
	l.IDCode = d.Str(idlID)
	l.IDs = idlSlots.getStr(d)
}

func (l *idList) put(kw string) (string, error) {
	e := column.NewEncoder(kw)
	e.Int(idlCont, l.Cont)
	e.Str(idlDate, l.Date)
	e.Str(idlID, l.IDCode)
	idlSlots.putStr(e, l.IDs)
	return e.Line()
}

// Obslte says this entry has been withdrawn, and by what.
type Obslte struct{ idList }

func decodeObslte(d *column.Decoder, _ string) Record {
	r := new(Obslte)
	r.get(d)
	return r
}

func (*Obslte) Keyword() string           { return "OBSLTE" }
func (*Obslte) Category() Category        { return Title }
func (*Obslte) isRecord()                 {}
func (r *Obslte) Format() (string, error) { return r.put("OBSLTE") }

// Sprsde lists the entries this one replaces.
type Sprsde struct{ idList }

func decodeSprsde(d *column.Decoder, _ string) Record {
	r := new(Sprsde)
	r.get(d)
	return r
}

func (*Sprsde) Keyword() string           { return "SPRSDE" }
func (*Sprsde) Category() Category        { return Title }
func (*Sprsde) isRecord()                 {}
func (r *Sprsde) Format() (string, error) { return r.put("SPRSDE") }

// Split lists the other entries that make up a large structure.
type Split struct {
	Cont column.Int
	IDs  []string
}

var (
	splitCont  = column.Cols(9, 10)
	splitSlots = slots{first: 12, width: 4, step: 5, n: 14, left: true}
)

func decodeSplit(d *column.Decoder, _ string) Record {
	return &Split{Cont: d.Int(splitCont), IDs: splitSlots.getStr(d)}
}

func (*Split) Keyword() string    { return "SPLIT" }
func (*Split) Category() Category { return Title }
func (*Split) isRecord()          {}
func (r *Split) Format() (string, error) {
	e := column.NewEncoder("SPLIT")
	e.Int(splitCont, r.Cont)
	splitSlots.putStr(e, r.IDs)
	return e.Line()
}

// Caveat warns about severe errors in an entry.
type Caveat struct {
	Cont    column.Int
	IDCode  string
	Comment string
}

var (
	cavCont    = column.Cols(9, 10)
	cavID      = column.Cols(12, 15)
	cavComment = column.Cols(20, 79)
)

func decodeCaveat(d *column.Decoder, _ string) Record {
	return &Caveat{Cont: d.Int(cavCont), IDCode: d.Str(cavID), Comment: d.Str(cavComment)}
}

func (*Caveat) Keyword() string    { return "CAVEAT" }
func (*Caveat) Category() Category { return Title }
func (*Caveat) isRecord()          {}
func (r *Caveat) Format() (string, error) {
	e := column.NewEncoder("CAVEAT")
	e.Int(cavCont, r.Cont)
	e.Str(cavID, r.IDCode)
	e.Str(cavComment, r.Comment)
	return e.Line()
}

// Nummdl is the number of models.
type Nummdl struct {
	Count column.Int
}

var nummdlCount = column.Cols(11, 14)

func decodeNummdl(d *column.Decoder, _ string) Record { return &Nummdl{Count: d.Int(nummdlCount)} }

func (*Nummdl) Keyword() string    { return "NUMMDL" }
func (*Nummdl) Category() Category { return Title }
func (*Nummdl) isRecord()          {}
func (r *Nummdl) Format() (string, error) {
	e := column.NewEncoder("NUMMDL")
	e.Int(nummdlCount, r.Count)
	return e.Line()
}

// Revdat is one line of modification history.
type Revdat struct {
	ModNum  column.Int
	Cont    column.Int
	Date    string
	ModID   string
	ModType column.Int // 0 initial release, 1 other
	Records []string   // record types changed
}

var (
	revNum   = column.Cols(8, 10)
	revCont  = column.Cols(11, 12)
	revDate  = column.Cols(14, 22)
	revID    = column.Cols(24, 27)
	revType  = column.Col(32)
	revSlots = slots{first: 40, width: 6, step: 7, n: 4, left: true}
)

func decodeRevdat(d *column.Decoder, _ string) Record {
	return &Revdat{
		ModNum:  d.Int(revNum),
		Cont:    d.Int(revCont),
		Date:    d.Str(revDate),
		ModID:   d.Str(revID),
		ModType: d.Int(revType),
		Records: revSlots.getStr(d),
	}
}

func (*Revdat) Keyword() string    { return "REVDAT" }
func (*Revdat) Category() Category { return Title }
func (*Revdat) isRecord()          {}
func (r *Revdat) Format() (string, error) {
	e := column.NewEncoder("REVDAT")
	e.Int(revNum, r.ModNum)
	e.Int(revCont, r.Cont)
	e.Str(revDate, r.Date)
	e.Str(revID, r.ModID)
	e.Int(revType, r.ModType)
	revSlots.putStr(e, r.Records)
	return e.Line()
}

// Jrnl is one line of a literature reference. Sub is the sub-record
// (AUTH, TITL, REF, REFN, PMID, DOI ...).
type Jrnl struct {
	Sub  string
	Cont column.Int
	Body string
}

var (
	jrnlSub  = column.Cols(13, 16)
	jrnlCont = column.Cols(17, 18)
	jrnlBody = column.Cols(20, 79)
)

func decodeJrnl(d *column.Decoder, _ string) Record {
	return &Jrnl{Sub: d.Str(jrnlSub), Cont: d.Int(jrnlCont), Body: d.Str(jrnlBody)}
}

func (*Jrnl) Keyword() string    { return "JRNL" }
func (*Jrnl) Category() Category { return Title }
func (*Jrnl) isRecord()          {}
func (r *Jrnl) Format() (string, error) {
	e := column.NewEncoder("JRNL")
	e.Str(jrnlSub, r.Sub)
	e.Int(jrnlCont, r.Cont)
	e.Str(jrnlBody, r.Body)
	return e.Line()
}

// Remark is one line of a numbered remark. Layout inside the text is
// up to the remark, so leading blanks are kept.
type Remark struct {
	Num  column.Int
	Body string
}

var (
	remNum  = column.Cols(8, 10)
	remBody = column.Cols(12, 79)
)

func decodeRemark(d *column.Decoder, _ string) Record {
	return &Remark{Num: d.Int(remNum), Body: d.Str(remBody)}
}

func (*Remark) Keyword() string    { return "REMARK" }
func (*Remark) Category() Category { return Title }
func (*Remark) isRecord()          {}
func (r *Remark) Format() (string, error) {
	e := column.NewEncoder("REMARK")
	e.Int(remNum, r.Num)
	e.Str(remBody, r.Body)
	return e.Line()
}
