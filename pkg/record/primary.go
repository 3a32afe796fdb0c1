package record

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
)

// Primary structure: references to sequence databases, the sequence
// itself and modified residues.

func init() {
	register(decodeDbref, "DBREF")
	register(decodeDbref1, "DBREF1")
	register(decodeDbref2, "DBREF2")
	register(decodeSeqadv, "SEQADV")
	register(decodeSeqres, "SEQRES")
	register(decodeModres, "MODRES")
}

// Dbref links a chain to a sequence database entry.
type Dbref struct {
	IDCode     string
	Chain      byte
	SeqBegin   column.Int
	InsBegin   byte
	SeqEnd     column.Int
	InsEnd     byte
	Database   string
	Accession  string
	DBIDCode   string
	DBSeqBegin column.Int
	DBInsBeg   byte
	DBSeqEnd   column.Int
	DBInsEnd   byte
}

var (
	dbID       = column.Cols(8, 11)
	dbChain    = column.Col(13)
	dbSeqBeg   = column.Cols(15, 18)
	dbInsBeg   = column.Col(19)
	dbSeqEnd   = column.Cols(21, 24)
	dbInsEnd   = column.Col(25)
	dbDatabase = column.Cols(27, 32)
	dbAcc      = column.Cols(34, 41)
	dbDBID     = column.Cols(43, 54)
	dbDBBeg    = column.Cols(56, 60)
	dbDBInsBeg = column.Col(61)
	dbDBEnd    = column.Cols(63, 67)
	dbDBInsEnd = column.Col(68)
)

func decodeDbref(d *column.Decoder, _ string) Record {
	return &Dbref{
		IDCode:     d.Str(dbID),
		Chain:      d.Char(dbChain),
		SeqBegin:   d.Int(dbSeqBeg),
		InsBegin:   d.Char(dbInsBeg),
		SeqEnd:     d.Int(dbSeqEnd),
		InsEnd:     d.Char(dbInsEnd),
		Database:   d.Str(dbDatabase),
		Accession:  d.Str(dbAcc),
		DBIDCode:   d.Str(dbDBID),
		DBSeqBegin: d.Int(dbDBBeg),
		DBInsBeg:   d.Char(dbDBInsBeg),
		DBSeqEnd:   d.Int(dbDBEnd),
		DBInsEnd:   d.Char(dbDBInsEnd),
	}
}

func (*Dbref) Keyword() string    { return "DBREF" }
func (*Dbref) Category() Category { return Primary }
func (*Dbref) isRecord()          {}
func (r *Dbref) Format() (string, error) {
	e := column.NewEncoder("DBREF")
	e.Str(dbID, r.IDCode)
	e.Char(dbChain, r.Chain)
	e.Int(dbSeqBeg, r.SeqBegin)
	e.Char(dbInsBeg, r.InsBegin)
	e.Int(dbSeqEnd, r.SeqEnd)
	e.Char(dbInsEnd, r.InsEnd)
	e.Str(dbDatabase, r.Database)
	e.Str(dbAcc, r.Accession)
	e.Str(dbDBID, r.DBIDCode)
	e.Int(dbDBBeg, r.DBSeqBegin)
	e.Char(dbDBInsBeg, r.DBInsBeg)
	e.Int(dbDBEnd, r.DBSeqEnd)
	e.Char(dbDBInsEnd, r.DBInsEnd)
	return e.Line()
}

// Dbref1 is the first half of a database reference whose codes are
// too long for DBREF. Dbref2 follows it.
type Dbref1 struct {
	IDCode   string
	Chain    byte
	SeqBegin column.Int
	InsBegin byte
	SeqEnd   column.Int
	InsEnd   byte
	Database string
	DBIDCode string
}

var db1DBID = column.Cols(48, 67)

func decodeDbref1(d *column.Decoder, _ string) Record {
	return &Dbref1{
		IDCode:   d.Str(dbID),
		Chain:    d.Char(dbChain),
		SeqBegin: d.Int(dbSeqBeg),
		InsBegin: d.Char(dbInsBeg),
		SeqEnd:   d.Int(dbSeqEnd),
		InsEnd:   d.Char(dbInsEnd),
		Database: d.Str(dbDatabase),
		DBIDCode: d.Str(db1DBID),
	}
}

func (*Dbref1) Keyword() string    { return "DBREF1" }
func (*Dbref1) Category() Category { return Primary }
func (*Dbref1) isRecord()          {}
func (r *Dbref1) Format() (string, error) {
	e := column.NewEncoder("DBREF1")
	e.Str(dbID, r.IDCode)
	e.Char(dbChain, r.Chain)
	e.Int(dbSeqBeg, r.SeqBegin)
	e.Char(dbInsBeg, r.InsBegin)
	e.Int(dbSeqEnd, r.SeqEnd)
	e.Char(dbInsEnd, r.InsEnd)
	e.Str(dbDatabase, r.Database)
	e.Str(db1DBID, r.DBIDCode)
	return e.Line()
}

// Dbref2 carries the accession and database sequence range.
type Dbref2 struct {
	IDCode    string
	Chain     byte
	Accession string
	SeqBegin  column.Int
	SeqEnd    column.Int
}

var (
	db2Acc = column.Cols(19, 40)
	db2Beg = column.Cols(46, 55)
	db2End = column.Cols(58, 67)
)

func decodeDbref2(d *column.Decoder, _ string) Record {
	return &Dbref2{
		IDCode:    d.Str(dbID),
		Chain:     d.Char(dbChain),
		Accession: d.Str(db2Acc),
		SeqBegin:  d.Int(db2Beg),
		SeqEnd:    d.Int(db2End),
	}
}

func (*Dbref2) Keyword() string    { return "DBREF2" }
func (*Dbref2) Category() Category { return Primary }
func (*Dbref2) isRecord()          {}
func (r *Dbref2) Format() (string, error) {
	e := column.NewEncoder("DBREF2")
	e.Str(dbID, r.IDCode)
	e.Char(dbChain, r.Chain)
	e.Str(db2Acc, r.Accession)
	e.Int(db2Beg, r.SeqBegin)
	e.Int(db2End, r.SeqEnd)
	return e.Line()
}

// Seqadv is a difference between the sequence in the entry and the
// one in the database.
type Seqadv struct {
	IDCode    string
	Res       Residue
	Database  string
	Accession string
	DBRes     string
	DBSeq     column.Int
	Conflict  string
}

var (
	advID       = column.Cols(8, 11)
	advRes      = cols4(13, 15, 17, 19, 22, 23)
	advDatabase = column.Cols(25, 28)
	advAcc      = column.Cols(30, 38)
	advDBRes    = column.Cols(40, 42)
	advDBSeq    = column.Cols(44, 48)
	advConflict = column.Cols(50, 70)
)

func decodeSeqadv(d *column.Decoder, _ string) Record {
	return &Seqadv{
		IDCode:    d.Str(advID),
		Res:       advRes.get(d),
		Database:  d.Str(advDatabase),
		Accession: d.Str(advAcc),
		DBRes:     d.RStr(advDBRes),
		DBSeq:     d.Int(advDBSeq),
		Conflict:  d.Str(advConflict),
	}
}

func (*Seqadv) Keyword() string    { return "SEQADV" }
func (*Seqadv) Category() Category { return Primary }
func (*Seqadv) isRecord()          {}
func (r *Seqadv) Format() (string, error) {
	e := column.NewEncoder("SEQADV")
	e.Str(advID, r.IDCode)
	advRes.put(e, r.Res)
	e.Str(advDatabase, r.Database)
	e.Str(advAcc, r.Accession)
	e.RStr(advDBRes, r.DBRes)
	e.Int(advDBSeq, r.DBSeq)
	e.Str(advConflict, r.Conflict)
	return e.Line()
}

// Seqres is one line of the sequence of a chain. Serial counts lines
// within the chain. NumRes is the length of the whole chain.
type Seqres struct {
	Serial   column.Int
	Chain    byte
	NumRes   column.Int
	Residues []string // at most 13 per line
}

// SeqresPerLine is the number of residue names on one SEQRES line.
const SeqresPerLine = 13

var (
	seqSerial = column.Cols(8, 10)
	seqChain  = column.Col(12)
	seqNumRes = column.Cols(14, 17)
	seqSlots  = slots{first: 20, width: 3, step: 4, n: SeqresPerLine}
)

func decodeSeqres(d *column.Decoder, _ string) Record {
	return &Seqres{
		Serial:   d.Int(seqSerial),
		Chain:    d.Char(seqChain),
		NumRes:   d.Int(seqNumRes),
		Residues: seqSlots.getStr(d),
	}
}

func (*Seqres) Keyword() string    { return "SEQRES" }
func (*Seqres) Category() Category { return Primary }
func (*Seqres) isRecord()          {}
func (r *Seqres) Format() (string, error) {
	e := column.NewEncoder("SEQRES")
	e.Int(seqSerial, r.Serial)
	e.Char(seqChain, r.Chain)
	e.Int(seqNumRes, r.NumRes)
	seqSlots.putStr(e, r.Residues)
	return e.Line()
}

// Modres describes a modified standard residue.
type Modres struct {
	IDCode  string
	Res     Residue
	StdRes  string
	Comment string
}

var (
	modID      = column.Cols(8, 11)
	modRes     = cols4(13, 15, 17, 19, 22, 23)
	modStdRes  = column.Cols(25, 27)
	modComment = column.Cols(30, 70)
)

func decodeModres(d *column.Decoder, _ string) Record {
	return &Modres{
		IDCode:  d.Str(modID),
		Res:     modRes.get(d),
		StdRes:  d.RStr(modStdRes),
		Comment: d.Str(modComment),
	}
}

func (*Modres) Keyword() string    { return "MODRES" }
func (*Modres) Category() Category { return Primary }
func (*Modres) isRecord()          {}
func (r *Modres) Format() (string, error) {
	e := column.NewEncoder("MODRES")
	e.Str(modID, r.IDCode)
	modRes.put(e, r.Res)
	e.RStr(modStdRes, r.StdRes)
	e.Str(modComment, r.Comment)
	return e.Line()
}
