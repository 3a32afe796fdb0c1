package entry

import (
	"fmt"

	"github.com/andrew-torda/oldpdb/pkg/bookkeep"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

// index is everything derived from the records. It is thrown away
// whenever the records change and built again on the next read.
type index struct {
	recs   []record.Record
	byKw   map[string][]record.Record
	tally  bookkeep.Tally
	models []*section.Model
}

func (e *Entry) idx() *index {
	if e.cache != nil {
		return e.cache
	}
	x := &index{byKw: make(map[string][]record.Record)}
	for _, it := range e.items {
		x.recs = append(x.recs, it.Rec)
		kw := it.Rec.Keyword()
		x.byKw[kw] = append(x.byKw[kw], it.Rec)
	}
	x.tally = bookkeep.Count(x.recs)
	x.models = section.Models(x.recs)
	e.cache = x
	return x
}

// all picks the records of one type out of recs.
func all[T record.Record](recs []record.Record) []T {
	var ret []T
	for _, r := range recs {
		if t, ok := r.(T); ok {
			ret = append(ret, t)
		}
	}
	return ret
}

// first is the first record of a type, or the zero value.
func first[T record.Record](recs []record.Record) T {
	var zero T
	for _, r := range recs {
		if t, ok := r.(T); ok {
			return t
		}
	}
	return zero
}

// Len is the number of records.
func (e *Entry) Len() int { return len(e.items) }

// Records returns the records in stored order. The slice is a copy,
// the records are not.
func (e *Entry) Records() []record.Record {
	return append([]record.Record(nil), e.idx().recs...)
}

// ByKeyword returns the records with a keyword, like "HELIX" or
// "SCALE2", in stored order.
func (e *Entry) ByKeyword(kw string) []record.Record {
	return append([]record.Record(nil), e.idx().byKw[kw]...)
}

// Tally is what a MASTER record for the current records would say.
func (e *Entry) Tally() bookkeep.Tally { return e.idx().tally }

// Master is the MASTER record as read, or nil.
func (e *Entry) Master() *record.Master {
	return first[*record.Master](e.idx().byKw["MASTER"])
}

// Header returns the HEADER record or nil.
func (e *Entry) Header() *record.Header {
	return first[*record.Header](e.idx().byKw["HEADER"])
}

// Title is the text of the TITLE lines joined up.
func (e *Entry) Title() string { return e.Text("TITLE") }

// Text joins the lines of a free text record such as COMPND or
// KEYWDS.
func (e *Entry) Text(kw string) string { return section.TextOf(e.idx().byKw[kw], kw) }

// Journal is the primary citation by sub-record (AUTH, TITL, REF ...).
func (e *Entry) Journal() map[string]string { return section.Journal(e.idx().byKw["JRNL"]) }

// Remarks are the REMARK lines grouped by number.
func (e *Entry) Remarks() []section.Remark { return section.Remarks(e.idx().byKw["REMARK"]) }

// Sequences are the SEQRES residues by chain.
func (e *Entry) Sequences() []section.Sequence {
	return section.Sequences(e.idx().byKw["SEQRES"])
}

func (e *Entry) DBRefs() []*record.Dbref { return all[*record.Dbref](e.idx().byKw["DBREF"]) }

func (e *Entry) ModifiedResidues() []*record.Modres {
	return all[*record.Modres](e.idx().byKw["MODRES"])
}

func (e *Entry) Hets() []*record.Het { return all[*record.Het](e.idx().byKw["HET"]) }

// HetNames maps a het identifier to its chemical name.
func (e *Entry) HetNames() map[string]string {
	return section.HetNames(e.idx().byKw["HETNAM"], false)
}

// HetSynonyms maps a het identifier to its synonyms.
func (e *Entry) HetSynonyms() map[string]string {
	return section.HetNames(e.idx().byKw["HETSYN"], true)
}

func (e *Entry) Formulas() []section.Formula { return section.Formulas(e.idx().byKw["FORMUL"]) }

func (e *Entry) Helices() []*record.Helix { return all[*record.Helix](e.idx().byKw["HELIX"]) }
func (e *Entry) Sheets() []*record.Sheet  { return all[*record.Sheet](e.idx().byKw["SHEET"]) }
func (e *Entry) Turns() []*record.Turn    { return all[*record.Turn](e.idx().byKw["TURN"]) }
func (e *Entry) SSBonds() []*record.Ssbond {
	return all[*record.Ssbond](e.idx().byKw["SSBOND"])
}
func (e *Entry) Links() []*record.Link     { return all[*record.Link](e.idx().byKw["LINK"]) }
func (e *Entry) CisPeps() []*record.Cispep { return all[*record.Cispep](e.idx().byKw["CISPEP"]) }
func (e *Entry) Sites() []*record.Site     { return all[*record.Site](e.idx().byKw["SITE"]) }

// Cryst returns the CRYST1 record or nil.
func (e *Entry) Cryst() *record.Cryst1 { return first[*record.Cryst1](e.idx().byKw["CRYST1"]) }

// Transforms gathers the ORIGX, SCALE and MTRIX rows into matrices.
func (e *Entry) Transforms() []*section.Transform { return section.Transforms(e.idx().recs) }

// Models returns the models in file order. A file without MODEL
// records has one model with serial 0.
func (e *Entry) Models() []*section.Model { return e.idx().models }

// Model finds a model by serial number, or returns nil.
func (e *Entry) Model(serial int) *section.Model {
	for _, m := range e.idx().models {
		if m.Serial == serial {
			return m
		}
	}
	return nil
}

// ChainIDs lists the chains of the first model.
func (e *Entry) ChainIDs() []byte {
	if m := e.idx().models; len(m) > 0 {
		return m[0].ChainIDs()
	}
	return nil
}

// Chain returns the atoms of one chain in the first model.
func (e *Entry) Chain(id byte) []*record.Atom {
	if m := e.idx().models; len(m) > 0 {
		return m[0].Chain(id)
	}
	return nil
}

func (e *Entry) Conects() []*record.Conect { return all[*record.Conect](e.idx().byKw["CONECT"]) }

// nthModel is model n counting from 1 in file order, or nil.
func (e *Entry) nthModel(n int) *section.Model {
	if m := e.idx().models; n >= 1 && n <= len(m) {
		return m[n-1]
	}
	return nil
}

// Residue returns the atoms of one residue in a model. Models are
// counted from 1 in file order, so 1 is also the implicit model of a
// file with no MODEL records. nil means no such model or residue.
func (e *Entry) Residue(chain byte, seq int, icode byte, model int) []*record.Atom {
	if m := e.nthModel(model); m != nil {
		return m.Residue(chain, seq, icode)
	}
	return nil
}

// Atom finds an atom by residue and name in a model counted as for
// Residue, or returns nil.
func (e *Entry) Atom(chain byte, seq int, icode byte, name string, model int) *record.Atom {
	if m := e.nthModel(model); m != nil {
		return m.Atom(chain, seq, icode, name)
	}
	return nil
}

// LinkElements says for each end of a LINK if the atom there is named
// by its element, like a metal ion, and not an atom of a residue. The
// atoms are looked up in the first model.
func (e *Entry) LinkElements(l *record.Link) (bool, bool, error) {
	var is [2]bool
	for i, ref := range []record.AtomRef{l.Atom1, l.Atom2} {
		r := ref.Res
		a := e.Atom(r.Chain, r.Seq.Val, r.ICode, ref.Name, 1)
		if a == nil || !r.Seq.Valid {
			return false, false, fmt.Errorf("LINK atom %s of %s %d in chain %c not found",
				ref.Name, r.Name, r.Seq.Val, r.Chain)
		}
		is[i] = a.NameIsElement()
	}
	return is[0], is[1], nil
}
