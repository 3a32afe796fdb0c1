package section

import (
	"strings"

	"github.com/andrew-torda/oldpdb/pkg/record"
)

// heterogen handles HET, HETNAM, HETSYN and FORMUL.
// It only checks continuation numbers. Whether the names refer to
// groups that exist is CheckHeterogen's job.
type heterogen struct {
	keywords
	cont *contTracker
	warn []record.Warning
}

func newHeterogen() *heterogen {
	return &heterogen{
		keywords: kwSet("HET", "HETNAM", "HETSYN", "FORMUL"),
		cont:     newContTracker(true),
	}
}

func (h *heterogen) Add(line int, r record.Record) error {
	var w record.Warning
	var bad bool
	switch r := r.(type) {
	case *record.Hetnam:
		w, bad = h.cont.next(line, r.Keyword()+" "+r.HetID, contVal(r.Cont))
	case *record.Formul:
		w, bad = h.cont.next(line, "FORMUL "+r.HetID, contVal(r.Cont))
	}
	if bad {
		h.warn = append(h.warn, w)
	}
	return nil
}

func (h *heterogen) Finish() ([]record.Record, []record.Warning) { return nil, h.warn }

// isWater is true for the residue names used for water. They get
// FORMUL records but never HET records.
func isWater(name string) bool { return name == "HOH" || name == "DOD" }

// hetKey says where a het group is
type hetKey struct {
	id    string
	chain byte
	seq   int
	icode byte
}

func blankByte(b byte) byte {
	if b == 0 {
		return ' '
	}
	return b
}

func keyOf(id string, res record.Residue) hetKey {
	return hetKey{id, blankByte(res.Chain), res.Seq.Val, blankByte(res.ICode)}
}

// CheckHeterogen checks that HETNAM, HETSYN and FORMUL name groups
// declared by HET, and that each HET has the stated number of HETATM
// records in the first model.
func CheckHeterogen(items []Item) []record.Warning {
	var warn []record.Warning
	declared := make(map[string]bool)
	type hetAt struct {
		line int
		het  *record.Het
	}
	var hets []hetAt
	for _, it := range items {
		if h, ok := it.Rec.(*record.Het); ok {
			declared[h.HetID] = true
			hets = append(hets, hetAt{it.Line, h})
		}
	}
	for _, it := range items {
		var id string
		switch r := it.Rec.(type) {
		case *record.Hetnam:
			id = r.HetID
		case *record.Formul:
			if r.Water || isWater(r.HetID) {
				continue
			}
			id = r.HetID
		default:
			continue
		}
		if !declared[id] {
			warn = append(warn, record.Warnf(it.Line, record.WarnUnresolved,
				"%s names %s, which has no HET record", it.Rec.Keyword(), id))
		}
	}
	if len(hets) == 0 {
		return warn
	}
	count := make(map[hetKey]int)
	for _, it := range FirstModel(items) {
		if a, ok := it.Rec.(*record.Atom); ok && a.Het {
			count[keyOf(a.Res.Name, a.Res)]++
		}
	}
	for _, h := range hets {
		res := record.Residue{Chain: h.het.Chain, Seq: h.het.SeqNum, ICode: h.het.ICode}
		n := count[keyOf(h.het.HetID, res)]
		switch {
		case n == 0:
			warn = append(warn, record.Warnf(h.line, record.WarnUnresolved,
				"HET %s %c %d has no HETATM records", h.het.HetID, h.het.Chain, h.het.SeqNum.Val))
		case h.het.NumAtoms.Valid && n != h.het.NumAtoms.Val:
			warn = append(warn, record.Warnf(h.line, record.WarnCount,
				"HET %s %c %d says %d atoms, found %d", h.het.HetID, h.het.Chain,
				h.het.SeqNum.Val, h.het.NumAtoms.Val, n))
		}
	}
	return warn
}

// joinPieces puts continued text back together. A line that ends in
// a hyphen was broken inside a word.
func joinPieces(pieces []string) string {
	var b strings.Builder
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "-") {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}

// HetNames maps each het ID to its full chemical name. With syn set
// it gives the synonyms instead.
func HetNames(recs []record.Record, syn bool) map[string]string {
	pieces := make(map[string][]string)
	for _, r := range recs {
		if h, ok := r.(*record.Hetnam); ok && h.Syn == syn {
			pieces[h.HetID] = append(pieces[h.HetID], h.Text)
		}
	}
	ret := make(map[string]string, len(pieces))
	for id, p := range pieces {
		ret[id] = joinPieces(p)
	}
	return ret
}

// Formula is the joined FORMUL lines of one group.
type Formula struct {
	CompNum int
	HetID   string
	Water   bool
	Text    string
}

// Formulas returns the formulas in the order they first appear.
func Formulas(recs []record.Record) []Formula {
	var ret []Formula
	pieces := make(map[string][]string)
	for _, r := range recs {
		f, ok := r.(*record.Formul)
		if !ok {
			continue
		}
		if _, seen := pieces[f.HetID]; !seen {
			ret = append(ret, Formula{CompNum: f.CompNum.Val, HetID: f.HetID, Water: f.Water})
		}
		pieces[f.HetID] = append(pieces[f.HetID], f.Text)
	}
	for i := range ret {
		ret[i].Text = joinPieces(pieces[ret[i].HetID])
	}
	return ret
}
