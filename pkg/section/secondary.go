package section

import (
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// secondary takes HELIX, SHEET, TURN, the connectivity annotation
// (SSBOND, LINK, CISPEP) and SITE. Nothing here can be checked
// without the sequence and coordinates.
type secondary struct {
	keywords
}

func newSecondary() *secondary {
	return &secondary{kwSet("HELIX", "SHEET", "TURN", "SSBOND", "LINK", "CISPEP", "SITE")}
}

func (*secondary) Add(int, record.Record) error                { return nil }
func (*secondary) Finish() ([]record.Record, []record.Warning) { return nil, nil }

// resKey identifies a residue by position only
type resKey struct {
	chain byte
	seq   int
	icode byte
}

func posOf(r record.Residue) resKey {
	return resKey{blankByte(r.Chain), r.Seq.Val, blankByte(r.ICode)}
}

// CheckSecondary checks that the residues at the ends of each HELIX,
// SHEET and TURN exist. A residue exists if the first model has
// atoms for it, or failing that, if the SEQRES of its chain lists a
// residue of that name. The second case covers residues which are in
// the sequence but were not seen in the density.
func CheckSecondary(items []Item) []record.Warning {
	present := make(map[resKey]bool)
	for _, it := range FirstModel(items) {
		if a, ok := it.Rec.(*record.Atom); ok {
			present[posOf(a.Res)] = true
		}
	}
	inSeq := make(map[byte]map[string]bool)
	for _, it := range items {
		if s, ok := it.Rec.(*record.Seqres); ok {
			m := inSeq[s.Chain]
			if m == nil {
				m = make(map[string]bool)
				inSeq[s.Chain] = m
			}
			for _, n := range s.Residues {
				m[n] = true
			}
		}
	}
	found := func(r record.Residue) bool {
		return present[posOf(r)] || inSeq[blankByte(r.Chain)][r.Name]
	}

	var warn []record.Warning
	check := func(it Item, id string, ends ...record.Residue) {
		for _, r := range ends {
			if !found(r) {
				warn = append(warn, record.Warnf(it.Line, record.WarnUnresolved,
					"%s %s: no residue %s %c %d%c", it.Rec.Keyword(), id,
					r.Name, blankByte(r.Chain), r.Seq.Val, blankByte(r.ICode)))
			}
		}
	}
	for _, it := range items {
		switch r := it.Rec.(type) {
		case *record.Helix:
			check(it, r.ID, r.Init, r.End)
		case *record.Sheet:
			check(it, r.ID, r.Init, r.End)
		case *record.Turn:
			check(it, r.ID, r.Init, r.End)
		}
	}
	return warn
}
