package section

import (
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// state of the coordinate section
type mdlState byte

const (
	noModel mdlState = iota
	inModel
)

// coordinates follows MODEL and ENDMDL nesting and where ANISOU and
// TER records fall.
type coordinates struct {
	keywords
	state    mdlState
	models   int  // MODEL records seen
	implicit bool // coordinates seen before any MODEL
	modelAt  int  // line of the open MODEL
	prev     record.Record
	ter      *terState
	warn     []record.Warning
}

// terState remembers the chain closed by the last TER
type terState struct {
	chain  byte
	warned bool
}

func newCoordinates() *coordinates {
	return &coordinates{
		keywords: kwSet("MODEL", "ATOM", "HETATM", "ANISOU", "TER", "ENDMDL"),
	}
}

func (c *coordinates) Add(line int, r record.Record) error {
	if err := c.step(line, r); err != nil {
		return err
	}
	c.prev = r
	return nil
}

func (c *coordinates) step(line int, r record.Record) error {
	switch r := r.(type) {
	case *record.Model:
		if c.state == inModel {
			return record.Orderf("MODEL %d inside the model started at line %d", r.Serial.Val, c.modelAt)
		}
		if c.implicit {
			return record.Orderf("MODEL %d after coordinates outside a model", r.Serial.Val)
		}
		c.state, c.modelAt, c.ter = inModel, line, nil
		c.models++
		return nil
	case *record.Endmdl:
		if c.state != inModel {
			return record.Orderf("ENDMDL without MODEL")
		}
		c.state, c.ter = noModel, nil
		return nil
	}

	if c.state == noModel {
		if c.models > 0 {
			return record.Orderf("%s outside a model", r.Keyword())
		}
		c.implicit = true
	}
	switch r := r.(type) {
	case *record.Anisou:
		a, ok := c.prev.(*record.Atom)
		if !ok || a.Serial != r.Serial {
			return record.Orderf("ANISOU %d does not follow its atom", r.Serial.Val)
		}
	case *record.Ter:
		chain := r.Res.Chain
		if a, ok := c.prev.(*record.Atom); ok && (chain == 0 || chain == ' ') {
			chain = a.Res.Chain
		}
		c.ter = &terState{chain: blankByte(chain)}
	case *record.Atom:
		if t := c.ter; t != nil && !t.warned && blankByte(r.Res.Chain) == t.chain {
			c.warn = append(c.warn, record.Warnf(line, record.WarnTerChain,
				"%s %d in chain %c after its TER", r.Keyword(), r.Serial.Val, t.chain))
			t.warned = true
		}
	}
	return nil
}

func (c *coordinates) Finish() ([]record.Record, []record.Warning) {
	if c.state == inModel {
		c.state = noModel
		c.warn = append(c.warn, record.Warnf(c.modelAt, record.WarnInserted,
			"model started here has no ENDMDL, one was added"))
		return []record.Record{&record.Endmdl{}}, c.warn
	}
	return nil, c.warn
}

// Model is one model's coordinate records. Serial is 0 for the
// implicit model of a file with no MODEL records.
type Model struct {
	Serial  int
	Records []record.Record // ATOM, HETATM, ANISOU and TER
}

// Atoms returns the ATOM and HETATM records.
func (m *Model) Atoms() []*record.Atom {
	var ret []*record.Atom
	for _, r := range m.Records {
		if a, ok := r.(*record.Atom); ok {
			ret = append(ret, a)
		}
	}
	return ret
}

// Chain returns the atoms of one chain.
func (m *Model) Chain(id byte) []*record.Atom {
	var ret []*record.Atom
	for _, a := range m.Atoms() {
		if blankByte(a.Res.Chain) == blankByte(id) {
			ret = append(ret, a)
		}
	}
	return ret
}

// ChainIDs lists chains in the order their first atom appears.
func (m *Model) ChainIDs() []byte {
	var ret []byte
	seen := make(map[byte]bool)
	for _, a := range m.Atoms() {
		c := blankByte(a.Res.Chain)
		if !seen[c] {
			seen[c] = true
			ret = append(ret, c)
		}
	}
	return ret
}

// Residue returns the atoms of one residue, or nil if it is not there.
func (m *Model) Residue(chain byte, seq int, icode byte) []*record.Atom {
	var ret []*record.Atom
	for _, a := range m.Atoms() {
		r := a.Res
		if blankByte(r.Chain) == blankByte(chain) && r.Seq.Valid && r.Seq.Val == seq &&
			blankByte(r.ICode) == blankByte(icode) {
			ret = append(ret, a)
		}
	}
	return ret
}

// Atom finds an atom by name in a residue. With alternate locations,
// the first one wins.
func (m *Model) Atom(chain byte, seq int, icode byte, name string) *record.Atom {
	for _, a := range m.Residue(chain, seq, icode) {
		if a.Name == name {
			return a
		}
	}
	return nil
}

// NumAtoms counts ATOM and HETATM records. With heavy set, atoms whose
// element is H or D are left out.
func (m *Model) NumAtoms(heavy bool) int {
	n := 0
	for _, a := range m.Atoms() {
		if heavy && (a.Element == "H" || a.Element == "D") {
			continue
		}
		n++
	}
	return n
}

// NumResidues counts the residues with ATOM records, and those with
// only HETATM records if het is set.
func (m *Model) NumResidues(het bool) int {
	seen := make(map[record.Residue]bool)
	for _, a := range m.Atoms() {
		if a.Het && !het {
			continue
		}
		r := a.Res
		r.Chain, r.ICode = blankByte(r.Chain), blankByte(r.ICode)
		seen[r] = true
	}
	return len(seen)
}

// Models splits the coordinate records into models. With no MODEL
// records there is one implicit model, if there are any coordinates
// at all.
func Models(recs []record.Record) []*Model {
	var ret []*Model
	var cur *Model
	for _, r := range recs {
		switch r := r.(type) {
		case *record.Model:
			cur = &Model{Serial: r.Serial.Val}
			ret = append(ret, cur)
		case *record.Endmdl:
			cur = nil
		case *record.Atom, *record.Anisou, *record.Ter:
			if cur == nil {
				cur = &Model{}
				ret = append(ret, cur)
			}
			cur.Records = append(cur.Records, r)
		}
	}
	return ret
}

// FirstModel returns the items of the coordinate section up to the
// end of the first model. Lines outside the coordinate section are
// included, so they act like the rest of the file.
func FirstModel(items []Item) []Item {
	for i, it := range items {
		if _, ok := it.Rec.(*record.Endmdl); ok {
			return items[:i]
		}
	}
	return items
}
