package section

import (
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// primary handles DBREF, SEQADV, SEQRES and MODRES.
type primary struct {
	keywords
	chains []byte // in order of first SEQRES
	seq    map[byte]*seqState
	dbref1 *record.Dbref1 // waiting for its DBREF2
	dbLine int
	warn   []record.Warning
}

// seqState follows the SEQRES lines of one chain
type seqState struct {
	firstLine int
	serial    int
	numRes    int
	count     int
}

func newPrimary() *primary {
	return &primary{
		keywords: kwSet("DBREF", "DBREF1", "DBREF2", "SEQADV", "SEQRES", "MODRES"),
		seq:      make(map[byte]*seqState),
	}
}

func (p *primary) Add(line int, r record.Record) error {
	pending := p.dbref1
	p.dbref1 = nil
	switch r := r.(type) {
	case *record.Dbref1:
		p.unpaired(pending)
		p.dbref1, p.dbLine = r, line
	case *record.Dbref2:
		if pending == nil || pending.Chain != r.Chain {
			p.unpaired(pending)
			return record.Orderf("DBREF2 for chain %c does not follow its DBREF1", r.Chain)
		}
	case *record.Seqres:
		p.unpaired(pending)
		p.addSeqres(line, r)
	default:
		p.unpaired(pending)
	}
	return nil
}

// unpaired warns about a DBREF1 with no DBREF2 after it
func (p *primary) unpaired(d *record.Dbref1) {
	if d != nil {
		p.warn = append(p.warn, record.Warnf(p.dbLine, record.WarnIncomplete,
			"DBREF1 for chain %c without DBREF2", d.Chain))
	}
}

func (p *primary) addSeqres(line int, r *record.Seqres) {
	s, ok := p.seq[r.Chain]
	if !ok {
		s = &seqState{firstLine: line, numRes: r.NumRes.Val}
		p.seq[r.Chain] = s
		p.chains = append(p.chains, r.Chain)
	}
	if r.Serial.Val != s.serial+1 {
		p.warn = append(p.warn, record.Warnf(line, record.WarnContinuation,
			"SEQRES chain %c serial %d follows %d", r.Chain, r.Serial.Val, s.serial))
	}
	s.serial = r.Serial.Val
	if r.NumRes.Val != s.numRes {
		p.warn = append(p.warn, record.Warnf(line, record.WarnCount,
			"SEQRES chain %c numRes %d, was %d", r.Chain, r.NumRes.Val, s.numRes))
	}
	s.count += len(r.Residues)
}

func (p *primary) Finish() ([]record.Record, []record.Warning) {
	p.unpaired(p.dbref1)
	p.dbref1 = nil
	for _, c := range p.chains {
		s := p.seq[c]
		if s.count != s.numRes {
			p.warn = append(p.warn, record.Warnf(s.firstLine, record.WarnCount,
				"SEQRES chain %c lists %d residues, numRes is %d", c, s.count, s.numRes))
		}
	}
	return nil, p.warn
}
