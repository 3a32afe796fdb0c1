package section

import (
	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// connect takes CONECT records as they come.
type connect struct {
	keywords
}

func newConnect() *connect { return &connect{kwSet("CONECT")} }

func (*connect) Add(int, record.Record) error                { return nil }
func (*connect) Finish() ([]record.Record, []record.Warning) { return nil, nil }

// CheckConnect checks that every serial number in a CONECT record is
// an atom of the first model.
func CheckConnect(items []Item) []record.Warning {
	atoms := make(map[int]bool)
	for _, it := range FirstModel(items) {
		if a, ok := it.Rec.(*record.Atom); ok && a.Serial.Valid {
			atoms[a.Serial.Val] = true
		}
	}
	var warn []record.Warning
	for _, it := range items {
		c, ok := it.Rec.(*record.Conect)
		if !ok {
			continue
		}
		for _, s := range append([]column.Int{c.Serial}, c.Bonded...) {
			if s.Valid && !atoms[s.Val] {
				warn = append(warn, record.Warnf(it.Line, record.WarnUnresolved,
					"CONECT names atom %d, which does not exist", s.Val))
			}
		}
	}
	return warn
}

// bookkeeping takes MASTER and END. Whether MASTER is right and END
// is last are for the bookkeep package.
type bookkeeping struct {
	keywords
	once once
}

func newBookkeeping() *bookkeeping {
	return &bookkeeping{keywords: kwSet("MASTER", "END"), once: make(once)}
}

func (b *bookkeeping) Add(line int, r record.Record) error {
	if _, ok := r.(*record.Master); ok {
		return b.once.see(line, "MASTER")
	}
	return nil
}

func (*bookkeeping) Finish() ([]record.Record, []record.Warning) { return nil, nil }
