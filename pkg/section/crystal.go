package section

import (
	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/oldpdb/pkg/record"
)

// crystal handles CRYST1 and the ORIGXn, SCALEn and MTRIXn rows.
type crystal struct {
	keywords
	once  once
	cryst bool
	sets  []*xformSet
	byKey map[xformKey]*xformSet
	warn  []record.Warning
}

// xformKey names one 3x4 transform. Only MTRIX has a serial number.
type xformKey struct {
	kind   record.XformKind
	serial int
}

type xformSet struct {
	key  xformKey
	line int // of the first row
	rows [3]bool
}

func newCrystal() *crystal {
	return &crystal{
		keywords: kwSet("CRYST1",
			"ORIGX1", "ORIGX2", "ORIGX3",
			"SCALE1", "SCALE2", "SCALE3",
			"MTRIX1", "MTRIX2", "MTRIX3"),
		once:  make(once),
		byKey: make(map[xformKey]*xformSet),
	}
}

func (c *crystal) Add(line int, r record.Record) error {
	switch r := r.(type) {
	case *record.Cryst1:
		if err := c.once.see(line, "CRYST1"); err != nil {
			return err
		}
		c.cryst = true
	case *record.Xform:
		if r.N < 1 || r.N > 3 {
			return record.Orderf("%s row %d", r.Kind, r.N)
		}
		if !c.cryst {
			return record.Orderf("%s before CRYST1", r.Keyword())
		}
		k := xformKey{r.Kind, r.Serial.Val}
		s, ok := c.byKey[k]
		if !ok {
			s = &xformSet{key: k, line: line}
			c.byKey[k] = s
			c.sets = append(c.sets, s)
		}
		if s.rows[r.N-1] {
			return record.Orderf("second %s row %d", r.Kind, r.N)
		}
		s.rows[r.N-1] = true
	}
	return nil
}

func (c *crystal) Finish() ([]record.Record, []record.Warning) {
	for _, s := range c.sets {
		if s.rows != [3]bool{true, true, true} {
			c.warn = append(c.warn, record.Warnf(s.line, record.WarnIncomplete,
				"%s transform does not have all three rows", s.key.kind))
		}
	}
	return nil, c.warn
}

// Transform is a 3x4 transform put together from its three rows.
// Rows that are missing are nil.
type Transform struct {
	Kind   record.XformKind
	Serial int // MTRIX only
	Rows   [3]*record.Xform
}

// Complete says if all three rows are there.
func (t *Transform) Complete() bool {
	return t.Rows[0] != nil && t.Rows[1] != nil && t.Rows[2] != nil
}

// Matrix gives the transform as three rows of four numbers, the last
// column being the translation. Missing rows or values are zero.
func (t *Transform) Matrix() *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(3, 4)
	for i, row := range t.Rows {
		if row == nil {
			continue
		}
		for j, v := range row.M {
			m.Mat[i][j] = float32(v.Val)
		}
		m.Mat[i][3] = float32(row.T.Val)
	}
	return m
}

// Transforms collects the transform rows into transforms, in the
// order they first appear.
func Transforms(recs []record.Record) []*Transform {
	var ret []*Transform
	byKey := make(map[xformKey]*Transform)
	for _, r := range recs {
		x, ok := r.(*record.Xform)
		if !ok || x.N < 1 || x.N > 3 {
			continue
		}
		k := xformKey{x.Kind, x.Serial.Val}
		t, ok := byKey[k]
		if !ok {
			t = &Transform{Kind: x.Kind, Serial: x.Serial.Val}
			byKey[k] = t
			ret = append(ret, t)
		}
		t.Rows[x.N-1] = x
	}
	return ret
}
