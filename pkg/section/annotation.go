package section

import (
	"strconv"

	"github.com/andrew-torda/oldpdb/pkg/record"
)

// annotation handles the title section.
type annotation struct {
	keywords
	once   once
	single *contTracker // TITLE, COMPND ... one logical record each
	multi  *contTracker // REVDAT, JRNL, several logical records
	warn   []record.Warning
}

func newAnnotation() *annotation {
	return &annotation{
		keywords: kwSet("HEADER", "OBSLTE", "TITLE", "SPLIT", "CAVEAT", "COMPND",
			"SOURCE", "KEYWDS", "EXPDTA", "NUMMDL", "MDLTYP", "AUTHOR",
			"REVDAT", "SPRSDE", "JRNL", "REMARK"),
		once:   make(once),
		single: newContTracker(true),
		multi:  newContTracker(false),
	}
}

func (a *annotation) Add(line int, r record.Record) error {
	kw := r.Keyword()
	if record.SingleInstance[kw] {
		if err := a.once.see(line, kw); err != nil {
			return err
		}
	}
	var w record.Warning
	var bad bool
	switch r := r.(type) {
	case *record.Text:
		w, bad = a.single.next(line, kw, contVal(r.Cont))
	case *record.Split:
		w, bad = a.single.next(line, kw, contVal(r.Cont))
	case *record.Caveat:
		w, bad = a.single.next(line, kw, contVal(r.Cont))
	case *record.Obslte:
		w, bad = a.single.next(line, kw, contVal(r.Cont))
	case *record.Sprsde:
		w, bad = a.single.next(line, kw, contVal(r.Cont))
	case *record.Revdat:
		key := kw + " " + strconv.Itoa(r.ModNum.Val)
		w, bad = a.multi.next(line, key, contVal(r.Cont))
	case *record.Jrnl:
		w, bad = a.multi.next(line, "JRNL "+r.Sub, contVal(r.Cont))
	}
	if bad {
		a.warn = append(a.warn, w)
	}
	return nil
}

func (a *annotation) Finish() ([]record.Record, []record.Warning) { return nil, a.warn }
