package entry

import (
	"bytes"
	"sort"

	"github.com/andrew-torda/oldpdb/pkg/bookkeep"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

// Order says how Serialize arranges records.
type Order byte

const (
	Canonical Order = iota // the order of the format grammar
	Original               // the order records are stored in
)

func (o Order) String() string {
	if o == Original {
		return "original"
	}
	return "canonical"
}

// Serialize writes the entry as 80 column lines.
// Any MASTER and END records in the entry are ignored. A new MASTER is
// counted from the records actually written and goes just before END,
// which is always last.
// A record that cannot be written, usually because a value does not
// fit its columns, is left out. So is a record that Parse would refuse
// where it ends up, like an ATOM appended after the last ENDMDL. Then
// the error is an ErrorList saying which, and the rest of the output
// is still good. A missing ENDMDL is added, as on reading.
func (e *Entry) Serialize(order Order) ([]byte, error) {
	var out []section.Item
	var errs ErrorList
	for _, it := range e.items {
		switch it.Rec.(type) {
		case *record.Master, *record.End:
			continue
		}
		if _, err := it.Rec.Format(); err != nil {
			errs = append(errs, &record.RecordError{
				Line: it.Line, Keyword: it.Rec.Keyword(), Err: err})
			continue
		}
		out = append(out, it)
	}
	if order == Canonical {
		sort.SliceStable(out, func(i, j int) bool {
			return record.Rank(out[i].Rec) < record.Rank(out[j].Rec)
		})
	}
	out, _, refused := ingest(out, nil, true)
	errs = append(errs, refused...)

	var buf bytes.Buffer
	var written []record.Record
	put := func(r record.Record) {
		s, err := r.Format()
		if err != nil {
			errs = append(errs, &record.RecordError{Keyword: r.Keyword(), Err: err})
			return
		}
		buf.WriteString(s)
		buf.WriteByte('\n')
		written = append(written, r)
	}
	for _, it := range out {
		put(it.Rec)
	}
	put(bookkeep.Count(written).Master())
	put(&record.End{})
	return buf.Bytes(), errs.Err()
}
