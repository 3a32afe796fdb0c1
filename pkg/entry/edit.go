package entry

import (
	"fmt"

	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

// Changes to the records drop the cached indices and tally. Nothing
// is checked here: call Validate when done.

// Append adds records at the end. With canonical output they are
// written where they belong anyway.
func (e *Entry) Append(recs ...record.Record) {
	for _, r := range recs {
		e.items = append(e.items, section.Item{Rec: r})
	}
	e.cache = nil
}

// Insert puts r before position i, so Insert(Len(), r) is Append.
func (e *Entry) Insert(i int, r record.Record) error {
	if i < 0 || i > len(e.items) {
		return fmt.Errorf("insert at %d in entry of %d records", i, len(e.items))
	}
	e.items = splice(e.items, i, section.Item{Rec: r})
	e.cache = nil
	return nil
}

// Remove takes out the record at position i and returns it.
func (e *Entry) Remove(i int) (record.Record, error) {
	if i < 0 || i >= len(e.items) {
		return nil, fmt.Errorf("remove %d from entry of %d records", i, len(e.items))
	}
	r := e.items[i].Rec
	e.items = append(e.items[:i], e.items[i+1:]...)
	e.cache = nil
	return r, nil
}

// RemoveRecord takes out r itself, compared by identity, and says if
// it was there.
func (e *Entry) RemoveRecord(r record.Record) bool {
	for i, it := range e.items {
		if it.Rec == r {
			e.Remove(i)
			return true
		}
	}
	return false
}
