package bookkeep_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/oldpdb/pkg/bookkeep"
	"github.com/andrew-torda/oldpdb/pkg/column"
	"github.com/andrew-torda/oldpdb/pkg/pdbtest"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/section"
)

func items(t *testing.T, text string) []section.Item {
	var ret []section.Item
	for i, l := range pdbtest.Lines(text) {
		r, err := record.Parse(l)
		if err != nil {
			t.Fatal(err)
		}
		ret = append(ret, section.Item{Line: i + 1, Rec: r})
	}
	return ret
}

func recs(it []section.Item) []record.Record {
	var ret []record.Record
	for _, x := range it {
		ret = append(ret, x.Rec)
	}
	return ret
}

func master(it []section.Item) *record.Master {
	for _, x := range it {
		if m, ok := x.Rec.(*record.Master); ok {
			return m
		}
	}
	return nil
}

func TestCountFull(t *testing.T) {
	it := items(t, pdbtest.Full)
	tl := Count(recs(it))
	got := []int{tl.Remark, tl.Het, tl.Helix, tl.Sheet, tl.Turn, tl.Site,
		tl.Xform, tl.Coord, tl.Ter, tl.Conect, tl.Seq}
	want := []int{4, 1, 1, 2, 0, 1, 6, 14, 1, 2, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error("tally (-want +got):\n", diff)
	}
	if tl.Counts["ATOM"] != 8 || tl.Counts["HETATM"] != 6 || tl.Counts["ANISOU"] != 1 {
		t.Error("per keyword counts", tl.Counts)
	}
	if diff := cmp.Diff(master(it), tl.Master()); diff != "" {
		t.Error("recomputed MASTER differs (-file +tally):\n", diff)
	}
	if w := Validate(it); len(w) != 0 {
		t.Error("unexpected warnings", w)
	}
}

func TestCountMinimal(t *testing.T) {
	tl := Count(recs(items(t, pdbtest.Minimal)))
	if tl.Counts["ATOM"] != 1 || tl.Coord != 1 || tl.Ter != 1 || tl.Models != 0 {
		t.Error("minimal tally", tl)
	}
}

// Only the first model counts for numCoord and numTer.
func TestCountModels(t *testing.T) {
	tl := Count(recs(items(t, pdbtest.TwoModels)))
	if tl.Coord != 1 || tl.Counts["ATOM"] != 2 || tl.Models != 2 {
		t.Error("two models", tl.Coord, tl.Counts["ATOM"], tl.Models)
	}
	ter := "TER       2      ALA A   1"
	withTer := strings.ReplaceAll(pdbtest.TwoModels, "ENDMDL", ter+"\nENDMDL")
	tl = Count(recs(items(t, withTer)))
	if tl.Ter != 1 || tl.Counts["TER"] != 2 {
		t.Error("TER in two models", tl.Ter, tl.Counts["TER"])
	}
}

func TestHelixMismatch(t *testing.T) {
	text := pdbtest.Replace(pdbtest.Full, "MASTER",
		"MASTER        4    0    1    2    2    0    1    6   14    1    2    1")
	it := items(t, text)
	w := Validate(it)
	if len(w) != 1 {
		t.Fatal("want exactly one warning, got", w)
	}
	if w[0].Kind != record.WarnMaster || w[0].Line != len(it)-1 {
		t.Error("warning", w[0])
	}
	if w[0].Msg != "numHelix is 2, counted 1" {
		t.Error(w[0].Msg)
	}
}

func TestBlankCount(t *testing.T) {
	m := Count(nil).Master()
	m.Site = column.Int{}
	w := Compare(Count(nil), m)
	if len(w) != 1 || w[0].Msg != "numSite is blank, counted 0" {
		t.Error(w)
	}
}

var endCases = []struct {
	name string
	text string
	want []record.WarnKind
}{
	{"fine", pdbtest.Minimal, nil},
	{"no end", pdbtest.Drop(pdbtest.Minimal, "END"), []record.WarnKind{record.WarnMissingEnd}},
	{"after end", pdbtest.Minimal + "REMARK 999 LATE\nCONECT    1    2\n",
		[]record.WarnKind{record.WarnAfterEnd, record.WarnAfterEnd}},
}

func TestCheckEnd(t *testing.T) {
	for _, c := range endCases {
		var got []record.WarnKind
		for _, w := range CheckEnd(items(t, c.text)) {
			got = append(got, w.Kind)
		}
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("%s: (-want +got)\n%s", c.name, diff)
		}
	}
}

func TestNummdl(t *testing.T) {
	it := items(t, "NUMMDL    3\n"+pdbtest.TwoModels)
	w := Validate(it)
	if len(w) != 1 || w[0].Kind != record.WarnCount || w[0].Line != 1 {
		t.Error(w)
	}
}
