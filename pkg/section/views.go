package section

import (
	"github.com/andrew-torda/oldpdb/pkg/record"
)

// TextOf joins the lines of one of the free text records, like TITLE
// or COMPND, into one string. A word broken with a hyphen at the end
// of a line is joined up.
func TextOf(recs []record.Record, kw string) string {
	var pieces []string
	for _, r := range recs {
		if t, ok := r.(*record.Text); ok && t.Kw == kw {
			pieces = append(pieces, t.Body)
		}
	}
	return joinPieces(pieces)
}

// Journal joins the JRNL lines by sub-record, so Journal(recs)["TITL"]
// is the title of the primary citation.
func Journal(recs []record.Record) map[string]string {
	pieces := make(map[string][]string)
	for _, r := range recs {
		if j, ok := r.(*record.Jrnl); ok {
			pieces[j.Sub] = append(pieces[j.Sub], j.Body)
		}
	}
	ret := make(map[string]string, len(pieces))
	for k, v := range pieces {
		ret[k] = joinPieces(v)
	}
	return ret
}

// Remark is the lines of one numbered remark. The first line of most
// remarks is blank and is left out.
type Remark struct {
	Num   int
	Lines []string
}

// Remarks groups REMARK lines by number in order of appearance.
func Remarks(recs []record.Record) []Remark {
	var ret []Remark
	where := make(map[int]int)
	for _, r := range recs {
		rem, ok := r.(*record.Remark)
		if !ok {
			continue
		}
		i, seen := where[rem.Num.Val]
		if !seen {
			i = len(ret)
			where[rem.Num.Val] = i
			ret = append(ret, Remark{Num: rem.Num.Val})
		}
		if rem.Body == "" && len(ret[i].Lines) == 0 {
			continue
		}
		ret[i].Lines = append(ret[i].Lines, rem.Body)
	}
	return ret
}

// Sequence is the SEQRES residues of one chain.
type Sequence struct {
	Chain    byte
	NumRes   int // as stated in the records
	Residues []string
}

// Sequences returns the sequence of each chain in order of
// appearance.
func Sequences(recs []record.Record) []Sequence {
	var ret []Sequence
	where := make(map[byte]int)
	for _, r := range recs {
		s, ok := r.(*record.Seqres)
		if !ok {
			continue
		}
		i, seen := where[s.Chain]
		if !seen {
			i = len(ret)
			where[s.Chain] = i
			ret = append(ret, Sequence{Chain: s.Chain, NumRes: s.NumRes.Val})
		}
		ret[i].Residues = append(ret[i].Residues, s.Residues...)
	}
	return ret
}
