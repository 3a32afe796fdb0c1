package record

// Keywords in the order the format grammar lists them. Keywords on
// one line share a rank. Their relative order in a file means
// something (DBREF1 before DBREF2, ATOM inside MODEL), so a sort must
// leave them alone.
var grammar = [][]string{
	{"HEADER"}, {"OBSLTE"}, {"TITLE"}, {"SPLIT"}, {"CAVEAT"}, {"COMPND"},
	{"SOURCE"}, {"KEYWDS"}, {"EXPDTA"}, {"NUMMDL"}, {"MDLTYP"}, {"AUTHOR"},
	{"REVDAT"}, {"SPRSDE"}, {"JRNL"}, {"REMARK"},
	{"DBREF", "DBREF1", "DBREF2"}, {"SEQADV"}, {"SEQRES"}, {"MODRES"},
	{"HET"}, {"HETNAM"}, {"HETSYN"}, {"FORMUL"},
	{"HELIX"}, {"SHEET"}, {"TURN"},
	{"SSBOND"}, {"LINK"}, {"CISPEP"},
	{"SITE"},
	{"CRYST1"},
	{"ORIGX1", "ORIGX2", "ORIGX3"},
	{"SCALE1", "SCALE2", "SCALE3"},
	{"MTRIX1", "MTRIX2", "MTRIX3"},
	{"MODEL", "ATOM", "HETATM", "ANISOU", "TER", "ENDMDL"},
	{"CONECT"},
	{"MASTER"},
	{"END"},
}

var rankOf = func() map[string]int {
	m := make(map[string]int)
	for i, kws := range grammar {
		for _, kw := range kws {
			m[kw] = i
		}
	}
	return m
}()

// Rank gives the position of a record in canonical order. Unknown
// records carry their own.
func Rank(r Record) int {
	if u, ok := r.(*Unknown); ok {
		return u.Rank
	}
	return rankOf[r.Keyword()]
}

// SingleInstance keywords may appear at most once in an entry.
var SingleInstance = map[string]bool{
	"HEADER": true,
	"NUMMDL": true,
	"CRYST1": true,
	"MASTER": true,
}
