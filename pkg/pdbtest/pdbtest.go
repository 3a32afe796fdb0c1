// Package pdbtest has small PDB files for tests in other packages.
// They are written so every record is in canonical order with
// consistent bookkeeping, so parsing and writing them back gives the
// same lines.
package pdbtest

import (
	"strings"
)

// Minimal is the smallest useful entry: one atom, one TER, no MASTER.
const Minimal = `HEADER    PLANT PROTEIN                           30-APR-81   1ABC
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
TER       2      ALA A   1
END
`

// TwoModels is an NMR style entry with two models of one atom each.
const TwoModels = `MODEL        1
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00  0.00           N
ENDMDL
MODEL        2
ATOM      1  N   ALA A   1      12.104   7.134  -5.504  1.00  0.00           N
ENDMDL
END
`

// Full has at least one of most record types, a sulfate and a water.
// The MASTER record is correct.
const Full = `HEADER    OXIDOREDUCTASE                          15-JAN-92   9XYZ
TITLE     CRYSTAL STRUCTURE OF A SMALL TEST PROTEIN
TITLE    2 BOUND TO SULFATE
COMPND    MOL_ID: 1;
COMPND   2 MOLECULE: TEST PROTEIN;
SOURCE    MOL_ID: 1;
KEYWDS    TEST, SULFATE
EXPDTA    X-RAY DIFFRACTION
AUTHOR    A.N.OTHER,B.SMITH
REVDAT   1   15-JUL-93 9XYZ    0
JRNL        AUTH   A.N.OTHER
JRNL        TITL   A TEST STRUCTURE
REMARK   2
REMARK   2 RESOLUTION.    1.80 ANGSTROMS.
REMARK   3
REMARK   3 REFINEMENT.
DBREF  9XYZ A    1     4  UNP    P00001   TEST_HUMAN       1      4
SEQRES   1 A    4  ALA CYS GLY CYS
HET    SO4  A 101       5
HETNAM     SO4 SULFATE ION
HETSYN     SO4 SULPHATE
FORMUL   2  SO4    O4 S 2-
FORMUL   3  HOH   *1(H2 O)
HELIX    1   1 ALA A    1  GLY A    3  1                                   3
SHEET    1  S1 2 ALA A   1  CYS A   2  0
SHEET    2  S1 2 GLY A   3  CYS A   4 -1  N  GLY A   3   O  CYS A   2
SSBOND   1 CYS A    2    CYS A    4                          1555   1555  2.03
LINK         O   CYS A   4                 S   SO4 A 101     1555   1555  3.10
CISPEP   1 ALA A    1    CYS A    2          0        -5.12
SITE     1 AC1  1 GLY A   3
CRYST1   52.000   58.600   63.200  90.00  90.00  90.00 P 21 21 21    4
ORIGX1      1.000000  0.000000  0.000000        0.00000
ORIGX2      0.000000  1.000000  0.000000        0.00000
ORIGX3      0.000000  0.000000  1.000000        0.00000
SCALE1      0.019231  0.000000  0.000000        0.00000
SCALE2      0.000000  0.017065  0.000000        0.00000
SCALE3      0.000000  0.000000  0.015823        0.00000
ATOM      1  N   ALA A   1      11.104   6.134  -6.504  1.00 10.00           N
ANISOU    1  N   ALA A   1     1234   2345   3456    -12     34    -56       N
ATOM      2  CA  ALA A   1      11.639   6.071  -5.147  1.00 10.50           C
ATOM      3  N   CYS A   2      12.500   5.000  -4.200  1.00 11.00           N
ATOM      4  SG  CYS A   2      13.100   4.200  -3.000  1.00 12.00           S
ATOM      5  N   GLY A   3      14.000   6.500  -2.800  1.00 11.00           N
ATOM      6  O   GLY A   3      14.900   6.100  -1.500  1.00 11.00           O
ATOM      7  N   CYS A   4      15.300   7.600  -0.900  1.00 13.00           N
ATOM      8  SG  CYS A   4      14.200   5.500  -2.100  1.00 14.00           S
TER       9      CYS A   4
HETATM   10  S   SO4 A 101      20.000  10.000   5.000  1.00 30.00           S
HETATM   11  O1  SO4 A 101      21.000  10.000   5.000  1.00 30.00           O
HETATM   12  O2  SO4 A 101      19.000  10.000   5.000  1.00 30.00           O
HETATM   13  O3  SO4 A 101      20.000  11.000   5.000  1.00 30.00           O
HETATM   14  O4  SO4 A 101      20.000   9.000   5.000  1.00 30.00           O
HETATM   15  O   HOH A 201      25.000   3.000   1.000  1.00 40.00           O
CONECT   10   11   12   13   14
CONECT   11   10
MASTER        4    0    1    1    2    0    1    6   14    1    2    1
END
`

// Metals has metal ions with no element columns, as in older files,
// and a LINK to one of them. Atom names of ions start in column 13.
// The MASTER record is correct.
const Metals = `HEADER    METAL BINDING PROTEIN                   02-FEB-95   2ZNF
HET     ZN  A 301       1
HET     CA  A 302       1
HET    HEM  A 303       1
LINK         SG  CYS A   2                ZN    ZN A 301     1555   1555  2.30
ATOM      1  N   CYS A   2      12.500   5.000  -4.200  1.00 11.00           N
ATOM      2  SG  CYS A   2      13.100   4.200  -3.000  1.00 12.00           S
TER       3      CYS A   2
HETATM    4 ZN    ZN A 301      15.000   5.000  -3.500  1.00 20.00
HETATM    5 CA    CA A 302      10.000   5.000  -3.500  1.00 20.00
HETATM    6 FE   HEM A 303      11.000   5.000  -3.500  1.00 20.00
MASTER        0    0    3    0    0    0    0    0    5    1    0    0
END
`

// Lines splits a fixture into lines without the final newline.
func Lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// Replace changes the first line starting with prefix. It panics if
// there is no such line, since fixtures are fixed.
func Replace(s, prefix, with string) string {
	lines := Lines(s)
	for i, l := range lines {
		if strings.HasPrefix(l, prefix) {
			lines[i] = with
			return strings.Join(lines, "\n") + "\n"
		}
	}
	panic("pdbtest: no line starts with " + prefix)
}

// Drop removes every line starting with prefix.
func Drop(s, prefix string) string {
	var keep []string
	for _, l := range Lines(s) {
		if !strings.HasPrefix(l, prefix) {
			keep = append(keep, l)
		}
	}
	return strings.Join(keep, "\n") + "\n"
}

// Pad80 pads every line to 80 columns, the way the writer does.
func Pad80(s string) string {
	lines := Lines(s)
	for i, l := range lines {
		if n := len(l); n < 80 {
			lines[i] = l + strings.Repeat(" ", 80-n)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
