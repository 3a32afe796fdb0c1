package pdbfile_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/oldpdb/pkg/brokenio"
	"github.com/andrew-torda/oldpdb/pkg/common"
	"github.com/andrew-torda/oldpdb/pkg/entry"
	. "github.com/andrew-torda/oldpdb/pkg/pdbfile"
	"github.com/andrew-torda/oldpdb/pkg/pdbtest"
	"github.com/andrew-torda/oldpdb/pkg/record"
)

var fnameTypes = []struct {
	fname string
	ftype Format
}{
	{"boo.mmcif", FormatMmcif},
	{"boo.mmcif.gz", FormatMmcif},
	{"boo.cif", FormatMmcif},
	{"a/b/c.ent", FormatLegacy},
	{"a/pdb1abc.ent.gz", FormatLegacy},
	{"a.pdb", FormatLegacy},
	{"a.PDB.gz", FormatLegacy},
}

func TestSniffName(t *testing.T) {
	for _, f := range fnameTypes {
		got, err := Sniff(f.fname)
		require.NoError(t, err, f.fname)
		assert.Equal(t, f.ftype, got, f.fname)
	}
}

// Temporary files have no extension, so Sniff has to look inside.
func TestSniffContents(t *testing.T) {
	for _, c := range []struct {
		text string
		want Format
	}{
		{pdbtest.Minimal, FormatLegacy},
		{"data_1ABC\n#\nloop_\n", FormatMmcif},
		{pdbtest.TwoModels, FormatLegacy},
	} {
		fname, err := common.WrtTemp(c.text)
		require.NoError(t, err)
		defer os.Remove(fname)
		got, err := Sniff(fname)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}

	fname, err := common.WrtTemp("hello\nworld\n")
	require.NoError(t, err)
	defer os.Remove(fname)
	_, err = Sniff(fname)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestReadPlain(t *testing.T) {
	fname, err := common.WrtTemp(pdbtest.Full)
	require.NoError(t, err)
	defer os.Remove(fname)
	e, warn, err := ReadEntry(fname, nil)
	require.NoError(t, err)
	require.Len(t, warn, 1)
	assert.Equal(t, record.WarnTerChain, warn[0].Kind)
	assert.Equal(t, len(pdbtest.Lines(pdbtest.Full)), e.Len())
}

func TestReadGzip(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "9xyz.pdb.gz")
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(pdbtest.Full))
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(fname, buf.Bytes(), 0644))

	e, warn, err := ReadEntry(fname, nil)
	require.NoError(t, err)
	assert.Len(t, warn, 1)
	assert.Len(t, e.Helices(), 1)
}

func TestWriteRead(t *testing.T) {
	in, _, err := entry.Parse([]byte(pdbtest.Full))
	require.NoError(t, err)
	want, err := in.Serialize(entry.Canonical)
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"out.pdb", "out.pdb.gz"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, WriteEntry(fname, in, entry.Canonical))
		raw, err := os.ReadFile(fname)
		require.NoError(t, err)
		assert.Equal(t, strings.HasSuffix(name, ".gz"), !bytes.Equal(raw, want))

		e, _, err := ReadEntry(fname, nil)
		require.NoError(t, err)
		got, err := e.Serialize(entry.Canonical)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	}
}

func TestReadEmpty(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "empty.pdb")
	require.NoError(t, os.WriteFile(fname, nil, 0644))
	e, warn, err := ReadEntry(fname, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Len())
	require.Len(t, warn, 1)
	assert.Equal(t, record.WarnMissingEnd, warn[0].Kind)
}

func TestReadRefused(t *testing.T) {
	dir := t.TempDir()
	cif := filepath.Join(dir, "1abc.cif")
	require.NoError(t, os.WriteFile(cif, []byte("data_1ABC\n"), 0644))
	_, _, err := ReadEntry(cif, nil)
	assert.ErrorIs(t, err, ErrMmcif)

	_, _, err = ReadEntry(filepath.Join(dir, "does_not_exist.pdb"), nil)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	junk, err := common.WrtTemp("hello\n")
	require.NoError(t, err)
	defer os.Remove(junk)
	_, _, err = ReadEntry(junk, nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

// Bad records are logged and the rest of the file survives.
func TestReadLogs(t *testing.T) {
	text := strings.Replace(pdbtest.Full, "ANISOU    1", "ANISOU    2", 1)
	fname, err := common.WrtTemp(text)
	require.NoError(t, err)
	defer os.Remove(fname)
	var buf bytes.Buffer
	lg := newLogger(&buf)
	e, _, err := ReadEntry(fname, lg)
	var el entry.ErrorList
	require.ErrorAs(t, err, &el)
	assert.Len(t, el, 1)
	assert.NotNil(t, e)
	assert.Contains(t, buf.String(), "ANISOU")
}

func newLogger(w io.Writer) *log.Logger { return log.New(w, "", 0) }

func TestReadFrom(t *testing.T) {
	e, _, err := ReadFrom(strings.NewReader(pdbtest.Minimal), "stdin", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Len())

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(pdbtest.Minimal))
	require.NoError(t, zw.Close())
	e, _, err = ReadFrom(&buf, "stdin", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, e.Len())

	_, _, err = ReadFrom(strings.NewReader("data_1ABC\n"), "stdin", nil)
	assert.ErrorIs(t, err, ErrMmcif)
}

func TestReadBroken(t *testing.T) {
	rdr := brokenio.NewReader(strings.NewReader(pdbtest.Full), 1)
	rdr.SetFailAfter(100)
	e, _, err := ReadFrom(rdr, "broken", nil)
	assert.Nil(t, e)
	assert.ErrorIs(t, err, brokenio.ErrBroken)
}
