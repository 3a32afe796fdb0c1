// 14 Oct 2026

// Package pdbfile reads and writes PDB files on disk. It decides if a
// file is compressed and if it is in the old format at all, then hands
// the text to the entry package.
// Files in the newer mmCIF format are recognised and refused.
package pdbfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/oldpdb/pkg/entry"
	"github.com/andrew-torda/oldpdb/pkg/logs"
	"github.com/andrew-torda/oldpdb/pkg/record"
	"github.com/andrew-torda/oldpdb/pkg/zwrap"
)

// Format is what we think is in a file.
type Format byte

const (
	FormatUnknown Format = iota
	FormatLegacy         // fixed column PDB
	FormatMmcif
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "pdb"
	case FormatMmcif:
		return "mmcif"
	}
	return "unknown"
}

var (
	ErrMmcif         = errors.New("file is mmCIF, only the old PDB format is read")
	ErrUnknownFormat = errors.New("cannot recognise format")
)

// maxTestLines is how far into a file we look for something we know
const maxTestLines = 5000

var (
	pdbWords   = []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords = []string{"data_", "_entry.id", "loop_"}
)

// ByName guesses from the name alone. We cannot use filepath.Ext,
// since it gives .gz for a.pdb.gz.
func ByName(fname string) Format {
	s := filepath.Base(fname)
	i := strings.IndexByte(s, '.')
	if i == -1 {
		return FormatUnknown
	}
	s = strings.ToLower(s[i+1:]) // change .ent.gz to ent.gz
	switch {
	case strings.Contains(s, "pdb") || strings.Contains(s, "ent"):
		return FormatLegacy
	case strings.Contains(s, "cif"):
		return FormatMmcif
	}
	return FormatUnknown
}

// byContent looks at the start of lines for keywords of either format.
func byContent(r io.Reader) Format {
	scnnr := bufio.NewScanner(r)
	for i := 0; i < maxTestLines && scnnr.Scan(); i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if strings.HasPrefix(s, w) {
				return FormatMmcif
			}
		}
		for _, w := range pdbWords {
			if strings.HasPrefix(s, w) {
				return FormatLegacy
			}
		}
	}
	return FormatUnknown
}

// Sniff decides what format a file is in. It uses the name if it can,
// otherwise it peeks inside, uncompressing if need be.
func Sniff(fname string) (Format, error) {
	if f := ByName(fname); f != FormatUnknown {
		return f, nil
	}
	fp, err := os.Open(fname)
	if err != nil {
		return FormatUnknown, err
	}
	defer fp.Close()
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return FormatUnknown, fmt.Errorf("reading %s: %w", fname, err)
	}
	if f := byContent(rdr); f != FormatUnknown {
		return f, nil
	}
	return FormatUnknown, fmt.Errorf("%s: %w", fname, ErrUnknownFormat)
}

// checkFormat refuses anything which is not the old format. data is
// only looked at if the name does not say.
func checkFormat(fname string, data []byte) error {
	f := ByName(fname)
	if f == FormatUnknown {
		f = byContent(bytes.NewReader(data))
	}
	switch f {
	case FormatMmcif:
		return fmt.Errorf("%s: %w", fname, ErrMmcif)
	case FormatUnknown:
		return fmt.Errorf("%s: %w", fname, ErrUnknownFormat)
	}
	return nil
}

// slurp gets the contents of a file. Compressed files are read through
// the decompressor. Plain files are mapped, and unmap must be called
// when the text is no longer needed. Empty files cannot be mapped and
// give nil.
func slurp(fp *os.File) (data []byte, unmap func(), err error) {
	nothing := func() {}
	zr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		return nil, nothing, err
	}
	if zr.Compressed() {
		data, err = io.ReadAll(zr)
		return data, nothing, err
	}
	info, err := fp.Stat()
	if err != nil {
		return nil, nothing, err
	}
	if info.Size() == 0 {
		return nil, nothing, nil
	}
	m, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, nothing, err
	}
	return m, func() { m.Unmap() }, nil
}

// ReadEntry reads a PDB file, compressed or not.
// If the file cannot be read at all, the Entry is nil. Otherwise the
// results are those of entry.Parse: the error may be an
// entry.ErrorList of records which were left out, and the entry is
// still good. Warnings and refused records go to the logger, which
// may be nil.
func ReadEntry(fname string, lg *log.Logger) (*entry.Entry, []record.Warning, error) {
	lg = logs.OrDiscard(lg)
	fp, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	data, unmap, err := slurp(fp)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	defer unmap()
	if err := checkFormat(fname, data); err != nil {
		return nil, nil, err
	}
	return parse(fname, data, lg)
}

// ReadFrom reads an entry from a stream, such as standard input.
// Compression is recognised by the gzip magic number. name is only for
// messages.
func ReadFrom(r io.Reader, name string, lg *log.Logger) (*entry.Entry, []record.Warning, error) {
	lg = logs.OrDiscard(lg)
	br := bufio.NewReader(r)
	var src io.Reader = br
	if head, _ := br.Peek(2); zwrap.Magic(head) {
		zr, err := zwrap.Wrap(io.NopCloser(br))
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s: %w", name, err)
		}
		defer zr.Close()
		src = zr
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if f := byContent(bytes.NewReader(data)); f == FormatMmcif {
		return nil, nil, fmt.Errorf("%s: %w", name, ErrMmcif)
	}
	return parse(name, data, lg)
}

func parse(name string, data []byte, lg *log.Logger) (*entry.Entry, []record.Warning, error) {
	e, warn, err := entry.Parse(data)
	for _, w := range warn {
		lg.Println(name, w)
	}
	var el entry.ErrorList
	if errors.As(err, &el) {
		for _, x := range el {
			lg.Println(name, x)
		}
	}
	lg.Println(name, e.Len(), "records", len(warn), "warnings")
	return e, warn, err
}

// WriteEntry writes an entry to a file, compressed if the name ends in
// .gz. The file is written even if some records could not be. Then the
// error is the entry.ErrorList saying which.
func WriteEntry(fname string, e *entry.Entry, order entry.Order) error {
	text, serr := e.Serialize(order)
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	w := zwrap.NewWriter(fp, strings.HasSuffix(fname, ".gz"))
	_, werr := w.Write(text)
	if err := errors.Join(werr, w.Close()); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	return serr
}
