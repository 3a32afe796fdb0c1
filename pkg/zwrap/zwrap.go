// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file. It does the same for writing, so a .pdb.gz file
// can be written like any other.

package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
)

// FpGzip is what we return for reading.
type FpGzip struct {
	fp   io.ReadCloser
	zrdr *gzip.Reader // nil if the source is not compressed
}

// Close closes the decompressor, then the underlying readCloser.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Compressed says if we are reading through a decompressor.
func (fc *FpGzip) Compressed() bool { return fc.zrdr != nil }

// Wrap takes a source like a file pointer and wraps it so the correct
// Close and Read will be called. It fails if the source is not gzipped.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// ReadSeekCloser is what WrapMaybe needs, to go back after looking.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// If it is not compressed, the file is back at the start and the
// caller can still use it directly.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	if out, err := Wrap(fpIn); err == nil {
		return out, nil
	}
	if _, err := fpIn.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return &FpGzip{fp: fpIn}, nil
}

// Magic says if a buffer starts like a gzip stream.
func Magic(b []byte) bool {
	return len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b
}

// WrtGzip is the writing side. Close flushes the compressor before
// closing the file.
type WrtGzip struct {
	fp   io.WriteCloser
	zwrt *gzip.Writer // nil if not compressing
}

// NewWriter wraps fp, compressing if asked.
func NewWriter(fp io.WriteCloser, compress bool) *WrtGzip {
	w := &WrtGzip{fp: fp}
	if compress {
		w.zwrt = gzip.NewWriter(fp)
	}
	return w
}

func (w *WrtGzip) Write(p []byte) (int, error) {
	if w.zwrt != nil {
		return w.zwrt.Write(p)
	}
	return w.fp.Write(p)
}

// Close closes the compressor, then the file.
func (w *WrtGzip) Close() error {
	if w.zwrt == nil {
		return w.fp.Close()
	}
	return errors.Join(w.zwrt.Close(), w.fp.Close())
}
