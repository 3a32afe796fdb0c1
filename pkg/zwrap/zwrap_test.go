// Test Zwrap
package zwrap_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/oldpdb/pkg/zwrap"
)

// both of these are "andrewsays", but the first is compressed. Write them to a file
// and check that the file opener does the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

var gztests = []gztest{
	{[]byte{
		0x1f, 0x8b, 0x08, 0x00, 0xb6, 0xf1, 0xa0, 0x5b, 0x00, 0x03,
		0x4b, 0xcc, 0x4b, 0x29, 0x4a, 0x2d, 0x2f, 0x4e, 0xac, 0x2c,
		0xce, 0x48, 0xcd, 0xc9, 0xc9, 0x07, 0x00, 0x44, 0xa8, 0x66,
		0x89, 0x0f, 0x00, 0x00, 0x00},
		true,
	},
	{[]byte{
		0x61, 0x6e, 0x64, 0x72, 0x65, 0x77, 0x73, 0x61,
		0x79, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x6f, 0x0a},
		false,
	},
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer at the start.
func writeToTmp(t *testing.T, data []byte) *os.File {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "zwrap")
	if err := os.WriteFile(fname, data, 0644); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestWrap(t *testing.T) {
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		zr, err := zwrap.Wrap(fp)
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped file")
			}
			fp.Close()
			continue
		}
		if !x.gzipped {
			t.Error("Fail on not compressed file")
		}
		b, _ := io.ReadAll(zr)
		if len(b) < 10 || string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b)
		}
		if err := zr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests {
		fp := writeToTmp(t, x.data)
		if zwrap.Magic(x.data) != x.gzipped {
			t.Error("Magic wrong for compressed =", x.gzipped)
		}
		zr, err := zwrap.WrapMaybe(fp)
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v", x.gzipped)
		}
		if zr.Compressed() != x.gzipped {
			t.Error("Compressed() wrong")
		}
		b, _ := io.ReadAll(zr)
		if len(b) < 10 || string(b[:10]) != "andrewsays" {
			t.Errorf("wrong string: %s", b)
		}
		if err := zr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// What we write compressed comes back through WrapMaybe.
func TestWriter(t *testing.T) {
	const s = "HEADER    A LINE\nEND\n"
	for _, compress := range []bool{true, false} {
		fname := filepath.Join(t.TempDir(), "w")
		fp, err := os.Create(fname)
		if err != nil {
			t.Fatal(err)
		}
		w := zwrap.NewWriter(fp, compress)
		if _, err := io.WriteString(w, s); err != nil {
			t.Fatal(err)
		}
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}
		raw, _ := os.ReadFile(fname)
		if zwrap.Magic(raw) != compress {
			t.Error("compressed file should start with gzip magic")
		}
		rd, _ := os.Open(fname)
		zr, err := zwrap.WrapMaybe(rd)
		if err != nil {
			t.Fatal(err)
		}
		got, _ := io.ReadAll(zr)
		zr.Close()
		if !bytes.Equal(got, []byte(s)) {
			t.Errorf("got %q", got)
		}
	}
}
