// Package brokenio wraps a reader so it fails now and then. It is for
// checking that file reading copes with truncated, empty and broken
// input.
// Typical use: you have a file pointer or a reader from a compressed
// source. You write
//	reader = brokenio.NewReader(reader, seed)
// and everything works as before, but with artificial errors.
// A failed read returns what it managed to read and ErrBroken.
// A zero length file returns io.EOF on the first read with no error,
// which is what one sees with an empty file.
package brokenio

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
)

// ErrBroken is returned by reads which the Reader decided should fail.
var ErrBroken = errors.New("brokenio: artificial read error")

// Reader is modelled on the readers in the standard library,
// but with values controlling the frequency of errors.
// Probabilities are the fraction of reads affected, so 0.05 means
// failure in 5% of the calls.
type Reader struct {
	rdr          io.Reader
	rnd          *rand.Rand
	probZeroFile float32 // chance of pretending the file is empty
	probFail     float32 // chance of any one read failing
	failAfter    int     // fail once this many bytes are through, if > 0
	nCalled      int
	nByte        int
}

// NewReader returns a wrapper around rIn. The seed makes failures
// repeatable.
func NewReader(rIn io.Reader, seed int64) *Reader {
	return &Reader{rdr: rIn, rnd: rand.New(rand.NewSource(seed))}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on
// the first read. It must be from 0 to 1. We do not check.
func (r *Reader) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read failing.
func (r *Reader) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAfter makes reads fail for certain after n bytes.
func (r *Reader) SetFailAfter(n int) { r.failAfter = n }

// Read passes on to the wrapped reader and sums up the amount of data
// that has gone through. A failed read keeps the first half of what
// it got.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.nCalled == 1 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.failAfter > 0 {
		left := r.failAfter - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if len(p) > left {
			p = p[:left]
		}
	}
	n, err := r.rdr.Read(p)
	r.nByte += n
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		n /= 2
		return n, ErrBroken
	}
	return n, err
}

// Close closes the wrapped reader if it can be closed.
func (r *Reader) Close() error {
	if c, ok := r.rdr.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// String says how much went through, for debugging.
func (r *Reader) String() string {
	return fmt.Sprintf("%d calls and %d bytes", r.nCalled, r.nByte)
}
