package common_test

import (
	"os"
	"testing"

	"github.com/andrew-torda/oldpdb/pkg/common"
)

func TestWrtTemp(t *testing.T) {
	const s = "HEADER\nEND\n"
	fname, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(fname)
	b, err := os.ReadFile(fname)
	if err != nil || string(b) != s {
		t.Errorf("got %q, %v", b, err)
	}
}
