package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/oldpdb/pkg/common"
	"github.com/andrew-torda/oldpdb/pkg/entry"
	"github.com/andrew-torda/oldpdb/pkg/pdbtest"
)

// badAnisou has one record which will be refused
var badAnisou = strings.Replace(pdbtest.Full, "ANISOU    1", "ANISOU    2", 1)

// execute runs the command and returns exit status and output.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd, status := newCommand(&stdout, &stderr)
	cmd.SetArgs(append([]string{"--log", ""}, args...))
	if err := cmd.Execute(); err != nil {
		return common.ExitUsageError, stderr.String()
	}
	return *status, stdout.String()
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(text), 0644))
	}
	return dir
}

func TestDirectory(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"9xyz.pdb":   pdbtest.Full,
		"1abc.ent":   pdbtest.Minimal,
		"notes.txt":  "not a pdb file",
		"2mdl.pdb":   pdbtest.TwoModels,
		"1bad.pdb":   badAnisou,
		"ignore.cif": "data_1ABC\n",
	})
	status, out := execute(t, "--workers", "2", dir)
	assert.Equal(t, common.ExitSuccess, status)
	lines := pdbtest.Lines(out)
	require.Len(t, lines, 4, out)
	n := len(pdbtest.Lines(pdbtest.Full))
	// the sulfate and water follow the TER of their chain
	assert.Contains(t, out, fmt.Sprintf("9xyz.pdb: %d records, 1 models, 1 warnings, 0 refused", n))
	assert.Contains(t, out, "1abc.ent: 4 records, 1 models, 0 warnings, 0 refused")
	assert.Contains(t, out, "2mdl.pdb: 7 records, 2 models, 0 warnings, 0 refused")
	assert.Contains(t, out, "1bad.pdb: ")
	assert.Contains(t, out, "1 refused")
}

func TestStrict(t *testing.T) {
	dir := writeFiles(t, map[string]string{"1bad.pdb": badAnisou})
	f := filepath.Join(dir, "1bad.pdb")
	status, _ := execute(t, f)
	assert.Equal(t, common.ExitSuccess, status)
	status, _ = execute(t, "--strict", f)
	assert.Equal(t, common.ExitFailure, status)

	t.Setenv("PDBCHECK_STRICT", "true")
	status, _ = execute(t, f)
	assert.Equal(t, common.ExitFailure, status, "strict from the environment")
}

func TestConfigFile(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"1bad.pdb":     badAnisou,
		"pdbcheck.yml": "strict: true\nworkers: 1\n",
	})
	status, _ := execute(t, "--config", filepath.Join(dir, "pdbcheck.yml"), filepath.Join(dir, "1bad.pdb"))
	assert.Equal(t, common.ExitFailure, status)

	status, _ = execute(t, "--config", filepath.Join(dir, "missing.yml"), filepath.Join(dir, "1bad.pdb"))
	assert.Equal(t, common.ExitUsageError, status)
}

func TestMissingFile(t *testing.T) {
	status, out := execute(t, filepath.Join(t.TempDir(), "nothere.pdb"))
	assert.Equal(t, common.ExitFailure, status)
	assert.Contains(t, out, "nothere.pdb: error")
}

func TestUsage(t *testing.T) {
	status, _ := execute(t)
	assert.Equal(t, common.ExitUsageError, status)
	status, _ = execute(t, "--workers", "0", "x.pdb")
	assert.Equal(t, common.ExitUsageError, status)
}

func TestRewrite(t *testing.T) {
	text := pdbtest.Drop(pdbtest.Full, "MASTER")
	text = strings.Replace(text, "REMARK   2\n", "", 1) + "REMARK   2\n"
	dir := writeFiles(t, map[string]string{"9xyz.pdb": text})
	in := filepath.Join(dir, "9xyz.pdb")
	for _, c := range []struct {
		flag  string
		order entry.Order
	}{{"", entry.Canonical}, {"--preserve-order", entry.Original}} {
		outDir := filepath.Join(t.TempDir(), "out")
		args := []string{"--out", outDir, in}
		if c.flag != "" {
			args = append([]string{c.flag}, args...)
		}
		status, _ := execute(t, args...)
		require.Equal(t, common.ExitSuccess, status)

		e, _, err := entry.Parse([]byte(text))
		require.NoError(t, err)
		want, err := e.Serialize(c.order)
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(outDir, "9xyz.pdb"))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), c.order)
	}
}

func TestBroken(t *testing.T) {
	dir := writeFiles(t, map[string]string{"9xyz.pdb": pdbtest.Full})
	status, out := execute(t, "--broken", "1", filepath.Join(dir, "9xyz.pdb"))
	assert.Equal(t, common.ExitFailure, status)
	assert.Contains(t, out, "artificial read error")
}

func TestOutNames(t *testing.T) {
	got := outNames([]string{"a/1abc.pdb", "b/1abc.pdb", "c/1abc.pdb", "1abc.2.pdb", "x/notes", "y/notes", "-"})
	want := []string{"1abc.pdb", "1abc.2.pdb", "1abc.3.pdb", "1abc.2.2.pdb", "notes", "notes.2", "stdin.pdb"}
	assert.Equal(t, want, got)
}

// Files with one name in two directories are both written.
func TestRewriteSameName(t *testing.T) {
	a := writeFiles(t, map[string]string{"1abc.pdb": pdbtest.Minimal})
	b := writeFiles(t, map[string]string{"1abc.pdb": pdbtest.TwoModels})
	outDir := filepath.Join(t.TempDir(), "out")
	logFile := filepath.Join(t.TempDir(), "check.log")
	status, _ := execute(t, "--log", logFile, "--out", outDir, a, b)
	require.Equal(t, common.ExitSuccess, status)

	for name, models := range map[string]int{"1abc.pdb": 1, "1abc.2.pdb": 2} {
		text, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		e, _, err := entry.Parse(text)
		require.NoError(t, err)
		assert.Len(t, e.Models(), models, name)
	}
	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "1abc.pdb")
}
