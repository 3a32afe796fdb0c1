package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Jeffail/tunny"

	"github.com/andrew-torda/oldpdb/pkg/brokenio"
	"github.com/andrew-torda/oldpdb/pkg/common"
	"github.com/andrew-torda/oldpdb/pkg/entry"
	"github.com/andrew-torda/oldpdb/pkg/logs"
	"github.com/andrew-torda/oldpdb/pkg/pdbfile"
	"github.com/andrew-torda/oldpdb/pkg/record"
)

const brokenSeed int64 = 1637

// result is what we say about one file.
type result struct {
	name     string
	records  int
	models   int
	warnings int
	refused  int   // records left out on reading or writing
	err      error // file could not be read or written
}

func (r result) String() string {
	if r.err != nil {
		return fmt.Sprintf("%s: error: %v", r.name, r.err)
	}
	return fmt.Sprintf("%s: %d records, %d models, %d warnings, %d refused",
		r.name, r.records, r.models, r.warnings, r.refused)
}

// expand replaces each directory by the PDB files below it.
func expand(args []string) ([]string, error) {
	var files []string
	for _, a := range args {
		info, err := os.Stat(a)
		if err != nil || !info.IsDir() {
			files = append(files, a) // let reading report the error
			continue
		}
		err = filepath.WalkDir(a, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && pdbfile.ByName(path) == pdbfile.FormatLegacy {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// outNames gives each input its file name in the output directory.
// Inputs with the same base name, from different directories, get a
// number before the first dot: 1abc.pdb, 1abc.2.pdb and so on.
func outNames(files []string) []string {
	ret := make([]string, len(files))
	used := make(map[string]bool)
	for i, f := range files {
		base := filepath.Base(f)
		if f == "-" {
			base = "stdin.pdb"
		}
		stem, ext, dotted := strings.Cut(base, ".")
		for n := 2; used[base]; n++ {
			base = fmt.Sprintf("%s.%d", stem, n)
			if dotted {
				base += "." + ext
			}
		}
		used[base] = true
		ret[i] = base
	}
	return ret
}

// read gets an entry from a file, standard input or a broken reader.
func read(name string, opt options, lg *log.Logger) (*entry.Entry, []record.Warning, error) {
	if name == "-" {
		return pdbfile.ReadFrom(os.Stdin, "stdin", lg)
	}
	if opt.broken == 0 {
		return pdbfile.ReadEntry(name, lg)
	}
	fp, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer fp.Close()
	rdr := brokenio.NewReader(fp, brokenSeed)
	rdr.SetProbFail(float32(opt.broken))
	return pdbfile.ReadFrom(rdr, name, lg)
}

// job is one input file and the name to write it to under --out
type job struct {
	name, out string
}

func checkOne(j job, opt options, lg *log.Logger) result {
	name := j.name
	res := result{name: name}
	e, warn, err := read(name, opt, lg)
	if e == nil {
		res.err = err
		return res
	}
	var el entry.ErrorList
	if errors.As(err, &el) {
		res.refused = len(el)
	}
	res.records = e.Len()
	res.models = len(e.Models())
	res.warnings = len(warn)
	if opt.out == "" {
		return res
	}
	order := entry.Canonical
	if opt.preserve {
		order = entry.Original
	}
	if err := pdbfile.WriteEntry(filepath.Join(opt.out, j.out), e, order); err != nil {
		if errors.As(err, &el) {
			res.refused += len(el)
		} else {
			res.err = err
		}
	}
	return res
}

// run checks the files on a pool of workers and prints the results
// in the order of the arguments.
func run(args []string, opt options, stdout, stderr io.Writer) int {
	lg, closeLog, err := logs.Where(opt.log)
	if err != nil {
		fmt.Fprintln(stderr, "log:", err)
		return common.ExitFailure
	}
	defer closeLog()
	files, err := expand(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return common.ExitFailure
	}
	if opt.out != "" {
		if err := os.MkdirAll(opt.out, 0755); err != nil {
			fmt.Fprintln(stderr, err)
			return common.ExitFailure
		}
	}

	pool := tunny.NewFunc(opt.workers, func(payload interface{}) interface{} {
		return checkOne(payload.(job), opt, lg)
	})
	defer pool.Close()
	outs := outNames(files)
	results := make([]result, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = pool.Process(j).(result)
		}(i, job{name: f, out: outs[i]})
	}
	wg.Wait()

	status := common.ExitSuccess
	for _, r := range results {
		fmt.Fprintln(stdout, r)
		if r.err != nil || (opt.strict && r.refused > 0) {
			status = common.ExitFailure
		}
	}
	return status
}
