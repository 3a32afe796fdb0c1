// Package logs decides where log output goes. Programs pass a
// destination from the command line and get back a logger.
package logs

import (
	"io"
	"log"
	"os"
)

// Discard is a logger for callers who do not want one.
var Discard = log.New(io.Discard, "", 0)

// Where returns a logger writing to dest and a function to call when
// the logger is finished with.
// "" throws everything away, "stdout" and "stderr" are what they say,
// and anything else is a file, appended to if it exists.
func Where(dest string) (*log.Logger, func() error, error) {
	nothing := func() error { return nil }
	var w io.Writer
	switch dest {
	case "":
		return Discard, nothing, nil
	case "stdout":
		w = os.Stdout
	case "stderr":
		w = os.Stderr
	default:
		fp, err := os.OpenFile(dest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nothing, err
		}
		return log.New(fp, "", log.Lshortfile), fp.Close, nil
	}
	return log.New(w, "", log.Lshortfile), nothing, nil
}

// OrDiscard turns a nil logger into one which writes nowhere.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard
	}
	return l
}
