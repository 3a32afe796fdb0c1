// 14 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/oldpdb/pkg/common"
)

func main() {
	cmd, status := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(common.ExitUsageError)
	}
	os.Exit(*status)
}
