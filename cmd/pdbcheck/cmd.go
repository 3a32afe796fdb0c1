package main

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/oldpdb/pkg/common"
)

// options are the settings after flags, environment and config file
// have been merged.
type options struct {
	workers  int
	out      string
	preserve bool
	strict   bool
	log      string
	broken   float64
}

// newCommand builds the command. The exit status is set by running it.
func newCommand(stdout, stderr io.Writer) (*cobra.Command, *int) {
	status := common.ExitSuccess
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "pdbcheck [flags] file_or_directory...",
		Short:        "Check files in the old PDB format",
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := loadOptions(v, cmd)
			if err != nil {
				return err
			}
			status = run(args, opt, stdout, stderr)
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	f := cmd.Flags()
	f.IntP("workers", "w", runtime.NumCPU(), "number of files to read at once")
	f.StringP("out", "o", "", "write entries again into this directory")
	f.BoolP("preserve-order", "p", false, "write records in the order they were read")
	f.BoolP("strict", "s", false, "fail if any record had to be left out")
	f.StringP("log", "l", "stderr", `where warnings go: "", stdout, stderr or a file`)
	f.Float64("broken", 0, "probability of an artificial read error")
	f.String("config", "", "config file")
	f.MarkHidden("broken")
	return cmd, &status
}

func loadOptions(v *viper.Viper, cmd *cobra.Command) (options, error) {
	v.SetEnvPrefix("PDBCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return options{}, err
	}
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return options{}, fmt.Errorf("config file %s: %w", cfg, err)
		}
	}
	opt := options{
		workers:  v.GetInt("workers"),
		out:      v.GetString("out"),
		preserve: v.GetBool("preserve-order"),
		strict:   v.GetBool("strict"),
		log:      v.GetString("log"),
		broken:   v.GetFloat64("broken"),
	}
	if opt.workers < 1 {
		return opt, fmt.Errorf("workers must be at least 1, not %d", opt.workers)
	}
	if opt.broken < 0 || opt.broken > 1 {
		return opt, fmt.Errorf("broken is a probability, not %g", opt.broken)
	}
	return opt, nil
}
