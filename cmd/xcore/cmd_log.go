package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/trickstertwo/xcore/harness"
)

type logFlags struct {
	times   uint
	threads uint
	stream  string
}

func newLogCmd(a *app) *cobra.Command {
	var f logFlags
	cmd := &cobra.Command{
		Use:   "log MESSAGE",
		Short: "Write MESSAGE to a channel N times",
		Example: `  xcore log --stream warn --times 3 "disk almost full"
  xcore log --stream fatal "unrecoverable"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.sink(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, s.Close()) }()
			return harness.New(s, harness.Options{Logger: a.logger}).LogMessage(f.times, f.stream, args[0])
		},
	}
	cmd.Flags().UintVarP(&f.times, "times", "n", 1, "number of writes")
	cmd.Flags().StringVarP(&f.stream, "stream", "s", "info", "channel: debug, info, warn, error or fatal")
	return cmd
}

func newLogMTCmd(a *app) *cobra.Command {
	var f logFlags
	cmd := &cobra.Command{
		Use:   "log-mt MESSAGE",
		Short: "Write MESSAGE from several goroutines at once",
		Example: `  xcore log-mt --threads 8 --times 1000 --stream debug "tick"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.sink(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, s.Close()) }()
			return harness.New(s, harness.Options{Logger: a.logger}).LogMessageMT(f.threads, f.times, f.stream, args[0])
		},
	}
	cmd.Flags().UintVarP(&f.threads, "threads", "t", 4, "number of concurrent writers")
	cmd.Flags().UintVarP(&f.times, "times", "n", 1, "writes per writer")
	cmd.Flags().StringVarP(&f.stream, "stream", "s", "info", "channel: debug, info, warn, error or fatal")
	return cmd
}
