package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/trickstertwo/xcore/harness"
)

var errSelfCheckFailed = errors.New("output self-check failed")

func newSelfCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "selfcheck",
		Short: "Verify threshold filtering at DEBUG, ERROR and DISABLE",
		Long: `Temporarily redirects every channel of the configured sink into memory,
writes one message per channel at each of the DEBUG, ERROR and DISABLE
thresholds and compares the captured text. Devices and threshold are restored
afterwards. Exits non-zero on mismatch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.sink(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { err = multierr.Append(err, s.Close()) }()

			if !harness.New(s, harness.Options{Logger: a.logger}).OutputDisable() {
				return errSelfCheckFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
