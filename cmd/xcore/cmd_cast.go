package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/xcore/cast"
)

func newCastCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "cast VALUE",
		Short: "Parse VALUE as one numeric kind and convert it to another",
		Long: `Kinds: ` + kindList() + `.
Complex values use Go syntax, e.g. "(1+2i)". Conversion follows the cast
table: complex to real keeps the real part, narrowing wraps like a Go
conversion expression.`,
		Example: `  xcore cast --from complex128 --to int8 "(100.7+2i)"
  xcore cast --from int16 --to uint8 -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := cast.ParseKind(from)
			if err != nil {
				return err
			}
			dst, err := cast.ParseKind(to)
			if err != nil {
				return err
			}
			v, err := cast.Parse(src, args[0])
			if err != nil {
				return err
			}
			out, err := cast.Convert(v, dst)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "float64", "source kind")
	cmd.Flags().StringVar(&to, "to", "float64", "target kind")
	return cmd
}

func kindList() string {
	names := make([]string, 0, len(cast.Kinds()))
	for _, k := range cast.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
