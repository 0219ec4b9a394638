package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"op-converter/internal/report"
)

func newScriptCommand(opts *options) *cobra.Command {
	var (
		output     string
		withReport bool
	)

	cmd := &cobra.Command{
		Use:   "script FILE",
		Short: "Convert every mapped call of a Python script",
		Long: `Convert every mapped call of a Python script ("-" reads stdin).

Calls that cannot be converted are left as written and listed in the
report. Unknown calls are not touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(args[0])
			if err != nil {
				return err
			}

			reg, err := opts.registry()
			if err != nil {
				return err
			}

			res, err := opts.converter(reg).ConvertScript(cmd.Context(), src)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), res.Output)
			} else {
				err = os.WriteFile(output, []byte(res.Output), 0o644)
			}

			if err != nil {
				return err
			}

			if withReport {
				_, err = fmt.Fprint(cmd.ErrOrStderr(), report.FromResult(res))
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the converted script to this file instead of stdout")
	cmd.Flags().BoolVar(&withReport, "report", false, "print the conversion report to stderr")

	return cmd
}
