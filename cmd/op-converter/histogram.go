package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"op-converter/internal/histogram"
)

func newHistogramCommand(opts *options) *cobra.Command {
	var bins int

	cmd := &cobra.Command{
		Use:   "histogram FILE",
		Short: "Bin the values of a YAML or JSON list of numbers",
		Long: `Bin the values of a YAML or JSON list of numbers ("-" reads stdin).

NaN and infinite values (.nan, .inf) are ignored. Each output row is
"left width count".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			var values []float64
			if err := yaml.Unmarshal(data, &values); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			result, err := histogram.Calc(values, bins)
			if err != nil {
				return err
			}

			opts.log.Debug().Int("values", len(values)).Int("bins", bins).Msg("histogram computed")

			for _, row := range histogram.Triples(result) {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%g %g %g\n", row[0], row[1], row[2]); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVar(&bins, "bins", histogram.DefaultBins, "number of bins")

	return cmd
}
