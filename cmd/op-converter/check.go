package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"op-converter/internal/mapping"
)

var errInvalidMapping = errors.New("mapping validation failed")

func newCheckCommand(_ *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate mapping files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				f, err := mapping.LoadFile(path)
				if err != nil {
					fmt.Fprintf(w, "%s: %v\n", path, err)
					failed++

					continue
				}

				diags := mapping.Validate(f)
				for _, d := range diags.All() {
					fmt.Fprintf(w, "%s: %s: %s\n", path, d.Severity, d.String())
				}

				if diags.HasErrors() {
					failed++
					continue
				}

				fmt.Fprintf(w, "%s: ok (%d mappings)\n", path, len(f.Mappings))
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errInvalidMapping, failed, len(args))
			}

			return nil
		},
	}
}
