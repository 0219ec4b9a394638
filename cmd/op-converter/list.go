package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	var unsupported bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the supported source APIs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := opts.registry()
			if err != nil {
				return err
			}

			names := reg.Supported()
			if unsupported {
				names = reg.Unsupported()
			}

			w := cmd.OutOrStdout()

			for _, name := range names {
				line := name
				if hint := reg.Hint(name); unsupported && hint != "" {
					line += "\t# " + hint
				}

				if _, err := fmt.Fprintln(w, line); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&unsupported, "unsupported", false, "list known APIs without a mapping instead")

	return cmd
}
