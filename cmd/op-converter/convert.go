package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"op-converter/internal/common"
	"op-converter/internal/mapping"
)

func newConvertCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert NAME ARGS",
		Short: "Convert a single call",
		Example: `  op-converter convert nn.Conv2d '(3, 64, 3, padding=1)'
  op-converter convert x.size '(1)'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0], args[1])
		},
	}
}

func runConvert(cmd *cobra.Command, opts *options, name, argsText string) error {
	reg, err := opts.registry()
	if err != nil {
		return err
	}

	out := opts.converter(reg).ConvertCall(name, argsText)

	if opts.debug {
		if m, lookupErr := reg.Lookup(out.Name); lookupErr == nil {
			if tr, traceErr := m.Trace(opts.log, name, argsText); traceErr == nil {
				spew.Fdump(cmd.ErrOrStderr(), tr.Call.Args.Map(), tr.Overrides, tr.Resolved.Map())
			}
		}
	}

	if out.Err != nil {
		if errors.Is(out.Err, mapping.ErrMappingNotFound) {
			if suggestions := reg.Suggest(name, 3); !common.IsEmpty(suggestions) {
				return fmt.Errorf("%w (did you mean %s?)", out.Err, strings.Join(suggestions, ", "))
			}
		}

		return out.Err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Output)

	return err
}
