// Package main provides the CLI entrypoint for op-converter.
//
// op-converter rewrites calls against a source ML framework API into calls
// against a target framework API:
//   - convert rewrites one call given its name and argument text
//   - script rewrites every mapped call of a Python script
//   - list prints the supported or unsupported source APIs
//   - check validates mapping files
//   - histogram bins the values of a weight dump
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
