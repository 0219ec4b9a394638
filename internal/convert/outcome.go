package convert

import (
	"fmt"
	"strings"
)

// Outcome records one attempted call conversion.
type Outcome struct {
	// Name is the registry key the call resolved to, e.g. "nn.Conv2d" or ".size".
	Name string
	// Callee is the callee text as written in the source.
	Callee string
	// Line and Column are 1-based; zero for calls converted outside a script.
	Line   int
	Column int
	// Converted is true when Output replaced the original call.
	Converted bool
	// TargetName is the target API name of the mapping, if one was found.
	TargetName string
	// Output is the emitted call text, empty when the lookup failed.
	Output string
	// Hint is the registry advice for unsupported APIs.
	Hint string
	// Err explains why the call was not converted.
	Err error
}

// Location returns "line:column".
func (o Outcome) Location() string {
	return fmt.Sprintf("%d:%d", o.Line, o.Column)
}

// Result is the outcome of converting a whole script.
type Result struct {
	// Output is the rewritten script.
	Output string
	// SourceLines is the line count of the input script. Outcome
	// positions refer to these lines, not to those of Output.
	SourceLines int
	// Outcomes lists attempted calls in source order, inner calls before
	// the calls that contain them.
	Outcomes []Outcome
}

// Lines returns the number of lines of the input script.
func (r *Result) Lines() int {
	return r.SourceLines
}

func countLines(src []byte) int {
	return len(strings.Split(string(src), "\n"))
}

// Converted returns the number of converted calls.
func (r *Result) Converted() int {
	n := 0

	for _, o := range r.Outcomes {
		if o.Converted {
			n++
		}
	}

	return n
}

// Unconverted returns the outcomes of calls left as written.
func (r *Result) Unconverted() []Outcome {
	var out []Outcome

	for _, o := range r.Outcomes {
		if !o.Converted {
			out = append(out, o)
		}
	}

	return out
}
