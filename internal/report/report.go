// Package report renders the text report of a script conversion.
package report

import (
	"fmt"
	"strings"

	"op-converter/internal/convert"
)

const (
	startMarker = "[Start Convert]"
	endMarker   = "[Convert Over]"
)

// Generate renders the report of a conversion:
//
//	[Start Convert]
//	line 8:21: [Convert] 'nn.Conv2d' is converted to 'nn.Conv2d'.
//	line 9:21: [UnConvert] 'nn.AdaptiveAvgPool2d' didn't convert. maybe could convert to P.ReduceMean
//	[Convert Over]
//	Converted Rate: 92.86%.
//
// The rate is the share of the totalLines lines holding no unconverted call.
func Generate(outcomes []convert.Outcome, totalLines int) string {
	lines := []string{startMarker}
	failed := make(map[int]struct{})

	for _, o := range outcomes {
		if o.Converted {
			lines = append(lines, fmt.Sprintf("line %s: [Convert] '%s' is converted to '%s'.",
				o.Location(), o.Name, o.TargetName))

			continue
		}

		failed[o.Line] = struct{}{}

		line := fmt.Sprintf("line %s: [UnConvert] '%s' didn't convert.", o.Location(), o.Name)
		if o.Hint != "" {
			line += " " + o.Hint
		}

		lines = append(lines, line)
	}

	lines = append(lines, endMarker, fmt.Sprintf("Converted Rate: %.2f%%.", Rate(len(failed), totalLines)))

	return strings.Join(lines, "\n") + "\n"
}

// Rate returns the converted percentage for unconvertedLines out of
// totalLines; an empty script counts as fully converted.
func Rate(unconvertedLines, totalLines int) float64 {
	if totalLines <= 0 {
		return 100
	}

	return float64(totalLines-unconvertedLines) / float64(totalLines) * 100
}

// FromResult renders the report of a script conversion result.
func FromResult(res *convert.Result) string {
	return Generate(res.Outcomes, res.Lines())
}
