package match

import (
	"strings"
)

// frameworkPrefixes are stripped before comparing names, longest first.
var frameworkPrefixes = []string{
	"torch.nn.functional.",
	"nn.functional.",
	"torch.nn.",
	"torch.",
	"nn.",
	"F.",
	"P.",
	".",
}

// NormalizeName reduces an API name to a comparable key:
//  1. strip one framework prefix ("torch.nn.", "F.", ...)
//  2. case-fold to lower
//  3. drop separators (_, -, space)
//
// "nn.MaxPool2d" and "F.max_pool2d" both become "maxpool2d".
func NormalizeName(name string) string {
	for _, prefix := range frameworkPrefixes {
		if strings.HasPrefix(name, prefix) {
			name = name[len(prefix):]
			break
		}
	}

	var b strings.Builder

	b.Grow(len(name))

	for _, r := range strings.ToLower(name) {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
