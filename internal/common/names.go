package common

import "strings"

// UnknownStr is the printed form of out-of-range enum values.
const UnknownStr = "unknown"

// LastSegment returns the part of a dotted name after the last dot.
// "torch.nn.Conv2d" -> "Conv2d", ".size" -> "size", "relu" -> "relu".
func LastSegment(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}

	return name
}
