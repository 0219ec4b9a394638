// Package overrides holds the closed table of named override rules that
// mapping files may reference. An override derives target values that have
// no direct source counterpart from the arguments of the source call.
package overrides

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"op-converter/internal/api"
)

var table = map[string]api.OverrideFunc{
	"conv2d_pad_mode":    Conv2dPadMode,
	"max_pool2d_padding": MaxPool2dPadding,
	"maxpool2d_pad_mode": MaxPool2dPadMode,
	"dropout_keep_prob":  DropoutKeepProb,
}

// Lookup returns the override registered under name.
func Lookup(name string) (api.OverrideFunc, bool) {
	fn, ok := table[name]
	return fn, ok
}

// Names returns the registered override names, sorted.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Conv2dPadMode picks pad_mode from numeric padding: explicit non-zero
// padding needs 'pad', zero padding is 'valid'.
func Conv2dPadMode(_ *api.Schema, call *api.Call) map[string]string {
	if padding, ok := call.Value("padding"); ok && !isZero(padding) {
		return map[string]string{"pad_mode": "'pad'"}
	}

	return map[string]string{"pad_mode": "'valid'"}
}

// MaxPool2dPadding maps numeric padding onto the 'valid'/'same' padding
// attribute of pooling primitives and fills strides (see poolStride).
func MaxPool2dPadding(source *api.Schema, call *api.Call) map[string]string {
	out := map[string]string{"padding": padMode(valueOrDefault(source, call, "padding"))}
	if stride, ok := poolStride(source, call); ok {
		out["strides"] = stride
	}

	return out
}

// MaxPool2dPadMode maps numeric padding onto pad_mode and fills stride
// (see poolStride).
func MaxPool2dPadMode(source *api.Schema, call *api.Call) map[string]string {
	out := map[string]string{"pad_mode": padMode(valueOrDefault(source, call, "padding"))}
	if stride, ok := poolStride(source, call); ok {
		out["stride"] = stride
	}

	return out
}

// poolStride returns the stride given by the call, or kernel_size when
// stride is unset: pooling in the source framework defaults stride to the
// kernel size.
func poolStride(source *api.Schema, call *api.Call) (string, bool) {
	if stride := valueOrDefault(source, call, "stride"); stride != "" && stride != "None" {
		return stride, true
	}

	return call.Value("kernel_size")
}

// DropoutKeepProb converts a drop probability into a keep probability.
func DropoutKeepProb(source *api.Schema, call *api.Call) map[string]string {
	p := valueOrDefault(source, call, "p")
	if p == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(p, 64); err == nil {
		return map[string]string{"keep_prob": api.LiteralOf(roundTo(1-f, decimals(p))).String()}
	}

	return map[string]string{"keep_prob": "1 - " + p}
}

// valueOrDefault returns the supplied text, else the source default text,
// else "".
func valueOrDefault(source *api.Schema, call *api.Call, name string) string {
	if v, ok := call.Value(name); ok {
		return strings.TrimSpace(v)
	}

	if def, ok := source.Lookup(name); ok && !def.IsRequired() {
		return def.String()
	}

	return ""
}

func padMode(padding string) string {
	if padding == "" || isZero(padding) {
		return "'valid'"
	}

	return "'same'"
}

// isZero reports whether padding text is 0 or a tuple/list of zeros.
func isZero(text string) bool {
	trimmed := strings.Trim(strings.ReplaceAll(text, " ", ""), "()[]")
	if trimmed == "" {
		return false
	}

	for _, part := range strings.Split(strings.TrimSuffix(trimmed, ","), ",") {
		if part != "0" {
			return false
		}
	}

	return true
}

// decimals returns the number of fractional digits written in a numeric
// literal, exponent included: "0.25" has 2, "5e-3" has 3.
func decimals(lit string) int {
	mantissa, exp := lit, 0
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		mantissa = lit[:i]
		exp, _ = strconv.Atoi(lit[i+1:])
	}

	d := -exp
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		d += len(mantissa) - i - 1
	}

	return min(max(d, 0), 15)
}

// roundTo drops the binary noise of f below d fractional digits.
func roundTo(f float64, d int) float64 {
	scale := math.Pow10(d)
	return math.Round(f*scale) / scale
}
