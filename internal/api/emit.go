package api

import (
	"slices"
	"strings"
)

// Target is the API a call is converted to.
type Target struct {
	Schema *Schema
	Kind   Kind
	// Attrs names the construction-time parameters of split kinds.
	Attrs []string
	// Index names the source parameter used as subscript by KindIndexedAccessor.
	Index string
	// Keyworded emits name=value instead of bare values.
	Keyworded bool
}

// Name returns the target API name.
func (t *Target) Name() string {
	return t.Schema.Name()
}

// IsAttr reports whether a parameter is a construction-time attribute.
func (t *Target) IsAttr(name string) bool {
	return slices.Contains(t.Attrs, name)
}

// Emit serializes resolved arguments into call text for the target.
// No syntax check is done on the result; <REQUIRED> placeholders stay visible.
func Emit(target *Target, call *Call, resolved *Args) string {
	name := target.Name()

	switch target.Kind {
	case KindIndexedAccessor:
		if idx, ok := call.Value(target.Index); ok {
			return name + "()(" + target.join(resolved, nil) + ")[" + idx + "]"
		}

		fallthrough
	case KindPrimitive:
		attrs := target.join(resolved, func(k string) bool { return target.IsAttr(k) })
		inputs := target.join(resolved, func(k string) bool { return !target.IsAttr(k) })

		return name + "(" + attrs + ")(" + inputs + ")"
	default:
		return name + "(" + target.join(resolved, nil) + ")"
	}
}

// join renders the selected arguments as a comma separated list.
func (t *Target) join(args *Args, keep func(string) bool) string {
	var parts []string

	for k, v := range args.All() {
		if keep != nil && !keep(k) {
			continue
		}

		switch {
		case k == StarKey || k == DoubleStarKey:
			parts = append(parts, k+v)
		case isCatchAll(k):
			// catch-all values are already an argument list
			parts = append(parts, v)
		case t.Keyworded:
			parts = append(parts, k+"="+v)
		default:
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, ", ")
}
