package api

// OverrideFunc derives forced target values from a parsed source call.
// It returns target parameter name -> literal text.
type OverrideFunc func(source *Schema, call *Call) map[string]string

// Rule relates a target API to a source API.
type Rule struct {
	// Names maps target parameter names to source parameter names.
	// Target parameters absent from the map have no source equivalent.
	Names map[string]string
	// Override is optional.
	Override OverrideFunc
}

// Overrides evaluates the override function, or returns nil without one.
func (r Rule) Overrides(source *Schema, call *Call) map[string]string {
	if r.Override == nil {
		return nil
	}

	return r.Override(source, call)
}

// Resolve produces the target call's arguments.
//
// For each target parameter k, in declaration order:
//   - mapped to source s and supplied: the supplied text
//   - mapped, not supplied, defaults differ: the source default
//   - unmapped and overridden: the override
//   - unmapped and REQUIRED: the <REQUIRED> placeholder
//   - otherwise nothing, the target default applies
//
// Variadic captures are appended last, "*" before "**".
func Resolve(target, source *Schema, call *Call, rule Rule, overrides map[string]string) *Args {
	out := newArgs()

	for _, p := range target.params {
		k := p.Name

		if s, mapped := rule.Names[k]; mapped {
			if v, ok := call.Value(s); ok {
				out.set(k, v)
				continue
			}

			srcDefault, ok := source.Lookup(s)
			if ok && !p.Default.Equal(srcDefault) {
				out.set(k, srcDefault.Emitted())
			}

			continue
		}

		if v, ok := overrides[k]; ok {
			out.set(k, v)
			continue
		}

		if p.Default.IsRequired() {
			out.set(k, RequiredPlaceholder)
		}
	}

	for _, star := range []string{StarKey, DoubleStarKey} {
		if v, ok := call.Value(star); ok {
			out.set(star, v)
		}
	}

	return out
}
