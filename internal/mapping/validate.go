package mapping

import (
	"fmt"
	"slices"
	"sort"

	"op-converter/internal/api"
	"op-converter/internal/diagnostic"
	"op-converter/internal/overrides"
)

// Validate checks a mapping file for structural problems. Errors make the
// file unusable; warnings flag entries that will convert with gaps.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q (expected %q)", f.Version, CurrentVersion), "", "")
	}

	for i, a := range f.Aliases {
		if a.Prefix == "" {
			res.AddError("empty_alias_prefix", fmt.Sprintf("alias #%d has an empty prefix", i+1), "", "")
		}

		if len(a.Expand) == 0 {
			res.AddWarning("empty_alias", fmt.Sprintf("alias %q expands to nothing", a.Prefix), "", "")
		}
	}

	keys := make([]string, 0, len(f.Mappings))
	for key := range f.Mappings {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		e := f.Mappings[key]
		validateEntry(res, key, &e)
	}

	for name := range f.Hints {
		if !slices.Contains(f.APIs, name) {
			res.AddWarning("hint_without_api", "hint given for an API not listed under apis", name, "")
		}
	}

	return res
}

// validateEntry validates a single mapping entry.
func validateEntry(res *diagnostic.Diagnostics, key string, e *Entry) {
	if e.Target.Name == "" {
		res.AddError("missing_target_name", "mapping must name its target API", key, "")
	}

	if _, err := api.NewSchema(e.Source.Name, e.Source.Params...); err != nil {
		res.AddError("invalid_source_schema", err.Error(), key, "")
	}

	if _, err := api.NewSchema(e.Target.Name, e.Target.Params...); err != nil {
		res.AddError("invalid_target_schema", err.Error(), key, "")
	}

	kind, index, err := e.ResolveKind()
	if err != nil {
		res.AddError("invalid_kind", err.Error(), key, "")
	}

	if e.Override != "" {
		if _, ok := overrides.Lookup(e.Override); !ok {
			res.AddError("unknown_override",
				fmt.Sprintf("override %q is not registered (known: %v)", e.Override, overrides.Names()), key, "")
		}
	}

	validateNames(res, key, e)

	for _, attr := range e.Target.Attrs {
		if !e.Target.Params.Has(attr) {
			res.AddError("unknown_attr", "attribute is not a target parameter", key, attr)
		}
	}

	if len(e.Target.Attrs) > 0 && err == nil && !kind.Split() {
		res.AddWarning("attrs_ignored", "attributes only apply to primitive targets", key, "")
	}

	if kind == api.KindIndexedAccessor && !e.Source.Params.Has(index) {
		res.AddError("unknown_index_param", "index parameter is not a source parameter", key, index)
	}

	// REQUIRED targets without mapping or override always emit <REQUIRED>.
	for _, p := range e.Target.Params {
		_, mapped := e.Names[p.Name]
		if p.Default.IsRequired() && !mapped && e.Override == "" {
			res.AddWarning("unresolvable_required",
				"required target parameter has no source mapping and no override", key, p.Name)
		}
	}
}

// validateNames checks both sides of the target -> source name map.
func validateNames(res *diagnostic.Diagnostics, key string, e *Entry) {
	targets := make([]string, 0, len(e.Names))
	for t := range e.Names {
		targets = append(targets, t)
	}

	sort.Strings(targets)

	for _, t := range targets {
		s := e.Names[t]

		if !e.Target.Params.Has(t) {
			res.AddError("unknown_target_param", "name map refers to an undeclared target parameter", key, t)
		}

		if s != api.ReceiverKey && !e.Source.Params.Has(s) {
			res.AddError("unknown_source_param",
				fmt.Sprintf("name map refers to undeclared source parameter %q", s), key, t)
		}
	}
}
