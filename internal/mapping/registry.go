package mapping

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/samber/lo"

	"op-converter/internal/api"
	"op-converter/internal/match"
	"op-converter/internal/overrides"
)

var (
	// ErrMappingNotFound is returned for API names the registry knows nothing about.
	ErrMappingNotFound = errors.New("no mapping for API")
	// ErrUnsupported is returned for known APIs that have no mapping.
	ErrUnsupported = errors.New("API is not supported")
)

// Registry is the read-only table of API mappings keyed by fully-qualified
// source API name. It is safe for concurrent use once built.
type Registry struct {
	entries map[string]*api.Mapping
	known   map[string]struct{}
	hints   map[string]string
}

// Build validates the files and merges them into a registry. Keys defined
// by later files replace those of earlier ones.
func Build(files ...*File) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]*api.Mapping),
		known:   make(map[string]struct{}),
		hints:   make(map[string]string),
	}

	for i, f := range files {
		if diags := Validate(f); diags.HasErrors() {
			return nil, fmt.Errorf("mapping file #%d: %w", i+1, diags.Error())
		}

		if err := r.add(f); err != nil {
			return nil, fmt.Errorf("mapping file #%d: %w", i+1, err)
		}
	}

	return r, nil
}

// add registers the entries, API names and hints of one validated file
// under their own keys and all alias expansions.
func (r *Registry) add(f *File) error {
	expand := func(key string) []string {
		keys := []string{key}
		for _, a := range f.Aliases {
			keys = append(keys, a.Apply(key)...)
		}

		return keys
	}

	for key, e := range f.Mappings {
		m, err := buildMapping(&e)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}

		for _, k := range expand(key) {
			r.entries[k] = m
			r.known[k] = struct{}{}
		}
	}

	for _, name := range f.APIs {
		for _, k := range expand(name) {
			r.known[k] = struct{}{}
		}
	}

	for name, hint := range f.Hints {
		for _, k := range expand(name) {
			r.hints[k] = hint
		}
	}

	return nil
}

// buildMapping turns a validated entry into an immutable api.Mapping.
func buildMapping(e *Entry) (*api.Mapping, error) {
	source, err := api.NewSchema(e.Source.Name, e.Source.Params...)
	if err != nil {
		return nil, err
	}

	target, err := api.NewSchema(e.Target.Name, e.Target.Params...)
	if err != nil {
		return nil, err
	}

	kind, index, err := e.ResolveKind()
	if err != nil {
		return nil, err
	}

	rule := api.Rule{Names: maps.Clone(e.Names)}

	if e.Override != "" {
		fn, ok := overrides.Lookup(e.Override)
		if !ok {
			return nil, fmt.Errorf("unknown override %q", e.Override)
		}

		rule.Override = fn
	}

	return &api.Mapping{
		Source: source,
		Target: &api.Target{
			Schema:    target,
			Kind:      kind,
			Attrs:     slices.Clone(e.Target.Attrs),
			Index:     index,
			Keyworded: e.IsKeyworded(kind),
		},
		Rule: rule,
	}, nil
}

// Lookup returns the mapping registered for a source API name.
// Unknown names yield ErrMappingNotFound; known but unmapped names yield
// ErrUnsupported, carrying the hint when there is one.
func (r *Registry) Lookup(name string) (*api.Mapping, error) {
	if m, ok := r.entries[name]; ok {
		return m, nil
	}

	if _, ok := r.known[name]; ok {
		if hint := r.hints[name]; hint != "" {
			return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupported, name, hint)
		}

		return nil, fmt.Errorf("%w: %s", ErrUnsupported, name)
	}

	return nil, fmt.Errorf("%w: %s", ErrMappingNotFound, name)
}

// Has reports whether name is a known API, mapped or not.
func (r *Registry) Has(name string) bool {
	_, ok := r.known[name]
	return ok
}

// Len returns the number of mapped names, aliases included.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Hint returns the advice recorded for an API, if any.
func (r *Registry) Hint(name string) string {
	return r.hints[name]
}

// Supported returns all mapped API names, sorted.
func (r *Registry) Supported() []string {
	return slices.Sorted(maps.Keys(r.entries))
}

// Unsupported returns the known API names without a mapping, sorted.
func (r *Registry) Unsupported() []string {
	var out []string

	for name := range r.known {
		if _, ok := r.entries[name]; !ok {
			out = append(out, name)
		}
	}

	sort.Strings(out)

	return out
}

// Suggest returns up to limit mapped names resembling name.
func (r *Registry) Suggest(name string, limit int) []string {
	suggestions := match.Suggest(name, r.Supported(), limit, match.DefaultMinScore)

	return lo.Map(suggestions, func(s match.Suggestion, _ int) string { return s.Name })
}
