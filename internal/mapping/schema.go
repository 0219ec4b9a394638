package mapping

import (
	"fmt"
	"strings"

	"op-converter/internal/api"
)

// CurrentVersion is the only mapping schema version understood.
const CurrentVersion = "1"

// File represents the root of a YAML mapping definition file.
type File struct {
	// Version of the mapping schema.
	Version string `yaml:"version,omitempty"`

	// Aliases register keys under additional prefixes.
	Aliases []Alias `yaml:"aliases,omitempty"`

	// APIs lists the source APIs of this family, mapped or not.
	APIs []string `yaml:"apis,omitempty"`

	// Hints holds advice for APIs that cannot be converted automatically.
	Hints map[string]string `yaml:"hints,omitempty"`

	// Mappings is keyed by fully-qualified source API name.
	Mappings map[string]Entry `yaml:"mappings,omitempty"`
}

// Alias registers every key starting with Prefix once more for each
// expansion, e.g. prefix "F." with expansion "torch.nn.functional." turns
// "F.relu" into "torch.nn.functional.relu".
type Alias struct {
	Prefix string        `yaml:"prefix"`
	Expand StringOrArray `yaml:"expand"`
}

// Apply returns the alias expansions of key, or nil if the prefix does not
// match.
func (a Alias) Apply(key string) []string {
	if a.Prefix == "" || !strings.HasPrefix(key, a.Prefix) {
		return nil
	}

	rest := key[len(a.Prefix):]
	out := make([]string, 0, len(a.Expand))

	for _, e := range a.Expand {
		out = append(out, e+rest)
	}

	return out
}

// Entry binds one source API to one target API.
type Entry struct {
	Target TargetDef `yaml:"target"`
	Source APIDef    `yaml:"source"`

	// Names maps target parameter names to source parameter names.
	// api.ReceiverKey refers to the object a method is called on.
	Names map[string]string `yaml:"names,omitempty"`

	// Override names a rule from the overrides package.
	Override string `yaml:"override,omitempty"`

	// Keyworded forces (true) or suppresses (false) name=value emission.
	Keyworded *bool `yaml:"keyworded,omitempty"`
}

// APIDef declares one API's name and ordered parameter list.
type APIDef struct {
	Name   string    `yaml:"name,omitempty"`
	Params ParamList `yaml:"params,omitempty"`
}

// TargetDef is an APIDef plus emission settings.
type TargetDef struct {
	APIDef `yaml:",inline"`

	// Kind is "ordinary", "primitive" or "indexed"; empty means auto.
	Kind string `yaml:"kind,omitempty"`

	// Attrs are the construction-time parameters of primitive targets.
	Attrs []string `yaml:"attrs,omitempty"`

	// Index is the source parameter used as subscript by indexed targets.
	Index string `yaml:"index,omitempty"`
}

// Kind names accepted in YAML.
const (
	KindOrdinary  = "ordinary"
	KindPrimitive = "primitive"
	KindIndexed   = "indexed"
)

// sizeAccessor is the source API emitted as an indexed accessor by default.
const (
	sizeAccessor   = ".size"
	sizeIndexParam = "idx"
)

// ResolveKind determines the emission kind and index parameter of an entry.
func (e *Entry) ResolveKind() (api.Kind, string, error) {
	index := e.Target.Index

	switch e.Target.Kind {
	case KindOrdinary:
		return api.KindOrdinary, "", nil
	case KindIndexed:
		if index == "" {
			index = sizeIndexParam
		}

		return api.KindIndexedAccessor, index, nil
	case KindPrimitive, "":
		if e.Target.Kind == "" && !strings.HasPrefix(e.Target.Name, "P.") {
			return api.KindOrdinary, "", nil
		}

		if index != "" {
			return api.KindIndexedAccessor, index, nil
		}

		if e.Source.Name == sizeAccessor {
			return api.KindIndexedAccessor, sizeIndexParam, nil
		}

		return api.KindPrimitive, "", nil
	default:
		return 0, "", fmt.Errorf("unknown kind %q (expected %s, %s or %s)",
			e.Target.Kind, KindOrdinary, KindPrimitive, KindIndexed)
	}
}

// IsKeyworded reports whether arguments are emitted as name=value.
func (e *Entry) IsKeyworded(kind api.Kind) bool {
	if e.Keyworded != nil {
		return *e.Keyworded
	}

	return !kind.Split()
}
