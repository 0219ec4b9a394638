package api

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind selects how a target call is emitted.
type Kind int

const (
	// KindOrdinary emits Name(args).
	KindOrdinary Kind = iota
	// KindPrimitive emits Name(attrs)(inputs): construction attributes first,
	// per-call inputs second.
	KindPrimitive
	// KindIndexedAccessor emits Name()(args)[idx] when the source call
	// supplies the index parameter, and falls back to KindPrimitive otherwise.
	KindIndexedAccessor
)

// Split reports whether the kind emits two argument groups.
func (k Kind) Split() bool {
	return k == KindPrimitive || k == KindIndexedAccessor
}
