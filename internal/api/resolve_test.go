package api

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, s *Schema, args string) *Call {
	t.Helper()

	call, err := ParseArgs(zerolog.Nop(), s, s.Name(), args)
	require.NoError(t, err)

	return call
}

func pairs(a *Args) [][2]string {
	var out [][2]string
	for k, v := range a.All() {
		out = append(out, [2]string{k, v})
	}

	return out
}

func TestResolveMappedParameter(t *testing.T) {
	source := MustSchema("src", P("s", 1))
	rule := Rule{Names: map[string]string{"k": "s"}}

	tests := []struct {
		name     string
		target   *Schema
		args     string
		expected [][2]string
	}{
		{
			name:     "supplied value is copied",
			target:   MustSchema("dst", P("k", 1)),
			args:     "(s=5)",
			expected: [][2]string{{"k", "5"}},
		},
		{
			name:     "supplied value wins over differing default",
			target:   MustSchema("dst", P("k", 2)),
			args:     "(5)",
			expected: [][2]string{{"k", "5"}},
		},
		{
			name:     "omitted with differing default emits source default",
			target:   MustSchema("dst", P("k", 2)),
			args:     "()",
			expected: [][2]string{{"k", "1"}},
		},
		{
			name:     "omitted with equal default is dropped",
			target:   MustSchema("dst", P("k", 1)),
			args:     "()",
			expected: nil,
		},
		{
			name:     "int and float defaults are different",
			target:   MustSchema("dst", P("k", 1.0)),
			args:     "()",
			expected: [][2]string{{"k", "1"}},
		},
		{
			name:     "cosmetic float difference is equal",
			target:   MustSchema("dst", P("k", Expr("1."))),
			args:     "()",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			call := parse(t, source, tt.args)
			got := Resolve(tt.target, source, call, rule, nil)
			assert.Equal(t, tt.expected, pairs(got))
		})
	}
}

func TestResolveFloatDefaults(t *testing.T) {
	source := MustSchema("src", P("eps", Expr("1.0")))
	target := MustSchema("dst", P("epsilon", Expr("1.")))
	rule := Rule{Names: map[string]string{"epsilon": "eps"}}

	got := Resolve(target, source, parse(t, source, "()"), rule, nil)
	assert.Equal(t, 0, got.Len())
}

func TestResolveUnmappedParameter(t *testing.T) {
	source := MustSchema("src", P("x", Required))
	target := MustSchema("dst",
		P("x", Required),
		P("required_only", Required),
		P("forced", 0),
		P("optional", 0),
	)
	rule := Rule{Names: map[string]string{"x": "x"}}

	got := Resolve(target, source, parse(t, source, "(t)"), rule, map[string]string{"forced": "'pad'"})

	assert.Equal(t, [][2]string{
		{"x", "t"},
		{"required_only", RequiredPlaceholder},
		{"forced", "'pad'"},
	}, pairs(got))
}

func TestResolveOverrideBeatsRequired(t *testing.T) {
	source := MustSchema("src", P("x", Required))
	target := MustSchema("dst", P("mode", Required))

	got := Resolve(target, source, parse(t, source, "(t)"), Rule{}, map[string]string{"mode": "1"})
	assert.Equal(t, [][2]string{{"mode", "1"}}, pairs(got))
}

func TestResolveRequiredSourceDefault(t *testing.T) {
	source := MustSchema("src", P("input", Required))
	target := MustSchema("dst", P("x", 0))
	rule := Rule{Names: map[string]string{"x": "input"}}

	got := Resolve(target, source, parse(t, source, "()"), rule, nil)
	assert.Equal(t, [][2]string{{"x", RequiredPlaceholder}}, pairs(got))
}

func TestResolveOrderFollowsTarget(t *testing.T) {
	source := MustSchema("src", P("a", Required), P("b", Required), P("c", Required))
	target := MustSchema("dst", P("z", Required), P("y", Required), P("x", Required))
	rule := Rule{Names: map[string]string{"x": "a", "y": "b", "z": "c"}}

	got := Resolve(target, source, parse(t, source, "(*rest, c=3, a=1, b=2, **kw)"), rule, nil)

	assert.Equal(t, []string{"z", "y", "x", StarKey, DoubleStarKey}, got.Keys())
	assert.Equal(t, "z=3, y=2, x=1, *=rest, **=kw", got.String())
}

func TestResolveReceiver(t *testing.T) {
	source := MustSchema(".size", P("idx", nil))
	target := MustSchema("P.Shape", P("input_x", Required))
	rule := Rule{Names: map[string]string{"input_x": ReceiverKey}}

	call, err := ParseArgs(zerolog.Nop(), source, "feat.size", "()")
	require.NoError(t, err)

	got := Resolve(target, source, call, rule, nil)
	assert.Equal(t, [][2]string{{"input_x", "feat"}}, pairs(got))
}
