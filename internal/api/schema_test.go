package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema("nn.Conv2d",
		P("in_channels", Required),
		P("kernel_size", Required),
		P("padding", 0),
		P("padding_mode", "zeros"),
	)
	require.NoError(t, err)

	assert.Equal(t, "nn.Conv2d", s.Name())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"in_channels", "kernel_size", "padding", "padding_mode"}, s.Names())

	def, ok := s.Lookup("padding_mode")
	require.True(t, ok)
	assert.Equal(t, "'zeros'", def.String())

	def, ok = s.Lookup("in_channels")
	require.True(t, ok)
	assert.True(t, def.IsRequired())

	_, ok = s.Lookup("stride")
	assert.False(t, ok)
	assert.False(t, s.Has("stride"))

	_, catchAll := s.CatchAll()
	assert.False(t, catchAll)

	assert.Equal(t,
		"nn.Conv2d(in_channels=REQUIRED, kernel_size=REQUIRED, padding=0, padding_mode='zeros')",
		s.String())
}

func TestNewSchemaInvariants(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
	}{
		{"duplicate name", []Param{P("x", Required), P("x", 1)}},
		{"catch-all with siblings", []Param{P("*args", Required), P("dim", 0)}},
		{"kwargs catch-all with siblings", []Param{P("x", Required), P("**kwargs", Required)}},
		{"empty name", []Param{P("", 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema("f", tt.params...)
			require.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestSchemaCatchAll(t *testing.T) {
	s := MustSchema(".view", P("*shape", Required))

	name, ok := s.CatchAll()
	assert.True(t, ok)
	assert.Equal(t, "*shape", name)
}

func TestMustSchemaPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustSchema("f", P("a", 1), P("a", 2))
	})
}
