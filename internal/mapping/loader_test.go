package mapping

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"op-converter/internal/api"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
aliases:
  - prefix: nn.
    expand: torch.nn.
apis: [nn.Conv2d, nn.LSTM]
hints:
  nn.LSTM: "rewrite by hand"
mappings:
  nn.Conv2d:
    target:
      name: nn.Conv2d
      params:
        in_channels: REQUIRED
        stride: 1
        pad_mode: !expr "'same'"
        has_bias: false
        weight_init: normal
        eps: 1e-05
        activation: null
        kernel: [3, 3]
    source:
      params:
        in_channels: REQUIRED
        bias: true
    names:
      in_channels: in_channels
      has_bias: bias
    override: conv2d_pad_mode
    keyworded: false
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	require.Len(t, f.Aliases, 1)
	assert.Equal(t, "nn.", f.Aliases[0].Prefix)
	assert.Equal(t, StringOrArray{"torch.nn."}, f.Aliases[0].Expand)
	assert.Equal(t, []string{"nn.Conv2d", "nn.LSTM"}, f.APIs)
	assert.Equal(t, "rewrite by hand", f.Hints["nn.LSTM"])

	require.Contains(t, f.Mappings, "nn.Conv2d")
	e := f.Mappings["nn.Conv2d"]

	// Source name defaults to the key
	assert.Equal(t, "nn.Conv2d", e.Source.Name)
	assert.Equal(t, "conv2d_pad_mode", e.Override)
	require.NotNil(t, e.Keyworded)
	assert.False(t, *e.Keyworded)

	// Declaration order survives
	assert.Equal(t,
		[]string{"in_channels", "stride", "pad_mode", "has_bias", "weight_init", "eps", "activation", "kernel"},
		e.Target.Params.Names())

	got := map[string]string{}
	for _, p := range e.Target.Params {
		got[p.Name] = p.Default.String()
	}

	assert.Equal(t, map[string]string{
		"in_channels": "REQUIRED",
		"stride":      "1",
		"pad_mode":    "'same'",
		"has_bias":    "False",
		"weight_init": "'normal'",
		"eps":         "1e-05",
		"activation":  "None",
		"kernel":      "[3, 3]",
	}, got)

	assert.True(t, e.Target.Params[0].Default.IsRequired())
	assert.True(t, e.Source.Params.Has("bias"))
	assert.False(t, e.Source.Params.Has("groups"))
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("mappings: {}"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParse_EmptyParams(t *testing.T) {
	yaml := `
mappings:
  nn.ReLU:
    target:
      name: nn.ReLU
      params:
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	assert.Empty(t, f.Mappings["nn.ReLU"].Target.Params)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "not yaml", yaml: "mappings: [\n"},
		{name: "params as list", yaml: "mappings:\n  a:\n    target:\n      name: b\n      params: [x, y]\n"},
		{name: "params as scalar", yaml: "mappings:\n  a:\n    target:\n      name: b\n      params: x\n"},
		{name: "expr on list", yaml: "mappings:\n  a:\n    target:\n      name: b\n      params:\n        x: !expr [1]\n"},
		{name: "map default", yaml: "mappings:\n  a:\n    target:\n      name: b\n      params:\n        x: {y: 1}\n"},
		{name: "expand as map", yaml: "aliases:\n  - prefix: a.\n    expand: {b: c}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	err := os.WriteFile(path, []byte("mappings:\n  x.f:\n    target:\n      name: y.g\n"), 0o600)
	require.NoError(t, err)

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "y.g", f.Mappings["x.f"].Target.Name)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Mappings: map[string]Entry{
			"nn.Linear": {
				Target: TargetDef{APIDef: APIDef{
					Name: "nn.Dense",
					Params: ParamList{
						api.P("in_channels", api.Required),
						api.P("has_bias", true),
						api.P("weight_init", "normal"),
					},
				}},
				Source: APIDef{
					Name:   "nn.Linear",
					Params: ParamList{api.P("in_features", api.Required)},
				},
				Names: map[string]string{"in_channels": "in_features"},
			},
		},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)

	e := back.Mappings["nn.Linear"]
	assert.Equal(t, "nn.Dense", e.Target.Name)
	assert.Equal(t, []string{"in_channels", "has_bias", "weight_init"}, e.Target.Params.Names())
	assert.True(t, e.Target.Params[0].Default.IsRequired())
	assert.Equal(t, "True", e.Target.Params[1].Default.String())
	assert.Equal(t, "'normal'", e.Target.Params[2].Default.String())
	assert.Equal(t, "in_features", e.Names["in_channels"])
}

func TestStringOrArray(t *testing.T) {
	f, err := Parse([]byte("aliases:\n  - prefix: F.\n    expand: [a., b.]\n  - prefix: G.\n    expand: \"\"\n"))
	require.NoError(t, err)

	assert.True(t, f.Aliases[0].Expand.Contains("b."))
	assert.False(t, f.Aliases[0].Expand.Contains("c."))
	assert.Empty(t, f.Aliases[1].Expand)
}

func TestAlias_Apply(t *testing.T) {
	a := Alias{Prefix: "F.", Expand: StringOrArray{"nn.functional.", "torch.nn.functional."}}

	assert.Equal(t, []string{"nn.functional.relu", "torch.nn.functional.relu"}, a.Apply("F.relu"))
	assert.Nil(t, a.Apply("nn.ReLU"))
	assert.Nil(t, Alias{}.Apply("F.relu"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
