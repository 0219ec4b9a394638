package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"op-converter/internal/api"
	"op-converter/internal/diagnostic"
)

func validFile() *File {
	return &File{
		Version: CurrentVersion,
		APIs:    []string{"F.relu", "F.dropout"},
		Hints:   map[string]string{"F.dropout": "use nn.Dropout"},
		Mappings: map[string]Entry{
			"F.relu": {
				Target: TargetDef{APIDef: APIDef{
					Name:   "P.ReLU",
					Params: ParamList{api.P("input_x", api.Required)},
				}},
				Source: APIDef{
					Name:   "F.relu",
					Params: ParamList{api.P("input", api.Required), api.P("inplace", false)},
				},
				Names: map[string]string{"input_x": "input"},
			},
		},
	}
}

func codes(t *testing.T, f *File) (errs, warns []string) {
	t.Helper()

	for _, d := range Validate(f).All() {
		switch d.Severity {
		case diagnostic.SeverityError:
			errs = append(errs, d.Code)
		case diagnostic.SeverityWarning:
			warns = append(warns, d.Code)
		}
	}

	return errs, warns
}

func TestValidate_Valid(t *testing.T) {
	diags := Validate(validFile())
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.All())
}

func TestValidate_Nil(t *testing.T) {
	errs, _ := codes(t, nil)
	assert.Equal(t, []string{"mapping_is_nil"}, errs)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *File)
		code   string
	}{
		{
			name:   "version",
			modify: func(f *File) { f.Version = "2" },
			code:   "unsupported_version",
		},
		{
			name:   "alias prefix",
			modify: func(f *File) { f.Aliases = []Alias{{Expand: StringOrArray{"x."}}} },
			code:   "empty_alias_prefix",
		},
		{
			name:   "target name",
			modify: editEntry(func(e *Entry) { e.Target.Name = "" }),
			code:   "missing_target_name",
		},
		{
			name: "duplicate source param",
			modify: editEntry(func(e *Entry) {
				e.Source.Params = append(e.Source.Params, api.P("input", 1))
			}),
			code: "invalid_source_schema",
		},
		{
			name: "catch-all with siblings",
			modify: editEntry(func(e *Entry) {
				e.Target.Params = append(e.Target.Params, api.P("*args", api.Required))
			}),
			code: "invalid_target_schema",
		},
		{
			name:   "kind",
			modify: editEntry(func(e *Entry) { e.Target.Kind = "curried" }),
			code:   "invalid_kind",
		},
		{
			name:   "override",
			modify: editEntry(func(e *Entry) { e.Override = "no_such_rule" }),
			code:   "unknown_override",
		},
		{
			name:   "attr",
			modify: editEntry(func(e *Entry) { e.Target.Attrs = []string{"axis"} }),
			code:   "unknown_attr",
		},
		{
			name:   "index",
			modify: editEntry(func(e *Entry) { e.Target.Kind = KindIndexed }),
			code:   "unknown_index_param",
		},
		{
			name:   "target param",
			modify: editEntry(func(e *Entry) { e.Names["axis"] = "input" }),
			code:   "unknown_target_param",
		},
		{
			name:   "source param",
			modify: editEntry(func(e *Entry) { e.Names["input_x"] = "x" }),
			code:   "unknown_source_param",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.modify(f)

			errs, _ := codes(t, f)
			assert.Contains(t, errs, tt.code)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *File)
		code   string
	}{
		{
			name:   "empty alias",
			modify: func(f *File) { f.Aliases = []Alias{{Prefix: "F."}} },
			code:   "empty_alias",
		},
		{
			name:   "hint without api",
			modify: func(f *File) { f.Hints["F.gelu"] = "no gelu" },
			code:   "hint_without_api",
		},
		{
			name: "attrs on ordinary",
			modify: editEntry(func(e *Entry) {
				e.Target.Kind = KindOrdinary
				e.Target.Attrs = []string{"input_x"}
			}),
			code: "attrs_ignored",
		},
		{
			name:   "unresolvable required",
			modify: editEntry(func(e *Entry) { delete(e.Names, "input_x") }),
			code:   "unresolvable_required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFile()
			tt.modify(f)

			errs, warns := codes(t, f)
			assert.Empty(t, errs)
			assert.Contains(t, warns, tt.code)
		})
	}
}

func TestValidate_ReceiverName(t *testing.T) {
	f := validFile()
	editEntry(func(e *Entry) { e.Names["input_x"] = api.ReceiverKey })(f)

	errs, _ := codes(t, f)
	assert.Empty(t, errs)
}

func TestValidate_BuiltinFiles(t *testing.T) {
	files, err := BuiltinFiles()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, f := range files {
		diags := Validate(f)
		assert.True(t, diags.IsValid(), "%v", diags.All())
	}
}

// editEntry returns a modifier applying fn to the F.relu entry.
func editEntry(fn func(e *Entry)) func(f *File) {
	return func(f *File) {
		e := f.Mappings["F.relu"]
		fn(&e)
		f.Mappings["F.relu"] = e
	}
}
