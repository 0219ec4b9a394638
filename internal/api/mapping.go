package api

import (
	"github.com/rs/zerolog"
)

// Mapping binds one source API to one target API. It is immutable once
// built and safe for concurrent use.
type Mapping struct {
	Source *Schema
	Target *Target
	Rule   Rule
}

// Trace records the intermediate values of one conversion.
type Trace struct {
	Call      *Call
	Overrides map[string]string
	Resolved  *Args
	Output    string
}

// Convert rewrites one source call into target call text.
func (m *Mapping) Convert(log zerolog.Logger, callName, argsText string) (string, error) {
	tr, err := m.Trace(log, callName, argsText)
	if err != nil {
		return "", err
	}

	return tr.Output, nil
}

// Trace runs the conversion pipeline and keeps every intermediate result.
func (m *Mapping) Trace(log zerolog.Logger, callName, argsText string) (*Trace, error) {
	call, err := ParseArgs(log, m.Source, callName, argsText)
	if err != nil {
		return nil, err
	}

	overrides := m.Rule.Overrides(m.Source, call)
	resolved := Resolve(m.Target.Schema, m.Source, call, m.Rule, overrides)

	out := Emit(m.Target, call, resolved)

	log.Debug().
		Str("source", m.Source.Name()).
		Str("target", m.Target.Name()).
		Str("args", resolved.String()).
		Msg("call converted")

	return &Trace{
		Call:      call,
		Overrides: overrides,
		Resolved:  resolved,
		Output:    out,
	}, nil
}
