package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"op-converter/internal/api"
	"op-converter/internal/common"
	"op-converter/internal/mapping"
)

// ErrIncomplete marks strict-mode outputs that still need manual edits.
var ErrIncomplete = errors.New("conversion left required parameters unresolved")

// Registry is the lookup surface a Converter needs.
type Registry interface {
	Lookup(name string) (*api.Mapping, error)
	Hint(name string) string
}

// Converter rewrites calls using a mapping registry.
type Converter struct {
	registry Registry
	log      zerolog.Logger
	config   Config
}

// New creates a Converter.
func New(registry Registry, log zerolog.Logger, config Config) *Converter {
	return &Converter{
		registry: registry,
		log:      log,
		config:   config,
	}
}

// ConvertCall converts one call given its callee name and argument text.
// A callee unknown to the registry yields an unconverted outcome whose
// Err wraps mapping.ErrMappingNotFound.
func (c *Converter) ConvertCall(callee, argsText string) Outcome {
	key, m, err := c.lookup(callee)
	if err != nil {
		return Outcome{Name: key, Callee: callee, Hint: c.registry.Hint(key), Err: err}
	}

	return c.apply(key, m, callee, argsText)
}

// lookup resolves the registry key of a callee: the full dotted name first,
// then ".method" for attribute calls when MethodFallback is on.
func (c *Converter) lookup(callee string) (string, *api.Mapping, error) {
	m, err := c.registry.Lookup(callee)
	if err == nil || !errors.Is(err, mapping.ErrMappingNotFound) {
		return callee, m, err
	}

	if !c.config.MethodFallback || !strings.Contains(callee, ".") {
		return callee, nil, err
	}

	method := "." + common.LastSegment(callee)

	m, methodErr := c.registry.Lookup(method)
	if methodErr != nil && errors.Is(methodErr, mapping.ErrMappingNotFound) {
		return callee, nil, err
	}

	return method, m, methodErr
}

// apply runs a found mapping on the call.
func (c *Converter) apply(key string, m *api.Mapping, callee, argsText string) Outcome {
	out := Outcome{
		Name:       key,
		Callee:     callee,
		TargetName: m.Target.Name(),
	}

	text, err := m.Convert(c.log, callee, argsText)
	if err != nil {
		out.Err = err
		return out
	}

	out.Output = text

	if c.config.Strict && strings.Contains(text, api.RequiredPlaceholder) {
		out.Err = fmt.Errorf("%w: %s", ErrIncomplete, text)
		return out
	}

	out.Converted = true

	return out
}
