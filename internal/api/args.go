package api

import (
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Keys under which variadic captures are stored.
const (
	StarKey       = "*"
	DoubleStarKey = "**"
)

// ReceiverKey is a reserved source parameter name resolving to the object a
// method is called on ("x" for "x.size(1)").
const ReceiverKey = "@receiver"

// Args is an insertion-ordered mapping from parameter name to literal text.
// Only the engine writes to it; callers get read access.
type Args struct {
	m *orderedmap.OrderedMap[string, string]
}

func newArgs() *Args {
	return &Args{m: orderedmap.New[string, string]()}
}

// set stores a value; overwriting an existing key keeps its position.
func (a *Args) set(key, value string) {
	a.m.Set(key, value)
}

// Get returns the value stored for key.
func (a *Args) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}

	return a.m.Get(key)
}

// Has reports whether key is present.
func (a *Args) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of entries.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}

	return a.m.Len()
}

// All iterates entries in insertion order.
func (a *Args) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}

		for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (a *Args) Keys() []string {
	keys := make([]string, 0, a.Len())
	for k := range a.All() {
		keys = append(keys, k)
	}

	return keys
}

// Map returns an unordered copy of the entries.
func (a *Args) Map() map[string]string {
	out := make(map[string]string, a.Len())
	for k, v := range a.All() {
		out[k] = v
	}

	return out
}

// String renders the entries as "k=v, k=v" in order.
func (a *Args) String() string {
	parts := make([]string, 0, a.Len())
	for k, v := range a.All() {
		parts = append(parts, k+"="+v)
	}

	return strings.Join(parts, ", ")
}

// Call is a parsed source call: its name and bound arguments.
type Call struct {
	Name string
	Args *Args
}

// Value returns the literal text supplied for a parameter.
func (c *Call) Value(param string) (string, bool) {
	if param == ReceiverKey {
		r := c.Receiver()
		return r, r != ""
	}

	return c.Args.Get(param)
}

// Receiver returns the callee text before the last dot, or "" for a bare name.
func (c *Call) Receiver() string {
	if i := strings.LastIndexByte(c.Name, '.'); i > 0 {
		return c.Name[:i]
	}

	return ""
}

// Supplied reports whether the caller supplied the parameter.
func (c *Call) Supplied(param string) bool {
	_, ok := c.Value(param)
	return ok
}
