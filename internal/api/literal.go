package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RequiredPlaceholder is emitted for mandatory target parameters that no
// source value or override could fill.
const RequiredPlaceholder = "<REQUIRED>"

// requiredText is how the REQUIRED sentinel prints in diagnostics and YAML.
const requiredText = "REQUIRED"

type requiredMarker struct{}

// Required marks a parameter without a default when passed to P.
var Required = requiredMarker{}

// Expr is literal source text used verbatim as a default, e.g. Expr("(1, 1)").
type Expr string

// Literal is the normalized default of a parameter: either the REQUIRED
// sentinel or the literal source text of a value.
type Literal struct {
	text     string
	required bool
}

// RequiredLiteral is the REQUIRED sentinel literal.
var RequiredLiteral = Literal{required: true}

// Text returns a literal holding raw source text.
func Text(s string) Literal {
	return Literal{text: s}
}

// LiteralOf normalizes a Go value into a Literal.
//   - Required -> REQUIRED sentinel
//   - string -> single-quoted text
//   - bool -> True / False, nil -> None
//   - integers -> decimal, floats -> shortest round-trip repr ("1.0", "1e-05")
//   - slices -> "[a, b]" rendered element by element
//   - Expr, Literal -> unchanged
//   - anything else -> fmt.Sprint
func LiteralOf(v any) Literal {
	switch val := v.(type) {
	case requiredMarker:
		return RequiredLiteral
	case Literal:
		return val
	default:
		return Literal{text: render(v)}
	}
}

func render(v any) string {
	switch val := v.(type) {
	case nil:
		return "None"
	case Expr:
		return string(val)
	case Literal:
		return val.String()
	case string:
		return quote(val)
	case bool:
		if val {
			return "True"
		}

		return "False"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case uint:
		return strconv.FormatUint(uint64(val), 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return formatFloat(float64(val))
	case float64:
		return formatFloat(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, render(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case []string:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, quote(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case []int:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, strconv.Itoa(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)

	return "'" + s + "'"
}

// formatFloat renders a float the way the target language prints it:
// fixed notation for exponents in [-4, 16), scientific otherwise, and
// always with a fractional part in fixed notation.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)

	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}

	return fixed
}

// IsRequired reports whether the literal is the REQUIRED sentinel.
func (l Literal) IsRequired() bool {
	return l.required
}

// String returns the literal text, or "REQUIRED" for the sentinel.
func (l Literal) String() string {
	if l.required {
		return requiredText
	}

	return l.text
}

// Emitted returns the text written into a converted call. The REQUIRED
// sentinel becomes the <REQUIRED> placeholder.
func (l Literal) Emitted() string {
	if l.required {
		return RequiredPlaceholder
	}

	return l.text
}

// Equal compares two defaults after normalization (see package doc).
func (l Literal) Equal(o Literal) bool {
	if l.required || o.required {
		return l.required == o.required
	}

	a, b := strings.TrimSpace(l.text), strings.TrimSpace(o.text)
	if a == b {
		return true
	}

	if na, ok := parseNumber(a); ok {
		nb, ok := parseNumber(b)
		return ok && na == nb
	}

	if sa, ok := unquote(a); ok {
		sb, ok := unquote(b)
		return ok && sa == sb
	}

	return false
}

type number struct {
	isFloat bool
	value   float64
}

func parseNumber(s string) (number, bool) {
	s = strings.ReplaceAll(s, "_", "")
	if s == "" {
		return number{}, false
	}

	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return number{value: float64(i)}, true
	}

	switch strings.TrimLeft(s, "+-") {
	case "inf", "nan":
		return number{}, false
	}

	if !strings.ContainsAny(s, ".eE") {
		return number{}, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return number{}, false
	}

	return number{isFloat: true, value: f}, true
}

func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}

	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return "", false
	}

	return s[1 : len(s)-1], true
}
