// Package api implements the call-rewriting engine: parameter schemas,
// argument parsing, cross-API argument resolution and call emission.
//
// A conversion runs four steps against one Mapping:
//
//  1. ParseArgs binds the argument-list text of a source call to the
//     source Schema (positional, keyword, *args and **kwargs forms).
//  2. The Rule's override function derives forced target values.
//  3. Resolve walks the target Schema and decides, per parameter, whether
//     to copy a user value, bridge a differing default, apply an override
//     or leave the <REQUIRED> placeholder.
//  4. Emit serializes the resolved arguments for the target Kind.
//
// Emitted forms per Kind:
//
//	Ordinary:         Name(args)
//	Primitive:        Name(attrs)(inputs)
//	IndexedAccessor:  Name()(args)[idx]
//
// # Literals
//
// Every value handled by the engine is literal source text. Defaults given
// as Go values are normalized by LiteralOf; the REQUIRED sentinel stays a
// sentinel and is never compared as text.
//
// # Default comparison
//
// Two defaults are equal when their normalized forms match: numbers compare
// by value within the same class (1.0 == 1. but 1 != 1.0), quoted strings
// compare by content regardless of quote style, anything else compares as
// trimmed text.
package api
