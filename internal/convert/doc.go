// Package convert applies the mapping registry to source code.
//
// ConvertCall rewrites a single call given its callee name and argument
// text. ConvertScript parses a whole Python script with tree-sitter and
// rewrites every call whose callee is mapped, innermost calls first, so
// arguments that are themselves mapped calls are converted as well.
//
// Each attempted call yields an Outcome carrying its location and whether
// a mapping was applied; the report package turns outcomes into the
// conversion report.
package convert
