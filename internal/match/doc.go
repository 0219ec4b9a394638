// Package match ranks known API names by similarity to an unknown one, so
// the CLI can answer "did you mean ...?" for calls without a mapping.
//
// Key functions:
//   - NormalizeName: strips framework prefixes and separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by normalized similarity
package match
