// Package diagnostic provides structured errors, warnings and infos
// collected while loading and validating API mapping files.
//
// Key capabilities:
//   - Unknown override rule references
//   - Name maps pointing at undeclared parameters
//   - Schema invariant violations (duplicates, misplaced catch-alls)
//   - Attribute sets naming parameters the target does not declare
package diagnostic
