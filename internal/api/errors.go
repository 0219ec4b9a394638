package api

import "errors"

var (
	// ErrFormat is returned when argument text is not enclosed in parentheses.
	ErrFormat = errors.New("invalid argument list format")
	// ErrParse is returned when argument text is not a call argument list.
	ErrParse = errors.New("cannot parse call arguments")
	// ErrArity is returned when a call has more positional arguments than the
	// source schema declares.
	ErrArity = errors.New("too many positional arguments")
	// ErrSchema is returned for schemas breaking the naming invariants.
	ErrSchema = errors.New("invalid parameter schema")
)
