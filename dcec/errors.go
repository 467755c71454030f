package dcec

import "errors"

var (
	// ErrArity is returned when a function or predicate is applied to the wrong number of arguments.
	ErrArity = errors.New("arity mismatch")
	// ErrConnectiveArity is returned when a connective gets the wrong number of subformulas.
	ErrConnectiveArity = errors.New("invalid number of subformulas for connective")
	// ErrInvalidOperator is returned for an unknown operator or quantifier kind.
	ErrInvalidOperator = errors.New("invalid operator")
	// ErrUnknownSymbol is returned when a lookup in a namespace fails.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrDuplicateSymbol is returned when a symbol is declared twice with a different signature.
	ErrDuplicateSymbol = errors.New("duplicate symbol")
)
