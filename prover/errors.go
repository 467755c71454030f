package prover

import "errors"

var (
	// ErrUnknownRule is returned when a rule name does not denote any rule.
	ErrUnknownRule = errors.New("unknown rule")
	// ErrRulePanic wraps the value a rule panicked with.
	ErrRulePanic = errors.New("rule panicked")
	// ErrSearchPanic wraps the value a search panicked with.
	ErrSearchPanic = errors.New("search panicked")
)
