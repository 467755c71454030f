package parse

import "errors"

var (
	// ErrUnbalancedParentheses is returned when parentheses do not match.
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	// ErrDanglingOperator is returned when an infix operator lacks an operand.
	ErrDanglingOperator = errors.New("dangling operator")
	// ErrSyntax is returned for any other malformed expression.
	ErrSyntax = errors.New("syntax error")
)
