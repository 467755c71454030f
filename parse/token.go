package parse

import "strings"

// An Arg is an argument of a Token: either an Atom or a nested *Token.
type Arg interface {
	// SExpr renders the argument as an S-expression, e.g "(f a b)".
	SExpr() string
	// FExpr renders the argument as an F-expression, e.g "f(a,b)".
	FExpr() string
	isArg()
}

// An Atom is a bare symbol.
type Atom string

func (a Atom) SExpr() string { return string(a) }
func (a Atom) FExpr() string { return string(a) }
func (Atom) isArg()          {}

// A Token is an untyped prefix application: a function name and its arguments.
// Tokens are produced by the parser and consumed by a Builder; they carry no
// semantic information beyond their shape.
type Token struct {
	Func string
	Args []Arg
}

// NewToken returns the token fn(args...).
func NewToken(fn string, args ...Arg) *Token {
	return &Token{Func: fn, Args: args}
}

func (*Token) isArg() {}

// Depth is 1 for a token whose arguments are all atoms, and 1 + the depth of
// its deepest nested token otherwise.
func (t *Token) Depth() int {
	max := 0
	for _, arg := range t.Args {
		if sub, ok := arg.(*Token); ok {
			if d := sub.Depth(); d > max {
				max = d
			}
		}
	}
	return 1 + max
}

// Width is the number of atoms among the arguments of t and of its nested tokens.
// The function names themselves are not counted.
func (t *Token) Width() int {
	res := 0
	for _, arg := range t.Args {
		switch arg := arg.(type) {
		case Atom:
			res++
		case *Token:
			res += arg.Width()
		}
	}
	return res
}

func (t *Token) SExpr() string {
	var sb strings.Builder
	t.writeS(&sb)
	return sb.String()
}

func (t *Token) writeS(sb *strings.Builder) {
	sb.WriteByte('(')
	sb.WriteString(t.Func)
	for _, arg := range t.Args {
		sb.WriteByte(' ')
		if sub, ok := arg.(*Token); ok {
			sub.writeS(sb)
		} else {
			sb.WriteString(arg.SExpr())
		}
	}
	sb.WriteByte(')')
}

func (t *Token) FExpr() string {
	var sb strings.Builder
	t.writeF(&sb)
	return sb.String()
}

func (t *Token) writeF(sb *strings.Builder) {
	sb.WriteString(t.Func)
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 {
			sb.WriteByte(',')
		}
		if sub, ok := arg.(*Token); ok {
			sub.writeF(sb)
		} else {
			sb.WriteString(arg.FExpr())
		}
	}
	sb.WriteByte(')')
}

// String returns the S-expression of t.
func (t *Token) String() string { return t.SExpr() }
