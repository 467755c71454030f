package dcec

import (
	"fmt"
	"strings"
)

// A Term is either a *VarTerm or a *FuncTerm.
type Term interface {
	String() string
	// Sort is the sort of the value denoted by the term.
	Sort() *Sort
	isTerm()
}

// A VarTerm is a variable used as a term.
type VarTerm struct {
	Var *Variable
}

// NewVarTerm wraps v as a term.
func NewVarTerm(v *Variable) *VarTerm {
	return &VarTerm{Var: v}
}

func (t *VarTerm) String() string { return t.Var.Name }
func (t *VarTerm) Sort() *Sort    { return t.Var.Sort }
func (*VarTerm) isTerm()          {}

// A FuncTerm is the application of a function to argument terms.
type FuncTerm struct {
	Func *Function
	Args []Term
}

// NewFuncTerm applies fn to args. It fails with ErrArity if the number of args
// does not match the arity of fn.
func NewFuncTerm(fn *Function, args ...Term) (*FuncTerm, error) {
	if len(args) != fn.Arity() {
		return nil, fmt.Errorf("%w: function %s expects %d argument(s), got %d", ErrArity, fn.Name, fn.Arity(), len(args))
	}
	return &FuncTerm{Func: fn, Args: args}, nil
}

func (t *FuncTerm) String() string {
	if len(t.Args) == 0 {
		return t.Func.Name
	}
	return t.Func.Name + "(" + joinTerms(t.Args) + ")"
}

func (t *FuncTerm) Sort() *Sort { return t.Func.Return }
func (*FuncTerm) isTerm()       {}

func joinTerms(terms []Term) string {
	strs := make([]string, len(terms))
	for i, t := range terms {
		strs[i] = t.String()
	}
	return strings.Join(strs, ", ")
}
