// Package dcec defines the data model of the Deontic Cognitive Event Calculus:
// a sorted first-order base (sorts, variables, functions and predicates)
// extended with deontic, cognitive and temporal operators.
//
// Symbols live in a Namespace, which owns them for its whole lifetime.
// Terms and formulas are immutable values built bottom-up from those symbols.
// Both are closed sets of types: a Term is either a *VarTerm or a *FuncTerm,
// and a Formula is one of *Atomic, *Deontic, *Cognitive, *Temporal,
// *Connective or *Quantified. Code switching over them can therefore be exhaustive.
//
// For example, the formula
//
//	∀x(B(jack, Happy(x)) → O(Help(jack, x)))
//
// can be built with the following code:
//
//	ns := NewNamespace(nil)
//	x, _ := ns.AddVariable("x", "Agent")
//	jack, _ := ns.AddFunction("jack", "Agent")
//	happy, _ := ns.AddPredicate("Happy", "Agent")
//	help, _ := ns.AddPredicate("Help", "Agent", "Agent")
//	j, _ := NewFuncTerm(jack)
//	h, _ := NewAtomic(happy, NewVarTerm(x))
//	b, _ := NewCognitive(Believes, j, h)
//	hp, _ := NewAtomic(help, j, NewVarTerm(x))
//	o, _ := NewDeontic(Obligatory, hp, nil)
//	f, _ := NewQuantified(ForAll, x, Implies(b, o))
//
// The String method of every formula gives its canonical rendering, which is
// the textual contract of the package. Structural comparisons should rely on
// Key and Equal instead.
package dcec
