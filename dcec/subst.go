package dcec

import "sort"

// A VarSet is a set of variables, identified by name and sort.
type VarSet map[string]*Variable

// Has is true iff v belongs to the set.
func (s VarSet) Has(v *Variable) bool {
	_, ok := s[v.key()]
	return ok
}

func (s VarSet) add(v *Variable) { s[v.key()] = v }

// Names returns the sorted names of the variables in the set.
func (s VarSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, v := range s {
		names = append(names, v.Name)
	}
	sort.Strings(names)
	return names
}

// TermVars returns the variables occurring in t.
func TermVars(t Term) VarSet {
	res := make(VarSet)
	termVars(t, res)
	return res
}

func termVars(t Term, res VarSet) {
	switch t := t.(type) {
	case nil:
	case *VarTerm:
		res.add(t.Var)
	case *FuncTerm:
		for _, arg := range t.Args {
			termVars(arg, res)
		}
	default:
		panic("invalid term type")
	}
}

// FreeVars returns the variables occurring free in f.
// The variable bound by a quantifier is never free in it.
func FreeVars(f Formula) VarSet {
	res := make(VarSet)
	freeVars(f, make(VarSet), res)
	return res
}

func freeVars(f Formula, bound, res VarSet) {
	addTerm := func(t Term) {
		for k, v := range TermVars(t) {
			if _, ok := bound[k]; !ok {
				res[k] = v
			}
		}
	}
	switch f := f.(type) {
	case *Atomic:
		for _, arg := range f.Args {
			addTerm(arg)
		}
	case *Deontic:
		addTerm(f.Agent)
		freeVars(f.Body, bound, res)
	case *Cognitive:
		addTerm(f.Agent)
		freeVars(f.Body, bound, res)
	case *Temporal:
		addTerm(f.Time)
		freeVars(f.Body, bound, res)
	case *Connective:
		for _, sub := range f.Args {
			freeVars(sub, bound, res)
		}
	case *Quantified:
		if bound.Has(f.Var) {
			freeVars(f.Body, bound, res)
			return
		}
		bound.add(f.Var)
		freeVars(f.Body, bound, res)
		delete(bound, f.Var.key())
	default:
		panic("invalid formula type")
	}
}

// A Capture records a substitution that moved a free variable of the
// substituted term under a binder of that same variable.
type Capture struct {
	Binder  *Variable   // the captured variable
	Formula *Quantified // the quantified formula where it happened, before substitution
}

// Substitute replaces the free occurrences of v by t in f.
//
// Substituting the variable bound by a quantifier leaves that quantifier unchanged.
// Bound variables are never renamed: when a free variable of t would be captured
// by a quantifier, the substitution is still performed and the capture is
// reported in the returned slice.
func Substitute(f Formula, v *Variable, t Term) (Formula, []Capture) {
	s := substitution{v: v, t: t, tVars: TermVars(t)}
	return s.formula(f), s.captures
}

// SubstituteTerm replaces the occurrences of v by t in term.
func SubstituteTerm(term Term, v *Variable, t Term) Term {
	s := substitution{v: v, t: t}
	return s.term(term)
}

type substitution struct {
	v        *Variable
	t        Term
	tVars    VarSet
	captures []Capture
}

func (s *substitution) term(t Term) Term {
	switch t := t.(type) {
	case nil:
		return nil
	case *VarTerm:
		if t.Var.Equal(s.v) {
			return s.t
		}
		return t
	case *FuncTerm:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = s.term(arg)
		}
		return &FuncTerm{Func: t.Func, Args: args}
	default:
		panic("invalid term type")
	}
}

func (s *substitution) formula(f Formula) Formula {
	switch f := f.(type) {
	case *Atomic:
		args := make([]Term, len(f.Args))
		for i, arg := range f.Args {
			args[i] = s.term(arg)
		}
		return &Atomic{Pred: f.Pred, Args: args}
	case *Deontic:
		return &Deontic{Op: f.Op, Body: s.formula(f.Body), Agent: s.term(f.Agent)}
	case *Cognitive:
		return &Cognitive{Op: f.Op, Agent: s.term(f.Agent), Body: s.formula(f.Body)}
	case *Temporal:
		return &Temporal{Op: f.Op, Body: s.formula(f.Body), Time: s.term(f.Time)}
	case *Connective:
		args := make([]Formula, len(f.Args))
		for i, sub := range f.Args {
			args[i] = s.formula(sub)
		}
		return &Connective{Conn: f.Conn, Args: args}
	case *Quantified:
		if f.Var.Equal(s.v) {
			return f
		}
		if s.tVars.Has(f.Var) && FreeVars(f.Body).Has(s.v) {
			s.captures = append(s.captures, Capture{Binder: f.Var, Formula: f})
		}
		return &Quantified{Quant: f.Quant, Var: f.Var, Body: s.formula(f.Body)}
	default:
		panic("invalid formula type")
	}
}
