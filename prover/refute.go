package prover

import (
	"fmt"

	"github.com/crillab/gophersat/bf"

	"github.com/endomorphosis/dcec/dcec"
)

// propositions translates formulas into propositional formulas.
// Anything that is not a connective (atomic, modal and quantified formulas)
// becomes an opaque propositional variable; two structurally equal
// formulas get the same variable.
type propositions map[string]string

func (ps propositions) translate(f dcec.Formula) bf.Formula {
	c, ok := f.(*dcec.Connective)
	if !ok {
		k := dcec.Key(f)
		name, ok := ps[k]
		if !ok {
			name = fmt.Sprintf("p%d", len(ps)+1)
			ps[k] = name
		}
		return bf.Var(name)
	}
	subs := make([]bf.Formula, len(c.Args))
	for i, arg := range c.Args {
		subs[i] = ps.translate(arg)
	}
	switch c.Conn {
	case dcec.Conjunction:
		return bf.And(subs...)
	case dcec.Disjunction:
		return bf.Or(subs...)
	case dcec.Negation:
		return bf.Not(subs[0])
	case dcec.Implication:
		return bf.Implies(subs[0], subs[1])
	case dcec.Biconditional:
		return bf.Eq(subs[0], subs[1])
	default:
		panic("invalid connective")
	}
}

func (ps propositions) conjunction(fs []dcec.Formula) bf.Formula {
	subs := make([]bf.Formula, len(fs))
	for i, f := range fs {
		subs[i] = ps.translate(f)
	}
	return bf.And(subs...)
}

func satisfiable(f bf.Formula) bool {
	return bf.Solve(f) != nil
}

// refute checks whether the axioms propositionally contradict the goal.
// It returns true if the axioms are consistent but become inconsistent when the goal is added.
// If the axioms are inconsistent, it also returns the indices of a minimal inconsistent subset of them.
func refute(goal dcec.Formula, axioms []dcec.Formula) (disproved bool, core []int) {
	ps := make(propositions)
	if len(axioms) > 0 && !satisfiable(ps.conjunction(axioms)) {
		return false, inconsistentCore(ps, axioms)
	}
	fs := append(append([]dcec.Formula(nil), axioms...), goal)
	return !satisfiable(ps.conjunction(fs)), nil
}

// inconsistentCore returns the indices of a minimal inconsistent subset of fs, which must be inconsistent.
// Each formula is tentatively removed; it is kept only if the rest becomes consistent without it.
func inconsistentCore(ps propositions, fs []dcec.Formula) []int {
	kept := make([]bool, len(fs))
	for i := range kept {
		kept[i] = true
	}
	subset := func() []dcec.Formula {
		var res []dcec.Formula
		for i, f := range fs {
			if kept[i] {
				res = append(res, f)
			}
		}
		return res
	}
	for i := range fs {
		kept[i] = false
		if rest := subset(); len(rest) == 0 || satisfiable(ps.conjunction(rest)) {
			kept[i] = true
		}
	}
	var core []int
	for i, k := range kept {
		if k {
			core = append(core, i)
		}
	}
	return core
}

// A Valuation assigns a truth value to each opaque subformula of a set of formulas.
type Valuation []Assignment

// An Assignment is the truth value given to a formula.
type Assignment struct {
	Formula dcec.Formula
	Value   bool
}

// Check tells whether fs is propositionally consistent.
// If it is, it returns a valuation satisfying all formulas, in the order
// opaque subformulas first appear in fs. Otherwise, it returns the indices
// of a minimal inconsistent subset of fs.
func Check(fs []dcec.Formula) (Valuation, []int) {
	if len(fs) == 0 {
		return Valuation{}, nil
	}
	ps := make(propositions)
	model := bf.Solve(ps.conjunction(fs))
	if model == nil {
		return nil, inconsistentCore(ps, fs)
	}
	var (
		val  Valuation
		seen = make(map[string]bool)
	)
	var walk func(f dcec.Formula)
	walk = func(f dcec.Formula) {
		if c, ok := f.(*dcec.Connective); ok {
			for _, arg := range c.Args {
				walk(arg)
			}
			return
		}
		k := dcec.Key(f)
		if seen[k] {
			return
		}
		seen[k] = true
		val = append(val, Assignment{Formula: f, Value: model[ps[k]]})
	}
	for _, f := range fs {
		walk(f)
	}
	return val, nil
}
