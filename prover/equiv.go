package prover

import "github.com/endomorphosis/dcec/dcec"

// DeMorgan applies De Morgan's laws in both directions:
// ¬(A ∧ B) and ¬A ∨ ¬B are interchangeable, and so are ¬(A ∨ B) and ¬A ∧ ¬B.
// Negating an operand that is already a negation strips it: ¬(A ∨ ¬B) gives ¬A ∧ B.
type DeMorgan struct{}

func (DeMorgan) Name() string { return "DeMorgan" }

func (DeMorgan) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := deMorgan(f)
		return ok
	})
}

func (DeMorgan) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if g, ok := deMorgan(f); ok {
			res = append(res, derive(g, i))
		}
	}
	return res, nil
}

func dual(c dcec.Conn) (dcec.Conn, bool) {
	switch c {
	case dcec.Conjunction:
		return dcec.Disjunction, true
	case dcec.Disjunction:
		return dcec.Conjunction, true
	default:
		return c, false
	}
}

func deMorgan(f dcec.Formula) (dcec.Formula, bool) {
	if sub, ok := negated(f); ok {
		c, ok := sub.(*dcec.Connective)
		if !ok {
			return nil, false
		}
		d, ok := dual(c.Conn)
		if !ok {
			return nil, false
		}
		args := make([]dcec.Formula, len(c.Args))
		for i, arg := range c.Args {
			args[i] = negate(arg)
		}
		return &dcec.Connective{Conn: d, Args: args}, true
	}
	c, ok := f.(*dcec.Connective)
	if !ok {
		return nil, false
	}
	d, ok := dual(c.Conn)
	if !ok {
		return nil, false
	}
	args := make([]dcec.Formula, len(c.Args))
	for i, arg := range c.Args {
		if args[i], ok = negated(arg); !ok {
			return nil, false
		}
	}
	return dcec.Not(&dcec.Connective{Conn: d, Args: args}), true
}

// Commutativity swaps the operands of a binary conjunction or disjunction.
type Commutativity struct{}

func (Commutativity) Name() string { return "Commutativity" }

func (Commutativity) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		return isBinary(dcec.Conjunction)(f) || isBinary(dcec.Disjunction)(f)
	})
}

func (Commutativity) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if a, b, ok := binary(f, dcec.Conjunction); ok {
			res = append(res, derive(dcec.And(b, a), i))
		} else if a, b, ok := binary(f, dcec.Disjunction); ok {
			res = append(res, derive(dcec.Or(b, a), i))
		}
	}
	return res, nil
}

// Distribution distributes a conjunction over a disjunction, turning A ∧ (B ∨ C) into
// (A ∧ B) ∨ (A ∧ C), and factors (A ∧ B) ∨ (A ∧ C) back into A ∧ (B ∨ C).
type Distribution struct{}

func (Distribution) Name() string { return "Distribution" }

func (Distribution) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := distribute(f)
		return ok
	})
}

func (Distribution) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if g, ok := distribute(f); ok {
			res = append(res, derive(g, i))
		}
	}
	return res, nil
}

func distribute(f dcec.Formula) (dcec.Formula, bool) {
	if a, bc, ok := binary(f, dcec.Conjunction); ok {
		if b, c, ok := binary(bc, dcec.Disjunction); ok {
			return dcec.Or(dcec.And(a, b), dcec.And(a, c)), true
		}
		return nil, false
	}
	ab, ac, ok := binary(f, dcec.Disjunction)
	if !ok {
		return nil, false
	}
	a1, b, ok1 := binary(ab, dcec.Conjunction)
	a2, c, ok2 := binary(ac, dcec.Conjunction)
	if !ok1 || !ok2 || !dcec.Equal(a1, a2) {
		return nil, false
	}
	return dcec.And(a1, dcec.Or(b, c)), true
}

// ImplicationElimination rewrites P → Q as ¬P ∨ Q, and ¬P ∨ Q as P → Q.
// A negated antecedent loses its negation: ¬P → Q gives P ∨ Q.
type ImplicationElimination struct{}

func (ImplicationElimination) Name() string { return "ImplicationElimination" }

func (ImplicationElimination) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := materialImplication(f)
		return ok
	})
}

func (ImplicationElimination) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if g, ok := materialImplication(f); ok {
			res = append(res, derive(g, i))
		}
	}
	return res, nil
}

// MaterialImplication is ImplicationElimination under another name.
type MaterialImplication struct{ ImplicationElimination }

func (MaterialImplication) Name() string { return "MaterialImplication" }

func materialImplication(f dcec.Formula) (dcec.Formula, bool) {
	if p, q, ok := binary(f, dcec.Implication); ok {
		return dcec.Or(negate(p), q), true
	}
	np, q, ok := binary(f, dcec.Disjunction)
	if !ok {
		return nil, false
	}
	p, ok := negated(np)
	if !ok {
		return nil, false
	}
	return dcec.Implies(p, q), true
}

// Contraposition derives ¬Q → ¬P from P → Q.
// Double negations are not built: P → ¬Q gives Q → ¬P, not ¬¬Q → ¬P.
type Contraposition struct{}

func (Contraposition) Name() string { return "Contraposition" }

func (Contraposition) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isBinary(dcec.Implication))
}

func (Contraposition) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if p, q, ok := binary(f, dcec.Implication); ok {
			res = append(res, derive(dcec.Implies(negate(q), negate(p)), i))
		}
	}
	return res, nil
}

// Transposition is Contraposition under another name.
type Transposition struct{ Contraposition }

func (Transposition) Name() string { return "Transposition" }

// Exportation rewrites (P ∧ Q) → R as P → (Q → R), and conversely.
type Exportation struct{}

func (Exportation) Name() string { return "Exportation" }

func (Exportation) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := export(f)
		return ok
	})
}

func (Exportation) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if g, ok := export(f); ok {
			res = append(res, derive(g, i))
		}
	}
	return res, nil
}

func export(f dcec.Formula) (dcec.Formula, bool) {
	pq, r, ok := binary(f, dcec.Implication)
	if !ok {
		return nil, false
	}
	if p, q, ok := binary(pq, dcec.Conjunction); ok {
		return dcec.Implies(p, dcec.Implies(q, r)), true
	}
	if q, r2, ok := binary(r, dcec.Implication); ok {
		return dcec.Implies(dcec.And(pq, q), r2), true
	}
	return nil, false
}

// Association regroups nested binary conjunctions or disjunctions:
// (A ∧ B) ∧ C and A ∧ (B ∧ C) are interchangeable, and so are their disjunctive counterparts.
type Association struct{}

func (Association) Name() string { return "Association" }

func (Association) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		return len(associate(f)) > 0
	})
}

func (Association) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		for _, g := range associate(f) {
			res = append(res, derive(g, i))
		}
	}
	return res, nil
}

func associate(f dcec.Formula) []dcec.Formula {
	var res []dcec.Formula
	for _, c := range []dcec.Conn{dcec.Conjunction, dcec.Disjunction} {
		l, r, ok := binary(f, c)
		if !ok {
			continue
		}
		if a, b, ok := binary(l, c); ok {
			res = append(res, &dcec.Connective{Conn: c, Args: []dcec.Formula{a, &dcec.Connective{Conn: c, Args: []dcec.Formula{b, r}}}})
		}
		if b, c2, ok := binary(r, c); ok {
			res = append(res, &dcec.Connective{Conn: c, Args: []dcec.Formula{&dcec.Connective{Conn: c, Args: []dcec.Formula{l, b}}, c2}})
		}
	}
	return res
}
