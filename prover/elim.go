package prover

import "github.com/endomorphosis/dcec/dcec"

// ModusPonens derives Q from P and P → Q.
type ModusPonens struct{}

func (ModusPonens) Name() string { return "ModusPonens" }

func (ModusPonens) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isBinary(dcec.Implication))
}

func (ModusPonens) Apply(fs []dcec.Formula) ([]Derivation, error) {
	idx := indexFormulas(fs)
	var res []Derivation
	for i, f := range fs {
		p, q, ok := binary(f, dcec.Implication)
		if !ok {
			continue
		}
		if j, ok := idx.first(p); ok {
			res = append(res, derive(q, j, i))
		}
	}
	return res, nil
}

// Simplification derives each conjunct of a conjunction.
type Simplification struct{}

func (Simplification) Name() string { return "Simplification" }

func (Simplification) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isConn(dcec.Conjunction))
}

func (Simplification) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		c, ok := conn(f, dcec.Conjunction)
		if !ok {
			continue
		}
		for _, arg := range c.Args {
			res = append(res, derive(arg, i))
		}
	}
	return res, nil
}

// ConjunctionElimination is another name for Simplification.
type ConjunctionElimination struct{ Simplification }

func (ConjunctionElimination) Name() string { return "ConjunctionElimination" }

// DisjunctiveSyllogism derives B from A ∨ B and ¬A.
// More generally, it removes from a disjunction any disjunct whose complement is known.
type DisjunctiveSyllogism struct{}

func (DisjunctiveSyllogism) Name() string { return "DisjunctiveSyllogism" }

func (DisjunctiveSyllogism) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isConn(dcec.Disjunction))
}

func (DisjunctiveSyllogism) Apply(fs []dcec.Formula) ([]Derivation, error) {
	idx := indexFormulas(fs)
	var res []Derivation
	for i, f := range fs {
		d, ok := conn(f, dcec.Disjunction)
		if !ok {
			continue
		}
		for k, arg := range d.Args {
			if j, ok := idx.first(negate(arg)); ok {
				res = append(res, derive(disjunction(without(d.Args, k)), i, j))
			}
		}
	}
	return res, nil
}

// CutElimination derives P → R from P → Q and Q → R.
type CutElimination struct{}

func (CutElimination) Name() string { return "CutElimination" }

func (CutElimination) CanApply(fs []dcec.Formula) bool {
	n := 0
	for _, f := range fs {
		if _, _, ok := binary(f, dcec.Implication); ok {
			if n++; n == 2 {
				return true
			}
		}
	}
	return false
}

func (CutElimination) Apply(fs []dcec.Formula) ([]Derivation, error) {
	return chainImplications(fs), nil
}

// HypotheticalSyllogism is CutElimination under its traditional name.
type HypotheticalSyllogism struct{ CutElimination }

func (HypotheticalSyllogism) Name() string { return "HypotheticalSyllogism" }

func chainImplications(fs []dcec.Formula) []Derivation {
	byAntecedent, _ := indexImplications(fs)
	var res []Derivation
	for i, f := range fs {
		p, q, ok := binary(f, dcec.Implication)
		if !ok {
			continue
		}
		for _, j := range byAntecedent.all(q) {
			_, r, _ := binary(fs[j], dcec.Implication)
			if dcec.Equal(p, r) {
				continue
			}
			res = append(res, derive(dcec.Implies(p, r), i, j))
		}
	}
	return res
}

// DoubleNegation derives P from ¬¬P.
type DoubleNegation struct{}

func (DoubleNegation) Name() string { return "DoubleNegation" }

func (DoubleNegation) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		sub, ok := negated(f)
		if !ok {
			return false
		}
		_, ok = negated(sub)
		return ok
	})
}

func (DoubleNegation) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if sub, ok := negated(f); ok {
			if subsub, ok := negated(sub); ok {
				res = append(res, derive(subsub, i))
			}
		}
	}
	return res, nil
}

// ClaviusLaw derives P from ¬P → P.
type ClaviusLaw struct{}

func (ClaviusLaw) Name() string { return "ClaviusLaw" }

func (ClaviusLaw) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := clavius(f)
		return ok
	})
}

func (ClaviusLaw) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if p, ok := clavius(f); ok {
			res = append(res, derive(p, i))
		}
	}
	return res, nil
}

func clavius(f dcec.Formula) (dcec.Formula, bool) {
	np, p, ok := binary(f, dcec.Implication)
	if !ok {
		return nil, false
	}
	if sub, ok := negated(np); ok && dcec.Equal(sub, p) {
		return p, true
	}
	return nil, false
}

// Idempotence derives P from P ∧ P or P ∨ P.
type Idempotence struct{}

func (Idempotence) Name() string { return "Idempotence" }

func (Idempotence) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		_, ok := idempotent(f)
		return ok
	})
}

func (Idempotence) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if p, ok := idempotent(f); ok {
			res = append(res, derive(p, i))
		}
	}
	return res, nil
}

func idempotent(f dcec.Formula) (dcec.Formula, bool) {
	c, ok := f.(*dcec.Connective)
	if !ok || (c.Conn != dcec.Conjunction && c.Conn != dcec.Disjunction) {
		return nil, false
	}
	for _, arg := range c.Args[1:] {
		if !dcec.Equal(arg, c.Args[0]) {
			return nil, false
		}
	}
	return c.Args[0], true
}

// BiconditionalElimination derives P → Q and Q → P from P ↔ Q.
type BiconditionalElimination struct{}

func (BiconditionalElimination) Name() string { return "BiconditionalElimination" }

func (BiconditionalElimination) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isBinary(dcec.Biconditional))
}

func (BiconditionalElimination) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if p, q, ok := binary(f, dcec.Biconditional); ok {
			res = append(res, derive(dcec.Implies(p, q), i), derive(dcec.Implies(q, p), i))
		}
	}
	return res, nil
}

// Absorption handles three shapes:
//
//	P ∧ (P ∨ Q) gives P
//	P ∨ (P ∧ Q) gives P
//	P → Q gives P → (P ∧ Q)
type Absorption struct{}

func (Absorption) Name() string { return "Absorption" }

func (Absorption) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		if _, _, ok := binary(f, dcec.Implication); ok {
			return true
		}
		_, ok := absorbed(f)
		return ok
	})
}

func (Absorption) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if p, ok := absorbed(f); ok {
			res = append(res, derive(p, i))
			continue
		}
		p, q, ok := binary(f, dcec.Implication)
		if !ok {
			continue
		}
		if c, ok := conn(q, dcec.Conjunction); ok && dcec.Equal(c.Args[0], p) {
			continue
		}
		res = append(res, derive(dcec.Implies(p, dcec.And(p, q)), i))
	}
	return res, nil
}

// absorbed returns P if f is P ∧ (P ∨ Q) or P ∨ (P ∧ Q), in any order.
func absorbed(f dcec.Formula) (dcec.Formula, bool) {
	for _, shape := range [][2]dcec.Conn{
		{dcec.Conjunction, dcec.Disjunction},
		{dcec.Disjunction, dcec.Conjunction},
	} {
		a, b, ok := binary(f, shape[0])
		if !ok {
			continue
		}
		if contains(b, shape[1], a) {
			return a, true
		}
		if contains(a, shape[1], b) {
			return b, true
		}
	}
	return nil, false
}

// contains is true iff f is a connective of kind c with p among its operands.
func contains(f dcec.Formula, c dcec.Conn, p dcec.Formula) bool {
	cf, ok := conn(f, c)
	if !ok {
		return false
	}
	for _, arg := range cf.Args {
		if dcec.Equal(arg, p) {
			return true
		}
	}
	return false
}

// Resolution resolves two clauses on a pair of complementary literals.
// A clause is either a disjunction, whose disjuncts are its literals, or any other formula,
// which is then its own single literal. At least one of both clauses must be a disjunction.
// Resolving P and ¬P, which would yield the empty clause, is left to other rules.
type Resolution struct{}

func (Resolution) Name() string { return "Resolution" }

func (Resolution) CanApply(fs []dcec.Formula) bool {
	return len(fs) > 1 && anyFormula(fs, isConn(dcec.Disjunction))
}

func (Resolution) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		d, ok := conn(f, dcec.Disjunction)
		if !ok {
			continue
		}
		for j, g := range fs {
			if i == j {
				continue
			}
			if _, ok := conn(g, dcec.Disjunction); ok && j < i {
				continue // already resolved as (j, i)
			}
			if r, ok := resolve(d.Args, literals(g)); ok {
				res = append(res, derive(r, i, j))
			}
		}
	}
	return res, nil
}

func literals(f dcec.Formula) []dcec.Formula {
	if d, ok := conn(f, dcec.Disjunction); ok {
		return d.Args
	}
	return []dcec.Formula{f}
}

// resolve returns the resolvent of both clauses on their first complementary pair.
func resolve(c1, c2 []dcec.Formula) (dcec.Formula, bool) {
	for i, l1 := range c1 {
		for j, l2 := range c2 {
			if !complementary(l1, l2) {
				continue
			}
			var lits []dcec.Formula
			seen := make(map[string]bool)
			for _, l := range append(without(c1, i), without(c2, j)...) {
				if k := dcec.Key(l); !seen[k] {
					seen[k] = true
					lits = append(lits, l)
				}
			}
			if len(lits) == 0 {
				return nil, false
			}
			return disjunction(lits), true
		}
	}
	return nil, false
}

// without returns a copy of fs without its k-th element.
func without(fs []dcec.Formula, k int) []dcec.Formula {
	res := make([]dcec.Formula, 0, len(fs)-1)
	res = append(res, fs[:k]...)
	return append(res, fs[k+1:]...)
}

// disjunction returns the disjunction of fs, or its only element.
func disjunction(fs []dcec.Formula) dcec.Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	return dcec.Or(fs[0], fs[1], fs[2:]...)
}
