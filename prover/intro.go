package prover

import "github.com/endomorphosis/dcec/dcec"

// ConjunctionIntroduction derives A ∧ B from A and B.
// At most MaxConjunctions new conjunctions are derived per application.
type ConjunctionIntroduction struct{}

func (ConjunctionIntroduction) Name() string { return "ConjunctionIntroduction" }

func (ConjunctionIntroduction) CanApply(fs []dcec.Formula) bool { return len(fs) > 1 }

func (ConjunctionIntroduction) Apply(fs []dcec.Formula) ([]Derivation, error) {
	idx := indexFormulas(fs)
	var res []Derivation
	for i := range fs {
		for j := i + 1; j < len(fs); j++ {
			if dcec.Equal(fs[i], fs[j]) {
				continue
			}
			and := dcec.And(fs[i], fs[j])
			if _, ok := idx.first(and); ok {
				continue
			}
			if res = append(res, derive(and, i, j)); len(res) == MaxConjunctions {
				return res, nil
			}
		}
	}
	return res, nil
}

// Weakening derives A ∨ B from A ∧ B.
type Weakening struct{}

func (Weakening) Name() string { return "Weakening" }

func (Weakening) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, isConn(dcec.Conjunction))
}

func (Weakening) Apply(fs []dcec.Formula) ([]Derivation, error) {
	var res []Derivation
	for i, f := range fs {
		if c, ok := conn(f, dcec.Conjunction); ok {
			res = append(res, derive(disjunction(c.Args), i))
		}
	}
	return res, nil
}

// BiconditionalIntroduction derives P ↔ Q from P → Q and Q → P.
type BiconditionalIntroduction struct{}

func (BiconditionalIntroduction) Name() string { return "BiconditionalIntroduction" }

func (BiconditionalIntroduction) CanApply(fs []dcec.Formula) bool {
	return CutElimination{}.CanApply(fs)
}

func (BiconditionalIntroduction) Apply(fs []dcec.Formula) ([]Derivation, error) {
	byAntecedent, _ := indexImplications(fs)
	var res []Derivation
	for i, f := range fs {
		p, q, ok := binary(f, dcec.Implication)
		if !ok || dcec.Equal(p, q) {
			continue
		}
		for _, j := range byAntecedent.all(q) {
			if _, r, _ := binary(fs[j], dcec.Implication); dcec.Equal(r, p) {
				res = append(res, derive(dcec.Iff(p, q), i, j))
				break
			}
		}
	}
	return res, nil
}

// ConstructiveDilemma derives Q ∨ S from P → Q, R → S and P ∨ R.
type ConstructiveDilemma struct{}

func (ConstructiveDilemma) Name() string { return "ConstructiveDilemma" }

func (ConstructiveDilemma) CanApply(fs []dcec.Formula) bool {
	return CutElimination{}.CanApply(fs) && anyFormula(fs, isBinary(dcec.Disjunction))
}

func (ConstructiveDilemma) Apply(fs []dcec.Formula) ([]Derivation, error) {
	byAntecedent, _ := indexImplications(fs)
	var res []Derivation
	for k, f := range fs {
		p, r, ok := binary(f, dcec.Disjunction)
		if !ok {
			continue
		}
		for _, i := range byAntecedent.all(p) {
			for _, j := range byAntecedent.all(r) {
				_, q, _ := binary(fs[i], dcec.Implication)
				_, s, _ := binary(fs[j], dcec.Implication)
				res = append(res, derive(dcec.Or(q, s), i, j, k))
			}
		}
	}
	return res, nil
}

// DestructiveDilemma derives ¬P ∨ ¬R from P → Q, R → S and ¬Q ∨ ¬S.
type DestructiveDilemma struct{}

func (DestructiveDilemma) Name() string { return "DestructiveDilemma" }

func (DestructiveDilemma) CanApply(fs []dcec.Formula) bool {
	return ConstructiveDilemma{}.CanApply(fs)
}

func (DestructiveDilemma) Apply(fs []dcec.Formula) ([]Derivation, error) {
	_, byConsequent := indexImplications(fs)
	var res []Derivation
	for k, f := range fs {
		nq, ns, ok := binary(f, dcec.Disjunction)
		if !ok {
			continue
		}
		for _, i := range byConsequent.all(negate(nq)) {
			for _, j := range byConsequent.all(negate(ns)) {
				p, _, _ := binary(fs[i], dcec.Implication)
				r, _, _ := binary(fs[j], dcec.Implication)
				res = append(res, derive(dcec.Or(negate(p), negate(r)), i, j, k))
			}
		}
	}
	return res, nil
}

// TautologyIntroduction derives P ∨ ¬P for a known formula P.
// At most MaxTautologies new tautologies are derived per application.
type TautologyIntroduction struct{}

func (TautologyIntroduction) Name() string { return "TautologyIntroduction" }

func (TautologyIntroduction) CanApply(fs []dcec.Formula) bool { return len(fs) > 0 }

func (TautologyIntroduction) Apply(fs []dcec.Formula) ([]Derivation, error) {
	idx := indexFormulas(fs)
	var res []Derivation
	for _, f := range fs {
		if isTautology(f) {
			continue
		}
		taut := dcec.Or(f, negate(f))
		if _, ok := idx.first(taut); ok {
			continue
		}
		if res = append(res, derive(taut)); len(res) == MaxTautologies {
			break
		}
	}
	return res, nil
}

func isTautology(f dcec.Formula) bool {
	a, b, ok := binary(f, dcec.Disjunction)
	return ok && complementary(a, b)
}

// ContradictionElimination recognizes contradictions of the form P ∧ ¬P.
// It never derives anything.
type ContradictionElimination struct{}

func (ContradictionElimination) Name() string { return "ContradictionElimination" }

func (ContradictionElimination) CanApply(fs []dcec.Formula) bool {
	return anyFormula(fs, func(f dcec.Formula) bool {
		a, b, ok := binary(f, dcec.Conjunction)
		return ok && complementary(a, b)
	})
}

func (ContradictionElimination) Apply([]dcec.Formula) ([]Derivation, error) {
	return nil, nil
}
