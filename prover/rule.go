package prover

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/endomorphosis/dcec/dcec"
)

// Caps on the number of derivations produced by the introduction rules in a single application.
const (
	MaxConjunctions = 10
	MaxTautologies  = 1
)

// A Derivation is a formula produced by a rule, along with the premises it was derived from.
// Premises are indices in the formula list the rule was applied to.
type Derivation struct {
	Formula  dcec.Formula
	Premises []int
}

// A Rule is an inference rule.
// Rules only look at the outermost connective skeleton of formulas: a formula
// under a modal operator or a quantifier is opaque to them.
type Rule interface {
	// Name is the name of the rule, as it appears in proofs.
	Name() string
	// CanApply is a cheap test telling whether the rule may derive anything from fs.
	CanApply(fs []dcec.Formula) bool
	// Apply returns the formulas derived from fs. It may return formulas already in fs.
	Apply(fs []dcec.Formula) ([]Derivation, error)
}

// AllRules returns every available rule.
func AllRules() []Rule {
	return []Rule{
		ModusPonens{},
		Simplification{},
		ConjunctionIntroduction{},
		Weakening{},
		DeMorgan{},
		Commutativity{},
		Distribution{},
		DisjunctiveSyllogism{},
		ImplicationElimination{},
		MaterialImplication{},
		CutElimination{},
		HypotheticalSyllogism{},
		DoubleNegation{},
		Contraposition{},
		Transposition{},
		Exportation{},
		Absorption{},
		Association{},
		Resolution{},
		ClaviusLaw{},
		Idempotence{},
		BiconditionalIntroduction{},
		BiconditionalElimination{},
		ConstructiveDilemma{},
		DestructiveDilemma{},
		TautologyIntroduction{},
		ContradictionElimination{},
		ConjunctionElimination{},
	}
}

// DefaultRules returns the rules used by a Prover when none are given.
// Those are all the rules except the introduction rules that apply to any
// non-empty set of formulas, ConjunctionIntroduction and TautologyIntroduction:
// with them, a search never reaches a fixpoint.
func DefaultRules() []Rule {
	var res []Rule
	for _, r := range AllRules() {
		switch r.(type) {
		case ConjunctionIntroduction, TautologyIntroduction:
			continue
		}
		res = append(res, r)
	}
	return res
}

// RuleByName returns the rule called name.
func RuleByName(name string) (Rule, error) {
	all := AllRules()
	best, bestDist := "", 3
	for _, r := range all {
		if r.Name() == name {
			return r, nil
		}
		if d := levenshtein.ComputeDistance(name, r.Name()); d < bestDist {
			best, bestDist = r.Name(), d
		}
	}
	if best != "" {
		return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRule, name, best)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// RulesByName resolves each name into a rule.
func RulesByName(names ...string) ([]Rule, error) {
	res := make([]Rule, len(names))
	for i, name := range names {
		r, err := RuleByName(name)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}

// conn returns f as a connective of kind c, if it is one.
func conn(f dcec.Formula, c dcec.Conn) (*dcec.Connective, bool) {
	cf, ok := f.(*dcec.Connective)
	if !ok || cf.Conn != c {
		return nil, false
	}
	return cf, true
}

// binary returns the two operands of f, if f is a binary connective of kind c.
func binary(f dcec.Formula, c dcec.Conn) (dcec.Formula, dcec.Formula, bool) {
	cf, ok := conn(f, c)
	if !ok || len(cf.Args) != 2 {
		return nil, nil, false
	}
	return cf.Args[0], cf.Args[1], true
}

// negated returns φ if f is ¬φ.
func negated(f dcec.Formula) (dcec.Formula, bool) {
	cf, ok := conn(f, dcec.Negation)
	if !ok {
		return nil, false
	}
	return cf.Args[0], true
}

// negate returns ¬f, or φ if f is already ¬φ.
func negate(f dcec.Formula) dcec.Formula {
	if sub, ok := negated(f); ok {
		return sub
	}
	return dcec.Not(f)
}

// complementary is true iff one of f1 and f2 is the negation of the other.
func complementary(f1, f2 dcec.Formula) bool {
	if sub, ok := negated(f1); ok && dcec.Equal(sub, f2) {
		return true
	}
	sub, ok := negated(f2)
	return ok && dcec.Equal(sub, f1)
}

func isConn(c dcec.Conn) func(dcec.Formula) bool {
	return func(f dcec.Formula) bool {
		_, ok := conn(f, c)
		return ok
	}
}

func isBinary(c dcec.Conn) func(dcec.Formula) bool {
	return func(f dcec.Formula) bool {
		_, _, ok := binary(f, c)
		return ok
	}
}

func anyFormula(fs []dcec.Formula, pred func(dcec.Formula) bool) bool {
	for _, f := range fs {
		if pred(f) {
			return true
		}
	}
	return false
}

func derive(f dcec.Formula, premises ...int) Derivation {
	return Derivation{Formula: f, Premises: premises}
}
