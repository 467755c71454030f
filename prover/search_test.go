package prover

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/endomorphosis/dcec/dcec"
	"github.com/endomorphosis/dcec/parse"
)

// problem builds a goal and its axioms with a fresh builder.
func problem(t *testing.T, goal string, axioms ...string) (dcec.Formula, []dcec.Formula) {
	t.Helper()
	b := newTestBuilder(t)
	fs := formulas(t, b, axioms...)
	return formulas(t, b, goal)[0], fs
}

func TestProveScenarios(t *testing.T) {
	tests := []struct {
		name   string
		goal   string
		axioms []string
		result Result
		rounds int
		rule   string
	}{
		{"goal is an axiom", "P", []string{"Q", "P"}, Proved, 0, AxiomRule},
		{"modus ponens", "Q", []string{"P", "P -> Q"}, Proved, 1, "ModusPonens"},
		{"simplification", "P", []string{"P & Q"}, Proved, 1, "Simplification"},
		{"unrelated goal", "R", []string{"P", "Q"}, Unknown, 1, ""},
		{"chain", "R", []string{"P", "P -> Q", "Q -> R"}, Proved, 2, "ModusPonens"},
		{"two rounds", "S", []string{"P & Q", "P -> S"}, Proved, 2, "ModusPonens"},
		{"disjunctive syllogism", "Q", []string{"P | Q", "~P"}, Proved, 1, "DisjunctiveSyllogism"},
		{"double negation", "P", []string{"~~P"}, Proved, 1, "DoubleNegation"},
		{"rendered modal goal", "O[jack](Help(jill))", []string{"O(jack, Help(jill))"}, Proved, 0, AxiomRule},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			goal, axioms := problem(t, test.goal, test.axioms...)
			tree := New().Prove(goal, axioms)
			assert.Equal(t, test.result, tree.Result)
			assert.Equal(t, test.rounds, tree.Rounds)
			if test.result != Proved {
				assert.Nil(t, tree.Trace())
				return
			}
			trace := tree.Trace()
			require.NotEmpty(t, trace)
			last := trace[len(trace)-1]
			assert.True(t, dcec.Equal(goal, last.Formula))
			assert.Equal(t, test.rule, last.Rule)
		})
	}
}

func TestProveSteps(t *testing.T) {
	goal, axioms := problem(t, "Q", "P", "P -> Q")
	tree := New().Prove(goal, axioms)
	require.Equal(t, Proved, tree.Result)
	require.Len(t, tree.Steps, 3)
	assert.Equal(t, ProofStep{Number: 1, Formula: axioms[0], Rule: AxiomRule, Premises: []int{}}, tree.Steps[0])
	assert.Equal(t, ProofStep{Number: 2, Formula: axioms[1], Rule: AxiomRule, Premises: []int{}}, tree.Steps[1])
	assert.Equal(t, 3, tree.Steps[2].Number)
	assert.Equal(t, "ModusPonens", tree.Steps[2].Rule)
	assert.Equal(t, []int{1, 2}, tree.Steps[2].Premises)
	assert.Equal(t, "3. Q [ModusPonens 1, 2]", tree.Steps[2].String())
}

func TestProveFixpoint(t *testing.T) {
	goal, axioms := problem(t, "R", "P", "Q")
	tree := New(WithRules(AllRules()...), WithMaxSteps(5)).Prove(goal, axioms)
	// Introduction rules always derive something.
	assert.Equal(t, Unknown, tree.Result)
	assert.Equal(t, 5, tree.Rounds)
	assert.Greater(t, len(tree.Steps), 2)

	tree = New().Prove(goal, axioms)
	assert.Equal(t, Unknown, tree.Result)
	assert.Equal(t, 1, tree.Rounds)
	assert.Len(t, tree.Steps, 2)
}

func TestProveMaxSteps(t *testing.T) {
	goal, axioms := problem(t, "Z", "P -> Q", "Q -> R", "R -> P")
	for _, n := range []int{0, 1, 2, 3} {
		tree := New(WithMaxSteps(n)).Prove(goal, axioms)
		assert.Equal(t, Unknown, tree.Result)
		assert.LessOrEqual(t, tree.Rounds, n)
	}
}

func TestProveNoDuplicates(t *testing.T) {
	goal, axioms := problem(t, "Z", "P & Q", "Q & P", "P -> Q")
	tree := New(WithMaxSteps(3)).Prove(goal, axioms)
	seen := make(map[string]bool)
	for _, s := range tree.Steps[len(axioms):] {
		k := dcec.Key(s.Formula)
		assert.False(t, seen[k], "%v derived twice", s.Formula)
		seen[k] = true
	}
}

type failingRule struct {
	err   error
	panic bool
}

func (failingRule) Name() string { return "Failing" }
func (failingRule) CanApply(fs []dcec.Formula) bool { return true }

func (r failingRule) Apply(fs []dcec.Formula) ([]Derivation, error) {
	if r.panic {
		panic(r.err)
	}
	return nil, r.err
}

func TestProveRuleFailure(t *testing.T) {
	errBoom := errors.New("boom")
	for _, r := range []failingRule{{err: errBoom}, {err: errBoom, panic: true}} {
		t.Run(fmt.Sprintf("panic=%t", r.panic), func(t *testing.T) {
			core, logs := observer.New(zapcore.WarnLevel)
			goal, axioms := problem(t, "Q", "P", "P -> Q")
			p := New(WithRules(r, ModusPonens{}), WithLogger(zap.New(core)))
			tree := p.Prove(goal, axioms)
			assert.Equal(t, Proved, tree.Result)
			entries := logs.FilterMessage("rule failed").All()
			require.Len(t, entries, 1)
			assert.Equal(t, "Failing", entries[0].ContextMap()["rule"])
			assert.Contains(t, entries[0].ContextMap()["error"], "boom")
		})
	}
}

func TestTrace(t *testing.T) {
	goal, axioms := problem(t, "S", "P", "Q", "P -> R", "R -> S", "Q -> T")
	tree := New().Prove(goal, axioms)
	require.Equal(t, Proved, tree.Result)
	var trace []string
	for _, s := range tree.Trace() {
		trace = append(trace, s.Formula.String())
	}
	// Q and Q → T are irrelevant to the goal.
	assert.Equal(t, []string{"P", "(P → R)", "(R → S)", "R", "S"}, trace)
	assert.Contains(t, tree.String(), "PROVED after 2 round(s)")
	assert.NotContains(t, tree.String(), "2. Q [Axiom]")
}

func ExampleProver_Prove() {
	b, _ := parse.NewBuilder(dcec.NewNamespace(nil))
	p, _ := b.ParseFormula("P")
	pq, _ := b.ParseFormula("P -> B(jack, Q)")
	goal, _ := b.ParseFormula("B(jack, Q)")
	tree := New().Prove(goal, []dcec.Formula{p, pq})
	fmt.Println(tree.Result, tree.Rounds)
	for _, step := range tree.Trace() {
		fmt.Println(step)
	}
	// Output:
	// PROVED 1
	// 1. P [Axiom]
	// 2. (P → B(jack, Q)) [Axiom]
	// 3. B(jack, Q) [ModusPonens 1, 2]
}
