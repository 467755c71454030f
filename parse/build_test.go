package parse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endomorphosis/dcec/dcec"
)

func newBuilder(t *testing.T, opts ...BuilderOption) *Builder {
	t.Helper()
	b, err := NewBuilder(dcec.NewNamespace(nil), opts...)
	require.NoError(t, err)
	return b
}

// To each expression, associate the canonical rendering of the formula it denotes.
var exprToFormula = map[string]string{
	"P":                             "P",
	"P -> Q":                        "(P → Q)",
	"~~P":                           "¬¬P",
	"P & Q & R":                     "((P ∧ Q) ∧ R)",
	"(and P Q R)":                   "(P ∧ Q ∧ R)",
	"P <-> ~Q":                      "(P ↔ ¬Q)",
	"Happy(jack)":                   "Happy(jack)",
	"Loves(jack, jill) | Sad(jack)": "(Loves(jack, jill) ∨ Sad(jack))",
	"forall x (Happy x)":            "∀x(Happy(x))",
	"exists(x, y, Loves(x, y))":     "∃x(∃y(Loves(x, y)))",
	"O(Help(jack))":                 "O(Help(jack))",
	"F(jack, Lie(jack))":            "F[jack](Lie(jack))",
	"B(jack, Happy(jill))":          "B(jack, Happy(jill))",
	"K(jack, P -> Q)":               "K(jack, (P → Q))",
	"always(Happy(jack))":           "□(Happy(jack))",
	"□ Happy(jack)":                 "□(Happy(jack))",
	"eventually(t1, Happy(jack))":   "◊[t1](Happy(jack))",
	"x + 1 < y":                     "lessThan(add(x, 1), y)",
	"B(jack, O(jill, Pay(jill)))":   "B(jack, O[jill](Pay(jill)))",
	"forall x:Agent (Happy x)":      "∀x(Happy(x))",
}

func TestBuilderFormula(t *testing.T) {
	for expr, expected := range exprToFormula {
		b := newBuilder(t)
		f, err := b.ParseFormula(expr)
		if assert.NoError(t, err, "building %q", expr) {
			assert.Equal(t, expected, f.String(), "building %q", expr)
		}
	}
}

func TestBuilderSorts(t *testing.T) {
	b := newBuilder(t)
	f, err := b.ParseFormula("forall x:Agent (Happy x)")
	require.NoError(t, err)
	q, ok := f.(*dcec.Quantified)
	require.True(t, ok)
	assert.Equal(t, "Agent", q.Var.Sort.Name)

	f, err = b.ParseFormula("x + 1 < y")
	require.NoError(t, err)
	a, ok := f.(*dcec.Atomic)
	require.True(t, ok)
	require.Len(t, a.Args, 2)
	assert.Equal(t, "Numeric", a.Args[0].Sort().Name)
	assert.Equal(t, "Numeric", a.Args[1].Sort().Name)
	pred, err := b.Namespace().Predicate("lessThan")
	require.NoError(t, err)
	assert.Equal(t, 2, pred.Arity())
}

func TestBuilderDeclaredSymbols(t *testing.T) {
	ns := dcec.NewNamespace(nil)
	_, err := ns.AddPredicate("P", "Agent")
	require.NoError(t, err)
	_, err = ns.AddFunction("jack", "Agent")
	require.NoError(t, err)
	b, err := NewBuilder(ns)
	require.NoError(t, err)

	// A declared predicate takes precedence over the deontic operator of the same name.
	f, err := b.ParseFormula("P(jack)")
	require.NoError(t, err)
	assert.IsType(t, &dcec.Atomic{}, f)

	_, err = b.ParseFormula("P(jack, jack)")
	assert.ErrorIs(t, err, dcec.ErrArity)
}

func TestBuilderStrict(t *testing.T) {
	ns := dcec.NewNamespace(nil)
	_, err := ns.AddPredicate("Happy", "Agent")
	require.NoError(t, err)
	_, err = ns.AddFunction("jack", "Agent")
	require.NoError(t, err)
	b, err := NewBuilder(ns, WithStrict(true))
	require.NoError(t, err)

	f, err := b.ParseFormula("Happy(jack)")
	require.NoError(t, err)
	assert.Equal(t, "Happy(jack)", f.String())

	_, err = b.ParseFormula("Hapy(jack)")
	require.ErrorIs(t, err, dcec.ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `did you mean "Happy"?`)

	_, err = b.ParseFormula("Happy(jill)")
	assert.ErrorIs(t, err, dcec.ErrUnknownSymbol)

	_, err = b.ParseFormula("forall x (Happy x)")
	assert.ErrorIs(t, err, dcec.ErrUnknownSymbol)
}

func TestBuilderErrors(t *testing.T) {
	tests := map[string]error{
		"not(P, Q)":             dcec.ErrConnectiveArity,
		"implies(P, Q, R)":      dcec.ErrConnectiveArity,
		"and(P)":                dcec.ErrConnectiveArity,
		"B(Happy(jill))":        dcec.ErrArity,
		"O(a, b, c)":            dcec.ErrArity,
		"forall(x)":             dcec.ErrArity,
		"forall(f(x), P(x))":    ErrSyntax,
		"(P -> Q":               ErrUnbalancedParentheses,
		"P ->":                  ErrDanglingOperator,
		"Happy(jack) & Happy()": dcec.ErrArity,
	}
	for expr, expected := range tests {
		b := newBuilder(t)
		_, err := b.ParseFormula(expr)
		assert.ErrorIs(t, err, expected, "building %q", expr)
	}
}

func TestBuilderCache(t *testing.T) {
	b := newBuilder(t)
	f1, err := b.ParseFormula("P -> Q")
	require.NoError(t, err)
	f2, err := b.ParseFormula("P -> Q")
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	f3, err := b.ParseFormula("P->Q")
	require.NoError(t, err)
	assert.True(t, dcec.Equal(f1, f3))

	_, err = NewBuilder(dcec.NewNamespace(nil), WithCacheSize(0))
	assert.Error(t, err)
}

func TestBuilderCacheDeclarations(t *testing.T) {
	ns := dcec.NewNamespace(nil)
	b, err := NewBuilder(ns)
	require.NoError(t, err)
	f, err := b.ParseFormula("P(a)")
	require.NoError(t, err)
	assert.IsType(t, &dcec.Deontic{}, f)

	// P now denotes a predicate, not the permission operator.
	_, err = ns.AddPredicate("P", "Object")
	require.NoError(t, err)
	f, err = b.ParseFormula("P(a)")
	require.NoError(t, err)
	assert.IsType(t, &dcec.Atomic{}, f)
	again, err := b.ParseFormula("P(a)")
	require.NoError(t, err)
	assert.Same(t, f, again)
}

func TestBuilderRenderedModals(t *testing.T) {
	tests := map[string]string{
		"O(jack, P)":                  "O[jack](P)",
		"F(jack, Lie(jack))":          "F[jack](Lie(jack))",
		"eventually(t1, Happy(jack))": "◊[t1](Happy(jack))",
		"always(t2, Happy(jack))":     "□[t2](Happy(jack))",
		"B(jack, O(jill, Pay(jill)))": "B(jack, O[jill](Pay(jill)))",
	}
	for expr, rendering := range tests {
		t.Run(rendering, func(t *testing.T) {
			b := newBuilder(t)
			f, err := b.ParseFormula(expr)
			require.NoError(t, err)
			require.Equal(t, rendering, f.String())
			back, err := b.ParseFormula(rendering)
			require.NoError(t, err)
			assert.IsType(t, f, back)
			assert.True(t, dcec.Equal(f, back), "%v and %v differ", f, back)
		})
	}

	b := newBuilder(t)
	_, err := b.ParseFormula("O[jack](P)")
	require.NoError(t, err)
	_, err = b.Namespace().Predicate("O[jack]")
	assert.ErrorIs(t, err, dcec.ErrUnknownSymbol)
}

func ExampleBuilder() {
	b, err := NewBuilder(dcec.NewNamespace(nil))
	if err != nil {
		fmt.Printf("could not create builder: %v", err)
		return
	}
	for _, expr := range []string{
		"(implies (B jack (Happy jill)) (O (Help jack jill)))",
		"implies(B(jack, Happy(jill)), O(Help(jack, jill)))",
		"B(jack, Happy(jill)) -> O(Help(jack, jill))",
	} {
		f, err := b.ParseFormula(expr)
		if err != nil {
			fmt.Printf("could not build %q: %v", expr, err)
			return
		}
		fmt.Println(f)
	}
	// Output:
	// (B(jack, Happy(jill)) → O(Help(jack, jill)))
	// (B(jack, Happy(jill)) → O(Help(jack, jill)))
	// (B(jack, Happy(jill)) → O(Help(jack, jill)))
}
