package prover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefute(t *testing.T) {
	tests := []struct {
		name      string
		goal      string
		axioms    []string
		disproved bool
		core      []int
	}{
		{"contradicted goal", "Q", []string{"P", "P -> ~Q"}, true, nil},
		{"independent goal", "R", []string{"P", "Q"}, false, nil},
		{"entailed goal", "Q", []string{"P", "P -> Q"}, false, nil},
		{"no axioms", "Q & ~Q", nil, true, nil},
		{"modal formulas are opaque", "~B(jack, Q)", []string{"B(jack, Q)"}, true, nil},
		{"inconsistent axioms", "Q", []string{"P", "Q", "~P"}, false, []int{0, 2}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			goal, axioms := problem(t, test.goal, test.axioms...)
			disproved, core := refute(goal, axioms)
			assert.Equal(t, test.disproved, disproved)
			assert.Equal(t, test.core, core)
		})
	}
}

func TestCheck(t *testing.T) {
	b := newTestBuilder(t)
	fs := formulas(t, b, "P", "P -> ~B(jack, Q)", "P | R")
	val, core := Check(fs)
	require.Nil(t, core)
	require.Len(t, val, 3)
	assert.Equal(t, "P", val[0].Formula.String())
	assert.True(t, val[0].Value)
	assert.Equal(t, "B(jack, Q)", val[1].Formula.String())
	assert.False(t, val[1].Value)
	assert.Equal(t, "R", val[2].Formula.String())

	val, core = Check(formulas(t, b, "P -> Q", "R", "P", "~Q"))
	assert.Nil(t, val)
	assert.Equal(t, []int{0, 2, 3}, core)

	val, core = Check(nil)
	assert.Empty(t, val)
	assert.Nil(t, core)
}
