package dcec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortHierarchy(t *testing.T) {
	ns := NewNamespace(nil)
	self, err := ns.Sort("Self")
	require.NoError(t, err)
	agent, _ := ns.Sort("Agent")
	object, _ := ns.Sort("Object")
	moment, _ := ns.Sort("Moment")
	assert.True(t, self.IsSubtypeOf(agent))
	assert.True(t, self.IsSubtypeOf(object))
	assert.True(t, agent.IsSubtypeOf(agent))
	assert.False(t, agent.IsSubtypeOf(self))
	assert.False(t, self.IsSubtypeOf(moment))

	robot, err := ns.AddSort("Robot", "Agent")
	require.NoError(t, err)
	assert.True(t, robot.IsSubtypeOf(object))
	again, err := ns.AddSort("Robot", "Agent")
	require.NoError(t, err)
	assert.Same(t, robot, again)
	_, err = ns.AddSort("Robot", "Moment")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
	_, err = ns.AddSort("Drone", "Vehicle")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestNamespaceRedeclaration(t *testing.T) {
	ns := NewNamespace(nil)
	f1, err := ns.AddFunction("father", "Agent", "Agent")
	require.NoError(t, err)
	f2, err := ns.AddFunction("father", "Agent", "Agent")
	require.NoError(t, err)
	assert.Same(t, f1, f2)
	_, err = ns.AddFunction("father", "Object", "Agent")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)

	_, err = ns.AddPredicate("Happy", "Agent")
	require.NoError(t, err)
	_, err = ns.AddPredicate("Happy", "Agent", "Moment")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)

	_, err = ns.AddVariable("t", "Moment")
	require.NoError(t, err)
	_, err = ns.AddVariable("t", "Agent")
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
}

func TestUnknownSymbolSuggestion(t *testing.T) {
	ns := NewNamespace(nil)
	_, err := ns.AddPredicate("Happy", "Agent")
	require.NoError(t, err)

	_, err = ns.Predicate("Hapy")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `did you mean "Happy"?`)

	_, err = ns.Predicate("Sad")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = ns.Sort("Agnet")
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), `"Agent"`)

	_, err = ns.AddVariable("x", "Momnet")
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}
