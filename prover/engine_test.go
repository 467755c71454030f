package prover

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/endomorphosis/dcec/config"
	"github.com/endomorphosis/dcec/dcec"
)

func newEngine(t *testing.T, modify func(*config.Config)) (*Engine, *observer.ObservedLogs) {
	t.Helper()
	cfg := config.DefaultConfig()
	if modify != nil {
		modify(cfg)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	e, err := NewEngine(cfg, zap.New(core))
	require.NoError(t, err)
	return e, logs
}

func TestEngineProveText(t *testing.T) {
	e, logs := newEngine(t, nil)
	tree := e.ProveText(context.Background(), "Smiles(jack)", "Happy(jack)", "Happy(jack) -> Smiles(jack)")
	assert.Equal(t, Proved, tree.Result)
	assert.NotEmpty(t, tree.ID)
	assert.NoError(t, tree.Err)
	entries := logs.FilterMessage("proof done").All()
	require.Len(t, entries, 1)
	assert.Equal(t, tree.ID, entries[0].ContextMap()["proof"])
	assert.Equal(t, "PROVED", entries[0].ContextMap()["result"])

	other := e.ProveText(context.Background(), "Smiles(jack)", "Happy(jack)", "Happy(jack) -> Smiles(jack)")
	assert.NotEqual(t, tree.ID, other.ID)
}

func TestEngineDisproved(t *testing.T) {
	shortSearch := func(c *config.Config) { c.Prover.MaxSteps = 2 }
	e, _ := newEngine(t, shortSearch)
	tree := e.ProveText(context.Background(), "Q", "P", "P -> ~Q")
	assert.Equal(t, Disproved, tree.Result)
	assert.Empty(t, tree.Inconsistent)

	// Without refutation, the search alone cannot conclude.
	e, _ = newEngine(t, func(c *config.Config) {
		shortSearch(c)
		c.Prover.Refute = false
	})
	tree = e.ProveText(context.Background(), "Q", "P", "P -> ~Q")
	assert.Equal(t, Unknown, tree.Result)

	// A goal independent of the axioms is neither proved nor disproved.
	e, _ = newEngine(t, shortSearch)
	tree = e.ProveText(context.Background(), "R", "P", "Q")
	assert.Equal(t, Unknown, tree.Result)
}

func TestEngineInconsistentAxioms(t *testing.T) {
	e, logs := newEngine(t, func(c *config.Config) { c.Prover.MaxSteps = 2 })
	tree := e.ProveText(context.Background(), "Z", "P", "R", "P -> Q", "~Q")
	assert.Equal(t, Unknown, tree.Result)
	assert.Equal(t, []int{0, 2, 3}, tree.Inconsistent)
	assert.Equal(t, 1, logs.FilterMessage("axioms are inconsistent").Len())
}

func TestEngineBuildError(t *testing.T) {
	e, logs := newEngine(t, func(c *config.Config) { c.Parser.Strict = true })
	tree := e.ProveText(context.Background(), "Q", "P")
	assert.Equal(t, Error, tree.Result)
	assert.ErrorIs(t, tree.Err, dcec.ErrUnknownSymbol)
	assert.Equal(t, 1, logs.FilterMessage("proof failed").Len())

	_, err := e.Namespace().AddPredicate("P")
	require.NoError(t, err)
	_, err = e.Namespace().AddPredicate("Q")
	require.NoError(t, err)
	tree = e.ProveText(context.Background(), "Q", "P", "P -> Q")
	assert.Equal(t, Proved, tree.Result)
}

func TestEngineSearchPanic(t *testing.T) {
	e, logs := newEngine(t, nil)
	tree := e.Prove(context.Background(), nil, nil)
	assert.Equal(t, Error, tree.Result)
	assert.ErrorIs(t, tree.Err, ErrSearchPanic)
	assert.NotEmpty(t, tree.ID)
	assert.Equal(t, 1, logs.FilterMessage("proof failed").Len())
}

type slowRule struct{ delay time.Duration }

func (slowRule) Name() string { return "Slow" }
func (slowRule) CanApply(fs []dcec.Formula) bool { return true }

func (r slowRule) Apply(fs []dcec.Formula) ([]Derivation, error) {
	time.Sleep(r.delay)
	return nil, nil
}

func TestEngineTimeout(t *testing.T) {
	e, logs := newEngine(t, func(c *config.Config) { c.Prover.Timeout = 10 * time.Millisecond })
	e.prover = New(WithRules(slowRule{delay: 200 * time.Millisecond}), WithMaxSteps(1))
	tree := e.ProveText(context.Background(), "Q", "P")
	assert.Equal(t, Timeout, tree.Result)
	assert.ErrorIs(t, tree.Err, context.DeadlineExceeded)
	assert.Equal(t, 1, logs.FilterMessage("proof timed out").Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, _ = newEngine(t, nil)
	tree = e.ProveText(ctx, "Q", "P", "P -> Q")
	assert.Equal(t, Timeout, tree.Result)
	assert.ErrorIs(t, tree.Err, context.Canceled)
}

func TestNewEngineRules(t *testing.T) {
	e, _ := newEngine(t, func(c *config.Config) { c.Prover.Rules = []string{"Simplification"} })
	assert.Equal(t, []Rule{Simplification{}}, e.prover.rules)

	e, _ = newEngine(t, func(c *config.Config) { c.Prover.Introduction = true })
	assert.Len(t, e.prover.rules, len(AllRules()))

	cfg := config.DefaultConfig()
	cfg.Prover.Rules = []string{"Simplificaton"}
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrUnknownRule)

	cfg = config.DefaultConfig()
	cfg.Parser.CacheSize = 0
	_, err = NewEngine(cfg, nil)
	assert.Error(t, err)
}
