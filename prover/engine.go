package prover

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/endomorphosis/dcec/config"
	"github.com/endomorphosis/dcec/dcec"
	"github.com/endomorphosis/dcec/parse"
)

// An Engine wraps a Prover with the concerns of a complete proof service:
// it identifies proof attempts, enforces a wall-clock deadline, reports
// failures as Error results, and tries to disprove goals the search could not prove.
// It also owns a namespace and a builder, so that goals and axioms can be given as text.
type Engine struct {
	prover  *Prover
	builder *parse.Builder
	timeout time.Duration
	refute  bool
	logger  *zap.Logger
}

// NewEngine returns an engine configured by cfg. logger may be nil.
func NewEngine(cfg *config.Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rules := DefaultRules()
	switch {
	case len(cfg.Prover.Rules) > 0:
		var err error
		if rules, err = RulesByName(cfg.Prover.Rules...); err != nil {
			return nil, err
		}
	case cfg.Prover.Introduction:
		rules = AllRules()
	}
	builder, err := parse.NewBuilder(
		dcec.NewNamespace(logger.Named("namespace")),
		parse.WithStrict(cfg.Parser.Strict),
		parse.WithCacheSize(cfg.Parser.CacheSize),
	)
	if err != nil {
		return nil, err
	}
	return &Engine{
		prover: New(
			WithMaxSteps(cfg.Prover.MaxSteps),
			WithRules(rules...),
			WithLogger(logger.Named("search")),
		),
		builder: builder,
		timeout: cfg.Prover.Timeout,
		refute:  cfg.Prover.Refute,
		logger:  logger,
	}, nil
}

// Namespace returns the namespace text formulas are built against.
func (e *Engine) Namespace() *dcec.Namespace { return e.builder.Namespace() }

// Builder returns the builder used to parse text formulas.
func (e *Engine) Builder() *parse.Builder { return e.builder }

// Prove tries to derive goal from axioms.
//
// The search runs until it ends, the configured timeout elapses, or ctx is done,
// in which case the result is Timeout. A search that panics yields Error.
// When the search ends with Unknown and refutation is enabled, the goal is
// Disproved if the axioms are propositionally consistent but contradict it.
// If the axioms themselves are inconsistent, the tree lists a minimal inconsistent subset.
func (e *Engine) Prove(ctx context.Context, goal dcec.Formula, axioms []dcec.Formula) *ProofTree {
	id := uuid.NewString()
	logger := e.logger.With(zap.String("proof", id))
	tree := e.search(ctx, goal, axioms)
	tree.ID = id
	if tree.Result == Unknown && e.refute {
		e.disprove(tree, logger)
	}
	switch tree.Result {
	case Error:
		logger.Error("proof failed", zap.Error(tree.Err))
	case Timeout:
		logger.Warn("proof timed out", zap.Error(tree.Err), zap.Duration("timeout", e.timeout))
	default:
		logger.Info("proof done",
			zap.Stringer("result", tree.Result),
			zap.Int("rounds", tree.Rounds),
			zap.Int("steps", len(tree.Steps)),
		)
	}
	return tree
}

func (e *Engine) search(ctx context.Context, goal dcec.Formula, axioms []dcec.Formula) *ProofTree {
	if err := ctx.Err(); err != nil {
		return &ProofTree{Goal: goal, Axioms: axioms, Result: Timeout, Err: err}
	}
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	done := make(chan *ProofTree, 1)
	go func() {
		defer func() {
			if v := recover(); v != nil {
				done <- &ProofTree{Goal: goal, Axioms: axioms, Result: Error, Err: fmt.Errorf("%w: %v", ErrSearchPanic, v)}
			}
		}()
		done <- e.prover.Prove(goal, axioms)
	}()
	select {
	case tree := <-done:
		return tree
	case <-ctx.Done():
		// The search goroutine ends by itself once it exhausts its rounds.
		return &ProofTree{Goal: goal, Axioms: axioms, Result: Timeout, Err: ctx.Err()}
	}
}

func (e *Engine) disprove(tree *ProofTree, logger *zap.Logger) {
	defer func() {
		if v := recover(); v != nil {
			logger.Warn("could not check refutation", zap.Any("panic", v))
		}
	}()
	disproved, core := refute(tree.Goal, tree.Axioms)
	if len(core) > 0 {
		tree.Inconsistent = core
		logger.Warn("axioms are inconsistent", zap.Ints("axioms", core))
	}
	if disproved {
		tree.Result = Disproved
	}
}

// ProveText parses goal and axioms and tries to derive the goal from the axioms.
// A formula that cannot be built yields a tree with an Error result.
func (e *Engine) ProveText(ctx context.Context, goal string, axioms ...string) *ProofTree {
	fail := func(err error) *ProofTree {
		tree := &ProofTree{ID: uuid.NewString(), Result: Error, Err: err}
		e.logger.Error("proof failed", zap.String("proof", tree.ID), zap.Error(err))
		return tree
	}
	fs := make([]dcec.Formula, len(axioms))
	for i, ax := range axioms {
		f, err := e.builder.ParseFormula(ax)
		if err != nil {
			return fail(fmt.Errorf("axiom %d: %w", i+1, err))
		}
		fs[i] = f
	}
	g, err := e.builder.ParseFormula(goal)
	if err != nil {
		return fail(fmt.Errorf("goal: %w", err))
	}
	return e.Prove(ctx, g, fs)
}
