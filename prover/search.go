package prover

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/endomorphosis/dcec/dcec"
)

// DefaultMaxSteps is the default maximum number of search rounds.
const DefaultMaxSteps = 100

// A Prover looks for proofs by forward chaining: it applies its rules to the
// known formulas, round after round, until the goal is derived, no rule derives
// anything new, or the maximum number of rounds is reached.
//
// By default, a Prover does not use ConjunctionIntroduction and
// TautologyIntroduction (see DefaultRules): they derive new formulas from any
// input, so a search using them only stops at the goal or after the maximum
// number of rounds. Pass AllRules to WithRules to search with every rule.
//
// A Prover is stateless between calls to Prove and can be shared.
type Prover struct {
	maxSteps int
	rules    []Rule
	logger   *zap.Logger
}

// An Option configures a Prover.
type Option func(*Prover)

// WithMaxSteps sets the maximum number of search rounds.
func WithMaxSteps(n int) Option {
	return func(p *Prover) { p.maxSteps = n }
}

// WithRules sets the rules the prover uses, in the order they are tried in each round.
func WithRules(rules ...Rule) Option {
	return func(p *Prover) { p.rules = rules }
}

// WithLogger sets the logger of the prover.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Prover) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New returns a prover using DefaultRules and DefaultMaxSteps, unless options say otherwise.
func New(opts ...Option) *Prover {
	p := &Prover{
		maxSteps: DefaultMaxSteps,
		rules:    DefaultRules(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// search holds the state of a single proof attempt.
type search struct {
	*Prover
	tree    *ProofTree
	derived []dcec.Formula
	known   map[string]bool
	goal    string
}

// Prove tries to derive goal from axioms.
// The result of the returned tree is either Proved or Unknown.
// A rule failing during a round is skipped for that round; its error is logged.
func (p *Prover) Prove(goal dcec.Formula, axioms []dcec.Formula) *ProofTree {
	s := &search{
		Prover:  p,
		tree:    &ProofTree{Goal: goal, Axioms: axioms, Result: Unknown},
		derived: make([]dcec.Formula, 0, len(axioms)),
		known:   make(map[string]bool, len(axioms)),
		goal:    dcec.Key(goal),
	}
	for _, ax := range axioms {
		s.add(ax, dcec.Key(ax), AxiomRule, nil)
	}
	if s.known[s.goal] {
		s.tree.Result = Proved
		p.logger.Debug("goal is an axiom", zap.Stringer("goal", goal))
		return s.tree
	}
	for round := 1; round <= p.maxSteps; round++ {
		s.tree.Rounds = round
		candidates := s.round()
		if len(candidates) == 0 {
			p.logger.Debug("fixpoint reached", zap.Int("round", round), zap.Int("formulas", len(s.derived)))
			return s.tree
		}
		for _, c := range candidates {
			s.add(c.Formula, c.key, c.rule, c.Premises)
			if c.key == s.goal {
				s.tree.Result = Proved
				p.logger.Debug("goal proved", zap.Int("round", round), zap.Int("steps", len(s.tree.Steps)))
				return s.tree
			}
		}
	}
	p.logger.Debug("maximum number of rounds reached", zap.Int("max_steps", p.maxSteps))
	return s.tree
}

type candidate struct {
	Derivation
	key  string
	rule string
}

// round applies every rule to the formulas known at the start of the round
// and returns the new formulas they derive.
func (s *search) round() []candidate {
	var res []candidate
	seen := make(map[string]bool)
	for _, r := range s.rules {
		cs, err := s.apply(r)
		if err != nil {
			s.logger.Warn("rule failed",
				zap.String("rule", r.Name()),
				zap.Int("round", s.tree.Rounds),
				zap.Error(err),
			)
			continue
		}
		for _, c := range cs {
			if s.known[c.key] || seen[c.key] {
				continue
			}
			seen[c.key] = true
			res = append(res, c)
		}
	}
	return res
}

// apply applies r to the derived formulas, turning a panic into an error.
func (s *search) apply(r Rule) (cs []candidate, err error) {
	defer func() {
		if v := recover(); v != nil {
			cs, err = nil, fmt.Errorf("%w: %v", ErrRulePanic, v)
		}
	}()
	if !r.CanApply(s.derived) {
		return nil, nil
	}
	ds, err := r.Apply(s.derived)
	if err != nil {
		return nil, err
	}
	cs = make([]candidate, len(ds))
	for i, d := range ds {
		cs[i] = candidate{Derivation: d, key: dcec.Key(d.Formula), rule: r.Name()}
	}
	return cs, nil
}

// add appends f, whose key is k, as a new step.
// premises are indices in the derived formulas.
func (s *search) add(f dcec.Formula, k, rule string, premises []int) {
	s.known[k] = true
	s.derived = append(s.derived, f)
	steps := make([]int, len(premises))
	for i, p := range premises {
		steps[i] = p + 1
	}
	step := ProofStep{Number: len(s.tree.Steps) + 1, Formula: f, Rule: rule, Premises: steps}
	s.tree.Steps = append(s.tree.Steps, step)
	s.logger.Debug("step", zap.Int("number", step.Number), zap.Stringer("formula", f), zap.String("rule", rule))
}
