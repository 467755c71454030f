package prover

import (
	"fmt"
	"strings"

	"github.com/endomorphosis/dcec/dcec"
)

// Result is the outcome of a proof attempt.
type Result int

// Possible results. A Prover only ever concludes Proved or Unknown;
// the other results are set by an Engine.
const (
	Unknown Result = iota
	Proved
	Disproved
	Timeout
	Error
)

func (r Result) String() string {
	switch r {
	case Unknown:
		return "UNKNOWN"
	case Proved:
		return "PROVED"
	case Disproved:
		return "DISPROVED"
	case Timeout:
		return "TIMEOUT"
	case Error:
		return "ERROR"
	default:
		panic("invalid result")
	}
}

// AxiomRule is the rule name of the steps that introduce axioms.
const AxiomRule = "Axiom"

// A ProofStep is a formula known during a proof, along with how it was obtained.
type ProofStep struct {
	Number   int // Steps are numbered from 1
	Formula  dcec.Formula
	Rule     string
	Premises []int // Numbers of the steps this one was derived from
}

func (s ProofStep) String() string {
	if len(s.Premises) == 0 {
		return fmt.Sprintf("%d. %v [%s]", s.Number, s.Formula, s.Rule)
	}
	premises := make([]string, len(s.Premises))
	for i, p := range s.Premises {
		premises[i] = fmt.Sprint(p)
	}
	return fmt.Sprintf("%d. %v [%s %s]", s.Number, s.Formula, s.Rule, strings.Join(premises, ", "))
}

// A ProofTree records a proof attempt: every formula known when the search ended,
// in the order it became known, and the result of the search.
type ProofTree struct {
	ID     string // Set by an Engine
	Goal   dcec.Formula
	Axioms []dcec.Formula
	Steps  []ProofStep
	Result Result
	Rounds int   // Number of search rounds performed
	Err    error // Why the result is Timeout or Error
	// Inconsistent holds the indices, in Axioms, of a minimal inconsistent subset of the axioms, if any was found.
	Inconsistent []int
}

// goalStep returns the number of the step proving the goal, or 0.
func (t *ProofTree) goalStep() int {
	if t.Result != Proved || t.Goal == nil {
		return 0
	}
	key := dcec.Key(t.Goal)
	for _, s := range t.Steps {
		if dcec.Key(s.Formula) == key {
			return s.Number
		}
	}
	return 0
}

// Trace returns the steps the goal was derived from, including the step proving the goal itself,
// in the order they were found.
// It returns nil if the goal was not proved.
func (t *ProofTree) Trace() []ProofStep {
	n := t.goalStep()
	if n == 0 {
		return nil
	}
	needed := make([]bool, len(t.Steps)+1)
	needed[n] = true
	for i := n; i > 0; i-- {
		if !needed[i] {
			continue
		}
		for _, p := range t.Steps[i-1].Premises {
			needed[p] = true
		}
	}
	var res []ProofStep
	for _, s := range t.Steps {
		if needed[s.Number] {
			res = append(res, s)
		}
	}
	return res
}

// String returns a human-readable version of the tree.
// Only the steps leading to the goal are shown when it was proved.
func (t *ProofTree) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v ⊢ %v: %v after %d round(s)", t.Axioms, t.Goal, t.Result, t.Rounds)
	if t.Err != nil {
		fmt.Fprintf(&sb, " (%v)", t.Err)
	}
	sb.WriteByte('\n')
	steps := t.Trace()
	if steps == nil {
		steps = t.Steps
	}
	for _, s := range steps {
		fmt.Fprintf(&sb, "  %v\n", s)
	}
	return sb.String()
}
