/*
Package prover derives DCEC formulas from axioms by forward chaining.

A Prover applies a fixed list of inference rules (see AllRules) to the set of
known formulas. Each round, every rule is applied to the formulas known at the
start of the round; the formulas derived that were not known yet are added,
in order, to the proof. The search stops as soon as the goal is known, when a
round derives nothing new, or after a maximum number of rounds:

	p := prover.New(prover.WithMaxSteps(10))
	tree := p.Prove(goal, axioms)
	if tree.Result == prover.Proved {
		for _, step := range tree.Trace() {
			fmt.Println(step)
		}
	}

Rules only look at the propositional skeleton of formulas: modal and
quantified subformulas are opaque to them.

An Engine wraps a Prover with a deadline, failure reporting, proof identifiers
and a propositional refutation check performed with gophersat.
Check uses the same translation to tell whether formulas are consistent.
*/
package prover
