package dcec

import (
	"fmt"
	"strings"
)

// A Formula is one of *Atomic, *Deontic, *Cognitive, *Temporal, *Connective or *Quantified.
type Formula interface {
	// String returns the canonical rendering of the formula.
	String() string
	isFormula()
}

// DeonticOp is a deontic modality.
type DeonticOp byte

const (
	Obligatory     DeonticOp = iota + 1 // O
	Permitted                           // P
	Forbidden                           // F
	Supererogatory                      // S
	Right                               // R
	Liberty                             // L
	Power                               // POW
	Immunity                            // IMM
)

var deonticSymbols = [...]string{"", "O", "P", "F", "S", "R", "L", "POW", "IMM"}

func (op DeonticOp) valid() bool { return op >= Obligatory && op <= Immunity }

func (op DeonticOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("DeonticOp(%d)", op)
	}
	return deonticSymbols[op]
}

// CognitiveOp is a mental-state modality.
type CognitiveOp byte

const (
	Believes CognitiveOp = iota + 1 // B
	Knows                           // K
	Intends                         // I
	Desires                         // D
	Goal                            // G
)

var cognitiveSymbols = [...]string{"", "B", "K", "I", "D", "G"}

func (op CognitiveOp) valid() bool { return op >= Believes && op <= Goal }

func (op CognitiveOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("CognitiveOp(%d)", op)
	}
	return cognitiveSymbols[op]
}

// TemporalOp is a temporal modality.
type TemporalOp byte

const (
	Always     TemporalOp = iota + 1 // □
	Eventually                       // ◊
	Next                             // X
	Until                            // U
	Since                            // S
)

var temporalSymbols = [...]string{"", "□", "◊", "X", "U", "S"}

func (op TemporalOp) valid() bool { return op >= Always && op <= Since }

func (op TemporalOp) String() string {
	if !op.valid() {
		return fmt.Sprintf("TemporalOp(%d)", op)
	}
	return temporalSymbols[op]
}

// Conn is a propositional connective.
type Conn byte

const (
	Conjunction   Conn = iota + 1 // ∧
	Disjunction                   // ∨
	Negation                      // ¬
	Implication                   // →
	Biconditional                 // ↔
)

var connSymbols = [...]string{"", "∧", "∨", "¬", "→", "↔"}

func (c Conn) valid() bool { return c >= Conjunction && c <= Biconditional }

func (c Conn) String() string {
	if !c.valid() {
		return fmt.Sprintf("Conn(%d)", c)
	}
	return connSymbols[c]
}

// arityOK checks the number of subformulas a connective accepts:
// exactly 1 for ¬, at least 2 for ∧ and ∨, exactly 2 for → and ↔.
func (c Conn) arityOK(n int) bool {
	switch c {
	case Negation:
		return n == 1
	case Conjunction, Disjunction:
		return n >= 2
	default:
		return n == 2
	}
}

// Quantifier is either Exists or ForAll.
type Quantifier byte

const (
	Exists Quantifier = iota + 1 // ∃
	ForAll                       // ∀
)

func (q Quantifier) valid() bool { return q == Exists || q == ForAll }

func (q Quantifier) String() string {
	switch q {
	case Exists:
		return "∃"
	case ForAll:
		return "∀"
	default:
		return fmt.Sprintf("Quantifier(%d)", q)
	}
}

// An Atomic formula is a predicate applied to terms.
type Atomic struct {
	Pred *Predicate
	Args []Term
}

// NewAtomic applies p to args. It fails with ErrArity if the number of args
// does not match the arity of p.
func NewAtomic(p *Predicate, args ...Term) (*Atomic, error) {
	if len(args) != p.Arity() {
		return nil, fmt.Errorf("%w: predicate %s expects %d argument(s), got %d", ErrArity, p.Name, p.Arity(), len(args))
	}
	return &Atomic{Pred: p, Args: args}, nil
}

func (a *Atomic) String() string {
	if len(a.Args) == 0 {
		return a.Pred.Name
	}
	return a.Pred.Name + "(" + joinTerms(a.Args) + ")"
}

func (*Atomic) isFormula() {}

// A Deontic formula is a normative modality over a body, optionally relative to an agent.
type Deontic struct {
	Op    DeonticOp
	Body  Formula
	Agent Term // may be nil
}

// NewDeontic builds op(body), or op[agent](body) if agent is not nil.
func NewDeontic(op DeonticOp, body Formula, agent Term) (*Deontic, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, op)
	}
	return &Deontic{Op: op, Body: body, Agent: agent}, nil
}

func (d *Deontic) String() string {
	if d.Agent == nil {
		return d.Op.String() + "(" + d.Body.String() + ")"
	}
	return d.Op.String() + "[" + d.Agent.String() + "](" + d.Body.String() + ")"
}

func (*Deontic) isFormula() {}

// A Cognitive formula is a mental state of an agent about a body.
type Cognitive struct {
	Op    CognitiveOp
	Agent Term
	Body  Formula
}

// NewCognitive builds op(agent, body).
func NewCognitive(op CognitiveOp, agent Term, body Formula) (*Cognitive, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, op)
	}
	if agent == nil {
		return nil, fmt.Errorf("%w: %v requires an agent", ErrArity, op)
	}
	return &Cognitive{Op: op, Agent: agent, Body: body}, nil
}

func (c *Cognitive) String() string {
	return c.Op.String() + "(" + c.Agent.String() + ", " + c.Body.String() + ")"
}

func (*Cognitive) isFormula() {}

// A Temporal formula is a temporal modality over a body, optionally anchored at a time.
type Temporal struct {
	Op   TemporalOp
	Body Formula
	Time Term // may be nil
}

// NewTemporal builds op(body), or op[time](body) if time is not nil.
func NewTemporal(op TemporalOp, body Formula, time Term) (*Temporal, error) {
	if !op.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, op)
	}
	return &Temporal{Op: op, Body: body, Time: time}, nil
}

func (t *Temporal) String() string {
	if t.Time == nil {
		return t.Op.String() + "(" + t.Body.String() + ")"
	}
	return t.Op.String() + "[" + t.Time.String() + "](" + t.Body.String() + ")"
}

func (*Temporal) isFormula() {}

// A Connective formula combines subformulas with a propositional connective.
type Connective struct {
	Conn Conn
	Args []Formula
}

// NewConnective combines args with c. It fails with ErrConnectiveArity if
// the number of args is not acceptable for c.
func NewConnective(c Conn, args ...Formula) (*Connective, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, c)
	}
	if !c.arityOK(len(args)) {
		return nil, fmt.Errorf("%w: %v with %d subformula(s)", ErrConnectiveArity, c, len(args))
	}
	return &Connective{Conn: c, Args: args}, nil
}

// Not returns ¬f.
func Not(f Formula) *Connective {
	return &Connective{Conn: Negation, Args: []Formula{f}}
}

// And returns the conjunction of its arguments.
func And(f1, f2 Formula, rest ...Formula) *Connective {
	return &Connective{Conn: Conjunction, Args: append([]Formula{f1, f2}, rest...)}
}

// Or returns the disjunction of its arguments.
func Or(f1, f2 Formula, rest ...Formula) *Connective {
	return &Connective{Conn: Disjunction, Args: append([]Formula{f1, f2}, rest...)}
}

// Implies returns f1 → f2.
func Implies(f1, f2 Formula) *Connective {
	return &Connective{Conn: Implication, Args: []Formula{f1, f2}}
}

// Iff returns f1 ↔ f2.
func Iff(f1, f2 Formula) *Connective {
	return &Connective{Conn: Biconditional, Args: []Formula{f1, f2}}
}

func (c *Connective) String() string {
	if c.Conn == Negation {
		return "¬" + c.Args[0].String()
	}
	strs := make([]string, len(c.Args))
	for i, f := range c.Args {
		strs[i] = f.String()
	}
	return "(" + strings.Join(strs, " "+c.Conn.String()+" ") + ")"
}

func (*Connective) isFormula() {}

// A Quantified formula binds a variable in its body.
type Quantified struct {
	Quant Quantifier
	Var   *Variable
	Body  Formula
}

// NewQuantified builds q v (body).
func NewQuantified(q Quantifier, v *Variable, body Formula) (*Quantified, error) {
	if !q.valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOperator, q)
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %v requires a variable", ErrArity, q)
	}
	return &Quantified{Quant: q, Var: v, Body: body}, nil
}

func (q *Quantified) String() string {
	return q.Quant.String() + q.Var.Name + "(" + q.Body.String() + ")"
}

func (*Quantified) isFormula() {}
