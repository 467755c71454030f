package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	arc "github.com/hashicorp/golang-lru/arc/v2"
	"go.uber.org/zap"

	"github.com/endomorphosis/dcec/dcec"
)

// DefaultCacheSize is the default number of parsed formulas a Builder remembers.
const DefaultCacheSize = 256

var connectives = map[string]dcec.Conn{
	"and":         dcec.Conjunction,
	"or":          dcec.Disjunction,
	"not":         dcec.Negation,
	"implies":     dcec.Implication,
	"ifAndOnlyIf": dcec.Biconditional,
}

var quantifiers = map[string]dcec.Quantifier{
	"forAll": dcec.ForAll,
	"exists": dcec.Exists,
}

var deonticOps = map[string]dcec.DeonticOp{
	"O":   dcec.Obligatory,
	"P":   dcec.Permitted,
	"F":   dcec.Forbidden,
	"S":   dcec.Supererogatory,
	"R":   dcec.Right,
	"L":   dcec.Liberty,
	"POW": dcec.Power,
	"IMM": dcec.Immunity,
}

var cognitiveOps = map[string]dcec.CognitiveOp{
	"B": dcec.Believes,
	"K": dcec.Knows,
	"I": dcec.Intends,
	"D": dcec.Desires,
	"G": dcec.Goal,
}

var temporalOps = map[string]dcec.TemporalOp{
	"always":     dcec.Always,
	"eventually": dcec.Eventually,
	"next":       dcec.Next,
	"until":      dcec.Until,
	"since":      dcec.Since,
}

// A Builder resolves parsed expressions into formulas against a namespace.
//
// By default, a Builder is lenient: symbols it does not know yet are declared in
// the namespace on first use, with the sort inferred by the parser, or Object if
// there is none. A strict Builder fails instead.
//
// Names of modal operators (O, P, B, K...) denote those operators, unless a
// predicate with that name was declared in the namespace.
type Builder struct {
	ns      *dcec.Namespace
	logger  *zap.Logger
	strict  bool
	cache   *arc.ARCCache[string, dcec.Formula]
	version uint64 // of the namespace the cached formulas were built against
}

// A BuilderOption configures a Builder.
type BuilderOption func(*Builder) error

// WithStrict makes the builder fail on unknown symbols rather than declaring them.
func WithStrict(strict bool) BuilderOption {
	return func(b *Builder) error {
		b.strict = strict
		return nil
	}
}

// WithCacheSize sets the number of formulas the builder remembers.
// Remembered formulas are forgotten whenever a symbol is declared in the namespace,
// since a declaration can change what a text denotes.
func WithCacheSize(size int) BuilderOption {
	return func(b *Builder) error {
		cache, err := arc.NewARC[string, dcec.Formula](size)
		if err != nil {
			return fmt.Errorf("could not create formula cache: %w", err)
		}
		b.cache = cache
		return nil
	}
}

// NewBuilder returns a builder declaring and looking up symbols in ns.
func NewBuilder(ns *dcec.Namespace, opts ...BuilderOption) (*Builder, error) {
	b := &Builder{ns: ns, logger: ns.Logger(), version: ns.Version()}
	opts = append([]BuilderOption{WithCacheSize(DefaultCacheSize)}, opts...)
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Namespace returns the namespace the builder works with.
func (b *Builder) Namespace() *dcec.Namespace { return b.ns }

// ParseFormula parses expr and builds the formula it denotes.
func (b *Builder) ParseFormula(expr string) (dcec.Formula, error) {
	b.syncCache()
	if f, ok := b.cache.Get(expr); ok {
		return f, nil
	}
	arg, atomics, err := Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", expr, err)
	}
	f, err := b.Formula(arg, atomics)
	if err != nil {
		return nil, fmt.Errorf("could not build %q: %w", expr, err)
	}
	b.syncCache()
	b.cache.Add(expr, f)
	return f, nil
}

// syncCache empties the cache if symbols were declared since it was filled.
func (b *Builder) syncCache() {
	if v := b.ns.Version(); v != b.version {
		b.cache.Purge()
		b.version = v
	}
}

// Formula builds the formula denoted by arg. atomics may be nil.
func (b *Builder) Formula(arg Arg, atomics Atomics) (dcec.Formula, error) {
	switch arg := arg.(type) {
	case Atom:
		return b.atomic(string(arg), nil, atomics)
	case *Token:
		return b.formulaToken(arg, atomics)
	default:
		return nil, fmt.Errorf("%w: unexpected argument %v", ErrSyntax, arg)
	}
}

func (b *Builder) formulaToken(t *Token, atomics Atomics) (dcec.Formula, error) {
	if _, err := b.ns.Predicate(t.Func); err == nil {
		return b.atomic(t.Func, t.Args, atomics)
	}
	if conn, ok := connectives[t.Func]; ok {
		subs, err := b.formulas(t.Args, atomics)
		if err != nil {
			return nil, err
		}
		return dcec.NewConnective(conn, subs...)
	}
	if q, ok := quantifiers[t.Func]; ok {
		return b.quantified(q, t, atomics)
	}
	if op, ok := deonticOps[t.Func]; ok {
		agent, body, err := b.modalArgs(t, atomics, false)
		if err != nil {
			return nil, err
		}
		return dcec.NewDeontic(op, body, agent)
	}
	if op, ok := cognitiveOps[t.Func]; ok {
		agent, body, err := b.modalArgs(t, atomics, true)
		if err != nil {
			return nil, err
		}
		return dcec.NewCognitive(op, agent, body)
	}
	if op, ok := temporalOps[t.Func]; ok {
		time, body, err := b.modalArgs(t, atomics, false)
		if err != nil {
			return nil, err
		}
		return dcec.NewTemporal(op, body, time)
	}
	return b.atomic(t.Func, t.Args, atomics)
}

func (b *Builder) formulas(args []Arg, atomics Atomics) ([]dcec.Formula, error) {
	res := make([]dcec.Formula, len(args))
	for i, arg := range args {
		f, err := b.Formula(arg, atomics)
		if err != nil {
			return nil, err
		}
		res[i] = f
	}
	return res, nil
}

// modalArgs splits the arguments of a modal operator into an optional term and a body.
// If termRequired is true, the term must be present.
func (b *Builder) modalArgs(t *Token, atomics Atomics, termRequired bool) (dcec.Term, dcec.Formula, error) {
	switch {
	case len(t.Args) == 1 && !termRequired:
		body, err := b.Formula(t.Args[0], atomics)
		return nil, body, err
	case len(t.Args) == 2:
		term, err := b.Term(t.Args[0], atomics)
		if err != nil {
			return nil, nil, err
		}
		body, err := b.Formula(t.Args[1], atomics)
		return term, body, err
	default:
		return nil, nil, fmt.Errorf("%w: operator %s does not accept %d argument(s)", dcec.ErrArity, t.Func, len(t.Args))
	}
}

// quantified builds q(x, y, ..., body). Variables may be written "x:Sort".
func (b *Builder) quantified(q dcec.Quantifier, t *Token, atomics Atomics) (dcec.Formula, error) {
	if len(t.Args) < 2 {
		return nil, fmt.Errorf("%w: %s expects at least one variable and a body", dcec.ErrArity, t.Func)
	}
	vars := make([]*dcec.Variable, len(t.Args)-1)
	for i, arg := range t.Args[:len(t.Args)-1] {
		atom, ok := arg.(Atom)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a variable", ErrSyntax, arg.SExpr())
		}
		v, err := b.variable(string(atom), atomics)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	body, err := b.Formula(t.Args[len(t.Args)-1], atomics)
	if err != nil {
		return nil, err
	}
	for i := len(vars) - 1; i >= 0; i-- {
		if body, err = dcec.NewQuantified(q, vars[i], body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (b *Builder) variable(decl string, atomics Atomics) (*dcec.Variable, error) {
	name, sort, typed := strings.Cut(decl, ":")
	if !typed {
		if v, err := b.ns.Variable(name); err == nil || b.strict {
			return v, err
		}
		sort = b.inferredSort(name, atomics, "Object")
	}
	if b.strict {
		if _, err := b.ns.Sort(sort); err != nil {
			return nil, err
		}
	}
	v, err := b.ns.AddVariable(name, sort)
	if err != nil {
		return nil, err
	}
	b.logger.Debug("declared variable", zap.String("name", name), zap.String("sort", sort))
	return v, nil
}

// atomic builds the predicate name applied to args, declaring the predicate if needed.
func (b *Builder) atomic(name string, args []Arg, atomics Atomics) (dcec.Formula, error) {
	terms, err := b.terms(args, atomics)
	if err != nil {
		return nil, err
	}
	pred, err := b.ns.Predicate(name)
	if err != nil {
		if b.strict || !errors.Is(err, dcec.ErrUnknownSymbol) {
			return nil, err
		}
		if pred, err = b.ns.AddPredicate(name, termSorts(terms)...); err != nil {
			return nil, err
		}
		b.logger.Debug("declared predicate", zap.Stringer("predicate", pred))
	}
	return dcec.NewAtomic(pred, terms...)
}

func (b *Builder) terms(args []Arg, atomics Atomics) ([]dcec.Term, error) {
	res := make([]dcec.Term, len(args))
	for i, arg := range args {
		t, err := b.Term(arg, atomics)
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

// Term builds the term denoted by arg. atomics may be nil.
func (b *Builder) Term(arg Arg, atomics Atomics) (dcec.Term, error) {
	switch arg := arg.(type) {
	case Atom:
		name := string(arg)
		if v, err := b.ns.Variable(name); err == nil {
			return dcec.NewVarTerm(v), nil
		}
		return b.function(name, nil, atomics)
	case *Token:
		return b.function(arg.Func, arg.Args, atomics)
	default:
		return nil, fmt.Errorf("%w: unexpected argument %v", ErrSyntax, arg)
	}
}

// function builds the function name applied to args, declaring the function if needed.
func (b *Builder) function(name string, args []Arg, atomics Atomics) (dcec.Term, error) {
	terms, err := b.terms(args, atomics)
	if err != nil {
		return nil, err
	}
	fn, err := b.ns.Function(name)
	if err != nil {
		ret := b.inferredSort(name, atomics, "Object")
		if info, ok := operators[name]; ok && info.sort == Numeric {
			ret = Numeric
		} else if _, numErr := strconv.ParseFloat(name, 64); numErr == nil {
			ret = Numeric
		} else if b.strict || !errors.Is(err, dcec.ErrUnknownSymbol) {
			return nil, err
		}
		if fn, err = b.ns.AddFunction(name, ret, termSorts(terms)...); err != nil {
			return nil, err
		}
		b.logger.Debug("declared function", zap.Stringer("function", fn))
	}
	return dcec.NewFuncTerm(fn, terms...)
}

func (b *Builder) inferredSort(name string, atomics Atomics, def string) string {
	if sort, ok := atomics[name]; ok && sort != Boolean {
		return sort
	}
	return def
}

func termSorts(terms []dcec.Term) []string {
	res := make([]string, len(terms))
	for i, t := range terms {
		res[i] = t.Sort().String()
	}
	return res
}
