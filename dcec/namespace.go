package dcec

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"go.uber.org/zap"
)

// maxSuggestDistance is the largest edit distance for which an unknown
// symbol gets a "did you mean" hint.
const maxSuggestDistance = 2

// A Namespace is a symbol table: it registers sorts, variables, functions and predicates.
// It is mutable and not safe for concurrent use; callers sharing one across
// goroutines must synchronize themselves.
type Namespace struct {
	logger  *zap.Logger
	sorts   map[string]*Sort
	vars    map[string]*Variable
	funcs   map[string]*Function
	preds   map[string]*Predicate
	version uint64 // incremented by every declaration
}

// builtinSorts are the DCEC sorts every namespace starts with, parents first.
var builtinSorts = [][2]string{
	{"Object", ""},
	{"Agent", "Object"},
	{"Self", "Agent"},
	{"ActionType", ""},
	{"Event", ""},
	{"Action", "Event"},
	{"Moment", ""},
	{"Boolean", ""},
	{"Fluent", ""},
	{"Numeric", ""},
}

// NewNamespace returns a namespace holding the builtin DCEC sorts.
// If logger is nil, nothing is logged.
func NewNamespace(logger *zap.Logger) *Namespace {
	if logger == nil {
		logger = zap.NewNop()
	}
	ns := &Namespace{
		logger: logger,
		sorts:  make(map[string]*Sort),
		vars:   make(map[string]*Variable),
		funcs:  make(map[string]*Function),
		preds:  make(map[string]*Predicate),
	}
	for _, s := range builtinSorts {
		if _, err := ns.AddSort(s[0], s[1]); err != nil {
			panic(err)
		}
	}
	return ns
}

// Logger returns the logger associated with the namespace.
func (ns *Namespace) Logger() *zap.Logger { return ns.logger }

// Version changes every time a symbol or a sort is declared.
func (ns *Namespace) Version() uint64 { return ns.version }

// AddSort declares a sort. parent is either empty or the name of an already declared sort.
// Declaring an existing sort again with the same parent is a no-op.
func (ns *Namespace) AddSort(name, parent string) (*Sort, error) {
	var p *Sort
	if parent != "" {
		var err error
		if p, err = ns.Sort(parent); err != nil {
			return nil, fmt.Errorf("could not declare sort %q: %w", name, err)
		}
	}
	if s, ok := ns.sorts[name]; ok {
		if s.Parent != p {
			return nil, fmt.Errorf("%w: sort %q already declared with parent %v", ErrDuplicateSymbol, name, s.Parent)
		}
		return s, nil
	}
	s := &Sort{Name: name, Parent: p}
	ns.sorts[name] = s
	ns.version++
	return s, nil
}

// Sort returns the sort with the given name.
func (ns *Namespace) Sort(name string) (*Sort, error) {
	if s, ok := ns.sorts[name]; ok {
		return s, nil
	}
	return nil, ns.unknown("sort", name, keys(ns.sorts))
}

// AddVariable declares a variable of the given sort.
func (ns *Namespace) AddVariable(name, sortName string) (*Variable, error) {
	s, err := ns.Sort(sortName)
	if err != nil {
		return nil, fmt.Errorf("could not declare variable %q: %w", name, err)
	}
	if v, ok := ns.vars[name]; ok {
		if v.Sort != s {
			return nil, fmt.Errorf("%w: variable %q already declared with sort %v", ErrDuplicateSymbol, name, v.Sort)
		}
		return v, nil
	}
	v := &Variable{Name: name, Sort: s}
	ns.vars[name] = v
	ns.version++
	return v, nil
}

// Variable returns the variable with the given name.
func (ns *Namespace) Variable(name string) (*Variable, error) {
	if v, ok := ns.vars[name]; ok {
		return v, nil
	}
	return nil, ns.unknown("variable", name, keys(ns.vars))
}

// AddFunction declares a function returning sort ret and taking arguments of the given sorts.
func (ns *Namespace) AddFunction(name, ret string, args ...string) (*Function, error) {
	r, err := ns.Sort(ret)
	if err != nil {
		return nil, fmt.Errorf("could not declare function %q: %w", name, err)
	}
	argSorts, err := ns.sortList(args)
	if err != nil {
		return nil, fmt.Errorf("could not declare function %q: %w", name, err)
	}
	if f, ok := ns.funcs[name]; ok {
		if f.Return != r || !sameSorts(f.Args, argSorts) {
			return nil, fmt.Errorf("%w: function %q already declared as %v", ErrDuplicateSymbol, name, f)
		}
		return f, nil
	}
	f := &Function{Name: name, Args: argSorts, Return: r}
	ns.funcs[name] = f
	ns.version++
	return f, nil
}

// Function returns the function with the given name.
func (ns *Namespace) Function(name string) (*Function, error) {
	if f, ok := ns.funcs[name]; ok {
		return f, nil
	}
	return nil, ns.unknown("function", name, keys(ns.funcs))
}

// AddPredicate declares a predicate over arguments of the given sorts.
func (ns *Namespace) AddPredicate(name string, args ...string) (*Predicate, error) {
	argSorts, err := ns.sortList(args)
	if err != nil {
		return nil, fmt.Errorf("could not declare predicate %q: %w", name, err)
	}
	if p, ok := ns.preds[name]; ok {
		if !sameSorts(p.Args, argSorts) {
			return nil, fmt.Errorf("%w: predicate %q already declared as %v", ErrDuplicateSymbol, name, p)
		}
		return p, nil
	}
	p := &Predicate{Name: name, Args: argSorts}
	ns.preds[name] = p
	ns.version++
	return p, nil
}

// Predicate returns the predicate with the given name.
func (ns *Namespace) Predicate(name string) (*Predicate, error) {
	if p, ok := ns.preds[name]; ok {
		return p, nil
	}
	return nil, ns.unknown("predicate", name, keys(ns.preds))
}

// Substitute replaces the free occurrences of v by t in f, like the package-level Substitute.
// Each detected variable capture is logged as a warning.
func (ns *Namespace) Substitute(f Formula, v *Variable, t Term) Formula {
	res, captures := Substitute(f, v, t)
	for _, c := range captures {
		ns.logger.Warn("variable capture during substitution",
			zap.String("variable", v.Name),
			zap.String("term", t.String()),
			zap.String("binder", c.Binder.Name),
			zap.String("formula", c.Formula.String()))
	}
	return res
}

func (ns *Namespace) sortList(names []string) ([]*Sort, error) {
	res := make([]*Sort, len(names))
	for i, name := range names {
		s, err := ns.Sort(name)
		if err != nil {
			return nil, err
		}
		res[i] = s
	}
	return res, nil
}

func (ns *Namespace) unknown(kind, name string, known []string) error {
	if hint := suggest(name, known); hint != "" {
		return fmt.Errorf("%w: %s %q (did you mean %q?)", ErrUnknownSymbol, kind, name, hint)
	}
	return fmt.Errorf("%w: %s %q", ErrUnknownSymbol, kind, name)
}

func keys[T any](m map[string]T) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// suggest returns the candidate closest to name, or "" if none is close enough.
func suggest(name string, candidates []string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
