package dcec

import "strings"

// A Sort is a type tag for terms. Sorts form a single-parent hierarchy.
type Sort struct {
	Name   string
	Parent *Sort // nil for a root sort
}

func (s *Sort) String() string {
	if s == nil {
		return "?"
	}
	return s.Name
}

// IsSubtypeOf is true iff s is other or one of its descendants.
// A nil sort is a subtype of nothing.
func (s *Sort) IsSubtypeOf(other *Sort) bool {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur == other || (other != nil && cur.Name == other.Name) {
			return true
		}
	}
	return false
}

// A Variable is a named, sorted variable.
type Variable struct {
	Name string
	Sort *Sort
}

func (v *Variable) String() string {
	return v.Name
}

// Equal is true iff both variables have the same name and the same sort.
func (v *Variable) Equal(other *Variable) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil {
		return false
	}
	return v.Name == other.Name && v.Sort.String() == other.Sort.String()
}

// key identifies the variable in a VarSet.
func (v *Variable) key() string {
	return v.Name + ":" + v.Sort.String()
}

// A Function maps terms of the given argument sorts to a term of sort Return.
// A function with no argument is a constant.
type Function struct {
	Name   string
	Args   []*Sort
	Return *Sort
}

// Arity is the number of arguments the function expects.
func (f *Function) Arity() int { return len(f.Args) }

func (f *Function) String() string {
	return f.Name + "(" + sortNames(f.Args) + ") -> " + f.Return.String()
}

// A Predicate is a boolean-valued symbol over terms of the given sorts.
// A predicate with no argument is a propositional atom.
type Predicate struct {
	Name string
	Args []*Sort
}

// Arity is the number of arguments the predicate expects.
func (p *Predicate) Arity() int { return len(p.Args) }

func (p *Predicate) String() string {
	return p.Name + "(" + sortNames(p.Args) + ")"
}

func sortNames(sorts []*Sort) string {
	names := make([]string, len(sorts))
	for i, s := range sorts {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}

func sameSorts(s1, s2 []*Sort) bool {
	if len(s1) != len(s2) {
		return false
	}
	for i := range s1 {
		if s1[i].String() != s2[i].String() {
			return false
		}
	}
	return true
}
