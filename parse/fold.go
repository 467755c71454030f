package parse

import "fmt"

// Atomics associates bare symbols with the sort inferred from the operators they are used with:
// operands of logical operators are Boolean, operands of arithmetic ones are Numeric.
// The first inference for a symbol wins.
type Atomics map[string]string

func (a Atomics) record(op string, operands ...Arg) {
	if a == nil {
		return
	}
	info, ok := operators[op]
	if !ok || info.sort == "" {
		return
	}
	for _, o := range operands {
		atom, ok := o.(Atom)
		if !ok || IsOperator(string(atom)) {
			continue
		}
		if _, ok := a[string(atom)]; !ok {
			a[string(atom)] = info.sort
		}
	}
}

func isOperatorArg(a Arg) bool {
	atom, ok := a.(Atom)
	return ok && IsOperator(string(atom))
}

// isPrefix is true iff no operator appears after the head of elems.
func isPrefix(elems []Arg) bool {
	for _, e := range elems[min(1, len(elems)):] {
		if isOperatorArg(e) {
			return false
		}
	}
	return true
}

// Fold folds infix operators in elems into prefix tokens, according to their precedence.
// For instance, the list "P and Q or R" is folded into the single token
// "(or (and P Q) R)".
//
// A list in prefix form, i.e a list with no operator after its first element, is returned
// unchanged: folding is idempotent. Otherwise, the tightest operator is folded with its
// operands, and the process starts over until no operator is left.
// A sub with no left operand is read as a unary negate.
// Fold fails with ErrDanglingOperator if an operator lacks an operand.
//
// Operand sorts are recorded in atomics, if it is not nil.
func Fold(elems []Arg, atomics Atomics) ([]Arg, error) {
	if isPrefix(elems) {
		if len(elems) > 0 {
			if head, ok := elems[0].(Atom); ok {
				atomics.record(string(head), elems[1:]...)
			}
		}
		return elems, nil
	}
	list := make([]Arg, len(elems))
	copy(list, elems)
	for i, e := range list {
		if e == Atom("sub") && (i == 0 || isOperatorArg(list[i-1])) {
			list[i] = Atom("negate")
		}
	}
	for {
		idx := nextOperator(list)
		if idx < 0 {
			return list, nil
		}
		var err error
		if list, err = foldAt(list, idx, atomics); err != nil {
			return nil, err
		}
	}
}

// nextOperator returns the index of the operator to fold first, or -1 if there is none.
func nextOperator(list []Arg) int {
	best, bestLevel := -1, 0
	for i, e := range list {
		if !isOperatorArg(e) {
			continue
		}
		info := operators[string(e.(Atom))]
		if best < 0 || info.level < bestLevel || (info.level == bestLevel && info.right) {
			best, bestLevel = i, info.level
		}
	}
	return best
}

func foldAt(list []Arg, i int, atomics Atomics) ([]Arg, error) {
	op := string(list[i].(Atom))
	if i+1 >= len(list) || isOperatorArg(list[i+1]) {
		return nil, fmt.Errorf("%w: %q has no right operand", ErrDanglingOperator, op)
	}
	res := make([]Arg, 0, len(list))
	if operators[op].unary {
		operand := list[i+1]
		atomics.record(op, operand)
		res = append(res, list[:i]...)
		res = append(res, NewToken(op, operand))
		return append(res, list[i+2:]...), nil
	}
	if i == 0 || isOperatorArg(list[i-1]) {
		return nil, fmt.Errorf("%w: %q has no left operand", ErrDanglingOperator, op)
	}
	left, right := list[i-1], list[i+1]
	atomics.record(op, left, right)
	res = append(res, list[:i-1]...)
	res = append(res, NewToken(op, left, right))
	return append(res, list[i+2:]...), nil
}
