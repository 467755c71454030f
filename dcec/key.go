package dcec

import (
	"strconv"
	"strings"
)

// Key returns a structural encoding of f: two formulas have the same key iff
// they are built from the same symbols in the same way.
// Unlike String, the key tells apart symbols that share a name but not a sort.
// It is meant to be used as a map key.
func Key(f Formula) string {
	var sb strings.Builder
	writeFormula(&sb, f)
	return sb.String()
}

// TermKey is the Term counterpart of Key.
func TermKey(t Term) string {
	var sb strings.Builder
	writeTerm(&sb, t)
	return sb.String()
}

// Equal is true iff f1 and f2 are structurally identical.
func Equal(f1, f2 Formula) bool {
	if f1 == f2 {
		return true
	}
	return Key(f1) == Key(f2)
}

func writeTerm(sb *strings.Builder, t Term) {
	switch t := t.(type) {
	case nil:
		sb.WriteByte('_')
	case *VarTerm:
		sb.WriteString("?")
		sb.WriteString(t.Var.key())
	case *FuncTerm:
		sb.WriteString(t.Func.Name)
		sb.WriteByte(':')
		sb.WriteString(t.Func.Return.String())
		sb.WriteByte('(')
		for i, arg := range t.Args {
			if i > 0 {
				sb.WriteByte(' ')
			}
			writeTerm(sb, arg)
		}
		sb.WriteByte(')')
	default:
		panic("invalid term type")
	}
}

func writeFormula(sb *strings.Builder, f Formula) {
	switch f := f.(type) {
	case *Atomic:
		sb.WriteString("(A ")
		sb.WriteString(f.Pred.Name)
		for _, arg := range f.Args {
			sb.WriteByte(' ')
			writeTerm(sb, arg)
		}
	case *Deontic:
		sb.WriteString("(D" + strconv.Itoa(int(f.Op)) + " ")
		writeTerm(sb, f.Agent)
		sb.WriteByte(' ')
		writeFormula(sb, f.Body)
	case *Cognitive:
		sb.WriteString("(C" + strconv.Itoa(int(f.Op)) + " ")
		writeTerm(sb, f.Agent)
		sb.WriteByte(' ')
		writeFormula(sb, f.Body)
	case *Temporal:
		sb.WriteString("(T" + strconv.Itoa(int(f.Op)) + " ")
		writeTerm(sb, f.Time)
		sb.WriteByte(' ')
		writeFormula(sb, f.Body)
	case *Connective:
		sb.WriteString("(L" + strconv.Itoa(int(f.Conn)))
		for _, sub := range f.Args {
			sb.WriteByte(' ')
			writeFormula(sb, sub)
		}
	case *Quantified:
		sb.WriteString("(Q" + strconv.Itoa(int(f.Quant)) + " ")
		sb.WriteString(f.Var.key())
		sb.WriteByte(' ')
		writeFormula(sb, f.Body)
	default:
		panic("invalid formula type")
	}
	sb.WriteByte(')')
}
