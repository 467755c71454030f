package prover

import "github.com/endomorphosis/dcec/dcec"

// An index associates the key of formulas with their positions in a formula list.
type index map[string][]int

func (x index) add(f dcec.Formula, i int) {
	k := dcec.Key(f)
	x[k] = append(x[k], i)
}

// first returns the position of the first formula equal to f.
func (x index) first(f dcec.Formula) (int, bool) {
	if is := x[dcec.Key(f)]; len(is) > 0 {
		return is[0], true
	}
	return 0, false
}

func (x index) all(f dcec.Formula) []int {
	return x[dcec.Key(f)]
}

// indexFormulas indexes each formula in fs.
func indexFormulas(fs []dcec.Formula) index {
	x := make(index, len(fs))
	for i, f := range fs {
		x.add(f, i)
	}
	return x
}

// indexImplications indexes the implications in fs by their antecedent and by their consequent.
func indexImplications(fs []dcec.Formula) (byAntecedent, byConsequent index) {
	byAntecedent, byConsequent = make(index), make(index)
	for i, f := range fs {
		if p, q, ok := binary(f, dcec.Implication); ok {
			byAntecedent.add(p, i)
			byConsequent.add(q, i)
		}
	}
	return byAntecedent, byConsequent
}
