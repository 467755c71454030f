package parse

import "strings"

// glyphs maps infix glyphs to canonical operator names.
// Longer glyphs come first, so that "<->" is never read as "<" followed by "->".
var glyphs = strings.NewReplacer(
	"<->", " ifAndOnlyIf ",
	"->", " implies ",
	"<=", " lessOrEqual ",
	">=", " greaterOrEqual ",
	"==", " equals ",
	"↔", " ifAndOnlyIf ",
	"→", " implies ",
	"∧", " and ",
	"∨", " or ",
	"¬", " not ",
	"~", " not ",
	"&", " and ",
	"|", " or ",
	"<", " lessThan ",
	">", " greaterThan ",
	"+", " add ",
	"-", " sub ",
	"*", " multiply ",
	"/", " divide ",
	"^", " exponent ",
	"%", " modulus ",
	"□", " always ",
	"◊", " eventually ",
)

// ReplaceGlyphs replaces infix glyphs in s by the name of the operator they denote.
func ReplaceGlyphs(s string) string {
	return glyphs.Replace(s)
}

var synonyms = map[string]string{
	"forall":  "forAll",
	"Forall":  "forAll",
	"ForAll":  "forAll",
	"Exists":  "exists",
	"Time":    "Moment",
	"if":      "implies",
	"Implies": "implies",
	"iff":     "ifAndOnlyIf",
	"AND":     "and",
	"OR":      "or",
	"NOT":     "not",
}

// ReplaceSynonyms canonicalizes surface synonyms in tokens, in place.
func ReplaceSynonyms(tokens []string) {
	for i, tok := range tokens {
		if canon, ok := synonyms[tok]; ok {
			tokens[i] = canon
		}
	}
}

// Operator sorts, as recorded in atomics.
const (
	Boolean = "Boolean"
	Numeric = "Numeric"
)

type opInfo struct {
	level int    // lower binds tighter
	unary bool   // prefix unary operator
	right bool   // right-associative
	sort  string // sort inferred for bare operands, if any
}

var operators = map[string]opInfo{
	"negate":         {level: 0, unary: true, right: true, sort: Numeric},
	"exponent":       {level: 1, right: true, sort: Numeric},
	"multiply":       {level: 2, sort: Numeric},
	"divide":         {level: 2, sort: Numeric},
	"modulus":        {level: 2, sort: Numeric},
	"add":            {level: 3, sort: Numeric},
	"sub":            {level: 3, sort: Numeric},
	"lessThan":       {level: 4, sort: Numeric},
	"greaterThan":    {level: 4, sort: Numeric},
	"lessOrEqual":    {level: 4, sort: Numeric},
	"greaterOrEqual": {level: 4, sort: Numeric},
	"equals":         {level: 4},
	"not":            {level: 5, unary: true, right: true, sort: Boolean},
	"and":            {level: 6, sort: Boolean},
	"or":             {level: 7, sort: Boolean},
	"implies":        {level: 8, right: true, sort: Boolean},
	"ifAndOnlyIf":    {level: 8, right: true, sort: Boolean},
}

// IsOperator is true iff name is the canonical name of an infix or prefix operator.
func IsOperator(name string) bool {
	_, ok := operators[name]
	return ok
}

func canonical(word string) string {
	if canon, ok := synonyms[word]; ok {
		return canon
	}
	return word
}

// isBinaryWord is true iff a bare word denotes a binary operator, before or after synonym replacement.
func isBinaryWord(word string) bool {
	info, ok := operators[canonical(word)]
	return ok && !info.unary
}
