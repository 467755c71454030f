// Package parse turns DCEC surface syntax into formulas.
//
// The pipeline has four stages:
//
//   - Clean strips comments and whitespace, checks parentheses and tucks
//     loose call syntax, so that "f (a b) ; comment" becomes "f(a b)";
//   - ReplaceGlyphs and ReplaceSynonyms map infix glyphs and surface synonyms
//     to canonical operator names ("->" becomes "implies", "forall" becomes "forAll");
//   - Fold resolves operator precedence, turning a flat, possibly infix list
//     into prefix form;
//   - a Builder resolves the resulting Token tree against a dcec.Namespace.
//
// Both S-expressions and F-expressions are accepted, and may be mixed:
//
//	(implies (and P Q) R)
//	implies(and(P, Q), R)
//	P & Q -> R
//
// all denote the same formula.
// Operators are, from highest to lowest priority:
//
//   - unary minus and exponentiation,
//   - multiply, divide and modulus, then add and sub,
//   - comparisons,
//   - not,
//   - and,
//   - or,
//   - implies and ifAndOnlyIf, which are right-associative.
package parse
