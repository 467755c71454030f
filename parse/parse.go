package parse

import (
	"fmt"
	"strings"
)

type lexeme struct {
	text  string
	pos   int
	call  bool // a symbol immediately followed by '('
	index bool // a symbol followed by '[', as in "O[jack](P)"
}

// tokenize splits a cleaned, glyph-free string into symbols, parentheses, brackets and commas.
// Synonyms are canonicalized along the way.
func tokenize(s string) []lexeme {
	var res []lexeme
	i := 0
	for i < len(s) {
		switch c := s[i]; c {
		case ' ', '\t':
			i++
		case '(', ')', ',', '[', ']':
			res = append(res, lexeme{text: string(c), pos: i})
			i++
		default:
			start := i
			for i < len(s) && !strings.ContainsRune(" \t(),[]", rune(s[i])) {
				i++
			}
			lex := lexeme{text: s[start:i], pos: start, call: i < len(s) && s[i] == '('}
			// Glyph replacement pads operator names, so "□[t]" reaches here as "always [t]".
			j := i
			for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
				j++
			}
			lex.index = j < len(s) && s[j] == '['
			res = append(res, lex)
		}
	}
	words := make([]string, len(res))
	for i, lex := range res {
		words[i] = lex.text
	}
	ReplaceSynonyms(words)
	for i := range res {
		res[i].text = words[i]
	}
	return res
}

type parser struct {
	lexemes []lexeme
	idx     int
	atomics Atomics
}

// Parse parses a DCEC expression and returns its prefix tree, along with the
// sorts inferred for bare symbols.
// The returned Arg is an Atom if the expression is a single symbol, a *Token otherwise.
func Parse(expr string) (Arg, Atomics, error) {
	cleaned, err := Clean(expr)
	if err != nil {
		return nil, nil, err
	}
	p := parser{lexemes: tokenize(ReplaceGlyphs(cleaned)), atomics: make(Atomics)}
	parts, err := p.parseSeq("")
	if err != nil {
		return nil, nil, err
	}
	if len(parts) != 1 {
		return nil, nil, fmt.Errorf("%w: unexpected ',' at top level", ErrSyntax)
	}
	arg, err := p.group(parts[0])
	if err != nil {
		return nil, nil, err
	}
	return arg, p.atomics, nil
}

// parseSeq reads elements until closer, which is ")", "]", or "" for the end of input.
// It returns the comma-separated parts it read.
func (p *parser) parseSeq(closer string) ([][]Arg, error) {
	parts := [][]Arg{nil}
	for p.idx < len(p.lexemes) {
		lex := p.lexemes[p.idx]
		p.idx++
		switch {
		case lex.text == ")":
			if closer != ")" {
				return nil, fmt.Errorf("%w: unexpected ')' at position %d", ErrUnbalancedParentheses, lex.pos)
			}
			return parts, nil
		case lex.text == "]":
			if closer != "]" {
				return nil, fmt.Errorf("%w: unexpected ']' at position %d", ErrSyntax, lex.pos)
			}
			return parts, nil
		case lex.text == "[":
			return nil, fmt.Errorf("%w: '[' at position %d does not follow a modal operator", ErrSyntax, lex.pos)
		case lex.text == ",":
			parts = append(parts, nil)
		case lex.text == "(":
			sub, err := p.parseSeq(")")
			if err != nil {
				return nil, err
			}
			if len(sub) != 1 {
				return nil, fmt.Errorf("%w: unexpected ',' in group at position %d", ErrSyntax, lex.pos)
			}
			arg, err := p.group(sub[0])
			if err != nil {
				return nil, err
			}
			parts[len(parts)-1] = append(parts[len(parts)-1], arg)
		case lex.call:
			p.idx++ // skip '('
			sub, err := p.parseSeq(")")
			if err != nil {
				return nil, err
			}
			tok, err := p.call(lex.text, sub)
			if err != nil {
				return nil, err
			}
			parts[len(parts)-1] = append(parts[len(parts)-1], tok)
		case lex.index:
			tok, err := p.indexed(lex)
			if err != nil {
				return nil, err
			}
			parts[len(parts)-1] = append(parts[len(parts)-1], tok)
		default:
			parts[len(parts)-1] = append(parts[len(parts)-1], Atom(lex.text))
		}
	}
	switch closer {
	case ")":
		return nil, fmt.Errorf("%w: missing ')' at end of input", ErrUnbalancedParentheses)
	case "]":
		return nil, fmt.Errorf("%w: missing ']' at end of input", ErrSyntax)
	}
	return parts, nil
}

// indexed reads "op[t](args)", the rendering of a modal formula with an agent or a time,
// and returns the token op(t, args).
func (p *parser) indexed(op lexeme) (*Token, error) {
	p.idx++ // skip '['
	sub, err := p.parseSeq("]")
	if err != nil {
		return nil, err
	}
	if len(sub) != 1 || len(sub[0]) == 0 {
		return nil, fmt.Errorf("%w: %s expects a single term between brackets", ErrSyntax, op.text)
	}
	term, err := p.group(sub[0])
	if err != nil {
		return nil, err
	}
	if p.idx >= len(p.lexemes) || p.lexemes[p.idx].text != "(" {
		return nil, fmt.Errorf("%w: %s[...] must be followed by '('", ErrSyntax, op.text)
	}
	p.idx++
	if sub, err = p.parseSeq(")"); err != nil {
		return nil, err
	}
	tok, err := p.call(op.text, sub)
	if err != nil {
		return nil, err
	}
	tok.Args = append([]Arg{term}, tok.Args...)
	return tok, nil
}

// group folds the content of a parenthesized group into a single Arg.
func (p *parser) group(elems []Arg) (Arg, error) {
	if len(elems) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	folded, err := Fold(elems, p.atomics)
	if err != nil {
		return nil, err
	}
	if len(folded) == 1 {
		return folded[0], nil
	}
	head, ok := folded[0].(Atom)
	if !ok {
		return nil, fmt.Errorf("%w: %s cannot be applied to arguments", ErrSyntax, folded[0].SExpr())
	}
	p.atomics.record(string(head), folded[1:]...)
	return NewToken(string(head), folded[1:]...), nil
}

// call builds the token fn(parts...). Arguments are either comma-separated,
// as in "f(a,b)", or space-separated, as in "f(a b)".
func (p *parser) call(fn string, parts [][]Arg) (*Token, error) {
	if len(parts) == 1 {
		if len(parts[0]) == 0 {
			return NewToken(fn), nil
		}
		folded, err := Fold(parts[0], p.atomics)
		if err != nil {
			return nil, err
		}
		if len(folded) > 1 && !isOperatorArg(folded[0]) {
			p.atomics.record(fn, folded...)
			return NewToken(fn, folded...), nil
		}
		arg, err := p.group(folded)
		if err != nil {
			return nil, err
		}
		p.atomics.record(fn, arg)
		return NewToken(fn, arg), nil
	}
	args := make([]Arg, len(parts))
	for i, part := range parts {
		if len(part) == 0 {
			return nil, fmt.Errorf("%w: empty argument %d of %s", ErrSyntax, i+1, fn)
		}
		arg, err := p.group(part)
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	p.atomics.record(fn, args...)
	return NewToken(fn, args...), nil
}
