package parse

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean prepares raw input for tokenization. It
//
//   - normalizes the input to Unicode NFC, so that composed and decomposed glyphs match,
//   - strips ';' comments up to the end of each line,
//   - collapses whitespace, and removes it after '(', before ')' and around ',',
//   - checks that parentheses are balanced,
//   - tucks loose call syntax, so that "f (a b)" becomes "f(a b)",
//   - removes redundant doubled parentheses, as in "((a))".
//
// It fails with ErrUnbalancedParentheses if parentheses do not match.
func Clean(s string) (string, error) {
	s = norm.NFC.String(s)
	s = stripComments(s)
	s = stripWhitespace(s)
	if _, err := matchParens(s); err != nil {
		return "", err
	}
	s = tuckFunctions(s)
	match, _ := matchParens(s)
	return consolidateParens(s, match), nil
}

func stripComments(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, ';'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	return strings.Join(lines, " ")
}

var spaceTrimmer = strings.NewReplacer("( ", "(", " )", ")", " ,", ",", ", ", ",")

func stripWhitespace(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	// A single pass cannot handle overlapping patterns like "( (".
	for {
		trimmed := spaceTrimmer.Replace(s)
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// matchParens returns, for each byte index of an opening parenthesis, the index of the
// matching closing one, and the reverse for closing parentheses.
func matchParens(s string) (map[int]int, error) {
	match := make(map[int]int)
	var stack []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: unexpected ')' at position %d", ErrUnbalancedParentheses, i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			match[open] = i
			match[i] = open
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: '(' at position %d is never closed", ErrUnbalancedParentheses, stack[0])
	}
	return match, nil
}

// consolidateParens drops the outer pair of "((...))" when both pairs enclose the same text.
// The outer pair is kept when it is a call, since "f((a b))" and "f(a b)" differ,
// and so is the body of "O[jack]((a b))".
func consolidateParens(s string, match map[int]int) string {
	drop := make(map[int]bool)
	for i := 0; i+1 < len(s); i++ {
		if s[i] == '(' && s[i+1] == '(' && match[i+1] == match[i]-1 && (i == 0 || !isWordByte(s[i-1]) && s[i-1] != ']') {
			drop[i] = true
			drop[match[i]] = true
		}
	}
	if len(drop) == 0 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if !drop[i] {
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// tuckFunctions removes the space between a symbol and an opening parenthesis when
// the symbol heads a call, so that "f (a b)" becomes "f(a b)".
// A symbol heads a call when it starts the input, follows ',' or follows an infix
// operator. In "(and P (or Q R))", P is an argument and is left alone, and so is O
// in "(O (Lie jack))". Operator names only head calls at the start of the input
// or after ',', so that "P and (Q or R)" keeps its meaning.
func tuckFunctions(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && i+1 < len(s) && s[i+1] == '(' && i > 0 && isWordByte(s[i-1]) {
			start := i
			for start > 0 && isWordByte(s[start-1]) {
				start--
			}
			if headsCall(s[:start], isBinaryWord(s[start:i])) {
				continue
			}
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// headsCall is true iff a symbol following prefix is in a call head position.
func headsCall(prefix string, operator bool) bool {
	if prefix == "" {
		return true
	}
	last := prefix[len(prefix)-1]
	if last == ',' {
		return true
	}
	if last != ' ' || operator {
		return false
	}
	prefix = prefix[:len(prefix)-1]
	if prefix == "" {
		return true
	}
	if last := prefix[len(prefix)-1]; !isWordByte(last) {
		return last != ')'
	}
	start := len(prefix)
	for start > 0 && isWordByte(prefix[start-1]) {
		start--
	}
	// An operator heading an S-expression, as in "(and P (Q))", takes arguments, not calls.
	return IsOperator(canonical(prefix[start:])) && (start == 0 || prefix[start-1] != '(')
}

// isWordByte is true for bytes that can be part of a symbol, including UTF-8 continuation bytes.
func isWordByte(b byte) bool {
	return b >= 0x80 || b == '_' || b == '.' || b == '\'' ||
		('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9')
}
