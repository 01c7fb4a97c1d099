package generator

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// The type speller turns the token stream of a C++ type back into a
// canonical source spelling. String literals and comments never reach it;
// cppast.LexTokens consumes those states while tokenizing, so the scanner
// here only tracks bracket depth.

// isCloseRun reports whether tok is a run of one or more '>' characters.
// Adjacent closing angle brackets surface as a single token (">>", ">>>")
// and count as that many independent closes.
func isCloseRun(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] != '>' {
			return false
		}
	}
	return true
}

// spellTokens produces the canonical spelling of a type token stream.
// Nested template arguments, scope-resolution names, pointer and reference
// suffixes and const in every position survive byte-exact modulo spacing.
// Unbalanced brackets or tokens that cannot occur in a type yield
// ErrUnsupportedType.
func spellTokens(toks []string) (string, error) {
	if len(toks) == 0 {
		return "", errors.Errorf("%w: empty type", ErrUnsupportedType)
	}
	angle, paren, bracket := 0, 0, 0
	var sb strings.Builder
	prev := ""
	for _, tok := range toks {
		switch {
		case tok == "...":
			return "", errors.Errorf("%w: variadic parameter", ErrUnsupportedType)
		case tok == ">=" || tok == ">>=":
			return "", errors.Errorf("%w: token %q in type position", ErrUnsupportedType, tok)
		case tok == "<":
			angle++
		case isCloseRun(tok):
			angle -= len(tok)
			if angle < 0 {
				return "", errors.Errorf("%w: unbalanced angle brackets", ErrUnsupportedType)
			}
		case tok == "(":
			paren++
		case tok == ")":
			paren--
			if paren < 0 {
				return "", errors.Errorf("%w: unbalanced parentheses", ErrUnsupportedType)
			}
		case tok == "[":
			bracket++
		case tok == "]":
			bracket--
			if bracket < 0 {
				return "", errors.Errorf("%w: unbalanced square brackets", ErrUnsupportedType)
			}
		}
		if prev != "" && needsSpace(prev, tok) {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok)
		prev = tok
	}
	if angle != 0 || paren != 0 || bracket != 0 {
		return "", errors.Errorf("%w: unbalanced brackets at end of type", ErrUnsupportedType)
	}
	return sb.String(), nil
}

// needsSpace decides whether a space separates prev from next in the
// canonical spelling. Words get single spaces; punctuation attaches:
// nothing before ',' ')' ']' ';' '<' '::' or a '>' run, nothing after
// '::' '<' '(' '[', and '*' '&' '&&' attach to the type on their left.
func needsSpace(prev, next string) bool {
	switch next {
	case ",", ")", "]", ";", "<", "::", "*", "&", "&&":
		return false
	}
	if isCloseRun(next) {
		return false
	}
	switch prev {
	case "::", "<", "(", "[":
		return false
	}
	return true
}

// splitTopLevel splits a comma-separated token stream on depth-0 commas
// only; commas nested inside angle brackets, parentheses or square
// brackets stay with their group. An empty stream yields no groups.
func splitTopLevel(toks []string) ([][]string, error) {
	var groups [][]string
	var cur []string
	angle, paren, bracket := 0, 0, 0
	for _, tok := range toks {
		switch {
		case tok == "<":
			angle++
		case isCloseRun(tok):
			angle -= len(tok)
			if angle < 0 {
				return nil, errors.Errorf("%w: unbalanced angle brackets", ErrUnsupportedType)
			}
		case tok == "(":
			paren++
		case tok == ")":
			paren--
			if paren < 0 {
				return nil, errors.Errorf("%w: unbalanced parentheses", ErrUnsupportedType)
			}
		case tok == "[":
			bracket++
		case tok == "]":
			bracket--
			if bracket < 0 {
				return nil, errors.Errorf("%w: unbalanced square brackets", ErrUnsupportedType)
			}
		case tok == "," && angle == 0 && paren == 0 && bracket == 0:
			groups = append(groups, cur)
			cur = nil
			continue
		}
		cur = append(cur, tok)
	}
	if angle != 0 || paren != 0 || bracket != 0 {
		return nil, errors.Errorf("%w: unbalanced brackets at end of list", ErrUnsupportedType)
	}
	if len(cur) > 0 || len(groups) > 0 {
		groups = append(groups, cur)
	}
	return groups, nil
}

// hasTopLevelComma reports whether the stream contains a depth-0 comma,
// meaning it spells a parameter list rather than a single type.
func hasTopLevelComma(toks []string) bool {
	angle, paren, bracket := 0, 0, 0
	for _, tok := range toks {
		switch {
		case tok == "<":
			angle++
		case isCloseRun(tok):
			angle -= len(tok)
		case tok == "(":
			paren++
		case tok == ")":
			paren--
		case tok == "[":
			bracket++
		case tok == "]":
			bracket--
		case tok == "," && angle == 0 && paren == 0 && bracket == 0:
			return true
		}
	}
	return false
}
