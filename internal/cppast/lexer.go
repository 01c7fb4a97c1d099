package cppast

import (
	"strings"
	"unicode"
)

// lexState tracks which lexical mode the scanner is in. String/char
// literals and comments are consumed as opaque units so that brackets or
// commas inside them can never leak into type tokens.
type lexState int

const (
	lexNormal lexState = iota
	lexString
	lexComment
)

// multi-character operators, longest first so maximal munch wins.
var multiOps = []string{
	"->*", "<<=", ">>=", "...",
	"::", "->", "==", "!=", "<=", ">=", "&&", "||",
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<",
}

// LexTokens splits C++ source text into token spellings. Comments are
// dropped, string and character literals are kept as single tokens, and a
// run of adjacent '>' characters is kept as one token the way a real C++
// lexer would surface it (">>" is a shift token until proven otherwise).
func LexTokens(src string) []string {
	var tokens []string
	state := lexNormal
	var quote byte
	blockComment := false
	i := 0

	for i < len(src) {
		c := src[i]

		switch state {
		case lexComment:
			if blockComment {
				if c == '*' && i+1 < len(src) && src[i+1] == '/' {
					state = lexNormal
					i += 2
					continue
				}
			} else if c == '\n' {
				state = lexNormal
			}
			i++

		case lexString:
			start := i
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					i += 2
					continue
				}
				if src[i] == quote {
					i++
					break
				}
				if src[i] == '\n' { // unterminated; stop at line end
					break
				}
				i++
			}
			tokens[len(tokens)-1] += src[start:i]
			state = lexNormal

		default:
			switch {
			case c == ' ' || c == '\t' || c == '\r' || c == '\n':
				i++
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state = lexComment
				blockComment = false
				i += 2
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state = lexComment
				blockComment = true
				i += 2
			case c == '"' || c == '\'':
				quote = c
				tokens = append(tokens, string(c))
				state = lexString
				i++
			case c == '>':
				j := i
				for j < len(src) && src[j] == '>' {
					j++
				}
				if j == i+1 && j < len(src) && src[j] == '=' {
					tokens = append(tokens, ">=")
					i = j + 1
				} else {
					tokens = append(tokens, src[i:j])
					i = j
				}
			case isIdentByte(c):
				j := i
				for j < len(src) && isIdentPartByte(src[j]) {
					j++
				}
				tokens = append(tokens, src[i:j])
				i = j
			case unicode.IsDigit(rune(c)):
				j := i
				for j < len(src) && isNumberByte(src[j]) {
					j++
				}
				tokens = append(tokens, src[i:j])
				i = j
			default:
				if op := matchMultiOp(src[i:]); op != "" {
					tokens = append(tokens, op)
					i += len(op)
				} else {
					tokens = append(tokens, string(c))
					i++
				}
			}
		}
	}
	return tokens
}

func matchMultiOp(rest string) string {
	for _, op := range multiOps {
		if strings.HasPrefix(rest, op) {
			return op
		}
	}
	return ""
}

func isIdentByte(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPartByte(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

func isNumberByte(c byte) bool {
	return unicode.IsDigit(rune(c)) || c == '.' || c == 'x' || c == 'X' ||
		(c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F') || c == '\'' ||
		c == 'u' || c == 'U' || c == 'l' || c == 'L'
}
