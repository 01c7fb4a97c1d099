package generator

import (
	"strings"
	"unicode"
)

// Identifier transforms for mock class and file naming. An interface name
// is first split into lowercase words, then the words are recombined in
// the case style each artifact needs: FooIntf and foo_intf both become
// the words [foo] (with "intf" on the default strip list), giving FooMock,
// foo-gmock.h and FOO_GMOCK_H_.

// identifierWords splits an identifier on snake, kebab and space
// delimiters, falling back to camel-hump splitting for delimiter-less
// names. Words on the strip list are removed unless that would leave
// nothing.
func identifierWords(identifier string, strip []string) []string {
	var words []string
	switch {
	case strings.ContainsAny(identifier, "_- "):
		for _, part := range strings.FieldsFunc(identifier, func(r rune) bool {
			return r == '_' || r == '-' || r == ' '
		}) {
			words = append(words, splitCamel(part)...)
		}
	default:
		words = splitCamel(identifier)
	}

	stripped := words[:0:0]
	for _, w := range words {
		if w == "" || containsWord(strip, w) {
			continue
		}
		stripped = append(stripped, w)
	}
	if len(stripped) == 0 {
		return words
	}
	return stripped
}

// splitCamel breaks a camel or pascal identifier into lowercase words.
// Uppercase runs stay together until a lowercase letter starts a new word,
// so HTTPServer yields [http, server].
func splitCamel(s string) []string {
	runes := []rune(s)
	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := unicode.IsUpper(cur) && (unicode.IsLower(prev) || unicode.IsDigit(prev))
		if !boundary && i+1 < len(runes) {
			boundary = unicode.IsUpper(prev) && unicode.IsUpper(cur) && unicode.IsLower(runes[i+1])
		}
		if boundary {
			words = append(words, strings.ToLower(string(runes[start:i])))
			start = i
		}
	}
	if start < len(runes) {
		words = append(words, strings.ToLower(string(runes[start:])))
	}
	return words
}

func containsWord(list []string, w string) bool {
	for _, s := range list {
		if strings.EqualFold(s, w) {
			return true
		}
	}
	return false
}

func kebabCase(words []string) string {
	return strings.Join(words, "-")
}

func pascalCase(words []string) string {
	var sb strings.Builder
	for _, w := range words {
		if w == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(w[:1]))
		sb.WriteString(w[1:])
	}
	return sb.String()
}

// upperSnakeOf uppercases a file stem into a guard stem, mapping kebab
// dashes and dots to underscores.
func upperSnakeOf(stem string) string {
	replaced := strings.NewReplacer("-", "_", ".", "_", " ", "_").Replace(stem)
	return strings.ToUpper(replaced)
}
