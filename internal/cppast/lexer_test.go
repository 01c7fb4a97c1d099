package cppast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLexTokens(t *testing.T) {
	t.Run("splits identifiers and punctuation", func(t *testing.T) {
		got := LexTokens("virtual void set(int value) = 0;")
		require.Equal(t, []string{"virtual", "void", "set", "(", "int", "value", ")", "=", "0", ";"}, got)
	})

	t.Run("keeps scope resolution as one token", func(t *testing.T) {
		got := LexTokens("std::vector<std::string>")
		require.Equal(t, []string{"std", "::", "vector", "<", "std", "::", "string", ">"}, got)
	})

	t.Run("merges adjacent closing angle brackets", func(t *testing.T) {
		got := LexTokens("map<int, vector<pair<int, int>>>")
		require.Equal(t, []string{"map", "<", "int", ",", "vector", "<", "pair", "<", "int", ",", "int", ">>>"}, got)
	})

	t.Run("greater-equal stays a comparison token", func(t *testing.T) {
		require.Equal(t, []string{"a", ">=", "b"}, LexTokens("a >= b"))
	})

	t.Run("drops line and block comments", func(t *testing.T) {
		src := `int a; // trailing comment with "quotes"
/* block
   comment */ int b;`
		require.Equal(t, []string{"int", "a", ";", "int", "b", ";"}, LexTokens(src))
	})

	t.Run("string literals are single tokens with escapes", func(t *testing.T) {
		got := LexTokens(`f("a \"quoted\" string", 'x')`)
		require.Equal(t, []string{"f", "(", `"a \"quoted\" string"`, ",", "'x'", ")"}, got)
	})

	t.Run("brackets inside literals never leak", func(t *testing.T) {
		got := LexTokens(`g("<not a template>")`)
		require.Equal(t, []string{"g", "(", `"<not a template>"`, ")"}, got)
	})

	t.Run("multi character operators munch greedily", func(t *testing.T) {
		require.Equal(t, []string{"operator", "->*"}, LexTokens("operator->*"))
		require.Equal(t, []string{"operator", "<<="}, LexTokens("operator<<="))
		require.Equal(t, []string{"x", "&&", "y"}, LexTokens("x && y"))
	})

	t.Run("pointer and reference suffixes split from names", func(t *testing.T) {
		require.Equal(t, []string{"const", "Foo", "&"}, LexTokens("const Foo&"))
		require.Equal(t, []string{"Foo", "*", "*"}, LexTokens("Foo**"))
	})
}
