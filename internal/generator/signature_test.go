package generator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calumari/gmockgen/internal/cppast"
)

func TestBuildSignature(t *testing.T) {
	t.Run("every parameter ends up named", func(t *testing.T) {
		n := fakeNode{
			kind:     cppast.KindMethod,
			spelling: "read",
			typeToks: []string{"int"},
			isPure:   true,
			isConst:  true,
			children: []cppast.Node{
				fakeParam("buf", "char", "*"),
				fakeParam("", "int"),
			},
		}
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, "read", m.Name)
		require.Equal(t, "int", m.Return)
		require.True(t, m.IsConst)
		require.Equal(t, operatorNone, m.Operator)
		require.Equal(t, []param{
			{Name: "buf", Type: "char*", Decl: "char* buf"},
			{Name: "arg1", Type: "int", Decl: "int arg1"},
		}, m.Params)
	})

	t.Run("void parameter list declares nothing", func(t *testing.T) {
		n := fakePureMethod("tick", []string{"void"}, fakeParam("", "void"))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Empty(t, m.Params)
	})

	t.Run("unsplit parameter surface recovers arity on depth zero commas", func(t *testing.T) {
		toks := cppast.LexTokens("std::map<int, bool>, const char*, int")
		n := fakePureMethod("mixed", []string{"void"}, fakeParam("", toks...))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "arg0", Type: "std::map<int, bool>", Decl: "std::map<int, bool> arg0"},
			{Name: "arg1", Type: "const char*", Decl: "const char* arg1"},
			{Name: "arg2", Type: "int", Decl: "int arg2"},
		}, m.Params)
	})

	t.Run("unsplit surface rejects a group with no trailing name position", func(t *testing.T) {
		toks := cppast.LexTokens("int, void (*)(int)")
		n := fakePureMethod("mixed", []string{"void"}, fakeParam("", toks...))
		_, err := buildSignature(n, "arg")
		require.ErrorIs(t, err, ErrUnsupportedType)
		require.ErrorContains(t, err, "parameter 1 of mixed")
	})

	t.Run("duplicate names rename the whole list by position", func(t *testing.T) {
		n := fakePureMethod("dup", []string{"void"},
			fakeParam("x", "int"),
			fakeParam("x", "bool"),
		)
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "arg0", Type: "int", Decl: "int arg0"},
			{Name: "arg1", Type: "bool", Decl: "bool arg1"},
		}, m.Params)
	})

	t.Run("synthesized name colliding with a declared one", func(t *testing.T) {
		n := fakePureMethod("clash", []string{"void"},
			fakeParam("arg1", "int"),
			fakeParam("", "bool"),
		)
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "arg0", Type: "int", Decl: "int arg0"},
			{Name: "arg1", Type: "bool", Decl: "bool arg1"},
		}, m.Params)
	})

	t.Run("function pointer parameter keeps its name inside the declarator", func(t *testing.T) {
		toks := cppast.LexTokens("void (*)(int, int)")
		n := fakePureMethod("set", []string{"void"}, fakeParamAt("cb", 3, toks...))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "cb", Type: "void (*) (int, int)", Decl: "void (* cb) (int, int)"},
		}, m.Params)
	})

	t.Run("array parameter keeps its name before the extent", func(t *testing.T) {
		toks := cppast.LexTokens("int [16]")
		n := fakePureMethod("fill", []string{"void"}, fakeParamAt("buf", 1, toks...))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "buf", Type: "int [16]", Decl: "int buf [16]"},
		}, m.Params)
	})

	t.Run("synthesized name lands in an unnamed declarator slot", func(t *testing.T) {
		toks := cppast.LexTokens("void (*)(int)")
		n := fakePureMethod("watch", []string{"void"}, fakeParamAt("", 3, toks...))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, []param{
			{Name: "arg0", Type: "void (*) (int)", Decl: "void (* arg0) (int)"},
		}, m.Params)
	})

	t.Run("declarator without a name position is unmockable", func(t *testing.T) {
		n := fakePureMethod("take", []string{"void"}, fakeParamAt("", -1, "int", "(", "*", ")", "(", "int", ")"))
		_, err := buildSignature(n, "arg")
		require.ErrorIs(t, err, ErrUnsupportedType)
		require.ErrorContains(t, err, "no position for a name")
	})

	t.Run("variadic parameter is unmockable", func(t *testing.T) {
		n := fakePureMethod("logf", []string{"void"},
			fakeParam("fmt", "const", "char", "*"),
			fakeParam("", "..."),
		)
		_, err := buildSignature(n, "arg")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("return type spelling failure drops the method", func(t *testing.T) {
		n := fakePureMethod("broken", []string{"std", "::", "vector", "<"})
		_, err := buildSignature(n, "arg")
		require.ErrorIs(t, err, ErrUnsupportedType)
		require.ErrorContains(t, err, "return type of broken")
	})

	t.Run("operator classification flows through", func(t *testing.T) {
		n := fakePureMethod("operator()", []string{"int"}, fakeParam("a", "int"), fakeParam("b", "int"))
		m, err := buildSignature(n, "arg")
		require.NoError(t, err)
		require.Equal(t, operatorCall, m.Operator)
		require.Len(t, m.Params, 2)

		bad := fakePureMethod("operator bool", []string{"bool"})
		_, err = buildSignature(bad, "arg")
		require.ErrorIs(t, err, ErrMalformedOperator)
	})
}
