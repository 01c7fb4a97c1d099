package generator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyOperator(t *testing.T) {
	t.Run("call operator stands apart", func(t *testing.T) {
		kind, err := classifyOperator("operator()")
		require.NoError(t, err)
		require.Equal(t, operatorCall, kind)
		require.Equal(t, "call_operator", operatorMockName("operator()"))
	})

	t.Run("overloadable operators map to spoken names", func(t *testing.T) {
		for name, want := range map[string]string{
			"operator==":  "equality_operator",
			"operator[]":  "array_subscript_operator",
			"operator->*": "pointer_to_member_selection_operator",
			"operator<<=": "left_shift_assignment_operator",
			"operator~":   "complement_operator",
			"operator,":   "comma_operator",
		} {
			kind, err := classifyOperator(name)
			require.NoError(t, err, name)
			require.Equal(t, operatorOther, kind, name)
			require.Equal(t, want, operatorMockName(name), name)
		}
	})

	t.Run("plain methods pass through untouched", func(t *testing.T) {
		for _, name := range []string{"operatorCount", "operator_table", "read", "op"} {
			kind, err := classifyOperator(name)
			require.NoError(t, err, name)
			require.Equal(t, operatorNone, kind, name)
		}
	})

	t.Run("undecomposable operator spellings are malformed", func(t *testing.T) {
		for _, name := range []string{"operator", "operator bool", "operator new", "operator\"\"_kg"} {
			_, err := classifyOperator(name)
			require.ErrorIs(t, err, ErrMalformedOperator, name)
		}
	})
}
