package generator

import (
	"strings"

	"gitlab.com/tozd/go/errors"
)

// Overloadable operators and the ordinary method names their mock entries
// take. Operator syntax cannot appear in a mock macro, so each operator
// method becomes a forwarding override plus a renamed method carrying the
// macro; the renamed form must be deterministic so tests and user code can
// set expectations on it.
var operatorNames = map[string]string{
	"operator,":   "comma_operator",
	"operator!":   "logical_not_operator",
	"operator!=":  "inequality_operator",
	"operator%":   "modulus_operator",
	"operator%=":  "modulus_assignment_operator",
	"operator&":   "address_of_or_bitwise_and_operator",
	"operator&&":  "logical_and_operator",
	"operator&=":  "bitwise_and_assignment_operator",
	"operator()":  "call_operator",
	"operator*":   "multiplication_or_dereference_operator",
	"operator*=":  "multiplication_assignment_operator",
	"operator+":   "addition_or_unary_plus_operator",
	"operator++":  "increment1_operator",
	"operator+=":  "addition_assignment_operator",
	"operator-":   "subtraction_or_unary_negation_operator",
	"operator--":  "decrement1_operator",
	"operator-=":  "subtraction_assignment_operator",
	"operator->":  "member_selection_operator",
	"operator->*": "pointer_to_member_selection_operator",
	"operator/":   "division_operator",
	"operator/=":  "division_assignment_operator",
	"operator<":   "less_than_operator",
	"operator<<":  "left_shift_operator",
	"operator<<=": "left_shift_assignment_operator",
	"operator<=":  "less_than_or_equal_to_operator",
	"operator=":   "assignment_operator",
	"operator==":  "equality_operator",
	"operator>":   "greater_than_operator",
	"operator>=":  "greater_than_or_equal_to_operator",
	"operator>>":  "right_shift_operator",
	"operator>>=": "right_shift_assignment_operator",
	"operator[]":  "array_subscript_operator",
	"operator^":   "exclusive_or_operator",
	"operator^=":  "exclusive_or_assignment_operator",
	"operator|":   "bitwise_inclusive_or_operator",
	"operator|=":  "bitwise_inclusive_or_assignment_operator",
	"operator||":  "logical_or_operator",
	"operator~":   "complement_operator",
}

// classifyOperator resolves the operator kind for a method name. Names
// that merely start with "operator" (conversion operators, operator new,
// unrecognized spellings) cannot be decomposed and are malformed here.
func classifyOperator(name string) (operatorKind, error) {
	if _, ok := operatorNames[name]; ok {
		if name == "operator()" {
			return operatorCall, nil
		}
		return operatorOther, nil
	}
	if strings.HasPrefix(name, "operator") && (len(name) == len("operator") || !isIdentTail(name[len("operator"):])) {
		return operatorNone, errors.Errorf("%w: %s", ErrMalformedOperator, name)
	}
	return operatorNone, nil
}

// operatorMockName returns the renamed mockable method for an operator
// method name. Callers must have classified the name first.
func operatorMockName(name string) string {
	return operatorNames[name]
}

// isIdentTail reports whether s continues an identifier, distinguishing
// plain methods that happen to start with "operator" (operatorCount) from
// actual operator declarations.
func isIdentTail(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '_':
		default:
			return false
		}
	}
	return len(s) > 0
}
