package generator

import (
	"strconv"

	"gitlab.com/tozd/go/errors"
)

// selectMacro picks the mock declaration macro for one method. The family
// encodes constness and arity, with a suffix when the enclosing class is
// templated; whether the method itself uses a template parameter does not
// matter. Arity past cfg.MaxArity has no macro variant, so the method is
// dropped by the caller.
func selectMacro(m methodDecl, templated bool, cfg MacroConfig) (string, error) {
	arity := len(m.Params)
	if arity > cfg.MaxArity {
		return "", errors.Errorf("%w: %s takes %d parameters, macros stop at %d",
			ErrMacroArity, m.Name, arity, cfg.MaxArity)
	}
	macro := cfg.Prefix
	if m.IsConst {
		macro += cfg.ConstInfix
	}
	macro += cfg.Stem + strconv.Itoa(arity)
	if templated {
		macro += cfg.TemplateSuffix
	}
	return macro, nil
}
