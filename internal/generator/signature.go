package generator

import (
	"strconv"

	"gitlab.com/tozd/go/errors"

	"github.com/calumari/gmockgen/internal/cppast"
)

// buildSignature turns one method node into a methodDecl. The caller has
// already confirmed the node is pure virtual and non-static; this stage
// owns type spelling, parameter naming and operator classification. Any
// error means the method is dropped, never that the run aborts.
func buildSignature(n cppast.Node, argPrefix string) (methodDecl, error) {
	m := methodDecl{
		Name:     n.Spelling(),
		IsConst:  n.IsConst(),
		Location: n.Location(),
	}

	kind, err := classifyOperator(m.Name)
	if err != nil {
		return methodDecl{}, err
	}
	m.Operator = kind

	ret, err := spellTokens(n.TypeTokens())
	if err != nil {
		return methodDecl{}, errors.Errorf("return type of %s: %w", m.Name, err)
	}
	m.Return = ret

	var paramNodes []cppast.Node
	for _, c := range n.Children() {
		if c.Kind() == cppast.KindParam {
			paramNodes = append(paramNodes, c)
		}
	}

	// A provider may hand the whole parameter list as one unnamed token
	// stream. Depth-0 commas determine the true arity then; a lone type
	// never carries one. A bare group only offers a trailing position for
	// its synthesized name, so a group ending in a declarator suffix is
	// unmockable.
	if len(paramNodes) == 1 && paramNodes[0].Spelling() == "" && hasTopLevelComma(paramNodes[0].TypeTokens()) {
		groups, err := splitTopLevel(paramNodes[0].TypeTokens())
		if err != nil {
			return methodDecl{}, errors.Errorf("parameter list of %s: %w", m.Name, err)
		}
		for i, g := range groups {
			t, err := spellTokens(g)
			if err != nil {
				return methodDecl{}, errors.Errorf("parameter %d of %s: %w", i, m.Name, err)
			}
			if last := g[len(g)-1]; last == ")" || last == "]" {
				return methodDecl{}, errors.Errorf("parameter %d of %s: %w: no trailing position for a name", i, m.Name, ErrUnsupportedType)
			}
			name := argPrefix + strconv.Itoa(i)
			m.Params = append(m.Params, param{Name: name, Type: t, Decl: t + " " + name})
		}
		return m, nil
	}

	type declSource struct {
		toks []string
		slot int
	}
	var sources []declSource
	for i, p := range paramNodes {
		toks := p.TypeTokens()
		// int f(void) declares no parameters.
		if len(paramNodes) == 1 && p.Spelling() == "" && len(toks) == 1 && toks[0] == "void" {
			break
		}
		t, err := spellTokens(toks)
		if err != nil {
			return methodDecl{}, errors.Errorf("parameter %d of %s: %w", i, m.Name, err)
		}
		slot := p.NameSlot()
		if slot < 0 || slot > len(toks) {
			return methodDecl{}, errors.Errorf("parameter %d of %s: %w: no position for a name in the declarator", i, m.Name, ErrUnsupportedType)
		}
		name := p.Spelling()
		if name == "" {
			name = argPrefix + strconv.Itoa(i)
		}
		m.Params = append(m.Params, param{Name: name, Type: t})
		sources = append(sources, declSource{toks: toks, slot: slot})
	}

	// Synthesized names can collide with declared ones; renaming the whole
	// list by position keeps names deterministic and unique.
	if hasDuplicateNames(m.Params) {
		for i := range m.Params {
			m.Params[i].Name = argPrefix + strconv.Itoa(i)
		}
	}

	// Splice the final name into its declarator slot. Only a trailing
	// slot reduces to "type name"; function pointer and array parameters
	// carry the name inside the declarator.
	for i := range m.Params {
		src := sources[i]
		withName := make([]string, 0, len(src.toks)+1)
		withName = append(withName, src.toks[:src.slot]...)
		withName = append(withName, m.Params[i].Name)
		withName = append(withName, src.toks[src.slot:]...)
		d, err := spellTokens(withName)
		if err != nil {
			return methodDecl{}, errors.Errorf("parameter %s of %s: %w", m.Params[i].Name, m.Name, err)
		}
		m.Params[i].Decl = d
	}
	return m, nil
}

func hasDuplicateNames(ps []param) bool {
	seen := make(map[string]bool, len(ps))
	for _, p := range ps {
		if seen[p.Name] {
			return true
		}
		seen[p.Name] = true
	}
	return false
}
