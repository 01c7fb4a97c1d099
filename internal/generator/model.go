package generator

import (
	"context"
	"path/filepath"
	"strings"

	slogctx "github.com/veqryn/slog-context"
)

// buildMockModel assembles the render model for one extracted class:
// naming transforms, namespace chain, template preamble and the ordered
// method entries. Methods whose macro cannot be selected are dropped here
// with a diagnostic; everything else is deterministic string assembly.
func buildMockModel(ctx context.Context, decl classDecl, cfg Config) mockModel {
	words := identifierWords(decl.Name, cfg.Naming.StripWords)
	stem := kebabCase(words) + cfg.Naming.FileSuffix

	bases := make([]string, 0, len(decl.Bases))
	for _, b := range decl.Bases {
		bases = append(bases, b.Name)
	}

	m := mockModel{
		Interface:  strings.Join(append(append([]string{}, decl.Outer...), decl.Name), "::"),
		MockClass:  pascalCase(words) + cfg.Naming.MockSuffix,
		Guard:      upperSnakeOf(stem) + cfg.Naming.GuardSuffix,
		Namespaces: decl.Namespaces,
		Bases:      bases,
		Include:    filepath.Base(decl.SourceFile),
		HeaderFile: stem + cfg.Naming.HeaderExt,
		SourceFile: stem + cfg.Naming.SourceExt,
		OutDir:     cfg.OutDir,
	}

	if len(decl.Template) > 0 {
		params := make([]string, 0, len(decl.Template))
		args := make([]string, 0, len(decl.Template))
		for _, tp := range decl.Template {
			params = append(params, tp.Keyword+" "+tp.Name)
			args = append(args, tp.Name)
		}
		m.TemplatePreamble = "template <" + strings.Join(params, ", ") + ">"
		m.TemplateArgs = "<" + strings.Join(args, ", ") + ">"
	}

	templated := len(decl.Template) > 0
	for _, method := range decl.Methods {
		macro, err := selectMacro(method, templated, cfg.Macros)
		if err != nil {
			slogctx.Warn(ctx, "dropping unmockable method",
				"class", m.Interface,
				"method", method.Name,
				"reason", err.Error(),
			)
			continue
		}
		entry := mockMethodEntry{Macro: macro, Name: method.Name, Signature: signatureText(method)}
		if method.Operator != operatorNone {
			entry.Name = operatorMockName(method.Name)
			entry.Wrapper = forwardingWrapper(method, entry.Name)
		}
		m.Entries = append(m.Entries, entry)
	}
	return m
}

// signatureText spells a method as "ret(decl, ...)" with every parameter
// named inside its own declarator, the form the mock macros accept.
func signatureText(m methodDecl) string {
	ps := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		ps = append(ps, p.Decl)
	}
	return m.Return + "(" + strings.Join(ps, ", ") + ")"
}

// forwardingWrapper builds the concrete operator override that forwards
// its arguments, by name and in declaration order, to the renamed mock
// method. Void results drop the return keyword.
func forwardingWrapper(m methodDecl, mockName string) string {
	args := make([]string, 0, len(m.Params))
	names := make([]string, 0, len(m.Params))
	for _, p := range m.Params {
		args = append(args, p.Decl)
		names = append(names, p.Name)
	}
	constQual := ""
	if m.IsConst {
		constQual = " const"
	}
	stmt := mockName + "(" + strings.Join(names, ", ") + ")"
	if strings.TrimSpace(m.Return) != "void" {
		stmt = "return " + stmt
	}
	return "virtual " + m.Return + " " + m.Name + "(" + strings.Join(args, ", ") + ")" + constQual +
		" { " + stmt + "; }"
}

// macroLines renders the entries as class-body lines. An operator entry is
// one string carrying its forwarding wrapper directly above the macro
// call, so each method stays exactly one list element.
func (m mockModel) macroLines() []string {
	lines := make([]string, 0, len(m.Entries))
	for _, e := range m.Entries {
		call := e.Macro + "(" + e.Name + ", " + e.Signature + ");"
		if e.Wrapper != "" {
			lines = append(lines, "  "+e.Wrapper+"\n  "+call)
			continue
		}
		lines = append(lines, "  "+call)
	}
	return lines
}

// renderData projects the model onto the key set the templates consume.
// The keys are the rendering contract; custom template files rely on them.
func (m mockModel) renderData(cfg Config) map[string]any {
	nsBegin := make([]string, 0, len(m.Namespaces))
	for _, ns := range m.Namespaces {
		nsBegin = append(nsBegin, "namespace "+ns+" {")
	}
	nsEnd := make([]string, 0, len(m.Namespaces))
	for i := len(m.Namespaces) - 1; i >= 0; i-- {
		nsEnd = append(nsEnd, "}  // namespace "+m.Namespaces[i])
	}
	return map[string]any{
		"guard":               m.Guard,
		"file":                m.Include,
		"interface":           m.Interface,
		"class_name":          m.MockClass,
		"template_class_name": m.MockClass + m.TemplateArgs,
		"template_interface":  m.Interface + m.TemplateArgs,
		"template_preamble":   m.TemplatePreamble,
		"bases":               m.Bases,
		"namespaces_begin":    nsBegin,
		"namespaces_end":      nsEnd,
		"mock_methods":        m.macroLines(),
		"mock_file_hpp":       m.HeaderFile,
		"mock_file_cpp":       m.SourceFile,
		"generated_dir":       m.OutDir,
		"command":             cfg.Command,
		"version":             cfg.Version,
	}
}
