package generator

import (
	"context"
	"strings"

	slogctx "github.com/veqryn/slog-context"
	"gitlab.com/tozd/go/errors"

	"github.com/calumari/gmockgen/internal/cppast"
)

// extractClass builds the classDecl for one discovered site. siblings
// indexes every class in the same file so base references can be marked
// same-file. The methods kept are exactly the pure virtual non-static
// ones declared in this class body; base-class methods never appear here,
// even when the base lives in the same file. A method that cannot be
// mocked is dropped with a diagnostic and extraction continues.
func extractClass(ctx context.Context, site classSite, siblings map[string]bool, cfg Config) (classDecl, error) {
	n := site.Node
	decl := classDecl{
		Name:       n.Spelling(),
		Namespaces: site.Namespaces,
		Outer:      site.Outer,
		SourceFile: n.Location().File,
		Location:   n.Location(),
	}
	qualified := site.qualifiedPath()

	for _, c := range n.Children() {
		switch c.Kind() {
		case cppast.KindTemplateTypeParam:
			kw := "typename"
			if toks := c.TypeTokens(); len(toks) > 0 {
				k, err := spellTokens(toks)
				if err != nil {
					// A broken template head poisons every emitted
					// signature, so the whole class is unmockable.
					// Parameter packs land here: the preamble has no
					// spelling for them.
					return classDecl{}, errors.Errorf("template parameter %s of %s: %w", c.Spelling(), qualified, err)
				}
				kw = k
			}
			decl.Template = append(decl.Template, templateParam{Keyword: kw, Name: c.Spelling()})

		case cppast.KindTemplateNonTypeParam:
			kw, err := spellTokens(c.TypeTokens())
			if err != nil {
				return classDecl{}, errors.Errorf("template parameter %s of %s: %w", c.Spelling(), qualified, err)
			}
			decl.Template = append(decl.Template, templateParam{Keyword: kw, Name: c.Spelling()})

		case cppast.KindTemplateTemplateParam:
			// The preamble re-emits each parameter as "keyword name" and
			// a template template parameter has no such spelling.
			return classDecl{}, errors.Errorf("template parameter %s of %s: %w: template template parameter", c.Spelling(), qualified, ErrUnsupportedType)

		case cppast.KindBase:
			name := strings.TrimSpace(c.Spelling())
			stripped := stripTemplateArgs(name)
			decl.Bases = append(decl.Bases, baseRef{
				Name:     name,
				SameFile: siblings[stripped] || siblings[lastPathComponent(stripped)],
			})

		case cppast.KindMethod:
			if !c.IsPureVirtual() || c.IsStatic() {
				continue
			}
			m, err := buildSignature(c, cfg.Naming.ArgPrefix)
			if err != nil {
				slogctx.Warn(ctx, "dropping unmockable method",
					"class", qualified,
					"method", c.Spelling(),
					"reason", err.Error(),
				)
				continue
			}
			decl.Methods = append(decl.Methods, m)
		}
	}
	return decl, nil
}

// stripTemplateArgs cuts "Base<T, U>" down to "Base".
func stripTemplateArgs(name string) string {
	if i := strings.Index(name, "<"); i >= 0 {
		return name[:i]
	}
	return name
}

// lastPathComponent returns the final segment of a qualified name.
func lastPathComponent(name string) string {
	if i := strings.LastIndex(name, "::"); i >= 0 {
		return name[i+2:]
	}
	return name
}
