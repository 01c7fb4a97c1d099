package cppast

import (
	"context"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"gitlab.com/tozd/go/errors"
)

// Provider parses C++ source with a tree-sitter grammar and adapts the
// syntax tree to the Node interface. The zero value is not usable; call
// NewProvider.
type Provider struct {
	lang *sitter.Language
}

// NewProvider returns a Provider backed by the bundled C++ grammar, or by
// the shared library at grammarPath when it is non-empty. The library must
// export a tree_sitter_cpp symbol.
func NewProvider(grammarPath string) (*Provider, error) {
	if grammarPath == "" {
		return &Provider{lang: cpp.GetLanguage()}, nil
	}
	lang, err := loadLanguage(grammarPath)
	if err != nil {
		return nil, errors.Errorf("load grammar %s: %w", grammarPath, err)
	}
	return &Provider{lang: lang}, nil
}

// ParseFile parses src and returns the root of the adapted declaration
// tree. The root node has no meaningful kind; callers walk Children.
func (p *Provider) ParseFile(ctx context.Context, path string, src []byte) (Node, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(p.lang)
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Errorf("parse %s: %w", path, err)
	}
	if tree == nil {
		return nil, errors.Errorf("parse %s: no syntax tree produced", path)
	}
	defer tree.Close()

	b := &treeBuilder{src: src, file: path}
	root := &node{
		kind:     KindUnknown,
		spelling: path,
		children: b.declarations(tree.RootNode()),
		loc:      Location{File: path, Line: 1, Col: 1},
	}
	return root, nil
}

// treeBuilder converts tree-sitter nodes into eager Node values. It keeps
// the source bytes around because tree-sitter nodes carry offsets, not
// text.
type treeBuilder struct {
	src  []byte
	file string
}

// container node types that only group declarations.
var containerTypes = map[string]bool{
	"declaration_list":      true,
	"linkage_specification": true,
	"preproc_if":            true,
	"preproc_ifdef":         true,
	"preproc_else":          true,
	"preproc_elif":          true,
}

// declarations walks a translation unit, namespace body or other grouping
// node and returns the namespace and class declarations under it.
func (b *treeBuilder) declarations(n *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "namespace_definition":
			out = append(out, b.namespace(c))
		case "class_specifier":
			if cls := b.class(c, KindClass, nil); cls != nil {
				out = append(out, cls)
			}
		case "struct_specifier":
			if cls := b.class(c, KindStruct, nil); cls != nil {
				out = append(out, cls)
			}
		case "template_declaration":
			if cls := b.classTemplate(c); cls != nil {
				out = append(out, cls)
			}
		default:
			if containerTypes[c.Type()] {
				out = append(out, b.declarations(c)...)
			}
		}
	}
	return out
}

func (b *treeBuilder) namespace(n *sitter.Node) Node {
	ns := &node{kind: KindNamespace, loc: b.location(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		ns.spelling = name.Content(b.src)
	}
	if body := n.ChildByFieldName("body"); body != nil {
		ns.children = b.declarations(body)
	}
	return ns
}

// classTemplate unwraps a template_declaration. Only class and struct
// templates are surfaced; function and alias templates have no place in
// the declaration tree.
func (b *treeBuilder) classTemplate(n *sitter.Node) Node {
	params := n.ChildByFieldName("parameters")
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		switch c.Type() {
		case "class_specifier", "struct_specifier":
			return b.class(c, KindClassTemplate, params)
		}
	}
	return nil
}

// class builds a class or struct node with its template parameters, bases,
// methods and nested classes as children. Bodyless forward declarations
// and anonymous classes yield nil.
func (b *treeBuilder) class(n *sitter.Node, kind Kind, tparams *sitter.Node) Node {
	body := n.ChildByFieldName("body")
	name := n.ChildByFieldName("name")
	if body == nil || name == nil {
		return nil
	}
	cls := &node{kind: kind, spelling: name.Content(b.src), loc: b.location(n)}

	if tparams != nil {
		cls.children = append(cls.children, b.templateParams(tparams)...)
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c.Type() == "base_class_clause" {
			cls.children = append(cls.children, b.bases(c)...)
		}
	}
	cls.children = append(cls.children, b.members(body, cls.spelling)...)
	return cls
}

// templateParams surfaces every parameter shape of a template head.
// Parameter packs keep their ellipsis token and template template
// parameters get their own kind, so the extractor can reject what the
// macro scheme cannot re-emit instead of degrading the preamble arity.
func (b *treeBuilder) templateParams(list *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(list.NamedChildCount()); i++ {
		c := list.NamedChild(i)
		switch c.Type() {
		case "type_parameter_declaration", "optional_type_parameter_declaration",
			"variadic_type_parameter_declaration":
			p := &node{kind: KindTemplateTypeParam, loc: b.location(c)}
			p.typeToks = []string{"typename"}
			if strings.HasPrefix(c.Content(b.src), "class") {
				p.typeToks = []string{"class"}
			}
			if c.Type() == "variadic_type_parameter_declaration" {
				p.typeToks = append(p.typeToks, "...")
			}
			for j := 0; j < int(c.NamedChildCount()); j++ {
				if id := c.NamedChild(j); id.Type() == "type_identifier" {
					p.spelling = id.Content(b.src)
					break
				}
			}
			out = append(out, p)
		case "parameter_declaration", "optional_parameter_declaration",
			"variadic_parameter_declaration":
			p := &node{kind: KindTemplateNonTypeParam, loc: b.location(c)}
			p.spelling, p.typeToks, p.nameSlot = b.paramNameAndType(c)
			out = append(out, p)
		case "template_template_parameter":
			p := &node{kind: KindTemplateTemplateParam, loc: b.location(c)}
			for j := 0; j < int(c.NamedChildCount()) && p.spelling == ""; j++ {
				tail := c.NamedChild(j)
				if !strings.HasSuffix(tail.Type(), "type_parameter_declaration") {
					continue
				}
				for k := 0; k < int(tail.NamedChildCount()); k++ {
					if id := tail.NamedChild(k); id.Type() == "type_identifier" {
						p.spelling = id.Content(b.src)
						break
					}
				}
			}
			out = append(out, p)
		}
	}
	return out
}

func (b *treeBuilder) bases(clause *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(clause.NamedChildCount()); i++ {
		c := clause.NamedChild(i)
		switch c.Type() {
		case "access_specifier", "comment":
			continue
		}
		out = append(out, &node{
			kind:     KindBase,
			spelling: c.Content(b.src),
			loc:      b.location(c),
		})
	}
	return out
}

// members walks a field_declaration_list. Methods and nested classes are
// surfaced; fields, enums, usings and member templates are not.
func (b *treeBuilder) members(body *sitter.Node, className string) []Node {
	var out []Node
	for i := 0; i < int(body.NamedChildCount()); i++ {
		c := body.NamedChild(i)
		switch c.Type() {
		case "field_declaration", "declaration", "function_definition":
			if nested := b.nestedClass(c); nested != nil {
				out = append(out, nested)
				continue
			}
			if m := b.method(c, className); m != nil {
				out = append(out, m)
			}
		case "class_specifier":
			if cls := b.class(c, KindClass, nil); cls != nil {
				out = append(out, cls)
			}
		case "struct_specifier":
			if cls := b.class(c, KindStruct, nil); cls != nil {
				out = append(out, cls)
			}
		}
	}
	return out
}

// nestedClass recognizes a class or struct definition appearing as the
// type of a member declaration, the shape tree-sitter gives nested types.
func (b *treeBuilder) nestedClass(n *sitter.Node) Node {
	typ := n.ChildByFieldName("type")
	if typ == nil || n.ChildByFieldName("declarator") != nil {
		return nil
	}
	switch typ.Type() {
	case "class_specifier":
		return b.class(typ, KindClass, nil)
	case "struct_specifier":
		return b.class(typ, KindStruct, nil)
	}
	return nil
}

// method builds a KindMethod node from a member declaration holding a
// function declarator. Constructors and destructors yield nil.
func (b *treeBuilder) method(n *sitter.Node, className string) Node {
	decl := n.ChildByFieldName("declarator")
	if decl == nil {
		return nil
	}
	fn, refToks := unwrapDeclarator(decl)
	if fn == nil {
		return nil
	}
	nameNode := fn.ChildByFieldName("declarator")
	if nameNode == nil {
		return nil
	}
	name := nameNode.Content(b.src)
	if name == className || strings.HasPrefix(name, "~") {
		return nil
	}
	if strings.HasPrefix(name, "operator") {
		name = normalizeOperatorName(name)
	}

	m := &node{kind: KindMethod, spelling: name, loc: b.location(n)}
	m.typeToks = b.returnTokens(n, decl.StartByte(), refToks)

	lead := LexTokens(string(b.src[n.StartByte():decl.StartByte()]))
	m.isStatic = containsToken(lead, "static")

	// "= 0" is only legal as a pure specifier on a method, so the trailing
	// tokens decide purity even when the virtual keyword is inherited.
	all := LexTokens(string(b.src[n.StartByte():n.EndByte()]))
	m.isPure = endsWithPureSpecifier(all)
	m.isConst = declaratorIsConst(fn, b.src)

	if params := fn.ChildByFieldName("parameters"); params != nil {
		m.children = append(m.children, b.params(params)...)
	}
	return m
}

// unwrapDeclarator descends pointer and reference declarators down to the
// function declarator, collecting the pointer tokens that belong to the
// return type on the way.
func unwrapDeclarator(decl *sitter.Node) (*sitter.Node, []string) {
	var toks []string
	for decl != nil {
		switch decl.Type() {
		case "function_declarator":
			return decl, toks
		case "pointer_declarator":
			toks = append(toks, "*")
			decl = decl.ChildByFieldName("declarator")
		case "reference_declarator":
			ref := "&"
			if c := decl.Child(0); c != nil && c.Type() == "&&" {
				ref = "&&"
			}
			toks = append(toks, ref)
			// reference_declarator has no declarator field; the inner
			// declarator is its sole named child.
			if decl.NamedChildCount() > 0 {
				decl = decl.NamedChild(0)
			} else {
				return nil, nil
			}
		default:
			return nil, nil
		}
	}
	return nil, nil
}

// returnTokens rebuilds the return type in source order: qualifiers on
// either side of the type node, the type itself, then the pointer and
// reference declarators collected on the way to the function declarator.
func (b *treeBuilder) returnTokens(n *sitter.Node, declStart uint32, refToks []string) []string {
	typ := n.ChildByFieldName("type")
	if typ == nil {
		return nil
	}
	type piece struct {
		start uint32
		toks  []string
	}
	pieces := []piece{{typ.StartByte(), LexTokens(typ.Content(b.src))}}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c := n.NamedChild(i)
		if c.Type() == "type_qualifier" && c.StartByte() < declStart {
			pieces = append(pieces, piece{c.StartByte(), LexTokens(c.Content(b.src))})
		}
	}
	sort.Slice(pieces, func(i, j int) bool { return pieces[i].start < pieces[j].start })
	var toks []string
	for _, p := range pieces {
		toks = append(toks, p.toks...)
	}
	return append(toks, refToks...)
}

// declaratorIsConst reports whether a function declarator carries a const
// qualifier after its parameter list.
func declaratorIsConst(fn *sitter.Node, src []byte) bool {
	for i := 0; i < int(fn.NamedChildCount()); i++ {
		c := fn.NamedChild(i)
		if c.Type() == "type_qualifier" && c.Content(src) == "const" {
			return true
		}
	}
	return false
}

// params converts a parameter_list. C-style variadic ellipses become a
// parameter spelled "..." so later stages can reject the method.
func (b *treeBuilder) params(list *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(list.NamedChildCount()); i++ {
		c := list.NamedChild(i)
		switch c.Type() {
		case "parameter_declaration", "optional_parameter_declaration":
			p := &node{kind: KindParam, loc: b.location(c)}
			p.spelling, p.typeToks, p.nameSlot = b.paramNameAndType(c)
			out = append(out, p)
		case "variadic_parameter_declaration":
			out = append(out, &node{kind: KindParam, typeToks: []string{"..."}, nameSlot: 1, loc: b.location(c)})
		}
	}
	for i := 0; i < int(list.ChildCount()); i++ {
		if c := list.Child(i); c != nil && c.Type() == "..." {
			out = append(out, &node{kind: KindParam, typeToks: []string{"..."}, nameSlot: 1, loc: b.location(c)})
		}
	}
	return out
}

// paramNameAndType splits a parameter declaration into its declared name,
// the tokens of its type, and the token index where the name sits in the
// declarator. The halves on either side of the name position are lexed
// separately so function pointer and array shapes keep the slot their
// name belongs in, and everything from a default value initializer on is
// dropped. A negative index means the declarator offers no position.
func (b *treeBuilder) paramNameAndType(pn *sitter.Node) (string, []string, int) {
	text := string(b.src[pn.StartByte():pn.EndByte()])
	if id := findDeclaredName(pn); id != nil {
		rel, relEnd := id.StartByte()-pn.StartByte(), id.EndByte()-pn.StartByte()
		pre := LexTokens(text[:rel])
		return id.Content(b.src), append(pre, truncateAtDefault(LexTokens(text[relEnd:]))...), len(pre)
	}
	decl := pn.ChildByFieldName("declarator")
	if decl == nil {
		toks := truncateAtDefault(LexTokens(text))
		return "", toks, len(toks)
	}
	off, ok := abstractNameSlot(decl)
	if !ok {
		return "", truncateAtDefault(LexTokens(text)), -1
	}
	rel := off - pn.StartByte()
	pre := LexTokens(text[:rel])
	return "", append(pre, truncateAtDefault(LexTokens(text[rel:]))...), len(pre)
}

// truncateAtDefault cuts a token stream at a default value initializer.
func truncateAtDefault(toks []string) []string {
	for i, t := range toks {
		if t == "=" {
			return toks[:i]
		}
	}
	return toks
}

// abstractNameSlot walks an abstract declarator down to the byte offset a
// declared name would occupy: after the innermost pointer or reference,
// before an array or parameter list suffix. Shapes it does not recognize
// yield false.
func abstractNameSlot(decl *sitter.Node) (uint32, bool) {
	for decl != nil {
		switch decl.Type() {
		case "abstract_pointer_declarator", "abstract_reference_declarator":
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				decl = inner
				continue
			}
			return decl.EndByte(), true
		case "abstract_array_declarator":
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				decl = inner
				continue
			}
			return decl.StartByte(), true
		case "abstract_function_declarator":
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				decl = inner
				continue
			}
			if params := decl.ChildByFieldName("parameters"); params != nil {
				return params.StartByte(), true
			}
			return decl.StartByte(), true
		case "abstract_parenthesized_declarator":
			if decl.NamedChildCount() > 0 {
				decl = decl.NamedChild(0)
				continue
			}
			return 0, false
		default:
			return 0, false
		}
	}
	return 0, false
}

// findDeclaredName returns the identifier naming a parameter, descending
// through pointer, reference, array and parenthesized declarators.
func findDeclaredName(pn *sitter.Node) *sitter.Node {
	decl := pn.ChildByFieldName("declarator")
	for decl != nil {
		switch decl.Type() {
		case "identifier", "field_identifier", "type_identifier":
			return decl
		case "pointer_declarator", "array_declarator", "parenthesized_declarator",
			"reference_declarator", "function_declarator", "variadic_declarator":
			if inner := decl.ChildByFieldName("declarator"); inner != nil {
				decl = inner
				continue
			}
			if decl.NamedChildCount() > 0 {
				decl = decl.NamedChild(0)
				continue
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

// normalizeOperatorName removes whitespace between the operator keyword
// and a symbol spelling ("operator ==" becomes "operator=="). Conversion
// operators keep their space; the word after it is part of the type.
func normalizeOperatorName(name string) string {
	rest := strings.TrimLeft(name[len("operator"):], " \t")
	if rest == "" {
		return name
	}
	c := rest[0]
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return name
	}
	return "operator" + strings.ReplaceAll(rest, " ", "")
}

func (b *treeBuilder) location(n *sitter.Node) Location {
	p := n.StartPoint()
	return Location{File: b.file, Line: int(p.Row) + 1, Col: int(p.Column) + 1}
}

func containsToken(toks []string, want string) bool {
	for _, t := range toks {
		if t == want {
			return true
		}
	}
	return false
}

// endsWithPureSpecifier reports whether a declaration's token stream ends
// in "= 0", ignoring the trailing semicolon.
func endsWithPureSpecifier(toks []string) bool {
	if len(toks) > 0 && toks[len(toks)-1] == ";" {
		toks = toks[:len(toks)-1]
	}
	if len(toks) < 2 {
		return false
	}
	return toks[len(toks)-2] == "=" && toks[len(toks)-1] == "0"
}
