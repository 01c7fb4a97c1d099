// Package cppast exposes C++ declarations as a narrow, provider-agnostic
// node tree. Consumers only see Node; the tree-sitter backing lives
// entirely inside this package so that it can be swapped without touching
// the generator.
package cppast

// Kind identifies what a node declares.
type Kind int

const (
	KindUnknown Kind = iota
	KindNamespace
	KindClass
	KindStruct
	KindClassTemplate
	KindMethod
	KindParam
	KindTemplateTypeParam
	KindTemplateNonTypeParam
	KindTemplateTemplateParam
	KindBase
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindClassTemplate:
		return "class template"
	case KindMethod:
		return "method"
	case KindParam:
		return "parameter"
	case KindTemplateTypeParam:
		return "template type parameter"
	case KindTemplateNonTypeParam:
		return "template non-type parameter"
	case KindTemplateTemplateParam:
		return "template template parameter"
	case KindBase:
		return "base specifier"
	default:
		return "unknown"
	}
}

// Location is a 1-based source position.
type Location struct {
	File string
	Line int
	Col  int
}

// Node is the capability surface any AST provider must satisfy. It is
// read-only: the generator never mutates or re-parses through it.
//
// TypeTokens carries the token-level type description of the node: the
// return type for a method, the parameter type (declared name and default
// value excluded) for a parameter, the underlying type for a non-type
// template parameter. It is empty for kinds that have no type.
//
// NameSlot is the index into TypeTokens where a parameter's declared or
// synthesized name belongs. Function pointer and array declarators embed
// the name inside the type, so re-emitting "type name" is only correct
// when the slot equals len(TypeTokens()). A negative slot means the
// declarator offers no position for a name. Other kinds report zero.
type Node interface {
	Kind() Kind
	Spelling() string
	TypeTokens() []string
	NameSlot() int
	IsConst() bool
	IsPureVirtual() bool
	IsStatic() bool
	Children() []Node
	Location() Location
}

// node is the eager value implementation built during parsing. The whole
// tree is materialized up front so the provider's own structures can be
// released as soon as parsing finishes.
type node struct {
	kind     Kind
	spelling string
	typeToks []string
	nameSlot int
	isConst  bool
	isPure   bool
	isStatic bool
	children []Node
	loc      Location
}

func (n *node) Kind() Kind           { return n.kind }
func (n *node) Spelling() string     { return n.spelling }
func (n *node) TypeTokens() []string { return n.typeToks }
func (n *node) NameSlot() int        { return n.nameSlot }
func (n *node) IsConst() bool        { return n.isConst }
func (n *node) IsPureVirtual() bool  { return n.isPure }
func (n *node) IsStatic() bool       { return n.isStatic }
func (n *node) Children() []Node     { return n.children }
func (n *node) Location() Location   { return n.loc }
