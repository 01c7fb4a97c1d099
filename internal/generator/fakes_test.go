package generator

import (
	"github.com/calumari/gmockgen/internal/cppast"
)

// fakeNode is a hand-built cppast.Node for tests that exercise the
// generator stages without a parser.
type fakeNode struct {
	kind     cppast.Kind
	spelling string
	typeToks []string
	nameSlot int
	isConst  bool
	isPure   bool
	isStatic bool
	children []cppast.Node
}

func (n fakeNode) Kind() cppast.Kind       { return n.kind }
func (n fakeNode) Spelling() string        { return n.spelling }
func (n fakeNode) TypeTokens() []string    { return n.typeToks }
func (n fakeNode) NameSlot() int           { return n.nameSlot }
func (n fakeNode) IsConst() bool           { return n.isConst }
func (n fakeNode) IsPureVirtual() bool     { return n.isPure }
func (n fakeNode) IsStatic() bool          { return n.isStatic }
func (n fakeNode) Children() []cppast.Node { return n.children }
func (n fakeNode) Location() cppast.Location {
	return cppast.Location{File: "fake.h", Line: 1, Col: 1}
}

func fakeParam(name string, toks ...string) fakeNode {
	return fakeNode{kind: cppast.KindParam, spelling: name, typeToks: toks, nameSlot: len(toks)}
}

// fakeParamAt places the name inside the declarator instead of after it,
// the shape function pointer and array parameters take.
func fakeParamAt(name string, slot int, toks ...string) fakeNode {
	return fakeNode{kind: cppast.KindParam, spelling: name, typeToks: toks, nameSlot: slot}
}

func fakePureMethod(name string, ret []string, params ...cppast.Node) fakeNode {
	return fakeNode{kind: cppast.KindMethod, spelling: name, typeToks: ret, isPure: true, children: params}
}

func fakeClass(name string, children ...cppast.Node) fakeNode {
	return fakeNode{kind: cppast.KindClass, spelling: name, children: children}
}

func fakeNamespace(name string, children ...cppast.Node) fakeNode {
	return fakeNode{kind: cppast.KindNamespace, spelling: name, children: children}
}

func fakeRoot(children ...cppast.Node) fakeNode {
	return fakeNode{kind: cppast.KindUnknown, spelling: "fake.h", children: children}
}
