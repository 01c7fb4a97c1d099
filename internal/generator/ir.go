package generator

import (
	"github.com/calumari/gmockgen/internal/cppast"
)

// This file houses the intermediate representation (IR) structures used
// across generator phases (discovery -> extraction -> signature building ->
// macro selection -> model building -> render).

// operator classification, resolved once per method and carried through
// the later phases.
type operatorKind int

const (
	operatorNone operatorKind = iota
	operatorCall               // operator()
	operatorOther              // any other overloadable operator
)

// interfaceFile groups the classes extracted from one input header, in
// declaration order.
type interfaceFile struct {
	Path    string
	Classes []classDecl
}

// classDecl is one interface class ready for model building.
type classDecl struct {
	Name       string
	Namespaces []string        // enclosing namespaces, outermost first
	Outer      []string        // enclosing classes, outermost first
	Template   []templateParam // empty for non-template classes
	Bases      []baseRef
	Methods    []methodDecl // directly declared pure virtual non-static only
	SourceFile string
	Location   cppast.Location
}

// templateParam is one parameter of a class template head.
type templateParam struct {
	Keyword string // "typename", "class", or a non-type parameter's type
	Name    string
}

// baseRef names a base class and whether its definition lives in the same
// input file.
type baseRef struct {
	Name     string
	SameFile bool
}

// methodDecl captures a single pure virtual method signature.
type methodDecl struct {
	Name     string
	Return   string  // spelled return type
	Params   []param // declaration order
	IsConst  bool
	Operator operatorKind
	Location cppast.Location
}

// param is one method parameter; Name is never empty after signature
// building (missing names are synthesized by position). Decl carries the
// full parameter declaration with the name spliced into its declarator
// slot, which only coincides with "Type Name" when the name trails the
// type; function pointer and array parameters embed it.
type param struct {
	Name string
	Type string // spelled type
	Decl string // spelled declaration, name included
}

// mockMethodEntry is one rendered entry of the mock class body. Operator
// methods carry their forwarding override in Wrapper; plain methods leave
// it empty.
type mockMethodEntry struct {
	Macro     string // e.g. MOCK_CONST_METHOD2_T
	Name      string // mockable name, renamed for operators
	Signature string // ret(type name, ...) with every parameter named
	Wrapper   string // forwarding override line, "" when Operator == operatorNone
}

// mockModel is the root render model for one class; the header and source
// halves are projected from it just before template execution.
type mockModel struct {
	Interface        string // interface class name as declared
	MockClass        string
	Guard            string
	Namespaces       []string // outermost first
	Bases            []string // base class names as declared
	Include          string   // base name of the originating header
	TemplatePreamble string   // "template <typename T, int N>", "" when not templated
	TemplateArgs     string   // "<T, N>", "" when not templated
	HeaderFile       string   // e.g. foo-gmock.h
	SourceFile       string   // e.g. foo-gmock.cpp
	OutDir           string
	Entries          []mockMethodEntry
}
