package generator

import (
	"strings"

	"github.com/calumari/gmockgen/internal/cppast"
)

// classSite pairs a discovered class node with the lexical context needed
// later: the namespace chain for emitted namespace blocks and the chain of
// enclosing classes for qualified-path filtering.
type classSite struct {
	Node       cppast.Node
	Namespaces []string // outermost first
	Outer      []string // enclosing class names, outermost first
}

// qualifiedPath renders the site as ns::ns::Outer::Class, the form the
// inclusion filter matches against.
func (s classSite) qualifiedPath() string {
	parts := make([]string, 0, len(s.Namespaces)+len(s.Outer)+1)
	parts = append(parts, s.Namespaces...)
	parts = append(parts, s.Outer...)
	parts = append(parts, s.Node.Spelling())
	return strings.Join(parts, "::")
}

// discoverClasses walks the declaration tree and returns every class,
// struct and class template site in declaration order. Anonymous
// namespaces contribute nothing to the qualified path.
func discoverClasses(root cppast.Node) []classSite {
	var sites []classSite
	var walk func(n cppast.Node, namespaces, outer []string)
	walk = func(n cppast.Node, namespaces, outer []string) {
		for _, c := range n.Children() {
			switch c.Kind() {
			case cppast.KindNamespace:
				ns := namespaces
				if c.Spelling() != "" {
					ns = append(append([]string{}, namespaces...), c.Spelling())
				}
				walk(c, ns, nil)
			case cppast.KindClass, cppast.KindStruct, cppast.KindClassTemplate:
				sites = append(sites, classSite{Node: c, Namespaces: namespaces, Outer: outer})
				walk(c, namespaces, append(append([]string{}, outer...), c.Spelling()))
			}
		}
	}
	walk(root, nil, nil)
	return sites
}

// filterSites keeps the sites whose qualified path starts with expr. The
// filter decides per class, so a class nested inside a filtered-out one is
// still kept when its own path matches.
func filterSites(sites []classSite, expr string) []classSite {
	if expr == "" {
		return sites
	}
	var kept []classSite
	for _, s := range sites {
		if strings.HasPrefix(s.qualifiedPath(), expr) {
			kept = append(kept, s)
		}
	}
	return kept
}

// siblingIndex collects the qualified paths and plain names of all sites
// in one file, for resolving whether a base class is defined alongside
// the classes that inherit it. It is built before filtering so bases
// excluded by the filter still count as same-file.
func siblingIndex(sites []classSite) map[string]bool {
	idx := make(map[string]bool, len(sites)*2)
	for _, s := range sites {
		idx[s.qualifiedPath()] = true
		idx[s.Node.Spelling()] = true
	}
	return idx
}
