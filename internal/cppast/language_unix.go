//go:build darwin || freebsd || linux

package cppast

import (
	"unsafe"

	"github.com/ebitengine/purego"
	sitter "github.com/smacker/go-tree-sitter"
	"gitlab.com/tozd/go/errors"
)

// loadLanguage opens a shared library and resolves its tree_sitter_cpp
// entry point. Grammar libraries built with tree-sitter's own tooling all
// export this symbol.
func loadLanguage(path string) (*sitter.Language, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	sym, err := purego.Dlsym(lib, "tree_sitter_cpp")
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var language func() uintptr
	purego.RegisterFunc(&language, sym)
	ptr := language()
	if ptr == 0 {
		return nil, errors.New("tree_sitter_cpp returned a null language")
	}
	return sitter.NewLanguage(unsafe.Pointer(ptr)), nil
}
