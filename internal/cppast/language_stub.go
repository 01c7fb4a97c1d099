//go:build !(darwin || freebsd || linux)

package cppast

import (
	sitter "github.com/smacker/go-tree-sitter"
	"gitlab.com/tozd/go/errors"
)

func loadLanguage(path string) (*sitter.Language, error) {
	return nil, errors.Errorf("grammar libraries are not supported on this platform (%s)", path)
}
