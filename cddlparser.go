// Package cddlparser parses Concise Data Definition Language (CDDL,
// RFC 8610) source text into a lossless abstract syntax tree: one whose
// Serialize method reproduces the original input byte for byte, and whose
// nodes can be walked, classified, and re-serialized with an ast.Marker to
// add structured annotations without perturbing the output.
package cddlparser

import (
	"github.com/tidoust/cddlparser/ast"
	"github.com/tidoust/cddlparser/classifier"
	"github.com/tidoust/cddlparser/parser"
)

// Parse lexes, parses, and classifies source, returning the resulting
// tree. Classification resolves rules whose right-hand side is
// grammatically ambiguous between a type and a group definition (any rule
// written with a plain "="); it requires the whole document, since a
// rule's classification can depend on rules defined anywhere else in the
// tree.
func Parse(source string) (*ast.CDDLTree, error) {
	p, err := parser.NewParser(source)
	if err != nil {
		return nil, err
	}
	tree, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if err := classifier.Classify(tree); err != nil {
		return nil, err
	}
	return tree, nil
}
