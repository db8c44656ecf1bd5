package spdx

import (
	"errors"
	"fmt"
	"strings"

	"complyhq/spdxexpr/pkg/spdx/ast"
)

// ErrEmptyTree is returned by Unparse for a nil tree.
var ErrEmptyTree = errors.New("cannot unparse an empty expression tree")

// unparser renders a tree depth-first. A group is joined by its operator
// and parenthesized only when nested: the outermost group never needs
// parentheses, and parser precedence makes every deeper group ambiguous
// without them.
type unparser struct {
	ast.BaseWalker
}

func (unparser) VisitOperator(op ast.Operator) (any, error) {
	return " " + string(op) + " ", nil
}

func (unparser) VisitComponent(c *ast.Component) (any, error) {
	return c.String(), nil
}

func (unparser) VisitGroup(op any, depth int, children []any) (any, error) {
	if len(children) == 0 {
		return nil, errors.New("group has no children")
	}
	separator, ok := op.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected operator value %v", op)
	}
	parts := make([]string, 0, len(children))
	for _, child := range children {
		s, ok := child.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected child value %v", child)
		}
		parts = append(parts, s)
	}
	joined := strings.Join(parts, separator)
	if depth > 0 {
		return "(" + joined + ")", nil
	}
	return joined, nil
}

// Unparse renders a tree back to an SPDX expression string, synthesizing
// parentheses only where precedence would otherwise be ambiguous. Unparsing
// a tree produced by an engine with default options yields the expression's
// canonical form.
func Unparse(n ast.Node) (string, error) {
	if n == nil {
		return "", ErrEmptyTree
	}
	rendered, err := ast.Walk(n, unparser{})
	if err != nil {
		return "", err
	}
	return rendered.(string), nil
}

// render is the internal, error-swallowing form of Unparse used for
// comparison keys. Trees built by the parser always render.
func render(n ast.Node) string {
	s, err := Unparse(n)
	if err != nil {
		return ""
	}
	return s
}
