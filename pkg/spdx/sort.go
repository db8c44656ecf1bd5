package spdx

import (
	"sort"
	"strings"

	"complyhq/spdxexpr/pkg/spdx/ast"
)

// sortTree recursively imposes a total order on group children, after the
// children themselves have been sorted, so every commutative rearrangement
// of an expression canonicalizes to the same tree.
func sortTree(n ast.Node) ast.Node {
	group, ok := n.(*ast.Group)
	if !ok {
		return n
	}

	children := make([]ast.Node, len(group.Children))
	for i, child := range group.Children {
		children[i] = sortTree(child)
	}
	sort.SliceStable(children, func(i, j int) bool {
		return compareNodes(children[i], children[j]) < 0
	})
	return &ast.Group{Op: group.Op, Children: children}
}

// compareNodes is the canonical total order: components sort before nested
// groups; two components compare by their canonical string; two groups
// compare by child count and then by their rendered string. The rendered
// tie-break for equal-count groups is arbitrary but stable, which is all
// canonical output needs.
func compareNodes(a, b ast.Node) int {
	aComponent, aIsComponent := a.(*ast.Component)
	bComponent, bIsComponent := b.(*ast.Component)

	switch {
	case aIsComponent && bIsComponent:
		return strings.Compare(aComponent.String(), bComponent.String())
	case aIsComponent:
		return -1
	case bIsComponent:
		return 1
	}

	aGroup := a.(*ast.Group)
	bGroup := b.(*ast.Group)
	if d := len(aGroup.Children) - len(bGroup.Children); d != 0 {
		return d
	}
	return strings.Compare(render(a), render(b))
}
