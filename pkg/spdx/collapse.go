package spdx

import "complyhq/spdxexpr/pkg/spdx/ast"

// collapse removes redundancy bottom-up: within each group, siblings whose
// canonical forms coincide are reduced to the first occurrence, and a group
// left with a single child dissolves into that child.
//
// The deduplication key is the rendering of the sorted form of each sibling,
// not of the sibling as written, so commutative permutations of the same
// group ("MIT AND ISC" next to "ISC AND MIT") count as duplicates even when
// the caller runs this pass before sorting or with sorting disabled.
//
// Deduplication never crosses operators. "A OR (A AND B)" keeps the inner
// group intact because simplifying it would change the expression's meaning;
// only duplicate siblings under the same operator are eligible.
func collapse(n ast.Node) ast.Node {
	group, ok := n.(*ast.Group)
	if !ok {
		return n
	}

	children := make([]ast.Node, 0, len(group.Children))
	seen := make(map[string]bool, len(group.Children))
	for _, child := range group.Children {
		collapsed := collapse(child)
		key := render(sortTree(collapsed))
		if seen[key] {
			continue
		}
		seen[key] = true
		children = append(children, collapsed)
	}
	return ast.NewGroup(group.Op, children)
}
