// Package ast defines the canonical tree representation of a parsed SPDX
// license expression.
//
// A tree is either a single Component (a license id or LicenseRef, with an
// optional WITH attachment) or a Group of nodes joined by AND or OR. The
// node set is closed so every transformation pass can type-switch
// exhaustively.
//
// # Core Types
//
// Node: closed interface over *Component and *Group
//
// Component: license identity (SimpleLicense or LicenseRef) plus optional
// Exception attachment (ExceptionID or AdditionRef)
//
// Group: operator (AND/OR) and two or more children
//
// Walker: depth-first fold with per-kind injection points
//
// # Invariants
//
// Trees produced by the parser are canonical: a Group never contains an
// immediate child that is a Group with the same operator, and (after
// collapsing) never has fewer than two children. Nodes are treated as
// immutable after construction; passes that rewrite a tree build new nodes
// and never mutate the ones they received.
//
// # Traversal
//
// Use Walk with a Walker to fold a tree into any result without re-deriving
// its shape:
//
//	type idCollector struct {
//		ast.BaseWalker
//		ids []string
//	}
//
//	func (c *idCollector) VisitComponent(n *ast.Component) (any, error) {
//		c.ids = append(c.ids, n.License.String())
//		return n, nil
//	}
//
//	collector := &idCollector{}
//	if _, err := ast.Walk(tree, collector); err != nil {
//		log.Fatal(err)
//	}
package ast
