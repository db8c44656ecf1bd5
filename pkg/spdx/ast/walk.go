package ast

import "fmt"

// Walker provides the injection points for a depth-first fold over an
// expression tree. Each visit method returns the value the parent group
// receives in place of the node it visited, so a Walker can rewrite the tree,
// render it, or reduce it to an arbitrary result.
//
// Embed BaseWalker to get identity behavior for the methods you do not
// override.
type Walker interface {
	// VisitOperator is called once per group, before the group's children.
	VisitOperator(op Operator) (any, error)

	// VisitComponent is called for every leaf component.
	VisitComponent(c *Component) (any, error)

	// VisitGroup is called after a group's children have been visited.
	// op is VisitOperator's result, depth is the group's nesting depth
	// (0 for the outermost node) and children holds the visited children
	// in order.
	VisitGroup(op any, depth int, children []any) (any, error)
}

// BaseWalker implements Walker with identity behavior: walking a tree with
// it yields a structurally equal tree.
type BaseWalker struct{}

// VisitOperator returns the operator unchanged.
func (BaseWalker) VisitOperator(op Operator) (any, error) { return op, nil }

// VisitComponent returns the component unchanged.
func (BaseWalker) VisitComponent(c *Component) (any, error) { return c, nil }

// VisitGroup reassembles a *Group from the visited parts. If an overridden
// sibling method produced values that are no longer tree nodes, the raw
// (op, children) pair is returned instead so custom folds compose.
func (BaseWalker) VisitGroup(op any, depth int, children []any) (any, error) {
	o, ok := op.(Operator)
	if !ok {
		return append([]any{op}, children...), nil
	}
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		n, ok := child.(Node)
		if !ok {
			return append([]any{op}, children...), nil
		}
		nodes = append(nodes, n)
	}
	return &Group{Op: o, Children: nodes}, nil
}

// Walk folds the tree depth-first with the given walker and returns the
// walker's result for the root node. The traversal is recursive; nesting
// depth is bounded upstream by the parser, not here.
func Walk(n Node, w Walker) (any, error) {
	return walk(n, w, 0)
}

func walk(n Node, w Walker, depth int) (any, error) {
	switch t := n.(type) {
	case *Component:
		return w.VisitComponent(t)
	case *Group:
		op, err := w.VisitOperator(t.Op)
		if err != nil {
			return nil, err
		}
		children := make([]any, 0, len(t.Children))
		for _, child := range t.Children {
			v, err := walk(child, w, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, v)
		}
		return w.VisitGroup(op, depth, children)
	default:
		return nil, fmt.Errorf("unknown node type %T", n)
	}
}
