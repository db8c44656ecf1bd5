package ast

import "strings"

// Operator is the boolean connective of a Group.
type Operator string

const (
	OperatorAnd Operator = "AND"
	OperatorOr  Operator = "OR"
)

// Node is a parsed SPDX expression tree: either a single *Component or a
// *Group of nodes joined by one operator. The set of implementations is
// closed; transformation passes type-switch exhaustively over it.
type Node interface {
	node()
}

// Group is a boolean combination of two or more child nodes.
//
// A canonical Group always has at least two distinct children (singleton
// groups dissolve into their sole child) and never has an immediate child
// that is a Group with the same operator (same-operator nesting is flattened
// one level as the tree is built).
type Group struct {
	Op       Operator
	Children []Node
}

func (*Group) node() {}

// NewGroup assembles a group node from children, splicing in the children of
// any child group carrying the same operator so same-operator nesting never
// survives construction. A single child is returned as-is instead of being
// wrapped.
func NewGroup(op Operator, children []Node) Node {
	if len(children) == 1 {
		return children[0]
	}
	flat := make([]Node, 0, len(children))
	for _, child := range children {
		if g, ok := child.(*Group); ok && g.Op == op {
			flat = append(flat, g.Children...)
			continue
		}
		flat = append(flat, child)
	}
	return &Group{Op: op, Children: flat}
}

// Component is the atomic leaf of an expression: a license identity plus an
// optional WITH attachment. A WITH attachment binds to exactly one
// component; it can never attach to a Group.
type Component struct {
	License   License
	Exception Exception // nil when there is no WITH clause
}

func (*Component) node() {}

// String renders the component in canonical SPDX form, e.g.
// "GPL-2.0-only WITH Classpath-exception-2.0".
func (c *Component) String() string {
	var sb strings.Builder
	sb.WriteString(c.License.String())
	if c.Exception != nil {
		sb.WriteString(" WITH ")
		sb.WriteString(c.Exception.String())
	}
	return sb.String()
}

// License is the identity of a component: a registered id (SimpleLicense)
// or a user-defined reference (LicenseRef).
type License interface {
	license()
	String() string
}

// SimpleLicense is a registered license id, optionally marked "or any later
// version" via the + suffix.
type SimpleLicense struct {
	ID      string
	OrLater bool
}

func (SimpleLicense) license() {}

func (l SimpleLicense) String() string {
	if l.OrLater {
		return l.ID + "+"
	}
	return l.ID
}

// LicenseRef is a user-defined license reference, optionally scoped to an
// external document.
type LicenseRef struct {
	ID          string
	DocumentRef string // empty when unscoped
}

func (LicenseRef) license() {}

func (r LicenseRef) String() string {
	if r.DocumentRef != "" {
		return "DocumentRef-" + r.DocumentRef + ":LicenseRef-" + r.ID
	}
	return "LicenseRef-" + r.ID
}

// Exception is the WITH attachment of a component: a registered exception id
// (ExceptionID) or a user-defined reference (AdditionRef).
type Exception interface {
	exception()
	String() string
}

// ExceptionID is a registered license exception id.
type ExceptionID string

func (ExceptionID) exception() {}

func (e ExceptionID) String() string { return string(e) }

// AdditionRef is a user-defined exception reference, optionally scoped to an
// external document.
type AdditionRef struct {
	ID          string
	DocumentRef string // empty when unscoped
}

func (AdditionRef) exception() {}

func (a AdditionRef) String() string {
	if a.DocumentRef != "" {
		return "DocumentRef-" + a.DocumentRef + ":AdditionRef-" + a.ID
	}
	return "AdditionRef-" + a.ID
}
