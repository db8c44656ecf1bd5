package ast

import (
	"reflect"
	"testing"
)

func sampleTree() Node {
	return &Group{
		Op: OperatorOr,
		Children: []Node{
			&Component{License: SimpleLicense{ID: "Apache-2.0"}},
			&Group{
				Op: OperatorAnd,
				Children: []Node{
					&Component{License: SimpleLicense{ID: "MIT"}},
					&Component{
						License:   SimpleLicense{ID: "GPL-2.0-only"},
						Exception: ExceptionID("Classpath-exception-2.0"),
					},
				},
			},
		},
	}
}

func TestWalk_IdentityRebuildsEqualTree(t *testing.T) {
	tree := sampleTree()
	got, err := Walk(tree, BaseWalker{})
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("identity walk = %+v, want %+v", got, tree)
	}
}

type depthRecorder struct {
	BaseWalker
	depths []int
}

func (r *depthRecorder) VisitGroup(op any, depth int, children []any) (any, error) {
	r.depths = append(r.depths, depth)
	return r.BaseWalker.VisitGroup(op, depth, children)
}

func TestWalk_GroupDepths(t *testing.T) {
	recorder := &depthRecorder{}
	if _, err := Walk(sampleTree(), recorder); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	// Children are visited before their group: inner AND at depth 1,
	// outer OR at depth 0.
	want := []int{1, 0}
	if !reflect.DeepEqual(recorder.depths, want) {
		t.Errorf("depths = %v, want %v", recorder.depths, want)
	}
}

type componentCounter struct {
	BaseWalker
	count int
}

func (c *componentCounter) VisitComponent(n *Component) (any, error) {
	c.count++
	return n, nil
}

func TestWalk_VisitsEveryComponent(t *testing.T) {
	counter := &componentCounter{}
	if _, err := Walk(sampleTree(), counter); err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	if counter.count != 3 {
		t.Errorf("count = %d, want 3", counter.count)
	}
}

func TestNewGroup(t *testing.T) {
	mit := &Component{License: SimpleLicense{ID: "MIT"}}
	isc := &Component{License: SimpleLicense{ID: "ISC"}}
	apache := &Component{License: SimpleLicense{ID: "Apache-2.0"}}

	t.Run("singleton dissolves", func(t *testing.T) {
		if got := NewGroup(OperatorOr, []Node{mit}); got != Node(mit) {
			t.Errorf("NewGroup() = %+v, want the sole child", got)
		}
	})

	t.Run("same-operator child splices", func(t *testing.T) {
		inner := &Group{Op: OperatorOr, Children: []Node{isc, apache}}
		group := NewGroup(OperatorOr, []Node{mit, inner}).(*Group)
		if len(group.Children) != 3 {
			t.Fatalf("len(Children) = %d, want 3", len(group.Children))
		}
	})

	t.Run("different operator child kept", func(t *testing.T) {
		inner := &Group{Op: OperatorAnd, Children: []Node{isc, apache}}
		group := NewGroup(OperatorOr, []Node{mit, inner}).(*Group)
		if len(group.Children) != 2 {
			t.Fatalf("len(Children) = %d, want 2", len(group.Children))
		}
	})
}

func TestComponentString(t *testing.T) {
	tests := []struct {
		name      string
		component *Component
		want      string
	}{
		{
			"simple",
			&Component{License: SimpleLicense{ID: "MIT"}},
			"MIT",
		},
		{
			"or-later",
			&Component{License: SimpleLicense{ID: "Apache-1.1", OrLater: true}},
			"Apache-1.1+",
		},
		{
			"with exception",
			&Component{License: SimpleLicense{ID: "GPL-2.0-only"}, Exception: ExceptionID("Classpath-exception-2.0")},
			"GPL-2.0-only WITH Classpath-exception-2.0",
		},
		{
			"license ref",
			&Component{License: LicenseRef{ID: "acme"}},
			"LicenseRef-acme",
		},
		{
			"scoped license ref",
			&Component{License: LicenseRef{ID: "acme", DocumentRef: "doc"}},
			"DocumentRef-doc:LicenseRef-acme",
		},
		{
			"addition ref",
			&Component{License: LicenseRef{ID: "acme"}, Exception: AdditionRef{ID: "extra", DocumentRef: "doc"}},
			"LicenseRef-acme WITH DocumentRef-doc:AdditionRef-extra",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.component.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
