package core

import (
	"testing"

	"github.com/go-drift/primitives/pkg/dom"
)

// testStatelessWidget is a simple stateless widget for testing.
type testStatelessWidget struct {
	StatelessBase
	buildFn func(BuildContext) Widget
}

func (w testStatelessWidget) Build(ctx BuildContext) Widget {
	if w.buildFn != nil {
		return w.buildFn(ctx)
	}
	return nil
}

// testNodeWidget renders a node with a fixed tag and label attribute.
type testNodeWidget struct {
	NodeBase
	tag   string
	label string
	child Widget
}

func (w testNodeWidget) ChildWidget() Widget { return w.child }

func (w testNodeWidget) CreateNode(ctx BuildContext) *dom.Node {
	return dom.NewNode(w.tag)
}

func (w testNodeWidget) UpdateNode(ctx BuildContext, node *dom.Node) {
	node.SetAttr("label", w.label)
}

// testStatefulWidget hosts counterState.
type testStatefulWidget struct {
	StatefulBase
	initial int
}

func (w testStatefulWidget) CreateState() State { return &counterState{} }

type counterState struct {
	StateBase
	count  int
	builds int
}

func (s *counterState) InitState() {
	s.count = s.Element().Widget().(testStatefulWidget).initial
}

func (s *counterState) Build(ctx BuildContext) Widget {
	s.builds++
	return testNodeWidget{tag: "counter", label: itoa(s.count)}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func mountTestRoot(t *testing.T, owner *BuildOwner, widget Widget) (Element, *dom.Node) {
	t.Helper()
	host := testNodeWidget{tag: "root", child: widget}
	root := MountRoot(host, owner)
	if root == nil {
		t.Fatal("MountRoot returned nil")
	}
	node := root.(*NodeElement).Node()
	t.Cleanup(root.Unmount)
	return root, node
}

func TestMountRoot_BuildsTree(t *testing.T) {
	owner := NewBuildOwner()
	_, rootNode := mountTestRoot(t, owner, testStatefulWidget{initial: 3})

	children := rootNode.Children()
	if len(children) != 1 {
		t.Fatalf("root has %d children, want 1", len(children))
	}
	if children[0].Tag != "counter" {
		t.Errorf("child tag = %q, want %q", children[0].Tag, "counter")
	}
	if got := children[0].AttrOr("label", ""); got != "3" {
		t.Errorf("label = %q, want %q", got, "3")
	}
}

func TestSetState_SchedulesRebuild(t *testing.T) {
	owner := NewBuildOwner()
	root, rootNode := mountTestRoot(t, owner, testStatefulWidget{})

	var state *counterState
	root.VisitChildren(func(child Element) bool {
		if stateful, ok := child.(*StatefulElement); ok {
			state = stateful.State().(*counterState)
			return false
		}
		return true
	})
	if state == nil {
		t.Fatal("stateful element not found")
	}

	state.SetState(func() { state.count = 7 })
	if !owner.NeedsWork() {
		t.Fatal("SetState should schedule a rebuild")
	}
	owner.FlushBuild()

	if got := rootNode.Children()[0].AttrOr("label", ""); got != "7" {
		t.Errorf("label after rebuild = %q, want %q", got, "7")
	}
}

func TestFlushBuild_RebuildsOnce(t *testing.T) {
	owner := NewBuildOwner()
	root, _ := mountTestRoot(t, owner, testStatefulWidget{})

	var state *counterState
	root.VisitChildren(func(child Element) bool {
		if stateful, ok := child.(*StatefulElement); ok {
			state = stateful.State().(*counterState)
			return false
		}
		return true
	})

	builds := state.builds
	state.SetState(nil)
	state.SetState(nil)
	owner.FlushBuild()

	if state.builds != builds+1 {
		t.Errorf("builds = %d, want %d (coalesced)", state.builds, builds+1)
	}
}

func TestUpdateChild_TypeChangeRemounts(t *testing.T) {
	owner := NewBuildOwner()

	swap := NewObservable(false)
	widget := testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		if swap.Value() {
			return testNodeWidget{tag: "after"}
		}
		return testStatefulWidget{}
	}}

	root, rootNode := mountTestRoot(t, owner, widget)
	if rootNode.Children()[0].Tag != "counter" {
		t.Fatalf("initial child tag = %q, want %q", rootNode.Children()[0].Tag, "counter")
	}

	var stateless *StatelessElement
	root.VisitChildren(func(child Element) bool {
		stateless = child.(*StatelessElement)
		return false
	})

	swap.Set(true)
	stateless.MarkNeedsBuild()
	owner.FlushBuild()

	children := rootNode.Children()
	if len(children) != 1 {
		t.Fatalf("root has %d children after swap, want 1", len(children))
	}
	if children[0].Tag != "after" {
		t.Errorf("child tag after swap = %q, want %q", children[0].Tag, "after")
	}
}

func TestUnmount_DisposesState(t *testing.T) {
	owner := NewBuildOwner()
	host := testNodeWidget{tag: "root", child: testStatefulWidget{}}
	root := MountRoot(host, owner)

	var state *counterState
	root.VisitChildren(func(child Element) bool {
		state = child.(*StatefulElement).State().(*counterState)
		return false
	})

	root.Unmount()
	if !state.IsDisposed() {
		t.Error("state should be disposed on unmount")
	}
}

func TestBuildPanic_RendersNothing(t *testing.T) {
	owner := NewBuildOwner()
	widget := testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		panic("boom")
	}}

	_, rootNode := mountTestRoot(t, owner, widget)
	if len(rootNode.Children()) != 0 {
		t.Errorf("panicking build produced %d children, want 0", len(rootNode.Children()))
	}
}

func TestFragment_ReconcilesByIndex(t *testing.T) {
	owner := NewBuildOwner()

	count := NewObservable(2)
	widget := testStatelessWidget{buildFn: func(ctx BuildContext) Widget {
		children := make([]Widget, count.Value())
		for i := range children {
			children[i] = testNodeWidget{tag: "item", label: itoa(i)}
		}
		return Fragment{Children: children}
	}}

	root, rootNode := mountTestRoot(t, owner, widget)
	if len(rootNode.Children()) != 2 {
		t.Fatalf("root has %d children, want 2", len(rootNode.Children()))
	}

	var stateless *StatelessElement
	root.VisitChildren(func(child Element) bool {
		stateless = child.(*StatelessElement)
		return false
	})

	count.Set(1)
	stateless.MarkNeedsBuild()
	owner.FlushBuild()

	if len(rootNode.Children()) != 1 {
		t.Errorf("root has %d children after shrink, want 1", len(rootNode.Children()))
	}
}
