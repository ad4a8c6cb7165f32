package testing

import (
	"errors"
	"testing"

	"github.com/go-drift/primitives/pkg/core"
	"github.com/go-drift/primitives/pkg/dom"
	"github.com/go-drift/primitives/pkg/theme"
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its frame budget.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// WidgetTester provides isolated widget testing without a real host.
// It drives the same build phases as a live tree but renders into an
// in-memory node tree that tests inspect directly.
type WidgetTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	rootNode   *dom.Node
	theme      *theme.ThemeData
	dispatches []func()
}

// NewWidgetTester creates a tester with default test environment.
// Call Cleanup() when done, or use NewWidgetTesterWithT() instead.
func NewWidgetTester() *WidgetTester {
	return &WidgetTester{
		buildOwner: core.NewBuildOwner(),
		rootNode:   dom.NewNode("root"),
		theme:      theme.DefaultTheme().Copy(),
	}
}

// NewWidgetTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t *testing.T) *WidgetTester {
	tester := NewWidgetTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using NewWidgetTesterWithT.
func (t *WidgetTester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *WidgetTester) SetTheme(td *theme.ThemeData) {
	t.theme = td
}

// PumpWidget mounts (or remounts) a widget and flushes the build.
func (t *WidgetTester) PumpWidget(widget core.Widget) error {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
		t.rootNode = dom.NewNode("root")
	}

	// Wrap in test scaffold: root node host → Theme → user widget
	wrapped := rootHost{
		node: t.rootNode,
		child: theme.Theme{
			Data:  t.theme,
			Child: widget,
		},
	}

	t.root = core.MountRoot(wrapped, t.buildOwner)
	return t.Pump()
}

// Pump runs a single cycle: queued dispatches, then a build flush.
func (t *WidgetTester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	t.buildOwner.FlushBuild()
	return nil
}

// PumpAndSettle pumps until no rebuilds are pending, up to maxFrames cycles.
func (t *WidgetTester) PumpAndSettle(maxFrames int) error {
	for frame := 0; frame < maxFrames; frame++ {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.buildOwner.NeedsWork() && len(t.dispatches) == 0 {
			return nil
		}
	}
	return ErrSettleTimeout
}

// Dispatch queues a callback for the next pump.
func (t *WidgetTester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *WidgetTester) RootElement() core.Element {
	return t.root
}

// RootNode returns the root of the rendered node tree.
func (t *WidgetTester) RootNode() *dom.Node {
	return t.rootNode
}

// Render serializes the rendered node tree to markup.
func (t *WidgetTester) Render() string {
	var out string
	for _, child := range t.rootNode.Children() {
		out += child.Render()
	}
	return out
}

// Find evaluates a finder against the current element tree.
func (t *WidgetTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// rootHost anchors the rendered tree to a pre-made node so tests can hold
// a stable reference across remounts.
type rootHost struct {
	core.NodeBase
	node  *dom.Node
	child core.Widget
}

func (h rootHost) ChildWidget() core.Widget { return h.child }

func (h rootHost) CreateNode(ctx core.BuildContext) *dom.Node { return h.node }

func (h rootHost) UpdateNode(ctx core.BuildContext, node *dom.Node) {}

// extractNode walks from an element to its rendered node, if any.
func extractNode(e core.Element) *dom.Node {
	if e == nil {
		return nil
	}
	if host, ok := e.(interface{ Node() *dom.Node }); ok {
		return host.Node()
	}
	return nil
}
