// Package testing provides a widget testing framework for primitives.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions:
//
//	func TestMySwitch(t *testing.T) {
//	    tester := primtest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(widgets.Switch{DefaultChecked: true})
//
//	    // Find rendered nodes
//	    node := tester.Find(primtest.ByRole(semantics.RoleSwitch)).Node()
//
//	    // Simulate interaction
//	    tester.Tap(primtest.ByRole(semantics.RoleSwitch))
//
//	    // Assert state
//	    if node.AttrOr("data-state", "") != "unchecked" {
//	        t.Error("expected switch to toggle off")
//	    }
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import primtest "github.com/go-drift/primitives/pkg/testing"
package testing
