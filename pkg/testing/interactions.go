package testing

import (
	"fmt"

	"github.com/go-drift/primitives/pkg/events"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tap simulates an activation click on the first element matched by finder
// and pumps the resulting rebuilds.
//
// Disabled nodes swallow the click, same as a real host control.
func (t *WidgetTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no elements: %s", finder.Description())
	}
	node := extractNode(result.First())
	if node == nil {
		return fmt.Errorf("Tap: element has no rendered node: %s", finder.Description())
	}
	node.DispatchClick(events.PointerEvent{
		PointerID: allocPointerID(),
		Phase:     events.PointerPhaseUp,
	})
	return t.Pump()
}

// PressKey simulates a key press on the first element matched by finder
// and pumps the resulting rebuilds. The node's default key behavior runs
// unless its handler prevents it.
func (t *WidgetTester) PressKey(finder Finder, key events.Key) (events.KeyEventResult, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return events.KeyEventIgnored, fmt.Errorf("PressKey: finder matched no elements: %s", finder.Description())
	}
	node := extractNode(result.First())
	if node == nil {
		return events.KeyEventIgnored, fmt.Errorf("PressKey: element has no rendered node: %s", finder.Description())
	}
	outcome := node.DispatchKeyDown(events.NewKeyDown(key))
	if err := t.Pump(); err != nil {
		return outcome, err
	}
	return outcome, nil
}
