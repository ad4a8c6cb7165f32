package widgets

import (
	"github.com/go-drift/primitives/pkg/core"
	"github.com/go-drift/primitives/pkg/dom"
	"github.com/go-drift/primitives/pkg/theme"
)

// SwitchThumb is the visual indicator rendered inside a [Switch]. It is a
// plain span carrying only presentation attributes; the enclosing switch
// button owns all state and accessibility attributes, so the thumb stays
// invisible to assistive technology.
//
//	widgets.Switch{
//	    Child: widgets.SwitchThumb{},
//	}
type SwitchThumb struct {
	core.NodeBase

	// Attributes are applied to the rendered span.
	Attributes []dom.Attribute
}

func (t SwitchThumb) CreateNode(ctx core.BuildContext) *dom.Node {
	return dom.NewNode("span")
}

func (t SwitchThumb) UpdateNode(ctx core.BuildContext, node *dom.Node) {
	node.ClearAttrs()
	if class := theme.ThemeOf(ctx).Switch.ThumbClass; class != "" {
		node.SetAttr("class", class)
	}
	for _, attr := range t.Attributes {
		node.SetAttr(attr.Name, attr.Value)
	}
}
