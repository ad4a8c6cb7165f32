package dom

import (
	"strings"
)

// VisuallyHiddenStyle removes a node from layout and painting while keeping
// it in the tree for form submission: zero size, zero opacity, absolutely
// positioned out of flow, and transparent to pointer events.
const VisuallyHiddenStyle = "transform: translateX(-100%); position: absolute; pointer-events: none; opacity: 0; margin: 0; width: 0; height: 0;"

// Render serializes the subtree to a markup string for diagnostics and
// snapshot comparison. Attributes appear in insertion order; void content
// is collapsed to a self-closing tag.
func (n *Node) Render() string {
	var sb strings.Builder
	renderNode(&sb, n, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, n *Node, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		if a.Value != "" {
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(a.Value))
			sb.WriteByte('"')
		}
	}
	if len(n.children) == 0 {
		sb.WriteString("/>\n")
		return
	}
	sb.WriteString(">\n")
	for _, child := range n.children {
		renderNode(sb, child, depth+1)
	}
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteString(">\n")
}

func escapeAttr(v string) string {
	replacer := strings.NewReplacer(`&`, "&amp;", `"`, "&quot;", `<`, "&lt;")
	return replacer.Replace(v)
}
