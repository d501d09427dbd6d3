package isd

import (
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
)

const bgProp = style.BackgroundColor

// mergeAdjacentText merges runs of adjacent Text children within the same
// parent into a single Text node.
func mergeAdjacentText(children []*Node) []*Node {
	out := children[:0]
	for _, n := range children {
		if n.Kind == model.KindText && len(out) > 0 && out[len(out)-1].Kind == model.KindText {
			out[len(out)-1].Text += n.Text
			continue
		}
		out = append(out, n)
	}
	return out
}

// pruneEmpty removes Span/P nodes with no text, no children, and no visible
// background, recursively.
func pruneEmpty(children []*Node) []*Node {
	out := make([]*Node, 0, len(children))
	for _, n := range children {
		if n.Kind != model.KindText {
			n.Children = pruneEmpty(n.Children)
			n.Children = mergeAdjacentText(n.Children)
		}
		if isPrunable(n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func isPrunable(n *Node) bool {
	if n.Kind != model.KindSpan && n.Kind != model.KindP {
		return false
	}
	if len(n.Children) > 0 {
		return false
	}
	if hasVisibleBackground(n) {
		return false
	}
	return true
}

func hasVisibleBackground(n *Node) bool {
	v, ok := n.Styles[bgProp]
	return ok && v.Color.A > 0
}
