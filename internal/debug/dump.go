package debug

import (
	"sort"

	"github.com/sandflow/ttconv/isd"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/ttml"
)

// DumpDocument renders the full CDM: every declared region followed by
// the content tree rooted at body.
func DumpDocument(d *model.Document) string {
	tw := NewTreeWriter()
	tw.Line(0, "document lang=%q", d.Lang().String())
	for _, r := range d.Regions() {
		tw.Line(1, "region %s", r.ID)
		dumpStyleMap(tw, 2, r.InlineStyles())
	}
	if body := d.Body(); body != nil {
		dumpElement(tw, 1, body)
	}
	return tw.String()
}

func dumpElement(tw *TreeWriter, depth int, e *model.Element) {
	if e.Kind() == model.KindText {
		tw.TextBlock(depth, "text", e.Text())
		return
	}
	label := e.Kind().String()
	if rid, ok := e.RegionRef(); ok {
		label += " region=" + rid
	}
	t := e.Timing()
	if t.HasBegin || t.HasEnd {
		label += " timing="
		if t.HasBegin {
			label += t.Begin.String()
		}
		label += ".."
		if t.HasEnd {
			label += t.End.String()
		}
	}
	tw.Line(depth, "%s", label)
	dumpStyleMap(tw, depth+1, e.InlineStyles())
	for _, c := range e.Children() {
		dumpElement(tw, depth+1, c)
	}
}

func dumpStyleMap(tw *TreeWriter, depth int, styles map[style.Property]style.Value) {
	props := make([]style.Property, 0, len(styles))
	for p := range styles {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i].String() < props[j].String() })
	for _, p := range props {
		tw.Line(depth, "%s=%s", p.String(), ttml.ValueToAttr(p, styles[p]))
	}
}

// DumpISD renders a generated ISD: each materialized region followed by
// its resolved node tree.
func DumpISD(doc *isd.Document) string {
	tw := NewTreeWriter()
	for _, r := range doc.Regions {
		tw.Line(0, "region %s", r.ID)
		dumpStyleMap(tw, 1, r.Styles)
		for _, n := range r.Children {
			dumpISDNode(tw, 1, n)
		}
	}
	return tw.String()
}

func dumpISDNode(tw *TreeWriter, depth int, n *isd.Node) {
	if n.Kind == model.KindText {
		tw.TextBlock(depth, "text", n.Text)
		return
	}
	tw.Line(depth, "%s", n.Kind.String())
	dumpStyleMap(tw, depth+1, n.Styles)
	for _, c := range n.Children {
		dumpISDNode(tw, depth+1, c)
	}
}
