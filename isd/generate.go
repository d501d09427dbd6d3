package isd

import (
	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// Generate produces the ISD of d at instant t. t must be
// non-negative.
func Generate(d *model.Document, t ratime.Time) (*Document, error) {
	if t.IsNegative() {
		return nil, errs.New(errs.KindDomain, "isd.Generate", "time must not be negative", nil)
	}

	res := d.Resolution()
	body := d.Body()

	activeRegions := map[string]bool{}
	var missing error
	if body != nil {
		body.Walk(func(e *model.Element) bool {
			if id, ok := e.RegionRef(); ok && missing == nil {
				if _, found := d.Region(id); !found {
					missing = errs.New(errs.KindMissingRegion, "isd.Generate", "region "+id+" is not declared", nil)
				}
			}
			// Only active text counts as content: untimed containers such as
			// body, which always fall back to a region, do not by themselves
			// make a region active.
			if e.Kind() != model.KindText || !e.IsActiveAt(t) {
				return true
			}
			if r := e.EffectiveRegion(); r != nil {
				activeRegions[r.ID] = true
			}
			return true
		})
	}
	if missing != nil {
		return nil, missing
	}

	var out Document
	for _, r := range d.Regions() {
		showBG := regionStyle(d, r, style.ShowBackground)
		if !activeRegions[r.ID] && showBG.Enum != "always" {
			continue
		}
		rs := &Region{ID: r.ID, Styles: resolveRegionStyles(d, res, r)}
		if body != nil && body.IsActiveAt(t) {
			rs.Children = regionNodes(body, r, t, res)
		}
		rs.Children = pruneEmpty(rs.Children)
		rs.Children = mergeAdjacentText(rs.Children)
		out.Regions = append(out.Regions, rs)
	}
	return &out, nil
}

// regionNodes builds the subtree materialized under region r, rooted at
// body.
func regionNodes(body *model.Element, r *model.Region, t ratime.Time, res ratime.Resolution) []*Node {
	if n := contribute(body, r, t, res); n != nil {
		return []*Node{n}
	}
	return childrenFor(body, r, t, res)
}

// contribute returns e as a Node if its effective region is r, recursing
// into its own children. Returns nil if e does not bind to r.
func contribute(e *model.Element, r *model.Region, t ratime.Time, res ratime.Resolution) *Node {
	if e.EffectiveRegion() != r {
		return nil
	}
	n := &Node{Kind: e.Kind(), Lang: e.Lang()}
	if e.Kind() == model.KindText {
		n.Text = e.Text()
		return n
	}
	n.Styles = resolveElementStyles(e, t, res)
	n.Children = childrenFor(e, r, t, res)
	return n
}

// childrenFor walks e's active children, attaching any that contribute to r
// directly and flattening in the contributions of descendants of children
// that don't bind to r themselves.
func childrenFor(e *model.Element, r *model.Region, t ratime.Time, res ratime.Resolution) []*Node {
	var out []*Node
	for _, c := range e.Children() {
		if !c.IsActiveAt(t) {
			continue
		}
		if n := contribute(c, r, t, res); n != nil {
			out = append(out, n)
		} else {
			out = append(out, childrenFor(c, r, t, res)...)
		}
	}
	return out
}

func resolveElementStyles(e *model.Element, t ratime.Time, res ratime.Resolution) map[style.Property]style.Value {
	out := make(map[style.Property]style.Value)
	for _, p := range style.All() {
		out[p] = normalize(res, p, model.ComputedStyle(e, p, t))
	}
	return out
}

func resolveRegionStyles(d *model.Document, res ratime.Resolution, r *model.Region) map[style.Property]style.Value {
	out := make(map[style.Property]style.Value)
	for _, p := range style.All() {
		out[p] = normalize(res, p, regionStyle(d, r, p))
	}
	return out
}

// regionStyle resolves a region's own computed value for p: its inline
// value, else the document's initial-value override, else the property
// default. Regions have no parent, so inheritance stops here.
func regionStyle(d *model.Document, r *model.Region, p style.Property) style.Value {
	if v, ok := r.InlineStyle(p); ok {
		return v
	}
	if v, ok := d.InitialValue(p); ok {
		return v
	}
	return style.Get(p).Default
}
