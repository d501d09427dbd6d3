package model

import (
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// EffectiveRegion returns e's effective region: its own region-ref if set,
// else the nearest ancestor's, else the document's first-declared region.
// Used by ISD generation to decide which materialized region a node
// attaches to.
func (e *Element) EffectiveRegion() *Region { return e.effectiveRegion() }

// effectiveRegion returns the region bound to e or, absent one, the region
// bound to its nearest ancestor. If no element in the ancestor chain carries
// a region-ref, it falls back to the document's first-declared region, if
// any.
func (e *Element) effectiveRegion() *Region {
	for cur := e; cur != nil; cur = cur.parent {
		if id, ok := cur.RegionRef(); ok {
			if cur.doc != nil {
				if r, found := cur.doc.Region(id); found {
					return r
				}
			}
			return nil
		}
	}
	if e.doc != nil {
		if regions := e.doc.Regions(); len(regions) > 0 {
			return regions[0]
		}
	}
	return nil
}

// animationValueAt returns the value of the most recently added animation
// step on e whose own interval contains t, if any. Later steps in
// declaration order win ties, mirroring CSS's last-declaration-wins rule.
func (e *Element) animationValueAt(p style.Property, t ratime.Time) (style.Value, bool) {
	own := e.ActiveInterval()
	var result style.Value
	found := false
	for _, s := range e.steps {
		if s.Property != p {
			continue
		}
		begin := own.Begin.Add(s.Begin)
		end := own.Begin.Add(s.End)
		if !t.Less(begin) && t.Less(end) {
			result = s.Value
			found = true
		}
	}
	return result, found
}

// ComputedStyle resolves the value of property p on element e at document
// root instant t, by cascade order:
//  1. an animation step active at t overrides everything;
//  2. e's own inline value;
//  3. for inheritable properties, the parent's computed value;
//  4. for properties that InheritsFromRegion, the effective region's
//     computed value (falling back to the same cascade, rooted at the
//     region instead of an ancestor element);
//  5. the document's initial-value override;
//  6. the property's declared default.
func ComputedStyle(e *Element, p style.Property, t ratime.Time) style.Value {
	m := style.Get(p)

	if v, ok := e.animationValueAt(p, t); ok {
		return v
	}
	if v, ok := e.InlineStyle(p); ok {
		return v
	}
	if m.Inheritable && e.parent != nil {
		return ComputedStyle(e.parent, p, t)
	}
	if m.InheritsFromRegion {
		if r := e.effectiveRegion(); r != nil {
			if v, ok := regionComputedStyle(r, p); ok {
				return v
			}
		}
	}
	if e.doc != nil {
		if v, ok := e.doc.InitialValue(p); ok {
			return v
		}
	}
	return m.Default
}

// regionComputedStyle resolves p on a region: its own inline value, else
// the region falls through to the document default in the caller.
func regionComputedStyle(r *Region, p style.Property) (style.Value, bool) {
	return r.InlineStyle(p)
}
