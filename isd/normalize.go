package isd

import (
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// normalize converts every length carried by v to rh/rw root-relative units
// using the document's resolution. position is never
// emitted as its own property in this model - origin/extent carry its
// effect directly, so only those two (plus padding and fontSize) need
// conversion.
func normalize(res ratime.Resolution, p style.Property, v style.Value) style.Value {
	m := style.Get(p)
	switch m.Domain {
	case style.DomainLength:
		horizontal := false // fontSize is measured against cell height
		v.Length = v.Length.ToRootRelative(res, horizontal)
		return v
	case style.DomainLengthPair:
		if len(v.Lengths) != 2 {
			return v
		}
		out := make([]ratime.Length, 2)
		out[0] = v.Lengths[0].ToRootRelative(res, true)  // horizontal component
		out[1] = v.Lengths[1].ToRootRelative(res, false) // vertical component
		v.Lengths = out
		return v
	case style.DomainLengthQuad:
		if len(v.Lengths) != 4 {
			return v
		}
		// declaration order: top, right, bottom, left (CSS shorthand convention)
		axes := [4]bool{false, true, false, true}
		out := make([]ratime.Length, 4)
		for i, l := range v.Lengths {
			out[i] = l.ToRootRelative(res, axes[i])
		}
		v.Lengths = out
		return v
	default:
		return v
	}
}
