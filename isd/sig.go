package isd

import (
	"sort"

	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
)

// SignificantTimes computes sig(D): the strictly increasing sequence of
// instants at which the ISD can change - the
// document origin, plus every element's active-interval bounds, plus every
// animation step's absolute bounds. Writers iterate this to build a
// sequence of ISDs covering the whole document.
func SignificantTimes(d *model.Document) []ratime.Time {
	set := map[string]ratime.Time{}
	add := func(t ratime.Time) {
		set[t.String()] = t
	}
	add(ratime.Zero)

	body := d.Body()
	if body != nil {
		body.Walk(func(e *model.Element) bool {
			iv := e.ActiveInterval()
			if iv.IsEmpty() {
				return true
			}
			add(iv.Begin)
			if !iv.End.IsInfinite() {
				add(iv.End)
			}
			for _, s := range e.AnimationSteps() {
				begin := iv.Begin.Add(s.Begin)
				end := iv.Begin.Add(s.End)
				add(begin)
				if !end.IsInfinite() {
					add(end)
				}
			}
			return true
		})
	}

	out := make([]ratime.Time, 0, len(set))
	for _, t := range set {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}
