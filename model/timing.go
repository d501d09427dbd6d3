package model

import "github.com/sandflow/ttconv/ratime"

// Interval is a closed-open active interval [Begin, End) in document root
// time. End may be ratime.PositiveInfinity.
type Interval struct {
	Begin ratime.Time
	End   ratime.Time
}

// IsEmpty reports whether the interval contains no instant at all.
func (iv Interval) IsEmpty() bool {
	return !iv.Begin.Less(iv.End)
}

// Contains reports whether t falls within [Begin, End).
func (iv Interval) Contains(t ratime.Time) bool {
	return !t.Less(iv.Begin) && t.Less(iv.End)
}

func intersect(a, b Interval) Interval {
	return Interval{Begin: ratime.Max(a.Begin, b.Begin), End: ratime.Min(a.End, b.End)}
}

// ActiveInterval computes s(E)/e(E), the element's active interval in
// document root time. Every ancestor's own begin/end is
// parallel time relative to that ancestor's parent, so an element's
// absolute window is its parent's absolute begin plus its own offsets,
// clipped to the parent's own absolute window (an element can never be
// active outside the span its ancestor is active).
func (e *Element) ActiveInterval() Interval {
	parentIv := Interval{Begin: ratime.Zero, End: ratime.PositiveInfinity}
	if e.parent != nil {
		parentIv = e.parent.ActiveInterval()
	}
	if parentIv.IsEmpty() {
		return Interval{Begin: ratime.Zero, End: ratime.Zero}
	}

	begin := parentIv.Begin
	if e.timing.HasBegin {
		begin = parentIv.Begin.Add(e.timing.Begin)
	}
	end := parentIv.End
	if e.timing.HasEnd {
		end = parentIv.Begin.Add(e.timing.End)
	}
	return intersect(Interval{Begin: begin, End: end}, parentIv)
}

// IsActiveAt reports whether e is active at document-root instant t.
func (e *Element) IsActiveAt(t ratime.Time) bool {
	return e.ActiveInterval().Contains(t)
}
