package model

import (
	"github.com/sandflow/ttconv/errs"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// Timing holds an element's own begin/end offsets, relative to its parent's
// parallel time coordinate. Either bound may be absent.
type Timing struct {
	Begin    ratime.Time
	HasBegin bool
	End      ratime.Time
	HasEnd   bool
}

// AnimationStep temporarily overrides one style property over an interval
// relative to its owning element's own timing coordinate.
type AnimationStep struct {
	Begin, End ratime.Time
	Property   style.Property
	Value      style.Value
}

// Element is every content-element kind, tagged by Kind. Only the fields
// meaningful for e.Kind are populated; accessors that are meaningless for
// the current kind panic, which only fires on programmer error since every
// caller is expected to check Kind first.
type Element struct {
	kind Kind
	doc  *Document

	parent   *Element
	children []*Element

	styles map[style.Property]style.Value
	timing Timing
	steps  []AnimationStep

	regionRef string
	hasRegion bool

	lang string
	text string // KindText payload only
}

// NewElement creates a detached element of the given kind.
func NewElement(kind Kind) *Element {
	return &Element{kind: kind, styles: make(map[style.Property]style.Value)}
}

// NewText creates a detached KindText element carrying s.
func NewText(s string) *Element {
	return &Element{kind: KindText, text: s}
}

func (e *Element) Kind() Kind { return e.kind }

// Document returns the document this element is attached to, or nil if
// detached.
func (e *Element) Document() *Document { return e.doc }

func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children in document order. The returned
// slice must not be mutated by the caller; use the tree mutation API.
func (e *Element) Children() []*Element { return e.children }

func (e *Element) Text() string {
	if e.kind != KindText {
		panic("model: Text() called on a non-text element")
	}
	return e.text
}

func (e *Element) SetText(s string) {
	if e.kind != KindText {
		panic("model: SetText() called on a non-text element")
	}
	e.text = s
}

func (e *Element) Lang() string { return e.lang }

func (e *Element) SetLang(lang string) error {
	if e.kind == KindText {
		return errs.New(errs.KindStructure, "model.SetLang", "text elements carry no language tag", nil)
	}
	e.lang = lang
	return nil
}

// SetStyle sets an inline style value, validating it against the
// property's declared domain.
func (e *Element) SetStyle(p style.Property, v style.Value) error {
	if e.kind == KindText || e.kind == KindBr {
		return errs.New(errs.KindStructure, "model.SetStyle", e.kind.String()+" elements carry no styles", nil)
	}
	if err := style.Validate(p, v); err != nil {
		return err
	}
	e.styles[p] = v
	return nil
}

// UnsetStyle removes an inline style value, if any.
func (e *Element) UnsetStyle(p style.Property) {
	delete(e.styles, p)
}

// InlineStyle returns the inline value for p and whether it was set.
func (e *Element) InlineStyle(p style.Property) (style.Value, bool) {
	v, ok := e.styles[p]
	return v, ok
}

// InlineStyles returns a copy of the element's full inline style map.
func (e *Element) InlineStyles() map[style.Property]style.Value {
	out := make(map[style.Property]style.Value, len(e.styles))
	for k, v := range e.styles {
		out[k] = v
	}
	return out
}

func (e *Element) Timing() Timing { return e.timing }

// SetTiming sets the element's own begin/end offsets. A negative offset is
// a *domain* error.
func (e *Element) SetTiming(t Timing) error {
	if e.kind == KindText {
		return errs.New(errs.KindStructure, "model.SetTiming", "text elements carry no timing", nil)
	}
	if t.HasBegin && t.Begin.IsNegative() {
		return errs.New(errs.KindDomain, "model.SetTiming", "begin must not be negative", nil)
	}
	if t.HasEnd && t.End.IsNegative() {
		return errs.New(errs.KindDomain, "model.SetTiming", "end must not be negative", nil)
	}
	e.timing = t
	return nil
}

// AnimationSteps returns a copy of the element's animation steps.
func (e *Element) AnimationSteps() []AnimationStep {
	out := make([]AnimationStep, len(e.steps))
	copy(out, e.steps)
	return out
}

// AddAnimationStep appends an animation step, validating its value against
// Property's domain.
func (e *Element) AddAnimationStep(step AnimationStep) error {
	if e.kind == KindText || e.kind == KindBr {
		return errs.New(errs.KindStructure, "model.AddAnimationStep", e.kind.String()+" elements carry no animation", nil)
	}
	if err := style.Validate(step.Property, step.Value); err != nil {
		return err
	}
	if step.Begin.IsNegative() || step.End.IsNegative() {
		return errs.New(errs.KindDomain, "model.AddAnimationStep", "animation bounds must not be negative", nil)
	}
	e.steps = append(e.steps, step)
	return nil
}

// RemoveAnimationStep removes the step at index i.
func (e *Element) RemoveAnimationStep(i int) {
	e.steps = append(e.steps[:i], e.steps[i+1:]...)
}

// RegionRef returns the bound region id and whether one is set.
func (e *Element) RegionRef() (string, bool) { return e.regionRef, e.hasRegion }

// SetRegionRef binds the element (and, absent an override, its subtree) to
// the region with the given id. The id must resolve in the owning
// document's region table once the element is attached; an unattached
// element may set any id, validated at ISD-generation time instead.
func (e *Element) SetRegionRef(id string) {
	e.regionRef = id
	e.hasRegion = true
}

// ClearRegionRef removes the region binding.
func (e *Element) ClearRegionRef() {
	e.regionRef = ""
	e.hasRegion = false
}
