package model

import (
	"testing"

	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

func TestNewRegionDuplicateID(t *testing.T) {
	d := NewDocument()
	if _, err := d.NewRegion("r1"); err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	if _, err := d.NewRegion("r1"); err == nil {
		t.Fatal("expected duplicate-id error, got nil")
	}
}

func TestRegionsPreserveDeclarationOrder(t *testing.T) {
	d := NewDocument()
	for _, id := range []string{"c", "a", "b"} {
		if _, err := d.NewRegion(id); err != nil {
			t.Fatalf("NewRegion(%q): %v", id, err)
		}
	}
	var got []string
	for _, r := range d.Regions() {
		got = append(got, r.ID)
	}
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Regions() = %v, want %v", got, want)
		}
	}
}

func TestAppendChildRejectsDisallowedKind(t *testing.T) {
	body := NewElement(KindBody)
	p := NewElement(KindP)
	if err := body.AppendChild(p); err == nil {
		t.Fatal("expected structure error appending p directly to body")
	}
}

func TestAppendChildRejectsAttachedChild(t *testing.T) {
	div := NewElement(KindDiv)
	p := NewElement(KindP)
	if err := div.AppendChild(p); err != nil {
		t.Fatalf("AppendChild: %v", err)
	}
	other := NewElement(KindDiv)
	if err := other.AppendChild(p); err == nil {
		t.Fatal("expected structure error appending an already-parented child")
	}
}

func TestRemoveChildDetaches(t *testing.T) {
	doc := NewDocument()
	body := NewElement(KindBody)
	div := NewElement(KindDiv)
	p := NewElement(KindP)
	if err := div.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := body.AppendChild(div); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetBody(body); err != nil {
		t.Fatal(err)
	}

	removed := div.RemoveChild(0)
	if removed != p {
		t.Fatal("RemoveChild returned the wrong element")
	}
	if p.Parent() != nil {
		t.Error("removed child still has a parent")
	}
	if p.Document() != nil {
		t.Error("removed child still attached to document")
	}
}

func TestSetTimingRejectsNegative(t *testing.T) {
	p := NewElement(KindP)
	err := p.SetTiming(Timing{Begin: ratime.FromInt(-1), HasBegin: true})
	if err == nil {
		t.Fatal("expected domain error for negative begin")
	}
}

func TestSetStyleRejectsTextAndBr(t *testing.T) {
	txt := NewText("hi")
	if err := txt.SetStyle(style.Color, style.ColorValue(ratime.ColorWhite)); err == nil {
		t.Fatal("expected structure error setting style on text")
	}
	br := NewElement(KindBr)
	if err := br.SetStyle(style.Color, style.ColorValue(ratime.ColorWhite)); err == nil {
		t.Fatal("expected structure error setting style on br")
	}
}

func TestIntervalZeroLengthNeverActive(t *testing.T) {
	p := NewElement(KindP)
	if err := p.SetTiming(Timing{Begin: ratime.FromInt(1), HasBegin: true, End: ratime.FromInt(1), HasEnd: true}); err != nil {
		t.Fatal(err)
	}
	if p.IsActiveAt(ratime.FromInt(1)) {
		t.Error("zero-length interval must never be active")
	}
}

func TestActiveIntervalClippedByParent(t *testing.T) {
	div := NewElement(KindDiv)
	if err := div.SetTiming(Timing{Begin: ratime.FromInt(1), HasBegin: true, End: ratime.FromInt(3), HasEnd: true}); err != nil {
		t.Fatal(err)
	}
	p := NewElement(KindP)
	if err := div.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if !p.IsActiveAt(ratime.FromInt(2)) {
		t.Error("p should inherit parent's active window")
	}
	if p.IsActiveAt(ratime.FromInt(4)) {
		t.Error("p must not be active outside its parent's window")
	}
}

func TestEffectiveRegionInheritsFromAncestor(t *testing.T) {
	doc := NewDocument()
	if _, err := doc.NewRegion("r1"); err != nil {
		t.Fatal(err)
	}
	body := NewElement(KindBody)
	div := NewElement(KindDiv)
	div.SetRegionRef("r1")
	p := NewElement(KindP)
	if err := div.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := body.AppendChild(div); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetBody(body); err != nil {
		t.Fatal(err)
	}
	r := p.EffectiveRegion()
	if r == nil || r.ID != "r1" {
		t.Fatalf("EffectiveRegion() = %v, want r1", r)
	}
}

func TestComputedStyleCascade(t *testing.T) {
	body := NewElement(KindBody)
	if err := body.SetStyle(style.Color, style.ColorValue(ratime.ColorBlue)); err != nil {
		t.Fatal(err)
	}
	div := NewElement(KindDiv)
	p := NewElement(KindP)
	span := NewElement(KindSpan)
	if err := p.AppendChild(span); err != nil {
		t.Fatal(err)
	}
	if err := div.AppendChild(p); err != nil {
		t.Fatal(err)
	}
	if err := body.AppendChild(div); err != nil {
		t.Fatal(err)
	}

	v := ComputedStyle(span, style.Color, ratime.Zero)
	if v.Color != ratime.ColorBlue {
		t.Errorf("ComputedStyle(color) = %v, want blue", v.Color)
	}
}

func TestComputedStyleAnimationOverridesInline(t *testing.T) {
	span := NewElement(KindSpan)
	if err := span.SetStyle(style.Color, style.ColorValue(ratime.ColorRed)); err != nil {
		t.Fatal(err)
	}
	if err := span.AddAnimationStep(AnimationStep{
		Begin: ratime.FromInt(1), End: ratime.FromInt(2),
		Property: style.Color, Value: style.ColorValue(ratime.ColorGreen),
	}); err != nil {
		t.Fatal(err)
	}

	if v := ComputedStyle(span, style.Color, ratime.FromSeconds(5, 10)); v.Color != ratime.ColorRed {
		t.Errorf("at t=0.5, color = %v, want red", v.Color)
	}
	if v := ComputedStyle(span, style.Color, ratime.FromSeconds(15, 10)); v.Color != ratime.ColorGreen {
		t.Errorf("at t=1.5, color = %v, want green", v.Color)
	}
	if v := ComputedStyle(span, style.Color, ratime.FromInt(2)); v.Color != ratime.ColorRed {
		t.Errorf("at t=2 (step end, half-open), color = %v, want red", v.Color)
	}
}

func TestReparentAcrossDocumentsRejected(t *testing.T) {
	d1 := NewDocument()
	d2 := NewDocument()
	body1 := NewElement(KindBody)
	div1 := NewElement(KindDiv)
	if err := body1.AppendChild(div1); err != nil {
		t.Fatal(err)
	}
	if err := d1.SetBody(body1); err != nil {
		t.Fatal(err)
	}
	body2 := NewElement(KindBody)
	if err := d2.SetBody(body2); err != nil {
		t.Fatal(err)
	}
	if err := div1.Reparent(body2, 0); err == nil {
		t.Fatal("expected error reparenting across documents")
	}
}
