package filter_test

import (
	"testing"

	"github.com/sandflow/ttconv/filter"
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

func buildLCDInputDoc(t *testing.T) *model.Document {
	t.Helper()
	doc := model.NewDocument()
	if err := doc.SetLang("en"); err != nil {
		t.Fatalf("SetLang: %v", err)
	}
	region, err := doc.NewRegion("r1")
	if err != nil {
		t.Fatalf("NewRegion: %v", err)
	}
	if err := region.SetStyle(style.Extent, style.LengthPairValue(
		mustLength(t, 80, ratime.UnitPercent), mustLength(t, 20, ratime.UnitPercent))); err != nil {
		t.Fatalf("SetStyle: %v", err)
	}

	body := model.NewElement(model.KindBody)
	div := model.NewElement(model.KindDiv)
	p := model.NewElement(model.KindP)
	p.SetRegionRef("r1")
	if err := p.SetStyle(style.Color, style.ColorValue(ratime.Opaque(255, 0, 0))); err != nil {
		t.Fatalf("SetStyle color: %v", err)
	}
	if err := p.SetStyle(style.TextAlign, style.EnumValue("center")); err != nil {
		t.Fatalf("SetStyle textAlign: %v", err)
	}
	if err := p.SetStyle(style.FontWeight, style.EnumValue("bold")); err != nil {
		t.Fatalf("SetStyle fontWeight: %v", err)
	}
	if err := p.SetTiming(model.Timing{Begin: ratime.FromInt(1), HasBegin: true, End: ratime.FromInt(3), HasEnd: true}); err != nil {
		t.Fatalf("SetTiming: %v", err)
	}
	text := model.NewText("Hello")
	if err := p.AppendChild(text); err != nil {
		t.Fatalf("AppendChild text: %v", err)
	}
	if err := div.AppendChild(p); err != nil {
		t.Fatalf("AppendChild p: %v", err)
	}
	if err := body.AppendChild(div); err != nil {
		t.Fatalf("AppendChild div: %v", err)
	}
	if err := doc.SetBody(body); err != nil {
		t.Fatalf("SetBody: %v", err)
	}
	return doc
}

func mustLength(t *testing.T, n int64, u ratime.Unit) ratime.Length {
	t.Helper()
	l, err := ratime.NewLength(n, 1, u)
	if err != nil {
		t.Fatalf("NewLength: %v", err)
	}
	return l
}

// lcdFilter must collapse every region into a single safe-area region and
// keep only color/textAlign inline styles, dropping anything else (like
// fontWeight) along with the original region's own extent.
func TestLCDFilter_CollapsesRegionsAndStripsStyles(t *testing.T) {
	doc := buildLCDInputDoc(t)
	cfg := map[string]map[string]any{
		"lcd": {
			"safe_area":           10,
			"preserve_text_align": true,
			"color":               ratime.Opaque(0, 255, 0),
		},
	}
	out, err := filter.Chain([]string{"lcd"}, cfg, doc)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}

	regions := out.Regions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	region := regions[0]
	if region.ID != "lcd_region" {
		t.Errorf("region id = %q, want lcd_region", region.ID)
	}
	origin, ok := region.InlineStyle(style.Origin)
	if !ok {
		t.Fatal("region has no origin")
	}
	if origin.Lengths[0].Value.Num().Int64() != 10 || origin.Lengths[1].Value.Num().Int64() != 10 {
		t.Errorf("origin = %v, want 10%% both axes", origin)
	}
	extent, ok := region.InlineStyle(style.Extent)
	if !ok {
		t.Fatal("region has no extent")
	}
	if extent.Lengths[0].Value.Num().Int64() != 80 || extent.Lengths[1].Value.Num().Int64() != 80 {
		t.Errorf("extent = %v, want 80%% both axes (100-2*safe_area)", extent)
	}
	if v, ok := region.InlineStyle(style.Color); !ok || v.Color != ratime.Opaque(0, 255, 0) {
		t.Errorf("region color = %v, ok=%v, want lime", v.Color, ok)
	}

	var p *model.Element
	out.Body().Walk(func(e *model.Element) bool {
		if e.Kind() == model.KindP {
			p = e
		}
		return true
	})
	if p == nil {
		t.Fatal("output document has no p element")
	}
	if ref, ok := p.RegionRef(); !ok || ref != "lcd_region" {
		t.Errorf("p region ref = %q, ok=%v, want lcd_region", ref, ok)
	}
	if _, ok := p.InlineStyle(style.Color); !ok {
		t.Error("p lost its color style, want it kept")
	}
	if _, ok := p.InlineStyle(style.TextAlign); !ok {
		t.Error("p lost its textAlign style, want it kept (preserve_text_align=true)")
	}
	if _, ok := p.InlineStyle(style.FontWeight); ok {
		t.Error("p kept fontWeight, want it stripped")
	}
	timing := p.Timing()
	if !timing.HasBegin || !timing.Begin.Equal(ratime.FromInt(1)) || !timing.HasEnd || !timing.End.Equal(ratime.FromInt(3)) {
		t.Errorf("p timing = %+v, want begin=1s end=3s preserved", timing)
	}
}

// Without preserve_text_align, textAlign is stripped along with every other
// non-color inline style.
func TestLCDFilter_DropsTextAlignWhenNotPreserved(t *testing.T) {
	doc := buildLCDInputDoc(t)
	cfg := map[string]map[string]any{
		"lcd": {"safe_area": 0, "preserve_text_align": false},
	}
	out, err := filter.Chain([]string{"lcd"}, cfg, doc)
	if err != nil {
		t.Fatalf("Chain: %v", err)
	}
	var p *model.Element
	out.Body().Walk(func(e *model.Element) bool {
		if e.Kind() == model.KindP {
			p = e
		}
		return true
	})
	if p == nil {
		t.Fatal("output document has no p element")
	}
	if _, ok := p.InlineStyle(style.TextAlign); ok {
		t.Error("p kept textAlign, want it stripped (preserve_text_align=false)")
	}
}
