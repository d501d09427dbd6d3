package filter

import (
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

func init() {
	Register(Filter{Name: "lcd", CDM: lcdFilter})
}

// lcdFilter merges every region into a single safe-area region and strips
// every inline style except color and (optionally) textAlign.
func lcdFilter(d *model.Document, cfg map[string]any) (*model.Document, error) {
	out := model.NewDocument()
	_ = out.SetLang(d.Lang().String())

	safeArea := intOpt(cfg, "safe_area", 0)
	region, err := out.NewRegion("lcd_region")
	if err != nil {
		return nil, err
	}
	origin := pct(int64(safeArea))
	extent := pct(int64(100 - 2*safeArea))
	_ = region.SetStyle(style.Origin, style.LengthPairValue(origin, origin))
	_ = region.SetStyle(style.Extent, style.LengthPairValue(extent, extent))
	_ = region.SetStyle(style.ShowBackground, style.EnumValue("always"))

	if c, ok := cfg["color"].(ratime.Color); ok {
		_ = region.SetStyle(style.Color, style.ColorValue(c))
	}
	if c, ok := cfg["bg_color"].(ratime.Color); ok {
		_ = region.SetStyle(style.BackgroundColor, style.ColorValue(c))
	}

	preserveAlign, _ := cfg["preserve_text_align"].(bool)

	if body := d.Body(); body != nil {
		newBody := cloneStripped(body, region.ID, preserveAlign)
		if err := out.SetBody(newBody); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func intOpt(cfg map[string]any, key string, def int) int {
	if v, ok := cfg[key].(int); ok {
		return v
	}
	return def
}

func pct(n int64) ratime.Length {
	l, _ := ratime.NewLength(n, 1, ratime.UnitPercent)
	return l
}

// cloneStripped deep-copies e, retaining only the color/textAlign styles,
// timing, and color animation steps, and re-pointing any region reference
// at regionID.
func cloneStripped(e *model.Element, regionID string, preserveAlign bool) *model.Element {
	if e.Kind() == model.KindText {
		return model.NewText(e.Text())
	}

	ne := model.NewElement(e.Kind())
	if e.Kind() != model.KindBr {
		if v, ok := e.InlineStyle(style.Color); ok {
			_ = ne.SetStyle(style.Color, v)
		}
		if preserveAlign {
			if v, ok := e.InlineStyle(style.TextAlign); ok {
				_ = ne.SetStyle(style.TextAlign, v)
			}
		}
		if _, ok := e.RegionRef(); ok {
			ne.SetRegionRef(regionID)
		}
		_ = ne.SetTiming(e.Timing())
		for _, s := range e.AnimationSteps() {
			if s.Property == style.Color {
				_ = ne.AddAnimationStep(s)
			}
		}
	}
	_ = ne.SetLang(e.Lang())

	for _, c := range e.Children() {
		_ = ne.AppendChild(cloneStripped(c, regionID, preserveAlign))
	}
	return ne
}
