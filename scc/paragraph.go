package scc

import (
	"github.com/sandflow/ttconv/model"
	"github.com/sandflow/ttconv/ratime"
	"github.com/sandflow/ttconv/style"
)

// toElement converts a trimmed display-grid snapshot into a P element:
// contiguous same-style runs become Spans, row breaks become Br, and the
// trimmed rectangle is expressed as origin/extent percentages of the 32x15
// safe-area grid.
func (raw rawParagraph) toElement(regionID string) *model.Element {
	firstRow, lastRow, firstCol, lastCol, ok := trim(raw.Rows)
	if !ok {
		return nil
	}

	p := model.NewElement(model.KindP)
	p.SetRegionRef(regionID)
	_ = p.SetTiming(model.Timing{Begin: raw.Begin, HasBegin: true, End: raw.End, HasEnd: raw.HasEnd})

	originX := pct(firstCol, gridCols)
	originY := pct(firstRow, gridRows)
	extentW := pct(lastCol-firstCol+1, gridCols)
	extentH := pct(lastRow-firstRow+1, gridRows)
	_ = p.SetStyle(style.Origin, style.LengthPairValue(originX, originY))
	_ = p.SetStyle(style.Extent, style.LengthPairValue(extentW, extentH))

	for r := firstRow; r <= lastRow; r++ {
		if r > firstRow {
			br := model.NewElement(model.KindBr)
			_ = p.AppendChild(br)
		}
		appendRowSpans(p, raw.Rows[r], firstCol, lastCol)
	}
	return p
}

var penColors = map[string]ratime.Color{
	"white":   ratime.ColorWhite,
	"green":   ratime.ColorGreen,
	"blue":    ratime.ColorBlue,
	"cyan":    ratime.ColorCyan,
	"red":     ratime.ColorRed,
	"yellow":  ratime.ColorYellow,
	"magenta": ratime.ColorMagenta,
}

func pct(n, of int) ratime.Length {
	l, _ := ratime.NewLength(int64(n)*100, int64(of), ratime.UnitPercent)
	return l
}

func appendRowSpans(p *model.Element, row [gridCols]Cell, firstCol, lastCol int) {
	c := firstCol
	for c <= lastCol {
		st := row[c].Style
		var text []rune
		for c <= lastCol && row[c].Style == st {
			ch := row[c].Char
			if ch == 0 {
				ch = ' '
			}
			text = append(text, ch)
			c++
		}
		span := model.NewElement(model.KindSpan)
		if c, ok := penColors[st.Color]; ok {
			_ = span.SetStyle(style.Color, style.ColorValue(c))
		}
		if st.Italic {
			_ = span.SetStyle(style.FontStyle, style.EnumValue("italic"))
		}
		if st.Underline {
			_ = span.SetStyle(style.TextDecoration, style.EnumValue("underline"))
		}
		txt := model.NewText(string(text))
		_ = span.AppendChild(txt)
		_ = p.AppendChild(span)
	}
}
