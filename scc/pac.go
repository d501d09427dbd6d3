package scc

// PenStyle is the current text attributes at the cursor.
type PenStyle struct {
	Color     string // "white","green","blue","cyan","red","yellow","magenta"
	Italic    bool
	Underline bool
}

var pacColors = []string{"white", "green", "blue", "cyan", "red", "yellow", "magenta"}

// pacRowTable decodes the row (1-15) a PAC code's bytes address. CEA-608
// interleaves rows across byte1 values and one bit of byte2 rather than
// encoding them directly, per CEA-608-B Table 53.
var pacRowTable = [16]int{11, 11, 1, 2, 3, 4, 12, 13, 14, 15, 5, 6, 7, 8, 9, 10}

func pacRow(b1, b2 byte) int {
	idx := ((b1 & 0x07) << 1) | ((b2 >> 5) & 0x01)
	return pacRowTable[idx]
}

// pacStyle decodes the style half of a PAC code: either a color+underline
// pair, an italics+underline pair, or an indent+underline pair, selected by
// the low 5 bits of byte2 (CEA-608-B Table 53).
func pacStyle(b2 byte) (style PenStyle, indent int) {
	low := b2 & 0x1f
	switch {
	case low <= 0x0d:
		style.Color = pacColors[low/2]
		style.Underline = low%2 == 1
	case low == 0x0e:
		style.Italic = true
	case low == 0x0f:
		style.Italic = true
		style.Underline = true
	default: // 0x10-0x1f: indent, 4 columns per step
		step := low - 0x10
		indent = int(step/2) * 4
		style.Underline = step%2 == 1
	}
	return style, indent
}

// midRowStyle decodes a mid-row code's second byte into a style (CEA-608-B
// Table 69); mid-row codes never carry an indent.
func midRowStyle(b2 byte) PenStyle {
	idx := b2 & 0x1f
	if idx == 0x0e || idx == 0x0f {
		return PenStyle{Italic: true, Underline: idx == 0x0f}
	}
	return PenStyle{Color: pacColors[idx/2], Underline: idx%2 == 1}
}
