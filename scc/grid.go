package scc

import "github.com/sandflow/ttconv/ratime"

const (
	gridRows = 15
	gridCols = 32
)

// Cell is one character position of the 15x32 CEA-608 display grid.
type Cell struct {
	Char  rune
	Style PenStyle
}

// Grid is the fixed-size on-screen or off-screen character buffer.
type Grid [gridRows][gridCols]Cell

// Mode is the current CEA-608 display/caption mode.
type Mode int

const (
	ModePopOn Mode = iota
	ModePaintOn
	ModeRollUp2
	ModeRollUp3
	ModeRollUp4
)

func rollUpRows(m Mode) int {
	switch m {
	case ModeRollUp2:
		return 2
	case ModeRollUp3:
		return 3
	case ModeRollUp4:
		return 4
	default:
		return 0
	}
}

func (m Mode) isRollUp() bool {
	return m == ModeRollUp2 || m == ModeRollUp3 || m == ModeRollUp4
}

// Cursor is the current write position in the active write buffer.
type Cursor struct {
	Row, Col int
}

// rawParagraph is a snapshot of a display grid together with the absolute
// interval it was on screen for.
type rawParagraph struct {
	Begin, End ratime.Time
	HasEnd     bool
	Rows       Grid
}

// trim finds the sub-rectangle of a non-empty grid: leading/trailing empty
// rows and columns are trimmed away. Returns ok=false for an entirely empty
// grid (never emitted as a paragraph).
func trim(g Grid) (firstRow, lastRow, firstCol, lastCol int, ok bool) {
	firstRow, lastRow = -1, -1
	for r := 0; r < gridRows; r++ {
		if rowNonEmpty(g, r) {
			if firstRow == -1 {
				firstRow = r
			}
			lastRow = r
		}
	}
	if firstRow == -1 {
		return 0, 0, 0, 0, false
	}
	firstCol, lastCol = gridCols, -1
	for r := firstRow; r <= lastRow; r++ {
		for c := 0; c < gridCols; c++ {
			if g[r][c].Char != 0 {
				if c < firstCol {
					firstCol = c
				}
				if c > lastCol {
					lastCol = c
				}
			}
		}
	}
	return firstRow, lastRow, firstCol, lastCol, true
}

func rowNonEmpty(g Grid, r int) bool {
	for c := 0; c < gridCols; c++ {
		if g[r][c].Char != 0 {
			return true
		}
	}
	return false
}
