package scc

import "github.com/sandflow/ttconv/ratime"

// decoder is the CEA-608 state machine: two fixed grids (the on-screen
// display buffer and the off-screen non-display buffer used by pop-on
// captioning), a cursor into whichever is the active write target, and the
// current pen style.
type decoder struct {
	mode Mode

	display, nonDisplay Grid
	cursor               Cursor
	pen                  PenStyle

	lastPair pair
	haveLast bool

	dispBegin    ratime.Time
	haveDispOpen bool

	nonDispBegin ratime.Time

	paragraphs []rawParagraph
}

func newDecoder() *decoder {
	return &decoder{mode: ModePopOn, dispBegin: ratime.Zero, nonDispBegin: ratime.Zero}
}

// writeGrid returns the buffer that characters and styles are currently
// written into: non-display in pop-on, the display grid itself otherwise.
func (d *decoder) writeGrid() *Grid {
	if d.mode == ModePopOn {
		return &d.nonDisplay
	}
	return &d.display
}

// handle processes one classified byte pair at absolute document time t,
// ignoring the second copy of a doubled non-character pair.
func (d *decoder) handle(p pair, t ratime.Time) {
	if p.kind != kindStandardChar {
		if d.haveLast && d.lastPair == p {
			d.haveLast = false // duplicate transmission of the same control pair: ignore the copy
			return
		}
		d.lastPair = p
		d.haveLast = true
	} else {
		d.haveLast = false
	}

	switch p.kind {
	case kindControl:
		d.handleControl(p.control, t)
	case kindPAC:
		row := pacRow(p.b1, p.b2)
		style, indent := pacStyle(p.b2)
		d.cursor.Row = row - 1
		if d.mode.isRollUp() {
			d.cursor.Col = 0 // "In roll-up, column from PAC is ignored"
		} else {
			d.cursor.Col = indent
		}
		d.pen = style
	case kindMidRow:
		d.pen = midRowStyle(p.b2)
		d.writeChar(' ')
	case kindExtended:
		if r, ok := extendedChar(p.b2); ok {
			d.writeChar(r)
		}
	case kindStandardChar:
		if p.b1 != 0 {
			d.writeChar(standardChar(p.b1))
		}
		if p.b2 != 0 {
			d.writeChar(standardChar(p.b2))
		}
	}
}

func (d *decoder) writeChar(r rune) {
	if d.cursor.Col > gridCols-1 {
		d.cursor.Col = gridCols - 1
	}
	g := d.writeGrid()
	g[d.cursor.Row][d.cursor.Col] = Cell{Char: r, Style: d.pen}
	if d.cursor.Col < gridCols-1 {
		d.cursor.Col++
	}
}

func (d *decoder) handleControl(c Control, t ratime.Time) {
	switch c {
	case RCL:
		d.mode = ModePopOn
		d.nonDisplay = Grid{}
		d.nonDispBegin = t
	case RDC:
		d.mode = ModePaintOn
	case RU2, RU3, RU4:
		wasPopOrPaint := !d.mode.isRollUp()
		switch c {
		case RU2:
			d.mode = ModeRollUp2
		case RU3:
			d.mode = ModeRollUp3
		case RU4:
			d.mode = ModeRollUp4
		}
		if wasPopOrPaint {
			d.closeDisplay(t)
			d.display = Grid{}
		}
		d.cursor.Row = gridRows - 1
		d.cursor.Col = 0
		d.dispBegin = t
		d.haveDispOpen = true
	case BS:
		if d.cursor.Col > 0 {
			d.cursor.Col--
			g := d.writeGrid()
			g[d.cursor.Row][d.cursor.Col] = Cell{}
		}
		// BS at column 0 is a clamped no-op.
	case DER:
		g := d.writeGrid()
		for c := d.cursor.Col; c < gridCols; c++ {
			g[d.cursor.Row][c] = Cell{}
		}
	case ENM:
		d.nonDisplay = Grid{}
		d.nonDispBegin = t
	case EDM:
		d.closeDisplay(t)
		d.display = Grid{}
	case EOC:
		d.flip(t)
	case CR:
		d.rollShift(t)
	case TO1:
		d.advanceCursor(1)
	case TO2:
		d.advanceCursor(2)
	case TO3:
		d.advanceCursor(3)
	case TR, RTD, FON:
		// text-mode/flash controls: accepted, no modeled display effect.
	}
}

func (d *decoder) advanceCursor(n int) {
	d.cursor.Col += n
	if d.cursor.Col > gridCols-1 {
		d.cursor.Col = gridCols - 1
	}
}

// flip implements EOC: swap display <-> non-display, closing the outgoing
// paragraph and opening the incoming one.
func (d *decoder) flip(t ratime.Time) {
	d.closeDisplay(t)
	d.display, d.nonDisplay = d.nonDisplay, d.display
	d.dispBegin = t
	d.haveDispOpen = true
}

// rollShift implements CR in roll-up mode: shift the visible rows up one,
// closing the outgoing paragraph and opening the new window.
func (d *decoder) rollShift(t ratime.Time) {
	d.closeDisplay(t)
	rows := rollUpRows(d.mode)
	if rows > 0 {
		top := gridRows - rows
		for r := top; r < gridRows-1; r++ {
			d.display[r] = d.display[r+1]
		}
		d.display[gridRows-1] = [gridCols]Cell{}
	}
	d.cursor.Row = gridRows - 1
	d.cursor.Col = 0
	d.dispBegin = t
	d.haveDispOpen = true
}

// closeDisplay closes the currently open displayed paragraph at t, dropping
// it if it would be zero-length or the display grid is entirely empty.
func (d *decoder) closeDisplay(t ratime.Time) {
	if !d.haveDispOpen {
		return
	}
	d.haveDispOpen = false
	if !d.dispBegin.Less(t) {
		return
	}
	if _, _, _, _, ok := trim(d.display); !ok {
		return
	}
	d.paragraphs = append(d.paragraphs, rawParagraph{Begin: d.dispBegin, End: t, HasEnd: true, Rows: d.display})
}

// finish closes any still-open paragraph at the end of the stream, leaving
// it open to +Inf.
//
// A pop-on caption that was written into the non-display buffer but never
// flipped by an EOC before the stream ended (no RU/CR/EDM ever opened a
// displayed paragraph either) is flushed as if the end of stream were an
// implicit EOC: it becomes the sole paragraph, begin at the time its buffer
// was last reset, open-ended.
func (d *decoder) finish() {
	if d.haveDispOpen {
		d.haveDispOpen = false
		if _, _, _, _, ok := trim(d.display); !ok {
			return
		}
		d.paragraphs = append(d.paragraphs, rawParagraph{Begin: d.dispBegin, HasEnd: false, Rows: d.display})
		return
	}
	if len(d.paragraphs) > 0 {
		return
	}
	if _, _, _, _, ok := trim(d.nonDisplay); !ok {
		return
	}
	d.paragraphs = append(d.paragraphs, rawParagraph{Begin: d.nonDispBegin, HasEnd: false, Rows: d.nonDisplay})
}
