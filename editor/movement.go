package editor

import "unicode"

// ---------- Cursor movement ----------

func (e *Editor) moveCursorUp() {
	if e.cursorY > 0 {
		e.cursorY--
		e.cursorX = e.doc.RxToCx(e.cursorY, e.desiredX)
	}
}

func (e *Editor) moveCursorDown() {
	if e.cursorY < e.doc.NumRows()-1 {
		e.cursorY++
		e.cursorX = e.doc.RxToCx(e.cursorY, e.desiredX)
	}
}

// moveCursorLeft crosses to the end of the previous row at column 0.
func (e *Editor) moveCursorLeft() {
	if e.cursorX > 0 {
		e.cursorX--
	} else if e.cursorY > 0 {
		e.cursorY--
		e.cursorX = e.doc.RowLen(e.cursorY)
	}
	e.rememberColumn()
}

// moveCursorRight crosses to the start of the next row at end of line.
func (e *Editor) moveCursorRight() {
	if e.cursorX < e.doc.RowLen(e.cursorY) {
		e.cursorX++
	} else if e.cursorY < e.doc.NumRows()-1 {
		e.cursorY++
		e.cursorX = 0
	}
	e.rememberColumn()
}

func (e *Editor) movePageUp() {
	e.cursorY -= e.termHeight
	if e.cursorY < 0 {
		e.cursorY = 0
	}
	e.cursorX = e.doc.RxToCx(e.cursorY, e.desiredX)
}

func (e *Editor) movePageDown() {
	e.cursorY += e.termHeight
	if e.cursorY > e.doc.NumRows()-1 {
		e.cursorY = max(e.doc.NumRows()-1, 0)
	}
	e.cursorX = e.doc.RxToCx(e.cursorY, e.desiredX)
}

func (e *Editor) moveLineStart() {
	e.cursorX = 0
	e.rememberColumn()
}

func (e *Editor) moveLineEnd() {
	e.cursorX = e.doc.RowLen(e.cursorY)
	e.rememberColumn()
}

// ---------- Word movement ----------

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

func isPunctChar(r rune) bool {
	return !isWordChar(r) && !unicode.IsSpace(r)
}

func (e *Editor) moveWordRight() {
	y, x := e.cursorY, e.cursorX
	line := e.rowRunes(y)

	if x == len(line) {
		if y >= e.doc.NumRows()-1 {
			return
		}
		y++
		x = 0
		line = e.rowRunes(y)
	}
	if x < len(line) {
		r := line[x]
		if isWordChar(r) {
			for x < len(line) && isWordChar(line[x]) {
				x++
			}
		} else if isPunctChar(r) {
			for x < len(line) && isPunctChar(line[x]) {
				x++
			}
		}
		for x < len(line) && unicode.IsSpace(line[x]) {
			x++
		}
	}

	e.cursorY = y
	e.cursorX = x
	e.rememberColumn()
}

func (e *Editor) moveWordLeft() {
	y, x := e.cursorY, e.cursorX

	if x == 0 {
		if y > 0 {
			e.cursorY--
			e.cursorX = e.doc.RowLen(e.cursorY)
			e.rememberColumn()
		}
		return
	}
	x--
	line := e.rowRunes(y)
	for x >= 0 && unicode.IsSpace(line[x]) {
		x--
	}
	if x < 0 {
		e.cursorX = 0
		e.rememberColumn()
		return
	}
	if isWordChar(line[x]) {
		for x >= 0 && isWordChar(line[x]) {
			x--
		}
	} else if isPunctChar(line[x]) {
		for x >= 0 && isPunctChar(line[x]) {
			x--
		}
	}
	e.cursorX = x + 1
	e.rememberColumn()
}

func (e *Editor) rowRunes(y int) []rune {
	if row := e.doc.Row(y); row != nil {
		return []rune(row.Chars())
	}
	return nil
}

// ---------- Viewport ----------

// scroll clamps the viewport offsets so the cursor's render position is
// visible. Idempotent: a second call with no state change does nothing.
func (e *Editor) scroll() {
	rx := e.doc.CxToRx(e.cursorY, e.cursorX)

	if e.cursorY < e.rowOffset {
		e.rowOffset = e.cursorY
	}
	if e.cursorY >= e.rowOffset+e.termHeight {
		e.rowOffset = e.cursorY - e.termHeight + 1
	}

	textWidth := e.getTextWidth()
	if rx < e.colOffset {
		e.colOffset = rx
	}
	if rx >= e.colOffset+textWidth {
		e.colOffset = rx - textWidth + 1
	}
}
