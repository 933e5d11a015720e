package editor

// ---------- Editing primitives ----------
//
// Every mutation goes through these so the undo log, dirty flag and
// cursor stay in step with the document.

func (e *Editor) insertRune(r rune) {
	e.recordInsert(e.cursorY, e.cursorX, r)
	e.doc.InsertChar(e.cursorY, e.cursorX, r)
	e.cursorX++
	e.rememberColumn()
}

// insertNewline splits the current row; the cursor lands at the start of
// the new one. A newline is its own undo step, never part of a typing run.
func (e *Editor) insertNewline() {
	e.flushPending()
	e.recordInsert(e.cursorY, e.cursorX, '\n')
	e.doc.InsertNewline(e.cursorY, e.cursorX)
	e.cursorY++
	e.cursorX = 0
	e.flushPending()
	e.rememberColumn()
}

// deleteBackward removes the rune before the cursor; at column 0 the row
// is joined onto the previous one. A no-op at the very start.
func (e *Editor) deleteBackward() {
	if e.cursorY == 0 && e.cursorX == 0 {
		return
	}
	if e.doc.Row(e.cursorY) == nil {
		return
	}
	if e.cursorX == 0 {
		e.recordDelete(e.cursorY-1, e.doc.RowLen(e.cursorY-1), '\n', true)
	} else {
		e.recordDelete(e.cursorY, e.cursorX-1, e.runeAt(e.cursorY, e.cursorX-1), true)
	}
	e.cursorY, e.cursorX = e.doc.DeleteChar(e.cursorY, e.cursorX)
	e.rememberColumn()
}

// deleteForward removes the rune under the cursor ("move right then
// backspace"); a no-op at the end of the document.
func (e *Editor) deleteForward() {
	rowLen := e.doc.RowLen(e.cursorY)
	if e.cursorX == rowLen {
		if e.cursorY >= e.doc.NumRows()-1 {
			return
		}
		e.recordDelete(e.cursorY, rowLen, '\n', false)
		e.doc.DeleteChar(e.cursorY+1, 0)
		return
	}
	e.recordDelete(e.cursorY, e.cursorX, e.runeAt(e.cursorY, e.cursorX), false)
	e.doc.DeleteChar(e.cursorY, e.cursorX+1)
}

// deleteCurrentLine removes the whole current row, one undo group.
func (e *Editor) deleteCurrentLine() {
	row := e.doc.Row(e.cursorY)
	if row == nil {
		return
	}
	e.beginGroup()
	defer e.endGroup()

	y := e.cursorY
	for _, r := range []rune(row.Chars()) {
		e.recordDelete(y, 0, r, false)
		e.doc.DeleteChar(y, 1)
	}
	if e.doc.NumRows() > 1 {
		if y < e.doc.NumRows()-1 {
			e.recordDelete(y, 0, '\n', false)
			e.doc.DeleteChar(y+1, 0)
		} else {
			e.recordDelete(y-1, e.doc.RowLen(y-1), '\n', true)
			e.doc.DeleteChar(y, 0)
			e.cursorY = y - 1
		}
	}
	e.cursorX = 0
	e.clampCursor()
	e.rememberColumn()
}

// duplicateLine inserts a copy of the current row below it and moves the
// cursor onto the copy.
func (e *Editor) duplicateLine() {
	row := e.doc.Row(e.cursorY)
	if row == nil {
		return
	}
	e.beginGroup()
	defer e.endGroup()

	chars := []rune(row.Chars())
	e.recordInsert(e.cursorY, len(chars), '\n')
	e.doc.InsertNewline(e.cursorY, len(chars))
	for i, r := range chars {
		e.recordInsert(e.cursorY+1, i, r)
		e.doc.InsertChar(e.cursorY+1, i, r)
	}
	e.cursorY++
	e.clampCursor()
	e.setStatusMessage("Duplicated line")
}

func (e *Editor) runeAt(y, x int) rune {
	line := e.rowRunes(y)
	if x < 0 || x >= len(line) {
		return 0
	}
	return line[x]
}
