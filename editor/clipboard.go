package editor

import (
	"strings"

	"github.com/atotto/clipboard"
)

// ---------- System clipboard line operations ----------
//
// Clipboard failures never interrupt editing; they surface on the
// message bar and the buffer is left alone.

// copyLine puts the current row on the system clipboard, trailing
// newline included so pasting it creates a line.
func (e *Editor) copyLine() {
	row := e.doc.Row(e.cursorY)
	if row == nil {
		return
	}
	if err := clipboard.WriteAll(row.Chars() + "\n"); err != nil {
		e.setStatusMessage("Copy failed: %v", err)
		return
	}
	e.setStatusMessage("Copied line to clipboard")
}

func (e *Editor) cutLine() {
	row := e.doc.Row(e.cursorY)
	if row == nil {
		return
	}
	if err := clipboard.WriteAll(row.Chars() + "\n"); err != nil {
		e.setStatusMessage("Cut failed: %v", err)
		return
	}
	e.deleteCurrentLine()
	e.setStatusMessage("Cut line to clipboard")
}

// paste inserts the clipboard text at the cursor, multi-line aware, as a
// single undo group.
func (e *Editor) paste() {
	text, err := clipboard.ReadAll()
	if err != nil {
		e.setStatusMessage("Paste failed: %v", err)
		return
	}
	if text == "" {
		e.setStatusMessage("Clipboard is empty")
		return
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	e.beginGroup()
	defer e.endGroup()

	for _, r := range text {
		if r == '\n' {
			e.recordInsert(e.cursorY, e.cursorX, '\n')
			e.doc.InsertNewline(e.cursorY, e.cursorX)
			e.cursorY++
			e.cursorX = 0
		} else {
			e.recordInsert(e.cursorY, e.cursorX, r)
			e.doc.InsertChar(e.cursorY, e.cursorX, r)
			e.cursorX++
		}
	}
	e.rememberColumn()
	e.setStatusMessage("Pasted from clipboard")
}
