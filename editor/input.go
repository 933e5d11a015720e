package editor

import (
	"strconv"
	"unicode"

	"github.com/bulga138/texty/terminal"
)

func ctrl(r rune) rune {
	return r & 0x1f
}

// processInput reads one key and runs it to completion through the
// handler for the current mode.
func (e *Editor) processInput() error {
	k, err := e.term.ReadKey()
	if err != nil {
		return err
	}

	switch e.mode {
	case modeSearch:
		e.handleSearchKey(k)
	case modeSaveAs:
		e.handleSaveAsKey(k)
	case modeGotoLine:
		e.handleGotoLineKey(k)
	default:
		e.handleNormalKey(k)
	}
	return nil
}

func (e *Editor) handleNormalKey(k terminal.Key) {
	// any key except Ctrl-Q rearms the quit confirmation
	if (k.Type != terminal.KeyRune || k.Rune != ctrl('Q')) &&
		e.quitRemaining != e.config.QuitTimes {
		e.quitRemaining = e.config.QuitTimes
		e.setStatusMessage("")
	}

	switch k.Type {
	case terminal.KeyNone, terminal.KeyEscape:
		// unrecognized input is dropped without any state change

	case terminal.KeyArrowUp:
		e.flushPending()
		e.moveCursorUp()
	case terminal.KeyArrowDown:
		e.flushPending()
		e.moveCursorDown()
	case terminal.KeyArrowLeft:
		e.flushPending()
		if k.Ctrl {
			e.moveWordLeft()
		} else {
			e.moveCursorLeft()
		}
	case terminal.KeyArrowRight:
		e.flushPending()
		if k.Ctrl {
			e.moveWordRight()
		} else {
			e.moveCursorRight()
		}
	case terminal.KeyPageUp:
		e.flushPending()
		e.movePageUp()
	case terminal.KeyPageDown:
		e.flushPending()
		e.movePageDown()
	case terminal.KeyHome:
		e.flushPending()
		e.moveLineStart()
	case terminal.KeyEnd:
		e.flushPending()
		e.moveLineEnd()

	case terminal.KeyEnter:
		e.insertNewline()
	case terminal.KeyTab:
		e.insertRune('\t')
	case terminal.KeyBackspace:
		e.deleteBackward()
	case terminal.KeyDelete:
		e.deleteForward()

	case terminal.KeyRune:
		if k.Rune < ' ' {
			e.handleControlKey(k.Rune)
		} else {
			e.insertRune(k.Rune)
		}
	}
}

func (e *Editor) handleControlKey(r rune) {
	switch r {
	case ctrl('Q'):
		e.handleQuit()
	case ctrl('S'):
		e.flushPending()
		if e.doc.Path() == "" {
			e.startSaveAs()
			return
		}
		e.save()
	case ctrl('E'):
		e.flushPending()
		e.startSaveAs()
	case ctrl('F'):
		e.startSearch()
	case ctrl('T'):
		e.flushPending()
		e.startGotoLine()
	case ctrl('Z'):
		e.undo()
	case ctrl('Y'):
		e.redo()
	case ctrl('C'):
		e.flushPending()
		e.copyLine()
	case ctrl('X'):
		e.cutLine()
	case ctrl('V'):
		e.paste()
	case ctrl('D'):
		e.duplicateLine()
	case ctrl('L'):
		e.toggleLineNumbers()
	}
	// the rest of the control range falls through, ignored
}

// handleQuit quits immediately on a clean buffer; a dirty one takes
// QuitTimes extra presses, and the counter rearms on any other key.
func (e *Editor) handleQuit() {
	e.flushPending()
	if !e.doc.Dirty() || !e.doc.ContentsChanged() {
		e.quit = true
		return
	}
	if e.quitRemaining > 0 {
		e.setStatusMessage(
			"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
			e.quitRemaining)
		e.quitRemaining--
		return
	}
	e.quit = true
}

// ---------- Prompt modes ----------

func (e *Editor) startSaveAs() {
	e.mode = modeSaveAs
	e.promptLabel = "Save as: "
	e.promptBuffer = []rune(e.doc.Path())
	e.promptCursor = len(e.promptBuffer)
}

func (e *Editor) startGotoLine() {
	e.mode = modeGotoLine
	e.promptLabel = "Go to line: "
	e.promptBuffer = nil
	e.promptCursor = 0
}

func (e *Editor) handleSaveAsKey(k terminal.Key) {
	submitted, cancelled := e.handlePromptKey(k)
	if cancelled {
		e.closePrompt()
		e.setStatusMessage("Save aborted")
		return
	}
	if !submitted {
		return
	}
	name := string(e.promptBuffer)
	e.closePrompt()
	if name == "" {
		e.setStatusMessage("Save aborted")
		return
	}
	e.doc.SetPath(name)
	e.save()
}

func (e *Editor) handleGotoLineKey(k terminal.Key) {
	submitted, cancelled := e.handlePromptKey(k)
	if cancelled {
		e.closePrompt()
		e.setStatusMessage("Go to line aborted")
		return
	}
	if !submitted {
		return
	}
	input := string(e.promptBuffer)
	e.closePrompt()

	n, err := strconv.Atoi(input)
	if err != nil {
		e.setStatusMessage("Invalid line number: %s", input)
		return
	}
	n = min(max(n, 1), max(e.doc.NumRows(), 1))
	e.cursorY = n - 1
	e.cursorX = 0
	e.clampCursor()
	e.rememberColumn()
	e.setStatusMessage("Moved to line %d", n)
}

func (e *Editor) closePrompt() {
	e.mode = modeNormal
	e.promptLabel = ""
	e.promptBuffer = nil
	e.promptCursor = 0
}

// handlePromptKey edits the single-line prompt buffer. It reports Enter
// and Escape; everything else is consumed here.
func (e *Editor) handlePromptKey(k terminal.Key) (submitted, cancelled bool) {
	switch k.Type {
	case terminal.KeyEnter:
		return true, false
	case terminal.KeyEscape:
		return false, true
	case terminal.KeyArrowLeft:
		if e.promptCursor > 0 {
			e.promptCursor--
		}
	case terminal.KeyArrowRight:
		if e.promptCursor < len(e.promptBuffer) {
			e.promptCursor++
		}
	case terminal.KeyHome:
		e.promptCursor = 0
	case terminal.KeyEnd:
		e.promptCursor = len(e.promptBuffer)
	case terminal.KeyBackspace:
		if e.promptCursor > 0 {
			e.promptBuffer = append(
				e.promptBuffer[:e.promptCursor-1], e.promptBuffer[e.promptCursor:]...)
			e.promptCursor--
		}
	case terminal.KeyDelete:
		if e.promptCursor < len(e.promptBuffer) {
			e.promptBuffer = append(
				e.promptBuffer[:e.promptCursor], e.promptBuffer[e.promptCursor+1:]...)
		}
	case terminal.KeyRune:
		if !unicode.IsControl(k.Rune) {
			e.promptBuffer = append(e.promptBuffer[:e.promptCursor],
				append([]rune{k.Rune}, e.promptBuffer[e.promptCursor:]...)...)
			e.promptCursor++
		}
	}
	return false, false
}
