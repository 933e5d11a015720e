package editor

import "time"

// opEntry is one logged rune mutation. (y, x) is the rune's content
// position; '\n' stands for a row split or join at that position.
type opEntry struct {
	y, x int
	r    rune
}

// undoAction is one undoable step: a run of inserted or deleted runes.
// Actions sharing a nonzero group id undo and redo together.
type undoAction struct {
	insert     bool
	backward   bool // deletes made with backspace, for cursor placement
	createdRow bool // typing into an empty document created row 0
	ops        []opEntry
	group      int
}

// edits further apart than this start a new undo step
const editCoalesce = time.Second

// ---------- Recording ----------

func (e *Editor) recordInsert(y, x int, r rune) {
	e.redoStack = nil
	now := time.Now()
	if e.pendingActive && (!e.pendingInsert || now.Sub(e.lastEditTime) > editCoalesce) {
		e.flushPending()
	}
	if !e.pendingActive {
		e.pendingActive = true
		e.pendingInsert = true
	}
	if e.doc.NumRows() == 0 {
		e.pendingCreated = true
	}
	e.pendingOps = append(e.pendingOps, opEntry{y: y, x: x, r: r})
	e.lastEditTime = now
}

func (e *Editor) recordDelete(y, x int, r rune, backward bool) {
	e.redoStack = nil
	now := time.Now()
	if e.pendingActive && (e.pendingInsert || e.pendingBackward != backward ||
		now.Sub(e.lastEditTime) > editCoalesce) {
		e.flushPending()
	}
	if !e.pendingActive {
		e.pendingActive = true
		e.pendingInsert = false
		e.pendingBackward = backward
	}
	e.pendingOps = append(e.pendingOps, opEntry{y: y, x: x, r: r})
	e.lastEditTime = now
}

// flushPending closes the open coalesced run and pushes it as one action.
func (e *Editor) flushPending() {
	if !e.pendingActive {
		return
	}
	if len(e.pendingOps) > 0 {
		e.undoStack = append(e.undoStack, undoAction{
			insert:     e.pendingInsert,
			backward:   e.pendingBackward,
			createdRow: e.pendingCreated,
			ops:        e.pendingOps,
			group:      e.undoGroup,
		})
	}
	e.pendingOps = nil
	e.pendingActive = false
	e.pendingCreated = false
}

func (e *Editor) beginGroup() {
	e.flushPending()
	e.groupSeq++
	e.undoGroup = e.groupSeq
}

func (e *Editor) endGroup() {
	e.flushPending()
	e.undoGroup = 0
}

// ---------- Applying ops ----------

func (e *Editor) applyInsertOp(op opEntry) {
	if op.r == '\n' {
		e.doc.InsertNewline(op.y, op.x)
	} else {
		e.doc.InsertChar(op.y, op.x, op.r)
	}
}

func (e *Editor) applyDeleteOp(op opEntry) {
	if op.r == '\n' {
		if e.doc.Row(op.y+1) == nil {
			// the split created the document's last row; there is no
			// row below to merge back, so drop the row itself
			e.doc.DeleteRow(op.y)
			return
		}
		e.doc.DeleteChar(op.y+1, 0)
		return
	}
	e.doc.DeleteChar(op.y, op.x+1)
}

// revert applies the inverse of one action.
func (e *Editor) revert(action undoAction) {
	if len(action.ops) == 0 {
		return
	}
	if action.insert {
		for i := len(action.ops) - 1; i >= 0; i-- {
			e.applyDeleteOp(action.ops[i])
		}
		if action.createdRow && e.doc.NumRows() == 1 && e.doc.RowLen(0) == 0 {
			e.doc.DeleteRow(0)
		}
		first := action.ops[0]
		e.cursorY, e.cursorX = first.y, first.x
		return
	}
	for i := len(action.ops) - 1; i >= 0; i-- {
		e.applyInsertOp(action.ops[i])
	}
	if action.backward {
		// the last rune deleted came first in the log; the cursor goes
		// back to just after it
		first := action.ops[0]
		if first.r == '\n' {
			e.cursorY, e.cursorX = first.y+1, 0
		} else {
			e.cursorY, e.cursorX = first.y, first.x+1
		}
		return
	}
	first := action.ops[0]
	e.cursorY, e.cursorX = first.y, first.x
}

// replay re-applies one undone action.
func (e *Editor) replay(action undoAction) {
	if len(action.ops) == 0 {
		return
	}
	if action.insert {
		for _, op := range action.ops {
			e.applyInsertOp(op)
		}
		last := action.ops[len(action.ops)-1]
		if last.r == '\n' {
			e.cursorY, e.cursorX = last.y+1, 0
		} else {
			e.cursorY, e.cursorX = last.y, last.x+1
		}
		return
	}
	for _, op := range action.ops {
		e.applyDeleteOp(op)
	}
	last := action.ops[len(action.ops)-1]
	e.cursorY, e.cursorX = last.y, last.x
}

// ---------- Undo / Redo ----------

func (e *Editor) undo() {
	e.flushPending()
	if len(e.undoStack) == 0 {
		e.setStatusMessage("Nothing to undo")
		return
	}

	action := e.popUndo()
	e.revert(action)
	for action.group != 0 && len(e.undoStack) > 0 &&
		e.undoStack[len(e.undoStack)-1].group == action.group {
		next := e.popUndo()
		e.revert(next)
	}

	e.clampCursor()
	e.rememberColumn()
	e.setStatusMessage("Undid last action")
}

func (e *Editor) redo() {
	e.flushPending()
	if len(e.redoStack) == 0 {
		e.setStatusMessage("Nothing to redo")
		return
	}

	action := e.popRedo()
	e.replay(action)
	for action.group != 0 && len(e.redoStack) > 0 &&
		e.redoStack[len(e.redoStack)-1].group == action.group {
		next := e.popRedo()
		e.replay(next)
	}

	e.clampCursor()
	e.rememberColumn()
	e.setStatusMessage("Redid last action")
}

func (e *Editor) popUndo() undoAction {
	action := e.undoStack[len(e.undoStack)-1]
	e.undoStack = e.undoStack[:len(e.undoStack)-1]
	e.redoStack = append(e.redoStack, action)
	return action
}

func (e *Editor) popRedo() undoAction {
	action := e.redoStack[len(e.redoStack)-1]
	e.redoStack = e.redoStack[:len(e.redoStack)-1]
	e.undoStack = append(e.undoStack, action)
	return action
}
