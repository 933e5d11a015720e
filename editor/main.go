package editor

import (
	"fmt"
	"os"
	"time"

	"github.com/bulga138/texty/buffer"
	"github.com/bulga138/texty/config"
	"github.com/bulga138/texty/terminal"
)

// ANSI escape codes
const (
	ansiHideCursor     = "\x1b[?25l"
	ansiShowCursor     = "\x1b[?25h"
	ansiMoveToHome     = "\x1b[H"
	ansiClearLine      = "\x1b[K"
	ansiReset          = "\x1b[m"
	ansiInvert         = "\x1b[7m"
	ansiDim            = "\x1b[2m"
	ansiEnterAltScreen = "\x1b[?1049h"
	ansiExitAltScreen  = "\x1b[?1049l"
)

// lines reserved below the text area: status bar and message bar
const barRows = 2

const statusMessageTimeout = 5 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeSaveAs
	modeGotoLine
)

type Editor struct {
	term   terminal.Terminal
	doc    *buffer.Document
	config *config.Config

	termWidth  int // full terminal width
	termHeight int // text rows, bars excluded
	lastWidth  int // raw size from the last resize poll
	lastHeight int

	cursorX  int // content column
	cursorY  int // row index
	desiredX int // render column preserved across vertical moves

	rowOffset int
	colOffset int

	mode mode
	quit bool

	statusMessage string
	statusTime    time.Time

	quitRemaining   int
	showLineNumbers bool
	lineNumWidth    int

	// prompt line state for modeSaveAs / modeGotoLine
	promptLabel  string
	promptBuffer []rune
	promptCursor int

	search searchState

	undoStack []undoAction
	redoStack []undoAction

	// a run of typing (or of backspacing) coalesces into one undo action
	pendingOps      []opEntry
	pendingInsert   bool
	pendingBackward bool
	pendingCreated  bool
	pendingActive   bool
	lastEditTime    time.Time

	// multi-part commands (paste, cut, duplicate) share one undo group
	undoGroup int
	groupSeq  int
}

func NewEditor(term terminal.Terminal, cfg *config.Config, filename string) (*Editor, error) {
	e := &Editor{
		term:            term,
		config:          cfg,
		doc:             buffer.NewDocument(cfg.TabStop),
		quitRemaining:   cfg.QuitTimes,
		showLineNumbers: cfg.ShowLineNumbers,
	}
	e.updateLineNumWidth()

	if filename != "" {
		if err := e.doc.Load(filename); err != nil {
			return nil, err
		}
	}

	e.setStatusMessage("HELP: Ctrl-S save | Ctrl-Q quit | Ctrl-F find | Ctrl-T go to line")
	return e, nil
}

func (e *Editor) Run() error {
	if err := e.term.EnableRawMode(); err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	os.Stdout.WriteString(ansiEnterAltScreen)
	defer func() {
		e.term.DisableRawMode()
		os.Stdout.WriteString(ansiExitAltScreen)
	}()

	if err := e.refreshSize(); err != nil {
		return err
	}

	for !e.quit {
		e.checkResize()
		e.render()
		if err := e.processInput(); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) refreshSize() error {
	w, h, err := e.term.GetWindowSize()
	if err != nil {
		return fmt.Errorf("failed to determine window size: %w", err)
	}
	e.applySize(w, h)
	return nil
}

func (e *Editor) applySize(w, h int) {
	e.lastWidth = w
	e.lastHeight = h
	if w < 1 {
		w = 1
	}
	if h < barRows+1 {
		h = barRows + 1
	}
	e.termWidth = w
	e.termHeight = h - barRows
}

// checkResize polls the window size once per input cycle; the size query
// is cheap and keeps the loop free of signal handlers.
func (e *Editor) checkResize() {
	w, h, err := e.term.GetWindowSize()
	if err != nil {
		return
	}
	if w == e.lastWidth && h == e.lastHeight {
		return
	}
	e.applySize(w, h)
	e.clampCursor()
	e.setStatusMessage("Window resized to %dx%d", w, h)
}

func (e *Editor) updateLineNumWidth() {
	if e.showLineNumbers {
		e.lineNumWidth = 5
	} else {
		e.lineNumWidth = 0
	}
}

func (e *Editor) getTextWidth() int {
	textWidth := e.termWidth - e.lineNumWidth
	if textWidth < 1 {
		return 1
	}
	return textWidth
}

func (e *Editor) toggleLineNumbers() {
	e.showLineNumbers = !e.showLineNumbers
	e.updateLineNumWidth()
	if e.showLineNumbers {
		e.setStatusMessage("Line numbers on")
	} else {
		e.setStatusMessage("Line numbers off")
	}
}

// rememberColumn refreshes the render column that vertical moves try to
// come back to.
func (e *Editor) rememberColumn() {
	e.desiredX = e.doc.CxToRx(e.cursorY, e.cursorX)
}

func (e *Editor) clampCursor() {
	maxY := e.doc.NumRows() - 1
	if maxY < 0 {
		maxY = 0
	}
	if e.cursorY > maxY {
		e.cursorY = maxY
	}
	if e.cursorY < 0 {
		e.cursorY = 0
	}
	if e.cursorX > e.doc.RowLen(e.cursorY) {
		e.cursorX = e.doc.RowLen(e.cursorY)
	}
	if e.cursorX < 0 {
		e.cursorX = 0
	}
}
