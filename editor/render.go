package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/bulga138/texty/version"
)

// render assembles the whole frame into one buffer and flushes it with a
// single write, so the terminal never shows a half-drawn screen.
func (e *Editor) render() {
	e.scroll()

	var ab bytes.Buffer
	ab.WriteString(ansiHideCursor)
	ab.WriteString(ansiMoveToHome)

	e.drawRows(&ab)
	e.drawStatusBar(&ab)
	e.drawMessageBar(&ab)
	e.positionCursor(&ab)

	ab.WriteString(ansiShowCursor)
	os.Stdout.Write(ab.Bytes())
}

func (e *Editor) drawRows(ab *bytes.Buffer) {
	textWidth := e.getTextWidth()
	for screenRow := 0; screenRow < e.termHeight; screenRow++ {
		fileRow := e.rowOffset + screenRow
		if fileRow >= e.doc.NumRows() {
			e.drawFillerRow(ab, screenRow)
		} else {
			e.drawGutter(ab, fmt.Sprintf("%d", fileRow+1))
			e.drawTextRow(ab, fileRow, textWidth)
		}
		ab.WriteString(ansiClearLine)
		ab.WriteString("\r\n")
	}
}

// drawTextRow writes the visible slice of one document row, with the
// current search match inverted for this frame.
func (e *Editor) drawTextRow(ab *bytes.Buffer, fileRow, textWidth int) {
	row := e.doc.Row(fileRow)
	left := e.colOffset
	limit := e.colOffset + textWidth

	startRx, endRx, ok := e.matchOnRow(fileRow)
	if !ok {
		ab.WriteString(row.RenderSlice(left, textWidth))
		return
	}

	// visible part of [a, b), clipped to the viewport columns
	seg := func(a, b int) string {
		a = max(a, left)
		b = min(b, limit)
		if b <= a {
			return ""
		}
		return row.RenderSlice(a, b-a)
	}

	ab.WriteString(seg(left, startRx))
	if m := seg(startRx, endRx); m != "" {
		ab.WriteString(ansiInvert)
		ab.WriteString(m)
		ab.WriteString(ansiReset)
	}
	ab.WriteString(seg(endRx, limit))
}

// drawFillerRow draws a row past the end of the document: a tilde, or the
// welcome banner when there is nothing to show at all.
func (e *Editor) drawFillerRow(ab *bytes.Buffer, screenRow int) {
	if e.doc.NumRows() == 0 && !e.doc.Dirty() && screenRow == e.termHeight/3 {
		e.drawWelcome(ab)
		return
	}
	e.drawGutter(ab, "~")
	if e.lineNumWidth == 0 {
		ab.WriteString("~")
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	msg := fmt.Sprintf("%s editor -- version %s", version.AppName, version.GetVersion())
	if runewidth.StringWidth(msg) > e.termWidth {
		msg = runewidth.Truncate(msg, e.termWidth, "")
	}
	padding := (e.termWidth - runewidth.StringWidth(msg)) / 2
	if padding > 0 {
		ab.WriteString("~")
		ab.WriteString(strings.Repeat(" ", padding-1))
	}
	ab.WriteString(ansiDim)
	ab.WriteString(msg)
	ab.WriteString(ansiReset)
}

func (e *Editor) drawGutter(ab *bytes.Buffer, label string) {
	if e.lineNumWidth == 0 {
		return
	}
	fmt.Fprintf(ab, "%s%*s %s", ansiDim, e.lineNumWidth-1, label, ansiReset)
}

func (e *Editor) drawStatusBar(ab *bytes.Buffer) {
	ab.WriteString(ansiInvert)

	name := e.doc.Path()
	if name == "" {
		name = "[No Name]"
	}
	left := fmt.Sprintf(" %.20s - %d lines", name, e.doc.NumRows())
	if e.doc.Dirty() {
		left += " (modified)"
	}
	right := fmt.Sprintf("Ln %d, Col %d  v%s ", e.cursorY+1, e.cursorX+1, version.GetVersion())

	leftWidth := runewidth.StringWidth(left)
	rightWidth := runewidth.StringWidth(right)
	if leftWidth+rightWidth > e.termWidth {
		left = runewidth.Truncate(left, max(e.termWidth-rightWidth, 0), "")
		leftWidth = runewidth.StringWidth(left)
	}

	ab.WriteString(left)
	ab.WriteString(strings.Repeat(" ", max(e.termWidth-leftWidth-rightWidth, 0)))
	ab.WriteString(right)
	ab.WriteString(ansiReset)
	ab.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(ab *bytes.Buffer) {
	ab.WriteString(ansiClearLine)
	msg := e.messageBarText()
	if runewidth.StringWidth(msg) > e.termWidth {
		msg = runewidth.Truncate(msg, e.termWidth, "")
	}
	ab.WriteString(msg)
}

func (e *Editor) messageBarText() string {
	switch e.mode {
	case modeSearch:
		return "Search: " + string(e.search.query) + e.searchCounter()
	case modeSaveAs, modeGotoLine:
		return e.promptLabel + string(e.promptBuffer)
	}
	if time.Since(e.statusTime) < statusMessageTimeout {
		return e.statusMessage
	}
	return ""
}

func (e *Editor) searchCounter() string {
	s := &e.search
	if len(s.query) == 0 {
		return ""
	}
	if len(s.matches) == 0 {
		return " (not found)"
	}
	if s.current == -1 {
		return fmt.Sprintf(" (%d matches)", len(s.matches))
	}
	return fmt.Sprintf(" (%d of %d)", s.current+1, len(s.matches))
}

// positionCursor moves the terminal cursor to its screen coordinate: in
// prompt modes inside the message bar, otherwise at the viewport-relative
// position of the text cursor.
func (e *Editor) positionCursor(ab *bytes.Buffer) {
	if e.mode == modeSaveAs || e.mode == modeGotoLine {
		col := runewidth.StringWidth(e.promptLabel) +
			runewidth.StringWidth(string(e.promptBuffer[:e.promptCursor])) + 1
		fmt.Fprintf(ab, "\x1b[%d;%dH", e.termHeight+barRows, min(col, e.termWidth))
		return
	}

	row := e.cursorY - e.rowOffset + 1
	col := e.doc.CxToRx(e.cursorY, e.cursorX) - e.colOffset + e.lineNumWidth + 1
	row = min(max(row, 1), e.termHeight)
	col = min(max(col, 1), e.termWidth)
	fmt.Fprintf(ab, "\x1b[%d;%dH", row, col)
}
