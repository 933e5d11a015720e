package editor

import (
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bulga138/texty/config"
	"github.com/bulga138/texty/terminal"
)

// mockTerminal is a test implementation of the Terminal interface that
// replays scripted keys.
type mockTerminal struct {
	width, height int
	keys          []terminal.Key
}

func (m *mockTerminal) EnableRawMode() error  { return nil }
func (m *mockTerminal) DisableRawMode() error { return nil }
func (m *mockTerminal) Close() error          { return nil }

func (m *mockTerminal) GetWindowSize() (int, int, error) {
	return m.width, m.height, nil
}

func (m *mockTerminal) ReadKey() (terminal.Key, error) {
	if len(m.keys) == 0 {
		return terminal.Key{}, io.EOF
	}
	k := m.keys[0]
	m.keys = m.keys[1:]
	return k, nil
}

func newTestEditor(t *testing.T, filename string) *Editor {
	t.Helper()
	term := &mockTerminal{width: 80, height: 24}
	e, err := NewEditor(term, config.DefaultConfig(), filename)
	if err != nil {
		t.Fatalf("NewEditor() error: %v", err)
	}
	if err := e.refreshSize(); err != nil {
		t.Fatalf("refreshSize() error: %v", err)
	}
	return e
}

// editorWithLines loads the given lines from disk so the document starts
// out clean, exactly as after opening a file.
func editorWithLines(t *testing.T, lines ...string) *Editor {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return newTestEditor(t, path)
}

func press(t *testing.T, e *Editor, keys ...terminal.Key) {
	t.Helper()
	m := e.term.(*mockTerminal)
	m.keys = append(m.keys, keys...)
	for range keys {
		if err := e.processInput(); err != nil {
			t.Fatalf("processInput() error: %v", err)
		}
	}
}

func key(tp terminal.KeyType) terminal.Key {
	return terminal.Key{Type: tp}
}

func runeKey(r rune) terminal.Key {
	return terminal.Key{Type: terminal.KeyRune, Rune: r}
}

// typeText presses one key per rune; '\n' becomes Enter, '\t' Tab.
func typeText(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		switch r {
		case '\n':
			press(t, e, key(terminal.KeyEnter))
		case '\t':
			press(t, e, key(terminal.KeyTab))
		default:
			press(t, e, runeKey(r))
		}
	}
}

func TestNewEditor(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantRows int
	}{
		{"no file", "", 0},
		{"three lines", "one\ntwo\nthree\n", 3},
		{"no trailing newline", "one\ntwo", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := ""
			if tt.content != "" {
				filename = filepath.Join(t.TempDir(), "in.txt")
				if err := os.WriteFile(filename, []byte(tt.content), 0644); err != nil {
					t.Fatal(err)
				}
			}
			e := newTestEditor(t, filename)
			if got := e.doc.NumRows(); got != tt.wantRows {
				t.Errorf("expected %d rows, got %d", tt.wantRows, got)
			}
			if e.doc.Dirty() {
				t.Error("fresh editor should not be dirty")
			}
		})
	}
}

func TestNewEditor_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.txt")
	e := newTestEditor(t, path)
	if e.doc.NumRows() != 0 {
		t.Errorf("expected empty document, got %d rows", e.doc.NumRows())
	}
	if e.doc.Path() != path {
		t.Errorf("expected path %q kept for save, got %q", path, e.doc.Path())
	}
}

// Typing, Enter, typing, then Ctrl-S through the Save As prompt must
// produce the exact on-disk bytes and clear the dirty flag.
func TestTypeAndSave(t *testing.T) {
	e := newTestEditor(t, "")
	typeText(t, e, "abc\nd")
	if !e.doc.Dirty() {
		t.Fatal("expected dirty after typing")
	}

	path := filepath.Join(t.TempDir(), "t.txt")
	press(t, e, runeKey(ctrl('S')))
	if e.mode != modeSaveAs {
		t.Fatalf("expected Save As prompt for an unnamed buffer, mode = %d", e.mode)
	}
	typeText(t, e, path)
	press(t, e, key(terminal.KeyEnter))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "abc\nd\n" {
		t.Errorf("expected %q on disk, got %q", "abc\nd\n", string(data))
	}
	if e.doc.Dirty() {
		t.Error("expected dirty flag cleared after save")
	}
	if e.mode != modeNormal {
		t.Errorf("expected normal mode after save, got %d", e.mode)
	}
}

func TestSaveFailureKeepsDirty(t *testing.T) {
	e := editorWithLines(t, "hello")
	e.doc.SetPath(filepath.Join(t.TempDir(), "no-such-dir", "t.txt"))
	typeText(t, e, "x")
	press(t, e, runeKey(ctrl('S')))
	if !e.doc.Dirty() {
		t.Error("failed save must leave the dirty flag set")
	}
	if e.statusMessage == "" {
		t.Error("failed save should report on the message bar")
	}
}

func TestMoveDownClampsToLastRow(t *testing.T) {
	e := editorWithLines(t, "one", "two", "three")
	press(t, e,
		key(terminal.KeyArrowDown), key(terminal.KeyArrowDown), key(terminal.KeyArrowDown))
	if e.cursorY != 2 {
		t.Errorf("expected cursor on row 2, got %d", e.cursorY)
	}
}

func TestVerticalMovePreservesColumn(t *testing.T) {
	e := editorWithLines(t, "a long line", "ab", "another line")
	press(t, e, key(terminal.KeyEnd))
	if e.cursorX != 11 {
		t.Fatalf("expected column 11 at end of row 0, got %d", e.cursorX)
	}
	press(t, e, key(terminal.KeyArrowDown))
	if e.cursorX != 2 {
		t.Errorf("short row should clamp to end of line, got column %d", e.cursorX)
	}
	press(t, e, key(terminal.KeyArrowDown))
	if e.cursorX != 11 {
		t.Errorf("long row should restore the remembered column, got %d", e.cursorX)
	}
}

func TestCursorCrossesRowBoundaries(t *testing.T) {
	e := editorWithLines(t, "ab", "cd")

	press(t, e, key(terminal.KeyArrowDown))
	press(t, e, key(terminal.KeyArrowLeft))
	if e.cursorY != 0 || e.cursorX != 2 {
		t.Errorf("Left at column 0 should land at end of previous row, got (%d,%d)",
			e.cursorY, e.cursorX)
	}

	press(t, e, key(terminal.KeyArrowRight))
	if e.cursorY != 1 || e.cursorX != 0 {
		t.Errorf("Right at end of row should land at start of next row, got (%d,%d)",
			e.cursorY, e.cursorX)
	}
}

// Any random command sequence must leave the cursor inside the buffer
// bounds and the cursor's render position inside the viewport.
func TestCursorBoundsAfterRandomCommands(t *testing.T) {
	e := editorWithLines(t, "first line", "x", "", "a\tb\tc", "the last one")
	e.applySize(20, 8)

	rng := rand.New(rand.NewSource(42))
	commands := []terminal.Key{
		key(terminal.KeyArrowUp), key(terminal.KeyArrowDown),
		key(terminal.KeyArrowLeft), key(terminal.KeyArrowRight),
		key(terminal.KeyPageUp), key(terminal.KeyPageDown),
		key(terminal.KeyHome), key(terminal.KeyEnd),
		key(terminal.KeyEnter), key(terminal.KeyBackspace),
		key(terminal.KeyDelete), runeKey('z'), runeKey('世'),
		{Type: terminal.KeyArrowRight, Ctrl: true},
		{Type: terminal.KeyArrowLeft, Ctrl: true},
	}

	for i := 0; i < 2000; i++ {
		press(t, e, commands[rng.Intn(len(commands))])

		maxY := max(e.doc.NumRows()-1, 0)
		if e.cursorY < 0 || e.cursorY > maxY {
			t.Fatalf("step %d: cursor row %d out of [0,%d]", i, e.cursorY, maxY)
		}
		if e.cursorX < 0 || e.cursorX > e.doc.RowLen(e.cursorY) {
			t.Fatalf("step %d: cursor column %d out of [0,%d]",
				i, e.cursorX, e.doc.RowLen(e.cursorY))
		}

		e.scroll()
		rx := e.doc.CxToRx(e.cursorY, e.cursorX)
		if e.cursorY < e.rowOffset || e.cursorY >= e.rowOffset+e.termHeight {
			t.Fatalf("step %d: row %d outside viewport [%d,%d)",
				i, e.cursorY, e.rowOffset, e.rowOffset+e.termHeight)
		}
		if rx < e.colOffset || rx >= e.colOffset+e.getTextWidth() {
			t.Fatalf("step %d: render column %d outside viewport [%d,%d)",
				i, rx, e.colOffset, e.colOffset+e.getTextWidth())
		}
	}
}

func TestScrollIsIdempotent(t *testing.T) {
	e := editorWithLines(t, "one", "two", "three", "four", "five", "six")
	e.applySize(10, 5)
	e.cursorY = 5
	e.scroll()
	row, col := e.rowOffset, e.colOffset
	e.scroll()
	if e.rowOffset != row || e.colOffset != col {
		t.Errorf("second scroll moved the viewport: (%d,%d) -> (%d,%d)",
			row, col, e.rowOffset, e.colOffset)
	}
}

func TestScrollTracksResize(t *testing.T) {
	e := editorWithLines(t, "one", "two", "three", "four", "five", "six", "seven")
	e.applySize(80, 10)
	e.cursorY = 6
	e.scroll()

	// shrink: the cursor has to stay visible in the smaller window
	e.applySize(80, 4)
	e.clampCursor()
	e.scroll()
	if e.cursorY < e.rowOffset || e.cursorY >= e.rowOffset+e.termHeight {
		t.Errorf("cursor row %d outside viewport [%d,%d) after resize",
			e.cursorY, e.rowOffset, e.rowOffset+e.termHeight)
	}
}

func TestSearchMatchAndEscapeRestores(t *testing.T) {
	e := editorWithLines(t, "foobar")
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "oo")

	if e.cursorY != 0 || e.cursorX != 1 {
		t.Fatalf("expected cursor at match (0,1), got (%d,%d)", e.cursorY, e.cursorX)
	}
	startRx, endRx, ok := e.matchOnRow(0)
	if !ok || startRx != 1 || endRx != 3 {
		t.Errorf("expected highlight over render columns [1,3), got [%d,%d) ok=%v",
			startRx, endRx, ok)
	}

	press(t, e, key(terminal.KeyEscape))
	if e.mode != modeNormal {
		t.Error("Escape should leave search mode")
	}
	if e.cursorY != 0 || e.cursorX != 0 {
		t.Errorf("Escape should restore the pre-search cursor, got (%d,%d)",
			e.cursorY, e.cursorX)
	}
	if _, _, ok := e.matchOnRow(0); ok {
		t.Error("no highlight may survive the search")
	}
}

func TestSearchEnterKeepsMatch(t *testing.T) {
	e := editorWithLines(t, "alpha", "beta", "gamma")
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "gam")
	press(t, e, key(terminal.KeyEnter))
	if e.cursorY != 2 || e.cursorX != 0 {
		t.Errorf("Enter should keep the match position, got (%d,%d)", e.cursorY, e.cursorX)
	}
}

func TestSearchWrapsAround(t *testing.T) {
	e := editorWithLines(t, "needle here", "nothing", "nada")
	e.cursorY = 2
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "needle")
	if e.cursorY != 0 || e.cursorX != 0 {
		t.Errorf("search should wrap to the first-row match, got (%d,%d)",
			e.cursorY, e.cursorX)
	}
}

func TestSearchStepsThroughMatches(t *testing.T) {
	e := editorWithLines(t, "aba", "ab", "xab")
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "ab")

	if e.search.current != 0 {
		t.Fatalf("expected first match current, got %d", e.search.current)
	}
	press(t, e, key(terminal.KeyArrowDown))
	if got := e.search.matches[e.search.current]; got != (matchPos{y: 1, x: 0}) {
		t.Errorf("expected next match (1,0), got (%d,%d)", got.y, got.x)
	}
	press(t, e, key(terminal.KeyArrowUp), key(terminal.KeyArrowUp))
	if got := e.search.matches[e.search.current]; got != (matchPos{y: 2, x: 1}) {
		t.Errorf("expected backward wrap to (2,1), got (%d,%d)", got.y, got.x)
	}
}

func TestSearchIgnoreCase(t *testing.T) {
	e := editorWithLines(t, "Foo")
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "foo")
	if len(e.search.matches) != 1 {
		t.Errorf("case-insensitive search should match %q, got %d matches",
			"Foo", len(e.search.matches))
	}

	e2 := editorWithLines(t, "Foo")
	e2.config.SearchIgnoreCase = false
	press(t, e2, runeKey(ctrl('F')))
	typeText(t, e2, "foo")
	if len(e2.search.matches) != 0 {
		t.Errorf("case-sensitive search should not match %q", "Foo")
	}
}

func TestSearchBackspaceResearches(t *testing.T) {
	e := editorWithLines(t, "cat", "car")
	press(t, e, runeKey(ctrl('F')))
	typeText(t, e, "cat")
	if len(e.search.matches) != 1 {
		t.Fatalf("expected 1 match for %q, got %d", "cat", len(e.search.matches))
	}
	press(t, e, key(terminal.KeyBackspace))
	if len(e.search.matches) != 2 {
		t.Errorf("expected 2 matches for %q after backspace, got %d",
			"ca", len(e.search.matches))
	}
}

func TestQuitConfirmation(t *testing.T) {
	e := newTestEditor(t, "")
	typeText(t, e, "x")

	quitTimes := e.config.QuitTimes
	for i := 0; i < quitTimes; i++ {
		press(t, e, runeKey(ctrl('Q')))
		if e.quit {
			t.Fatalf("quit took effect after %d presses, wanted %d extra", i+1, quitTimes)
		}
	}
	press(t, e, runeKey(ctrl('Q')))
	if !e.quit {
		t.Error("quit should take effect after the confirmation presses")
	}
}

func TestQuitCounterResetsOnOtherKey(t *testing.T) {
	e := newTestEditor(t, "")
	typeText(t, e, "x")

	press(t, e, runeKey(ctrl('Q')), runeKey(ctrl('Q')))
	press(t, e, key(terminal.KeyArrowLeft)) // rearms the counter
	for i := 0; i < e.config.QuitTimes; i++ {
		press(t, e, runeKey(ctrl('Q')))
	}
	if e.quit {
		t.Error("counter should have been rearmed by the movement key")
	}
	press(t, e, runeKey(ctrl('Q')))
	if !e.quit {
		t.Error("quit should take effect after the full countdown")
	}
}

func TestQuitImmediateWhenClean(t *testing.T) {
	e := editorWithLines(t, "hello")
	press(t, e, runeKey(ctrl('Q')))
	if !e.quit {
		t.Error("clean buffer must quit on the first Ctrl-Q")
	}
}

// An edit undone back to the original content quits without the warning,
// even though the dirty flag was set along the way.
func TestQuitAfterRevertingEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	if err := os.WriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatal(err)
	}
	e := newTestEditor(t, path)
	typeText(t, e, "x")
	press(t, e, runeKey(ctrl('Z')))

	press(t, e, runeKey(ctrl('Q')))
	if !e.quit {
		t.Error("reverted buffer should quit immediately")
	}
}

func TestUndoRedoTyping(t *testing.T) {
	e := newTestEditor(t, "")
	typeText(t, e, "hello")

	press(t, e, runeKey(ctrl('Z')))
	if got := e.doc.Contents(); got != "" {
		t.Errorf("undo should remove the whole typing run, got %q", got)
	}
	if e.cursorY != 0 || e.cursorX != 0 {
		t.Errorf("undo should move the cursor to the edit start, got (%d,%d)",
			e.cursorY, e.cursorX)
	}

	press(t, e, runeKey(ctrl('Y')))
	if got := e.doc.Contents(); got != "hello\n" {
		t.Errorf("redo should restore the typing, got %q", got)
	}
	if e.cursorX != 5 {
		t.Errorf("redo should move the cursor past the text, got column %d", e.cursorX)
	}
}

func TestUndoNewlineSplit(t *testing.T) {
	e := editorWithLines(t, "hello")
	e.cursorX = 2
	press(t, e, key(terminal.KeyEnter))
	if got := e.doc.Contents(); got != "he\nllo\n" {
		t.Fatalf("expected split rows, got %q", got)
	}
	press(t, e, runeKey(ctrl('Z')))
	if got := e.doc.Contents(); got != "hello\n" {
		t.Errorf("undo should rejoin the rows, got %q", got)
	}
}

func TestUndoBackspaceRun(t *testing.T) {
	e := editorWithLines(t, "abc")
	press(t, e, key(terminal.KeyEnd))
	press(t, e, key(terminal.KeyBackspace), key(terminal.KeyBackspace))
	if got := e.doc.Contents(); got != "a\n" {
		t.Fatalf("expected %q, got %q", "a\n", got)
	}
	press(t, e, runeKey(ctrl('Z')))
	if got := e.doc.Contents(); got != "abc\n" {
		t.Errorf("undo should restore the backspaced run, got %q", got)
	}
	if e.cursorX != 3 {
		t.Errorf("cursor should come back after the restored text, got column %d", e.cursorX)
	}
}

func TestRedoClearedByFreshEdit(t *testing.T) {
	e := newTestEditor(t, "")
	typeText(t, e, "ab")
	press(t, e, runeKey(ctrl('Z')))
	typeText(t, e, "c")
	press(t, e, runeKey(ctrl('Y')))
	if got := e.doc.Contents(); got != "c\n" {
		t.Errorf("redo after a fresh edit must be a no-op, got %q", got)
	}
}

func TestUndoGroupedPaste(t *testing.T) {
	e := newTestEditor(t, "")
	// drive the grouped insert path directly; the clipboard itself is
	// not available on test machines
	e.beginGroup()
	for _, r := range "one\ntwo" {
		if r == '\n' {
			e.recordInsert(e.cursorY, e.cursorX, '\n')
			e.doc.InsertNewline(e.cursorY, e.cursorX)
			e.cursorY, e.cursorX = e.cursorY+1, 0
		} else {
			e.recordInsert(e.cursorY, e.cursorX, r)
			e.doc.InsertChar(e.cursorY, e.cursorX, r)
			e.cursorX++
		}
	}
	e.endGroup()

	press(t, e, runeKey(ctrl('Z')))
	if got := e.doc.Contents(); got != "" {
		t.Errorf("one undo should revert the whole group, got %q", got)
	}
	press(t, e, runeKey(ctrl('Y')))
	if got := e.doc.Contents(); got != "one\ntwo\n" {
		t.Errorf("one redo should replay the whole group, got %q", got)
	}
}

func TestDeleteKeyForward(t *testing.T) {
	e := editorWithLines(t, "ab", "cd")
	press(t, e, key(terminal.KeyDelete))
	if got := e.doc.Contents(); got != "b\ncd\n" {
		t.Errorf("expected forward deletion of 'a', got %q", got)
	}
	if e.cursorX != 0 {
		t.Errorf("Delete must not move the cursor, got column %d", e.cursorX)
	}

	// at end of row it pulls the next row up
	press(t, e, key(terminal.KeyEnd), key(terminal.KeyDelete))
	if got := e.doc.Contents(); got != "bcd\n" {
		t.Errorf("expected rows joined, got %q", got)
	}
}

func TestDeleteAtDocumentEndIsNoop(t *testing.T) {
	e := editorWithLines(t, "ab")
	press(t, e, key(terminal.KeyEnd), key(terminal.KeyDelete))
	if got := e.doc.Contents(); got != "ab\n" {
		t.Errorf("Delete at end of document changed the buffer: %q", got)
	}
}

func TestDuplicateLine(t *testing.T) {
	e := editorWithLines(t, "one", "two")
	press(t, e, runeKey(ctrl('D')))
	if got := e.doc.Contents(); got != "one\none\ntwo\n" {
		t.Fatalf("expected duplicated row, got %q", got)
	}
	if e.cursorY != 1 {
		t.Errorf("cursor should land on the copy, got row %d", e.cursorY)
	}
	press(t, e, runeKey(ctrl('Z')))
	if got := e.doc.Contents(); got != "one\ntwo\n" {
		t.Errorf("undo should remove the copy in one step, got %q", got)
	}
}

func TestDeleteCurrentLine(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		row      int
		expected string
		wantY    int
	}{
		{"middle row", []string{"one", "two", "three"}, 1, "one\nthree\n", 1},
		{"last row", []string{"one", "two"}, 1, "one\n", 0},
		{"only row", []string{"one"}, 0, "\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := editorWithLines(t, tt.lines...)
			e.cursorY = tt.row
			e.deleteCurrentLine()
			if got := e.doc.Contents(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if e.cursorY != tt.wantY {
				t.Errorf("expected cursor row %d, got %d", tt.wantY, e.cursorY)
			}
		})
	}
}

func TestGotoLinePrompt(t *testing.T) {
	e := editorWithLines(t, "one", "two", "three", "four", "five")

	press(t, e, runeKey(ctrl('T')))
	if e.mode != modeGotoLine {
		t.Fatalf("expected goto-line prompt, mode = %d", e.mode)
	}
	typeText(t, e, "3")
	press(t, e, key(terminal.KeyEnter))
	if e.cursorY != 2 || e.cursorX != 0 {
		t.Errorf("expected cursor at (2,0), got (%d,%d)", e.cursorY, e.cursorX)
	}

	// out-of-range input clamps to the last line
	press(t, e, runeKey(ctrl('T')))
	typeText(t, e, "99")
	press(t, e, key(terminal.KeyEnter))
	if e.cursorY != 4 {
		t.Errorf("expected clamp to last row, got %d", e.cursorY)
	}
}

func TestGotoLineCancel(t *testing.T) {
	e := editorWithLines(t, "one", "two")
	e.cursorY = 1
	press(t, e, runeKey(ctrl('T')))
	typeText(t, e, "1")
	press(t, e, key(terminal.KeyEscape))
	if e.mode != modeNormal {
		t.Error("Escape should close the prompt")
	}
	if e.cursorY != 1 {
		t.Errorf("cancelled prompt must not move the cursor, got row %d", e.cursorY)
	}
}

func TestPromptLineEditing(t *testing.T) {
	e := newTestEditor(t, "")
	press(t, e, runeKey(ctrl('E')))
	typeText(t, e, "abd")
	press(t, e, key(terminal.KeyArrowLeft))
	typeText(t, e, "c")
	press(t, e, key(terminal.KeyHome), key(terminal.KeyDelete))
	if got := string(e.promptBuffer); got != "bcd" {
		t.Errorf("expected prompt buffer %q, got %q", "bcd", got)
	}
	press(t, e, key(terminal.KeyEscape))
}

func TestStatusMessageExpiry(t *testing.T) {
	e := newTestEditor(t, "")
	e.setStatusMessage("hello there")
	if got := e.messageBarText(); got != "hello there" {
		t.Errorf("expected fresh message shown, got %q", got)
	}
	e.statusTime = time.Now().Add(-statusMessageTimeout - time.Second)
	if got := e.messageBarText(); got != "" {
		t.Errorf("expected expired message hidden, got %q", got)
	}
}

func TestLineNumberToggle(t *testing.T) {
	e := newTestEditor(t, "")
	if e.lineNumWidth != 0 {
		t.Fatalf("gutter off by default, width = %d", e.lineNumWidth)
	}
	press(t, e, runeKey(ctrl('L')))
	if e.lineNumWidth == 0 {
		t.Error("expected gutter width after toggle")
	}
	if e.getTextWidth() != e.termWidth-e.lineNumWidth {
		t.Errorf("text width should shrink by the gutter, got %d", e.getTextWidth())
	}
	press(t, e, runeKey(ctrl('L')))
	if e.lineNumWidth != 0 {
		t.Error("expected gutter gone after second toggle")
	}
}
