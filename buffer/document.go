// Package buffer holds the row-oriented document model: line content,
// derived render strings, and the column math shared by rendering and
// cursor movement.
package buffer

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Document is an ordered sequence of rows. All mutations go through it,
// so the dirty flag and render strings stay consistent.
type Document struct {
	rows      []*Row
	path      string
	dirty     bool
	tabStop   int
	savedHash [sha256.Size]byte
}

func NewDocument(tabStop int) *Document {
	d := &Document{tabStop: tabStop}
	d.savedHash = d.hash()
	return d
}

// Load reads path into the document. A missing file is not an error: the
// document stays empty and keeps the path for a later save.
func (d *Document) Load(path string) error {
	d.path = path
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			d.savedHash = d.hash()
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	if len(data) > 0 {
		content := strings.TrimSuffix(string(data), "\n")
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSuffix(line, "\r")
			d.rows = append(d.rows, newRow(line, d.tabStop))
		}
	}
	d.dirty = false
	d.savedHash = d.hash()
	return nil
}

// Save writes the document to its path: rows joined by newlines with a
// trailing newline at end of file. Returns the byte count written.
func (d *Document) Save() (int, error) {
	if d.path == "" {
		return 0, errors.New("no file name")
	}
	data := []byte(d.Contents())
	if err := os.WriteFile(d.path, data, 0644); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", d.path, err)
	}
	d.dirty = false
	d.savedHash = d.hash()
	return len(data), nil
}

// Contents is the on-disk form of the document.
func (d *Document) Contents() string {
	if len(d.rows) == 0 {
		return ""
	}
	var b strings.Builder
	for _, row := range d.rows {
		b.WriteString(string(row.chars))
		b.WriteByte('\n')
	}
	return b.String()
}

func (d *Document) hash() [sha256.Size]byte {
	return sha256.Sum256([]byte(d.Contents()))
}

// ContentsChanged reports whether the contents differ from the last load
// or save. Unlike the dirty flag it goes back to false when edits are
// undone, so quitting a reverted buffer does not warn.
func (d *Document) ContentsChanged() bool {
	return d.hash() != d.savedHash
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) SetPath(path string) {
	d.path = path
}

func (d *Document) Dirty() bool {
	return d.dirty
}

func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at y, or nil when y is out of range.
func (d *Document) Row(y int) *Row {
	if y < 0 || y >= len(d.rows) {
		return nil
	}
	return d.rows[y]
}

// RowLen returns the content length of row y, 0 when out of range.
func (d *Document) RowLen(y int) int {
	if row := d.Row(y); row != nil {
		return row.Len()
	}
	return 0
}

// CxToRx converts a content column on row y to its render column.
func (d *Document) CxToRx(y, cx int) int {
	if row := d.Row(y); row != nil {
		return row.CxToRx(cx, d.tabStop)
	}
	return 0
}

// RxToCx converts a render column on row y to the closest content column.
func (d *Document) RxToCx(y, rx int) int {
	if row := d.Row(y); row != nil {
		return row.RxToCx(rx, d.tabStop)
	}
	return 0
}

func (d *Document) TabStop() int {
	return d.tabStop
}

// InsertRow inserts a new row at index at, clamped to [0, NumRows].
func (d *Document) InsertRow(at int, chars string) {
	if at < 0 {
		at = 0
	}
	if at > len(d.rows) {
		at = len(d.rows)
	}
	row := newRow(chars, d.tabStop)
	d.rows = append(d.rows[:at], append([]*Row{row}, d.rows[at:]...)...)
	d.dirty = true
}

// DeleteRow removes the row at index at; out of range is a no-op.
func (d *Document) DeleteRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	d.rows = append(d.rows[:at], d.rows[at+1:]...)
	d.dirty = true
}

// InsertChar inserts c on row y before column x, clamped to the row
// bounds. Typing on the virtual line past the last row creates the row.
func (d *Document) InsertChar(y, x int, c rune) {
	if y == len(d.rows) {
		d.InsertRow(len(d.rows), "")
	}
	row := d.Row(y)
	if row == nil {
		return
	}
	row.insertRune(x, c)
	row.update(d.tabStop)
	d.dirty = true
}

// InsertNewline splits row y at column x, shifting later rows down.
func (d *Document) InsertNewline(y, x int) {
	if x <= 0 || d.Row(y) == nil {
		d.InsertRow(y, "")
		return
	}
	row := d.rows[y]
	tail := row.split(x)
	row.update(d.tabStop)
	d.InsertRow(y+1, string(tail))
}

// DeleteChar removes the character before (y, x) and returns the cursor
// position after the deletion. At column 0 the row is merged into the end
// of the previous one; at the very start of the document it is a no-op.
func (d *Document) DeleteChar(y, x int) (int, int) {
	row := d.Row(y)
	if row == nil {
		return y, x
	}
	if x > row.Len() {
		x = row.Len()
	}

	if x > 0 {
		row.deleteRune(x - 1)
		row.update(d.tabStop)
		d.dirty = true
		return y, x - 1
	}
	if y == 0 {
		return 0, 0
	}

	prev := d.rows[y-1]
	newX := prev.Len()
	prev.appendRunes(row.chars)
	prev.update(d.tabStop)
	d.DeleteRow(y)
	return y - 1, newX
}
