package buffer

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one line of the document: the raw content plus its render form,
// with tabs expanded to the next tab stop. The render form is derived,
// never edited directly.
type Row struct {
	chars  []rune
	render []rune
}

func newRow(chars string, tabStop int) *Row {
	r := &Row{chars: []rune(chars)}
	r.update(tabStop)
	return r
}

// advance returns the render column after drawing c at render column col.
// Every piece of column arithmetic in the editor goes through this one
// function; render, cursor math and highlighting must agree exactly.
func advance(col int, c rune, tabStop int) int {
	if c == '\t' {
		return col + tabStop - col%tabStop
	}
	return col + runewidth.RuneWidth(c)
}

// update recomputes the render form after a content change.
func (r *Row) update(tabStop int) {
	render := make([]rune, 0, len(r.chars))
	col := 0
	for _, c := range r.chars {
		next := advance(col, c, tabStop)
		if c == '\t' {
			for ; col < next; col++ {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
		col = next
	}
	r.render = render
}

// CxToRx converts a content column to its render column.
func (r *Row) CxToRx(cx, tabStop int) int {
	rx := 0
	for i, c := range r.chars {
		if i >= cx {
			break
		}
		rx = advance(rx, c, tabStop)
	}
	return rx
}

// RxToCx converts a render column back to the closest content column.
func (r *Row) RxToCx(rx, tabStop int) int {
	col := 0
	for cx, c := range r.chars {
		next := advance(col, c, tabStop)
		if next > rx {
			return cx
		}
		col = next
	}
	return len(r.chars)
}

// RenderSlice returns the part of the render form visible between render
// columns [colOffset, colOffset+width). A double-width rune straddling
// either edge becomes padding, never half a rune.
func (r *Row) RenderSlice(colOffset, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, c := range r.render {
		w := runewidth.RuneWidth(c)
		if col+w <= colOffset {
			col += w
			continue
		}
		if col >= colOffset+width {
			break
		}
		if col < colOffset || col+w > colOffset+width {
			for i := max(col, colOffset); i < min(col+w, colOffset+width); i++ {
				b.WriteByte(' ')
			}
		} else {
			b.WriteRune(c)
		}
		col += w
	}
	return b.String()
}

func (r *Row) Chars() string {
	return string(r.chars)
}

func (r *Row) Len() int {
	return len(r.chars)
}

func (r *Row) insertRune(at int, c rune) {
	if at < 0 {
		at = 0
	}
	if at > len(r.chars) {
		at = len(r.chars)
	}
	r.chars = append(r.chars[:at], append([]rune{c}, r.chars[at:]...)...)
}

func (r *Row) deleteRune(at int) {
	if at < 0 || at >= len(r.chars) {
		return
	}
	r.chars = append(r.chars[:at], r.chars[at+1:]...)
}

// split cuts the row at col and returns the tail.
func (r *Row) split(col int) []rune {
	if col < 0 {
		col = 0
	}
	if col > len(r.chars) {
		col = len(r.chars)
	}
	tail := append([]rune(nil), r.chars[col:]...)
	r.chars = r.chars[:col]
	return tail
}

func (r *Row) appendRunes(tail []rune) {
	r.chars = append(r.chars, tail...)
}
