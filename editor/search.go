package editor

import (
	"unicode"

	"github.com/bulga138/texty/terminal"
)

type matchPos struct {
	y, x int
}

// searchState lives only while the search prompt is open. The snapshot
// fields restore the exact pre-search view when the search is cancelled.
type searchState struct {
	query   []rune
	matches []matchPos
	current int // index into matches, -1 when no current match
	forward bool

	savedX, savedY     int
	savedRow, savedCol int // viewport offsets
	savedDesired       int
}

func (e *Editor) startSearch() {
	e.flushPending()
	e.mode = modeSearch
	e.search = searchState{
		current:      -1,
		forward:      true,
		savedX:       e.cursorX,
		savedY:       e.cursorY,
		savedRow:     e.rowOffset,
		savedCol:     e.colOffset,
		savedDesired: e.desiredX,
	}
}

func (e *Editor) handleSearchKey(k terminal.Key) {
	s := &e.search
	switch {
	case k.Type == terminal.KeyEnter:
		e.mode = modeNormal
		e.search = searchState{current: -1}
		e.setStatusMessage("")

	case k.Type == terminal.KeyEscape:
		e.cursorX, e.cursorY = s.savedX, s.savedY
		e.rowOffset, e.colOffset = s.savedRow, s.savedCol
		e.desiredX = s.savedDesired
		e.mode = modeNormal
		e.search = searchState{current: -1}
		e.setStatusMessage("Search cancelled")

	case k.Type == terminal.KeyArrowDown || k.Type == terminal.KeyArrowRight:
		s.forward = true
		e.stepMatch(1)

	case k.Type == terminal.KeyArrowUp || k.Type == terminal.KeyArrowLeft:
		s.forward = false
		e.stepMatch(-1)

	case k.Type == terminal.KeyBackspace:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
		}
		e.research()

	case k.Type == terminal.KeyTab:
		s.query = append(s.query, '\t')
		e.research()

	case k.Type == terminal.KeyRune && !unicode.IsControl(k.Rune):
		s.query = append(s.query, k.Rune)
		e.research()
	}
}

// research rebuilds the match list and jumps to the first match at or
// after the position the search started from, wrapping to the top.
func (e *Editor) research() {
	s := &e.search
	e.collectMatches()
	if len(s.matches) == 0 {
		s.current = -1
		if len(s.query) == 0 {
			e.cursorX, e.cursorY = s.savedX, s.savedY
			e.rememberColumn()
		}
		return
	}
	s.current = 0
	for i, m := range s.matches {
		if m.y > s.savedY || (m.y == s.savedY && m.x >= s.savedX) {
			s.current = i
			break
		}
	}
	e.jumpToMatch()
}

// stepMatch moves to the next or previous match, wrapping around the
// document in either direction.
func (e *Editor) stepMatch(dir int) {
	s := &e.search
	if len(s.matches) == 0 {
		return
	}
	if s.current == -1 {
		if dir > 0 {
			s.current = 0
		} else {
			s.current = len(s.matches) - 1
		}
	} else {
		s.current = (s.current + dir + len(s.matches)) % len(s.matches)
	}
	e.jumpToMatch()
}

func (e *Editor) jumpToMatch() {
	s := &e.search
	if s.current < 0 || s.current >= len(s.matches) {
		return
	}
	m := s.matches[s.current]
	e.cursorY = m.y
	e.cursorX = m.x
	e.rememberColumn()
}

// collectMatches scans every row for the query, overlapping matches
// included, honoring the case-folding knob.
func (e *Editor) collectMatches() {
	s := &e.search
	s.matches = nil
	if len(s.query) == 0 {
		return
	}
	query := s.query
	if e.config.SearchIgnoreCase {
		query = lowerRunes(query)
	}
	for y := 0; y < e.doc.NumRows(); y++ {
		line := e.rowRunes(y)
		if e.config.SearchIgnoreCase {
			line = lowerRunes(line)
		}
		for x := 0; x+len(query) <= len(line); x++ {
			if runesHavePrefix(line[x:], query) {
				s.matches = append(s.matches, matchPos{y: y, x: x})
			}
		}
	}
}

// matchOnRow returns the render-column span of the current match when it
// lies on row y; ok is false otherwise. Recomputed per frame, never
// stored in the buffer.
func (e *Editor) matchOnRow(y int) (startRx, endRx int, ok bool) {
	s := &e.search
	if e.mode != modeSearch || s.current < 0 || s.current >= len(s.matches) {
		return 0, 0, false
	}
	m := s.matches[s.current]
	if m.y != y {
		return 0, 0, false
	}
	return e.doc.CxToRx(y, m.x), e.doc.CxToRx(y, m.x+len(s.query)), true
}

func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func runesHavePrefix(line, prefix []rune) bool {
	for i, r := range prefix {
		if line[i] != r {
			return false
		}
	}
	return true
}
