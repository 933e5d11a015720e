package terminal

import (
	"strings"
	"unicode/utf8"
)

type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	GetWindowSize() (width, height int, err error)
	ReadKey() (Key, error)
	Close() error
}

type KeyType int

const (
	KeyNone KeyType = iota // unrecognized input, ignored by the editor
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Key is one decoded key event. Rune is set for KeyRune (printable and
// control characters alike); Ctrl and Shift carry escape-sequence
// modifiers on the arrow keys.
type Key struct {
	Type  KeyType
	Rune  rune
	Ctrl  bool
	Shift bool
}

// decodeKey turns the first byte of a key event into a Key, pulling any
// further bytes of the sequence through next. next reports false when no
// byte arrives within the read timeout, which is how a lone Escape press
// is told apart from the start of an escape sequence.
func decodeKey(b byte, next func() (byte, bool)) Key {
	switch {
	case b == '\r':
		return Key{Type: KeyEnter}
	case b == '\t':
		return Key{Type: KeyTab}
	case b == 0x7f || b == '\b':
		return Key{Type: KeyBackspace}
	case b == 0x1b:
		return decodeEscape(next)
	case b < utf8.RuneSelf:
		return Key{Type: KeyRune, Rune: rune(b)}
	default:
		return decodeUTF8(b, next)
	}
}

func decodeEscape(next func() (byte, bool)) Key {
	b, ok := next()
	if !ok {
		return Key{Type: KeyEscape}
	}
	switch b {
	case '[':
		return decodeCSI(next)
	case 'O':
		// SS3 sequences sent in application cursor mode
		b2, ok := next()
		if !ok {
			return Key{Type: KeyNone}
		}
		switch b2 {
		case 'A':
			return Key{Type: KeyArrowUp}
		case 'B':
			return Key{Type: KeyArrowDown}
		case 'C':
			return Key{Type: KeyArrowRight}
		case 'D':
			return Key{Type: KeyArrowLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}
		return Key{Type: KeyNone}
	default:
		// Alt-modified key; not part of the keymap
		return Key{Type: KeyNone}
	}
}

// decodeCSI consumes parameter bytes up to the final byte of a control
// sequence and maps the sequences the editor uses.
func decodeCSI(next func() (byte, bool)) Key {
	var params []byte
	for {
		b, ok := next()
		if !ok {
			return Key{Type: KeyNone}
		}
		if b >= 0x40 && b <= 0x7e {
			return csiKey(string(params), b)
		}
		if len(params) >= 8 {
			// runaway sequence, give up
			return Key{Type: KeyNone}
		}
		params = append(params, b)
	}
}

func csiKey(params string, final byte) Key {
	ctrl, shift := csiModifiers(params)
	switch final {
	case 'A':
		return Key{Type: KeyArrowUp, Ctrl: ctrl, Shift: shift}
	case 'B':
		return Key{Type: KeyArrowDown, Ctrl: ctrl, Shift: shift}
	case 'C':
		return Key{Type: KeyArrowRight, Ctrl: ctrl, Shift: shift}
	case 'D':
		return Key{Type: KeyArrowLeft, Ctrl: ctrl, Shift: shift}
	case 'H':
		return Key{Type: KeyHome}
	case 'F':
		return Key{Type: KeyEnd}
	case '~':
		num, _, _ := strings.Cut(params, ";")
		switch num {
		case "1", "7":
			return Key{Type: KeyHome}
		case "3":
			return Key{Type: KeyDelete}
		case "4", "8":
			return Key{Type: KeyEnd}
		case "5":
			return Key{Type: KeyPageUp}
		case "6":
			return Key{Type: KeyPageDown}
		}
	}
	return Key{Type: KeyNone}
}

// csiModifiers reads the xterm modifier parameter: "1;2" Shift, "1;5"
// Ctrl, "1;6" both.
func csiModifiers(params string) (ctrl, shift bool) {
	_, mod, found := strings.Cut(params, ";")
	if !found {
		return false, false
	}
	switch mod {
	case "2":
		return false, true
	case "5":
		return true, false
	case "6":
		return true, true
	}
	return false, false
}

func decodeUTF8(first byte, next func() (byte, bool)) Key {
	buf := []byte{first}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		b, ok := next()
		if !ok {
			return Key{Type: KeyNone}
		}
		buf = append(buf, b)
	}
	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Type: KeyNone}
	}
	return Key{Type: KeyRune, Rune: r}
}
