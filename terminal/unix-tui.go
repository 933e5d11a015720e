//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type stdTerminal struct {
	in            *os.File
	out           *os.File
	inFd          int
	outFd         int
	originalState *term.State
}

func New() Terminal {
	return &stdTerminal{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}
}

func (t *stdTerminal) EnableRawMode() error {
	if !term.IsTerminal(t.inFd) {
		return fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(t.inFd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	t.originalState = old

	// Reads return after ~100ms with nothing instead of blocking forever,
	// so a lone Escape can be told apart from an escape sequence.
	tio, err := unix.IoctlGetTermios(t.inFd, ioctlGetTermios)
	if err != nil {
		t.DisableRawMode()
		return fmt.Errorf("failed to get termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(t.inFd, ioctlSetTermios, tio); err != nil {
		t.DisableRawMode()
		return fmt.Errorf("failed to set termios: %w", err)
	}

	return nil
}

func (t *stdTerminal) DisableRawMode() error {
	if t.originalState == nil {
		return nil
	}
	if err := term.Restore(t.inFd, t.originalState); err != nil {
		return fmt.Errorf("failed to restore terminal: %w", err)
	}
	t.originalState = nil
	return nil
}

func (t *stdTerminal) Close() error {
	// Safety net for abnormal exits; a no-op after DisableRawMode ran.
	return t.DisableRawMode()
}

// readByte returns ok=false when the read timed out with no input.
func (t *stdTerminal) readByte() (b byte, ok bool, err error) {
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to read stdin: %w", err)
	}
	if n == 0 {
		return 0, false, nil
	}
	return buf[0], true, nil
}

func (t *stdTerminal) ReadKey() (Key, error) {
	for {
		b, ok, err := t.readByte()
		if err != nil {
			return Key{}, err
		}
		if !ok {
			continue
		}
		next := func() (byte, bool) {
			nb, nok, nerr := t.readByte()
			return nb, nok && nerr == nil
		}
		return decodeKey(b, next), nil
	}
}

func (t *stdTerminal) GetWindowSize() (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(t.outFd, unix.TIOCGWINSZ)
	if err == nil && ws.Col > 0 {
		return int(ws.Col), int(ws.Row), nil
	}
	return t.cursorPositionSize()
}

// cursorPositionSize pushes the cursor to the bottom-right corner and asks
// the terminal to report where it ended up. Fallback for terminals whose
// window size ioctl does not work.
func (t *stdTerminal) cursorPositionSize() (width, height int, err error) {
	if _, err := t.out.WriteString("\x1b[999C\x1b[999B\x1b[6n"); err != nil {
		return 0, 0, fmt.Errorf("failed to query cursor position: %w", err)
	}

	// response: ESC [ rows ; cols R
	var resp []byte
	for len(resp) < 32 {
		b, ok, err := t.readByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok || b == 'R' {
			break
		}
		resp = append(resp, b)
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(resp), "\x1b[%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("failed to parse cursor position report %q: %w", resp, err)
	}
	if cols == 0 {
		return 0, 0, fmt.Errorf("terminal reported zero width")
	}
	return cols, rows, nil
}
