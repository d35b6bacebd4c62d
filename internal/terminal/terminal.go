// Package terminal reads single key presses and query lines from the user's
// terminal, falling back to line-at-a-time input when stdin is not a TTY.
package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/gdql/albumpick/internal/selector"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// Terminal implements selector.Input.
type Terminal struct {
	r    *bufio.Reader
	echo io.Writer
	fd   int
	tty  bool
}

// New wraps in. Raw single-key reads are used only when in is a terminal.
// Keys read in raw mode are echoed to echo, which may be nil.
func New(in io.Reader, echo io.Writer) *Terminal {
	t := &Terminal{r: bufio.NewReader(in), echo: echo, fd: -1}
	if f, ok := in.(*os.File); ok {
		t.fd = int(f.Fd())
		t.tty = IsTerminal(f)
	}
	return t
}

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ReadKey returns the next key press. End of input reads as KeyAbort.
func (t *Terminal) ReadKey() (selector.Key, error) {
	if !t.tty {
		return t.readKeyLine()
	}

	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return selector.KeyOther, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(t.fd, state)

	r, _, err := t.r.ReadRune()
	if errors.Is(err, io.EOF) {
		return selector.KeyAbort, nil
	}
	if err != nil {
		return selector.KeyOther, fmt.Errorf("reading key: %w", err)
	}
	if r == keyEsc && t.r.Buffered() > 0 {
		// arrow and function keys arrive as escape sequences
		_, _ = t.r.Discard(t.r.Buffered())
		return selector.KeyOther, nil
	}
	if t.echo != nil && unicode.IsPrint(r) {
		fmt.Fprint(t.echo, string(r))
	}
	return Classify(r), nil
}

// readKeyLine takes the first character of the next line.
func (t *Terminal) readKeyLine() (selector.Key, error) {
	line, ok, err := t.ReadLine()
	if err != nil {
		return selector.KeyOther, err
	}
	if !ok {
		return selector.KeyAbort, nil
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return selector.KeyOther, nil
	}
	return Classify([]rune(line)[0]), nil
}

// ReadLine reads one line of text. ok is false once input has ended with
// nothing left to return.
func (t *Terminal) ReadLine() (string, bool, error) {
	s, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("reading line: %w", err)
	}
	if errors.Is(err, io.EOF) && s == "" {
		return "", false, nil
	}
	return strings.TrimRight(s, "\r\n"), true, nil
}

// Classify maps a key to the picker's key set.
func Classify(r rune) selector.Key {
	switch r {
	case 'y', 'Y':
		return selector.KeyConfirm
	case 'n', 'N':
		return selector.KeyReject
	case '/':
		return selector.KeyQuery
	case ';':
		return selector.KeyFileQuery
	case keyEsc, keyCtrlC, keyCtrlD:
		return selector.KeyAbort
	default:
		return selector.KeyOther
	}
}

// Highlighter returns a function that colours candidate names when out is a
// terminal and leaves them plain otherwise.
func Highlighter(out *os.File) func(string) string {
	c := color.New(color.FgCyan, color.Bold)
	if !IsTerminal(out) {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return func(s string) string { return c.Sprint(s) }
}
