package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/wricardo/gemduel/game/config"
	"github.com/wricardo/gemduel/game/engine"
	"golang.org/x/term"
)

var ErrInterrupted = errors.New("interrupted")

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
	keyEsc   = 0x1b
)

// KeyReader reads single key presses from a terminal
type KeyReader struct {
	in   *os.File
	echo io.Writer

	// bytes read but not yet decoded, e.g. keys typed faster than prompts
	pending []byte

	mu  sync.Mutex
	raw *term.State
}

// NewKeyReader creates a raw-mode reader over in. Each accepted key is
// echoed to echo, mirroring what a cooked terminal would show.
func NewKeyReader(in *os.File, echo io.Writer) *KeyReader {
	if echo == nil {
		echo = io.Discard
	}
	return &KeyReader{in: in, echo: echo}
}

// ReadKey blocks until one key is pressed
func (k *KeyReader) ReadKey() (rune, error) {
	if len(k.pending) == 0 {
		if err := k.fill(); err != nil {
			return 0, err
		}
	}

	key, n, err := decodeKey(k.pending)
	k.pending = k.pending[n:]
	if err != nil {
		return 0, err
	}
	fmt.Fprintf(k.echo, "%c", key)
	return key, nil
}

// fill performs one raw-mode read into the pending buffer.
// Escape sequences for arrow keys arrive in a single read.
func (k *KeyReader) fill() error {
	fd := int(k.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	k.mu.Lock()
	k.raw = state
	k.mu.Unlock()
	defer k.Close()

	buf := make([]byte, 16)
	n, err := k.in.Read(buf)
	if err != nil {
		return err
	}
	k.pending = append(k.pending, buf[:n]...)
	return nil
}

// Close restores the terminal if a read is still holding it in raw mode
func (k *KeyReader) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.raw == nil {
		return nil
	}
	err := term.Restore(int(k.in.Fd()), k.raw)
	k.raw = nil
	return err
}

// decodeKey decodes the first key press in b and reports how many bytes it used
func decodeKey(b []byte) (rune, int, error) {
	if len(b) == 0 {
		return 0, 0, io.EOF
	}

	switch b[0] {
	case keyCtrlC:
		return 0, 1, ErrInterrupted
	case keyCtrlD:
		return 0, 1, io.EOF
	case keyEsc:
		if len(b) < 3 || (b[1] != '[' && b[1] != 'O') {
			return keyEsc, 1, nil
		}
		// CSI and SS3 sequences end with a byte in 0x40..0x7e
		end := 2
		for end < len(b) && (b[end] < 0x40 || b[end] > 0x7e) {
			end++
		}
		if end == len(b) {
			return keyEsc, len(b), nil
		}
		switch b[end] {
		case 'A':
			return rune(engine.Up), end + 1, nil
		case 'B':
			return rune(engine.Down), end + 1, nil
		case 'C':
			return rune(engine.Right), end + 1, nil
		case 'D':
			return rune(engine.Left), end + 1, nil
		}
		return keyEsc, end + 1, nil
	}

	r, size := utf8.DecodeRune(b)
	return r, size, nil
}

// StreamReader reads keys from a byte stream
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader creates a reader that yields one non-space rune per call
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

// ReadKey returns the next non-whitespace rune
func (s *StreamReader) ReadKey() (rune, error) {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// Open returns the key source for the configured input mode
func Open(mode string, in *os.File, echo io.Writer) (engine.KeySource, error) {
	switch mode {
	case config.InputKey:
		if !IsTerminal(in) {
			return nil, fmt.Errorf("input mode %q requires a terminal", mode)
		}
		return NewKeyReader(in, echo), nil
	case config.InputLine:
		return NewStreamReader(in), nil
	case config.InputAuto:
		if IsTerminal(in) {
			return NewKeyReader(in, echo), nil
		}
		return NewStreamReader(in), nil
	default:
		return nil, fmt.Errorf("unknown input mode %q", mode)
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
