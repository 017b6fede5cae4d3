package console

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wricardo/gemduel/game/config"
	"github.com/wricardo/gemduel/game/engine"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected rune
		consumed int
		err      error
	}{
		{"letter", []byte("u"), 'u', 1, nil},
		{"upper letter", []byte("R"), 'R', 1, nil},
		{"two letters", []byte("ur"), 'u', 1, nil},
		{"arrow up", []byte("\x1b[A"), 'U', 3, nil},
		{"arrow down", []byte("\x1b[B"), 'D', 3, nil},
		{"arrow right", []byte("\x1b[C"), 'R', 3, nil},
		{"arrow left", []byte("\x1b[D"), 'L', 3, nil},
		{"arrow then letter", []byte("\x1b[Al"), 'U', 3, nil},
		{"application arrow", []byte("\x1bOA"), 'U', 3, nil},
		{"other sequence", []byte("\x1b[5~u"), keyEsc, 4, nil},
		{"bare escape", []byte("\x1b"), keyEsc, 1, nil},
		{"multibyte rune", []byte("éu"), 'é', 2, nil},
		{"ctrl-c", []byte{keyCtrlC}, 0, 1, ErrInterrupted},
		{"ctrl-d", []byte{keyCtrlD}, 0, 1, io.EOF},
		{"empty", nil, 0, 0, io.EOF},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, n, err := decodeKey(test.input)
			if !errors.Is(err, test.err) {
				t.Fatalf("Expected error %v, got %v", test.err, err)
			}
			if got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
			if n != test.consumed {
				t.Errorf("Expected %d bytes consumed, got %d", test.consumed, n)
			}
		})
	}
}

func TestKeyReader_PendingKeys(t *testing.T) {
	var echo strings.Builder
	reader := NewKeyReader(nil, &echo)
	// One read delivered several keys at once
	reader.pending = []byte("ur\x1b[Bl")

	var got []rune
	for len(reader.pending) > 0 {
		key, err := reader.ReadKey()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got = append(got, key)
	}

	if string(got) != "urDl" {
		t.Errorf("Expected keys 'urDl', got '%s'", string(got))
	}
	if echo.String() != "urDl" {
		t.Errorf("Expected echo 'urDl', got '%s'", echo.String())
	}
}

func TestKeyReader_PendingInterrupt(t *testing.T) {
	reader := NewKeyReader(nil, nil)
	reader.pending = []byte{'u', keyCtrlC, 'r'}

	if key, err := reader.ReadKey(); err != nil || key != 'u' {
		t.Fatalf("Expected 'u', got %q (%v)", key, err)
	}
	if _, err := reader.ReadKey(); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Expected ErrInterrupted, got %v", err)
	}
	if key, err := reader.ReadKey(); err != nil || key != 'r' {
		t.Errorf("Expected 'r' after the interrupt, got %q (%v)", key, err)
	}
}

func TestKeyReader_CloseWithoutRead(t *testing.T) {
	reader := NewKeyReader(os.Stdin, nil)
	if err := reader.Close(); err != nil {
		t.Errorf("Expected Close to be a no-op outside raw mode, got %v", err)
	}
}

func TestStreamReader(t *testing.T) {
	reader := NewStreamReader(strings.NewReader("u\nR  l\r\nxd"))

	var got []rune
	for {
		key, err := reader.ReadKey()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		got = append(got, key)
	}

	if string(got) != "uRlxd" {
		t.Errorf("Expected keys 'uRlxd', got '%s'", string(got))
	}
}

func TestStreamReader_Empty(t *testing.T) {
	reader := NewStreamReader(strings.NewReader(" \n\t"))
	if _, err := reader.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestStreamReader_PlayStopsOnCancel(t *testing.T) {
	board, err := engine.ParseLayout([]string{
		"1-----",
		"------",
		"--G---",
		"------",
		"------",
		"-----2",
	})
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	game := engine.NewGame(board, engine.WithOutput(io.Discard), engine.WithLogger(quiet))

	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := game.Play(ctx, NewStreamReader(r))
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Play to stop while the stream reader waits for input")
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	if err := os.WriteFile(path, []byte("UD"), 0644); err != nil {
		t.Fatalf("Failed to write keys file: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open keys file: %v", err)
	}
	defer f.Close()

	t.Run("auto falls back to stream for files", func(t *testing.T) {
		src, err := Open(config.InputAuto, f, io.Discard)
		if err != nil {
			t.Fatalf("Failed to open auto input: %v", err)
		}
		if _, ok := src.(*StreamReader); !ok {
			t.Errorf("Expected *StreamReader, got %T", src)
		}
	})

	t.Run("line", func(t *testing.T) {
		src, err := Open(config.InputLine, f, io.Discard)
		if err != nil {
			t.Fatalf("Failed to open line input: %v", err)
		}
		if _, ok := src.(*StreamReader); !ok {
			t.Errorf("Expected *StreamReader, got %T", src)
		}
	})

	t.Run("key requires a terminal", func(t *testing.T) {
		if _, err := Open(config.InputKey, f, io.Discard); err == nil {
			t.Error("Expected error for key mode on a regular file")
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, err := Open("gamepad", f, io.Discard); err == nil {
			t.Error("Expected error for an unknown mode")
		}
	})
}

func TestIsTerminal_File(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "tty")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("Expected a regular file not to be a terminal")
	}
}
