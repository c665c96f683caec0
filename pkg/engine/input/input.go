package input

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Terminal reads single key presses from a raw-mode terminal.
type Terminal struct {
	fd    int
	state *term.State
	in    io.Reader
}

// OpenTerminal switches stdin to raw mode. Close restores it.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Terminal{fd: fd, state: state, in: os.Stdin}, nil
}

// Close restores the terminal to the mode it had before OpenTerminal
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(t.fd, t.state)
	t.state = nil
	return err
}

// Events starts reading keys on a goroutine and returns them as raw
// inputs. The channel closes when the reader fails or ctx is done.
func (t *Terminal) Events(ctx context.Context) <-chan RawInput {
	return ReadKeys(ctx, t.in)
}

// ReadKeys decodes key presses from r until it fails or ctx is done.
// A blocked read is only noticed once the next byte arrives.
func ReadKeys(ctx context.Context, r io.Reader) <-chan RawInput {
	out := make(chan RawInput, 16)
	go func() {
		defer close(out)
		br := bufio.NewReader(r)
		for {
			code, err := nextKey(br)
			if err != nil {
				if err != io.EOF {
					log.Debugf("key reader stopped: %v", err)
				}
				return
			}
			if code == "" {
				continue
			}
			select {
			case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// nextKey reads one key and returns its code, or "" for bytes with no
// meaning here
func nextKey(br *bufio.Reader) (string, error) {
	b, err := br.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(br)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 'A' && b <= 'Z':
		return string(rune(b - 'A' + 'a')), nil
	case b > 32 && b < 127:
		return string(rune(b)), nil
	}
	return "", nil
}

// readEscape decodes what follows ESC. A lone ESC (nothing buffered
// after it) is the escape key.
func readEscape(br *bufio.Reader) (string, error) {
	if br.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := br.ReadByte()
	if err != nil {
		return "", err
	}

	// CSI (ESC [) and SS3 (ESC O) both carry arrow keys
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}
	for {
		b3, err := br.ReadByte()
		if err != nil {
			return "", err
		}
		switch b3 {
		case 'A':
			return "arrow_up", nil
		case 'B':
			return "arrow_down", nil
		case 'C':
			return "arrow_right", nil
		case 'D':
			return "arrow_left", nil
		}
		// parameters and intermediates, then a final byte we don't know
		if b3 >= 0x40 && b3 <= 0x7e {
			return "", nil
		}
	}
}
