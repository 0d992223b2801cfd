// Package clipboard provides access to the system clipboard along with an
// in-process stand-in for headless sessions and tests.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

const (
	KindSystem = "system"
	KindMemory = "memory"
)

var (
	ErrUnavailable       = errors.New("system clipboard unavailable")
	ErrRoundTripMismatch = errors.New("clipboard round-trip mismatch")
)

// Clipboard reads and writes plain text.
type Clipboard interface {
	WriteText(text string) error
	ReadText() (string, error)
}

// System implements Clipboard using github.com/atotto/clipboard.
type System struct{}

// WriteText copies text to the system clipboard.
func (System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// ReadText returns the current clipboard text.
func (System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// Open returns the clipboard implementation named by kind.
func Open(kind string) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindSystem:
		if clipboard.Unsupported {
			return nil, fmt.Errorf("%w: install xclip, xsel or wl-clipboard, or use -clipboard=%s", ErrUnavailable, KindMemory)
		}
		return System{}, nil
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown clipboard %q", kind)
	}
}

// CopyVerified writes text and reads it back. A successful write that does
// not read back identically yields ErrRoundTripMismatch.
func CopyVerified(cb Clipboard, text string) error {
	if cb == nil {
		return ErrUnavailable
	}
	if err := cb.WriteText(text); err != nil {
		return err
	}
	got, err := cb.ReadText()
	if err != nil {
		return err
	}
	if got != text {
		return fmt.Errorf("%w: wrote %d bytes, read back %d", ErrRoundTripMismatch, len(text), len(got))
	}
	return nil
}

var _ Clipboard = System{}
