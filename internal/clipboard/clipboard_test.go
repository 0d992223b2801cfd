package clipboard

import (
	"errors"
	"testing"
)

type lossyClipboard struct {
	Memory
}

func (l *lossyClipboard) ReadText() (string, error) {
	text, _ := l.Memory.ReadText()
	if len(text) > 0 {
		text = text[:len(text)-1]
	}
	return text, nil
}

type failingClipboard struct {
	writeErr error
	readErr  error
}

func (f failingClipboard) WriteText(string) error     { return f.writeErr }
func (f failingClipboard) ReadText() (string, error) { return "", f.readErr }

func TestMemoryRoundTrip(t *testing.T) {
	cb := NewMemory()
	for _, text := range []string{"", "a", `x9!"#$%&'()*+,-./:;<=>?@[\]^_{|}~Zq`} {
		if err := cb.WriteText(text); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
		got, err := cb.ReadText()
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
		if got != text {
			t.Fatalf("expected %q, got %q", text, got)
		}
	}
	if cb.Writes() != 3 {
		t.Fatalf("expected 3 writes, got %d", cb.Writes())
	}
}

func TestCopyVerifiedSucceeds(t *testing.T) {
	cb := NewMemory()
	if err := CopyVerified(cb, "Secr3t!Value"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := cb.ReadText(); got != "Secr3t!Value" {
		t.Fatalf("expected clipboard to hold copied text, got %q", got)
	}
}

func TestCopyVerifiedDetectsMismatch(t *testing.T) {
	err := CopyVerified(&lossyClipboard{}, "abcdef")
	if !errors.Is(err, ErrRoundTripMismatch) {
		t.Fatalf("expected round-trip mismatch, got %v", err)
	}
}

func TestCopyVerifiedPropagatesErrors(t *testing.T) {
	writeErr := errors.New("no display")
	if err := CopyVerified(failingClipboard{writeErr: writeErr}, "x"); !errors.Is(err, writeErr) {
		t.Fatalf("expected write error, got %v", err)
	}
	readErr := errors.New("read failed")
	if err := CopyVerified(failingClipboard{readErr: readErr}, "x"); !errors.Is(err, readErr) {
		t.Fatalf("expected read error, got %v", err)
	}
	if err := CopyVerified(nil, "x"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected unavailable error for nil clipboard, got %v", err)
	}
}

func TestOpenMemory(t *testing.T) {
	cb, err := Open("memory")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cb.(*Memory); !ok {
		t.Fatalf("expected *Memory, got %T", cb)
	}
	if _, err := Open("carrier-pigeon"); err == nil {
		t.Fatalf("expected error for unknown clipboard kind")
	}
}
