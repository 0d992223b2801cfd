package app

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/atomicstack/passgen-popup/internal/clipboard"
	"github.com/atomicstack/passgen-popup/internal/logging"
	"github.com/atomicstack/passgen-popup/internal/password"
	"github.com/atomicstack/passgen-popup/internal/shell"
)

func TestPasswordConfigDefaults(t *testing.T) {
	pc := Config{}.PasswordConfig()
	if pc != password.Default() {
		t.Fatalf("expected default password config, got %#v", pc)
	}
	pc = Config{Length: 32}.PasswordConfig()
	if pc.Length != 32 || !pc.Strict {
		t.Fatalf("expected length override with strict mode, got %#v", pc)
	}
}

func TestNewShellGeneratesInitialPassword(t *testing.T) {
	cb := clipboard.NewMemory()
	sh, err := NewShell(Config{Length: 24}, cb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sh.Password()) != 24 {
		t.Fatalf("expected 24 character password, got %q", sh.Password())
	}
	eff := sh.Handle(shell.EventCopy)
	if eff.Err != nil {
		t.Fatalf("unexpected copy error: %v", eff.Err)
	}
	if got, _ := cb.ReadText(); got != sh.Password() {
		t.Fatalf("expected clipboard %q, got %q", sh.Password(), got)
	}
}

func TestNewShellRejectsBadConfig(t *testing.T) {
	if _, err := NewShell(Config{Length: 2}, clipboard.NewMemory()); !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected length error, got %v", err)
	}
	if _, err := NewShell(Config{Verify: "sometimes"}, clipboard.NewMemory()); err == nil {
		t.Fatalf("expected verify mode error")
	}
}

func TestNewShellWithTmuxMirror(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "passgen.log"))
	t.Cleanup(func() { logging.Configure("") })
	sh, err := NewShell(Config{TmuxBuffer: true, SocketPath: "/nonexistent/tmux.sock"}, clipboard.NewMemory())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// the mirror fails without a tmux server; copying must still succeed
	eff := sh.Handle(shell.EventCopy)
	if eff.Err != nil || eff.Dialog == nil || eff.Dialog.Title != shell.CopiedTitle {
		t.Fatalf("expected copy confirmation, got %v (%v)", eff, eff.Err)
	}
}
