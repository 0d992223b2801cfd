package app

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/atomicstack/passgen-popup/internal/clipboard"
	"github.com/atomicstack/passgen-popup/internal/logging/events"
	"github.com/atomicstack/passgen-popup/internal/password"
	"github.com/atomicstack/passgen-popup/internal/shell"
	"github.com/atomicstack/passgen-popup/internal/tmux"
	"github.com/atomicstack/passgen-popup/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Length     int
	Clipboard  string
	Verify     string
	TmuxBuffer bool
	SocketPath string
	BufferName string
}

// PasswordConfig returns the generator configuration for cfg.
func (c Config) PasswordConfig() password.Config {
	pc := password.Default()
	if c.Length > 0 {
		pc.Length = c.Length
	}
	return pc
}

// NewShell wires the generator, clipboard and optional tmux mirror, and
// generates the first password.
func NewShell(cfg Config, cb clipboard.Clipboard) (*shell.Shell, error) {
	gen, err := password.New(cfg.PasswordConfig())
	if err != nil {
		return nil, fmt.Errorf("password generator: %w", err)
	}
	verify, err := shell.ParseVerifyMode(cfg.Verify)
	if err != nil {
		return nil, err
	}
	opts := shell.Options{Generator: gen, Clipboard: cb, Verify: verify}
	if cfg.TmuxBuffer {
		socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return nil, fmt.Errorf("resolve socket path: %w", err)
		}
		opts.Mirror = tmux.NewBuffer(socketPath, cfg.BufferName).Set
	}
	sh, err := shell.New(opts)
	if err != nil {
		return nil, fmt.Errorf("initial password: %w", err)
	}
	return sh, nil
}

// Run bootstraps and executes the Bubble Tea program. It returns once the
// window is closed, after every event handler has been unbound.
func Run(cfg Config) error {
	cb, err := clipboard.Open(cfg.Clipboard)
	if err != nil {
		return err
	}
	sh, err := NewShell(cfg, cb)
	if err != nil {
		return err
	}
	model := ui.NewModel(sh)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()

	model.Close()
	runtime.KeepAlive(sh)

	if errors.Is(err, tea.ErrProgramKilled) {
		events.App.Shutdown("killed", nil)
		return nil
	}
	if err != nil {
		events.App.Shutdown("program error", err)
		return err
	}
	if err := model.Err(); err != nil {
		events.App.Shutdown("fatal", err)
		return err
	}
	events.App.Shutdown("closed", nil)
	return nil
}
