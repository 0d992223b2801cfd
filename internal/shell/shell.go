// Package shell holds the password popup's state and turns window events
// into effects. It knows nothing about rendering.
package shell

import (
	"errors"
	"fmt"

	"github.com/atomicstack/passgen-popup/internal/clipboard"
	"github.com/atomicstack/passgen-popup/internal/logging"
	"github.com/atomicstack/passgen-popup/internal/logging/events"
)

const (
	CopiedTitle  = "Copied to clipboard"
	CopiedPrefix = "Copied to clipboard "
	AboutTitle   = "About"
	AboutBody    = "© Victor Vinogradov 2022 \nvict.programmer@gmail.com \nhttps://github.com/vict-programmer"

	clipboardWarningTitle = "Clipboard"
)

// Generator produces one password per call.
type Generator interface {
	GenerateOne() (string, error)
}

// Options wires the shell to its collaborators.
type Options struct {
	Generator Generator
	Clipboard clipboard.Clipboard
	// Mirror, when set, receives every successfully copied password. Its
	// failures are logged and otherwise ignored.
	Mirror func(string) error
	Verify VerifyMode
}

type state int

const (
	stateOpen state = iota
	stateTerminated
)

// Shell owns the displayed password.
type Shell struct {
	gen      Generator
	cb       clipboard.Clipboard
	mirror   func(string) error
	verify   VerifyMode
	password string
	state    state
}

// New generates the first password. Failure here is a startup failure.
func New(opts Options) (*Shell, error) {
	if opts.Generator == nil {
		return nil, errors.New("shell requires a password generator")
	}
	if opts.Clipboard == nil {
		return nil, errors.New("shell requires a clipboard")
	}
	s := &Shell{
		gen:    opts.Generator,
		cb:     opts.Clipboard,
		mirror: opts.Mirror,
		verify: opts.Verify,
	}
	if err := s.regenerate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Password returns the currently displayed password.
func (s *Shell) Password() string {
	return s.password
}

// Terminated reports whether the close event has been handled.
func (s *Shell) Terminated() bool {
	return s.state == stateTerminated
}

// Handle runs ev to completion. Events after close are ignored.
func (s *Shell) Handle(ev Event) Effect {
	if s.state == stateTerminated {
		return Effect{}
	}
	switch ev {
	case EventGenerate:
		if err := s.regenerate(); err != nil {
			events.Action.Error(err)
			return Effect{Err: err, Quit: true}
		}
		return Effect{Password: s.password}
	case EventCopy:
		return s.copy()
	case EventAbout:
		events.Action.About()
		return Effect{Dialog: &Dialog{Title: AboutTitle, Body: AboutBody}}
	case EventClose:
		s.state = stateTerminated
		return Effect{Quit: true}
	default:
		return Effect{}
	}
}

func (s *Shell) regenerate() error {
	pw, err := s.gen.GenerateOne()
	if err != nil {
		return fmt.Errorf("generate password: %w", err)
	}
	s.password = pw
	events.Action.Generate(len(pw))
	return nil
}

func (s *Shell) copy() Effect {
	text := s.password
	if err := clipboard.CopyVerified(s.cb, text); err != nil {
		err = fmt.Errorf("copy to clipboard: %w", err)
		if s.verify == VerifyFatal {
			events.Action.Error(err)
			return Effect{Err: err, Quit: true}
		}
		events.Action.Warning(err)
		logging.Warn("%v", err)
		return Effect{Dialog: &Dialog{Title: clipboardWarningTitle, Body: err.Error()}}
	}
	mirrored := false
	if s.mirror != nil {
		if err := s.mirror(text); err != nil {
			events.Action.Warning(err)
			logging.Warn("mirror copied password: %v", err)
		} else {
			mirrored = true
		}
	}
	events.Action.Copy(len(text), mirrored)
	return Effect{Dialog: &Dialog{Title: CopiedTitle, Body: CopiedPrefix + text}}
}
