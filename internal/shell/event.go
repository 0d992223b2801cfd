package shell

import (
	"fmt"
	"strings"
)

// Event is one of the things the window can ask the shell to do.
type Event int

const (
	EventCopy Event = iota
	EventGenerate
	EventAbout
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventCopy:
		return "copy"
	case EventGenerate:
		return "generate"
	case EventAbout:
		return "about"
	case EventClose:
		return "close"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Dialog is an OK-only modal message.
type Dialog struct {
	Title string
	Body  string
}

// Effect describes what the window must do after an event was handled.
type Effect struct {
	// Password is the text the field must display. Empty means unchanged.
	Password string
	Dialog   *Dialog
	Quit     bool
	// Err is fatal: the window closes and the process exits with it.
	Err error
}

func (e Effect) String() string {
	parts := make([]string, 0, 4)
	if e.Password != "" {
		parts = append(parts, "password")
	}
	if e.Dialog != nil {
		parts = append(parts, "dialog:"+e.Dialog.Title)
	}
	if e.Quit {
		parts = append(parts, "quit")
	}
	if e.Err != nil {
		parts = append(parts, "error")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// VerifyMode controls what happens when the clipboard does not read back
// what was written.
type VerifyMode int

const (
	VerifyFatal VerifyMode = iota
	VerifyWarn
)

func (v VerifyMode) String() string {
	if v == VerifyWarn {
		return "warn"
	}
	return "fatal"
}

// ParseVerifyMode accepts "fatal" or "warn". Empty means fatal.
func ParseVerifyMode(s string) (VerifyMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fatal":
		return VerifyFatal, nil
	case "warn":
		return VerifyWarn, nil
	default:
		return VerifyFatal, fmt.Errorf("verify mode must be fatal or warn (got %q)", s)
	}
}
