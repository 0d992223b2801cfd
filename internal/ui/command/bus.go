package command

import (
	"github.com/atomicstack/passgen-popup/internal/logging/events"
	"github.com/atomicstack/passgen-popup/internal/shell"
)

// Handler runs a shell event to completion.
type Handler interface {
	Handle(shell.Event) shell.Effect
}

// Request encapsulates an event raised by a widget.
type Request struct {
	ID    string
	Label string
	Event shell.Event
}

// Bus dispatches widget events to their handler on the caller's goroutine,
// so every event finishes before the next message is read.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Dispatch runs req through h while emitting trace logs. A nil handler is
// skipped and yields an empty effect.
func (b *Bus) Dispatch(h Handler, req Request) shell.Effect {
	events.Command.Queue(req.ID, req.Label)
	if h == nil {
		events.Command.Skip(req.ID, req.Label)
		return shell.Effect{}
	}
	eff := h.Handle(req.Event)
	events.Command.Result(req.ID, req.Label, eff.String())
	return eff
}
