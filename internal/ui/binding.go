package ui

import (
	"weak"

	"github.com/atomicstack/passgen-popup/internal/logging/events"
	"github.com/atomicstack/passgen-popup/internal/shell"
	"github.com/atomicstack/passgen-popup/internal/ui/command"
)

// handlerTable maps widgets to shell events. It only holds a weak reference
// to the shell: whoever created the shell owns it, and the table must be
// unbound before that owner lets it go.
type handlerTable struct {
	target  weak.Pointer[shell.Shell]
	entries map[Widget]shell.Event
}

func bindHandlers(sh *shell.Shell) *handlerTable {
	t := &handlerTable{entries: make(map[Widget]shell.Event, len(widgetEvents))}
	if sh != nil {
		t.target = weak.Make(sh)
	}
	for w, ev := range widgetEvents {
		t.entries[w] = ev
	}
	events.UI.Bind(len(t.entries))
	return t
}

// lookup resolves the handler for w. It fails once the table is unbound or
// the shell has been released.
func (t *handlerTable) lookup(w Widget) (command.Handler, command.Request, bool) {
	if t == nil || t.entries == nil {
		return nil, command.Request{}, false
	}
	ev, ok := t.entries[w]
	if !ok {
		return nil, command.Request{}, false
	}
	sh := t.target.Value()
	if sh == nil {
		return nil, command.Request{}, false
	}
	return sh, command.Request{ID: w.String(), Label: w.Label(), Event: ev}, true
}

func (t *handlerTable) bound() bool {
	return t != nil && t.entries != nil
}

// unbind drops every registration. Safe to call more than once.
func (t *handlerTable) unbind() int {
	if t == nil || t.entries == nil {
		return 0
	}
	n := len(t.entries)
	t.entries = nil
	t.target = weak.Pointer[shell.Shell]{}
	events.UI.Unbind(n)
	return n
}
