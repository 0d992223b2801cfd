package ui

import (
	"reflect"

	"github.com/atomicstack/passgen-popup/internal/logging/events"
	"github.com/atomicstack/passgen-popup/internal/shell"
	"github.com/atomicstack/passgen-popup/internal/theme"
	"github.com/atomicstack/passgen-popup/internal/ui/command"
	uistate "github.com/atomicstack/passgen-popup/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the password window.
type Model struct {
	field  textinput.Model
	focus  uistate.Focus
	dialog *shell.Dialog

	handlers map[reflect.Type]msgHandler
	bindings *handlerTable
	bus      *command.Bus

	width  int
	height int
	fatal  error
	closed bool
}

// NewModel builds the window around sh. The model does not keep sh alive;
// the caller owns it until Close has been called.
func NewModel(sh *shell.Shell) *Model {
	field := textinput.New()
	field.Prompt = ""
	field.Width = fieldWidth
	if styles.FieldText != nil {
		field.TextStyle = styles.FieldText.Copy()
	}
	field.Cursor.SetMode(cursor.CursorHide)
	if sh != nil {
		field.SetValue(sh.Password())
	}
	field.CursorStart()
	field.Focus()

	m := &Model{
		field:    field,
		focus:    uistate.NewFocus(len(focusable)),
		bindings: bindHandlers(sh),
		bus:      command.New(),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(windowTitle)
}

// Update responds to Bubble Tea messages. Every message is handled to
// completion before the next one is read.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	m.width = size.Width
	m.height = size.Height
	return nil
}

// activate raises w's event through the command bus and applies the result.
func (m *Model) activate(w Widget) tea.Cmd {
	h, req, ok := m.bindings.lookup(w)
	if !ok {
		return nil
	}
	if idx := w.focusIndex(); idx >= 0 {
		m.setFocus(idx)
	}
	return m.applyEffect(m.bus.Dispatch(h, req))
}

func (m *Model) applyEffect(eff shell.Effect) tea.Cmd {
	if eff.Password != "" {
		m.field.SetValue(eff.Password)
		m.field.CursorStart()
	}
	if eff.Err != nil {
		m.fatal = eff.Err
	}
	if eff.Dialog != nil {
		m.openDialog(eff.Dialog)
	}
	if eff.Quit {
		m.closed = true
		return tea.Quit
	}
	return nil
}

func (m *Model) setFocus(idx int) {
	if m.focus.Set(idx) {
		m.focusChanged()
	}
}

// focusChanged moves the text cursor in or out of the field after the focus
// index changed.
func (m *Model) focusChanged() {
	if focusable[m.focus.Index] == WidgetField {
		m.field.Focus()
	} else {
		m.field.Blur()
	}
	events.UI.Focus(m.focused().String())
}

func (m *Model) focused() Widget {
	return focusable[m.focus.Index]
}

func (m *Model) openDialog(d *shell.Dialog) {
	m.dialog = d
	events.UI.DialogOpen(d.Title)
}

func (m *Model) closeDialog() {
	if m.dialog == nil {
		return
	}
	events.UI.DialogClose(m.dialog.Title)
	m.dialog = nil
}

// Password returns the text shown in the read-only field.
func (m *Model) Password() string {
	return m.field.Value()
}

// Dialog returns the open modal dialog, if any.
func (m *Model) Dialog() *shell.Dialog {
	return m.dialog
}

// Focused returns the widget holding keyboard focus.
func (m *Model) Focused() Widget {
	return m.focused()
}

// Err returns the fatal error that closed the window, if any.
func (m *Model) Err() error {
	return m.fatal
}

// Closed reports whether the window asked the program to quit.
func (m *Model) Closed() bool {
	return m.closed
}

// Close unbinds every event handler. Input arriving afterwards is ignored.
func (m *Model) Close() {
	m.bindings.unbind()
}
