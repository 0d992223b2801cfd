package ui

import (
	"github.com/atomicstack/passgen-popup/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Type == tea.KeyCtrlC {
		return m.activate(WidgetWindow)
	}
	if m.dialog != nil {
		return m.handleDialogKey(key)
	}
	switch key.Type {
	case tea.KeyTab:
		if m.focus.Next() {
			m.focusChanged()
		}
	case tea.KeyShiftTab:
		if m.focus.Prev() {
			m.focusChanged()
		}
	case tea.KeyDown:
		if m.focus.MoveBy(1) {
			m.focusChanged()
		}
	case tea.KeyUp:
		if m.focus.MoveBy(-1) {
			m.focusChanged()
		}
	case tea.KeyEnter, tea.KeySpace:
		if w := m.focused(); w != WidgetField {
			return m.activate(w)
		}
	case tea.KeyEsc:
		return m.activate(WidgetWindow)
	case tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		if m.focused() == WidgetField {
			var cmd tea.Cmd
			m.field, cmd = m.field.Update(key)
			return cmd
		}
	case tea.KeyRunes:
		return m.handleShortcut(string(key.Runes))
	}
	return nil
}

func (m *Model) handleShortcut(s string) tea.Cmd {
	switch s {
	case "c":
		return m.activate(WidgetCopy)
	case "g", "n":
		return m.activate(WidgetGenerate)
	case "a":
		return m.activate(WidgetAbout)
	case "q":
		return m.activate(WidgetWindow)
	}
	return nil
}

// handleDialogKey keeps the dialog modal: only dismissal keys get through.
func (m *Model) handleDialogKey(key tea.KeyMsg) tea.Cmd {
	switch key.Type {
	case tea.KeyEnter, tea.KeySpace, tea.KeyEsc:
		m.closeDialog()
	}
	return nil
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if mouse.Button != tea.MouseButtonLeft || mouse.Action != tea.MouseActionRelease {
		return nil
	}
	if m.dialog != nil {
		if _, ok := m.dialogLayout(); ok.contains(mouse.X, mouse.Y) {
			events.UI.Click("dialog", mouse.X, mouse.Y)
			m.closeDialog()
		}
		return nil
	}
	w, ok := widgetAt(mouse.X, mouse.Y)
	if !ok {
		return nil
	}
	events.UI.Click(w.String(), mouse.X, mouse.Y)
	if w == WidgetField {
		m.setFocus(w.focusIndex())
		return nil
	}
	return m.activate(w)
}
