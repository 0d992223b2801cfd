package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	dialogWidth    = innerWidth - 4
	dialogContent  = dialogWidth - 2
	dialogOK       = "[ OK ]"
	maxDialogLines = bodyHeight - 6

	windowHelp = "tab focus · enter press · q close\nc copy · g generate · a about"
	dialogHelp = "enter/esc dismiss"
)

// View implements tea.Model.
func (m *Model) View() string {
	title := styles.Title.Copy().Width(innerWidth).Render(fitWidth(windowTitle, innerWidth))

	var body string
	if m.dialog != nil {
		box, _ := m.dialogLayout()
		area := lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, box)
		body = lipgloss.PlaceVertical(bodyHeight, lipgloss.Top, area)
	} else {
		body = m.viewWidgets()
	}

	frame := styles.Window.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	return frame + "\n" + m.viewFooter()
}

func (m *Model) viewWidgets() string {
	fieldStyle := styles.Field
	if m.focused() == WidgetField {
		fieldStyle = styles.FocusedField
	}
	rows := []string{
		fieldStyle.Copy().Width(innerWidth - 2).Render(m.field.View()),
	}
	for _, w := range focusable[1:] {
		style := styles.Button
		if m.focused() == w {
			style = styles.FocusedButton
		}
		rows = append(rows, style.Copy().Width(innerWidth-2).Render(fitWidth(w.Label(), innerWidth-2)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// dialogLayout renders the open dialog box and returns the screen area of
// its OK button.
func (m *Model) dialogLayout() (string, rect) {
	if m.dialog == nil {
		return "", rect{}
	}
	button := styles.DialogButton.Render(dialogOK)
	lines := []string{
		styles.DialogTitle.Render(fitWidth(m.dialog.Title, dialogContent)),
		"",
	}
	lines = append(lines, dialogBodyLines(m.dialog.Body)...)
	lines = append(lines,
		"",
		lipgloss.PlaceHorizontal(dialogContent, lipgloss.Center, button),
	)
	box := styles.Dialog.Copy().Width(dialogWidth).Render(strings.Join(lines, "\n"))

	// the box is centred in the body; its content starts after the left
	// border and padding, and the button is centred within the content
	boxX := 1 + (innerWidth-lipgloss.Width(box))/2
	contentX := boxX + styles.Dialog.GetBorderLeftSize() + styles.Dialog.GetPaddingLeft()
	buttonWidth := lipgloss.Width(button)
	ok := rect{
		x: contentX + (dialogContent-buttonWidth)/2,
		// last content row, directly above the bottom border
		y: bodyTop + len(lines),
		w: buttonWidth,
		h: 1,
	}
	return box, ok
}

// dialogBodyLines wraps body to the dialog width and caps it so the dialog
// never outgrows the window.
func dialogBodyLines(body string) []string {
	wrapped := lipgloss.NewStyle().Width(dialogContent).Render(body)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = styles.DialogBody.Render(strings.TrimRight(line, " "))
	}
	if len(lines) > maxDialogLines {
		lines = lines[:maxDialogLines]
		last := truncate.String(lines[maxDialogLines-1], uint(dialogContent-1))
		lines[maxDialogLines-1] = last + "…"
	}
	return lines
}

func (m *Model) viewFooter() string {
	if m.fatal != nil {
		return styles.Error.Render(fitWidth(fmt.Sprintf("Error: %v", m.fatal), frameWidth))
	}
	help := windowHelp
	if m.dialog != nil {
		help = dialogHelp
	}
	lines := strings.Split(help, "\n")
	for i, line := range lines {
		lines[i] = styles.Footer.Render(fitWidth(line, frameWidth))
	}
	return strings.Join(lines, "\n")
}

// fitWidth truncates s to at most width cells.
func fitWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
