package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Window        *lipgloss.Style
	Title         *lipgloss.Style
	Field         *lipgloss.Style
	FocusedField  *lipgloss.Style
	FieldText     *lipgloss.Style
	Button        *lipgloss.Style
	FocusedButton *lipgloss.Style
	Dialog        *lipgloss.Style
	DialogTitle   *lipgloss.Style
	DialogBody    *lipgloss.Style
	DialogButton  *lipgloss.Style
	Footer        *lipgloss.Style
	Error         *lipgloss.Style
}

var defaultStyles = Styles{
	Window: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
	),
	Title: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Field: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("238")),
	),
	FocusedField: ptr(
		lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("33")),
	),
	FieldText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Button: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("249")).Align(lipgloss.Center),
	),
	FocusedButton: ptr(
		lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("33")).
			Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true).Align(lipgloss.Center),
	),
	Dialog: ptr(
		lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("33")).Padding(0, 1),
	),
	DialogTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	DialogBody: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	DialogButton: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
