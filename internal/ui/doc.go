// Package ui contains the Bubble Tea program that draws the password window.
// The Model type only orchestrates messages; the password itself and every
// side effect live in internal/shell.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, one at a time.
//     Each message is routed through a typed handler registry (key presses,
//     mouse clicks, resizes) and runs to completion before Update returns.
//   - Key presses and clicks resolve to a Widget. Buttons and the window are
//     bound to shell events in a handlerTable; activating a widget dispatches
//     its event through the command bus (internal/ui/command), which calls
//     shell.Shell.Handle synchronously and returns an Effect.
//   - applyEffect replaces the field text, opens a modal dialog, or quits.
//     While a dialog is open every input except its dismissal is swallowed.
//
// Ownership:
//   - The handlerTable holds only a weak reference to the shell. The caller
//     that created the shell owns it and must call Model.Close, which unbinds
//     every handler, before releasing it.
//
// Layout:
//   - The window is a fixed frame anchored at the top-left cell. Widget
//     positions are constants (see widget.go), so mouse hit testing never has
//     to look at rendered output.
package ui
