package ui

import "github.com/atomicstack/passgen-popup/internal/shell"

// Widget identifies an element of the password window.
type Widget int

const (
	WidgetField Widget = iota
	WidgetCopy
	WidgetGenerate
	WidgetAbout
	// WidgetWindow is the window itself; it only receives close.
	WidgetWindow
)

// focusable widgets are the ones Tab cycles through, in order.
var focusable = []Widget{WidgetField, WidgetCopy, WidgetGenerate, WidgetAbout}

var widgetEvents = map[Widget]shell.Event{
	WidgetCopy:     shell.EventCopy,
	WidgetGenerate: shell.EventGenerate,
	WidgetAbout:    shell.EventAbout,
	WidgetWindow:   shell.EventClose,
}

func (w Widget) String() string {
	switch w {
	case WidgetField:
		return "field"
	case WidgetCopy:
		return "copy"
	case WidgetGenerate:
		return "generate"
	case WidgetAbout:
		return "about"
	case WidgetWindow:
		return "window"
	default:
		return "unknown"
	}
}

// Label is the text shown on a button.
func (w Widget) Label() string {
	switch w {
	case WidgetCopy:
		return "Copy password"
	case WidgetGenerate:
		return "Generate new password"
	case WidgetAbout:
		return "About"
	case WidgetWindow:
		return windowTitle
	default:
		return ""
	}
}

func (w Widget) focusIndex() int {
	for i, f := range focusable {
		if f == w {
			return i
		}
	}
	return -1
}

const (
	windowTitle = "🔐 Simple Password Generator"

	// The window is a fixed frame drawn at the top-left corner:
	//
	//	row 0       top border
	//	row 1       title
	//	rows 2-4    password field
	//	rows 5-7    Copy password
	//	rows 8-10   Generate new password
	//	rows 11-13  About
	//	row 14      bottom border
	frameWidth   = 44
	frameHeight  = 15
	innerWidth   = frameWidth - 2
	widgetHeight = 3
	bodyTop      = 2
	bodyHeight   = frameHeight - bodyTop - 1

	// fieldWidth leaves a column for the cursor inside the field border.
	fieldWidth = innerWidth - 3
)

// footerHeight is the number of help lines drawn under the frame.
const footerHeight = 2

// MinTerminalSize is the smallest terminal that shows the frame and footer
// without clipping.
func MinTerminalSize() (width, height int) {
	return frameWidth, frameHeight + footerHeight
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// widgetRect returns the screen area of a focusable widget.
func widgetRect(w Widget) (rect, bool) {
	idx := w.focusIndex()
	if idx < 0 {
		return rect{}, false
	}
	return rect{x: 1, y: bodyTop + idx*widgetHeight, w: innerWidth, h: widgetHeight}, true
}

// widgetAt hit-tests a screen cell against the fixed layout.
func widgetAt(x, y int) (Widget, bool) {
	for _, w := range focusable {
		if r, ok := widgetRect(w); ok && r.contains(x, y) {
			return w, true
		}
	}
	return 0, false
}
