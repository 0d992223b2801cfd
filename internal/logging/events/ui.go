package events

import "github.com/atomicstack/passgen-popup/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	UI      = UITracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (UITracer) Focus(widget string) {
	logging.Trace("ui.focus", map[string]interface{}{"widget": widget})
}

func (UITracer) Click(widget string, x, y int) {
	logging.Trace("ui.click", map[string]interface{}{"widget": widget, "x": x, "y": y})
}

func (UITracer) DialogOpen(title string) {
	logging.Trace("ui.dialog.open", map[string]interface{}{"title": title})
}

func (UITracer) DialogClose(title string) {
	logging.Trace("ui.dialog.close", map[string]interface{}{"title": title})
}

func (UITracer) Bind(handlers int) {
	logging.Trace("ui.bind", map[string]interface{}{"handlers": handlers})
}

func (UITracer) Unbind(handlers int) {
	logging.Trace("ui.unbind", map[string]interface{}{"handlers": handlers})
}

// Generate records a fresh password. Only the length is logged.
func (ActionTracer) Generate(length int) {
	logging.Trace("action.generate", map[string]interface{}{"length": length})
}

func (ActionTracer) Copy(length int, mirrored bool) {
	logging.Trace("action.copy", map[string]interface{}{"length": length, "mirrored": mirrored})
}

func (ActionTracer) About() {
	logging.Trace("action.about", nil)
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Warning(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.warning", map[string]interface{}{"error": err.Error()})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, effect string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "effect": effect})
}
