package events

import "github.com/atomicstack/passgen-popup/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Shutdown(reason string, err error) {
	payload := map[string]interface{}{"reason": reason}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("app.shutdown", payload)
}
