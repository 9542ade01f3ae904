package http

import (
	"errors"
	"net/http"

	"bookcatalog/internal/logging"
)

// LogsHandler exposes the dynamic log-level registry for operational control.
// Level names are returned as plain text, the way the original operators'
// tooling expects.
type LogsHandler struct {
	registry *logging.Registry
}

func NewLogsHandler(registry *logging.Registry) *LogsHandler {
	return &LogsHandler{registry: registry}
}

// GetLevel handles GET /logs/level?logger-name=.
func (h *LogsHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("logger-name")
	if name == "" {
		http.Error(w, "Error: missing required query parameter [logger-name]", http.StatusNotFound)
		return
	}

	level, err := h.registry.Level(name)
	if err != nil {
		http.Error(w, "Error: "+err.Error(), http.StatusNotFound)
		return
	}

	_, _ = w.Write([]byte(logging.LevelName(level)))
}

// SetLevel handles PUT /logs/level?logger-name=&logger-level=. It responds
// with the level now in effect.
func (h *LogsHandler) SetLevel(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("logger-name")
	levelName := r.URL.Query().Get("logger-level")
	if name == "" || levelName == "" {
		http.Error(w, "Error: one or more query parameters is missing", http.StatusNotFound)
		return
	}

	level, err := h.registry.SetLevel(name, levelName)
	if err != nil {
		if errors.Is(err, logging.ErrUnknownLevel) {
			http.Error(w, "Error: "+err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Error: "+err.Error(), http.StatusNotFound)
		return
	}

	_, _ = w.Write([]byte(logging.LevelName(level)))
}
