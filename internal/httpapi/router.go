package httpapi

import (
	"log"
	"net/http"
)

func NewRouter(api *API, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/sessions", api.HandleCreateSession)
	mux.HandleFunc("/sessions/{session_id}", api.HandleSession)
	mux.HandleFunc("/sessions/{session_id}/answers", api.HandleAnswer)
	mux.HandleFunc("/sessions/{session_id}/reset", api.HandleReset)
	mux.HandleFunc("/sessions/{session_id}/history", api.HandleHistory)
	mux.HandleFunc("/theme", api.HandleTheme)
	mux.HandleFunc("/theme/toggle", api.HandleToggleTheme)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return withRequestLogging(mux, logger)
}
