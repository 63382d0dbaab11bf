package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.version
	if serverVersion == "" {
		serverVersion = "N/A"
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}
