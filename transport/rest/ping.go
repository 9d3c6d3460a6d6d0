package rest

import "net/http"

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	// the status line is already sent, nothing to report on failure
	_, _ = w.Write([]byte("pong"))
}
