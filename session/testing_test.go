package session

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// sseServer starts a fake remote exposing handler at /sse; emit writes and flushes one event.
func sseServer(t *testing.T, handler func(w http.ResponseWriter, r *http.Request, emit func(event, data string))) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/sse", func(w http.ResponseWriter, r *http.Request) {
		flusher, _ := w.(http.Flusher)
		emit := func(event, data string) {
			if event != "" {
				_, _ = fmt.Fprintf(w, "event: %s\n", event)
			}
			_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
			if flusher != nil {
				flusher.Flush()
			}
		}
		handler(w, r, emit)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.CloseClientConnections()
		server.Close()
	})
	return server
}

func streamHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
}
