package bridge

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// fakeRemote is an SSE server answering every POSTed request with a result pushed over the stream.
type fakeRemote struct {
	server     *httptest.Server
	sessionID  string
	events     chan string
	endStream  chan struct{}
	endOnce    sync.Once
	mux        sync.Mutex
	posts      []string
	handshakes int
}

func newFakeRemote(t *testing.T, sessionID string) *fakeRemote {
	t.Helper()
	ret := &fakeRemote{sessionID: sessionID, events: make(chan string, 16), endStream: make(chan struct{})}
	ret.server = httptest.NewServer(http.HandlerFunc(ret.handle))
	t.Cleanup(func() {
		ret.end()
		ret.server.CloseClientConnections()
		ret.server.Close()
	})
	return ret
}

func (f *fakeRemote) url() string {
	return f.server.URL + "/sse"
}

func (f *fakeRemote) end() {
	f.endOnce.Do(func() { close(f.endStream) })
}

func (f *fakeRemote) received() []string {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]string(nil), f.posts...)
}

func (f *fakeRemote) handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		f.stream(w, r)
	case http.MethodPost:
		f.post(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeRemote) stream(w http.ResponseWriter, r *http.Request) {
	f.mux.Lock()
	f.handshakes++
	f.mux.Unlock()
	w.Header().Set("Content-Type", "text/event-stream")
	w.WriteHeader(http.StatusOK)
	flusher := w.(http.Flusher)
	_, _ = fmt.Fprintf(w, "event: endpoint\ndata: /sse?sessionId=%s\n\n", f.sessionID)
	flusher.Flush()
	for {
		select {
		case data := <-f.events:
			_, _ = fmt.Fprintf(w, "event: message\ndata: %s\n\n", data)
			flusher.Flush()
		case <-f.endStream:
			return
		case <-r.Context().Done():
			return
		}
	}
}

func (f *fakeRemote) post(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("sessionId") != f.sessionID {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}
	body, _ := io.ReadAll(r.Body)
	f.mux.Lock()
	f.posts = append(f.posts, string(body))
	f.mux.Unlock()
	w.WriteHeader(http.StatusAccepted)

	request := struct {
		Id     json.RawMessage `json:"id"`
		Method string          `json:"method"`
	}{}
	if err := json.Unmarshal(body, &request); err != nil || len(request.Id) == 0 {
		return
	}
	f.events <- fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":{"method":%q}}`, request.Id, request.Method)
}
