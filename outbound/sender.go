// Package outbound delivers client originated messages to the remote session endpoint.
package outbound

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/viant/ssebridge/logging"
	"github.com/viant/ssebridge/message"
	"github.com/viant/ssebridge/session"
)

const maxErrorBody = 4096

// Sender posts messages using the current session id. Sends are serialized.
type Sender struct {
	url         *url.URL
	session     *session.Session
	client      *http.Client
	logger      *log.Logger
	useEndpoint bool
	timeout     time.Duration
	mux         sync.Mutex
}

// New creates a sender posting to target, the configured SSE url, scoped by aSession.
func New(target *url.URL, aSession *session.Session, options ...Option) *Sender {
	ret := &Sender{url: target, session: aSession, client: &http.Client{}}
	for _, opt := range options {
		opt(ret)
	}
	ret.logger = logging.OrDiscard(ret.logger)
	return ret
}

// Send delivers msg. It fails with ErrNoSession, *RemoteError or *TransportError.
func (s *Sender) Send(ctx context.Context, msg *message.Message) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	id, ok := s.session.ID()
	if !ok {
		return ErrNoSession
	}
	target := s.target(id)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	payload := msg.Bytes()
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(payload))
	if err != nil {
		return &TransportError{Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	s.logger.Debug("posting message", "message", msg.String(), "session", id)
	response, err := s.client.Do(request)
	if err != nil {
		if !s.session.Active() {
			s.logger.Debug("send raced session invalidation", "session", id)
		}
		return &TransportError{Err: err}
	}
	defer response.Body.Close()
	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		return &RemoteError{StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	_, _ = io.Copy(io.Discard, response.Body)
	return nil
}

func (s *Sender) target(id string) *url.URL {
	base := s.url
	if s.useEndpoint {
		if endpoint := s.session.Endpoint(); endpoint != nil {
			base = endpoint
		}
	}
	return session.WithSessionID(base, id)
}
