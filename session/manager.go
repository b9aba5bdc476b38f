package session

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/viant/ssebridge/internal/conv"
	"github.com/viant/ssebridge/logging"
	"github.com/viant/ssebridge/sse"
)

// QueryParam carries the session id on every request to the remote endpoint.
const QueryParam = "sessionId"

const maxErrorBody = 512

// Manager establishes the SSE session.
type Manager struct {
	url     *url.URL
	session *Session
	client  *http.Client
	logger  *log.Logger
	newID   func() string
}

// NewManager creates a manager for the SSE endpoint rawURL, recording ids on session.
func NewManager(rawURL string, session *Session, options ...Option) (*Manager, error) {
	endpoint, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid SSE url %q: %w", rawURL, err)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("invalid SSE url %q: unsupported scheme %q", rawURL, endpoint.Scheme)
	}
	ret := &Manager{url: endpoint, session: session, client: &http.Client{}, newID: uuid.NewString}
	for _, opt := range options {
		opt(ret)
	}
	ret.logger = logging.OrDiscard(ret.logger)
	return ret, nil
}

// Session returns the managed session handle.
func (m *Manager) Session() *Session {
	return m.session
}

// URL returns the SSE endpoint with the session id parameter set to id.
func (m *Manager) URL(id string) *url.URL {
	return WithSessionID(m.url, id)
}

// Open connects to the event stream and blocks until the server assigns a session id.
// The returned Stream yields the remaining frames; ctx bounds the whole stream lifetime.
func (m *Manager) Open(ctx context.Context) (*Stream, error) {
	placeholder := m.newID()
	handshake := m.URL(placeholder)
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, handshake.String(), nil)
	if err != nil {
		return nil, &ConnectionError{URL: m.url.String(), Err: err}
	}
	request.Header.Set("Accept", "text/event-stream")
	request.Header.Set("Cache-Control", "no-cache")
	m.logger.Debug("opening event stream", "url", handshake.String())
	response, err := m.client.Do(request)
	if err != nil {
		return nil, &ConnectionError{URL: m.url.String(), Err: err}
	}
	if response.StatusCode < 200 || response.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(response.Body, maxErrorBody))
		_ = response.Body.Close()
		return nil, &ConnectionError{URL: m.url.String(), StatusCode: response.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	stream := &Stream{
		reader:  sse.NewReader(response.Body),
		body:    response.Body,
		base:    m.url,
		session: m.session,
		logger:  m.logger,
	}
	for {
		frame, err := stream.reader.Next()
		if err != nil {
			_ = response.Body.Close()
			if err == io.EOF {
				err = errNoEndpoint
			}
			return nil, &ConnectionError{URL: m.url.String(), Err: err}
		}
		if !frame.IsEndpoint() {
			stream.pending = append(stream.pending, *frame)
			continue
		}
		if err = stream.assign(frame.Data); err != nil {
			_ = response.Body.Close()
			return nil, &ConnectionError{URL: m.url.String(), Err: err}
		}
		return stream, nil
	}
}

// ResolveEndpoint resolves an endpoint event payload against base and extracts the session id.
func ResolveEndpoint(base *url.URL, data string) (*url.URL, string, error) {
	ref, err := url.Parse(strings.TrimSpace(data))
	if err != nil {
		return nil, "", fmt.Errorf("invalid endpoint %q: %w", conv.Excerpt(data, 50), err)
	}
	endpoint := base.ResolveReference(ref)
	id := endpoint.Query().Get(QueryParam)
	if id == "" {
		return nil, "", fmt.Errorf("endpoint %q has no %v parameter", conv.Excerpt(data, 50), QueryParam)
	}
	return endpoint, id, nil
}

// WithSessionID returns a copy of target with the session id query parameter set.
func WithSessionID(target *url.URL, id string) *url.URL {
	ret := *target
	query := ret.Query()
	query.Set(QueryParam, id)
	ret.RawQuery = query.Encode()
	return &ret
}
