package session

import (
	"errors"
	"io"
	"net/url"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/viant/ssebridge/sse"
)

// Stream is an open event stream bound to a session.
// Next must be called from a single goroutine; Close may be called from any.
type Stream struct {
	reader  *sse.Reader
	body    io.Closer
	base    *url.URL
	session *Session
	logger  *log.Logger
	pending []sse.Frame
	once    sync.Once
	closed  bool
	mux     sync.Mutex
}

// Next returns the next non-endpoint frame. Endpoint frames re-assign the session id.
// When the stream ends the session is invalidated and io.EOF (or the transport error) returned.
func (s *Stream) Next() (*sse.Frame, error) {
	if len(s.pending) > 0 {
		frame := s.pending[0]
		s.pending = s.pending[1:]
		return &frame, nil
	}
	for {
		frame, err := s.reader.Next()
		if err != nil {
			if s.isClosed() {
				err = io.EOF
			}
			s.terminate(err)
			return nil, err
		}
		if frame.IsEndpoint() {
			if err := s.assign(frame.Data); err != nil {
				s.logger.Warn("ignoring endpoint event", "err", err)
			}
			continue
		}
		return frame, nil
	}
}

// Close tears down the connection and invalidates the session.
func (s *Stream) Close() error {
	s.mux.Lock()
	s.closed = true
	s.mux.Unlock()
	err := s.body.Close()
	s.terminate(io.EOF)
	return err
}

func (s *Stream) isClosed() bool {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.closed
}

func (s *Stream) assign(data string) error {
	endpoint, id, err := ResolveEndpoint(s.base, data)
	if err != nil {
		return err
	}
	previous, _ := s.session.ID()
	s.session.Assign(id, endpoint)
	if previous != "" && previous != id {
		s.logger.Info("session reassigned", "session", id, "previous", previous)
	} else {
		s.logger.Info("session established", "session", id, "endpoint", endpoint.String())
	}
	return nil
}

func (s *Stream) terminate(cause error) {
	s.once.Do(func() {
		s.session.Invalidate()
		if errors.Is(cause, io.EOF) {
			s.logger.Info("event stream closed, session invalidated")
			return
		}
		s.logger.Error("event stream failed, session invalidated", "err", cause)
	})
}
