package session

import (
	"net/http"

	"github.com/charmbracelet/log"
)

// Option configures a Manager.
type Option func(m *Manager)

// WithHTTPClient sets the client used for the event stream. It must not set a
// Timeout, as the stream is long lived.
func WithHTTPClient(client *http.Client) Option {
	return func(m *Manager) {
		m.client = client
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// WithIDGenerator overrides the placeholder session id generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		m.newID = fn
	}
}
