package outbound

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Sender.
type Option func(s *Sender)

// WithHTTPClient sets the client used for POST requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		s.client = client
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sender) {
		s.logger = logger
	}
}

// WithEndpointPath posts to the endpoint announced by the server instead of the SSE url.
func WithEndpointPath(enabled bool) Option {
	return func(s *Sender) {
		s.useEndpoint = enabled
	}
}

// WithTimeout bounds every POST; zero means no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Sender) {
		s.timeout = timeout
	}
}
