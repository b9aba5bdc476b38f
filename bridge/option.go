package bridge

import (
	"io"
	"net/http"

	"github.com/charmbracelet/log"
)

// Option configures a Service.
type Option func(s *Service)

// WithIO replaces stdin/stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(s *Service) {
		s.in = in
		s.out = out
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithHTTPClient sets the client for both the event stream and POST requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		s.client = client
	}
}
