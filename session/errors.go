package session

import (
	"errors"
	"fmt"
)

// errNoEndpoint is reported when the stream ends before the endpoint event.
var errNoEndpoint = errors.New("stream closed before endpoint event")

// ConnectionError reports a failure to establish the session.
type ConnectionError struct {
	URL        string
	StatusCode int
	Body       string
	Err        error
}

func (e *ConnectionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to connect to %v: unexpected status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("failed to connect to %v: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
