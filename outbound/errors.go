package outbound

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when a send is attempted without an active session.
var ErrNoSession = errors.New("no active session")

// RemoteError reports a non-2xx response to a POST.
type RemoteError struct {
	StatusCode int
	Body       string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote endpoint returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError reports a connection level failure while posting.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "failed to deliver message: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
