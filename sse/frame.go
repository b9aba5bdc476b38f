package sse

const (
	// EventMessage is the default event type for relayed payloads.
	EventMessage = "message"
	// EventEndpoint announces the session-scoped endpoint.
	EventEndpoint = "endpoint"
	// DoneMarker is a sentinel data payload that is never emitted as a frame.
	DoneMarker = "[DONE]"
)

// Frame represents a single decoded (event-type, data) pair.
type Frame struct {
	// Event is the pending "event:" value, empty when none was set.
	Event string
	// Data is the payload of the "data:" line.
	Data string
}

// IsMessage reports whether the frame is a message, explicit or implicit.
func (f *Frame) IsMessage() bool {
	return f.Event == "" || f.Event == EventMessage
}

// IsEndpoint reports whether the frame announces the session endpoint.
func (f *Frame) IsEndpoint() bool {
	return f.Event == EventEndpoint
}
