package message

// ParseError reports a payload that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
