package sse

import (
	"io"
)

const defaultChunkSize = 32 * 1024

// Reader pulls frames from an SSE byte stream.
//
//	src io.Reader -> chunk -> Parser.Feed -> queued frames -> Next()
//
// Next blocks until a frame is available or the source is exhausted.
type Reader struct {
	src    io.Reader
	parser *Parser
	chunk  []byte
	queue  []Frame
	err    error
}

// NewReader returns a Reader decoding frames from src.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src, parser: NewParser(), chunk: make([]byte, defaultChunkSize)}
}

// Next returns the next frame. It returns io.EOF once the source is exhausted
// and all completed frames were consumed; a trailing unterminated line is dropped.
func (r *Reader) Next() (*Frame, error) {
	for len(r.queue) == 0 {
		if r.err != nil {
			return nil, r.err
		}
		n, err := r.src.Read(r.chunk)
		if n > 0 {
			r.queue = append(r.queue, r.parser.Feed(r.chunk[:n])...)
		}
		if err != nil {
			r.err = err
		}
	}
	frame := r.queue[0]
	r.queue = r.queue[1:]
	return &frame, nil
}
