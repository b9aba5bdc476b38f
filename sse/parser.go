package sse

import (
	"bytes"
	"strings"
)

// Parser incrementally decodes SSE lines into frames.
// A Parser is not safe for concurrent use.
type Parser struct {
	buffer  []byte
	pending string
}

// NewParser creates a parser with an empty buffer.
func NewParser() *Parser {
	return &Parser{}
}

// Feed appends chunk to the parse buffer and returns every frame completed by it.
// The trailing partial line, if any, is retained for the next call.
func (p *Parser) Feed(chunk []byte) []Frame {
	p.buffer = append(p.buffer, chunk...)
	index := bytes.LastIndexByte(p.buffer, '\n')
	if index == -1 {
		return nil
	}
	complete := p.buffer[:index]
	var frames []Frame
	for _, line := range bytes.Split(complete, []byte{'\n'}) {
		if frame, ok := p.parseLine(string(bytes.TrimSuffix(line, []byte{'\r'}))); ok {
			frames = append(frames, frame)
		}
	}
	rest := p.buffer[index+1:]
	p.buffer = append(make([]byte, 0, len(rest)), rest...)
	return frames
}

// Buffered returns the number of bytes waiting for a line terminator.
func (p *Parser) Buffered() int {
	return len(p.buffer)
}

// Reset drops buffered bytes and the pending event type.
func (p *Parser) Reset() {
	p.buffer = nil
	p.pending = ""
}

const (
	eventPrefix = "event: "
	dataPrefix  = "data: "
)

func (p *Parser) parseLine(line string) (Frame, bool) {
	switch {
	case strings.HasPrefix(line, eventPrefix):
		p.pending = strings.TrimSpace(line[len(eventPrefix):])
		return Frame{}, false
	case strings.HasPrefix(line, dataPrefix):
		frame := Frame{Event: p.pending, Data: line[len(dataPrefix):]}
		p.pending = ""
		if frame.Data == DoneMarker {
			return Frame{}, false
		}
		return frame, true
	default:
		//blank lines, comments (": ping"), "data:" without a space, id, retry and unknown fields
		p.pending = ""
		return Frame{}, false
	}
}
