// Package inbound relays server pushed frames to the local output stream.
package inbound

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/viant/ssebridge/internal/conv"
	"github.com/viant/ssebridge/logging"
	"github.com/viant/ssebridge/message"
	"github.com/viant/ssebridge/sse"
)

// excerptLength bounds how much of a malformed payload is logged.
const excerptLength = 50

// FrameSource yields decoded frames; io.EOF marks the end of the stream.
type FrameSource interface {
	Next() (*sse.Frame, error)
}

// LineWriter writes one complete output line.
type LineWriter interface {
	WriteLine(line []byte) error
}

// Relay writes message frames as newline delimited JSON.
type Relay struct {
	out    LineWriter
	logger *log.Logger
}

// New creates a relay writing to out.
func New(out LineWriter, logger *log.Logger) *Relay {
	return &Relay{out: out, logger: logging.OrDiscard(logger)}
}

// Run relays frames until the source ends. Remote close yields nil.
func (r *Relay) Run(ctx context.Context, source FrameSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, err := source.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err = r.Relay(frame); err != nil {
			return err
		}
	}
}

// Relay writes a single frame. Only output failures are returned; malformed
// payloads and non message frames are logged and dropped.
func (r *Relay) Relay(frame *sse.Frame) error {
	if !frame.IsMessage() {
		r.logger.Debug("skipping frame", "event", frame.Event)
		return nil
	}
	if frame.Data == sse.DoneMarker {
		return nil
	}
	msg, err := message.Parse([]byte(frame.Data))
	if err != nil {
		r.logger.Warn("dropping malformed message", "data", conv.Excerpt(frame.Data, excerptLength), "err", err)
		return nil
	}
	r.logger.Debug("relaying", "message", msg.String())
	return r.out.WriteLine(msg.Bytes())
}
